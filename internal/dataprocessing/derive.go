package dataprocessing

import (
	"retailpulse/pkg/contracts/domain"
)

// SafeRatio divides numerator by denominator, returning 0 when the
// denominator is 0. Every ratio in the pipeline goes through here so a
// zero-sales item or an empty filter result degrades to zero instead of
// NaN or a panic.
func SafeRatio(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

// SumAcrossPeriods totals one field over an item's monthly pairs. The sum
// is order-independent, so permuting the period columns of the source
// workbook changes nothing.
func SumAcrossPeriods(periods []domain.PeriodSales, value func(domain.PeriodSales) float64) float64 {
	var total float64
	for _, p := range periods {
		total += value(p)
	}
	return total
}

// ValueFromQuantity prices a quantity at a unit cost. Applied independently
// to book, physical, and difference quantities.
func ValueFromQuantity(quantity, unitPrice float64) float64 {
	return quantity * unitPrice
}

// PeriodSalesValue and PeriodProfitValue select the summed field for
// SumAcrossPeriods.
func PeriodSalesValue(p domain.PeriodSales) float64  { return p.Sales }
func PeriodProfitValue(p domain.PeriodSales) float64 { return p.Profit }

// WithSalesTotals returns a copy of rows with Total Sales, Total Profit,
// and Overall GP filled in. The input is left untouched; derivations always
// produce new values so cached tables stay immutable.
func WithSalesTotals(rows []domain.SalesRow) []domain.SalesRow {
	out := make([]domain.SalesRow, len(rows))
	for i, row := range rows {
		row.TotalSales = SumAcrossPeriods(row.Periods, PeriodSalesValue)
		row.TotalProfit = SumAcrossPeriods(row.Periods, PeriodProfitValue)
		row.OverallGP = SafeRatio(row.TotalProfit, row.TotalSales)
		out[i] = row
	}
	return out
}

// WithVarianceValues returns a copy of rows with the stock difference and
// the three value columns filled in. Diff is physical minus book.
func WithVarianceValues(rows []domain.VarianceRow) []domain.VarianceRow {
	out := make([]domain.VarianceRow, len(rows))
	for i, row := range rows {
		row.DiffStock = row.PhysicalStock - row.BookStock
		row.BookValue = ValueFromQuantity(row.BookStock, row.Cost)
		row.PhysicalValue = ValueFromQuantity(row.PhysicalStock, row.Cost)
		row.DiffValue = ValueFromQuantity(row.DiffStock, row.Cost)
		out[i] = row
	}
	return out
}
