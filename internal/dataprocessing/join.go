package dataprocessing

import (
	"retailpulse/pkg/contracts/domain"
)

// normalizeCategory maps a missing or empty category to the Unknown
// sentinel so grouping always has a non-empty key.
func normalizeCategory(category string) string {
	if category == "" {
		return domain.UnknownCategory
	}
	return category
}

// JoinSales left-joins the price list with the sales records on the
// normalized item key. The result has exactly one row per price-list item;
// unmatched items carry zero-valued periods. When the sales workbook holds
// duplicate item codes the first occurrence wins. Duplicate barcodes in the
// price list are not deduplicated, so their sales figures repeat per
// duplicate row.
func JoinSales(ref []domain.PriceItem, tx []domain.SalesRecord) []domain.SalesRow {
	index := make(map[string]domain.SalesRecord, len(tx))
	for _, rec := range tx {
		if _, ok := index[rec.ItemCode]; !ok {
			index[rec.ItemCode] = rec
		}
	}

	rows := make([]domain.SalesRow, 0, len(ref))
	for _, item := range ref {
		row := domain.SalesRow{
			Barcode:  item.Barcode,
			Name:     item.Name,
			Category: normalizeCategory(item.Category),
			Cost:     item.Cost,
			Selling:  item.Selling,
			Stock:    item.Stock,
		}
		if rec, ok := index[item.Barcode]; ok {
			row.Periods = clonePeriods(rec.Periods)
		} else {
			row.Periods = zeroPeriods()
		}
		rows = append(rows, row)
	}
	return rows
}

// JoinVariance left-joins the stock book with the physical counts on the
// normalized barcode. One row per stock-book item; unmatched items count as
// zero physical stock.
func JoinVariance(ref []domain.StockBookItem, tx []domain.PhysicalCount) []domain.VarianceRow {
	index := make(map[string]float64, len(tx))
	for _, count := range tx {
		if _, ok := index[count.Barcode]; !ok {
			index[count.Barcode] = count.PhysicalStock
		}
	}

	rows := make([]domain.VarianceRow, 0, len(ref))
	for _, item := range ref {
		rows = append(rows, domain.VarianceRow{
			Barcode:       item.Barcode,
			Name:          item.Name,
			Category:      normalizeCategory(item.Category),
			Cost:          item.Cost,
			BookStock:     item.BookStock,
			PhysicalStock: index[item.Barcode],
		})
	}
	return rows
}

// zeroPeriods builds the zero-valued monthly pairs for unmatched rows.
func zeroPeriods() []domain.PeriodSales {
	periods := make([]domain.PeriodSales, 0, len(Periods))
	for _, period := range Periods {
		periods = append(periods, domain.PeriodSales{Period: period})
	}
	return periods
}

// clonePeriods copies a period slice so joined rows never alias cached data.
func clonePeriods(periods []domain.PeriodSales) []domain.PeriodSales {
	out := make([]domain.PeriodSales, len(periods))
	copy(out, periods)
	return out
}
