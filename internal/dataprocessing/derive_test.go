package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retailpulse/pkg/contracts/domain"
)

func TestSafeRatio(t *testing.T) {
	tests := []struct {
		name string
		num  float64
		den  float64
		want float64
	}{
		{"normal division", 10, 4, 2.5},
		{"zero denominator", 42, 0, 0},
		{"zero numerator", 0, 5, 0},
		{"negative values", -10, 4, -2.5},
		{"both zero", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SafeRatio(tt.num, tt.den))
		})
	}
}

func TestSumAcrossPeriods_OrderIndependent(t *testing.T) {
	periods := []domain.PeriodSales{
		{Period: "Jul-2025", Sales: 100, Profit: 10},
		{Period: "Aug-2025", Sales: 0, Profit: 0},
		{Period: "Sep-2025", Sales: 50, Profit: 5},
	}
	permuted := []domain.PeriodSales{periods[2], periods[0], periods[1]}

	assert.Equal(t, 150.0, SumAcrossPeriods(periods, PeriodSalesValue))
	assert.Equal(t, SumAcrossPeriods(periods, PeriodSalesValue), SumAcrossPeriods(permuted, PeriodSalesValue))
	assert.Equal(t, SumAcrossPeriods(periods, PeriodProfitValue), SumAcrossPeriods(permuted, PeriodProfitValue))
}

func TestValueFromQuantity(t *testing.T) {
	assert.Equal(t, 50.0, ValueFromQuantity(5, 10))
	assert.Equal(t, -10.0, ValueFromQuantity(-1, 10))
	assert.Zero(t, ValueFromQuantity(0, 99))
}

func TestWithSalesTotals(t *testing.T) {
	// One item with Jul/Aug/Sep sales 100/0/50 and profit 10/0/5 totals
	// 150 sales, 15 profit, and 10% overall GP.
	rows := []domain.SalesRow{
		{
			Barcode: "1",
			Periods: []domain.PeriodSales{
				{Period: "Jul-2025", Sales: 100, Profit: 10},
				{Period: "Aug-2025", Sales: 0, Profit: 0},
				{Period: "Sep-2025", Sales: 50, Profit: 5},
			},
		},
		{Barcode: "2", Periods: zeroPeriods()},
	}

	derived := WithSalesTotals(rows)
	require.Len(t, derived, 2)

	assert.Equal(t, 150.0, derived[0].TotalSales)
	assert.Equal(t, 15.0, derived[0].TotalProfit)
	assert.InDelta(t, 0.10, derived[0].OverallGP, 1e-9)

	// No sales at all: GP degrades to zero instead of dividing by zero.
	assert.Zero(t, derived[1].TotalSales)
	assert.Zero(t, derived[1].OverallGP)

	// Input rows stay untouched.
	assert.Zero(t, rows[0].TotalSales)
}

func TestWithVarianceValues(t *testing.T) {
	// Keys A,B,C with costs 10,20,30, book stock 5 each and physical
	// 4,6,5: diffs are -1,+1,0 and diff values -10,+20,0.
	rows := []domain.VarianceRow{
		{Barcode: "A", Cost: 10, BookStock: 5, PhysicalStock: 4},
		{Barcode: "B", Cost: 20, BookStock: 5, PhysicalStock: 6},
		{Barcode: "C", Cost: 30, BookStock: 5, PhysicalStock: 5},
	}

	derived := WithVarianceValues(rows)
	require.Len(t, derived, 3)

	assert.Equal(t, []float64{-1, 1, 0}, []float64{derived[0].DiffStock, derived[1].DiffStock, derived[2].DiffStock})
	assert.Equal(t, []float64{-10, 20, 0}, []float64{derived[0].DiffValue, derived[1].DiffValue, derived[2].DiffValue})

	assert.Equal(t, 50.0, derived[0].BookValue)
	assert.Equal(t, 40.0, derived[0].PhysicalValue)

	// Total diff over total book quantity: (−1+1+0)/15 = 0%.
	var totalDiff, totalBook float64
	for _, row := range derived {
		totalDiff += row.DiffStock
		totalBook += row.BookStock
	}
	assert.Zero(t, SafeRatio(totalDiff, totalBook)*100)

	// Input rows stay untouched.
	assert.Zero(t, rows[0].DiffStock)
}
