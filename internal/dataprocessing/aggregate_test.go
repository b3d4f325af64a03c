package dataprocessing

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retailpulse/pkg/contracts/domain"
)

func TestSummarizeSalesByCategory(t *testing.T) {
	rows := []domain.SalesRow{
		{Category: "Dairy", TotalSales: 100, TotalProfit: 20},
		{Category: "Bakery", TotalSales: 50, TotalProfit: 5},
		{Category: "Dairy", TotalSales: 100, TotalProfit: 10},
		{Category: "Seasonal", TotalSales: 0, TotalProfit: 7},
	}

	got := SummarizeSalesByCategory(rows)
	require.Len(t, got, 3)

	// Sorted by category name.
	assert.Equal(t, "Bakery", got[0].Category)
	assert.Equal(t, "Dairy", got[1].Category)
	assert.Equal(t, "Seasonal", got[2].Category)

	assert.Equal(t, 200.0, got[1].TotalSales)
	assert.Equal(t, 30.0, got[1].TotalProfit)
	assert.InDelta(t, 0.15, got[1].GPPercent, 1e-9)

	// Zero-sales category: the denominator is replaced by 1, so GP% equals
	// the raw profit rather than blowing up.
	assert.Equal(t, 7.0, got[2].GPPercent)
}

func TestSummarizeVarianceByCategory(t *testing.T) {
	rows := WithVarianceValues([]domain.VarianceRow{
		{Category: "Grains", Cost: 10, BookStock: 5, PhysicalStock: 4},
		{Category: "Grains", Cost: 20, BookStock: 5, PhysicalStock: 6},
		{Category: "Seasonal", Cost: 30, BookStock: 0, PhysicalStock: 2},
	})

	got := SummarizeVarianceByCategory(rows)
	require.Len(t, got, 2)

	grains := got[0]
	assert.Equal(t, "Grains", grains.Category)
	assert.Equal(t, 10.0, grains.BookStock)
	assert.Equal(t, 10.0, grains.PhysicalStock)
	assert.Zero(t, grains.DiffStock)
	assert.Equal(t, 10.0, grains.DiffValue) // -10 + 20
	assert.Zero(t, grains.VariancePercent)

	// Zero book stock: variance percent degrades to zero via SafeRatio.
	assert.Zero(t, got[1].VariancePercent)
}

func varianceFixture(n int) []domain.VarianceRow {
	rows := make([]domain.VarianceRow, n)
	for i := range rows {
		rows[i] = domain.VarianceRow{
			Barcode:   fmt.Sprintf("V%03d", i),
			Category:  "Grains",
			DiffStock: float64(i - n/2),
			DiffValue: float64((i - n/2) * 10),
		}
	}
	return rows
}

func TestTopIndicesBy(t *testing.T) {
	rows := varianceFixture(40)

	top := TopIndicesBy(rows, TopMovers, func(r domain.VarianceRow) float64 { return math.Abs(r.DiffStock) })
	require.Len(t, top, TopMovers)

	// The selected rows hold the 30 largest absolute diffs: the cutoff
	// absolute value must dominate everything excluded.
	selected := make(map[int]bool, len(top))
	var minSelected = math.MaxFloat64
	for _, idx := range top {
		selected[idx] = true
		if v := math.Abs(rows[idx].DiffStock); v < minSelected {
			minSelected = v
		}
	}
	for i, row := range rows {
		if !selected[i] {
			assert.LessOrEqual(t, math.Abs(row.DiffStock), minSelected)
		}
	}
}

func TestTopIndicesBy_StableTies(t *testing.T) {
	rows := []domain.VarianceRow{
		{Barcode: "first", DiffValue: 5},
		{Barcode: "second", DiffValue: 5},
		{Barcode: "third", DiffValue: 9},
	}

	top := TopIndicesBy(rows, 2, func(r domain.VarianceRow) float64 { return r.DiffValue })
	require.Equal(t, []int{2, 0}, top, "equal keys keep input order")
}

func TestTopIndicesBy_ShortInput(t *testing.T) {
	rows := varianceFixture(5)
	top := TopIndicesBy(rows, TopMovers, func(r domain.VarianceRow) float64 { return r.DiffValue })
	assert.Len(t, top, 5)
}

func TestRemainderRows_PartitionsInput(t *testing.T) {
	rows := varianceFixture(80)

	topQty := TopIndicesBy(rows, TopMovers, func(r domain.VarianceRow) float64 { return math.Abs(r.DiffStock) })
	topVal := TopIndicesBy(rows, TopMovers, func(r domain.VarianceRow) float64 { return r.DiffValue })
	remainder := RemainderRows(rows, topQty, topVal)

	// Remainder plus the union of both top sets covers every row exactly
	// once; the top sets may overlap each other but not the remainder.
	union := make(map[int]bool)
	for _, idx := range topQty {
		union[idx] = true
	}
	for _, idx := range topVal {
		union[idx] = true
	}
	assert.Equal(t, len(rows), len(union)+len(remainder))

	seen := make(map[string]bool)
	for _, row := range remainder {
		assert.False(t, seen[row.Barcode], "remainder must be duplicate-free")
		seen[row.Barcode] = true
		for _, idx := range topQty {
			assert.NotEqual(t, rows[idx].Barcode, row.Barcode)
		}
	}
}

func TestRemainderRows_SortedByCategoryThenDiff(t *testing.T) {
	rows := []domain.VarianceRow{
		{Barcode: "1", Category: "Dairy", DiffStock: -3},
		{Barcode: "2", Category: "Bakery", DiffStock: 1},
		{Barcode: "3", Category: "Dairy", DiffStock: 5},
		{Barcode: "4", Category: "Bakery", DiffStock: 4},
	}

	got := RemainderRows(rows)
	require.Len(t, got, 4)
	assert.Equal(t, []string{"4", "2", "3", "1"}, []string{got[0].Barcode, got[1].Barcode, got[2].Barcode, got[3].Barcode})
}

func TestMonthlyDataset(t *testing.T) {
	rows := []domain.SalesRow{
		{Periods: []domain.PeriodSales{
			{Period: "Jul-2025", Sales: 100, Profit: 10},
			{Period: "Aug-2025", Sales: 20, Profit: 2},
			{Period: "Sep-2025", Sales: 50, Profit: 5},
		}},
		{Periods: []domain.PeriodSales{
			{Period: "Jul-2025", Sales: 30, Profit: 3},
			{Period: "Aug-2025", Sales: 0, Profit: 0},
			{Period: "Sep-2025", Sales: 10, Profit: 1},
		}},
	}

	got := MonthlyDataset(rows)
	require.Len(t, got, 3)

	assert.Equal(t, "Jul-2025", got[0].Period)
	assert.Equal(t, 130.0, got[0].Sales)
	assert.Equal(t, 13.0, got[0].Profit)
	assert.Equal(t, 20.0, got[1].Sales)
	assert.Equal(t, 60.0, got[2].Sales)
}

func TestMonthlyDataset_EmptyRows(t *testing.T) {
	got := MonthlyDataset(nil)
	require.Len(t, got, 3)
	for _, point := range got {
		assert.Zero(t, point.Sales)
		assert.Zero(t, point.Profit)
	}
}

func TestDistinctCategories(t *testing.T) {
	rows := []domain.SalesRow{
		{Category: "Dairy"},
		{Category: "Bakery"},
		{Category: "Dairy"},
		{Category: domain.UnknownCategory},
	}

	got := DistinctCategories(rows, func(r domain.SalesRow) string { return r.Category })
	assert.Equal(t, []string{"All", "Bakery", "Dairy", "Unknown"}, got)
}
