package dataprocessing

import (
	"sort"

	"retailpulse/pkg/contracts/domain"
)

// TopMovers is the size of the ranked discrepancy listings.
const TopMovers = 30

// SummarizeSalesByCategory groups sales rows by category and sums their
// totals. GP% replaces a zero denominator with 1 before dividing, so a
// zero-sales category reports 0 through the substitution rather than a
// guarded branch. Output is sorted by category name.
func SummarizeSalesByCategory(rows []domain.SalesRow) []domain.CategorySummary {
	groups := make(map[string]*domain.CategorySummary)
	for _, row := range rows {
		g, ok := groups[row.Category]
		if !ok {
			g = &domain.CategorySummary{Category: row.Category}
			groups[row.Category] = g
		}
		g.TotalSales += row.TotalSales
		g.TotalProfit += row.TotalProfit
	}

	out := make([]domain.CategorySummary, 0, len(groups))
	for _, g := range groups {
		denominator := g.TotalSales
		if denominator == 0 {
			denominator = 1
		}
		g.GPPercent = g.TotalProfit / denominator
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// SummarizeVarianceByCategory groups variance rows by category and sums the
// quantity and value columns. Variance% is the summed difference over the
// summed book stock, times 100.
func SummarizeVarianceByCategory(rows []domain.VarianceRow) []domain.VarianceCategorySummary {
	groups := make(map[string]*domain.VarianceCategorySummary)
	for _, row := range rows {
		g, ok := groups[row.Category]
		if !ok {
			g = &domain.VarianceCategorySummary{Category: row.Category}
			groups[row.Category] = g
		}
		g.BookStock += row.BookStock
		g.PhysicalStock += row.PhysicalStock
		g.DiffStock += row.DiffStock
		g.BookValue += row.BookValue
		g.DiffValue += row.DiffValue
	}

	out := make([]domain.VarianceCategorySummary, 0, len(groups))
	for _, g := range groups {
		g.VariancePercent = SafeRatio(g.DiffStock, g.BookStock) * 100
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// TopIndicesBy ranks rows descending by the sort key and returns the
// indices of the first n. The sort is stable, so rows with equal keys keep
// their input order.
func TopIndicesBy(rows []domain.VarianceRow, n int, key func(domain.VarianceRow) float64) []int {
	indices := make([]int, len(rows))
	for i := range rows {
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool {
		return key(rows[indices[a]]) > key(rows[indices[b]])
	})
	if len(indices) > n {
		indices = indices[:n]
	}
	return indices
}

// SelectRows materializes the rows at the given indices, in index order.
func SelectRows(rows []domain.VarianceRow, indices []int) []domain.VarianceRow {
	out := make([]domain.VarianceRow, 0, len(indices))
	for _, idx := range indices {
		out = append(out, rows[idx])
	}
	return out
}

// RemainderRows returns the rows not covered by any of the excluded index
// sets, re-sorted by category ascending then stock difference descending.
// Together with the top listings this partitions the input: every row
// appears in the remainder or in at least one top set, and the remainder
// itself has no duplicates.
func RemainderRows(rows []domain.VarianceRow, excluded ...[]int) []domain.VarianceRow {
	taken := make(map[int]bool)
	for _, set := range excluded {
		for _, idx := range set {
			taken[idx] = true
		}
	}

	out := make([]domain.VarianceRow, 0, len(rows))
	for i, row := range rows {
		if !taken[i] {
			out = append(out, row)
		}
	}

	sort.SliceStable(out, func(a, b int) bool {
		if out[a].Category != out[b].Category {
			return out[a].Category < out[b].Category
		}
		return out[a].DiffStock > out[b].DiffStock
	})
	return out
}

// MonthlyDataset sums sales and profit per period over the filtered rows,
// one point per reporting month in chart order.
func MonthlyDataset(rows []domain.SalesRow) []domain.MonthlyPoint {
	points := make([]domain.MonthlyPoint, len(Periods))
	for i, period := range Periods {
		points[i].Period = period
	}
	for _, row := range rows {
		for _, p := range row.Periods {
			for i := range points {
				if points[i].Period == p.Period {
					points[i].Sales += p.Sales
					points[i].Profit += p.Profit
					break
				}
			}
		}
	}
	return points
}

// DistinctCategories lists the distinct category values of the rows,
// sorted, with the "All" sentinel prepended for filter widgets.
func DistinctCategories[T any](rows []T, category func(T) string) []string {
	seen := make(map[string]bool)
	for _, row := range rows {
		seen[category(row)] = true
	}

	out := make([]string, 0, len(seen)+1)
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return append([]string{domain.AllCategories}, out...)
}
