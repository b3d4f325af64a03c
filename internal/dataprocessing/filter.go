package dataprocessing

import (
	"strings"

	"retailpulse/pkg/contracts/domain"
)

// rowFields extracts the three filterable fields from a row.
type rowFields[T any] func(row T) (category, name, barcode string)

// applyFilter runs the order-significant predicate chain: category equality
// (skipped for the "All" sentinel or empty), then case-insensitive substring
// on name, then on barcode. Each stage only narrows, so the chain is a
// logical AND and reapplying the same filter is a no-op. An empty result is
// valid output.
func applyFilter[T any](rows []T, filter domain.ReportFilter, fields rowFields[T]) []T {
	out := rows

	if filter.Category != "" && filter.Category != domain.AllCategories {
		out = keep(out, func(row T) bool {
			category, _, _ := fields(row)
			return category == filter.Category
		})
	}

	if term := strings.ToLower(filter.Name); term != "" {
		out = keep(out, func(row T) bool {
			_, name, _ := fields(row)
			return strings.Contains(strings.ToLower(name), term)
		})
	}

	if term := strings.ToLower(filter.Barcode); term != "" {
		out = keep(out, func(row T) bool {
			_, _, barcode := fields(row)
			return strings.Contains(strings.ToLower(barcode), term)
		})
	}

	return out
}

// keep copies the rows matching the predicate, preserving input order.
func keep[T any](rows []T, match func(T) bool) []T {
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		if match(row) {
			out = append(out, row)
		}
	}
	return out
}

// FilterSales narrows sales rows by the filter chain.
func FilterSales(rows []domain.SalesRow, filter domain.ReportFilter) []domain.SalesRow {
	return applyFilter(rows, filter, func(row domain.SalesRow) (string, string, string) {
		return row.Category, row.Name, row.Barcode
	})
}

// FilterVariance narrows variance rows by the filter chain.
func FilterVariance(rows []domain.VarianceRow, filter domain.ReportFilter) []domain.VarianceRow {
	return applyFilter(rows, filter, func(row domain.VarianceRow) (string, string, string) {
		return row.Category, row.Name, row.Barcode
	})
}
