package services

import (
	"context"
	"log/slog"
	"math"

	"retailpulse/internal/config"
	"retailpulse/internal/dataprocessing"
	"retailpulse/pkg/contracts/domain"
)

// VarianceService builds the stock variance dashboard payload: stock book
// left-joined with the physical count, difference and value derivations,
// and the ranked discrepancy listings.
type VarianceService struct {
	cfg    *config.Config
	logger *slog.Logger
	book   *dataprocessing.Cache[domain.StockBookItem]
	counts *dataprocessing.Cache[domain.PhysicalCount]
}

// NewVarianceService creates a variance dashboard service.
func NewVarianceService(cfg *config.Config, logger *slog.Logger) *VarianceService {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "variance_service"))
	return &VarianceService{
		cfg:    cfg,
		logger: logger,
		book:   dataprocessing.NewCache[domain.StockBookItem](logger),
		counts: dataprocessing.NewCache[domain.PhysicalCount](logger),
	}
}

// Report runs the full variance pipeline for the given filter. The two
// top-30 listings rank the filtered rows by absolute stock difference and
// by signed difference value; the remainder holds everything neither
// listing covers, re-sorted by category then difference. The category
// summary aggregates the unfiltered join, mirroring the sales dashboard.
func (s *VarianceService) Report(ctx context.Context, filter domain.ReportFilter) (*domain.VarianceReport, error) {
	joined, err := s.joined(ctx)
	if err != nil {
		return nil, err
	}

	full := dataprocessing.WithVarianceValues(joined)
	categories := dataprocessing.SummarizeVarianceByCategory(full)

	filtered := dataprocessing.FilterVariance(joined, filter)
	rows := dataprocessing.WithVarianceValues(filtered)

	topQty := dataprocessing.TopIndicesBy(rows, dataprocessing.TopMovers,
		func(r domain.VarianceRow) float64 { return math.Abs(r.DiffStock) })
	topValue := dataprocessing.TopIndicesBy(rows, dataprocessing.TopMovers,
		func(r domain.VarianceRow) float64 { return r.DiffValue })

	var bookStock, bookValue, physicalValue, diffStock, diffValue float64
	for _, row := range rows {
		bookStock += row.BookStock
		bookValue += row.BookValue
		physicalValue += row.PhysicalValue
		diffStock += row.DiffStock
		diffValue += row.DiffValue
	}

	report := &domain.VarianceReport{
		Filter: filter,
		Metrics: domain.VarianceMetrics{
			TotalBookValue:     bookValue,
			TotalPhysicalValue: physicalValue,
			TotalDiffValue:     diffValue,
			StockVariancePct:   dataprocessing.SafeRatio(diffStock, bookStock) * 100,
			ItemCount:          len(rows),
		},
		TopByQty:   dataprocessing.SelectRows(rows, topQty),
		TopByValue: dataprocessing.SelectRows(rows, topValue),
		Remainder:  dataprocessing.RemainderRows(rows, topQty, topValue),
		Categories: categories,
	}

	s.logger.InfoContext(ctx, "variance report computed",
		slog.Int("items", len(rows)),
		slog.Int("top_by_qty", len(report.TopByQty)),
		slog.Int("top_by_value", len(report.TopByValue)),
		slog.Int("remainder", len(report.Remainder)))

	return report, nil
}

// Categories returns the distinct category values of the joined table with
// the "All" sentinel prepended.
func (s *VarianceService) Categories(ctx context.Context) ([]string, error) {
	joined, err := s.joined(ctx)
	if err != nil {
		return nil, err
	}
	return dataprocessing.DistinctCategories(joined, func(r domain.VarianceRow) string { return r.Category }), nil
}

// joined loads both workbooks through the caches and joins them.
func (s *VarianceService) joined(ctx context.Context) ([]domain.VarianceRow, error) {
	book, err := s.book.Load(ctx, s.cfg.Datasets.StockBook, dataprocessing.LoadStockBook)
	if err != nil {
		return nil, err
	}
	counts, err := s.counts.Load(ctx, s.cfg.Datasets.PhysicalCount, dataprocessing.LoadPhysicalCounts)
	if err != nil {
		return nil, err
	}
	return dataprocessing.JoinVariance(book, counts), nil
}
