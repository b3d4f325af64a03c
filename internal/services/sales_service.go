package services

import (
	"context"
	"log/slog"
	"sort"

	"retailpulse/internal/config"
	"retailpulse/internal/dataprocessing"
	"retailpulse/pkg/contracts/domain"
)

// SalesService builds the sales dashboard payload: price list left-joined
// with the quarterly sales workbook, derived totals, filters, and the
// grouped chart datasets. Workbooks are loaded once per process through
// the shared caches; every request recomputes the rest of the pipeline.
type SalesService struct {
	cfg    *config.Config
	logger *slog.Logger
	prices *dataprocessing.Cache[domain.PriceItem]
	sales  *dataprocessing.Cache[domain.SalesRecord]
}

// NewSalesService creates a sales dashboard service.
func NewSalesService(cfg *config.Config, logger *slog.Logger) *SalesService {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "sales_service"))
	return &SalesService{
		cfg:    cfg,
		logger: logger,
		prices: dataprocessing.NewCache[domain.PriceItem](logger),
		sales:  dataprocessing.NewCache[domain.SalesRecord](logger),
	}
}

// Report runs the full sales pipeline for the given filter. The category
// summary is always aggregated over the unfiltered join — the category
// charts keep showing the whole store while the metrics, monthly dataset,
// and item table follow the filter.
func (s *SalesService) Report(ctx context.Context, filter domain.ReportFilter) (*domain.SalesReport, error) {
	joined, err := s.joined(ctx)
	if err != nil {
		return nil, err
	}

	full := dataprocessing.WithSalesTotals(joined)
	categories := dataprocessing.SummarizeSalesByCategory(full)

	filtered := dataprocessing.FilterSales(joined, filter)
	rows := dataprocessing.WithSalesTotals(filtered)

	var totalSales, totalProfit float64
	for _, row := range rows {
		totalSales += row.TotalSales
		totalProfit += row.TotalProfit
	}

	monthly := dataprocessing.MonthlyDataset(rows)

	// Item table ordered by Total Sales, best sellers first.
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].TotalSales > rows[j].TotalSales })

	report := &domain.SalesReport{
		Filter: filter,
		Metrics: domain.SalesMetrics{
			TotalSales:  totalSales,
			TotalProfit: totalProfit,
			OverallGP:   dataprocessing.SafeRatio(totalProfit, totalSales),
			ItemCount:   len(rows),
		},
		Monthly:    monthly,
		Categories: categories,
		Items:      rows,
	}

	s.logger.InfoContext(ctx, "sales report computed",
		slog.Int("items", len(rows)),
		slog.Int("categories", len(categories)),
		slog.String("filter_category", filter.Category))

	return report, nil
}

// Categories returns the distinct category values of the joined table with
// the "All" sentinel prepended, for the dashboard's filter widget.
func (s *SalesService) Categories(ctx context.Context) ([]string, error) {
	joined, err := s.joined(ctx)
	if err != nil {
		return nil, err
	}
	return dataprocessing.DistinctCategories(joined, func(r domain.SalesRow) string { return r.Category }), nil
}

// joined loads both workbooks through the caches and joins them.
func (s *SalesService) joined(ctx context.Context) ([]domain.SalesRow, error) {
	prices, err := s.prices.Load(ctx, s.cfg.Datasets.PriceList, dataprocessing.LoadPriceList)
	if err != nil {
		return nil, err
	}
	records, err := s.sales.Load(ctx, s.cfg.Datasets.SalesWorkbook, dataprocessing.LoadSalesRecords)
	if err != nil {
		return nil, err
	}
	return dataprocessing.JoinSales(prices, records), nil
}
