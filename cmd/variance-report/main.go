package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"retailpulse/internal/config"
	"retailpulse/internal/exporter"
	"retailpulse/internal/infrastructure"
	"retailpulse/internal/services"
	"retailpulse/pkg/contracts/domain"
)

func main() {
	outputDir := flag.String("out", "", "output directory for report files (defaults to configured reports dir)")
	baseName := flag.String("name", "variance", "base name for the generated .csv and .json files")
	category := flag.String("category", "", "category filter (empty or All selects everything)")
	nameQuery := flag.String("item", "", "case-insensitive substring filter on item name")
	barcode := flag.String("barcode", "", "case-insensitive substring filter on barcode")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}

	if *outputDir == "" {
		*outputDir = cfg.Reports.OutputDir
	}

	filter := domain.ReportFilter{
		Category: *category,
		Name:     *nameQuery,
		Barcode:  *barcode,
	}

	ctx := context.Background()
	service := services.NewVarianceService(cfg, logger)

	logger.Info("Building variance report",
		"stock_book", cfg.Datasets.StockBook,
		"physical_count", cfg.Datasets.PhysicalCount)

	report, err := service.Report(ctx, filter)
	if err != nil {
		logger.Error("Failed to build variance report", "error", err)
		os.Exit(1)
	}

	rep := exporter.NewReportExporter(*outputDir, logger)

	csvPath, err := rep.WriteVarianceCSV(report, *baseName)
	if err != nil {
		logger.Error("Failed to write CSV", "error", err)
		os.Exit(1)
	}

	jsonPath, err := rep.WriteJSON(report, *baseName)
	if err != nil {
		logger.Error("Failed to write JSON", "error", err)
		os.Exit(1)
	}

	logger.Info("Variance report written",
		"items", report.Metrics.ItemCount,
		"diff_value", report.Metrics.TotalDiffValue,
		"csv", csvPath,
		"json", jsonPath)
}
