package exporter

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"retailpulse/pkg/contracts/domain"
)

// ReportExporter renders computed dashboard reports as CSV tables and JSON
// documents for the report CLIs.
type ReportExporter struct {
	csv    *CSVWriter
	dir    string
	logger *slog.Logger
}

// NewReportExporter creates an exporter writing into the given directory
func NewReportExporter(dir string, logger *slog.Logger) *ReportExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportExporter{
		csv:    NewCSVWriter(dir),
		dir:    dir,
		logger: logger.With(slog.String("component", "exporter")),
	}
}

// exportEnvelope wraps a report with export metadata for the JSON output
type exportEnvelope struct {
	ExportID    string      `json:"export_id"`
	GeneratedAt string      `json:"generated_at"`
	Dashboard   string      `json:"dashboard"`
	Report      interface{} `json:"report"`
}

// WriteSalesCSV writes the item table of a sales report as <baseName>.csv
// and returns the written path. One row per joined item plus a header.
func (e *ReportExporter) WriteSalesCSV(report *domain.SalesReport, baseName string) (string, error) {
	headers := []string{"Item Bar Code", "Item Name", "Category", "Cost", "Selling", "Stock"}
	for _, p := range periodsOf(report) {
		headers = append(headers, p+" Total Sales", p+" Total Profit")
	}
	headers = append(headers, "Total Sales", "Total Profit", "Overall GP")

	records := make([][]string, 0, len(report.Items))
	for _, item := range report.Items {
		record := []string{
			item.Barcode,
			item.Name,
			item.Category,
			formatFloat(item.Cost),
			formatFloat(item.Selling),
			formatFloat(item.Stock),
		}
		for _, p := range item.Periods {
			record = append(record, formatFloat(p.Sales), formatFloat(p.Profit))
		}
		record = append(record,
			formatFloat(item.TotalSales),
			formatFloat(item.TotalProfit),
			formatFloat(item.OverallGP),
		)
		records = append(records, record)
	}

	return e.csv.WriteCSV(baseName+".csv", WriteOptions{
		Headers:   headers,
		Records:   records,
		BOMPrefix: true,
	})
}

// WriteVarianceCSV writes all rows of a variance report (top movers first,
// remainder after) as <baseName>.csv and returns the written path. The two
// top listings overlap; rows already emitted via TopByQty are not repeated
// for TopByValue, so the file holds each table row exactly once.
func (e *ReportExporter) WriteVarianceCSV(report *domain.VarianceReport, baseName string) (string, error) {
	headers := []string{
		"Item Bar Code", "Item Name", "Category", "Cost",
		"Book Stock", "Physical Stock", "Diff Stock",
		"Book Value", "Physical Value", "Diff Value",
	}

	rows := make([]domain.VarianceRow, 0,
		len(report.TopByQty)+len(report.TopByValue)+len(report.Remainder))
	rows = append(rows, report.TopByQty...)
	// Multiset match: identical duplicate rows (a barcode repeated in the
	// stock book) stay distinct when only one of them made TopByQty.
	emitted := make(map[domain.VarianceRow]int, len(report.TopByQty))
	for _, row := range report.TopByQty {
		emitted[row]++
	}
	for _, row := range report.TopByValue {
		if emitted[row] > 0 {
			emitted[row]--
			continue
		}
		rows = append(rows, row)
	}
	rows = append(rows, report.Remainder...)

	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{
			row.Barcode,
			row.Name,
			row.Category,
			formatFloat(row.Cost),
			formatFloat(row.BookStock),
			formatFloat(row.PhysicalStock),
			formatFloat(row.DiffStock),
			formatFloat(row.BookValue),
			formatFloat(row.PhysicalValue),
			formatFloat(row.DiffValue),
		})
	}

	return e.csv.WriteCSV(baseName+".csv", WriteOptions{
		Headers:   headers,
		Records:   records,
		BOMPrefix: true,
	})
}

// WriteJSON writes the full report payload as <baseName>.json with export
// metadata and returns the written path.
func (e *ReportExporter) WriteJSON(report interface{}, baseName string) (string, error) {
	var dashboard string
	switch report.(type) {
	case *domain.SalesReport:
		dashboard = "sales"
	case *domain.VarianceReport:
		dashboard = "variance"
	default:
		return "", fmt.Errorf("unsupported report type %T", report)
	}

	envelope := exportEnvelope{
		ExportID:    uuid.New().String(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Dashboard:   dashboard,
		Report:      report,
	}

	fullPath := filepath.Join(e.dir, baseName+".json")
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	e.logger.Info("wrote report JSON",
		slog.String("path", fullPath),
		slog.String("export_id", envelope.ExportID))
	return fullPath, nil
}

// periodsOf returns the period labels of the first item, or nil for an empty
// report. All rows carry the same period slice shape by construction.
func periodsOf(report *domain.SalesReport) []string {
	if len(report.Items) == 0 {
		return nil
	}
	labels := make([]string, 0, len(report.Items[0].Periods))
	for _, p := range report.Items[0].Periods {
		labels = append(labels, p.Period)
	}
	return labels
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
