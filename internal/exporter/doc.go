// Package exporter writes computed dashboard reports to disk.
//
// This package contains two main components:
//
// CSVWriter: Core CSV writing functionality with support for headers and a
// UTF-8 BOM for Excel compatibility.
//
// ReportExporter: Renders a SalesReport or VarianceReport to a CSV table and
// a JSON document carrying export metadata (export ID, generation time).
//
// Example usage:
//
//	rep := exporter.NewReportExporter("/path/to/out", logger)
//
//	// Export a variance report as CSV and JSON side by side
//	csvPath, err := rep.WriteVarianceCSV(report, "variance")
//	jsonPath, err := rep.WriteJSON(report, "variance")
package exporter
