package dataprocessing

import (
	"log/slog"

	"retailpulse/pkg/contracts/domain"
)

// Workbook column names. These are exact, case-sensitive matches against
// the export headers the retail system produces.
const (
	ColBarcode       = "Item Bar Code"
	ColItemCode      = "Item Code"
	ColItemName      = "Item Name"
	ColCategory      = "Category"
	ColCost          = "Cost"
	ColSelling       = "Selling"
	ColStock         = "Stock"
	ColBookStock     = "Book Stock"
	ColPhysicalStock = "Physical Stock"
)

// Periods are the reporting months of the sales workbook, in chart order.
var Periods = []string{"Jul-2025", "Aug-2025", "Sep-2025"}

// SalesColumn returns the sales column header for a period.
func SalesColumn(period string) string { return period + " Total Sales" }

// ProfitColumn returns the profit column header for a period.
func ProfitColumn(period string) string { return period + " Total Profit" }

// LoadPriceList reads the price list workbook. The barcode column is
// required; name, category, cost, selling, and stock are synthesized as
// empty/zero when absent. Rows without a barcode are dropped.
func LoadPriceList(path string) ([]domain.PriceItem, error) {
	s, err := openSheet(path)
	if err != nil {
		return nil, err
	}
	if err := s.require(ColBarcode); err != nil {
		return nil, err
	}

	items := make([]domain.PriceItem, 0, len(s.rows))
	for _, row := range s.rows {
		if s.empty(row) {
			continue
		}
		key := normalizeKey(s.str(row, ColBarcode))
		if key == "" {
			continue
		}
		items = append(items, domain.PriceItem{
			Barcode:  key,
			Name:     s.str(row, ColItemName),
			Category: s.str(row, ColCategory),
			Cost:     s.float(row, ColCost),
			Selling:  s.float(row, ColSelling),
			Stock:    s.float(row, ColStock),
		})
	}

	slog.Debug("loaded price list",
		slog.String("path", path),
		slog.Int("items", len(items)),
		slog.Bool("has_category", s.has(ColCategory)))

	return items, nil
}

// LoadSalesRecords reads the quarterly sales workbook. The item code column
// is required; each period's sales/profit pair is synthesized as zero when
// the column is absent, so a workbook covering only one month still yields
// three periods per record.
func LoadSalesRecords(path string) ([]domain.SalesRecord, error) {
	s, err := openSheet(path)
	if err != nil {
		return nil, err
	}
	if err := s.require(ColItemCode); err != nil {
		return nil, err
	}

	records := make([]domain.SalesRecord, 0, len(s.rows))
	for _, row := range s.rows {
		if s.empty(row) {
			continue
		}
		key := normalizeKey(s.str(row, ColItemCode))
		if key == "" {
			continue
		}
		rec := domain.SalesRecord{
			ItemCode: key,
			Periods:  make([]domain.PeriodSales, 0, len(Periods)),
		}
		for _, period := range Periods {
			rec.Periods = append(rec.Periods, domain.PeriodSales{
				Period: period,
				Sales:  s.float(row, SalesColumn(period)),
				Profit: s.float(row, ProfitColumn(period)),
			})
		}
		records = append(records, rec)
	}

	slog.Debug("loaded sales records",
		slog.String("path", path),
		slog.Int("records", len(records)))

	return records, nil
}

// LoadStockBook reads the stock book workbook, the reference table of the
// variance dashboard.
func LoadStockBook(path string) ([]domain.StockBookItem, error) {
	s, err := openSheet(path)
	if err != nil {
		return nil, err
	}
	if err := s.require(ColBarcode); err != nil {
		return nil, err
	}

	items := make([]domain.StockBookItem, 0, len(s.rows))
	for _, row := range s.rows {
		if s.empty(row) {
			continue
		}
		key := normalizeKey(s.str(row, ColBarcode))
		if key == "" {
			continue
		}
		items = append(items, domain.StockBookItem{
			Barcode:   key,
			Name:      s.str(row, ColItemName),
			Category:  s.str(row, ColCategory),
			Cost:      s.float(row, ColCost),
			BookStock: s.float(row, ColBookStock),
		})
	}

	slog.Debug("loaded stock book",
		slog.String("path", path),
		slog.Int("items", len(items)))

	return items, nil
}

// LoadPhysicalCounts reads the physical count workbook. A missing count
// column yields zero counts rather than an error.
func LoadPhysicalCounts(path string) ([]domain.PhysicalCount, error) {
	s, err := openSheet(path)
	if err != nil {
		return nil, err
	}
	if err := s.require(ColBarcode); err != nil {
		return nil, err
	}

	counts := make([]domain.PhysicalCount, 0, len(s.rows))
	for _, row := range s.rows {
		if s.empty(row) {
			continue
		}
		key := normalizeKey(s.str(row, ColBarcode))
		if key == "" {
			continue
		}
		counts = append(counts, domain.PhysicalCount{
			Barcode:       key,
			PhysicalStock: s.float(row, ColPhysicalStock),
		})
	}

	slog.Debug("loaded physical counts",
		slog.String("path", path),
		slog.Int("counts", len(counts)))

	return counts, nil
}
