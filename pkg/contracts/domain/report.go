package domain

// UnknownCategory is the sentinel assigned to rows whose category is missing
// or empty so that every row lands in exactly one group.
const UnknownCategory = "Unknown"

// AllCategories is the filter sentinel meaning "no category filter".
const AllCategories = "All"

// ReportFilter narrows a joined table before row-level derivation. Stages
// apply in order (category, name, barcode) and compose as logical AND; the
// zero value selects everything.
type ReportFilter struct {
	Category string `json:"category" validate:"omitempty,max=100"`
	Name     string `json:"name" validate:"omitempty,max=100"`
	Barcode  string `json:"barcode" validate:"omitempty,max=50"`
}

// MonthlyPoint is one bar of the month-wise chart dataset: summed sales and
// profit for a single period over the filtered rows.
type MonthlyPoint struct {
	Period string  `json:"period" csv:"Month"`
	Sales  float64 `json:"sales" csv:"Sales"`
	Profit float64 `json:"profit" csv:"Profit"`
}

// CategorySummary is one row of the category-wise sales overview.
type CategorySummary struct {
	Category    string  `json:"category" csv:"Category"`
	TotalSales  float64 `json:"total_sales" csv:"Total Sales"`
	TotalProfit float64 `json:"total_profit" csv:"Total Profit"`
	GPPercent   float64 `json:"gp_percent" csv:"GP%"`
}

// VarianceCategorySummary is one row of the category-wise variance overview.
type VarianceCategorySummary struct {
	Category        string  `json:"category" csv:"Category"`
	BookStock       float64 `json:"book_stock" csv:"Book Stock"`
	PhysicalStock   float64 `json:"physical_stock" csv:"Physical Stock"`
	DiffStock       float64 `json:"diff_stock" csv:"Diff Stock"`
	BookValue       float64 `json:"book_value" csv:"Book Value"`
	DiffValue       float64 `json:"diff_value" csv:"Diff Value"`
	VariancePercent float64 `json:"variance_percent" csv:"Variance%"`
}

// SalesMetrics are the headline numbers of the sales dashboard, computed over
// the filtered rows.
type SalesMetrics struct {
	TotalSales  float64 `json:"total_sales"`
	TotalProfit float64 `json:"total_profit"`
	OverallGP   float64 `json:"overall_gp"`
	ItemCount   int     `json:"item_count"`
}

// VarianceMetrics are the headline numbers of the variance dashboard.
type VarianceMetrics struct {
	TotalBookValue     float64 `json:"total_book_value"`
	TotalPhysicalValue float64 `json:"total_physical_value"`
	TotalDiffValue     float64 `json:"total_diff_value"`
	StockVariancePct   float64 `json:"stock_variance_pct"`
	ItemCount          int     `json:"item_count"`
}

// SalesReport is the full sales dashboard payload. Categories is always
// aggregated over the unfiltered join; everything else reflects the filter.
type SalesReport struct {
	Filter     ReportFilter      `json:"filter"`
	Metrics    SalesMetrics      `json:"metrics"`
	Monthly    []MonthlyPoint    `json:"monthly"`
	Categories []CategorySummary `json:"categories"`
	Items      []SalesRow        `json:"items"`
}

// VarianceReport is the full variance dashboard payload. TopByQty and
// TopByValue spotlight the thirty largest discrepancies by absolute quantity
// and by signed value; Remainder is everything else.
type VarianceReport struct {
	Filter     ReportFilter              `json:"filter"`
	Metrics    VarianceMetrics           `json:"metrics"`
	TopByQty   []VarianceRow             `json:"top_by_qty"`
	TopByValue []VarianceRow             `json:"top_by_value"`
	Remainder  []VarianceRow             `json:"remainder"`
	Categories []VarianceCategorySummary `json:"categories"`
}
