package domain

// PeriodSales holds one month's sales and profit figures for an item.
type PeriodSales struct {
	Period string  `json:"period" csv:"Period"`
	Sales  float64 `json:"sales" csv:"Sales"`
	Profit float64 `json:"profit" csv:"Profit"`
}

// PriceItem is one row of the price list workbook, the reference table
// driving the sales dashboard join. The barcode is normalized to a string
// at load time and never compared as a number downstream.
type PriceItem struct {
	Barcode  string  `json:"barcode" csv:"Item Bar Code"`
	Name     string  `json:"name" csv:"Item Name"`
	Category string  `json:"category" csv:"Category"`
	Cost     float64 `json:"cost" csv:"Cost"`
	Selling  float64 `json:"selling" csv:"Selling"`
	Stock    float64 `json:"stock" csv:"Stock"`
}

// SalesRecord is one row of the quarterly sales workbook, keyed by item code.
// Missing monthly columns are synthesized as zero at load time.
type SalesRecord struct {
	ItemCode string        `json:"item_code" csv:"Item Code"`
	Periods  []PeriodSales `json:"periods"`
}

// SalesRow is a price-list row left-joined with its sales record plus the
// derived totals. Unmatched rows carry zero-valued periods.
type SalesRow struct {
	Barcode  string        `json:"barcode" csv:"Item Bar Code"`
	Name     string        `json:"name" csv:"Item Name"`
	Category string        `json:"category" csv:"Category"`
	Cost     float64       `json:"cost" csv:"Cost"`
	Selling  float64       `json:"selling" csv:"Selling"`
	Stock    float64       `json:"stock" csv:"Stock"`
	Periods  []PeriodSales `json:"periods"`

	TotalSales  float64 `json:"total_sales" csv:"Total Sales"`
	TotalProfit float64 `json:"total_profit" csv:"Total Profit"`
	OverallGP   float64 `json:"overall_gp" csv:"Overall GP"`
}

// StockBookItem is one row of the stock book workbook, the reference table
// driving the variance dashboard join.
type StockBookItem struct {
	Barcode   string  `json:"barcode" csv:"Item Bar Code"`
	Name      string  `json:"name" csv:"Item Name"`
	Category  string  `json:"category" csv:"Category"`
	Cost      float64 `json:"cost" csv:"Cost"`
	BookStock float64 `json:"book_stock" csv:"Book Stock"`
}

// PhysicalCount is one row of the physical count workbook.
type PhysicalCount struct {
	Barcode       string  `json:"barcode" csv:"Item Bar Code"`
	PhysicalStock float64 `json:"physical_stock" csv:"Physical Stock"`
}

// VarianceRow is a stock-book row left-joined with its physical count plus
// the derived difference and value columns. Physical minus book; positive
// means surplus on the shelf.
type VarianceRow struct {
	Barcode       string  `json:"barcode" csv:"Item Bar Code"`
	Name          string  `json:"name" csv:"Item Name"`
	Category      string  `json:"category" csv:"Category"`
	Cost          float64 `json:"cost" csv:"Cost"`
	BookStock     float64 `json:"book_stock" csv:"Book Stock"`
	PhysicalStock float64 `json:"physical_stock" csv:"Physical Stock"`

	DiffStock     float64 `json:"diff_stock" csv:"Diff Stock"`
	BookValue     float64 `json:"book_value" csv:"Book Value"`
	PhysicalValue float64 `json:"physical_value" csv:"Physical Value"`
	DiffValue     float64 `json:"diff_value" csv:"Diff Value"`
}
