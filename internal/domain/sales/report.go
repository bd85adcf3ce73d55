package sales

// SellerStats is a read-only snapshot of a seller's running totals.
// It is what bonus policies see; mutating it has no effect on the report.
type SellerStats struct {
	ID         string
	Name       string
	Revenue    float64
	Profit     float64
	SalesCount int
}

// TopProduct is a SKU with the cumulative quantity a seller sold
type TopProduct struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

// SellerReport is one row of the ranked performance report
type SellerReport struct {
	SellerID    string       `json:"seller_id"`
	Name        string       `json:"name"`
	Revenue     float64      `json:"revenue"`
	Profit      float64      `json:"profit"`
	SalesCount  int          `json:"sales_count"`
	TopProducts []TopProduct `json:"top_products"`
	Bonus       float64      `json:"bonus"`
}
