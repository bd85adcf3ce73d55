package sales

// Seller is a salesperson as supplied by the caller
type Seller struct {
	ID        string `json:"id" yaml:"id" validate:"required"`
	FirstName string `json:"first_name" yaml:"first_name"`
	LastName  string `json:"last_name" yaml:"last_name"`
	StartDate string `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	Position  string `json:"position,omitempty" yaml:"position,omitempty"`
}

// FullName returns "first last" joined by a single space
func (s Seller) FullName() string {
	return s.FirstName + " " + s.LastName
}

// Product is a catalog card keyed by SKU
type Product struct {
	SKU           string  `json:"sku" yaml:"sku" validate:"required"`
	Name          string  `json:"name,omitempty" yaml:"name,omitempty"`
	Category      string  `json:"category,omitempty" yaml:"category,omitempty"`
	PurchasePrice float64 `json:"purchase_price" yaml:"purchase_price" validate:"gte=0"`
	SalePrice     float64 `json:"sale_price" yaml:"sale_price" validate:"gte=0"`
}

// Item is a single line of a purchase record
type Item struct {
	SKU       string  `json:"sku" yaml:"sku" validate:"required"`
	Quantity  int     `json:"quantity" yaml:"quantity" validate:"gte=0"`
	SalePrice float64 `json:"sale_price" yaml:"sale_price" validate:"gte=0"`
	Discount  float64 `json:"discount" yaml:"discount" validate:"gte=0,lte=100"`
}

// PurchaseRecord is a receipt attributed to one seller
type PurchaseRecord struct {
	ReceiptID     string  `json:"receipt_id,omitempty" yaml:"receipt_id,omitempty"`
	Date          string  `json:"date,omitempty" yaml:"date,omitempty"`
	SellerID      string  `json:"seller_id" yaml:"seller_id" validate:"required"`
	CustomerID    string  `json:"customer_id,omitempty" yaml:"customer_id,omitempty"`
	Items         []Item  `json:"items" yaml:"items" validate:"dive"`
	TotalAmount   float64 `json:"total_amount" yaml:"total_amount"`
	TotalDiscount float64 `json:"total_discount,omitempty" yaml:"total_discount,omitempty"`
}

// Dataset bundles the three input collections of a report run.
// The struct-level tags only express the structural contract (non-empty
// collections); element tags are checked by loaders that opt into dive.
type Dataset struct {
	Sellers         []Seller         `json:"sellers" yaml:"sellers" validate:"required,min=1"`
	Products        []Product        `json:"products" yaml:"products" validate:"required,min=1"`
	PurchaseRecords []PurchaseRecord `json:"purchase_records" yaml:"purchase_records" validate:"required,min=1"`
}
