package dataset

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/vladislav25v/sales-bonus/internal/domain/sales"
	"github.com/vladislav25v/sales-bonus/internal/domain/shared"
	"gopkg.in/yaml.v3"
)

// GeneratorConfig sizes a generated dataset
type GeneratorConfig struct {
	Seed     uint64 // 0 picks a random seed
	Sellers  int
	Products int
	Records  int
	MaxItems int // lines per purchase record, at least 1
}

// DefaultGeneratorConfig returns a small reproducible dataset size
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Seed:     1,
		Sellers:  5,
		Products: 20,
		Records:  200,
		MaxItems: 5,
	}
}

func (c GeneratorConfig) validate() error {
	if c.Sellers < 1 || c.Products < 1 || c.Records < 1 {
		return fmt.Errorf("%w: sellers, products and records must be positive", shared.ErrInvalidInput)
	}
	if c.MaxItems < 1 {
		return fmt.Errorf("%w: max items must be at least 1", shared.ErrInvalidInput)
	}
	return nil
}

// Generate builds a fake dataset with referential integrity: every purchase
// record points at a generated seller and every item at a generated product.
// total_amount is the sum of discounted line totals.
func Generate(cfg GeneratorConfig) (*sales.Dataset, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	f := gofakeit.New(cfg.Seed)
	data := &sales.Dataset{
		Sellers:         make([]sales.Seller, 0, cfg.Sellers),
		Products:        make([]sales.Product, 0, cfg.Products),
		PurchaseRecords: make([]sales.PurchaseRecord, 0, cfg.Records),
	}

	for i := 0; i < cfg.Sellers; i++ {
		data.Sellers = append(data.Sellers, sales.Seller{
			ID:        fmt.Sprintf("seller_%d", i+1),
			FirstName: f.FirstName(),
			LastName:  f.LastName(),
			StartDate: f.Date().Format("2006-01-02"),
			Position:  f.JobTitle(),
		})
	}

	for i := 0; i < cfg.Products; i++ {
		purchase := f.Price(1, 500)
		data.Products = append(data.Products, sales.Product{
			SKU:           fmt.Sprintf("SKU_%03d", i+1),
			Name:          f.ProductName(),
			Category:      f.ProductCategory(),
			PurchasePrice: purchase,
			SalePrice:     purchase * f.Float64Range(1.1, 1.8),
		})
	}

	for i := 0; i < cfg.Records; i++ {
		seller := data.Sellers[f.Number(0, cfg.Sellers-1)]
		record := sales.PurchaseRecord{
			ReceiptID:  fmt.Sprintf("receipt_%d", i+1),
			Date:       f.Date().Format("2006-01-02"),
			SellerID:   seller.ID,
			CustomerID: f.UUID(),
		}

		lines := f.Number(1, cfg.MaxItems)
		for j := 0; j < lines; j++ {
			product := data.Products[f.Number(0, cfg.Products-1)]
			item := sales.Item{
				SKU:       product.SKU,
				Quantity:  f.Number(1, 20),
				SalePrice: product.SalePrice,
				Discount:  float64(f.Number(0, 30)),
			}
			gross := item.SalePrice * float64(item.Quantity)
			net := gross * (1 - item.Discount/100)
			record.Items = append(record.Items, item)
			record.TotalAmount += net
			record.TotalDiscount += gross - net
		}
		data.PurchaseRecords = append(data.PurchaseRecords, record)
	}

	return data, nil
}

// Write encodes the dataset in the given format
func Write(w io.Writer, data *sales.Dataset, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: unknown dataset format %q", shared.ErrInvalidInput, format)
	}
}
