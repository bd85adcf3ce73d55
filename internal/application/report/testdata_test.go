package report

import (
	"github.com/vladislav25v/sales-bonus/internal/domain/sales"
	"github.com/vladislav25v/sales-bonus/internal/infrastructure/dataset"
)

// simpleRevenue mirrors the default discount revenue policy
var simpleRevenue = sales.RevenueFunc(func(item sales.Item, _ *sales.Product) float64 {
	discountFraction := item.Discount / 100
	return item.SalePrice * float64(item.Quantity) * (1 - discountFraction)
})

// profitRankBonus mirrors the default 15/10/0/5 bonus policy
var profitRankBonus = sales.BonusFunc(func(rank, total int, seller sales.SellerStats) float64 {
	switch {
	case rank == 0:
		return seller.Profit * 0.15
	case rank == 1 || rank == 2:
		return seller.Profit * 0.1
	case rank == total-1:
		return 0
	default:
		return seller.Profit * 0.05
	}
})

func defaultOptions() *sales.Options {
	return &sales.Options{Revenue: simpleRevenue, Bonus: profitRankBonus}
}

// twoSellerDataset is the minimal scenario: one product, S1 sells five
// units in one receipt, S2 sells nothing.
func twoSellerDataset() *sales.Dataset {
	return &sales.Dataset{
		Sellers: []sales.Seller{
			{ID: "S1", FirstName: "Ivan", LastName: "Petrov"},
			{ID: "S2", FirstName: "Olga", LastName: "Sidorova"},
		},
		Products: []sales.Product{
			{SKU: "A", Name: "Widget", PurchasePrice: 10, SalePrice: 20},
		},
		PurchaseRecords: []sales.PurchaseRecord{
			{
				ReceiptID:   "R1",
				SellerID:    "S1",
				TotalAmount: 100,
				Items: []sales.Item{
					{SKU: "A", Quantity: 5, SalePrice: 20, Discount: 0},
				},
			},
		},
	}
}

// fakeDataset generates a reproducible dataset with referential integrity
func fakeDataset(seed uint64, sellers, products, records int) *sales.Dataset {
	data, err := dataset.Generate(dataset.GeneratorConfig{
		Seed:     seed,
		Sellers:  sellers,
		Products: products,
		Records:  records,
		MaxItems: 6,
	})
	if err != nil {
		panic(err)
	}
	return data
}
