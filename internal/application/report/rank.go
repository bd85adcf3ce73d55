package report

import (
	"sort"

	"github.com/vladislav25v/sales-bonus/internal/domain/sales"
)

// TopProductsLimit caps the top products list of each seller
const TopProductsLimit = 10

type rankedSeller struct {
	acc         *sellerAccumulator
	bonus       float64
	topProducts []sales.TopProduct
}

// rank orders sellers by descending profit (stable, so equal profits keep
// input order) and asks the bonus policy for each rank position.
func rank(sellers []*sellerAccumulator, bonus sales.BonusCalculator) []rankedSeller {
	ordered := make([]*sellerAccumulator, len(sellers))
	copy(ordered, sellers)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].profit > ordered[j].profit
	})

	total := len(ordered)
	ranked := make([]rankedSeller, 0, total)
	for i, acc := range ordered {
		ranked = append(ranked, rankedSeller{
			acc:         acc,
			bonus:       bonus.CalculateBonus(i, total, acc.stats()),
			topProducts: topProducts(acc),
		})
	}
	return ranked
}

// topProducts returns up to TopProductsLimit SKUs by descending quantity;
// equal quantities keep first-seen order.
func topProducts(acc *sellerAccumulator) []sales.TopProduct {
	products := make([]sales.TopProduct, 0, len(acc.productOrder))
	for _, sku := range acc.productOrder {
		products = append(products, sales.TopProduct{SKU: sku, Quantity: acc.productsSold[sku]})
	}
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Quantity > products[j].Quantity
	})
	if len(products) > TopProductsLimit {
		products = products[:TopProductsLimit]
	}
	return products
}
