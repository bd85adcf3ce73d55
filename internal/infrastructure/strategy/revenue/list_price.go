package revenue

import (
	"github.com/vladislav25v/sales-bonus/internal/domain/sales"
	"github.com/vladislav25v/sales-bonus/internal/domain/shared/strategy"
)

// ListPriceRevenueStrategy ignores line pricing and uses the catalog sale price
type ListPriceRevenueStrategy struct {
	strategy.BaseStrategy
}

// NewListPriceRevenueStrategy creates a new list price revenue strategy
func NewListPriceRevenueStrategy() *ListPriceRevenueStrategy {
	return &ListPriceRevenueStrategy{
		BaseStrategy: strategy.NewBaseStrategy(
			"list_price",
			strategy.StrategyTypeRevenue,
			"Catalog sale price times quantity, no discounts",
		),
	}
}

// CalculateRevenue returns product.sale_price * quantity
func (s *ListPriceRevenueStrategy) CalculateRevenue(item sales.Item, product *sales.Product) float64 {
	return product.SalePrice * float64(item.Quantity)
}
