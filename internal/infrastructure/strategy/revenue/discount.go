package revenue

import (
	"github.com/vladislav25v/sales-bonus/internal/domain/sales"
	"github.com/vladislav25v/sales-bonus/internal/domain/shared/strategy"
)

// DiscountRevenueStrategy prices a line at its own sale price minus the
// line discount percentage
type DiscountRevenueStrategy struct {
	strategy.BaseStrategy
}

// NewDiscountRevenueStrategy creates a new discount revenue strategy
func NewDiscountRevenueStrategy() *DiscountRevenueStrategy {
	return &DiscountRevenueStrategy{
		BaseStrategy: strategy.NewBaseStrategy(
			"discount",
			strategy.StrategyTypeRevenue,
			"Line sale price times quantity, less the line discount percentage",
		),
	}
}

// CalculateRevenue returns sale_price * quantity * (1 - discount/100)
func (s *DiscountRevenueStrategy) CalculateRevenue(item sales.Item, _ *sales.Product) float64 {
	discountFraction := item.Discount / 100
	return item.SalePrice * float64(item.Quantity) * (1 - discountFraction)
}
