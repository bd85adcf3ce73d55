package bonus

import (
	"github.com/shopspring/decimal"
	"github.com/vladislav25v/sales-bonus/internal/domain/sales"
	"github.com/vladislav25v/sales-bonus/internal/domain/shared/strategy"
)

// FlatRateBonusStrategy pays every seller the same share of profit
type FlatRateBonusStrategy struct {
	strategy.BaseStrategy
	rate decimal.Decimal
}

// NewFlatRateBonusStrategy creates a flat rate strategy
func NewFlatRateBonusStrategy(rate decimal.Decimal) *FlatRateBonusStrategy {
	return &FlatRateBonusStrategy{
		BaseStrategy: strategy.NewBaseStrategy(
			"flat_rate",
			strategy.StrategyTypeBonus,
			"Same share of profit for every seller regardless of rank",
		),
		rate: rate,
	}
}

// CalculateBonus returns profit * rate; losses earn nothing
func (s *FlatRateBonusStrategy) CalculateBonus(_, _ int, seller sales.SellerStats) float64 {
	if seller.Profit <= 0 {
		return 0
	}
	if !isFinite(seller.Profit) {
		return seller.Profit * s.rate.InexactFloat64()
	}
	profit := decimal.NewFromFloat(seller.Profit)
	if !profit.IsPositive() {
		return 0
	}
	return profit.Mul(s.rate).InexactFloat64()
}
