package strategy

import (
	"github.com/shopspring/decimal"
	"github.com/vladislav25v/sales-bonus/internal/domain/shared/strategy"
	"github.com/vladislav25v/sales-bonus/internal/infrastructure/strategy/bonus"
	"github.com/vladislav25v/sales-bonus/internal/infrastructure/strategy/revenue"
)

// DefaultFlatBonusRate is the flat_rate strategy share when none is configured
var DefaultFlatBonusRate = decimal.NewFromFloat(0.05)

// NewRegistryWithDefaults creates a new registry with default strategies registered.
// The profit rank bonus uses the 15/10/5/0 scheme; use NewRegistryWithRates to
// configure different shares.
func NewRegistryWithDefaults() (*StrategyRegistry, error) {
	return NewRegistryWithRates(bonus.DefaultRates(), DefaultFlatBonusRate)
}

// NewRegistryWithRates creates a new registry with the built-in strategies,
// using rankRates for profit_rank and flatRate for flat_rate.
func NewRegistryWithRates(rankRates bonus.Rates, flatRate decimal.Decimal) (*StrategyRegistry, error) {
	r := NewStrategyRegistry()

	// Register revenue strategies
	discount := revenue.NewDiscountRevenueStrategy()
	if err := r.RegisterRevenueStrategy(discount); err != nil {
		return nil, err
	}

	listPrice := revenue.NewListPriceRevenueStrategy()
	if err := r.RegisterRevenueStrategy(listPrice); err != nil {
		return nil, err
	}

	// Register bonus strategies
	profitRank := bonus.NewProfitRankBonusStrategy(rankRates)
	if err := r.RegisterBonusStrategy(profitRank); err != nil {
		return nil, err
	}

	flat := bonus.NewFlatRateBonusStrategy(flatRate)
	if err := r.RegisterBonusStrategy(flat); err != nil {
		return nil, err
	}

	// Set defaults
	if err := r.SetDefault(strategy.StrategyTypeRevenue, discount.Name()); err != nil {
		return nil, err
	}
	if err := r.SetDefault(strategy.StrategyTypeBonus, profitRank.Name()); err != nil {
		return nil, err
	}

	return r, nil
}
