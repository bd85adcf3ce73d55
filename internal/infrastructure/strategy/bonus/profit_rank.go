package bonus

import (
	"math"

	"github.com/shopspring/decimal"
	"github.com/vladislav25v/sales-bonus/internal/domain/sales"
	"github.com/vladislav25v/sales-bonus/internal/domain/shared/strategy"
)

// Rates holds the share of profit paid at each rank tier
type Rates struct {
	First   decimal.Decimal `json:"first"`   // rank 0
	Podium  decimal.Decimal `json:"podium"`  // ranks 1 and 2
	Default decimal.Decimal `json:"default"` // everyone else
	Last    decimal.Decimal `json:"last"`    // last rank
}

// DefaultRates returns the 15% / 10% / 5% / 0% scheme
func DefaultRates() Rates {
	return Rates{
		First:   decimal.NewFromFloat(0.15),
		Podium:  decimal.NewFromFloat(0.10),
		Default: decimal.NewFromFloat(0.05),
		Last:    decimal.Zero,
	}
}

// ProfitRankBonusStrategy pays a share of profit chosen by rank position
type ProfitRankBonusStrategy struct {
	strategy.BaseStrategy
	rates Rates
}

// NewProfitRankBonusStrategy creates a profit rank strategy with the given rates
func NewProfitRankBonusStrategy(rates Rates) *ProfitRankBonusStrategy {
	return &ProfitRankBonusStrategy{
		BaseStrategy: strategy.NewBaseStrategy(
			"profit_rank",
			strategy.StrategyTypeBonus,
			"Tiered share of profit by rank: top seller, runners-up, last place, everyone else",
		),
		rates: rates,
	}
}

// DefaultProfitRankBonusStrategy creates a profit rank strategy with DefaultRates
func DefaultProfitRankBonusStrategy() *ProfitRankBonusStrategy {
	return NewProfitRankBonusStrategy(DefaultRates())
}

// Rates returns the configured rates
func (s *ProfitRankBonusStrategy) Rates() Rates {
	return s.rates
}

// CalculateBonus returns profit times the tier rate. Tiers are checked in
// order first, podium, last, so a lone seller gets the first-place rate.
// Non-finite profit is multiplied as a float since decimal cannot hold it.
func (s *ProfitRankBonusStrategy) CalculateBonus(rank, total int, seller sales.SellerStats) float64 {
	rate := s.rateFor(rank, total)
	if !isFinite(seller.Profit) {
		return seller.Profit * rate.InexactFloat64()
	}
	return rate.Mul(decimal.NewFromFloat(seller.Profit)).InexactFloat64()
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func (s *ProfitRankBonusStrategy) rateFor(rank, total int) decimal.Decimal {
	switch {
	case rank == 0:
		return s.rates.First
	case rank == 1 || rank == 2:
		return s.rates.Podium
	case rank == total-1:
		return s.rates.Last
	default:
		return s.rates.Default
	}
}
