package strategy

import "github.com/vladislav25v/sales-bonus/internal/domain/sales"

// RevenueStrategy is a named line-revenue policy
type RevenueStrategy interface {
	Strategy
	sales.RevenueCalculator
}

// BonusStrategy is a named rank-based bonus policy
type BonusStrategy interface {
	Strategy
	sales.BonusCalculator
}
