package report

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/vladislav25v/sales-bonus/internal/domain/sales"
)

// moneyPlaces is the precision of revenue, profit and bonus in a report
const moneyPlaces = 2

// exactDigits is enough fractional digits to print any float64 exactly
const exactDigits = 1074

// roundMoney rounds half away from zero at two decimal places, working on
// the exact binary value of x (so 2.675, stored as 2.67499..., becomes 2.67).
func roundMoney(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	exact, err := decimal.NewFromString(strconv.FormatFloat(x, 'f', exactDigits, 64))
	if err != nil {
		return x
	}
	return exact.Round(moneyPlaces).InexactFloat64()
}

func formatReport(ranked []rankedSeller) []sales.SellerReport {
	reports := make([]sales.SellerReport, 0, len(ranked))
	for _, r := range ranked {
		reports = append(reports, sales.SellerReport{
			SellerID:    r.acc.id,
			Name:        r.acc.name,
			Revenue:     roundMoney(r.acc.revenue),
			Profit:      roundMoney(r.acc.profit),
			SalesCount:  r.acc.salesCount,
			TopProducts: r.topProducts,
			Bonus:       roundMoney(r.bonus),
		})
	}
	return reports
}
