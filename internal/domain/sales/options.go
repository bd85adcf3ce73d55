package sales

// RevenueCalculator computes the revenue of a single purchase line
type RevenueCalculator interface {
	CalculateRevenue(item Item, product *Product) float64
}

// BonusCalculator computes a seller's bonus from its rank position.
// rank is 0-based after sorting by descending profit.
type BonusCalculator interface {
	CalculateBonus(rank, total int, seller SellerStats) float64
}

// RevenueFunc adapts an ordinary function to RevenueCalculator
type RevenueFunc func(item Item, product *Product) float64

// CalculateRevenue calls f(item, product)
func (f RevenueFunc) CalculateRevenue(item Item, product *Product) float64 {
	return f(item, product)
}

// BonusFunc adapts an ordinary function to BonusCalculator
type BonusFunc func(rank, total int, seller SellerStats) float64

// CalculateBonus calls f(rank, total, seller)
func (f BonusFunc) CalculateBonus(rank, total int, seller SellerStats) float64 {
	return f(rank, total, seller)
}

// Options holds the two policy slots of a report run
type Options struct {
	Revenue RevenueCalculator
	Bonus   BonusCalculator
}

// NewOptions creates options and rejects missing policies up front
func NewOptions(revenue RevenueCalculator, bonus BonusCalculator) (*Options, error) {
	opts := &Options{Revenue: revenue, Bonus: bonus}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

// Validate reports a ValidationError when either policy is missing
func (o *Options) Validate() error {
	if o == nil {
		return NewValidationError(MsgIncorrectOptions)
	}
	var missing []string
	if isNilPolicy(o.Revenue) {
		missing = append(missing, "revenue")
	}
	if isNilPolicy(o.Bonus) {
		missing = append(missing, "bonus")
	}
	if len(missing) > 0 {
		return NewValidationError(MsgMissingPolicies, missing...)
	}
	return nil
}

// isNilPolicy catches both a nil interface and a typed nil func adapter
func isNilPolicy(p any) bool {
	switch v := p.(type) {
	case nil:
		return true
	case RevenueFunc:
		return v == nil
	case BonusFunc:
		return v == nil
	default:
		return false
	}
}
