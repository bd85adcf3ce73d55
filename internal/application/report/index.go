package report

import "github.com/vladislav25v/sales-bonus/internal/domain/sales"

// sellerAccumulator holds one seller's running totals for a single run.
// productsSold remembers first-seen order in productOrder so ties in the
// top-products list resolve deterministically.
type sellerAccumulator struct {
	id           string
	name         string
	revenue      float64
	profit       float64
	salesCount   int
	productsSold map[string]int
	productOrder []string
}

func newSellerAccumulator(seller sales.Seller) *sellerAccumulator {
	return &sellerAccumulator{
		id:           seller.ID,
		name:         seller.FullName(),
		productsSold: make(map[string]int),
	}
}

func (a *sellerAccumulator) addSold(sku string, quantity int) {
	if _, seen := a.productsSold[sku]; !seen {
		a.productOrder = append(a.productOrder, sku)
	}
	a.productsSold[sku] += quantity
}

func (a *sellerAccumulator) stats() sales.SellerStats {
	return sales.SellerStats{
		ID:         a.id,
		Name:       a.name,
		Revenue:    a.revenue,
		Profit:     a.profit,
		SalesCount: a.salesCount,
	}
}

// index is the lookup state of one run. sellers keeps one accumulator per
// input seller in input order; the maps are last-write-wins on duplicate keys.
type index struct {
	sellers      []*sellerAccumulator
	sellerByID   map[string]*sellerAccumulator
	productBySKU map[string]*sales.Product
}

func buildIndex(data *sales.Dataset) *index {
	idx := &index{
		sellers:      make([]*sellerAccumulator, 0, len(data.Sellers)),
		sellerByID:   make(map[string]*sellerAccumulator, len(data.Sellers)),
		productBySKU: make(map[string]*sales.Product, len(data.Products)),
	}
	for _, seller := range data.Sellers {
		acc := newSellerAccumulator(seller)
		idx.sellers = append(idx.sellers, acc)
		idx.sellerByID[seller.ID] = acc
	}
	for i := range data.Products {
		idx.productBySKU[data.Products[i].SKU] = &data.Products[i]
	}
	return idx
}
