package report

import "github.com/vladislav25v/sales-bonus/internal/domain/sales"

// aggregate walks purchase records and their items once, in input order,
// and accumulates revenue, profit, sales count and quantities per seller.
// A record or item that points outside the dataset aborts the run.
func aggregate(records []sales.PurchaseRecord, idx *index, revenue sales.RevenueCalculator) error {
	for _, record := range records {
		seller, ok := idx.sellerByID[record.SellerID]
		if !ok {
			return &sales.IntegrityError{Kind: sales.RefSeller, Key: record.SellerID, ReceiptID: record.ReceiptID}
		}

		seller.salesCount++
		seller.revenue += record.TotalAmount

		for _, item := range record.Items {
			product, ok := idx.productBySKU[item.SKU]
			if !ok {
				return &sales.IntegrityError{Kind: sales.RefProduct, Key: item.SKU, ReceiptID: record.ReceiptID}
			}

			lineRevenue := revenue.CalculateRevenue(item, product)
			cost := product.PurchasePrice * float64(item.Quantity)
			seller.profit += lineRevenue - cost

			seller.addSold(item.SKU, item.Quantity)
		}
	}
	return nil
}
