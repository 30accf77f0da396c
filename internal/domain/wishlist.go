package domain

import "github.com/shopspring/decimal"

type Wishlist struct {
	Items               []ItemView `json:"items"`
	Count               int        `json:"count"`
	TotalValue          float64    `json:"totalValue"`
	FormattedTotalValue string     `json:"formattedTotalValue,omitempty"`
}

// WishlistValue sums item prices.
func WishlistValue(items []Item) float64 {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(decimal.NewFromFloat(it.Price))
	}
	return total.Round(2).InexactFloat64()
}
