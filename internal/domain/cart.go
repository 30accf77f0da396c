package domain

import "github.com/shopspring/decimal"

type CartEntry struct {
	Item     Item `json:"item"`
	Quantity int  `json:"quantity"`
}

type CartSummary struct {
	ItemCount int     `json:"itemCount"`
	Subtotal  float64 `json:"subtotal"`
	Tax       float64 `json:"tax"`
	Shipping  float64 `json:"shipping"`
	Total     float64 `json:"total"`
}

type Cart struct {
	Entries         []CartEntry `json:"entries"`
	Summary         CartSummary `json:"summary"`
	FormattedTotal  string      `json:"formattedTotal,omitempty"`
	CheckoutPending bool        `json:"checkoutPending"`
}

// CheckoutReceipt acknowledges a simulated checkout. No order is recorded.
type CheckoutReceipt struct {
	ItemCount int     `json:"itemCount"`
	Total     float64 `json:"total"`
	Pending   bool    `json:"pending"`
}

// SummarizeCart computes counts and money totals. Tax and shipping are
// always zero.
func SummarizeCart(entries []CartEntry) CartSummary {
	subtotal := decimal.Zero
	count := 0
	for _, e := range entries {
		count += e.Quantity
		line := decimal.NewFromFloat(e.Item.Price).Mul(decimal.NewFromInt(int64(e.Quantity)))
		subtotal = subtotal.Add(line)
	}
	st := subtotal.Round(2).InexactFloat64()
	return CartSummary{
		ItemCount: count,
		Subtotal:  st,
		Total:     st,
	}
}
