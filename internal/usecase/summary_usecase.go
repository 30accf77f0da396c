package usecase

import (
	"storefront/internal/domain"
	"storefront/internal/store"
)

// Summarize returns the header badge counts. Favorites only ever hold catalog
// ids, so the favorites set size is the wishlist count.
func Summarize(st *store.Store) domain.Summary {
	return domain.Summary{
		WishlistCount: len(st.Favorites()),
		CartCount:     domain.SummarizeCart(st.CartEntries()).ItemCount,
	}
}
