package usecase

import (
	"context"
	"time"

	"storefront/internal/domain"
	"storefront/internal/store"
)

type WishlistUsecase struct {
	repo     domain.CatalogRepository
	notifier domain.Notifier
	prices   PriceFormatter
}

func NewWishlistUsecase(repo domain.CatalogRepository, notifier domain.Notifier, prices PriceFormatter) *WishlistUsecase {
	if repo == nil {
		panic("usecase: NewWishlistUsecase requires a catalog repository")
	}
	return &WishlistUsecase{
		repo:     repo,
		notifier: orNoop(notifier),
		prices:   prices,
	}
}

// Toggle flips the favorite status of id and reports the new status. Ids
// absent from the catalog are ignored.
func (u *WishlistUsecase) Toggle(ctx context.Context, st *store.Store, id string) bool {
	if _, ok := u.repo.GetByID(ctx, id); !ok {
		return false
	}

	favorited := st.ToggleFavorite(id)
	n := domain.Notification{Kind: domain.NotifyWishlistRemoved, Title: "Removed from wishlist"}
	if favorited {
		n = domain.Notification{Kind: domain.NotifyWishlistAdded, Title: "Added to wishlist"}
	}
	n.ItemID = id
	u.notify(ctx, st, n)
	return favorited
}

func (u *WishlistUsecase) Remove(ctx context.Context, st *store.Store, id string) {
	if st.RemoveFavorite(id) {
		u.notify(ctx, st, domain.Notification{Kind: domain.NotifyWishlistRemoved, ItemID: id, Title: "Removed from wishlist"})
	}
}

func (u *WishlistUsecase) Clear(ctx context.Context, st *store.Store) {
	st.ClearFavorites()
	u.notify(ctx, st, domain.Notification{Kind: domain.NotifyWishlistCleared, Title: "Wishlist cleared"})
}

// MoveToCart adds a wishlist item to the cart and removes it from the
// wishlist. Items not on the wishlist are ignored.
func (u *WishlistUsecase) MoveToCart(ctx context.Context, st *store.Store, id string) {
	if _, fav := st.Favorites()[id]; !fav {
		return
	}
	item, ok := u.repo.GetByID(ctx, id)
	if !ok {
		return
	}

	st.MoveFavoriteToCart(*item)
	u.notify(ctx, st, domain.Notification{
		Kind:        domain.NotifyMovedToCart,
		ItemID:      id,
		Title:       "Item added to cart",
		Description: "This item has been moved from your wishlist to the cart.",
	})
}

// MoveAllToCart moves every wishlist item into the cart and empties the
// wishlist.
func (u *WishlistUsecase) MoveAllToCart(ctx context.Context, st *store.Store) {
	items := u.wishlistItems(ctx, st.Favorites())
	if len(items) == 0 {
		return
	}

	st.MoveFavoritesToCart(items)
	u.notify(ctx, st, domain.Notification{
		Kind:        domain.NotifyMovedToCart,
		Title:       "Wishlist items added to cart",
		Description: "All items from your wishlist have been moved to the cart.",
	})
}

// Get returns the wishlist in catalog order.
func (u *WishlistUsecase) Get(ctx context.Context, st *store.Store) domain.Wishlist {
	favorites := st.Favorites()
	items := u.wishlistItems(ctx, favorites)
	total := domain.WishlistValue(items)

	w := domain.Wishlist{
		Items:      projectItems(items, favorites, u.prices),
		Count:      len(items),
		TotalValue: total,
	}
	if u.prices != nil {
		w.FormattedTotalValue = u.prices.Format(total)
	}
	return w
}

func (u *WishlistUsecase) wishlistItems(ctx context.Context, favorites map[string]struct{}) []domain.Item {
	all, _ := u.repo.All(ctx)
	items := make([]domain.Item, 0, len(favorites))
	for _, it := range all {
		if _, ok := favorites[it.ID]; ok {
			items = append(items, it)
		}
	}
	return items
}

func (u *WishlistUsecase) notify(ctx context.Context, st *store.Store, n domain.Notification) {
	n.SessionID = st.ID()
	n.At = time.Now()
	u.notifier.Notify(ctx, n)
}
