package usecase

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/domain"
	"storefront/internal/store"
	"storefront/pkg/logger"
)

type CartUsecase struct {
	repo          domain.CatalogRepository
	notifier      domain.Notifier
	prices        PriceFormatter
	checkoutDelay time.Duration
}

func NewCartUsecase(repo domain.CatalogRepository, notifier domain.Notifier, prices PriceFormatter, checkoutDelay time.Duration) *CartUsecase {
	if repo == nil {
		panic("usecase: NewCartUsecase requires a catalog repository")
	}
	return &CartUsecase{
		repo:          repo,
		notifier:      orNoop(notifier),
		prices:        prices,
		checkoutDelay: checkoutDelay,
	}
}

// Add puts one more of id into the cart. Unknown ids are ignored.
func (u *CartUsecase) Add(ctx context.Context, st *store.Store, id string) bool {
	item, ok := u.repo.GetByID(ctx, id)
	if !ok {
		return false
	}

	st.AddToCart(*item)
	u.notify(ctx, st, domain.Notification{
		Kind:        domain.NotifyCartAdded,
		ItemID:      id,
		Title:       "Added to cart",
		Description: fmt.Sprintf("%s has been added to your cart", item.Title),
	})
	return true
}

// SetQuantity sets the quantity of an entry already in the cart; zero or
// below removes it.
func (u *CartUsecase) SetQuantity(ctx context.Context, st *store.Store, id string, quantity int) bool {
	return st.SetQuantity(id, quantity)
}

func (u *CartUsecase) Remove(ctx context.Context, st *store.Store, id string) bool {
	return st.RemoveFromCart(id)
}

func (u *CartUsecase) Clear(ctx context.Context, st *store.Store) {
	st.ClearCart()
}

func (u *CartUsecase) Get(ctx context.Context, st *store.Store) domain.Cart {
	entries := st.CartEntries()
	if entries == nil {
		entries = []domain.CartEntry{}
	}
	cart := domain.Cart{
		Entries:         entries,
		Summary:         domain.SummarizeCart(entries),
		CheckoutPending: st.CheckoutPending(),
	}
	if u.prices != nil {
		cart.FormattedTotal = u.prices.Format(cart.Summary.Total)
	}
	return cart
}

// Checkout simulates order placement: the cart is emptied once the checkout
// delay has elapsed. No order is recorded. The delay is not tied to ctx; a
// checkout runs to completion even if the caller goes away.
func (u *CartUsecase) Checkout(ctx context.Context, st *store.Store) domain.CheckoutReceipt {
	detached := context.WithoutCancel(ctx)

	receipt, started := st.BeginCheckout(u.checkoutDelay, func(done domain.CheckoutReceipt) {
		logger.WithContext(detached).Info().
			Str("session_id", st.ID()).
			Int("items", done.ItemCount).
			Float64("total", done.Total).
			Msg("Checkout completed")
		u.notify(detached, st, domain.Notification{
			Kind:  domain.NotifyCheckoutDone,
			Title: "Checkout complete",
		})
	})
	if started {
		u.notify(ctx, st, domain.Notification{
			Kind:        domain.NotifyCheckoutStarted,
			Title:       "Checkout initiated",
			Description: fmt.Sprintf("Processing %d items worth %s", receipt.ItemCount, u.formatTotal(receipt.Total)),
		})
	}
	return receipt
}

func (u *CartUsecase) formatTotal(total float64) string {
	if u.prices != nil {
		return u.prices.Format(total)
	}
	return fmt.Sprintf("%.2f", total)
}

func (u *CartUsecase) notify(ctx context.Context, st *store.Store, n domain.Notification) {
	n.SessionID = st.ID()
	n.At = time.Now()
	u.notifier.Notify(ctx, n)
}
