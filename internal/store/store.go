// Package store holds one visitor's storefront state: the favorites set, the
// cart and any pending checkout. It replaces an ambient shared context; every
// use case receives the Store it operates on.
package store

import (
	"storefront/internal/domain"
	"sync"
	"time"
)

type Store struct {
	id string

	mu        sync.Mutex
	favorites map[string]struct{}
	cart      []domain.CartEntry
	checkout  *pendingCheckout
	closed    bool
}

type pendingCheckout struct {
	receipt domain.CheckoutReceipt
	timer   *time.Timer
}

func New(id string) *Store {
	return &Store{
		id:        id,
		favorites: make(map[string]struct{}),
	}
}

func (s *Store) ID() string {
	return s.id
}

// --- Favorites ---

// ToggleFavorite flips membership and reports whether id is now a favorite.
func (s *Store) ToggleFavorite(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.favorites[id]; ok {
		delete(s.favorites, id)
		return false
	}
	s.favorites[id] = struct{}{}
	return true
}

// RemoveFavorite reports whether id was a favorite.
func (s *Store) RemoveFavorite(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.favorites[id]
	delete(s.favorites, id)
	return ok
}

func (s *Store) ClearFavorites() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.favorites = make(map[string]struct{})
}

// Favorites returns a copy of the favorites set.
func (s *Store) Favorites() map[string]struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]struct{}, len(s.favorites))
	for id := range s.favorites {
		out[id] = struct{}{}
	}
	return out
}

// --- Cart ---

// AddToCart increments an existing entry or appends a new one with quantity 1.
func (s *Store) AddToCart(item domain.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addLocked(item)
}

func (s *Store) addLocked(item domain.Item) {
	for i := range s.cart {
		if s.cart[i].Item.ID == item.ID {
			s.cart[i].Quantity++
			return
		}
	}
	s.cart = append(s.cart, domain.CartEntry{Item: item, Quantity: 1})
}

// SetQuantity sets an entry's quantity; quantity <= 0 removes it. Unknown ids
// are ignored. Reports whether an entry was changed.
func (s *Store) SetQuantity(id string, quantity int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].Item.ID != id {
			continue
		}
		if quantity <= 0 {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
		} else {
			s.cart[i].Quantity = quantity
		}
		return true
	}
	return false
}

// RemoveFromCart reports whether an entry was removed.
func (s *Store) RemoveFromCart(id string) bool {
	return s.SetQuantity(id, 0)
}

func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
}

// CartEntries returns a copy of the cart in insertion order.
func (s *Store) CartEntries() []domain.CartEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.CartEntry(nil), s.cart...)
}

// --- Wishlist to cart ---

// MoveFavoriteToCart adds item to the cart and drops it from the favorites in
// one step.
func (s *Store) MoveFavoriteToCart(item domain.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.addLocked(item)
	delete(s.favorites, item.ID)
}

// MoveFavoritesToCart adds every item to the cart and clears the favorites.
// items should be the wishlist in catalog order.
func (s *Store) MoveFavoritesToCart(items []domain.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, it := range items {
		s.addLocked(it)
	}
	s.favorites = make(map[string]struct{})
}

// --- Checkout ---

// BeginCheckout schedules the cart to be emptied after delay and returns the
// receipt. While a checkout is pending, the pending receipt is returned and
// started is false. onDone runs after the cart was cleared.
func (s *Store) BeginCheckout(delay time.Duration, onDone func(domain.CheckoutReceipt)) (receipt domain.CheckoutReceipt, started bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.checkout != nil {
		return s.checkout.receipt, false
	}

	summary := domain.SummarizeCart(s.cart)
	receipt = domain.CheckoutReceipt{
		ItemCount: summary.ItemCount,
		Total:     summary.Total,
	}
	if summary.ItemCount == 0 || s.closed {
		return receipt, false
	}

	receipt.Pending = true
	pc := &pendingCheckout{receipt: receipt}
	pc.timer = time.AfterFunc(delay, func() {
		s.mu.Lock()
		if s.checkout != pc {
			s.mu.Unlock()
			return
		}
		s.cart = nil
		s.checkout = nil
		s.mu.Unlock()

		if onDone != nil {
			done := pc.receipt
			done.Pending = false
			onDone(done)
		}
	})
	s.checkout = pc
	return receipt, true
}

func (s *Store) CheckoutPending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkout != nil
}

// Close stops a pending checkout timer. Called when the session is discarded.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	if s.checkout != nil {
		s.checkout.timer.Stop()
		s.checkout = nil
	}
}
