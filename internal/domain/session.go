package domain

import (
	"context"
	"time"
)

// Summary feeds the header badges.
type Summary struct {
	WishlistCount int `json:"wishlistCount"`
	CartCount     int `json:"cartCount"`
}

// --- Notifications ---

type NotificationKind string

const (
	NotifyWishlistAdded   NotificationKind = "wishlist_added"
	NotifyWishlistRemoved NotificationKind = "wishlist_removed"
	NotifyWishlistCleared NotificationKind = "wishlist_cleared"
	NotifyMovedToCart     NotificationKind = "moved_to_cart"
	NotifyCartAdded       NotificationKind = "cart_added"
	NotifyCheckoutStarted NotificationKind = "checkout_started"
	NotifyCheckoutDone    NotificationKind = "checkout_completed"
)

// Notification is the advisory, toast-equivalent message emitted after a user
// action. Delivery is best effort.
type Notification struct {
	Kind        NotificationKind `json:"kind"`
	SessionID   string           `json:"sessionId"`
	ItemID      string           `json:"itemId,omitempty"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	At          time.Time        `json:"at"`
}

type Notifier interface {
	Notify(ctx context.Context, n Notification)
}
