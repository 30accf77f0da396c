package v1

import (
	"net/http"

	"storefront/internal/domain"
	"storefront/internal/store"
	"storefront/internal/usecase"
)

type WishlistHandler struct {
	wishlistUC *usecase.WishlistUsecase
}

func NewWishlistHandler(uc *usecase.WishlistUsecase) *WishlistHandler {
	return &WishlistHandler{wishlistUC: uc}
}

type toggleResp struct {
	ItemID      string          `json:"itemId"`
	IsFavorited bool            `json:"isFavorited"`
	Wishlist    domain.Wishlist `json:"wishlist"`
}

// GET /api/v1/wishlist
func (h *WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	st, ok := visitorStore(w, r)
	if !ok {
		return
	}
	writeData(w, http.StatusOK, "", h.wishlistUC.Get(r.Context(), st))
}

// POST /api/v1/wishlist/{id}/toggle
func (h *WishlistHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	st, ok := visitorStore(w, r)
	if !ok {
		return
	}
	id := r.PathValue("id")

	favorited := h.wishlistUC.Toggle(r.Context(), st, id)
	writeData(w, http.StatusOK, "", toggleResp{
		ItemID:      id,
		IsFavorited: favorited,
		Wishlist:    h.wishlistUC.Get(r.Context(), st),
	})
}

// DELETE /api/v1/wishlist/{id}
func (h *WishlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, "Removed from wishlist", func(st *store.Store) {
		h.wishlistUC.Remove(r.Context(), st, r.PathValue("id"))
	})
}

// DELETE /api/v1/wishlist
func (h *WishlistHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, "Wishlist cleared", func(st *store.Store) {
		h.wishlistUC.Clear(r.Context(), st)
	})
}

// POST /api/v1/wishlist/{id}/move-to-cart
func (h *WishlistHandler) MoveToCart(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, "Moved to cart", func(st *store.Store) {
		h.wishlistUC.MoveToCart(r.Context(), st, r.PathValue("id"))
	})
}

// POST /api/v1/wishlist/move-to-cart
func (h *WishlistHandler) MoveAllToCart(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, "All items moved to cart", func(st *store.Store) {
		h.wishlistUC.MoveAllToCart(r.Context(), st)
	})
}

// mutate applies fn and responds with the updated wishlist.
func (h *WishlistHandler) mutate(w http.ResponseWriter, r *http.Request, message string, fn func(st *store.Store)) {
	st, ok := visitorStore(w, r)
	if !ok {
		return
	}
	fn(st)
	writeData(w, http.StatusOK, message, h.wishlistUC.Get(r.Context(), st))
}
