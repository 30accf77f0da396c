package v1

import (
	"net/http"
	"strings"

	"storefront/internal/domain"
	"storefront/internal/usecase"
	"storefront/pkg/logger"
	"storefront/pkg/utils"
)

type CartHandler struct {
	cartUC          *usecase.CartUsecase
	maxCartQuantity int
}

func NewCartHandler(uc *usecase.CartUsecase, maxCartQuantity int) *CartHandler {
	return &CartHandler{
		cartUC:          uc,
		maxCartQuantity: maxCartQuantity,
	}
}

type addToCartReq struct {
	ItemID string `json:"itemId"`
}

type updateCartReq struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// GET /api/v1/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	st, ok := visitorStore(w, r)
	if !ok {
		return
	}
	writeData(w, http.StatusOK, "", h.cartUC.Get(r.Context(), st))
}

// POST /api/v1/cart
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	st, ok := visitorStore(w, r)
	if !ok {
		return
	}
	var req addToCartReq
	if err := utils.DecodeJSON(r.Body, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, domain.ErrInvalidRequest.Error())
		return
	}
	req.ItemID = strings.TrimSpace(req.ItemID)
	if req.ItemID == "" {
		utils.WriteError(w, http.StatusBadRequest, "itemId is required")
		return
	}

	message := ""
	if h.cartUC.Add(r.Context(), st, req.ItemID) {
		message = "Added to cart"
	}
	writeData(w, http.StatusOK, message, h.cartUC.Get(r.Context(), st))
}

// PUT /api/v1/cart
func (h *CartHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	st, ok := visitorStore(w, r)
	if !ok {
		return
	}
	var req updateCartReq
	if err := utils.DecodeJSON(r.Body, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, domain.ErrInvalidRequest.Error())
		return
	}
	if req.ItemID == "" {
		utils.WriteError(w, http.StatusBadRequest, "itemId is required")
		return
	}
	// zero or less removes the entry
	if req.Quantity > h.maxCartQuantity {
		logger.WithContext(r.Context()).Warn().
			Str("item_id", req.ItemID).
			Int("quantity", req.Quantity).
			Msg("Cart quantity above limit")
		utils.WriteError(w, http.StatusBadRequest, domain.ErrInvalidQuantity.Error())
		return
	}

	h.cartUC.SetQuantity(r.Context(), st, req.ItemID, req.Quantity)
	writeData(w, http.StatusOK, "", h.cartUC.Get(r.Context(), st))
}

// DELETE /api/v1/cart/{id}
func (h *CartHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	st, ok := visitorStore(w, r)
	if !ok {
		return
	}
	h.cartUC.Remove(r.Context(), st, r.PathValue("id"))
	writeData(w, http.StatusOK, "", h.cartUC.Get(r.Context(), st))
}

// DELETE /api/v1/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	st, ok := visitorStore(w, r)
	if !ok {
		return
	}
	h.cartUC.Clear(r.Context(), st)
	writeData(w, http.StatusOK, "Cart cleared", h.cartUC.Get(r.Context(), st))
}

// POST /api/v1/checkout
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	st, ok := visitorStore(w, r)
	if !ok {
		return
	}

	receipt := h.cartUC.Checkout(r.Context(), st)
	status := http.StatusOK
	message := "Nothing to check out"
	if receipt.Pending {
		status = http.StatusAccepted
		message = "Checkout in progress"
	}
	writeData(w, status, message, receipt)
}
