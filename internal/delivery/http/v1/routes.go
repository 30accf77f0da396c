package v1

import "net/http"

type Handlers struct {
	Catalog  *CatalogHandler
	Wishlist *WishlistHandler
	Cart     *CartHandler
	Config   *ConfigHandler
}

// RegisterRoutes mounts the API on mux. Every /api/v1 route expects the
// session middleware in front of it.
func RegisterRoutes(mux *http.ServeMux, h Handlers) {
	mux.HandleFunc("GET /health", Health)

	// Catalog
	mux.HandleFunc("GET /api/v1/items", h.Catalog.ListItems)
	mux.HandleFunc("GET /api/v1/items/{id}", h.Catalog.GetItem)

	// Wishlist
	mux.HandleFunc("GET /api/v1/wishlist", h.Wishlist.GetWishlist)
	mux.HandleFunc("DELETE /api/v1/wishlist", h.Wishlist.Clear)
	mux.HandleFunc("POST /api/v1/wishlist/move-to-cart", h.Wishlist.MoveAllToCart)
	mux.HandleFunc("POST /api/v1/wishlist/{id}/toggle", h.Wishlist.Toggle)
	mux.HandleFunc("DELETE /api/v1/wishlist/{id}", h.Wishlist.Remove)
	mux.HandleFunc("POST /api/v1/wishlist/{id}/move-to-cart", h.Wishlist.MoveToCart)

	// Cart
	mux.HandleFunc("GET /api/v1/cart", h.Cart.GetCart)
	mux.HandleFunc("POST /api/v1/cart", h.Cart.AddToCart)
	mux.HandleFunc("PUT /api/v1/cart", h.Cart.UpdateCartItem)
	mux.HandleFunc("DELETE /api/v1/cart", h.Cart.ClearCart)
	mux.HandleFunc("DELETE /api/v1/cart/{id}", h.Cart.RemoveFromCart)
	mux.HandleFunc("POST /api/v1/checkout", h.Cart.Checkout)

	mux.HandleFunc("GET /api/v1/summary", GetSummary)

	// Config (public)
	mux.HandleFunc("GET /api/v1/config/enums", h.Config.GetEnums)
}
