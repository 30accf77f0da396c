package v1

import (
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/domain"
	"storefront/internal/store"
	"storefront/pkg/logger"
	"storefront/pkg/utils"
)

// visitorStore returns the session store or writes a 500. The session
// middleware always runs in front of these handlers, so a miss is a wiring
// bug.
func visitorStore(w http.ResponseWriter, r *http.Request) (*store.Store, bool) {
	st, ok := middleware.StoreFrom(r.Context())
	if !ok {
		logger.WithContext(r.Context()).Error().Str("path", r.URL.Path).Msg("No session store in request context")
		utils.WriteError(w, http.StatusInternalServerError, "Session unavailable")
		return nil, false
	}
	return st, true
}

func writeData(w http.ResponseWriter, status int, message string, data interface{}) {
	utils.WriteJSON(w, status, domain.Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}
