package v1

import (
	"net/http"

	"storefront/internal/usecase"
)

// GET /api/v1/summary
func GetSummary(w http.ResponseWriter, r *http.Request) {
	st, ok := visitorStore(w, r)
	if !ok {
		return
	}
	writeData(w, http.StatusOK, "", usecase.Summarize(st))
}
