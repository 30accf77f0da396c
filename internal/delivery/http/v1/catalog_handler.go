package v1

import (
	"errors"
	"net/http"
	"strings"

	"storefront/internal/domain"
	"storefront/internal/usecase"
	"storefront/pkg/utils"
)

const maxPageSize = 100

type CatalogHandler struct {
	catalogUC *usecase.CatalogUsecase
}

func NewCatalogHandler(uc *usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalogUC: uc}
}

// GET /api/v1/items?q=&category=&sort=&page=&limit=
func (h *CatalogHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	st, ok := visitorStore(w, r)
	if !ok {
		return
	}
	query := r.URL.Query()

	limit := utils.ParseInt(query.Get("limit"), h.catalogUC.PageSize())
	if limit > maxPageSize {
		limit = maxPageSize
	}

	sortKey := domain.SortKey(query.Get("sort"))
	if sortKey == "" {
		sortKey = domain.SortNewest
	}

	page := h.catalogUC.Browse(r.Context(), st, domain.CatalogQuery{
		Text:     strings.TrimSpace(query.Get("q")),
		Category: query.Get("category"),
		Sort:     sortKey,
		Page:     utils.ParseInt(query.Get("page"), 1),
		PageSize: limit,
	})

	utils.WriteJSON(w, http.StatusOK, domain.Response{
		Success: true,
		Data:    page.Items,
		Meta: map[string]interface{}{
			"pagination": page.Pagination,
			"loading":    page.Loading,
		},
	})
}

// GET /api/v1/items/{id}
func (h *CatalogHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	st, ok := visitorStore(w, r)
	if !ok {
		return
	}

	detail, err := h.catalogUC.Detail(r.Context(), st, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Item not found")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeData(w, http.StatusOK, "", detail)
}
