package v1

import (
	"fmt"
	"net/http"
	"time"

	"storefront/internal/domain"
	"storefront/pkg/cache"
	"storefront/pkg/utils"
)

const enumsCacheKey = "system:config:enums"

type ConfigHandler struct {
	cache    cache.CacheService
	ttl      time.Duration
	currency string
	pageSize int
}

func NewConfigHandler(cache cache.CacheService, ttl time.Duration, currency string, pageSize int) *ConfigHandler {
	return &ConfigHandler{cache: cache, ttl: ttl, currency: currency, pageSize: pageSize}
}

type enumsResp struct {
	Categories  []string            `json:"categories"`
	SortOptions []domain.SortOption `json:"sortOptions"`
	DefaultSort domain.SortKey      `json:"defaultSort"`
	PageSize    int                 `json:"pageSize"`
	Currency    string              `json:"currency"`
}

// GET /api/v1/config/enums
func (h *ConfigHandler) GetEnums(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(h.ttl.Seconds())))

	if val, found := h.cache.Get(enumsCacheKey); found {
		writeData(w, http.StatusOK, "", val)
		return
	}

	resp := enumsResp{
		Categories:  domain.Categories,
		SortOptions: domain.SortOptions,
		DefaultSort: domain.SortNewest,
		PageSize:    h.pageSize,
		Currency:    h.currency,
	}
	h.cache.Set(enumsCacheKey, resp, h.ttl)

	writeData(w, http.StatusOK, "", resp)
}

// GET /health
func Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
