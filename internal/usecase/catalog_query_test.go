package usecase

import (
	"fmt"
	"math"
	"testing"
	"time"

	"storefront/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func makeItems(n int) []domain.Item {
	items := make([]domain.Item, n)
	for i := range items {
		items[i] = domain.Item{
			ID:        fmt.Sprintf("%d", i+1),
			Title:     fmt.Sprintf("Item %02d", i+1),
			Price:     float64(i + 1),
			Category:  domain.CategoryHome,
			CreatedAt: baseTime.Add(time.Duration(i) * time.Hour),
		}
	}
	return items
}

func itemIDs(items []domain.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func itemPrices(items []domain.Item) []float64 {
	out := make([]float64, len(items))
	for i, it := range items {
		out[i] = it.Price
	}
	return out
}

func allOf(q domain.CatalogQuery) domain.CatalogQuery {
	q.Page, q.PageSize = 1, 1000
	return q
}

func TestQueryCatalogPriceSort(t *testing.T) {
	items := []domain.Item{
		{ID: "a", Price: 10},
		{ID: "b", Price: 5},
		{ID: "c", Price: 20},
	}

	low, _ := QueryCatalog(items, allOf(domain.CatalogQuery{Sort: domain.SortPriceLow}))
	assert.Equal(t, []float64{5, 10, 20}, itemPrices(low))

	high, _ := QueryCatalog(items, allOf(domain.CatalogQuery{Sort: domain.SortPriceHigh}))
	assert.Equal(t, []float64{20, 10, 5}, itemPrices(high))
}

func TestQueryCatalogDateAndTitleSort(t *testing.T) {
	items := []domain.Item{
		{ID: "mid", Title: "banana", CreatedAt: baseTime.Add(time.Hour)},
		{ID: "old", Title: "Cherry", CreatedAt: baseTime},
		{ID: "new", Title: "apple", CreatedAt: baseTime.Add(2 * time.Hour)},
	}

	newest, _ := QueryCatalog(items, allOf(domain.CatalogQuery{Sort: domain.SortNewest}))
	assert.Equal(t, []string{"new", "mid", "old"}, itemIDs(newest))

	oldest, _ := QueryCatalog(items, allOf(domain.CatalogQuery{Sort: domain.SortOldest}))
	assert.Equal(t, []string{"old", "mid", "new"}, itemIDs(oldest))

	byTitle, _ := QueryCatalog(items, allOf(domain.CatalogQuery{Sort: domain.SortTitle}))
	assert.Equal(t, []string{"new", "mid", "old"}, itemIDs(byTitle))

	unknown, _ := QueryCatalog(items, allOf(domain.CatalogQuery{Sort: "bogus"}))
	assert.Equal(t, []string{"mid", "old", "new"}, itemIDs(unknown))
}

func TestQueryCatalogSortIsStable(t *testing.T) {
	items := []domain.Item{
		{ID: "1", Price: 5},
		{ID: "2", Price: 1},
		{ID: "3", Price: 5},
		{ID: "4", Price: 1},
		{ID: "5", Price: 5},
	}

	low, _ := QueryCatalog(items, allOf(domain.CatalogQuery{Sort: domain.SortPriceLow}))
	assert.Equal(t, []string{"2", "4", "1", "3", "5"}, itemIDs(low))

	high, _ := QueryCatalog(items, allOf(domain.CatalogQuery{Sort: domain.SortPriceHigh}))
	assert.Equal(t, []string{"1", "3", "5", "2", "4"}, itemIDs(high))
}

func TestQueryCatalogAscendingReversesDescending(t *testing.T) {
	items := makeItems(10)

	low, _ := QueryCatalog(items, allOf(domain.CatalogQuery{Sort: domain.SortPriceLow}))
	high, _ := QueryCatalog(items, allOf(domain.CatalogQuery{Sort: domain.SortPriceHigh}))

	require.Len(t, high, len(low))
	for i := range low {
		assert.Equal(t, low[i].ID, high[len(high)-1-i].ID)
	}
}

func TestQueryCatalogTextFilter(t *testing.T) {
	items := []domain.Item{
		{ID: "title", Title: "Vintage Lamp"},
		{ID: "desc", Title: "Chair", Description: "a VINTAGE oak chair"},
		{ID: "tag", Title: "Rug", Tags: []string{"Retro", "vintage-look"}},
		{ID: "none", Title: "Table", Description: "modern"},
	}

	got, total := QueryCatalog(items, allOf(domain.CatalogQuery{Text: "vintage"}))
	assert.Equal(t, 3, total)
	assert.Equal(t, []string{"title", "desc", "tag"}, itemIDs(got))

	got, total = QueryCatalog(items, allOf(domain.CatalogQuery{Text: ""}))
	assert.Equal(t, 4, total)
	assert.Equal(t, itemIDs(items), itemIDs(got))
}

func TestQueryCatalogCategoryFilter(t *testing.T) {
	items := []domain.Item{
		{ID: "1", Title: "Lamp", Category: domain.CategoryHome},
		{ID: "2", Title: "Lamp shirt", Category: domain.CategoryFashion},
		{ID: "3", Title: "Desk", Category: domain.CategoryHome},
	}

	_, none := QueryCatalog(items, allOf(domain.CatalogQuery{}))
	_, allCats := QueryCatalog(items, allOf(domain.CatalogQuery{Category: domain.AllCategories}))
	assert.Equal(t, none, allCats)
	assert.Equal(t, 3, allCats)

	home, total := QueryCatalog(items, allOf(domain.CatalogQuery{Category: domain.CategoryHome}))
	assert.Equal(t, 2, total)
	assert.Equal(t, []string{"1", "3"}, itemIDs(home))

	// Filters are conjunctive.
	both, total := QueryCatalog(items, allOf(domain.CatalogQuery{Text: "lamp", Category: domain.CategoryHome}))
	assert.Equal(t, 1, total)
	assert.Equal(t, []string{"1"}, itemIDs(both))

	_, total = QueryCatalog(items, allOf(domain.CatalogQuery{Category: "home"}))
	assert.Zero(t, total, "category match is exact")
}

func TestQueryCatalogPagination(t *testing.T) {
	items := makeItems(20)

	tests := []struct {
		name    string
		page    int
		wantLen int
		wantIDs []string
	}{
		{name: "first page", page: 1, wantLen: 8},
		{name: "last partial page", page: 3, wantLen: 4, wantIDs: []string{"17", "18", "19", "20"}},
		{name: "past the end", page: 4, wantLen: 0},
		{name: "zero page", page: 0, wantLen: 0},
		{name: "negative page", page: -2, wantLen: 0},
		{name: "max int page", page: math.MaxInt, wantLen: 0},
		{name: "page overflowing offset", page: math.MaxInt/8 + 2, wantLen: 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, total := QueryCatalog(items, domain.CatalogQuery{Page: tc.page, PageSize: 8})
			require.NotNil(t, got)
			assert.Len(t, got, tc.wantLen)
			assert.Equal(t, 20, total)
			if tc.wantIDs != nil {
				assert.Equal(t, tc.wantIDs, itemIDs(got))
			}
		})
	}

	assert.Equal(t, 3, domain.NewPagination(1, 8, 20).TotalPages)

	got, _ := QueryCatalog(items, domain.CatalogQuery{Page: 1, PageSize: math.MaxInt})
	assert.Len(t, got, 20)
	got, _ = QueryCatalog(items, domain.CatalogQuery{Page: math.MaxInt, PageSize: math.MaxInt})
	assert.Empty(t, got)
}

func TestQueryCatalogDoesNotMutateInput(t *testing.T) {
	items := []domain.Item{{ID: "a", Price: 3}, {ID: "b", Price: 1}, {ID: "c", Price: 2}}

	_, _ = QueryCatalog(items, allOf(domain.CatalogQuery{Sort: domain.SortPriceLow}))

	assert.Equal(t, []string{"a", "b", "c"}, itemIDs(items))
}
