package usecase

import (
	"sort"
	"strings"

	"storefront/internal/domain"
)

// QueryCatalog filters, sorts and paginates items. It never mutates items and
// never fails: an out-of-range page yields an empty slice alongside the full
// matching count.
func QueryCatalog(items []domain.Item, q domain.CatalogQuery) ([]domain.Item, int) {
	needle := strings.ToLower(q.Text)
	category := q.Category
	if category == "" {
		category = domain.AllCategories
	}

	matched := make([]domain.Item, 0, len(items))
	for _, it := range items {
		if needle != "" && !matchesText(it, needle) {
			continue
		}
		if category != domain.AllCategories && it.Category != category {
			continue
		}
		matched = append(matched, it)
	}

	if less := lessFor(q.Sort); less != nil {
		sort.SliceStable(matched, func(i, j int) bool {
			return less(matched[i], matched[j])
		})
	}

	total := len(matched)
	if q.Page < 1 || q.PageSize < 1 {
		return []domain.Item{}, total
	}
	// compare page numbers before multiplying; a huge page would overflow start
	pages := total / q.PageSize
	if total%q.PageSize != 0 {
		pages++
	}
	if q.Page > pages {
		return []domain.Item{}, total
	}
	start := (q.Page - 1) * q.PageSize
	end := start + q.PageSize
	if end > total {
		end = total
	}
	return matched[start:end], total
}

func matchesText(it domain.Item, needle string) bool {
	if strings.Contains(strings.ToLower(it.Title), needle) ||
		strings.Contains(strings.ToLower(it.Description), needle) {
		return true
	}
	for _, tag := range it.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// lessFor returns nil for unknown keys, keeping source order.
func lessFor(key domain.SortKey) func(a, b domain.Item) bool {
	switch key {
	case domain.SortNewest:
		return func(a, b domain.Item) bool { return a.CreatedAt.After(b.CreatedAt) }
	case domain.SortOldest:
		return func(a, b domain.Item) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case domain.SortPriceLow:
		return func(a, b domain.Item) bool { return a.Price < b.Price }
	case domain.SortPriceHigh:
		return func(a, b domain.Item) bool { return a.Price > b.Price }
	case domain.SortTitle:
		return func(a, b domain.Item) bool { return compareTitles(a.Title, b.Title) < 0 }
	default:
		return nil
	}
}

// compareTitles orders case-insensitively, falling back to byte order so that
// "apple" and "Apple" still compare deterministically.
func compareTitles(a, b string) int {
	if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}
