package memory

import (
	"context"
	"storefront/internal/domain"
	"sync/atomic"
	"time"
)

type catalogSnapshot struct {
	items []domain.Item
	byID  map[string]int
}

// CatalogRepository is the static mock data source. The catalog is published
// once by Load and never mutated afterwards, so reads take no lock.
type CatalogRepository struct {
	snapshot atomic.Pointer[catalogSnapshot]
	loaded   chan struct{}
}

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{loaded: make(chan struct{})}
}

// Load publishes items after delay, simulating source latency. It returns
// ctx.Err() if ctx is done first, leaving the catalog unloaded. Only the first
// successful call has any effect.
func (r *CatalogRepository) Load(ctx context.Context, items []domain.Item, delay time.Duration) error {
	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	snap := &catalogSnapshot{
		items: append([]domain.Item(nil), items...),
		byID:  make(map[string]int, len(items)),
	}
	for i, it := range snap.items {
		snap.byID[it.ID] = i
	}
	if r.snapshot.CompareAndSwap(nil, snap) {
		close(r.loaded)
	}
	return nil
}

// Loaded is closed once the catalog is available.
func (r *CatalogRepository) Loaded() <-chan struct{} {
	return r.loaded
}

func (r *CatalogRepository) All(ctx context.Context) ([]domain.Item, bool) {
	snap := r.snapshot.Load()
	if snap == nil {
		return nil, false
	}
	return snap.items, true
}

func (r *CatalogRepository) GetByID(ctx context.Context, id string) (*domain.Item, bool) {
	snap := r.snapshot.Load()
	if snap == nil {
		return nil, false
	}
	i, ok := snap.byID[id]
	if !ok {
		return nil, false
	}
	it := snap.items[i]
	return &it, true
}
