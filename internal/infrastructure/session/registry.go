package session

import (
	"sync"
	"time"

	"storefront/internal/infrastructure/cache"
	"storefront/internal/store"
	pkgcache "storefront/pkg/cache"
	"storefront/pkg/logger"
	"storefront/pkg/utils"

	"github.com/google/uuid"
)

// Registry maps anonymous visitors to their in-memory store. Entries expire
// after the session TTL of inactivity; an expired session is the server-side
// equivalent of a page reload.
type Registry struct {
	signer *utils.SessionSigner
	ttl    time.Duration
	cache  pkgcache.CacheService

	// serializes create-on-miss so two requests carrying the same token
	// cannot end up with two stores
	mu sync.Mutex
}

func NewRegistry(signer *utils.SessionSigner, ttl time.Duration) *Registry {
	if signer == nil {
		panic("session: NewRegistry requires a signer")
	}
	r := &Registry{signer: signer, ttl: ttl}
	r.cache = cache.NewMemoryCacheWithEviction(ttl, cleanupInterval(ttl), func(key string, value interface{}) {
		if st, ok := value.(*store.Store); ok {
			st.Close()
			logger.Get().Debug().Str("session_id", key).Msg("Session expired")
		}
	})
	return r
}

func cleanupInterval(ttl time.Duration) time.Duration {
	if ttl < 2*time.Minute {
		return ttl
	}
	return ttl / 2
}

// Resolve returns the store for token. A missing, invalid, or expired token
// yields a new session; created reports that. Every call re-signs the token
// so its expiry slides with the cache entry, and the returned token must be
// handed back to the client.
func (r *Registry) Resolve(token string) (st *store.Store, issued string, created bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if token != "" {
		if id, verr := r.signer.Validate(token); verr == nil {
			if v, ok := r.cache.Get(id); ok {
				st = v.(*store.Store)
				issued, err = r.signer.Sign(id)
				if err != nil {
					return nil, "", false, err
				}
				r.cache.Set(id, st, r.ttl)
				return st, issued, false, nil
			}
		}
	}

	id := uuid.NewString()
	issued, err = r.signer.Sign(id)
	if err != nil {
		return nil, "", false, err
	}
	st = store.New(id)
	r.cache.Set(id, st, r.ttl)
	return st, issued, true, nil
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	return r.cache.ItemCount()
}

// Close drops every session. Each store is closed on the way out, which
// stops its pending checkout.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.cache.Keys() {
		r.cache.Delete(id)
	}
}
