package middleware

import (
	"context"
	"net/http"
	"time"

	"storefront/internal/infrastructure/session"
	"storefront/internal/store"
	"storefront/pkg/logger"
	"storefront/pkg/utils"
)

const (
	SessionHeader = "X-Session-Token"
	SessionCookie = "session"
)

type storeKey struct{}

type requestInfoKey struct{}

type requestInfo struct {
	sessionID string
}

func withRequestInfo(ctx context.Context, info *requestInfo) context.Context {
	return context.WithValue(ctx, requestInfoKey{}, info)
}

// StoreFrom returns the visitor store attached by the session middleware.
func StoreFrom(ctx context.Context) (*store.Store, bool) {
	st, ok := ctx.Value(storeKey{}).(*store.Store)
	return st, ok
}

// WithStore attaches st to ctx. Handlers read it back with StoreFrom.
func WithStore(ctx context.Context, st *store.Store) context.Context {
	return context.WithValue(ctx, storeKey{}, st)
}

// NewSessionMiddleware resolves the visitor session from the header or the
// cookie, issuing a new one when needed, and sends the refreshed token back on
// every response.
func NewSessionMiddleware(registry *session.Registry, ttl time.Duration, secureCookie bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(SessionHeader)
			if token == "" {
				if c, err := r.Cookie(SessionCookie); err == nil {
					token = c.Value
				}
			}

			st, issued, created, err := registry.Resolve(token)
			if err != nil {
				logger.WithContext(r.Context()).Error().Err(err).Msg("Failed to issue session")
				utils.WriteError(w, http.StatusInternalServerError, "Failed to start session")
				return
			}

			if info, ok := r.Context().Value(requestInfoKey{}).(*requestInfo); ok {
				info.sessionID = st.ID()
			}
			reqLogger := logger.WithSessionID(*logger.WithContext(r.Context()), st.ID())
			if created {
				reqLogger.Debug().Msg("Session started")
			}

			w.Header().Set(SessionHeader, issued)
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    issued,
				Path:     "/",
				MaxAge:   int(ttl.Seconds()),
				HttpOnly: true,
				Secure:   secureCookie,
				SameSite: http.SameSiteLaxMode,
			})

			ctx := logger.NewContext(r.Context(), &reqLogger)
			ctx = WithStore(ctx, st)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
