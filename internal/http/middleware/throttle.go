package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// PriceThrottle limits each client to perMinute price lookups, keyed by
// IP. The upstream market endpoint rate-limits aggressively, so the
// edge throttles before the cache layer ever sees a burst.
func PriceThrottle(perMinute int) func(http.Handler) http.Handler {
	return httprate.Limit(perMinute, time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"Demasiadas solicitudes"}`))
		}),
	)
}
