package http

import (
	"net"
	"net/http"

	"github.com/rogerio-castellano/forecast-dashboard/internal/http/ban"
	rl "github.com/rogerio-castellano/forecast-dashboard/internal/http/rate_limiter"
)

// RateLimitMiddleware rejects clients that exceed their per-IP token bucket
// with 429 and records a strike for the daily abuse summary.
func RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if !rl.Allow(ip) {
			ban.RecordStrike(ip, r.URL.Path)
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
