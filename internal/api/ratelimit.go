package api

import (
	"encoding/json/v2"
	"net"
	"net/http"
	"strings"

	domainerrors "github.com/clarityrx/clarity-server/internal/errors"
)

// rateLimitPaths creates middleware that rate limits the given paths by
// client IP. Other paths pass through untouched.
func (s *Server) rateLimitPaths(paths ...string) func(http.Handler) http.Handler {
	limited := make(map[string]bool, len(paths))
	for _, p := range paths {
		limited[p] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limited[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			key := getClientIP(r)
			if !s.limiter.Allow(key) {
				s.logger.Warn("Rate limit exceeded", "ip", key, "path", r.URL.Path)
				writeRateLimited(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeRateLimited(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusTooManyRequests)

	body, _ := json.Marshal(&APIError{
		Code:    string(domainerrors.CodeRateLimited),
		Message: "Too many requests. Please try again later.",
	})
	_, _ = w.Write(body)
}

// getClientIP extracts the client IP, preferring proxy headers over
// the socket address.
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// First entry in the chain is the originating client.
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
