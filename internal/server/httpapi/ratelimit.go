package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/httprate"
)

// rejectLogInterval bounds how often rejected requests are logged.
const rejectLogInterval = 10 * time.Second

// newRateLimiter returns a middleware that allows each client address
// maxRequests per sliding window. It returns nil, meaning unlimited, when
// maxRequests or window is not positive.
func (s *HTTPServer) newRateLimiter(maxRequests int, window time.Duration) func(http.Handler) http.Handler {
	if maxRequests <= 0 || window <= 0 {
		return nil
	}
	return httprate.Limit(maxRequests, window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(s.tooManyRequests),
	)
}

func (s *HTTPServer) tooManyRequests(w http.ResponseWriter, r *http.Request) {
	s.rejectLog.Do(func() {
		s.logger.Warn(r.Context(), "rate limit exceeded", "client", r.RemoteAddr, "path", r.URL.Path)
	})
	writeError(w, http.StatusTooManyRequests, "Too many requests, please try again later.")
}

// rateLimit applies the limiter to /api/ paths only.
func (s *HTTPServer) rateLimit(next http.Handler) http.Handler {
	if s.limiter == nil {
		return next
	}
	limited := s.limiter(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			limited.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
