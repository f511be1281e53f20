package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/unrolled/secure"
)

const contentSecurityPolicy = "default-src 'self'; script-src 'self' 'unsafe-inline'; " +
	"style-src 'self' 'unsafe-inline'; img-src 'self' data: https:"

// securityHeaders sets CSP, HSTS, nosniff, frame and referrer headers on
// every response. HSTS is sent on plain HTTP too, as TLS usually ends at a
// proxy in front of the server.
var securityHeaders = secure.New(secure.Options{
	ContentSecurityPolicy:   contentSecurityPolicy,
	STSSeconds:              31536000,
	STSIncludeSubdomains:    true,
	STSPreload:              true,
	ForceSTSHeader:          true,
	CustomFrameOptionsValue: "SAMEORIGIN",
	ContentTypeNosniff:      true,
	ReferrerPolicy:          "no-referrer",
}).Handler

func (s *HTTPServer) cors(next http.Handler) http.Handler {
	return handlers.CORS(
		handlers.AllowedOrigins(strings.Split(s.cfg.CORSOrigin, ",")),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		handlers.AllowCredentials(),
	)(next)
}

// accessLog writes one structured line per request.
func (s *HTTPServer) accessLog(next http.Handler) http.Handler {
	return handlers.CustomLoggingHandler(io.Discard, next, func(_ io.Writer, p handlers.LogFormatterParams) {
		s.logger.Info(p.Request.Context(), "request",
			"method", p.Request.Method,
			"path", p.URL.Path,
			"status", p.StatusCode,
			"size", p.Size,
			"duration", time.Since(p.TimeStamp).String(),
		)
	})
}

// recoveryLogger adapts the structured logger to handlers.RecoveryHandlerLogger.
type recoveryLogger struct {
	s *HTTPServer
}

func (l recoveryLogger) Println(v ...any) {
	l.s.logger.Error(context.Background(), "panic while serving request", "panic", fmt.Sprint(v...))
}

func (s *HTTPServer) recoverer(next http.Handler) http.Handler {
	return handlers.RecoveryHandler(handlers.RecoveryLogger(recoveryLogger{s: s}))(next)
}

func limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		}
		next.ServeHTTP(w, r)
	})
}
