// Package httpapi exposes the authentication and item services as a JSON
// REST API.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/dmitrijs2005/itemkeeper/internal/logging"
	"github.com/dmitrijs2005/itemkeeper/internal/server/config"
	"github.com/dmitrijs2005/itemkeeper/internal/server/services"
	"github.com/dmitrijs2005/itemkeeper/internal/server/validation"
)

const (
	maxBodyBytes    = 10 << 20
	shutdownTimeout = 10 * time.Second
)

type HTTPServer struct {
	address   string
	cfg       *config.Config
	logger    logging.Logger
	users     *services.UserService
	items     *services.ItemService
	validator *validation.Validator
	limiter   func(http.Handler) http.Handler
	rejectLog *rate.Sometimes
	jwtSecret []byte
	startedAt time.Time
	now       func() time.Time
}

func NewHTTPServer(cfg *config.Config, l logging.Logger, us *services.UserService, is *services.ItemService, v *validation.Validator) *HTTPServer {
	s := &HTTPServer{
		address:   cfg.EndpointAddrHTTP,
		cfg:       cfg,
		logger:    l.With("module", "http_server"),
		users:     us,
		items:     is,
		validator: v,
		jwtSecret: []byte(cfg.SecretKey),
		startedAt: time.Now(),
		now:       time.Now,
	}
	s.rejectLog = &rate.Sometimes{First: 1, Interval: rejectLogInterval}
	s.limiter = s.newRateLimiter(cfg.RateLimitMax, cfg.RateLimitWindow)
	return s
}

// Handler returns the complete middleware chain around the router.
func (s *HTTPServer) Handler() http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(s.notFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(s.methodNotAllowed)

	r.HandleFunc("/api/health", s.health).Methods(http.MethodGet)

	r.HandleFunc("/api/auth/register", s.register).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/login", s.login).Methods(http.MethodPost)
	r.Handle("/api/auth/me", s.requireAuth(s.me)).Methods(http.MethodGet)

	r.Handle("/api/items", s.optionalAuth(s.listItems)).Methods(http.MethodGet)
	r.Handle("/api/items", s.requireAuth(s.createItem)).Methods(http.MethodPost)
	r.Handle("/api/items/stats/summary", s.requireAuth(s.itemSummary)).Methods(http.MethodGet)
	r.Handle("/api/items/{id}", s.optionalAuth(s.getItem)).Methods(http.MethodGet)
	r.Handle("/api/items/{id}", s.requireAuth(s.updateItem)).Methods(http.MethodPut)
	r.Handle("/api/items/{id}", s.requireAuth(s.deleteItem)).Methods(http.MethodDelete)

	var h http.Handler = r
	h = limitBody(h)
	h = s.rateLimit(h)
	h = s.cors(h)
	h = securityHeaders(h)
	h = s.accessLog(h)
	h = s.recoverer(h)
	return h
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully.
func (s *HTTPServer) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	stopped := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		stopped <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", ln.Addr().String())

	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return <-stopped
}
