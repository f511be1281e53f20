package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/itemkeeper/internal/logging"
	"github.com/dmitrijs2005/itemkeeper/internal/server/config"
	"github.com/dmitrijs2005/itemkeeper/internal/server/models"
	"github.com/dmitrijs2005/itemkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/itemkeeper/internal/server/services"
	"github.com/dmitrijs2005/itemkeeper/internal/server/validation"
)

const testSecret = "test-secret"

type testEnv struct {
	server  *HTTPServer
	handler http.Handler
	repos   *repomanager.InMemoryRepositoryManager
}

func newTestEnv(t *testing.T, opts ...func(*config.Config)) *testEnv {
	t.Helper()
	cfg := &config.Config{
		EndpointAddrHTTP:      "127.0.0.1:0",
		SecretKey:             testSecret,
		TokenValidityDuration: time.Hour,
		BcryptCost:            bcrypt.MinCost,
		CORSOrigin:            "*",
		Environment:           "test",
	}
	for _, o := range opts {
		o(cfg)
	}

	m := repomanager.NewInMemoryRepositoryManager()
	us, err := services.NewUserService(m, cfg)
	require.NoError(t, err)
	s := NewHTTPServer(cfg, logging.Nop(), us, services.NewItemService(m), validation.New())
	return &testEnv{server: s, handler: s.Handler(), repos: m}
}

func (e *testEnv) seed(t *testing.T) {
	t.Helper()
	require.NoError(t, repomanager.SeedDemoData(context.Background(), e.repos, bcrypt.MinCost))
}

// do sends body as-is when it is a string and JSON-encodes it otherwise.
func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rd = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, rd)
	if rd != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) register(t *testing.T, username, email, password string) string {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": username, "email": email, "password": password,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[authBody](t, rec).Token
}

func (e *testEnv) login(t *testing.T, username, password string) string {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": username, "password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return decode[authBody](t, rec).Token
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

type authBody struct {
	Message string            `json:"message"`
	Token   string            `json:"token"`
	User    models.PublicUser `json:"user"`
}

type itemBody struct {
	Message string      `json:"message"`
	Item    models.Item `json:"item"`
}

type errBody struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Field   string            `json:"field"`
	Details validation.Errors `json:"details"`
}

func detailFields(e errBody) []string {
	out := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		out = append(out, d.Field)
	}
	return out
}
