package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/itemkeeper/internal/common"
	"github.com/dmitrijs2005/itemkeeper/internal/server/auth"
	"github.com/dmitrijs2005/itemkeeper/internal/server/models"
)

type ctxKey string

const identityKey ctxKey = "identity"

func withIdentity(ctx context.Context, id models.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFrom returns the verified identity attached to ctx, if any.
func IdentityFrom(ctx context.Context) (models.Identity, bool) {
	id, ok := ctx.Value(identityKey).(models.Identity)
	return id, ok
}

// bearerToken extracts the credential of an "Authorization: Bearer <token>"
// header. Other schemes count as no token.
func bearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(r.Header.Get(common.AuthorizationHeaderName), " ")
	if !ok || !strings.EqualFold(scheme, common.BearerScheme) {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// requireAuth rejects requests without a token (401) or with a token that
// fails verification (403).
func (s *HTTPServer) requireAuth(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Access token required")
			return
		}

		id, err := auth.ParseToken(token, s.jwtSecret)
		if err != nil {
			s.logger.Debug(r.Context(), "token rejected", "path", r.URL.Path, "error", err)
			writeError(w, http.StatusForbidden, "Invalid or expired token")
			return
		}

		next(w, r.WithContext(withIdentity(r.Context(), id)))
	})
}

// optionalAuth attaches an identity only when a valid token is presented.
// Verification finishes before next runs; bad tokens are ignored.
func (s *HTTPServer) optionalAuth(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token, ok := bearerToken(r); ok {
			if id, err := auth.ParseToken(token, s.jwtSecret); err == nil {
				r = r.WithContext(withIdentity(r.Context(), id))
			}
		}
		next(w, r)
	})
}
