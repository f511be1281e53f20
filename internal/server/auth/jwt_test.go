package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/itemkeeper/internal/common"
	"github.com/dmitrijs2005/itemkeeper/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var alice = models.Identity{ID: "user-123", Username: "alice", Role: "user"}

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")

	tok, err := GenerateToken(alice, secret, time.Hour)
	require.NoError(t, err)

	got, err := ParseToken(tok, secret)
	require.NoError(t, err)
	assert.Equal(t, alice, got)
}

func TestGenerateToken_ExpiresAfterValidity(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken(alice, []byte("k"), 24*time.Hour)
	require.NoError(t, err)

	claims := &Claims{}
	_, _, err = jwt.NewParser().ParseUnverified(tok, claims)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, 5*time.Second)
	assert.Equal(t, "alice", claims.Username)
}

func TestParseToken_Failures(t *testing.T) {
	t.Parallel()

	secret := []byte("right-secret")

	expired, err := GenerateToken(alice, secret, -1*time.Second)
	require.NoError(t, err)

	valid, err := GenerateToken(alice, secret, time.Hour)
	require.NoError(t, err)
	parts := strings.Split(valid, ".")
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "x", Username: "x"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: "x", Username: "x"}).SignedString(secret)
	require.NoError(t, err)

	noIdentity, err := GenerateToken(models.Identity{}, secret, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		secret []byte
	}{
		{"expired", expired, secret},
		{"wrong secret", valid, []byte("wrong-secret")},
		{"tampered signature", tampered, secret},
		{"malformed", "not.a.jwt", secret},
		{"empty", "", secret},
		{"alg none", noneAlg, secret},
		{"no expiry", noExpiry, secret},
		{"no identity", noIdentity, secret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseToken(tt.token, tt.secret)
			assert.ErrorIs(t, err, common.ErrInvalidToken)
		})
	}
}
