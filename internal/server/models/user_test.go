package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_JSONNeverCarriesHash(t *testing.T) {
	u := &User{ID: "1", Username: "alice", Email: "alice@x.com", PasswordHash: "$2a$10$secret", Role: "user"}

	b, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "secret")

	b, err = json.Marshal(u.Public())
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1","username":"alice","email":"alice@x.com","role":"user"}`, string(b))
}

func TestIdentity_CanModify(t *testing.T) {
	alice := Identity{ID: "1", Username: "alice", Role: "user"}
	admin := Identity{ID: "2", Username: "root", Role: "admin"}

	assert.True(t, alice.CanModify("alice"))
	assert.False(t, alice.CanModify("bob"))
	assert.True(t, admin.CanModify("bob"))
	assert.Equal(t, Identity{ID: "1", Username: "alice", Role: "user"}, (&User{ID: "1", Username: "alice", Role: "user"}).Identity())
}
