package users

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/dmitrijs2005/itemkeeper/internal/common"
	"github.com/dmitrijs2005/itemkeeper/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAlice() *models.User {
	return &models.User{Username: "alice", Email: "alice@x.com", PasswordHash: "h", Role: common.RoleUser}
}

func TestCreate_AssignsIDAndTimestamp(t *testing.T) {
	repo := NewInMemoryRepository()

	in := newAlice()
	got, err := repo.Create(context.Background(), in)
	require.NoError(t, err)

	assert.NotEmpty(t, got.ID)
	assert.False(t, got.CreatedAt.IsZero())
	assert.Empty(t, in.ID, "input must not be mutated")

	byID, err := repo.GetByID(context.Background(), got.ID)
	require.NoError(t, err)
	assert.Equal(t, got, byID)
}

func TestCreate_Conflicts(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()
	_, err := repo.Create(ctx, newAlice())
	require.NoError(t, err)

	tests := []struct {
		name  string
		user  *models.User
		field string
	}{
		{"same username", &models.User{Username: "alice", Email: "other@x.com"}, "username"},
		{"same email", &models.User{Username: "bob", Email: "alice@x.com"}, "email"},
		{"both, username wins", &models.User{Username: "alice", Email: "alice@x.com"}, "username"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.Create(ctx, tt.user)
			require.ErrorIs(t, err, common.ErrorConflict)

			var ce *common.ConflictError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, tt.field, ce.Field)
		})
	}
}

func TestLookups(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()
	alice, err := repo.Create(ctx, newAlice())
	require.NoError(t, err)

	got, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.ID)

	_, err = repo.GetByUsername(ctx, "alice@x.com")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	got, err = repo.GetByUsernameOrEmail(ctx, "alice@x.com")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.ID)

	got, err = repo.GetByUsernameOrEmail(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.ID)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestLookups_ReturnCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()
	_, err := repo.Create(ctx, newAlice())
	require.NoError(t, err)

	got, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	got.Role = common.RoleAdmin

	again, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, common.RoleUser, again.Role)
}

func TestCreate_ConcurrentSameUsername(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()

	const n = 32
	var wg sync.WaitGroup
	var mu sync.Mutex
	created := 0

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repo.Create(ctx, &models.User{Username: "dup", Email: fmt.Sprintf("u%d@x.com", i)})
			if err == nil {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, created)
}
