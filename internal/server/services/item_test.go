package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/itemkeeper/internal/common"
	"github.com/dmitrijs2005/itemkeeper/internal/server/models"
	"github.com/dmitrijs2005/itemkeeper/internal/server/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	alice = models.Identity{ID: "a", Username: "alice", Role: common.RoleUser}
	bob   = models.Identity{ID: "b", Username: "bob", Role: common.RoleUser}
	root  = models.Identity{ID: "r", Username: "root", Role: common.RoleAdmin}
)

func fixedClock(s *ItemService, t time.Time) {
	s.now = func() time.Time { return t }
}

func TestCreate_DefaultsAndRoundTrip(t *testing.T) {
	_, is, _ := newServices(t)
	ctx := context.Background()
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	fixedClock(is, at)

	created, err := is.Create(ctx, alice, validation.ItemInput{Name: "A", Description: "B", Price: f64Ptr(1.5), Stock: intPtr(2)})
	require.NoError(t, err)

	got, err := is.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1.5, got.Price)
	assert.Equal(t, 2, got.Stock)
	assert.Equal(t, models.CategoryOther, got.Category)
	assert.Equal(t, "alice", got.CreatedBy)
	assert.Equal(t, at, got.CreatedAt)
	assert.Equal(t, at, got.UpdatedAt)

	bare, err := is.Create(ctx, alice, validation.ItemInput{Name: "C", Description: "D"})
	require.NoError(t, err)
	assert.Equal(t, 0.0, bare.Price)
	assert.Equal(t, 0, bare.Stock)
	assert.Equal(t, created.ID+1, bare.ID)
}

func TestList_Defaults(t *testing.T) {
	_, is, _ := newServices(t)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		_, err := is.Create(ctx, alice, validation.ItemInput{Name: "n", Description: "d"})
		require.NoError(t, err)
	}

	page, err := is.List(ctx, ListQuery{Page: 0, Limit: -5})
	require.NoError(t, err)
	assert.Len(t, page.Items, 10)
	assert.Equal(t, models.Pagination{Total: 25, Page: 1, Limit: 10, TotalPages: 3}, page.Pagination)
	assert.Equal(t, int64(1), page.Items[0].ID)

	page, err = is.List(ctx, ListQuery{Page: 9, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 25, page.Pagination.Total)
}

func TestUpdate_Ownership(t *testing.T) {
	_, is, _ := newServices(t)
	ctx := context.Background()

	created, err := is.Create(ctx, alice, validation.ItemInput{Name: "Pen", Description: "Blue pen", Price: f64Ptr(1), Stock: intPtr(100)})
	require.NoError(t, err)

	t.Run("non-owner is forbidden", func(t *testing.T) {
		_, err := is.Update(ctx, bob, created.ID, validation.ItemInput{Name: "x", Description: "y"})
		assert.ErrorIs(t, err, common.ErrorForbidden)

		got, err := is.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Pen", got.Name)
	})

	t.Run("missing item is not found first", func(t *testing.T) {
		_, err := is.Update(ctx, bob, 999, validation.ItemInput{Name: "x", Description: "y"})
		assert.ErrorIs(t, err, common.ErrorNotFound)
	})

	t.Run("owner merges present fields", func(t *testing.T) {
		later := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
		fixedClock(is, later)

		got, err := is.Update(ctx, alice, created.ID, validation.ItemInput{Name: "Pencil", Description: "Grey", Stock: intPtr(0)})
		require.NoError(t, err)
		assert.Equal(t, "Pencil", got.Name)
		assert.Equal(t, "Grey", got.Description)
		assert.Equal(t, 1.0, got.Price, "absent price is kept")
		assert.Equal(t, 0, got.Stock, "explicit zero is applied")
		assert.Equal(t, models.CategoryOther, got.Category)
		assert.Equal(t, created.CreatedAt, got.CreatedAt)
		assert.Equal(t, later, got.UpdatedAt)
		assert.Equal(t, "alice", got.CreatedBy)
	})

	t.Run("admin may update", func(t *testing.T) {
		got, err := is.Update(ctx, root, created.ID, validation.ItemInput{Name: "Marker", Description: "Red", Category: strPtr(models.CategoryBooks)})
		require.NoError(t, err)
		assert.Equal(t, models.CategoryBooks, got.Category)
		assert.Equal(t, "alice", got.CreatedBy, "ownership does not move to the admin")
	})
}

func TestDelete_Ownership(t *testing.T) {
	_, is, _ := newServices(t)
	ctx := context.Background()

	a, err := is.Create(ctx, alice, validation.ItemInput{Name: "A", Description: "a"})
	require.NoError(t, err)
	b, err := is.Create(ctx, alice, validation.ItemInput{Name: "B", Description: "b"})
	require.NoError(t, err)

	_, err = is.Delete(ctx, bob, a.ID)
	assert.ErrorIs(t, err, common.ErrorForbidden)

	removed, err := is.Delete(ctx, alice, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", removed.Name)

	_, err = is.Delete(ctx, alice, a.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = is.Delete(ctx, root, b.ID)
	require.NoError(t, err)

	c, err := is.Create(ctx, alice, validation.ItemInput{Name: "C", Description: "c"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), c.ID, "ids are never reused")
}

func TestSummary(t *testing.T) {
	_, is, _ := newServices(t)
	ctx := context.Background()

	empty, err := is.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, &models.ItemSummary{CategoryCounts: map[string]int{}}, empty)

	_, err = is.Create(ctx, alice, validation.ItemInput{Name: "A", Description: "a", Category: strPtr(models.CategoryFood), Price: f64Ptr(2), Stock: intPtr(5)})
	require.NoError(t, err)
	_, err = is.Create(ctx, bob, validation.ItemInput{Name: "B", Description: "b", Price: f64Ptr(4), Stock: intPtr(1)})
	require.NoError(t, err)

	s, err := is.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, s.TotalItems)
	assert.Equal(t, map[string]int{models.CategoryFood: 1, models.CategoryOther: 1}, s.CategoryCounts)
	assert.InDelta(t, 3.0, s.AveragePrice, 1e-9)
	assert.InDelta(t, 14.0, s.TotalValue, 1e-9)
}

func TestScenario_AliceAndBob(t *testing.T) {
	us, is, _ := newServices(t)
	ctx := context.Background()

	_, err := us.Register(ctx, validation.RegisterInput{Username: "alice", Email: "alice@x.com", Password: "Abcdef12"})
	require.NoError(t, err)
	_, err = us.Register(ctx, validation.RegisterInput{Username: "bob", Email: "bob@x.com", Password: "Abcdef12"})
	require.NoError(t, err)

	login, err := us.Login(ctx, validation.LoginInput{Username: "alice", Password: "Abcdef12"})
	require.NoError(t, err)
	aliceID := models.Identity{ID: login.User.ID, Username: login.User.Username, Role: login.User.Role}

	pen, err := is.Create(ctx, aliceID, validation.ItemInput{Name: "Pen", Description: "Blue pen", Price: f64Ptr(1), Stock: intPtr(100)})
	require.NoError(t, err)
	assert.Equal(t, "alice", pen.CreatedBy)

	bobLogin, err := us.Login(ctx, validation.LoginInput{Username: "bob", Password: "Abcdef12"})
	require.NoError(t, err)
	bobID := models.Identity{ID: bobLogin.User.ID, Username: "bob", Role: bobLogin.User.Role}

	_, err = is.Update(ctx, bobID, pen.ID, validation.ItemInput{Name: "Mine", Description: "now"})
	assert.ErrorIs(t, err, common.ErrorForbidden)
}
