package users

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/itemkeeper/internal/common"
	"github.com/dmitrijs2005/itemkeeper/internal/server/models"
	"github.com/google/uuid"
)

type InMemoryRepository struct {
	mu    sync.RWMutex
	users []models.User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

// Create inserts user, assigning an id and creation time when missing.
// Username collisions are reported before email collisions.
func (r *InMemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].Username == user.Username {
			return nil, &common.ConflictError{Field: "username"}
		}
	}
	for i := range r.users {
		if r.users[i].Email == user.Email {
			return nil, &common.ConflictError{Field: "email"}
		}
	}

	u := *user
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	r.users = append(r.users, u)

	return &u, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.ID == id })
}

func (r *InMemoryRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.Username == username })
}

func (r *InMemoryRepository) GetByUsernameOrEmail(ctx context.Context, usernameOrEmail string) (*models.User, error) {
	return r.find(func(u *models.User) bool {
		return u.Username == usernameOrEmail || u.Email == usernameOrEmail
	})
}

func (r *InMemoryRepository) find(match func(u *models.User) bool) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if match(&r.users[i]) {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, common.ErrorNotFound
}
