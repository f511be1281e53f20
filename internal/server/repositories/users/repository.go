// Package users holds the credential store: registered accounts looked up by
// id, username or email.
package users

import (
	"context"

	"github.com/dmitrijs2005/itemkeeper/internal/server/models"
)

// Repository stores users. Lookups return common.ErrorNotFound when nothing
// matches; Create returns a *common.ConflictError naming the duplicated field.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByUsernameOrEmail(ctx context.Context, usernameOrEmail string) (*models.User, error)
}
