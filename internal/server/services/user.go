// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login and identity lookups.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/itemkeeper/internal/common"
	"github.com/dmitrijs2005/itemkeeper/internal/server/auth"
	"github.com/dmitrijs2005/itemkeeper/internal/server/config"
	"github.com/dmitrijs2005/itemkeeper/internal/server/models"
	"github.com/dmitrijs2005/itemkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/itemkeeper/internal/server/validation"
	"github.com/dmitrijs2005/itemkeeper/internal/shared"
)

// AuthResult is returned by a successful registration or login.
type AuthResult struct {
	Token string
	User  *models.PublicUser
}

// UserService provides authentication-related operations:
// - Register: create users
// - Login: verify credentials and mint a token
// - WhoAmI: resolve a verified identity to its account
type UserService struct {
	repomanager      repomanager.RepositoryManager
	jwtSecret        []byte
	validityDuration time.Duration
	bcryptCost       int

	// dummyHash is compared against when the username is unknown.
	dummyHash string
}

// NewUserService constructs a UserService using repositories and server config.
// It fails when the login dummy hash cannot be built.
func NewUserService(m repomanager.RepositoryManager, cfg *config.Config) (*UserService, error) {
	pw, err := shared.MakeRandHexString(16)
	if err != nil {
		return nil, fmt.Errorf("error generating dummy password: %w", err)
	}
	dummy, err := auth.HashPassword(pw, cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing dummy password: %w", err)
	}

	return &UserService{
		repomanager:      m,
		jwtSecret:        []byte(cfg.SecretKey),
		validityDuration: cfg.TokenValidityDuration,
		bcryptCost:       cfg.BcryptCost,
		dummyHash:        dummy,
	}, nil
}

// Register creates an account with role "user". A taken username or email
// yields a *common.ConflictError naming the field; username is checked first.
func (s *UserService) Register(ctx context.Context, in validation.RegisterInput) (*AuthResult, error) {
	repo := s.repomanager.Users()

	for _, probe := range []struct{ field, value string }{
		{"username", in.Username},
		{"email", in.Email},
	} {
		_, err := repo.GetByUsernameOrEmail(ctx, probe.value)
		if err == nil {
			return nil, &common.ConflictError{Field: probe.field}
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("error checking %s: %w", probe.field, err)
		}
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	u, err := repo.Create(ctx, &models.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         common.RoleUser,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return s.issue(u)
}

// Login verifies credentials. Unknown usernames and wrong passwords are
// indistinguishable: both return common.ErrorInvalidCredentials, and an
// unknown username still pays for one bcrypt comparison.
func (s *UserService) Login(ctx context.Context, in validation.LoginInput) (*AuthResult, error) {
	u, err := s.repomanager.Users().GetByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			auth.CheckPassword(s.dummyHash, in.Password)
			return nil, common.ErrorInvalidCredentials
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	if !auth.CheckPassword(u.PasswordHash, in.Password) {
		return nil, common.ErrorInvalidCredentials
	}

	return s.issue(u)
}

// WhoAmI returns the public record of the identity's account.
func (s *UserService) WhoAmI(ctx context.Context, identity models.Identity) (*models.PublicUser, error) {
	u, err := s.repomanager.Users().GetByID(ctx, identity.ID)
	if err != nil {
		return nil, err
	}
	return u.Public(), nil
}

// --- helpers below ---

func (s *UserService) issue(u *models.User) (*AuthResult, error) {
	token, err := auth.GenerateToken(u.Identity(), s.jwtSecret, s.validityDuration)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}
	return &AuthResult{Token: token, User: u.Public()}, nil
}
