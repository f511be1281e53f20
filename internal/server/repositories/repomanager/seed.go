package repomanager

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/itemkeeper/internal/common"
	"github.com/dmitrijs2005/itemkeeper/internal/server/auth"
	"github.com/dmitrijs2005/itemkeeper/internal/server/models"
)

// DemoAccount is a well-known login created by SeedDemoData.
type DemoAccount struct {
	ID       string
	Username string
	Email    string
	Password string
	Role     string
}

var demoAccounts = []DemoAccount{
	{ID: "1", Username: "admin", Email: "admin@example.com", Password: "Admin123!", Role: common.RoleAdmin},
	{ID: "2", Username: "testuser", Email: "test@example.com", Password: "Test123!", Role: common.RoleUser},
}

// DemoAccounts returns a copy of the seeded logins.
func DemoAccounts() []DemoAccount {
	return append([]DemoAccount(nil), demoAccounts...)
}

func demoTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

var demoItems = []models.Item{
	{
		Name:        "Laptop Dell XPS 15",
		Description: "High-performance laptop with Intel i7 processor and 16GB RAM",
		Category:    models.CategoryElectronics,
		Price:       1299.99,
		Stock:       15,
		CreatedBy:   "admin",
		CreatedAt:   demoTime("2024-01-15T10:30:00Z"),
		UpdatedAt:   demoTime("2024-01-15T10:30:00Z"),
	},
	{
		Name:        "Wireless Mouse Logitech",
		Description: "Ergonomic wireless mouse with precision tracking",
		Category:    models.CategoryElectronics,
		Price:       29.99,
		Stock:       50,
		CreatedBy:   "admin",
		CreatedAt:   demoTime("2024-01-16T14:20:00Z"),
		UpdatedAt:   demoTime("2024-01-16T14:20:00Z"),
	},
	{
		Name:        "Programming Book: Clean Code",
		Description: "Essential reading for software developers",
		Category:    models.CategoryBooks,
		Price:       39.99,
		Stock:       30,
		CreatedBy:   "testuser",
		CreatedAt:   demoTime("2024-01-17T09:15:00Z"),
		UpdatedAt:   demoTime("2024-01-17T09:15:00Z"),
	},
}

// SeedDemoData loads the demo accounts and items into empty collections.
// Passwords are hashed with the given bcrypt cost.
func SeedDemoData(ctx context.Context, m RepositoryManager, cost int) error {
	for _, a := range demoAccounts {
		hash, err := auth.HashPassword(a.Password, cost)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", a.Username, err)
		}
		_, err = m.Users().Create(ctx, &models.User{
			ID:           a.ID,
			Username:     a.Username,
			Email:        a.Email,
			PasswordHash: hash,
			Role:         a.Role,
		})
		if err != nil {
			return fmt.Errorf("seed user %s: %w", a.Username, err)
		}
	}

	for i := range demoItems {
		item := demoItems[i]
		if _, err := m.Items().Create(ctx, &item); err != nil {
			return fmt.Errorf("seed item %q: %w", item.Name, err)
		}
	}
	return nil
}
