// Package repomanager bundles the server collections behind a single
// RepositoryManager so services do not depend on a concrete store.
package repomanager

import (
	"github.com/dmitrijs2005/itemkeeper/internal/server/repositories/items"
	"github.com/dmitrijs2005/itemkeeper/internal/server/repositories/users"
)

// InMemoryRepositoryManager vends process-local collections. Nothing survives
// a restart.
type InMemoryRepositoryManager struct {
	users *users.InMemoryRepository
	items *items.InMemoryRepository
}

func (m *InMemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Items() items.Repository {
	return m.items
}

// NewInMemoryRepositoryManager constructs empty collections.
func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users: users.NewInMemoryRepository(),
		items: items.NewInMemoryRepository(),
	}
}
