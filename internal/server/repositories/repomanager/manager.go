package repomanager

import (
	"github.com/dmitrijs2005/itemkeeper/internal/server/repositories/items"
	"github.com/dmitrijs2005/itemkeeper/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users() users.Repository
	Items() items.Repository
}
