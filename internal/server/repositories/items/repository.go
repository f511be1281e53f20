// Package items holds the item collection: an ordered set of records with
// sequential ids that are never reused.
package items

import (
	"context"

	"github.com/dmitrijs2005/itemkeeper/internal/server/models"
)

// MutateFunc inspects, and for updates modifies, a stored item. It runs while
// the collection is locked; returning an error aborts the operation.
type MutateFunc func(item *models.Item) error

// Repository stores items in insertion order. Missing ids yield
// common.ErrorNotFound.
type Repository interface {
	// List filters the collection and returns the 1-based page of the result.
	List(ctx context.Context, filter models.ItemFilter, page, limit int) (*models.ItemPage, error)
	Get(ctx context.Context, id int64) (*models.Item, error)
	// Create assigns the next id and stores item.
	Create(ctx context.Context, item *models.Item) (*models.Item, error)
	Update(ctx context.Context, id int64, fn MutateFunc) (*models.Item, error)
	// Delete removes the item once fn accepts it and returns the removed record.
	Delete(ctx context.Context, id int64, fn MutateFunc) (*models.Item, error)
	Summary(ctx context.Context) (*models.ItemSummary, error)
}
