package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/itemkeeper/internal/common"
	"github.com/dmitrijs2005/itemkeeper/internal/server/models"
	"github.com/dmitrijs2005/itemkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/itemkeeper/internal/server/validation"
)

// Listing defaults applied when the caller gives no usable value.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// ListQuery is a filtered, paginated listing request.
type ListQuery struct {
	Filter models.ItemFilter
	Page   int
	Limit  int
}

// ItemService implements the item collection operations and their
// ownership rules: only the creator or an admin may update or delete.
type ItemService struct {
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewItemService(m repomanager.RepositoryManager) *ItemService {
	return &ItemService{repomanager: m, now: time.Now}
}

func (s *ItemService) List(ctx context.Context, q ListQuery) (*models.ItemPage, error) {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	return s.repomanager.Items().List(ctx, q.Filter, q.Page, q.Limit)
}

func (s *ItemService) Get(ctx context.Context, id int64) (*models.Item, error) {
	return s.repomanager.Items().Get(ctx, id)
}

// Create stores a new item owned by identity. Absent optional fields take
// their defaults: category "other", price 0, stock 0.
func (s *ItemService) Create(ctx context.Context, identity models.Identity, in validation.ItemInput) (*models.Item, error) {
	now := s.now().UTC()
	item := &models.Item{
		Name:        in.Name,
		Description: in.Description,
		Category:    models.CategoryOther,
		CreatedBy:   identity.Username,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Price != nil {
		item.Price = *in.Price
	}
	if in.Stock != nil {
		item.Stock = *in.Stock
	}

	created, err := s.repomanager.Items().Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("error creating item: %w", err)
	}
	return created, nil
}

// Update merges the supplied fields into item id. A missing item is reported
// before a permission failure.
func (s *ItemService) Update(ctx context.Context, identity models.Identity, id int64, in validation.ItemInput) (*models.Item, error) {
	return s.repomanager.Items().Update(ctx, id, func(item *models.Item) error {
		if !identity.CanModify(item.CreatedBy) {
			return common.ErrorForbidden
		}
		item.Name = in.Name
		item.Description = in.Description
		if in.Category != nil {
			item.Category = *in.Category
		}
		if in.Price != nil {
			item.Price = *in.Price
		}
		if in.Stock != nil {
			item.Stock = *in.Stock
		}
		item.UpdatedAt = s.now().UTC()
		return nil
	})
}

// Delete removes item id and returns it.
func (s *ItemService) Delete(ctx context.Context, identity models.Identity, id int64) (*models.Item, error) {
	return s.repomanager.Items().Delete(ctx, id, func(item *models.Item) error {
		if !identity.CanModify(item.CreatedBy) {
			return common.ErrorForbidden
		}
		return nil
	})
}

func (s *ItemService) Summary(ctx context.Context) (*models.ItemSummary, error) {
	return s.repomanager.Items().Summary(ctx)
}
