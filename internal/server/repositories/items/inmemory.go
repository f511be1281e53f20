package items

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrijs2005/itemkeeper/internal/common"
	"github.com/dmitrijs2005/itemkeeper/internal/server/models"
)

type InMemoryRepository struct {
	mu     sync.RWMutex
	items  []models.Item
	nextID int64
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

func (r *InMemoryRepository) List(ctx context.Context, filter models.ItemFilter, page, limit int) (*models.ItemPage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Item, 0, len(r.items))
	for i := range r.items {
		if Match(filter, &r.items[i]) {
			matched = append(matched, r.items[i])
		}
	}
	return Paginate(matched, page, limit), nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id int64) (*models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, common.ErrorNotFound
	}
	item := r.items[i]
	return &item, nil
}

func (r *InMemoryRepository) Create(ctx context.Context, item *models.Item) (*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *item
	stored.ID = r.nextID
	r.nextID++
	r.items = append(r.items, stored)

	return &stored, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, id int64, fn MutateFunc) (*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, common.ErrorNotFound
	}

	updated := r.items[i]
	if err := fn(&updated); err != nil {
		return nil, err
	}
	updated.ID = id
	r.items[i] = updated

	return &updated, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id int64, fn MutateFunc) (*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, common.ErrorNotFound
	}

	removed := r.items[i]
	inspected := removed
	if err := fn(&inspected); err != nil {
		return nil, err
	}
	r.items = slices.Delete(r.items, i, i+1)

	return &removed, nil
}

func (r *InMemoryRepository) Summary(ctx context.Context) (*models.ItemSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return Summarize(r.items), nil
}

func (r *InMemoryRepository) indexOf(id int64) int {
	for i := range r.items {
		if r.items[i].ID == id {
			return i
		}
	}
	return -1
}
