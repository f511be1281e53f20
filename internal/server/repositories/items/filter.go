package items

import (
	"strings"

	"github.com/dmitrijs2005/itemkeeper/internal/server/models"
)

// Match applies the filter stages in order: category, minimum price,
// maximum price, then case-insensitive search over name and description.
func Match(f models.ItemFilter, item *models.Item) bool {
	if f.Category != "" && item.Category != f.Category {
		return false
	}
	if f.MinPrice != nil && item.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && item.Price > *f.MaxPrice {
		return false
	}
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(item.Name), term) &&
			!strings.Contains(strings.ToLower(item.Description), term) {
			return false
		}
	}
	return true
}

// Paginate cuts the 1-based page out of matched. Pages past the end are
// empty, never an error. limit must be positive. Bounds are compared by
// division so huge page or limit values cannot overflow.
func Paginate(matched []models.Item, page, limit int) *models.ItemPage {
	total := len(matched)
	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}

	out := &models.ItemPage{
		Items: []models.Item{},
		Pagination: models.Pagination{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: totalPages,
		},
	}
	if page < 1 || page > totalPages {
		return out
	}

	start := (page - 1) * limit
	end := start + min(limit, total-start)
	out.Items = append(out.Items, matched[start:end]...)
	return out
}

// Summarize aggregates counts and prices over all items.
func Summarize(all []models.Item) *models.ItemSummary {
	s := &models.ItemSummary{
		TotalItems:     len(all),
		CategoryCounts: map[string]int{},
	}
	if len(all) == 0 {
		return s
	}

	var priceSum float64
	for i := range all {
		s.CategoryCounts[all[i].Category]++
		s.TotalValue += all[i].Price * float64(all[i].Stock)
		priceSum += all[i].Price
	}
	s.AveragePrice = priceSum / float64(len(all))
	return s
}
