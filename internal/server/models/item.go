package models

import "time"

// Item categories.
const (
	CategoryElectronics = "electronics"
	CategoryClothing    = "clothing"
	CategoryFood        = "food"
	CategoryBooks       = "books"
	CategoryOther       = "other"
)

// Categories lists every valid item category.
var Categories = []string{CategoryElectronics, CategoryClothing, CategoryFood, CategoryBooks, CategoryOther}

type Item struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ItemFilter selects items for a listing. Zero values mean "no filter".
type ItemFilter struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
	Search   string
}

// Pagination describes one page of a filtered listing.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

type ItemPage struct {
	Items      []Item     `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// ItemSummary aggregates the whole collection.
type ItemSummary struct {
	TotalItems     int            `json:"totalItems"`
	CategoryCounts map[string]int `json:"categories"`
	AveragePrice   float64        `json:"averagePrice"`
	TotalValue     float64        `json:"totalValue"`
}
