package validation

import (
	"strconv"
	"strings"
)

// ItemRequest is the raw body of an item create or update.
// Pointer fields distinguish "absent" from "zero". On pointers "required"
// only rejects nil, so min=1 catches blank text.
type ItemRequest struct {
	Name        *string  `json:"name" validate:"required,min=1,max=100"`
	Description *string  `json:"description" validate:"required,min=1,max=500"`
	Category    *string  `json:"category" validate:"omitnil,oneof=electronics clothing food books other"`
	Price       *float64 `json:"price" validate:"omitnil,gte=0"`
	Stock       *int     `json:"stock" validate:"omitnil,gte=0"`

	mismatched Errors
}

var itemMessages = map[string]string{
	"name.required":        "Name is required",
	"name.min":             "Name is required",
	"name":                 "Name must be less than 100 characters",
	"description.required": "Description is required",
	"description.min":      "Description is required",
	"description":          "Description must be less than 500 characters",
	"category":             "Invalid category",
	"price":                "Price must be a positive number",
	"stock":                "Stock must be a non-negative integer",
}

func (ItemRequest) message(field, tag string) string {
	return lookup(itemMessages, field, tag)
}

func (r ItemRequest) mismatches() Errors { return r.mismatched }
func (r *ItemRequest) setMismatches(e Errors) { r.mismatched = e }

// ItemInput is an item request that passed every rule. Name and Description
// are HTML-escaped; nil optional fields were not supplied.
type ItemInput struct {
	Name        string
	Description string
	Category    *string
	Price       *float64
	Stock       *int
}

func (v *Validator) Item(req ItemRequest) (ItemInput, error) {
	trimPtr(req.Name)
	trimPtr(req.Description)
	trimPtr(req.Category)

	if err := v.check(req); err != nil {
		return ItemInput{}, err
	}

	return ItemInput{
		Name:        EscapeHTML(*req.Name),
		Description: EscapeHTML(*req.Description),
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
	}, nil
}

// ItemID parses an item id path parameter; it must be an integer >= 1.
func ItemID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id < 1 {
		return 0, Errors{{Field: "id", Message: "Invalid item ID", Location: "params"}}
	}
	return id, nil
}
