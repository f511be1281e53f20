package httpapi

import (
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dmitrijs2005/itemkeeper/internal/server/models"
	"github.com/dmitrijs2005/itemkeeper/internal/server/services"
	"github.com/dmitrijs2005/itemkeeper/internal/server/validation"
)

var (
	readFailures   = failureMessages{notFound: "Item not found"}
	updateFailures = failureMessages{notFound: "Item not found", forbidden: "You do not have permission to update this item"}
	deleteFailures = failureMessages{notFound: "Item not found", forbidden: "You do not have permission to delete this item"}
)

// parseListQuery reads the listing parameters. Unusable numbers fall back to
// "no filter" or the service defaults.
func parseListQuery(q url.Values) services.ListQuery {
	lq := services.ListQuery{
		Filter: models.ItemFilter{
			Category: q.Get("category"),
			MinPrice: parsePrice(q.Get("minPrice")),
			MaxPrice: parsePrice(q.Get("maxPrice")),
			Search:   q.Get("search"),
		},
	}
	lq.Page, _ = strconv.Atoi(q.Get("page"))
	lq.Limit, _ = strconv.Atoi(q.Get("limit"))
	return lq
}

func parsePrice(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) {
		return nil
	}
	return &v
}

func (s *HTTPServer) listItems(w http.ResponseWriter, r *http.Request) {
	if id, ok := IdentityFrom(r.Context()); ok {
		s.logger.Debug(r.Context(), "listing items", "viewer", id.Username)
	}

	page, err := s.items.List(r.Context(), parseListQuery(r.URL.Query()))
	if err != nil {
		s.writeFailure(w, r, err, readFailures)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (s *HTTPServer) getItem(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ItemID(mux.Vars(r)["id"])
	if err != nil {
		s.writeFailure(w, r, err, readFailures)
		return
	}

	item, err := s.items.Get(r.Context(), id)
	if err != nil {
		s.writeFailure(w, r, err, readFailures)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// decodeItem reads and validates an item body.
func (s *HTTPServer) decodeItem(r *http.Request) (validation.ItemInput, error) {
	var req validation.ItemRequest
	if err := validation.DecodeJSON(r.Body, &req); err != nil {
		return validation.ItemInput{}, err
	}
	return s.validator.Item(req)
}

func (s *HTTPServer) createItem(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFrom(r.Context())

	in, err := s.decodeItem(r)
	if err != nil {
		s.writeFailure(w, r, err, readFailures)
		return
	}

	item, err := s.items.Create(r.Context(), identity, in)
	if err != nil {
		s.writeFailure(w, r, err, readFailures)
		return
	}

	s.logger.Info(r.Context(), "item created", "id", item.ID, "by", identity.Username)
	writeJSON(w, http.StatusCreated, messageResponse{Message: "Item created successfully", Item: item})
}

func (s *HTTPServer) updateItem(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFrom(r.Context())

	id, err := validation.ItemID(mux.Vars(r)["id"])
	if err != nil {
		s.writeFailure(w, r, err, updateFailures)
		return
	}
	in, err := s.decodeItem(r)
	if err != nil {
		s.writeFailure(w, r, err, updateFailures)
		return
	}

	item, err := s.items.Update(r.Context(), identity, id, in)
	if err != nil {
		s.writeFailure(w, r, err, updateFailures)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Item updated successfully", Item: item})
}

func (s *HTTPServer) deleteItem(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFrom(r.Context())

	id, err := validation.ItemID(mux.Vars(r)["id"])
	if err != nil {
		s.writeFailure(w, r, err, deleteFailures)
		return
	}

	item, err := s.items.Delete(r.Context(), identity, id)
	if err != nil {
		s.writeFailure(w, r, err, deleteFailures)
		return
	}

	s.logger.Info(r.Context(), "item deleted", "id", item.ID, "by", identity.Username)
	writeJSON(w, http.StatusOK, messageResponse{Message: "Item deleted successfully", Item: item})
}

func (s *HTTPServer) itemSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.items.Summary(r.Context())
	if err != nil {
		s.writeFailure(w, r, err, readFailures)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
