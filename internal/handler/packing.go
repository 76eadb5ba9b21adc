package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/globetrekker/globetrekker/internal/domain"
)

// packingItemRequest is the JSON body for POST /trips/{tripID}/packing.
type packingItemRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes"`
}

// packingItemPatchRequest is the JSON body for
// PATCH /trips/{tripID}/packing/{itemID}. Absent fields are left unchanged.
type packingItemPatchRequest struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Quantity *int    `json:"quantity"`
	Notes    *string `json:"notes"`
	Packed   *bool   `json:"packed"`
}

// ListPackingItems handles GET /trips/{tripID}/packing.
// An unknown trip yields an empty list rather than 404, since a trip
// without a stored list and a missing trip are indistinguishable here.
func (s *Server) ListPackingItems(w http.ResponseWriter, r *http.Request) {
	items := s.trips.LoadPackingList(r.Context(), chi.URLParam(r, "tripID"))
	writeJSON(w, http.StatusOK, items)
}

// AddPackingItem handles POST /trips/{tripID}/packing.
func (s *Server) AddPackingItem(w http.ResponseWriter, r *http.Request) {
	var req packingItemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	item := domain.PackingItem{
		Name:     req.Name,
		Category: req.Category,
		Quantity: req.Quantity,
		Notes:    req.Notes,
	}
	created, err := s.trips.AddPackingItem(r.Context(), chi.URLParam(r, "tripID"), item)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UpdatePackingItem handles PATCH /trips/{tripID}/packing/{itemID}.
func (s *Server) UpdatePackingItem(w http.ResponseWriter, r *http.Request) {
	var req packingItemPatchRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	patch := domain.PackingItemPatch{
		Name:     req.Name,
		Category: req.Category,
		Quantity: req.Quantity,
		Notes:    req.Notes,
		Packed:   req.Packed,
	}
	updated, err := s.trips.UpdatePackingItem(r.Context(), chi.URLParam(r, "tripID"), chi.URLParam(r, "itemID"), patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "packing item not found")
			return
		}
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeletePackingItem handles DELETE /trips/{tripID}/packing/{itemID}.
func (s *Server) DeletePackingItem(w http.ResponseWriter, r *http.Request) {
	err := s.trips.DeletePackingItem(r.Context(), chi.URLParam(r, "tripID"), chi.URLParam(r, "itemID"))
	if err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
