// Package handler implements the HTTP handlers for the GlobeTrekker API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, trip.go, packing.go, ...) but all share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/globetrekker/globetrekker/internal/domain"
)

// TripStore defines the state-store operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching storage or the state layer.
type TripStore interface {
	Trips() []domain.Trip
	CreateTrip(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	UpdateTrip(ctx context.Context, id string, patch domain.TripPatch) (domain.Trip, error)
	DeleteTrip(ctx context.Context, id string) error
	LookupTrip(ctx context.Context, id string) *domain.Trip
	LoadPackingList(ctx context.Context, tripID string) []domain.PackingItem
	AddPackingItem(ctx context.Context, tripID string, item domain.PackingItem) (domain.PackingItem, error)
	UpdatePackingItem(ctx context.Context, tripID, itemID string, patch domain.PackingItemPatch) (domain.PackingItem, error)
	DeletePackingItem(ctx context.Context, tripID, itemID string) error
}

// PreferencesStore defines the preferences operations the handlers depend on.
type PreferencesStore interface {
	Preferences(ctx context.Context) domain.Preferences
	SavePreferences(ctx context.Context, patch domain.PreferencesPatch) (domain.Preferences, error)
}

// Exporter assembles the flat export rows served by GET /export.
type Exporter interface {
	Rows(ctx context.Context) []domain.ExportRow
}

// Server holds the handler dependencies for all API endpoints.
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	trips    TripStore
	prefs    PreferencesStore
	exporter Exporter
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripStore, prefs PreferencesStore, exporter Exporter) *Server {
	return &Server{trips: trips, prefs: prefs, exporter: exporter}
}

// Routes returns the chi router for the full API surface.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)

	r.Route("/trips", func(r chi.Router) {
		r.Get("/", s.ListTrips)
		r.Post("/", s.CreateTrip)
		r.Route("/{tripID}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Patch("/", s.UpdateTrip)
			r.Delete("/", s.DeleteTrip)

			r.Route("/packing", func(r chi.Router) {
				r.Get("/", s.ListPackingItems)
				r.Post("/", s.AddPackingItem)
				r.Patch("/{itemID}", s.UpdatePackingItem)
				r.Delete("/{itemID}", s.DeletePackingItem)
			})
		})
	})

	r.Get("/preferences", s.GetPreferences)
	r.Put("/preferences", s.UpdatePreferences)
	r.Get("/export", s.Export)

	return r
}

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON decodes the request body into v, rejecting unknown fields so
// client typos surface as 422s instead of silently dropped data.
func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return errors.New("request body is required")
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
