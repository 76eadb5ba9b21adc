package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/globetrekker/globetrekker/internal/domain"
)

// ListTrips returns the persisted trips collection in stored order.
// An absent or unreadable record yields an empty slice.
func (s *Store) ListTrips(ctx context.Context) []domain.Trip {
	trips := getJSON(s, ctx, keyTrips, []domain.Trip{})
	if trips == nil {
		return []domain.Trip{}
	}
	return trips
}

// SaveTrip upserts trip into the collection and persists the whole
// collection. A trip without an id gets one; CreatedAt is set on first save
// and UpdatedAt refreshed on every save. Returns the stored record.
//
// SaveTrip does not validate — callers run domain.ValidateTrip first so an
// invalid trip is never handed to this layer.
func (s *Store) SaveTrip(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	ts := time.Now().UTC()
	if trip.ID == "" {
		trip.ID = GenerateID()
	}
	if trip.CreatedAt.IsZero() {
		trip.CreatedAt = ts
	}
	trip.UpdatedAt = ts

	s.mu.Lock()
	defer s.mu.Unlock()

	trips := s.ListTrips(ctx)
	replaced := false
	for i := range trips {
		if trips[i].ID == trip.ID {
			trips[i] = trip
			replaced = true
			break
		}
	}
	if !replaced {
		trips = append(trips, trip)
	}

	if err := s.setJSON(ctx, keyTrips, trips); err != nil {
		return domain.Trip{}, fmt.Errorf("storage.Store.SaveTrip: %w", err)
	}
	return trip, nil
}

// GetTrip returns the trip with the given id, or nil when no such trip is
// persisted.
func (s *Store) GetTrip(ctx context.Context, id string) *domain.Trip {
	for _, t := range s.ListTrips(ctx) {
		if t.ID == id {
			return &t
		}
	}
	return nil
}

// DeleteTrip removes the trip with the given id and persists the remaining
// collection. The trip's packing list is removed with it — an orphaned list
// would be unreachable once the trip is gone. Deleting an unknown id is a
// no-op that still succeeds, so deletes are idempotent.
func (s *Store) DeleteTrip(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	trips := s.ListTrips(ctx)
	remaining := trips[:0]
	for _, t := range trips {
		if t.ID != id {
			remaining = append(remaining, t)
		}
	}
	if err := s.setJSON(ctx, keyTrips, remaining); err != nil {
		return fmt.Errorf("storage.Store.DeleteTrip: %w", err)
	}

	lists := s.packingLists(ctx)
	if _, ok := lists[id]; ok {
		delete(lists, id)
		if err := s.setJSON(ctx, keyPackingLists, lists); err != nil {
			return fmt.Errorf("storage.Store.DeleteTrip: cascade packing list: %w", err)
		}
	}
	return nil
}
