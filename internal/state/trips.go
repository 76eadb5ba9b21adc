package state

import (
	"context"
	"fmt"

	"github.com/globetrekker/globetrekker/internal/domain"
)

// CreateTrip validates and persists a new trip, then appends it to the
// in-memory mirror. Returns the saved trip with its generated id and
// timestamps. Fails with domain.ErrValidation or domain.ErrStorage.
func (s *Store) CreateTrip(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	s.setLoading(true)

	trip.ApplyDefaults()
	if err := domain.ValidateTrip(trip); err != nil {
		return domain.Trip{}, s.fail(fmt.Errorf("state.Store.CreateTrip: %w", err))
	}

	saved, err := s.storage.SaveTrip(ctx, trip)
	if err != nil {
		return domain.Trip{}, s.fail(fmt.Errorf("state.Store.CreateTrip: %w", err))
	}

	s.mu.Lock()
	s.trips = append(s.trips, saved)
	s.loading = false
	s.mu.Unlock()
	s.changed()
	s.notify.Success("Trip created successfully!")
	return saved, nil
}

// UpdateTrip merges patch into the stored trip, re-validates the merged
// record, persists it, and replaces the matching entry in the mirror. When
// the updated trip is the current selection, the selection is refreshed too,
// so the cached "current" view never goes stale.
// Fails with domain.ErrNotFound when no trip with that id exists.
func (s *Store) UpdateTrip(ctx context.Context, id string, patch domain.TripPatch) (domain.Trip, error) {
	s.setLoading(true)

	existing := s.storage.GetTrip(ctx, id)
	if existing == nil {
		return domain.Trip{}, s.fail(fmt.Errorf("state.Store.UpdateTrip: trip %s: %w", id, domain.ErrNotFound))
	}

	merged := patch.Apply(*existing)
	if err := domain.ValidateTrip(merged); err != nil {
		return domain.Trip{}, s.fail(fmt.Errorf("state.Store.UpdateTrip: %w", err))
	}

	saved, err := s.storage.SaveTrip(ctx, merged)
	if err != nil {
		return domain.Trip{}, s.fail(fmt.Errorf("state.Store.UpdateTrip: %w", err))
	}

	s.mu.Lock()
	for i := range s.trips {
		if s.trips[i].ID == saved.ID {
			s.trips[i] = saved
			break
		}
	}
	if s.currentTrip != nil && s.currentTrip.ID == saved.ID {
		current := saved
		s.currentTrip = &current
	}
	s.loading = false
	s.mu.Unlock()
	s.changed()
	s.notify.Success("Trip updated successfully!")
	return saved, nil
}

// DeleteTrip removes the trip from storage and from the mirror, along with
// its cached packing list. A deleted current selection is cleared.
// Fails with domain.ErrStorage when the persistent removal fails.
func (s *Store) DeleteTrip(ctx context.Context, id string) error {
	s.setLoading(true)

	if err := s.storage.DeleteTrip(ctx, id); err != nil {
		// The trip record and its packing-list cascade are separate writes.
		// When the trip removal committed before the failure, evict it from
		// the mirror anyway so the snapshot does not resurrect a trip that
		// storage no longer has.
		if s.storage.GetTrip(ctx, id) == nil {
			s.evictTrip(id)
		}
		return s.fail(fmt.Errorf("state.Store.DeleteTrip: %w", err))
	}

	s.evictTrip(id)
	s.setLoading(false)
	s.changed()
	s.notify.Success("Trip deleted successfully!")
	return nil
}

// evictTrip drops id from the trips mirror, the current selection, and the
// packing-list cache.
func (s *Store) evictTrip(id string) {
	s.mu.Lock()
	remaining := s.trips[:0]
	for _, t := range s.trips {
		if t.ID != id {
			remaining = append(remaining, t)
		}
	}
	s.trips = remaining
	if s.currentTrip != nil && s.currentTrip.ID == id {
		s.currentTrip = nil
	}
	delete(s.packingLists, id)
	s.mu.Unlock()
}

// SetCurrentTrip selects trip as the current one (nil deselects). Pure
// in-memory assignment: no persistence, no validation — the caller is
// responsible for passing a trip that exists.
func (s *Store) SetCurrentTrip(trip *domain.Trip) {
	s.mu.Lock()
	if trip == nil {
		s.currentTrip = nil
	} else {
		t := *trip
		s.currentTrip = &t
	}
	s.mu.Unlock()
	s.changed()
}

// LookupTrip returns the trip with the given id from the in-memory mirror,
// falling through to storage when the mirror does not have it (covers reads
// before hydration has caught up). Returns nil when the trip does not exist
// anywhere.
func (s *Store) LookupTrip(ctx context.Context, id string) *domain.Trip {
	s.mu.RLock()
	for i := range s.trips {
		if s.trips[i].ID == id {
			t := s.trips[i]
			s.mu.RUnlock()
			return &t
		}
	}
	s.mu.RUnlock()
	return s.storage.GetTrip(ctx, id)
}
