// Package state implements the in-process source of truth for the trip
// planner UI: an in-memory mirror of the persisted trips and packing lists,
// kept consistent by every mutating operation. Each mutator follows the same
// two-phase contract: validate, persist through the storage layer, then
// commit to the in-memory snapshot. Consumers read the snapshot; they never
// reach into storage directly.
package state

import (
	"context"
	"sync"

	"github.com/globetrekker/globetrekker/internal/domain"
)

// Storage defines the persistence operations the state store depends on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets state
// tests inject a storage double without touching a database.
type Storage interface {
	ListTrips(ctx context.Context) []domain.Trip
	SaveTrip(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetTrip(ctx context.Context, id string) *domain.Trip
	DeleteTrip(ctx context.Context, id string) error
	ListPackingItems(ctx context.Context, tripID string) []domain.PackingItem
	AddPackingItem(ctx context.Context, tripID string, item domain.PackingItem) (domain.PackingItem, error)
	UpdatePackingItem(ctx context.Context, tripID, itemID string, patch domain.PackingItemPatch) (domain.PackingItem, error)
	DeletePackingItem(ctx context.Context, tripID, itemID string) error
}

// Store is the trip state store. Construct one per application run with New
// and share it by reference; there are no package-level singletons.
//
// All snapshot fields are guarded by mu so concurrent readers always observe
// a fully committed state, never a half-applied mutation.
type Store struct {
	storage Storage
	notify  Notifier

	mu           sync.RWMutex
	trips        []domain.Trip
	currentTrip  *domain.Trip
	packingLists map[string][]domain.PackingItem
	loading      bool
	err          error

	watch chan struct{}
}

// New builds a Store over the given storage and hydrates the trips mirror
// from it. Pass a nil notifier to silence notifications in tests.
func New(ctx context.Context, st Storage, notify Notifier) *Store {
	if notify == nil {
		notify = nopNotifier{}
	}
	return &Store{
		storage:      st,
		notify:       notify,
		trips:        st.ListTrips(ctx),
		packingLists: make(map[string][]domain.PackingItem),
		watch:        make(chan struct{}, 1),
	}
}

type nopNotifier struct{}

func (nopNotifier) Success(string) {}
func (nopNotifier) Error(string)   {}

// Watch returns a channel that receives a signal after every committed state
// change. Signals are coalesced: a consumer that is slow to drain sees at
// least one signal for any burst of changes. Intended for UI re-render loops.
func (s *Store) Watch() <-chan struct{} {
	return s.watch
}

// changed signals watchers without ever blocking a mutator.
func (s *Store) changed() {
	select {
	case s.watch <- struct{}{}:
	default:
	}
}

// fail records err as the store's error state, clears the loading flag,
// notifies once, and hands err back for the caller to return.
func (s *Store) fail(err error) error {
	s.mu.Lock()
	s.err = err
	s.loading = false
	s.mu.Unlock()
	s.changed()
	s.notify.Error(err.Error())
	return err
}

// setLoading flips the loading flag; mutators call it on entry.
func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// ---- snapshot accessors ----------------------------------------------------

// Trips returns a copy of the in-memory trips mirror in stored order.
func (s *Store) Trips() []domain.Trip {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Trip, len(s.trips))
	copy(out, s.trips)
	return out
}

// CurrentTrip returns a copy of the currently selected trip, or nil when no
// trip is selected. The selection tracks the trips mirror: updates refresh
// it and deletion clears it.
func (s *Store) CurrentTrip() *domain.Trip {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentTrip == nil {
		return nil
	}
	t := *s.currentTrip
	return &t
}

// PackingList returns a copy of the cached packing list for tripID, empty
// when the list has not been loaded or the trip has no items.
func (s *Store) PackingList(tripID string) []domain.PackingItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := s.packingLists[tripID]
	out := make([]domain.PackingItem, len(items))
	copy(out, items)
	return out
}

// Loading reports whether a mutating operation is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the most recent operation error, or nil. The error sticks
// until the next failure or an explicit ClearError — completing a later
// operation successfully does not clear it.
func (s *Store) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// ClearError resets the error state to nil. No other side effects.
func (s *Store) ClearError() {
	s.mu.Lock()
	s.err = nil
	s.mu.Unlock()
	s.changed()
}
