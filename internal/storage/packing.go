package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/globetrekker/globetrekker/internal/domain"
)

// packingLists reads the full trip-id → items mapping, degrading to an empty
// map when the record is absent or unreadable.
func (s *Store) packingLists(ctx context.Context) map[string][]domain.PackingItem {
	lists := getJSON(s, ctx, keyPackingLists, map[string][]domain.PackingItem{})
	if lists == nil {
		return map[string][]domain.PackingItem{}
	}
	return lists
}

// ListPackingItems returns the packing list for tripID in stored order,
// empty when the trip has no list.
func (s *Store) ListPackingItems(ctx context.Context, tripID string) []domain.PackingItem {
	items := s.packingLists(ctx)[tripID]
	if items == nil {
		return []domain.PackingItem{}
	}
	return items
}

// ReplacePackingItems writes items as the complete packing list for tripID.
// Items without an id get one, every item is stamped with the trip id and a
// fresh UpdatedAt, and the whole mapping is persisted. Returns the stored
// list. Every packing mutation funnels through here — there is no
// partial-item persistence.
func (s *Store) ReplacePackingItems(ctx context.Context, tripID string, items []domain.PackingItem) ([]domain.PackingItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.replacePackingItems(ctx, tripID, items)
}

// replacePackingItems is ReplacePackingItems with s.mu already held, so the
// item-level mutators can read the current list and write it back under one
// lock acquisition.
func (s *Store) replacePackingItems(ctx context.Context, tripID string, items []domain.PackingItem) ([]domain.PackingItem, error) {
	ts := time.Now().UTC()
	stamped := make([]domain.PackingItem, len(items))
	for i, item := range items {
		if item.ID == "" {
			item.ID = GenerateID()
		}
		item.TripID = tripID
		item.UpdatedAt = ts
		stamped[i] = item
	}

	lists := s.packingLists(ctx)
	lists[tripID] = stamped
	if err := s.setJSON(ctx, keyPackingLists, lists); err != nil {
		return nil, fmt.Errorf("storage.Store.ReplacePackingItems: %w", err)
	}
	return stamped, nil
}

// AddPackingItem appends item to tripID's list. The item gets a fresh id and
// CreatedAt, and always starts unpacked regardless of what the caller set.
// Returns the stored item.
func (s *Store) AddPackingItem(ctx context.Context, tripID string, item domain.PackingItem) (domain.PackingItem, error) {
	item.ID = GenerateID()
	item.Packed = false
	item.CreatedAt = time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()

	items := append(s.ListPackingItems(ctx, tripID), item)
	stored, err := s.replacePackingItems(ctx, tripID, items)
	if err != nil {
		return domain.PackingItem{}, fmt.Errorf("storage.Store.AddPackingItem: %w", err)
	}
	return stored[len(stored)-1], nil
}

// UpdatePackingItem merges patch into the item with itemID on tripID's list.
// Returns domain.ErrNotFound when no such item exists — a silent no-op here
// would let the UI believe an edit landed when it did not.
func (s *Store) UpdatePackingItem(ctx context.Context, tripID, itemID string, patch domain.PackingItemPatch) (domain.PackingItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.ListPackingItems(ctx, tripID)
	idx := -1
	for i := range items {
		if items[i].ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.PackingItem{}, fmt.Errorf("storage.Store.UpdatePackingItem: %w", domain.ErrNotFound)
	}
	items[idx] = patch.Apply(items[idx])

	stored, err := s.replacePackingItems(ctx, tripID, items)
	if err != nil {
		return domain.PackingItem{}, fmt.Errorf("storage.Store.UpdatePackingItem: %w", err)
	}
	return stored[idx], nil
}

// DeletePackingItem removes the item with itemID from tripID's list.
// Deleting an unknown item id is a no-op that still succeeds.
func (s *Store) DeletePackingItem(ctx context.Context, tripID, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.ListPackingItems(ctx, tripID)
	remaining := items[:0]
	for _, item := range items {
		if item.ID != itemID {
			remaining = append(remaining, item)
		}
	}
	if _, err := s.replacePackingItems(ctx, tripID, remaining); err != nil {
		return fmt.Errorf("storage.Store.DeletePackingItem: %w", err)
	}
	return nil
}
