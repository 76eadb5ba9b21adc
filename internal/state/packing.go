package state

import (
	"context"
	"errors"
	"fmt"

	"github.com/globetrekker/globetrekker/internal/domain"
)

// LoadPackingList reads tripID's packing list through to storage, caches it
// in the mirror, and returns it. Deliberately more lenient than the trip
// mutators: storage reads are fail-soft, so this never returns an error —
// the worst case is an empty list.
func (s *Store) LoadPackingList(ctx context.Context, tripID string) []domain.PackingItem {
	items := s.storage.ListPackingItems(ctx, tripID)

	s.mu.Lock()
	s.packingLists[tripID] = items
	s.mu.Unlock()
	s.changed()
	return items
}

// AddPackingItem persists a new item on tripID's list and refreshes the
// cached list from storage. Fails with domain.ErrOperation when the storage
// write fails.
func (s *Store) AddPackingItem(ctx context.Context, tripID string, item domain.PackingItem) (domain.PackingItem, error) {
	added, err := s.storage.AddPackingItem(ctx, tripID, item)
	if err != nil {
		return domain.PackingItem{}, s.fail(fmt.Errorf("state.Store.AddPackingItem: %w: %v", domain.ErrOperation, err))
	}

	s.reloadPackingList(ctx, tripID)
	s.notify.Success("Item added to packing list!")
	return added, nil
}

// UpdatePackingItem merges patch into the matching item and patches the
// cached list in place. Fails with domain.ErrNotFound for an unknown item id
// and domain.ErrOperation for storage failures.
//
// Success notifications are suppressed for packed-only patches (checkbox
// toggles) so ticking through a checklist stays quiet.
func (s *Store) UpdatePackingItem(ctx context.Context, tripID, itemID string, patch domain.PackingItemPatch) (domain.PackingItem, error) {
	updated, err := s.storage.UpdatePackingItem(ctx, tripID, itemID, patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.PackingItem{}, s.fail(fmt.Errorf("state.Store.UpdatePackingItem: item %s: %w", itemID, domain.ErrNotFound))
		}
		return domain.PackingItem{}, s.fail(fmt.Errorf("state.Store.UpdatePackingItem: %w: %v", domain.ErrOperation, err))
	}

	s.mu.Lock()
	items := s.packingLists[tripID]
	for i := range items {
		if items[i].ID == itemID {
			items[i] = updated
			break
		}
	}
	s.mu.Unlock()
	s.changed()

	if !patch.PackedOnly() {
		s.notify.Success("Item updated!")
	}
	return updated, nil
}

// DeletePackingItem removes the item from storage and refreshes the cached
// list. Fails with domain.ErrOperation when the storage write fails.
func (s *Store) DeletePackingItem(ctx context.Context, tripID, itemID string) error {
	if err := s.storage.DeletePackingItem(ctx, tripID, itemID); err != nil {
		return s.fail(fmt.Errorf("state.Store.DeletePackingItem: %w: %v", domain.ErrOperation, err))
	}

	s.reloadPackingList(ctx, tripID)
	s.notify.Success("Item removed from packing list!")
	return nil
}

// reloadPackingList re-reads tripID's list from storage into the mirror.
func (s *Store) reloadPackingList(ctx context.Context, tripID string) {
	items := s.storage.ListPackingItems(ctx, tripID)
	s.mu.Lock()
	s.packingLists[tripID] = items
	s.mu.Unlock()
	s.changed()
}
