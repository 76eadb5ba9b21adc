package domain

import "time"

// PackingItem is a single entry on a trip's packing checklist.
// Items belong to exactly one trip; there is no cross-trip sharing.
type PackingItem struct {
	ID        string    `json:"id"`
	TripID    string    `json:"tripId"`
	Name      string    `json:"name"`
	Category  string    `json:"category,omitempty"`
	Quantity  int       `json:"quantity,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Packed    bool      `json:"packed"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PackingItemPatch is a partial update for a PackingItem.
// Nil fields are left unchanged.
type PackingItemPatch struct {
	Name     *string `json:"name,omitempty"`
	Category *string `json:"category,omitempty"`
	Quantity *int    `json:"quantity,omitempty"`
	Notes    *string `json:"notes,omitempty"`
	Packed   *bool   `json:"packed,omitempty"`
}

// Apply returns a copy of item with the non-nil patch fields merged in.
func (p PackingItemPatch) Apply(item PackingItem) PackingItem {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.Quantity != nil {
		item.Quantity = *p.Quantity
	}
	if p.Notes != nil {
		item.Notes = *p.Notes
	}
	if p.Packed != nil {
		item.Packed = *p.Packed
	}
	return item
}

// PackedOnly reports whether the patch touches the packed flag and nothing
// else. Checkbox toggles are exempt from success notifications to avoid
// toast noise, so the state store checks this before notifying.
func (p PackingItemPatch) PackedOnly() bool {
	return p.Packed != nil && p.Name == nil && p.Category == nil && p.Quantity == nil && p.Notes == nil
}
