// Package domain contains the core data types for the GlobeTrekker trip
// planner. This package has zero external dependencies and is imported by
// every other internal package (storage, state, handler).
package domain

import (
	"fmt"
	"strings"
	"time"
)

// TripType classifies the overall character of a trip.
// The zero value is not valid; use TripLeisure as the default.
type TripType string

// All trip types accepted by validation.
const (
	TripLeisure   TripType = "leisure"
	TripBusiness  TripType = "business"
	TripAdventure TripType = "adventure"
	TripCultural  TripType = "cultural"
	TripFamily    TripType = "family"
	TripRomantic  TripType = "romantic"
)

// Valid reports whether t is one of the known trip types.
func (t TripType) Valid() bool {
	switch t {
	case TripLeisure, TripBusiness, TripAdventure, TripCultural, TripFamily, TripRomantic:
		return true
	}
	return false
}

// Activity is a single planned activity on a trip.
// Activities are stored in insertion order; the order is meaningful.
type Activity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Trip represents a single planned journey.
// A trip is the top-level aggregate; packing items belong to a trip.
// JSON field names are camelCase to match the persisted record layout.
type Trip struct {
	ID          string     `json:"id"`
	Destination string     `json:"destination"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     time.Time  `json:"endDate"`
	Budget      *float64   `json:"budget,omitempty"` // nil when no budget was set
	Currency    string     `json:"currency"`
	Travelers   int        `json:"travelers"`
	TripType    TripType   `json:"tripType"`
	Notes       string     `json:"notes,omitempty"`
	Activities  []Activity `json:"activities,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// ApplyDefaults fills the optional fields that have documented defaults:
// currency "USD", one traveler, leisure trip type.
func (t *Trip) ApplyDefaults() {
	if t.Currency == "" {
		t.Currency = "USD"
	}
	if t.Travelers == 0 {
		t.Travelers = 1
	}
	if t.TripType == "" {
		t.TripType = TripLeisure
	}
}

// ValidateTrip enforces the business rules every persisted trip must satisfy.
//   - Destination, StartDate, and EndDate are required. All missing required
//     fields are reported together, comma-joined, in one error.
//   - StartDate must be strictly before EndDate.
//   - Budget, when set, must not be negative.
//   - Travelers must be at least 1.
//   - TripType must be one of the known types.
//
// Returns nil on success, or an error wrapping ErrValidation.
// Must be called before every persist of a Trip.
func ValidateTrip(t Trip) error {
	var missing []string
	if strings.TrimSpace(t.Destination) == "" {
		missing = append(missing, "destination")
	}
	if t.StartDate.IsZero() {
		missing = append(missing, "startDate")
	}
	if t.EndDate.IsZero() {
		missing = append(missing, "endDate")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %s", ErrValidation, strings.Join(missing, ", "))
	}

	if !t.StartDate.Before(t.EndDate) {
		return fmt.Errorf("%w: end date must be after start date", ErrValidation)
	}
	if t.Budget != nil && *t.Budget < 0 {
		return fmt.Errorf("%w: budget must not be negative", ErrValidation)
	}
	if t.Travelers < 1 {
		return fmt.Errorf("%w: travelers must be at least 1", ErrValidation)
	}
	if !t.TripType.Valid() {
		return fmt.Errorf("%w: unknown trip type %q", ErrValidation, t.TripType)
	}
	return nil
}

// TripPatch is a partial update for a Trip. Nil fields are left unchanged.
// Activities, when set, replaces the whole sequence — per-activity patching
// is handled by the caller assembling the new list.
type TripPatch struct {
	Destination *string     `json:"destination,omitempty"`
	StartDate   *time.Time  `json:"startDate,omitempty"`
	EndDate     *time.Time  `json:"endDate,omitempty"`
	Budget      *float64    `json:"budget,omitempty"`
	Currency    *string     `json:"currency,omitempty"`
	Travelers   *int        `json:"travelers,omitempty"`
	TripType    *TripType   `json:"tripType,omitempty"`
	Notes       *string     `json:"notes,omitempty"`
	Activities  *[]Activity `json:"activities,omitempty"`
}

// Apply returns a copy of t with the non-nil patch fields merged in.
// Identity and timestamp fields are never touched by a patch.
func (p TripPatch) Apply(t Trip) Trip {
	if p.Destination != nil {
		t.Destination = *p.Destination
	}
	if p.StartDate != nil {
		t.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		t.EndDate = *p.EndDate
	}
	if p.Budget != nil {
		t.Budget = p.Budget
	}
	if p.Currency != nil {
		t.Currency = *p.Currency
	}
	if p.Travelers != nil {
		t.Travelers = *p.Travelers
	}
	if p.TripType != nil {
		t.TripType = *p.TripType
	}
	if p.Notes != nil {
		t.Notes = *p.Notes
	}
	if p.Activities != nil {
		t.Activities = *p.Activities
	}
	return t
}
