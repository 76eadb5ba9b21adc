package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globetrekker/globetrekker/internal/domain"
)

func validTrip() domain.Trip {
	return domain.Trip{
		Destination: "Paris",
		StartDate:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		Currency:    "USD",
		Travelers:   1,
		TripType:    domain.TripLeisure,
	}
}

// ---- ValidateTrip tests ----------------------------------------------------

func TestValidateTrip_Valid(t *testing.T) {
	assert.NoError(t, domain.ValidateTrip(validTrip()))
}

func TestValidateTrip_MissingDestination(t *testing.T) {
	trip := validTrip()
	trip.Destination = "   " // whitespace-only should be treated as empty

	err := domain.ValidateTrip(trip)

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "destination")
}

func TestValidateTrip_AllRequiredMissing(t *testing.T) {
	err := domain.ValidateTrip(domain.Trip{Travelers: 1, TripType: domain.TripLeisure})

	require.ErrorIs(t, err, domain.ErrValidation)
	// All missing fields are reported together, comma-joined.
	assert.Contains(t, err.Error(), "destination, startDate, endDate")
}

func TestValidateTrip_StartDateAfterEndDate(t *testing.T) {
	trip := validTrip()
	trip.StartDate, trip.EndDate = trip.EndDate, trip.StartDate

	err := domain.ValidateTrip(trip)

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "end date must be after start date")
}

func TestValidateTrip_StartDateEqualToEndDate(t *testing.T) {
	trip := validTrip()
	trip.EndDate = trip.StartDate

	// A zero-length trip is rejected: the end date must be strictly later.
	assert.ErrorIs(t, domain.ValidateTrip(trip), domain.ErrValidation)
}

func TestValidateTrip_NegativeBudget(t *testing.T) {
	trip := validTrip()
	budget := -100.0
	trip.Budget = &budget

	assert.ErrorIs(t, domain.ValidateTrip(trip), domain.ErrValidation)
}

func TestValidateTrip_ZeroTravelers(t *testing.T) {
	trip := validTrip()
	trip.Travelers = 0

	assert.ErrorIs(t, domain.ValidateTrip(trip), domain.ErrValidation)
}

func TestValidateTrip_UnknownTripType(t *testing.T) {
	trip := validTrip()
	trip.TripType = "spelunking"

	assert.ErrorIs(t, domain.ValidateTrip(trip), domain.ErrValidation)
}

// ---- ApplyDefaults tests ---------------------------------------------------

func TestApplyDefaults(t *testing.T) {
	trip := domain.Trip{Destination: "Kyoto"}
	trip.ApplyDefaults()

	assert.Equal(t, "USD", trip.Currency)
	assert.Equal(t, 1, trip.Travelers)
	assert.Equal(t, domain.TripLeisure, trip.TripType)
}

func TestApplyDefaults_DoesNotOverwrite(t *testing.T) {
	trip := domain.Trip{Currency: "EUR", Travelers: 4, TripType: domain.TripFamily}
	trip.ApplyDefaults()

	assert.Equal(t, "EUR", trip.Currency)
	assert.Equal(t, 4, trip.Travelers)
	assert.Equal(t, domain.TripFamily, trip.TripType)
}

// ---- TripPatch tests -------------------------------------------------------

func TestTripPatch_Apply(t *testing.T) {
	trip := validTrip()
	trip.ID = "t1"
	trip.Notes = "original notes"

	dest := "Rome"
	travelers := 3
	patched := domain.TripPatch{Destination: &dest, Travelers: &travelers}.Apply(trip)

	assert.Equal(t, "Rome", patched.Destination)
	assert.Equal(t, 3, patched.Travelers)
	// Untouched fields survive.
	assert.Equal(t, "t1", patched.ID)
	assert.Equal(t, "original notes", patched.Notes)
	assert.Equal(t, trip.StartDate, patched.StartDate)
}

func TestTripPatch_ApplyReplacesActivities(t *testing.T) {
	trip := validTrip()
	trip.Activities = []domain.Activity{{ID: "a1", Name: "Louvre"}}

	next := []domain.Activity{{ID: "a2", Name: "Eiffel Tower"}, {ID: "a3", Name: "Seine cruise"}}
	patched := domain.TripPatch{Activities: &next}.Apply(trip)

	// The sequence is replaced wholesale, in the order supplied.
	require.Len(t, patched.Activities, 2)
	assert.Equal(t, "Eiffel Tower", patched.Activities[0].Name)
	assert.Equal(t, "Seine cruise", patched.Activities[1].Name)
}
