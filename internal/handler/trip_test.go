package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globetrekker/globetrekker/internal/domain"
	"github.com/globetrekker/globetrekker/internal/handler"
)

// mockTripStore is a test double for handler.TripStore.
// Set only the method fields your test needs.
type mockTripStore struct {
	trips             func() []domain.Trip
	createTrip        func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	updateTrip        func(ctx context.Context, id string, patch domain.TripPatch) (domain.Trip, error)
	deleteTrip        func(ctx context.Context, id string) error
	lookupTrip        func(ctx context.Context, id string) *domain.Trip
	loadPackingList   func(ctx context.Context, tripID string) []domain.PackingItem
	addPackingItem    func(ctx context.Context, tripID string, item domain.PackingItem) (domain.PackingItem, error)
	updatePackingItem func(ctx context.Context, tripID, itemID string, patch domain.PackingItemPatch) (domain.PackingItem, error)
	deletePackingItem func(ctx context.Context, tripID, itemID string) error
}

func (m *mockTripStore) Trips() []domain.Trip {
	return m.trips()
}
func (m *mockTripStore) CreateTrip(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.createTrip(ctx, trip)
}
func (m *mockTripStore) UpdateTrip(ctx context.Context, id string, patch domain.TripPatch) (domain.Trip, error) {
	return m.updateTrip(ctx, id, patch)
}
func (m *mockTripStore) DeleteTrip(ctx context.Context, id string) error {
	return m.deleteTrip(ctx, id)
}
func (m *mockTripStore) LookupTrip(ctx context.Context, id string) *domain.Trip {
	return m.lookupTrip(ctx, id)
}
func (m *mockTripStore) LoadPackingList(ctx context.Context, tripID string) []domain.PackingItem {
	return m.loadPackingList(ctx, tripID)
}
func (m *mockTripStore) AddPackingItem(ctx context.Context, tripID string, item domain.PackingItem) (domain.PackingItem, error) {
	return m.addPackingItem(ctx, tripID, item)
}
func (m *mockTripStore) UpdatePackingItem(ctx context.Context, tripID, itemID string, patch domain.PackingItemPatch) (domain.PackingItem, error) {
	return m.updatePackingItem(ctx, tripID, itemID, patch)
}
func (m *mockTripStore) DeletePackingItem(ctx context.Context, tripID, itemID string) error {
	return m.deletePackingItem(ctx, tripID, itemID)
}

// compile-time check: mockTripStore must satisfy handler.TripStore.
var _ handler.TripStore = (*mockTripStore)(nil)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server with the given mock into the chi router.
// This mirrors exactly how main.go wires it in production.
func newHTTPHandler(trips handler.TripStore) http.Handler {
	return handler.NewServer(trips, nil, nil).Routes()
}

func tripFixture() domain.Trip {
	return domain.Trip{
		ID:          "m0abc123def456",
		Destination: "Lisbon",
		StartDate:   time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
		Currency:    "USD",
		Travelers:   2,
		TripType:    domain.TripLeisure,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

// errorMessage extracts error.message from the standard error body.
func errorMessage(t *testing.T, body *bytes.Buffer) string {
	t.Helper()
	var resp struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(body).Decode(&resp))
	return resp.Error.Message
}

// ---- GET /trips ------------------------------------------------------------

func TestListTrips_200(t *testing.T) {
	fixture := tripFixture()
	store := &mockTripStore{
		trips: func() []domain.Trip { return []domain.Trip{fixture} },
	}

	req := httptest.NewRequest(http.MethodGet, "/trips", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(store).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []domain.Trip
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, fixture.ID, resp[0].ID)
	assert.Equal(t, "Lisbon", resp[0].Destination)
}

func TestListTrips_200_Empty(t *testing.T) {
	store := &mockTripStore{
		trips: func() []domain.Trip { return []domain.Trip{} },
	}

	req := httptest.NewRequest(http.MethodGet, "/trips", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(store).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

// ---- POST /trips -----------------------------------------------------------

func TestCreateTrip_201(t *testing.T) {
	fixture := tripFixture()
	var got domain.Trip
	store := &mockTripStore{
		createTrip: func(_ context.Context, trip domain.Trip) (domain.Trip, error) {
			got = trip
			return fixture, nil
		},
	}

	body := jsonBody(t, map[string]any{
		"destination": "Lisbon",
		"startDate":   "2026-06-01",
		"endDate":     "2026-06-15",
		"travelers":   2,
	})

	req := httptest.NewRequest(http.MethodPost, "/trips", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newHTTPHandler(store).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Lisbon", got.Destination)
	assert.Equal(t, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), got.StartDate)

	var resp domain.Trip
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, fixture.ID, resp.ID)
}

func TestCreateTrip_422_ValidationError(t *testing.T) {
	store := &mockTripStore{
		createTrip: func(_ context.Context, _ domain.Trip) (domain.Trip, error) {
			return domain.Trip{}, fmt.Errorf("%w: missing required fields: destination", domain.ErrValidation)
		},
	}

	body := jsonBody(t, map[string]any{
		"startDate": "2026-06-01",
		"endDate":   "2026-06-15",
	})

	req := httptest.NewRequest(http.MethodPost, "/trips", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newHTTPHandler(store).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "missing required fields: destination", errorMessage(t, rec.Body))
}

func TestCreateTrip_422_MalformedDate(t *testing.T) {
	store := &mockTripStore{}

	body := jsonBody(t, map[string]any{
		"destination": "Lisbon",
		"startDate":   "June 1st",
		"endDate":     "2026-06-15",
	})

	req := httptest.NewRequest(http.MethodPost, "/trips", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newHTTPHandler(store).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, errorMessage(t, rec.Body), "startDate")
}

func TestCreateTrip_422_UnknownField(t *testing.T) {
	store := &mockTripStore{}

	body := jsonBody(t, map[string]any{
		"destinaton": "Lisbon",
	})

	req := httptest.NewRequest(http.MethodPost, "/trips", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newHTTPHandler(store).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

// ---- GET /trips/{tripID} ---------------------------------------------------

func TestGetTrip_200(t *testing.T) {
	fixture := tripFixture()
	store := &mockTripStore{
		lookupTrip: func(_ context.Context, id string) *domain.Trip {
			assert.Equal(t, fixture.ID, id)
			return &fixture
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips/"+fixture.ID, nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(store).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.Trip
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, fixture.Destination, resp.Destination)
}

func TestGetTrip_404(t *testing.T) {
	store := &mockTripStore{
		lookupTrip: func(_ context.Context, _ string) *domain.Trip { return nil },
	}

	req := httptest.NewRequest(http.MethodGet, "/trips/nope", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(store).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "trip not found", errorMessage(t, rec.Body))
}

// ---- PATCH /trips/{tripID} -------------------------------------------------

func TestUpdateTrip_200(t *testing.T) {
	fixture := tripFixture()
	fixture.Destination = "Porto"
	var gotPatch domain.TripPatch
	store := &mockTripStore{
		updateTrip: func(_ context.Context, id string, patch domain.TripPatch) (domain.Trip, error) {
			assert.Equal(t, fixture.ID, id)
			gotPatch = patch
			return fixture, nil
		},
	}

	body := jsonBody(t, map[string]any{"destination": "Porto"})

	req := httptest.NewRequest(http.MethodPatch, "/trips/"+fixture.ID, body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newHTTPHandler(store).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, gotPatch.Destination)
	assert.Equal(t, "Porto", *gotPatch.Destination)
	assert.Nil(t, gotPatch.StartDate)
}

func TestUpdateTrip_404(t *testing.T) {
	store := &mockTripStore{
		updateTrip: func(_ context.Context, _ string, _ domain.TripPatch) (domain.Trip, error) {
			return domain.Trip{}, fmt.Errorf("state.Store.UpdateTrip: %w", domain.ErrNotFound)
		},
	}

	body := jsonBody(t, map[string]any{"destination": "Porto"})

	req := httptest.NewRequest(http.MethodPatch, "/trips/nope", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newHTTPHandler(store).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "trip not found", errorMessage(t, rec.Body))
}

func TestUpdateTrip_422_DateOrder(t *testing.T) {
	store := &mockTripStore{
		updateTrip: func(_ context.Context, _ string, _ domain.TripPatch) (domain.Trip, error) {
			return domain.Trip{}, fmt.Errorf("%w: end date must be after start date", domain.ErrValidation)
		},
	}

	body := jsonBody(t, map[string]any{"endDate": "2026-05-01"})

	req := httptest.NewRequest(http.MethodPatch, "/trips/abc", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newHTTPHandler(store).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "end date must be after start date", errorMessage(t, rec.Body))
}

// ---- DELETE /trips/{tripID} ------------------------------------------------

func TestDeleteTrip_204(t *testing.T) {
	var gotID string
	store := &mockTripStore{
		deleteTrip: func(_ context.Context, id string) error {
			gotID = id
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/trips/abc", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(store).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "abc", gotID)
	assert.Empty(t, rec.Body.String())
}

func TestDeleteTrip_500_StorageError(t *testing.T) {
	store := &mockTripStore{
		deleteTrip: func(_ context.Context, _ string) error {
			return fmt.Errorf("storage.Store.DeleteTrip: %w: disk full", domain.ErrStorage)
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/trips/abc", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(store).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal error", errorMessage(t, rec.Body))
}
