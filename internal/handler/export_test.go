package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globetrekker/globetrekker/internal/domain"
	"github.com/globetrekker/globetrekker/internal/handler"
)

// mockExporter is a test double for handler.Exporter.
type mockExporter struct {
	rows func(ctx context.Context) []domain.ExportRow
}

func (m *mockExporter) Rows(ctx context.Context) []domain.ExportRow {
	return m.rows(ctx)
}

var _ handler.Exporter = (*mockExporter)(nil)

func exportRowFixture() domain.ExportRow {
	return domain.ExportRow{
		TripID:          "m0trip1abcdef",
		Destination:     "Lisbon",
		TripStartDate:   "2026-06-01",
		TripEndDate:     "2026-06-15",
		TripType:        "leisure",
		TripActivityCSV: "Surfing,Tram 28",
		ItemName:        "Passport",
		ItemCategory:    "documents",
		ItemQuantity:    1,
		ItemPacked:      true,
	}
}

func newExportHandler(exp handler.Exporter) http.Handler {
	return handler.NewServer(nil, nil, exp).Routes()
}

// ---- GET /export -----------------------------------------------------------

func TestExport_200_JSONDefault(t *testing.T) {
	exp := &mockExporter{
		rows: func(_ context.Context) []domain.ExportRow {
			return []domain.ExportRow{exportRowFixture()}
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/export", nil)
	rec := httptest.NewRecorder()

	newExportHandler(exp).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp []domain.ExportRow
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Passport", resp[0].ItemName)
}

func TestExport_200_CSV(t *testing.T) {
	exp := &mockExporter{
		rows: func(_ context.Context) []domain.ExportRow {
			return []domain.ExportRow{exportRowFixture()}
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/export?format=csv", nil)
	rec := httptest.NewRecorder()

	newExportHandler(exp).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "globetrekker-export.csv")

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "trip_id,destination"))
	assert.Contains(t, lines[1], "Passport")
	assert.Contains(t, lines[1], "true")
}

func TestExport_200_CSVHeaderOnlyWhenEmpty(t *testing.T) {
	exp := &mockExporter{
		rows: func(_ context.Context) []domain.ExportRow { return nil },
	}

	req := httptest.NewRequest(http.MethodGet, "/export?format=csv", nil)
	rec := httptest.NewRecorder()

	newExportHandler(exp).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 1)
}
