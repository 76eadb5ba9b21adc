// Package export assembles a flat, denormalized dump of all trips and their
// packing lists, for download or backup. No business logic lives here — only
// joining and formatting.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/globetrekker/globetrekker/internal/domain"
)

// Storage defines the read operations the exporter depends on.
type Storage interface {
	ListTrips(ctx context.Context) []domain.Trip
	ListPackingItems(ctx context.Context, tripID string) []domain.PackingItem
}

// Service assembles export rows from the storage layer.
type Service struct {
	storage Storage
}

// NewService constructs a Service backed by the provided storage.
func NewService(storage Storage) *Service {
	return &Service{storage: storage}
}

// Rows returns one ExportRow per packing item across all trips, in trip
// order then item order. Trips with no packing items contribute one row with
// empty item fields, so every trip appears in the export.
func (s *Service) Rows(ctx context.Context) []domain.ExportRow {
	var rows []domain.ExportRow
	for _, trip := range s.storage.ListTrips(ctx) {
		items := s.storage.ListPackingItems(ctx, trip.ID)
		if len(items) == 0 {
			rows = append(rows, tripRow(trip))
			continue
		}
		for _, item := range items {
			row := tripRow(trip)
			row.ItemName = item.Name
			row.ItemCategory = item.Category
			row.ItemQuantity = item.Quantity
			row.ItemPacked = item.Packed
			row.ItemNotes = item.Notes
			rows = append(rows, row)
		}
	}
	return rows
}

// tripRow fills the trip-side fields of an ExportRow.
func tripRow(trip domain.Trip) domain.ExportRow {
	names := make([]string, len(trip.Activities))
	for i, a := range trip.Activities {
		names[i] = a.Name
	}
	return domain.ExportRow{
		TripID:          trip.ID,
		Destination:     trip.Destination,
		TripStartDate:   trip.StartDate.Format("2006-01-02"),
		TripEndDate:     trip.EndDate.Format("2006-01-02"),
		TripType:        string(trip.TripType),
		TripActivityCSV: strings.Join(names, ","),
	}
}

// csvHeader is the first record of every CSV export, in column order.
var csvHeader = []string{
	"trip_id", "destination", "start_date", "end_date", "trip_type",
	"activities", "item_name", "item_category", "item_quantity",
	"item_packed", "item_notes",
}

// WriteCSV writes rows as CSV to w, header first.
func WriteCSV(w io.Writer, rows []domain.ExportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("export.WriteCSV: header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			r.TripID, r.Destination, r.TripStartDate, r.TripEndDate,
			r.TripType, r.TripActivityCSV, r.ItemName, r.ItemCategory,
			strconv.Itoa(r.ItemQuantity), strconv.FormatBool(r.ItemPacked),
			r.ItemNotes,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("export.WriteCSV: row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export.WriteCSV: flush: %w", err)
	}
	return nil
}
