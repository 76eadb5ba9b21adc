package domain

// ExportRow is a single row in the full-data export.
// It is a flat, denormalized view: one row per packing item, with trip fields
// repeated for every item on that trip. Trips with no packing items yield one
// row with zero values for all item fields.
type ExportRow struct {
	// Trip fields — repeated for every packing item on the trip.
	TripID          string `json:"tripId"`
	Destination     string `json:"destination"`
	TripStartDate   string `json:"tripStartDate"` // "2006-01-02" formatted date
	TripEndDate     string `json:"tripEndDate"`   // "2006-01-02" formatted date
	TripType        string `json:"tripType"`
	TripActivityCSV string `json:"activities"` // activity names joined with ","

	// Packing item fields — zero values when the trip has no items.
	ItemName     string `json:"itemName,omitempty"`
	ItemCategory string `json:"itemCategory,omitempty"`
	ItemQuantity int    `json:"itemQuantity,omitempty"`
	ItemPacked   bool   `json:"itemPacked"`
	ItemNotes    string `json:"itemNotes,omitempty"`
}
