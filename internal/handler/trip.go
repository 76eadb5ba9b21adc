package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/globetrekker/globetrekker/internal/domain"
)

// dateLayout is the wire format for trip dates. Trips are planned by
// calendar day, so the API takes dates, not instants.
const dateLayout = "2006-01-02"

// tripRequest is the JSON body for POST /trips.
type tripRequest struct {
	Destination string            `json:"destination"`
	StartDate   string            `json:"startDate"`
	EndDate     string            `json:"endDate"`
	Budget      *float64          `json:"budget"`
	Currency    string            `json:"currency"`
	Travelers   int               `json:"travelers"`
	TripType    string            `json:"tripType"`
	Notes       string            `json:"notes"`
	Activities  []domain.Activity `json:"activities"`
}

// tripPatchRequest is the JSON body for PATCH /trips/{tripID}.
// Absent fields are left unchanged.
type tripPatchRequest struct {
	Destination *string            `json:"destination"`
	StartDate   *string            `json:"startDate"`
	EndDate     *string            `json:"endDate"`
	Budget      *float64           `json:"budget"`
	Currency    *string            `json:"currency"`
	Travelers   *int               `json:"travelers"`
	TripType    *string            `json:"tripType"`
	Notes       *string            `json:"notes"`
	Activities  *[]domain.Activity `json:"activities"`
}

// ListTrips handles GET /trips. It serves the in-memory snapshot.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.trips.Trips())
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req tripRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, err.Error())
		return
	}
	trip, err := requestToTrip(req)
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	created, err := s.trips.CreateTrip(r.Context(), trip)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// GetTrip handles GET /trips/{tripID}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	trip := s.trips.LookupTrip(r.Context(), chi.URLParam(r, "tripID"))
	if trip == nil {
		respondNotFound(w, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// UpdateTrip handles PATCH /trips/{tripID}.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	var req tripPatchRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, err.Error())
		return
	}
	patch, err := requestToTripPatch(req)
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	updated, err := s.trips.UpdateTrip(r.Context(), chi.URLParam(r, "tripID"), patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "trip not found")
			return
		}
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteTrip handles DELETE /trips/{tripID}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	if err := s.trips.DeleteTrip(r.Context(), chi.URLParam(r, "tripID")); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- mapping helpers --------------------------------------------------------

// requestToTrip converts a tripRequest into a domain.Trip. Empty date
// strings become zero times so validation reports them as missing rather
// than malformed.
func requestToTrip(req tripRequest) (domain.Trip, error) {
	start, err := parseDate(req.StartDate, "startDate")
	if err != nil {
		return domain.Trip{}, err
	}
	end, err := parseDate(req.EndDate, "endDate")
	if err != nil {
		return domain.Trip{}, err
	}
	return domain.Trip{
		Destination: req.Destination,
		StartDate:   start,
		EndDate:     end,
		Budget:      req.Budget,
		Currency:    req.Currency,
		Travelers:   req.Travelers,
		TripType:    domain.TripType(req.TripType),
		Notes:       req.Notes,
		Activities:  req.Activities,
	}, nil
}

// requestToTripPatch converts a tripPatchRequest into a domain.TripPatch.
func requestToTripPatch(req tripPatchRequest) (domain.TripPatch, error) {
	patch := domain.TripPatch{
		Destination: req.Destination,
		Budget:      req.Budget,
		Currency:    req.Currency,
		Travelers:   req.Travelers,
		Notes:       req.Notes,
		Activities:  req.Activities,
	}
	if req.StartDate != nil {
		start, err := parseDate(*req.StartDate, "startDate")
		if err != nil {
			return domain.TripPatch{}, err
		}
		patch.StartDate = &start
	}
	if req.EndDate != nil {
		end, err := parseDate(*req.EndDate, "endDate")
		if err != nil {
			return domain.TripPatch{}, err
		}
		patch.EndDate = &end
	}
	if req.TripType != nil {
		tt := domain.TripType(*req.TripType)
		patch.TripType = &tt
	}
	return patch, nil
}

// parseDate parses a "2006-01-02" date, mapping "" to the zero time.
func parseDate(s, field string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be a %s date", field, dateLayout)
	}
	return t, nil
}
