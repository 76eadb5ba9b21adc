package handler

import (
	"net/http"

	"github.com/globetrekker/globetrekker/internal/domain"
)

// preferencesRequest is the JSON body for PUT /preferences.
// Absent fields keep their current value, so a partial body never resets
// settings the client did not send.
type preferencesRequest struct {
	Theme           *string `json:"theme"`
	DefaultCurrency *string `json:"defaultCurrency"`
	DefaultTimeZone *string `json:"defaultTimeZone"`
	Notifications   *bool   `json:"notifications"`
}

// GetPreferences handles GET /preferences.
func (s *Server) GetPreferences(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.prefs.Preferences(r.Context()))
}

// UpdatePreferences handles PUT /preferences.
func (s *Server) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var req preferencesRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	patch := domain.PreferencesPatch{
		Theme:           req.Theme,
		DefaultCurrency: req.DefaultCurrency,
		DefaultTimeZone: req.DefaultTimeZone,
		Notifications:   req.Notifications,
	}
	saved, err := s.prefs.SavePreferences(r.Context(), patch)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}
