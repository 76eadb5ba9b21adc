package handler

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/globetrekker/globetrekker/internal/export"
)

// Export handles GET /export.
// It returns a flat table of every trip and packing item combination.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) Export(w http.ResponseWriter, r *http.Request) {
	rows := s.exporter.Rows(r.Context())

	if r.URL.Query().Get("format") != "csv" {
		writeJSON(w, http.StatusOK, rows)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, rows); err != nil {
		respondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="globetrekker-export.csv"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
