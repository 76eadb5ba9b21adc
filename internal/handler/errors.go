package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/globetrekker/globetrekker/internal/domain"
)

// errorDetail is the machine-readable error payload nested in every error
// response body.
type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorResponse is the JSON body of every non-2xx response.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// respondError maps a domain error to its HTTP status and writes the
// standard error body: validation failures are 422, missing resources 404,
// anything else a generic 500 with the detail kept server-side.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error: errorDetail{Code: "validation_error", Message: unwrapMessage(err)},
		})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{
			Error: errorDetail{Code: "not_found", Message: unwrapMessage(err)},
		})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error: errorDetail{Code: "internal_error", Message: "internal error"},
		})
	}
}

// respondNotFound writes a 404 with a caller-supplied message. The handler is
// the layer that knows what was being looked up ("trip not found" vs
// "packing item not found").
func respondNotFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, errorResponse{
		Error: errorDetail{Code: "not_found", Message: message},
	})
}

// respondBadRequest writes a 422 for a request rejected before reaching the
// state store (e.g. missing or malformed body).
func respondBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
		Error: errorDetail{Code: "validation_error", Message: message},
	})
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel
// error, e.g.
// "state.Store.CreateTrip: validation error: budget must not be negative"
// becomes "budget must not be negative".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, marker := range []string{
		domain.ErrValidation.Error() + ": ",
		domain.ErrNotFound.Error() + ": ",
	} {
		if i := strings.LastIndex(msg, marker); i >= 0 {
			return msg[i+len(marker):]
		}
	}
	return msg
}
