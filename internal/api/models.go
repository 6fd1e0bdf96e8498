package api

import (
	"encoding/json"
	"net/http"

	apierrors "estudiodanza/internal/errors"
)

// CancelBookingRequest identifies the slot to restore when a booking is
// cancelled. The booking document does not link back to the calendar, so the
// caller supplies the pair.
type CancelBookingRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, err *apierrors.HTTPError) {
	respondJSON(w, err.Code, map[string]string{"message": err.Message})
}
