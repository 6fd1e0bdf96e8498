package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"estudiodanza/internal/db"
	"estudiodanza/internal/entities"
	apierrors "estudiodanza/internal/errors"
	"estudiodanza/internal/service"
)

// BookingHandler serves the public booking widget endpoints.
type BookingHandler struct {
	Bookings     *service.BookingService
	Availability *service.AvailabilityService
}

func NewBookingHandler(bookings *service.BookingService, availability *service.AvailabilityService) *BookingHandler {
	return &BookingHandler{Bookings: bookings, Availability: availability}
}

func (h *BookingHandler) ListAvailableDates(w http.ResponseWriter, r *http.Request) {
	days, err := h.Availability.ListAvailableDates(r.Context())
	if err != nil {
		respondError(w, apierrors.ErrInternal("Error cargando fechas disponibles"))
		return
	}
	if days == nil {
		days = []db.CalendarDay{}
	}
	respondJSON(w, http.StatusOK, days)
}

func (h *BookingHandler) ListTimesForDate(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]
	times, err := h.Availability.ListTimesForDate(r.Context(), date)
	if err != nil {
		respondError(w, apierrors.ErrInternal("Error cargando horarios"))
		return
	}
	respondJSON(w, http.StatusOK, times)
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req entities.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, apierrors.ErrBadRequest("Solicitud inválida"))
		return
	}
	result := h.Bookings.CreateBooking(r.Context(), req)
	status := http.StatusOK
	if !result.Success {
		status = http.StatusConflict
	}
	respondJSON(w, status, result)
}
