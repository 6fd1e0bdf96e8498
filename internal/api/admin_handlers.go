package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"estudiodanza/internal/db"
	"estudiodanza/internal/entities"
	apierrors "estudiodanza/internal/errors"
	"estudiodanza/internal/service"
)

// AdminHandler serves the admin panel: bookings list and cancellation,
// availability management, dashboard aggregates and the seeding utility.
type AdminHandler struct {
	Admin        *service.AdminService
	Bookings     *service.BookingService
	Availability *service.AvailabilityService
}

func NewAdminHandler(admin *service.AdminService, bookings *service.BookingService, availability *service.AvailabilityService) *AdminHandler {
	return &AdminHandler{Admin: admin, Bookings: bookings, Availability: availability}
}

func (h *AdminHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	bookings, err := h.Admin.SearchBookings(r.Context(), search)
	if err != nil {
		respondError(w, apierrors.ErrInternal("Error cargando reservas"))
		return
	}
	if bookings == nil {
		bookings = []db.Booking{}
	}
	respondJSON(w, http.StatusOK, bookings)
}

func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.Admin.Dashboard(r.Context(), time.Now())
	if err != nil {
		respondError(w, apierrors.ErrInternal("Error cargando datos"))
		return
	}
	respondJSON(w, http.StatusOK, dashboard)
}

func (h *AdminHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req CancelBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, apierrors.ErrBadRequest("Solicitud inválida"))
		return
	}
	result := h.Bookings.CancelBooking(r.Context(), id, req.Date, req.Time)
	status := http.StatusOK
	if !result.Success {
		status = http.StatusConflict
	}
	respondJSON(w, status, result)
}

func (h *AdminHandler) ListCalendarDays(w http.ResponseWriter, r *http.Request) {
	days, err := h.Availability.ListAllDates(r.Context())
	if err != nil {
		respondError(w, apierrors.ErrInternal("Error cargando disponibilidad"))
		return
	}
	if days == nil {
		days = []db.CalendarDay{}
	}
	respondJSON(w, http.StatusOK, days)
}

func (h *AdminHandler) AddAvailability(w http.ResponseWriter, r *http.Request) {
	var req entities.AddAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, apierrors.ErrBadRequest("Solicitud inválida"))
		return
	}
	if err := h.Availability.AddAvailability(r.Context(), req); err != nil {
		respondError(w, apierrors.ErrBadRequest(err.Error()))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) RemoveTimeSlot(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.Availability.RemoveTimeSlot(r.Context(), vars["date"], vars["time"]); err != nil {
		respondError(w, apierrors.ErrInternal("Error al eliminar horario"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) RemoveDate(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]
	if err := h.Availability.RemoveDate(r.Context(), date); err != nil {
		respondError(w, apierrors.ErrInternal("Error al eliminar fecha"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) SeedCalendar(w http.ResponseWriter, r *http.Request) {
	if err := h.Availability.SeedCalendar(r.Context()); err != nil {
		respondError(w, apierrors.ErrInternal("Error generando disponibilidad"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
