package service

import (
	"context"
	"errors"
	"log"

	"estudiodanza/internal/db"
	"estudiodanza/internal/entities"
	"estudiodanza/internal/repository"
)

const (
	statusConfirmed = "confirmada"
	statusCancelled = "cancelada"
)

// User-facing messages, matching what the booking widget shows.
const (
	msgDateUnavailable = "Esta fecha ya no esta disponible."
	msgSlotTaken       = "Este horario ya fue reservado. Intenta con otro."
	msgBookingOK       = "Reserva confirmada! Nos vemos en la pista."
	msgCancelOK        = "Reserva cancelada y horario restaurado."
	msgGenericFailure  = "Hubo un error. Por favor intenta de nuevo."
)

// BookingStore is what the booking service needs from the store.
// *repository.BookingRepository implements it.
type BookingStore interface {
	CreateBooking(ctx context.Context, b *db.Booking) error
	GetBooking(ctx context.Context, id string) (*db.Booking, error)
	DeleteBooking(ctx context.Context, id string) error
	RestoreSlot(ctx context.Context, date, slot string) error
	ListAllBookings(ctx context.Context) ([]db.Booking, error)
}

type BookingService struct {
	Repo   BookingStore
	sender *SenderService
}

func NewBookingService(repo BookingStore, sender *SenderService) *BookingService {
	return &BookingService{Repo: repo, sender: sender}
}

// CreateBooking validates the request and reserves the slot. The repository
// performs the availability check, the booking insert and the slot removal as
// one transaction, so a losing concurrent attempt surfaces as ErrSlotTaken.
func (s *BookingService) CreateBooking(ctx context.Context, req entities.BookingRequest) entities.OperationResult {
	if err := req.Validate(); err != nil {
		return entities.OperationResult{Message: err.Error()}
	}

	booking := &db.Booking{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Modality:      req.Modality,
		DanceStyle:    req.DanceStyle,
		SalsaSubStyle: req.SalsaSubStyle,
		Level:         req.Level,
		Date:          req.Date,
		Time:          req.Time,
	}

	err := s.Repo.CreateBooking(ctx, booking)
	switch {
	case errors.Is(err, repository.ErrDateUnavailable):
		return entities.OperationResult{Message: msgDateUnavailable}
	case errors.Is(err, repository.ErrSlotTaken):
		return entities.OperationResult{Message: msgSlotTaken}
	case err != nil:
		log.Printf("Error creando reserva para %s %s: %v", req.Date, req.Time, err)
		return entities.OperationResult{Message: msgGenericFailure}
	}

	if s.sender != nil {
		s.sender.SendBookingEmail(*booking, statusConfirmed)
		s.sender.SendBookingSMS(*booking)
	}
	return entities.OperationResult{Success: true, Message: msgBookingOK}
}

// CancelBooking deletes the booking and restores its slot on the calendar,
// recreating the calendar day if the admin had deleted it. Cancelling an ID
// that no longer exists still restores the slot and reports success.
func (s *BookingService) CancelBooking(ctx context.Context, id, date, slot string) entities.OperationResult {
	booking, err := s.Repo.GetBooking(ctx, id)
	if err != nil {
		log.Printf("Error leyendo reserva %s: %v", id, err)
		return entities.OperationResult{Message: msgGenericFailure}
	}
	if err := s.Repo.DeleteBooking(ctx, id); err != nil {
		log.Printf("Error eliminando reserva %s: %v", id, err)
		return entities.OperationResult{Message: msgGenericFailure}
	}
	if err := s.Repo.RestoreSlot(ctx, date, slot); err != nil {
		log.Printf("Error restaurando horario %s %s: %v", date, slot, err)
		return entities.OperationResult{Message: msgGenericFailure}
	}

	if booking != nil && s.sender != nil {
		s.sender.SendBookingEmail(*booking, statusCancelled)
	}
	return entities.OperationResult{Success: true, Message: msgCancelOK}
}

// ListAllBookings propagates store failures to the caller; the admin UI
// shows a toast and renders an empty list.
func (s *BookingService) ListAllBookings(ctx context.Context) ([]db.Booking, error) {
	return s.Repo.ListAllBookings(ctx)
}
