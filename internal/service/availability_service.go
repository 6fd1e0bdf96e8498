package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"estudiodanza/internal/db"
	"estudiodanza/internal/entities"
)

// CalendarStore is what the availability service needs from the "calendar"
// collection. *repository.AvailabilityRepository implements it.
type CalendarStore interface {
	ListAvailableDates(ctx context.Context) ([]db.CalendarDay, error)
	ListTimesForDate(ctx context.Context, date string) ([]string, error)
	AddAvailability(ctx context.Context, date string, times []string) error
	SetTimes(ctx context.Context, date string, times []string) error
	RemoveTimeSlot(ctx context.Context, date, slot string) error
	RemoveDate(ctx context.Context, date string) error
	ListAllDates(ctx context.Context) ([]db.CalendarDay, error)
}

// BookingCounter reports how many bookings reference a date.
type BookingCounter interface {
	CountBookingsForDate(ctx context.Context, date string) (int, error)
}

// seedTimes is the template the seeding utility opens on every weekday.
var seedTimes = []string{"17:00", "18:00", "19:00", "20:00", "21:00"}

type AvailabilityService struct {
	Repo     CalendarStore
	Bookings BookingCounter
}

func NewAvailabilityService(repo CalendarStore, bookings BookingCounter) *AvailabilityService {
	return &AvailabilityService{Repo: repo, Bookings: bookings}
}

func (s *AvailabilityService) ListAvailableDates(ctx context.Context) ([]db.CalendarDay, error) {
	return s.Repo.ListAvailableDates(ctx)
}

func (s *AvailabilityService) ListTimesForDate(ctx context.Context, date string) ([]string, error) {
	return s.Repo.ListTimesForDate(ctx, date)
}

func (s *AvailabilityService) ListAllDates(ctx context.Context) ([]db.CalendarDay, error) {
	return s.Repo.ListAllDates(ctx)
}

// AddAvailability opens the given times on every given date. Times already
// open on a date stay as they are.
func (s *AvailabilityService) AddAvailability(ctx context.Context, req entities.AddAvailabilityRequest) error {
	if len(req.Dates) == 0 || len(req.Times) == 0 {
		return fmt.Errorf("se requiere al menos una fecha y un horario")
	}
	for _, date := range req.Dates {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return fmt.Errorf("fecha inválida %q", date)
		}
	}
	for _, slot := range req.Times {
		if _, err := time.Parse("15:04", slot); err != nil {
			return fmt.Errorf("horario inválido %q", slot)
		}
	}
	for _, date := range req.Dates {
		if err := s.Repo.AddAvailability(ctx, date, req.Times); err != nil {
			return err
		}
	}
	return nil
}

func (s *AvailabilityService) RemoveTimeSlot(ctx context.Context, date, slot string) error {
	return s.Repo.RemoveTimeSlot(ctx, date, slot)
}

// RemoveDate deletes the whole calendar day. Bookings already made for that
// date are kept; the deletion is only logged so the admin can follow up.
func (s *AvailabilityService) RemoveDate(ctx context.Context, date string) error {
	if s.Bookings != nil {
		count, err := s.Bookings.CountBookingsForDate(ctx, date)
		if err != nil {
			log.Printf("No se pudo verificar reservas existentes para %s: %v", date, err)
		} else if count > 0 {
			log.Printf("ADVERTENCIA: se elimina la fecha %s con %d reserva(s) existentes", date, count)
		}
	}
	return s.Repo.RemoveDate(ctx, date)
}

// SeedCalendar populates the next 30 days, Sundays excluded, with the fixed
// template of times. Development utility; overwrites existing days.
func (s *AvailabilityService) SeedCalendar(ctx context.Context) error {
	return s.seedFrom(ctx, time.Now())
}

func (s *AvailabilityService) seedFrom(ctx context.Context, start time.Time) error {
	for i := 1; i <= 30; i++ {
		day := start.AddDate(0, 0, i)
		if day.Weekday() == time.Sunday {
			continue
		}
		date := day.Format("2006-01-02")
		if err := s.Repo.SetTimes(ctx, date, append([]string(nil), seedTimes...)); err != nil {
			return fmt.Errorf("error seeding %s: %w", date, err)
		}
	}
	return nil
}
