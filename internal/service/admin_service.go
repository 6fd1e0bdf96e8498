package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"estudiodanza/internal/db"
	"estudiodanza/internal/entities"
)

// AdminService is the read-only aggregation layer behind the admin panel.
// Filtering and grouping run in memory over the full result set; nothing is
// filtered server-side.
type AdminService struct {
	bookingRepo  BookingStore
	calendarRepo CalendarStore
}

func NewAdminService(bookingRepo BookingStore, calendarRepo CalendarStore) *AdminService {
	return &AdminService{bookingRepo: bookingRepo, calendarRepo: calendarRepo}
}

// SearchBookings returns all bookings (date descending), optionally narrowed
// to those whose name or email contains the search term.
func (s *AdminService) SearchBookings(ctx context.Context, search string) ([]db.Booking, error) {
	bookings, err := s.bookingRepo.ListAllBookings(ctx)
	if err != nil {
		return nil, err
	}
	if search == "" {
		return bookings, nil
	}

	needle := strings.ToLower(search)
	var filtered []db.Booking
	for _, b := range bookings {
		if strings.Contains(strings.ToLower(b.Name), needle) ||
			strings.Contains(strings.ToLower(b.Email), needle) {
			filtered = append(filtered, b)
		}
	}
	return filtered, nil
}

// Dashboard builds the admin home view: upcoming bookings from today onward
// sorted by date then time, the next-7-days count, the next booking and how
// many slots remain open today.
func (s *AdminService) Dashboard(ctx context.Context, now time.Time) (*entities.DashboardResponse, error) {
	bookings, err := s.bookingRepo.ListAllBookings(ctx)
	if err != nil {
		return nil, err
	}
	days, err := s.calendarRepo.ListAvailableDates(ctx)
	if err != nil {
		return nil, err
	}

	today := now.Format("2006-01-02")
	weekEnd := now.AddDate(0, 0, 7).Format("2006-01-02")

	var upcoming []db.Booking
	for _, b := range bookings {
		if b.Date >= today {
			upcoming = append(upcoming, b)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		if upcoming[i].Date != upcoming[j].Date {
			return upcoming[i].Date < upcoming[j].Date
		}
		return upcoming[i].Time < upcoming[j].Time
	})

	thisWeek := 0
	for _, b := range upcoming {
		if b.Date <= weekEnd {
			thisWeek++
		}
	}

	resp := &entities.DashboardResponse{
		UpcomingBookings: upcoming,
		ThisWeekCount:    thisWeek,
		TotalBookings:    len(bookings),
	}
	if len(upcoming) > 0 {
		next := upcoming[0]
		resp.NextBooking = &next
	}
	for _, d := range days {
		if d.ID == today {
			resp.TodayOpenSlots = len(d.AvailableTimes)
			break
		}
	}
	return resp, nil
}
