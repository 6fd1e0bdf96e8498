package entities

import "estudiodanza/internal/db"

// DashboardResponse aggregates the admin home view. Everything is computed in
// memory over the full bookings list after retrieval.
type DashboardResponse struct {
	UpcomingBookings []db.Booking `json:"upcomingBookings"`
	ThisWeekCount    int          `json:"thisWeekCount"`
	NextBooking      *db.Booking  `json:"nextBooking,omitempty"`
	TodayOpenSlots   int          `json:"todayOpenSlots"`
	TotalBookings    int          `json:"totalBookings"`
}
