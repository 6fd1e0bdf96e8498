package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"estudiodanza/internal/db"
	"estudiodanza/internal/repository"
)

var errStore = errors.New("store unavailable")

// fakeStore mimics the calendar and bookings collections in memory, including
// the precondition the booking transaction enforces (slot must still be open)
// and the set semantics of array union/remove.
type fakeStore struct {
	mu           sync.Mutex
	calendar     map[string][]string
	bookings     map[string]db.Booking
	bookingOrder []string
	nextID       int
	failing      bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		calendar: make(map[string][]string),
		bookings: make(map[string]db.Booking),
	}
}

func (f *fakeStore) ListAvailableDates(ctx context.Context) ([]db.CalendarDay, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return nil, errStore
	}
	var days []db.CalendarDay
	for date, times := range f.calendar {
		if len(times) == 0 {
			continue
		}
		days = append(days, db.CalendarDay{ID: date, AvailableTimes: append([]string(nil), times...)})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].ID < days[j].ID })
	return days, nil
}

func (f *fakeStore) ListTimesForDate(ctx context.Context, date string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return nil, errStore
	}
	times := append([]string(nil), f.calendar[date]...)
	sort.Strings(times)
	if times == nil {
		times = []string{}
	}
	return times, nil
}

func (f *fakeStore) AddAvailability(ctx context.Context, date string, times []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return errStore
	}
	f.unionLocked(date, times)
	return nil
}

func (f *fakeStore) SetTimes(ctx context.Context, date string, times []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return errStore
	}
	f.calendar[date] = append([]string(nil), times...)
	return nil
}

func (f *fakeStore) RemoveTimeSlot(ctx context.Context, date, slot string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return errStore
	}
	times, ok := f.calendar[date]
	if !ok {
		return nil
	}
	f.calendar[date] = removeString(times, slot)
	return nil
}

func (f *fakeStore) RemoveDate(ctx context.Context, date string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return errStore
	}
	delete(f.calendar, date)
	return nil
}

func (f *fakeStore) ListAllDates(ctx context.Context) ([]db.CalendarDay, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return nil, errStore
	}
	var days []db.CalendarDay
	for date, times := range f.calendar {
		days = append(days, db.CalendarDay{ID: date, AvailableTimes: append([]string(nil), times...)})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].ID < days[j].ID })
	return days, nil
}

func (f *fakeStore) CreateBooking(ctx context.Context, b *db.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return errStore
	}
	times, ok := f.calendar[b.Date]
	if !ok {
		return repository.ErrDateUnavailable
	}
	if !containsString(times, b.Time) {
		return repository.ErrSlotTaken
	}
	f.nextID++
	b.ID = fmt.Sprintf("bk-%d", f.nextID)
	b.CreatedAt = time.Now().UTC()
	f.bookings[b.ID] = *b
	f.bookingOrder = append(f.bookingOrder, b.ID)
	f.calendar[b.Date] = removeString(times, b.Time)
	return nil
}

func (f *fakeStore) GetBooking(ctx context.Context, id string) (*db.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return nil, errStore
	}
	b, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (f *fakeStore) DeleteBooking(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return errStore
	}
	delete(f.bookings, id)
	f.bookingOrder = removeString(f.bookingOrder, id)
	return nil
}

func (f *fakeStore) RestoreSlot(ctx context.Context, date, slot string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return errStore
	}
	f.unionLocked(date, []string{slot})
	return nil
}

func (f *fakeStore) ListAllBookings(ctx context.Context) ([]db.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return nil, errStore
	}
	var bookings []db.Booking
	for _, id := range f.bookingOrder {
		bookings = append(bookings, f.bookings[id])
	}
	// Date descending; same-date bookings keep insertion order, like the
	// store query does.
	sort.SliceStable(bookings, func(i, j int) bool { return bookings[i].Date > bookings[j].Date })
	return bookings, nil
}

func (f *fakeStore) CountBookingsForDate(ctx context.Context, date string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return 0, errStore
	}
	count := 0
	for _, b := range f.bookings {
		if b.Date == date {
			count++
		}
	}
	return count, nil
}

func validBooking(date, slot string) db.Booking {
	return db.Booking{
		Name:       "Ana García",
		Email:      "ana@mail.com",
		Phone:      "+5491155550000",
		Modality:   "Presencial",
		DanceStyle: "Bachata",
		Level:      "Básico",
		Date:       date,
		Time:       slot,
	}
}

// addBooking seeds a booking directly, bypassing slot bookkeeping.
func (f *fakeStore) addBooking(b db.Booking) db.Booking {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	if b.ID == "" {
		b.ID = fmt.Sprintf("bk-%d", f.nextID)
	}
	f.bookings[b.ID] = b
	f.bookingOrder = append(f.bookingOrder, b.ID)
	return b
}

func (f *fakeStore) unionLocked(date string, times []string) {
	have := f.calendar[date]
	for _, t := range times {
		if !containsString(have, t) {
			have = append(have, t)
		}
	}
	f.calendar[date] = have
}

func containsString(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func removeString(list []string, v string) []string {
	out := list[:0]
	for _, item := range list {
		if item != v {
			out = append(out, item)
		}
	}
	return out
}
