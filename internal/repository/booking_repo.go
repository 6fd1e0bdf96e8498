package repository

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"estudiodanza/internal/db"
)

const BookingsCollection = "bookings"

var (
	// ErrDateUnavailable means the target date has no calendar document.
	ErrDateUnavailable = errors.New("fecha sin disponibilidad")
	// ErrSlotTaken means the target time is no longer in the date's set.
	ErrSlotTaken = errors.New("horario ya reservado")
)

// BookingRepository owns the "bookings" collection and keeps slot state in
// the "calendar" collection consistent with it.
type BookingRepository struct {
	Client *firestore.Client
}

func NewBookingRepository(client *firestore.Client) *BookingRepository {
	return &BookingRepository{Client: client}
}

// CreateBooking validates the slot, writes the booking and removes the slot
// from the calendar day in a single transaction, so two concurrent attempts
// for the same slot cannot both succeed. On success the generated document ID
// is written back into b.
func (r *BookingRepository) CreateBooking(ctx context.Context, b *db.Booking) error {
	calRef := r.Client.Collection(CalendarCollection).Doc(b.Date)
	bookingRef := r.Client.Collection(BookingsCollection).NewDoc()

	err := r.Client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(calRef)
		if status.Code(err) == codes.NotFound {
			return ErrDateUnavailable
		}
		if err != nil {
			return fmt.Errorf("error reading calendar day %s: %w", b.Date, err)
		}

		var day db.CalendarDay
		if err := snap.DataTo(&day); err != nil {
			return fmt.Errorf("error decoding calendar day %s: %w", b.Date, err)
		}
		if !containsTime(day.AvailableTimes, b.Time) {
			return ErrSlotTaken
		}

		if err := tx.Create(bookingRef, b); err != nil {
			return fmt.Errorf("error creating booking: %w", err)
		}
		return tx.Update(calRef, []firestore.Update{
			{Path: "availableTimes", Value: firestore.ArrayRemove(b.Time)},
		})
	})
	if err != nil {
		return err
	}
	b.ID = bookingRef.ID
	return nil
}

// GetBooking returns the booking or nil when no document exists for the ID.
func (r *BookingRepository) GetBooking(ctx context.Context, id string) (*db.Booking, error) {
	doc, err := r.Client.Collection(BookingsCollection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading booking %s: %w", id, err)
	}
	var b db.Booking
	if err := doc.DataTo(&b); err != nil {
		return nil, fmt.Errorf("error decoding booking %s: %w", id, err)
	}
	b.ID = doc.Ref.ID
	return &b, nil
}

// DeleteBooking removes the booking document. Deleting an ID that does not
// exist is a no-op.
func (r *BookingRepository) DeleteBooking(ctx context.Context, id string) error {
	_, err := r.Client.Collection(BookingsCollection).Doc(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("error deleting booking %s: %w", id, err)
	}
	return nil
}

// RestoreSlot unions the time back into the calendar day, recreating the
// document when the date had been deleted in the meantime.
func (r *BookingRepository) RestoreSlot(ctx context.Context, date, slot string) error {
	_, err := r.Client.Collection(CalendarCollection).Doc(date).Set(ctx, map[string]interface{}{
		"availableTimes": firestore.ArrayUnion(slot),
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("error restoring slot %s %s: %w", date, slot, err)
	}
	return nil
}

// ListAllBookings returns every booking ordered by date descending. Time of
// day is not part of the sort key; same-date bookings keep the store's order.
func (r *BookingRepository) ListAllBookings(ctx context.Context) ([]db.Booking, error) {
	iter := r.Client.Collection(BookingsCollection).
		OrderBy("date", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var bookings []db.Booking
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error listing bookings: %w", err)
		}
		var b db.Booking
		if err := doc.DataTo(&b); err != nil {
			return nil, fmt.Errorf("error decoding booking %s: %w", doc.Ref.ID, err)
		}
		b.ID = doc.Ref.ID
		bookings = append(bookings, b)
	}
	return bookings, nil
}

// CountBookingsForDate counts bookings referencing a date. Used to warn when
// an admin deletes a date that still has reservations against it.
func (r *BookingRepository) CountBookingsForDate(ctx context.Context, date string) (int, error) {
	iter := r.Client.Collection(BookingsCollection).
		Where("date", "==", date).
		Documents(ctx)
	defer iter.Stop()

	count := 0
	for {
		_, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("error counting bookings for %s: %w", date, err)
		}
		count++
	}
	return count, nil
}

func containsTime(times []string, t string) bool {
	for _, have := range times {
		if have == t {
			return true
		}
	}
	return false
}
