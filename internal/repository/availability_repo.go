package repository

import (
	"context"
	"fmt"
	"sort"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"estudiodanza/internal/db"
)

const CalendarCollection = "calendar"

// AvailabilityRepository owns the "calendar" collection. Each document holds
// the open times for one date; a document may exist with an empty list right
// after its last slot is booked.
type AvailabilityRepository struct {
	Client *firestore.Client
}

func NewAvailabilityRepository(client *firestore.Client) *AvailabilityRepository {
	return &AvailabilityRepository{Client: client}
}

// ListAvailableDates returns every calendar day that still has at least one
// open time. Days with an empty list are filtered out.
func (r *AvailabilityRepository) ListAvailableDates(ctx context.Context) ([]db.CalendarDay, error) {
	iter := r.Client.Collection(CalendarCollection).Documents(ctx)
	defer iter.Stop()

	var days []db.CalendarDay
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error listing calendar days: %w", err)
		}
		var day db.CalendarDay
		if err := doc.DataTo(&day); err != nil {
			return nil, fmt.Errorf("error decoding calendar day %s: %w", doc.Ref.ID, err)
		}
		if len(day.AvailableTimes) == 0 {
			continue
		}
		day.ID = doc.Ref.ID
		days = append(days, day)
	}
	return days, nil
}

// ListTimesForDate returns the open times for a date, sorted, or an empty
// slice when the date has no document.
func (r *AvailabilityRepository) ListTimesForDate(ctx context.Context, date string) ([]string, error) {
	doc, err := r.Client.Collection(CalendarCollection).Doc(date).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading calendar day %s: %w", date, err)
	}

	var day db.CalendarDay
	if err := doc.DataTo(&day); err != nil {
		return nil, fmt.Errorf("error decoding calendar day %s: %w", date, err)
	}
	if day.AvailableTimes == nil {
		return []string{}, nil
	}
	sort.Strings(day.AvailableTimes)
	return day.AvailableTimes, nil
}

// AddAvailability unions the given times into the date's set, creating the
// document if it does not exist yet. Duplicate times are a no-op.
func (r *AvailabilityRepository) AddAvailability(ctx context.Context, date string, times []string) error {
	_, err := r.Client.Collection(CalendarCollection).Doc(date).Set(ctx, map[string]interface{}{
		"availableTimes": firestore.ArrayUnion(toInterfaces(times)...),
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("error adding availability for %s: %w", date, err)
	}
	return nil
}

// SetTimes overwrites the date's set with exactly the given times.
func (r *AvailabilityRepository) SetTimes(ctx context.Context, date string, times []string) error {
	_, err := r.Client.Collection(CalendarCollection).Doc(date).Set(ctx, map[string]interface{}{
		"availableTimes": times,
	})
	if err != nil {
		return fmt.Errorf("error setting times for %s: %w", date, err)
	}
	return nil
}

// RemoveTimeSlot removes one time from the date's set. Removing a time that
// is absent, or from a date with no document, is a no-op.
func (r *AvailabilityRepository) RemoveTimeSlot(ctx context.Context, date, slot string) error {
	_, err := r.Client.Collection(CalendarCollection).Doc(date).Update(ctx, []firestore.Update{
		{Path: "availableTimes", Value: firestore.ArrayRemove(slot)},
	})
	if status.Code(err) == codes.NotFound {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error removing slot %s %s: %w", date, slot, err)
	}
	return nil
}

// RemoveDate deletes the calendar day document entirely, whatever it holds.
func (r *AvailabilityRepository) RemoveDate(ctx context.Context, date string) error {
	_, err := r.Client.Collection(CalendarCollection).Doc(date).Delete(ctx)
	if err != nil {
		return fmt.Errorf("error deleting calendar day %s: %w", date, err)
	}
	return nil
}

// ListAllDates returns every calendar day, empty ones included, sorted by
// date ascending for the admin view.
func (r *AvailabilityRepository) ListAllDates(ctx context.Context) ([]db.CalendarDay, error) {
	iter := r.Client.Collection(CalendarCollection).
		OrderBy(firestore.DocumentID, firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var days []db.CalendarDay
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error listing calendar days: %w", err)
		}
		var day db.CalendarDay
		if err := doc.DataTo(&day); err != nil {
			return nil, fmt.Errorf("error decoding calendar day %s: %w", doc.Ref.ID, err)
		}
		day.ID = doc.Ref.ID
		days = append(days, day)
	}
	return days, nil
}

func toInterfaces(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
