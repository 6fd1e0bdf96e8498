package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estudiodanza/internal/db"
)

func TestSearchBookings(t *testing.T) {
	store := newFakeStore()
	svc := NewAdminService(store, store)
	ctx := context.Background()

	store.addBooking(db.Booking{ID: "a", Name: "Ana García", Email: "ana@mail.com", Date: "2025-03-01"})
	store.addBooking(db.Booking{ID: "b", Name: "Bruno Díaz", Email: "bruno@correo.com", Date: "2025-03-02"})
	store.addBooking(db.Booking{ID: "c", Name: "Carla", Email: "carla.garcia@mail.com", Date: "2025-03-03"})

	all, err := svc.SearchBookings(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// Case-insensitive, matches name or email.
	matched, err := svc.SearchBookings(ctx, "GARCÍA")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "a", matched[0].ID)

	matched, err = svc.SearchBookings(ctx, "garcia")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "c", matched[0].ID)

	matched, err = svc.SearchBookings(ctx, "correo.com")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "b", matched[0].ID)

	matched, err = svc.SearchBookings(ctx, "nadie")
	require.NoError(t, err)
	assert.Empty(t, matched)
}

func TestDashboardAggregation(t *testing.T) {
	store := newFakeStore()
	svc := NewAdminService(store, store)
	ctx := context.Background()

	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)

	store.addBooking(db.Booking{ID: "past", Date: "2025-03-09", Time: "18:00"})
	store.addBooking(db.Booking{ID: "late", Date: "2025-03-11", Time: "19:00"})
	store.addBooking(db.Booking{ID: "early", Date: "2025-03-11", Time: "17:00"})
	store.addBooking(db.Booking{ID: "far", Date: "2025-03-20", Time: "18:00"})

	require.NoError(t, store.SetTimes(ctx, "2025-03-10", []string{"19:00", "20:00", "21:00"}))

	dashboard, err := svc.Dashboard(ctx, now)
	require.NoError(t, err)

	require.Len(t, dashboard.UpcomingBookings, 3)
	assert.Equal(t, "early", dashboard.UpcomingBookings[0].ID)
	assert.Equal(t, "late", dashboard.UpcomingBookings[1].ID)
	assert.Equal(t, "far", dashboard.UpcomingBookings[2].ID)

	assert.Equal(t, 2, dashboard.ThisWeekCount)
	require.NotNil(t, dashboard.NextBooking)
	assert.Equal(t, "early", dashboard.NextBooking.ID)
	assert.Equal(t, 3, dashboard.TodayOpenSlots)
	assert.Equal(t, 4, dashboard.TotalBookings)
}

func TestDashboardEmptyStore(t *testing.T) {
	store := newFakeStore()
	svc := NewAdminService(store, store)

	dashboard, err := svc.Dashboard(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Empty(t, dashboard.UpcomingBookings)
	assert.Nil(t, dashboard.NextBooking)
	assert.Zero(t, dashboard.ThisWeekCount)
	assert.Zero(t, dashboard.TodayOpenSlots)
	assert.Zero(t, dashboard.TotalBookings)
}

func TestDashboardPropagatesStoreFailure(t *testing.T) {
	store := newFakeStore()
	svc := NewAdminService(store, store)
	store.failing = true

	_, err := svc.Dashboard(context.Background(), time.Now())
	assert.Error(t, err)
}
