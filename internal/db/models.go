package db

import "time"

// CalendarDay is a document in the "calendar" collection. The document ID is
// the ISO date (YYYY-MM-DD); it is not duplicated as a field.
type CalendarDay struct {
	ID             string   `json:"id" firestore:"-"`
	AvailableTimes []string `json:"availableTimes" firestore:"availableTimes"`
}

// Booking is a document in the "bookings" collection. Date and Time reference
// the slot that was consumed from the matching CalendarDay when the booking
// was created; there is no explicit link field.
type Booking struct {
	ID            string    `json:"id" firestore:"-"`
	Name          string    `json:"name" firestore:"name"`
	Email         string    `json:"email" firestore:"email"`
	Phone         string    `json:"phone" firestore:"phone"`
	Modality      string    `json:"modality" firestore:"modality"`
	DanceStyle    string    `json:"danceStyle" firestore:"danceStyle"`
	SalsaSubStyle string    `json:"salsaSubStyle,omitempty" firestore:"salsaSubStyle,omitempty"`
	Level         string    `json:"level" firestore:"level"`
	Date          string    `json:"date" firestore:"date"`
	Time          string    `json:"time" firestore:"time"`
	CreatedAt     time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}
