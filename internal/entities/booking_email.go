package entities

type BookingEmailData struct {
	Name          string
	DanceStyle    string
	Modality      string
	Level         string
	DateFormatted string
	Time          string
	CurrentYear   int
}
