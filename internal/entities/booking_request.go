package entities

import (
	"errors"
	"strings"
	"time"

	"estudiodanza/internal/utils"
)

// BookingRequest carries everything the booking widget submits for one class.
type BookingRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Modality      string `json:"modality"`
	DanceStyle    string `json:"danceStyle"`
	SalsaSubStyle string `json:"salsaSubStyle,omitempty"`
	Level         string `json:"level"`
	Date          string `json:"date"`
	Time          string `json:"time"`
}

// Validate checks the request before it reaches the store. Messages are user
// facing, in Spanish, matching what the widget shows.
func (r *BookingRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" || strings.TrimSpace(r.Email) == "" || strings.TrimSpace(r.Phone) == "" {
		return errors.New("Por favor completa todos los campos personales")
	}
	if r.Modality == "" || r.DanceStyle == "" || r.Level == "" {
		return errors.New("Por favor completa los detalles de tu clase")
	}
	if !utils.ValidModality(r.Modality) || !utils.ValidLevel(r.Level) {
		return errors.New("Por favor completa los detalles de tu clase")
	}
	if err := utils.ValidateStyleSelection(r.DanceStyle, r.SalsaSubStyle); err != nil {
		return err
	}
	if _, err := time.Parse("2006-01-02", r.Date); err != nil {
		return errors.New("La fecha seleccionada no es válida")
	}
	if _, err := time.Parse("15:04", r.Time); err != nil {
		return errors.New("El horario seleccionado no es válido")
	}
	return nil
}
