package service

import (
	"fmt"
	"log"
	"time"

	"estudiodanza/internal/db"
	"estudiodanza/internal/entities"
)

type SenderService struct {
}

func NewSenderService() *SenderService {
	return &SenderService{}
}

func (s *SenderService) SendBookingEmail(booking db.Booking, status string) {
	emailData := entities.BookingEmailData{
		Name:          booking.Name,
		DanceStyle:    styleLabel(booking),
		Modality:      booking.Modality,
		Level:         booking.Level,
		DateFormatted: formatDateES(booking.Date),
		Time:          booking.Time,
		CurrentYear:   time.Now().Year(),
	}

	emailSubject := fmt.Sprintf("Tu clase en Estudio Stefi está %s - %s %s", status, emailData.DateFormatted, emailData.Time)
	plainTextBody := fmt.Sprintf(
		"Hola %s,\n\nTu clase en Estudio Stefi está %s.\n\n"+
			"Detalles de la clase:\n"+
			"Estilo: %s\n"+
			"Modalidad: %s\n"+
			"Nivel: %s\n"+
			"Fecha: %s\n"+
			"Horario: %s\n\n"+
			"Gracias por elegir Estudio Stefi.\n\n"+
			"Estudio Stefi %d. Todos los derechos reservados.",
		emailData.Name, status, emailData.DanceStyle, emailData.Modality, emailData.Level,
		emailData.DateFormatted, emailData.Time, emailData.CurrentYear,
	)

	go func(toEmail, toName, subject, body string) {
		if err := SendEmailWithSendGrid(toEmail, toName, subject, body, body); err != nil {
			log.Printf("ALERTA (asíncrono): Falló envío de correo para la clase del %s %s: %v", booking.Date, booking.Time, err)
		}
	}(booking.Email, booking.Name, emailSubject, plainTextBody)
}

func (s *SenderService) SendBookingSMS(booking db.Booking) {
	smsMessage := fmt.Sprintf("Estudio Stefi: ¡Tu clase de %s está confirmada!\nFecha: %s a las %s.\nMás detalles en tu correo.",
		styleLabel(booking), formatDateES(booking.Date), booking.Time,
	)

	go func(toNumber, body string) {
		if err := SendSMS(toNumber, body); err != nil {
			log.Printf("ALERTA: La reserva se creó, pero falló el envío del SMS de confirmación a %s: %v", toNumber, err)
		}
	}(booking.Phone, smsMessage)
}

// styleLabel arma la etiqueta del estilo; para salsa incluye el sub-estilo.
func styleLabel(booking db.Booking) string {
	if booking.DanceStyle == "Salsa" && booking.SalsaSubStyle != "" {
		return fmt.Sprintf("Salsa (%s)", booking.SalsaSubStyle)
	}
	return booking.DanceStyle
}

func formatDateES(date string) string {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return parsed.Format("02/01/2006")
}
