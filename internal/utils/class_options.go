package utils

import "errors"

// Class option catalogs, exactly as the booking widget offers them.
var (
	Modalities     = []string{"Online", "Presencial"}
	DanceStyles    = []string{"Bachata", "Salsa"}
	SalsaSubStyles = []string{"En línea", "Colombiano", "Casino"}
	Levels         = []string{"Básico", "Intermedio", "Avanzado"}
)

func ValidModality(modality string) bool {
	return contains(Modalities, modality)
}

func ValidLevel(level string) bool {
	return contains(Levels, level)
}

// ValidateStyleSelection enforces the style variant: Salsa requires one of the
// salsa sub-styles, every other style must not carry one.
func ValidateStyleSelection(style, subStyle string) error {
	if !contains(DanceStyles, style) {
		return errors.New("Por favor completa los detalles de tu clase")
	}
	if style == "Salsa" {
		if subStyle == "" || !contains(SalsaSubStyles, subStyle) {
			return errors.New("Por favor selecciona un sub-estilo de salsa")
		}
		return nil
	}
	if subStyle != "" {
		return errors.New("El sub-estilo solo aplica a clases de salsa")
	}
	return nil
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
