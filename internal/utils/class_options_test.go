package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidModality(t *testing.T) {
	assert.True(t, ValidModality("Online"))
	assert.True(t, ValidModality("Presencial"))
	assert.False(t, ValidModality("online"))
	assert.False(t, ValidModality(""))
}

func TestValidLevel(t *testing.T) {
	assert.True(t, ValidLevel("Básico"))
	assert.True(t, ValidLevel("Intermedio"))
	assert.True(t, ValidLevel("Avanzado"))
	assert.False(t, ValidLevel("Experto"))
}

func TestValidateStyleSelection(t *testing.T) {
	// Salsa carries a required sub-style.
	assert.NoError(t, ValidateStyleSelection("Salsa", "Casino"))
	assert.NoError(t, ValidateStyleSelection("Salsa", "En línea"))
	assert.NoError(t, ValidateStyleSelection("Salsa", "Colombiano"))
	assert.Error(t, ValidateStyleSelection("Salsa", ""))
	assert.Error(t, ValidateStyleSelection("Salsa", "Cubana"))

	// Other styles must not carry one.
	assert.NoError(t, ValidateStyleSelection("Bachata", ""))
	assert.Error(t, ValidateStyleSelection("Bachata", "Casino"))

	assert.Error(t, ValidateStyleSelection("Tango", ""))
	assert.Error(t, ValidateStyleSelection("", ""))
}
