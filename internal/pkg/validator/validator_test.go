package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidPIN(t *testing.T) {
	assert.True(t, IsValidPIN("0042"))
	assert.True(t, IsValidPIN("9999"))
	assert.False(t, IsValidPIN("123"))
	assert.False(t, IsValidPIN("12345"))
	assert.False(t, IsValidPIN("12a4"))
	assert.False(t, IsValidPIN(""))
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2024-03-01")
	assert.True(t, ok)
	assert.Equal(t, 2024, date.Year())
	assert.Equal(t, 1, date.Day())

	_, ok = IsValidDate("01-03-2024")
	assert.False(t, ok)

	_, ok = IsValidDate("2024-02-30")
	assert.False(t, ok)

	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "from_date", Message: "from_date is required"},
		{Field: "reason", Message: "reason is required"},
	}

	m := errs.ToMap()
	assert.Len(t, m, 2)
	assert.Equal(t, "reason is required", m["reason"])
	assert.Contains(t, errs.Error(), "from_date: from_date is required")
}
