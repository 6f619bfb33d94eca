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

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("user@example.com"))
	assert.True(t, IsValidEmail("first.last+tag@sub.example.co"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("user@"))
	assert.False(t, IsValidEmail("@example.com"))
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("6f1b2a3c-4d5e-4f60-8a9b-0c1d2e3f4a5b"))
	assert.True(t, IsValidUUID("6F1B2A3C-4D5E-4F60-8A9B-0C1D2E3F4A5B"))
	assert.False(t, IsValidUUID("6f1b2a3c-4d5e-4f60-8a9b"))
	assert.False(t, IsValidUUID("not-a-uuid"))
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2026-03-10")
	assert.True(t, ok)
	assert.Equal(t, 2026, date.Year())

	_, ok = IsValidDate("10-03-2026")
	assert.False(t, ok)
	_, ok = IsValidDate("2026-13-01")
	assert.False(t, ok)
}

func TestIsValidMonth(t *testing.T) {
	month, ok := IsValidMonth("2026-03")
	assert.True(t, ok)
	assert.Equal(t, 3, int(month.Month()))

	_, ok = IsValidMonth("2026-03-10")
	assert.False(t, ok)
	_, ok = IsValidMonth("march")
	assert.False(t, ok)
}

func TestIsValidEmployeeCode(t *testing.T) {
	assert.True(t, IsValidEmployeeCode("EMP-0001"))
	assert.True(t, IsValidEmployeeCode("EMP-123456"))
	assert.False(t, IsValidEmployeeCode("emp-0001"))
	assert.False(t, IsValidEmployeeCode("EMP-01"))
	assert.False(t, IsValidEmployeeCode("EMP0001"))
}

func TestIsValidRating(t *testing.T) {
	assert.True(t, IsValidRating(1))
	assert.True(t, IsValidRating(3.5))
	assert.True(t, IsValidRating(5))
	assert.False(t, IsValidRating(0.9))
	assert.False(t, IsValidRating(5.1))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "email is required"},
		{Field: "password", Message: "password too short"},
	}

	assert.Equal(t, "email: email is required; password: password too short", errs.Error())
	assert.Equal(t, map[string]string{
		"email":    "email is required",
		"password": "password too short",
	}, errs.ToMap())
}
