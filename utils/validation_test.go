package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		username string
		valid    bool
	}{
		{"juan_delacruz", true},
		{"abc", true},
		{"user123", true},
		{"ab", false},
		{"this_username_is_way_too_long", false},
		{"bad name", false},
		{"bad!name", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.username, func(t *testing.T) {
			valid, _ := ValidateUsername(tt.username)
			assert.Equal(t, tt.valid, valid)
		})
	}
}

func TestValidateEmail(t *testing.T) {
	valid, _ := ValidateEmail("guest@example.com")
	assert.True(t, valid)
	valid, _ = ValidateEmail("first.last+tag@mail.example.ph")
	assert.True(t, valid)
	valid, _ = ValidateEmail("not-an-email")
	assert.False(t, valid)
	valid, _ = ValidateEmail("missing@tld")
	assert.False(t, valid)
}

func TestValidatePhone(t *testing.T) {
	valid, formatted := ValidatePhone("+63 917 123 4567")
	assert.True(t, valid)
	assert.Equal(t, "+639171234567", formatted)

	valid, formatted = ValidatePhone("(02) 8888-1234")
	assert.True(t, valid)
	assert.Equal(t, "0288881234", formatted)

	valid, _ = ValidatePhone("12345")
	assert.False(t, valid)
	valid, _ = ValidatePhone("phone number")
	assert.False(t, valid)
}

func TestValidatePassword(t *testing.T) {
	valid, _ := ValidatePassword("Str0ngPass")
	assert.True(t, valid)

	valid, msg := ValidatePassword("short1A")
	assert.False(t, valid)
	assert.Contains(t, msg, "at least 8 characters")

	valid, msg = ValidatePassword("alllowercase1")
	assert.False(t, valid)
	assert.Contains(t, msg, "uppercase")

	valid, msg = ValidatePassword("ALLUPPERCASE1")
	assert.False(t, valid)
	assert.Contains(t, msg, "lowercase")

	valid, msg = ValidatePassword("NoNumbersHere")
	assert.False(t, valid)
	assert.Contains(t, msg, "number")
}

func TestValidateTimeSlot(t *testing.T) {
	for _, slot := range []string{"00:00", "09:30", "12:00", "23:59"} {
		valid, _ := ValidateTimeSlot(slot)
		assert.True(t, valid, slot)
	}
	for _, slot := range []string{"24:00", "9:30", "12:60", "noon", ""} {
		valid, _ := ValidateTimeSlot(slot)
		assert.False(t, valid, slot)
	}
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "plain text", SanitizeString("plain text"))
	assert.NotContains(t, SanitizeString("<script>alert(1)</script>"), "<script>")
}
