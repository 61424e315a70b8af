package utils

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

// FieldValidationError represents a validation error for a specific field
type FieldValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldValidationErrors represents multiple field validation errors
type FieldValidationErrors []FieldValidationError

// Error implements the error interface
func (e FieldValidationErrors) Error() string {
	var messages []string
	for _, err := range e {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex    = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
	nameRegex     = regexp.MustCompile(`^[a-zA-Z\s.'-]{1,50}$`)
	timeSlotRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
	hasLower      = regexp.MustCompile(`[a-z]`)
	hasUpper      = regexp.MustCompile(`[A-Z]`)
	hasNumber     = regexp.MustCompile(`[0-9]`)
)

// SanitizeString escapes HTML and strips tags from free-text input
func SanitizeString(input string) string {
	sanitized := html.EscapeString(input)
	htmlTagRegex := regexp.MustCompile(`<[^>]*>`)
	return htmlTagRegex.ReplaceAllString(sanitized, "")
}

// ValidateUsername checks if the username meets the requirements
func ValidateUsername(username string) (bool, string) {
	if !usernameRegex.MatchString(username) {
		return false, "Username must be 3-20 characters and contain only letters, numbers, and underscores"
	}
	return true, ""
}

// ValidateEmail checks if the email address is well formed
func ValidateEmail(email string) (bool, string) {
	if !emailRegex.MatchString(email) {
		return false, "Please provide a valid email address"
	}
	return true, ""
}

// ValidateName checks a person name field
func ValidateName(name string) (bool, string) {
	if !nameRegex.MatchString(strings.TrimSpace(name)) {
		return false, "Name may only contain letters, spaces, periods, hyphens, and apostrophes"
	}
	return true, ""
}

// ValidatePhone checks and normalizes a phone number.
// Returns the formatted number in place of a message when valid.
func ValidatePhone(phone string) (bool, string) {
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
	if !phoneRegex.MatchString(cleaned) {
		return false, "Please provide a valid phone number"
	}
	return true, cleaned
}

// ValidatePassword checks if the password meets strength requirements
func ValidatePassword(password string) (bool, string) {
	if len(password) < 8 {
		return false, "Password must be at least 8 characters long"
	}
	if !hasLower.MatchString(password) {
		return false, "Password must contain at least one lowercase letter"
	}
	if !hasUpper.MatchString(password) {
		return false, "Password must contain at least one uppercase letter"
	}
	if !hasNumber.MatchString(password) {
		return false, "Password must contain at least one number"
	}
	return true, ""
}

// ValidateTimeSlot checks an "HH:MM" 24-hour time string
func ValidateTimeSlot(slot string) (bool, string) {
	if !timeSlotRegex.MatchString(slot) {
		return false, "Time must be in HH:MM format"
	}
	return true, ""
}
