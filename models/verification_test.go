package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerificationStatusLabel(t *testing.T) {
	tests := []struct {
		status int
		label  string
	}{
		{VerificationPending, "Pending"},
		{VerificationApproved, "Approved"},
		{VerificationRejected, "Rejected"},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			app := VerificationApplication{Status: tt.status}
			assert.Equal(t, tt.label, app.StatusLabel())
		})
	}
}

func TestVerificationIsPending(t *testing.T) {
	app := VerificationApplication{Status: VerificationPending}
	assert.True(t, app.IsPending())

	app.Status = VerificationApproved
	assert.False(t, app.IsPending(), "approved applications cannot be reviewed again")

	app.Status = VerificationRejected
	assert.False(t, app.IsPending(), "rejected applications cannot be reviewed again")
}

func TestIsValidCategory(t *testing.T) {
	for _, category := range ValidCategories {
		assert.True(t, IsValidCategory(category), category)
	}
	assert.False(t, IsValidCategory("museum"))
	assert.False(t, IsValidCategory(""))
	assert.False(t, IsValidCategory("Accommodation"), "categories are lowercase")
}
