package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcastillo-dev/TaraNa/models"
	"github.com/dcastillo-dev/TaraNa/utils"
)

func activityDraft() *BookingDraft {
	return &BookingDraft{
		Category:       models.CategoryActivity,
		FirstName:      "Maria",
		LastName:       "Santos",
		Email:          "maria@example.com",
		Phone:          "+639171234567",
		NumberOfGuests: 2,
		VisitDate:      "2026-04-09", // a Thursday
		ActivityTime:   "14:00",
		OriginalPrice:  1000,
	}
}

func openRules() utils.AvailabilityRules {
	return utils.AvailabilityRules{}
}

func TestWizardHappyPath(t *testing.T) {
	draft := activityDraft()
	rules := openRules()

	require.Equal(t, StepContact, draft.Step)

	errs, warnings := draft.Next(rules)
	require.Empty(t, errs)
	require.Empty(t, warnings)
	assert.Equal(t, StepScheduling, draft.Step)

	errs, warnings = draft.Next(rules)
	require.Empty(t, errs)
	require.Empty(t, warnings)
	assert.Equal(t, StepReview, draft.Step)

	// Step never advances past review
	errs, _ = draft.Next(rules)
	require.Empty(t, errs)
	assert.Equal(t, StepReview, draft.Step)
}

func TestWizardBackClamps(t *testing.T) {
	draft := activityDraft()
	draft.Step = StepScheduling

	draft.Back()
	assert.Equal(t, StepContact, draft.Step)

	draft.Back()
	assert.Equal(t, StepContact, draft.Step)
}

func TestWizardNextBlockedByContactErrors(t *testing.T) {
	draft := activityDraft()
	draft.Email = "not-an-email"
	draft.Phone = ""

	errs, _ := draft.Next(openRules())
	require.NotEmpty(t, errs)
	assert.Equal(t, StepContact, draft.Step, "invalid contact details must not advance the wizard")

	fields := make([]string, len(errs))
	for i, e := range errs {
		fields[i] = e.Field
	}
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "phone")
}

func TestWizardNextBlockedBySchedulingErrors(t *testing.T) {
	draft := activityDraft()
	draft.Step = StepScheduling
	draft.VisitDate = ""
	draft.NumberOfGuests = 0

	errs, _ := draft.Next(openRules())
	require.NotEmpty(t, errs)
	assert.Equal(t, StepScheduling, draft.Step)
}

func TestWizardDisallowedTimeResetsAndWarns(t *testing.T) {
	draft := activityDraft()
	draft.Step = StepScheduling
	draft.ActivityTime = "12:00"
	rules := utils.DefaultAvailabilityRules()
	rules.ExcludeWeekends = false

	errs, warnings := draft.Next(rules)
	require.Empty(t, errs)
	require.NotEmpty(t, warnings)

	// The slot was reset but the wizard waits for confirmation
	assert.Equal(t, utils.DefaultBookingTime, draft.ActivityTime)
	assert.Equal(t, StepScheduling, draft.Step)

	// Advancing again with the corrected slot succeeds
	errs, warnings = draft.Next(rules)
	require.Empty(t, errs)
	require.Empty(t, warnings)
	assert.Equal(t, StepReview, draft.Step)
}

func TestWizardWeekendDateRejected(t *testing.T) {
	draft := activityDraft()
	draft.Step = StepScheduling
	draft.VisitDate = "2026-04-11" // a Saturday
	rules := utils.AvailabilityRules{ExcludeWeekends: true}

	errs, _ := draft.Next(rules)
	require.NotEmpty(t, errs)
	assert.Equal(t, "visit_date", errs[0].Field)
	assert.Equal(t, StepScheduling, draft.Step)
}

func TestAccommodationRangeValidation(t *testing.T) {
	draft := &BookingDraft{
		Category:       models.CategoryAccommodation,
		NumberOfGuests: 2,
		CheckIn:        "2026-04-09",
		CheckOut:       "2026-04-07",
	}

	errs, _ := draft.ValidateScheduling(openRules())
	require.NotEmpty(t, errs)
	assert.Equal(t, "check_in", errs[0].Field)

	draft.CheckOut = "2026-04-10"
	errs, _ = draft.ValidateScheduling(openRules())
	assert.Empty(t, errs)
}

func TestCanSubmitRequiresReviewStepAndTerms(t *testing.T) {
	rules := openRules()
	draft := activityDraft()
	draft.AgreeToTerms = true

	ok, reason := draft.CanSubmit(rules)
	assert.False(t, ok, "submission is only reachable from the review step")
	assert.Contains(t, reason, "complete all steps")

	draft.Step = StepReview
	draft.AgreeToTerms = false
	ok, reason = draft.CanSubmit(rules)
	assert.False(t, ok)
	assert.Contains(t, reason, "terms and conditions")

	draft.AgreeToTerms = true
	ok, reason = draft.CanSubmit(rules)
	assert.True(t, ok)
	assert.Empty(t, reason)
}

func TestCanSubmitRevalidatesEarlierSteps(t *testing.T) {
	draft := activityDraft()
	draft.Step = StepReview
	draft.AgreeToTerms = true
	draft.Email = "broken"

	ok, reason := draft.CanSubmit(openRules())
	assert.False(t, ok)
	assert.Contains(t, reason, "email")
}

func TestDraftDiscountedPrice(t *testing.T) {
	draft := activityDraft()
	draft.DiscountPercent = 20
	assert.Equal(t, 800.00, draft.DiscountedPrice())

	draft.DiscountPercent = 0
	assert.Equal(t, 1000.00, draft.DiscountedPrice())
}
