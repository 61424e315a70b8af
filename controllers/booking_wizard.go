package controllers

import (
	"strings"
	"time"

	"github.com/dcastillo-dev/TaraNa/models"
	"github.com/dcastillo-dev/TaraNa/utils"
)

// Wizard steps
const (
	StepContact    = 0
	StepScheduling = 1
	StepReview     = 2
)

// BookingDraft is the transient state of an in-progress booking held in the
// session while the tourist walks through the 3-step wizard. It is discarded
// when the wizard is abandoned and persisted as a Booking only on submit.
type BookingDraft struct {
	Step       int    `json:"step"`
	BusinessID uint   `json:"business_id"`
	ProductID  uint   `json:"product_id"`
	Category   string `json:"category"`
	UserID     uint   `json:"user_id"`

	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	NumberOfGuests  int    `json:"number_of_guests"`
	SpecialRequests string `json:"special_requests"`

	CheckIn         string `json:"check_in,omitempty"`
	CheckOut        string `json:"check_out,omitempty"`
	VisitDate       string `json:"visit_date,omitempty"`
	ActivityTime    string `json:"activity_time,omitempty"`
	ReservationDate string `json:"reservation_date,omitempty"`
	ReservationTime string `json:"reservation_time,omitempty"`

	OriginalPrice   float64 `json:"original_price"`
	DiscountPercent float64 `json:"discount_percent"`

	AgreeToTerms bool `json:"agree_to_terms"`
}

// DiscountedPrice returns the current pricing snapshot for the draft
func (d *BookingDraft) DiscountedPrice() float64 {
	return utils.DiscountedPrice(d.OriginalPrice, d.DiscountPercent)
}

// ValidateContact checks the step 0 required fields
func (d *BookingDraft) ValidateContact() utils.FieldValidationErrors {
	var errs utils.FieldValidationErrors

	if strings.TrimSpace(d.FirstName) == "" {
		errs = append(errs, utils.FieldValidationError{Field: "first_name", Message: "First name is required"})
	} else if ok, msg := utils.ValidateName(d.FirstName); !ok {
		errs = append(errs, utils.FieldValidationError{Field: "first_name", Message: msg})
	}

	if strings.TrimSpace(d.LastName) == "" {
		errs = append(errs, utils.FieldValidationError{Field: "last_name", Message: "Last name is required"})
	} else if ok, msg := utils.ValidateName(d.LastName); !ok {
		errs = append(errs, utils.FieldValidationError{Field: "last_name", Message: msg})
	}

	if ok, msg := utils.ValidateEmail(d.Email); !ok {
		errs = append(errs, utils.FieldValidationError{Field: "email", Message: msg})
	}

	if ok, formatted := utils.ValidatePhone(d.Phone); !ok {
		errs = append(errs, utils.FieldValidationError{Field: "phone", Message: formatted})
	} else {
		d.Phone = formatted
	}

	return errs
}

// ValidateScheduling checks the step 1 fields against the availability
// rules. A disallowed time selection is reset to the default slot and
// reported as a warning rather than a hard error.
func (d *BookingDraft) ValidateScheduling(rules utils.AvailabilityRules) (utils.FieldValidationErrors, []string) {
	var errs utils.FieldValidationErrors
	var warnings []string

	if d.NumberOfGuests < 1 {
		errs = append(errs, utils.FieldValidationError{Field: "number_of_guests", Message: "At least one guest is required"})
	}

	switch d.Category {
	case models.CategoryAccommodation:
		start, err1 := parseDraftDate(d.CheckIn)
		end, err2 := parseDraftDate(d.CheckOut)
		if err1 != nil {
			errs = append(errs, utils.FieldValidationError{Field: "check_in", Message: "Check-in date is required (YYYY-MM-DD)"})
		}
		if err2 != nil {
			errs = append(errs, utils.FieldValidationError{Field: "check_out", Message: "Check-out date is required (YYYY-MM-DD)"})
		}
		if err1 == nil && err2 == nil {
			if ok, reason := rules.RangeAvailable(start, end); !ok {
				errs = append(errs, utils.FieldValidationError{Field: "check_in", Message: reason})
			}
		}

	case models.CategoryActivity:
		visit, err := parseDraftDate(d.VisitDate)
		if err != nil {
			errs = append(errs, utils.FieldValidationError{Field: "visit_date", Message: "Visit date is required (YYYY-MM-DD)"})
		} else if ok, reason := rules.DateAvailable(visit); !ok {
			errs = append(errs, utils.FieldValidationError{Field: "visit_date", Message: reason})
		}
		if ok, msg := utils.ValidateTimeSlot(d.ActivityTime); !ok {
			errs = append(errs, utils.FieldValidationError{Field: "activity_time", Message: msg})
		} else if slot, accepted := rules.CheckTime(d.ActivityTime); !accepted {
			d.ActivityTime = slot
			warnings = append(warnings, "Selected activity time is not available; it has been reset to "+slot)
		}

	case models.CategoryRestaurant:
		date, err := parseDraftDate(d.ReservationDate)
		if err != nil {
			errs = append(errs, utils.FieldValidationError{Field: "reservation_date", Message: "Reservation date is required (YYYY-MM-DD)"})
		} else if ok, reason := rules.DateAvailable(date); !ok {
			errs = append(errs, utils.FieldValidationError{Field: "reservation_date", Message: reason})
		}
		if ok, msg := utils.ValidateTimeSlot(d.ReservationTime); !ok {
			errs = append(errs, utils.FieldValidationError{Field: "reservation_time", Message: msg})
		} else if slot, accepted := rules.CheckTime(d.ReservationTime); !accepted {
			d.ReservationTime = slot
			warnings = append(warnings, "Selected reservation time is not available; it has been reset to "+slot)
		}

	default:
		errs = append(errs, utils.FieldValidationError{Field: "category", Message: "Unknown booking category"})
	}

	return errs, warnings
}

// Next advances the wizard one step, clamped at the review step. The
// current step must validate before the draft moves forward.
func (d *BookingDraft) Next(rules utils.AvailabilityRules) (utils.FieldValidationErrors, []string) {
	switch d.Step {
	case StepContact:
		if errs := d.ValidateContact(); len(errs) > 0 {
			return errs, nil
		}
	case StepScheduling:
		errs, warnings := d.ValidateScheduling(rules)
		if len(errs) > 0 {
			return errs, warnings
		}
		if len(warnings) > 0 {
			// The reset slot needs user confirmation before advancing.
			return nil, warnings
		}
	}

	if d.Step < StepReview {
		d.Step++
	}
	return nil, nil
}

// Back moves the wizard one step backward, clamped at the contact step
func (d *BookingDraft) Back() {
	if d.Step > StepContact {
		d.Step--
	}
}

// CanSubmit reports whether the draft is ready for submission. Submission
// is only reachable from the review step and requires accepted terms plus
// every earlier step validating.
func (d *BookingDraft) CanSubmit(rules utils.AvailabilityRules) (bool, string) {
	if d.Step != StepReview {
		return false, "Please complete all steps before confirming"
	}
	if !d.AgreeToTerms {
		return false, "You must agree to the terms and conditions before booking"
	}
	if errs := d.ValidateContact(); len(errs) > 0 {
		return false, errs.Error()
	}
	if errs, _ := d.ValidateScheduling(rules); len(errs) > 0 {
		return false, errs.Error()
	}
	return true, ""
}

func parseDraftDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", strings.TrimSpace(value))
}
