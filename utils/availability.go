package utils

import (
	"time"
)

// DefaultBookingTime is the known-good slot a disallowed time selection is
// reset to.
const DefaultBookingTime = "10:00"

// DateRange is an inclusive [Start, End] interval of calendar days
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether the given day falls inside the range, inclusive
// on both ends. Comparison is by calendar day, not instant.
func (r DateRange) Contains(day time.Time) bool {
	d := truncateToDay(day)
	return !d.Before(truncateToDay(r.Start)) && !d.After(truncateToDay(r.End))
}

// Overlaps reports whether two inclusive day ranges share at least one day
func (r DateRange) Overlaps(other DateRange) bool {
	return !truncateToDay(r.Start).After(truncateToDay(other.End)) &&
		!truncateToDay(other.Start).After(truncateToDay(r.End))
}

// AvailabilityRules holds the blackout configuration a candidate booking
// date or time slot is checked against
type AvailabilityRules struct {
	DisabledRanges  []DateRange
	ExcludeWeekends bool
	DisallowedTimes []string
}

// DefaultAvailabilityRules returns the rule set applied to bookings when a
// business has no custom blackout configuration
func DefaultAvailabilityRules() AvailabilityRules {
	return AvailabilityRules{
		ExcludeWeekends: true,
		DisallowedTimes: []string{"00:00", "12:00"},
	}
}

// DateAvailable checks a single candidate day against the rules. When the
// day is not bookable the second return value carries the reason.
func (a AvailabilityRules) DateAvailable(day time.Time) (bool, string) {
	if a.ExcludeWeekends {
		switch day.Weekday() {
		case time.Saturday, time.Sunday:
			return false, "Selected date falls on a weekend"
		}
	}
	for _, r := range a.DisabledRanges {
		if r.Contains(day) {
			return false, "Selected date is within a blocked period"
		}
	}
	return true, ""
}

// RangeAvailable checks every day of an inclusive [start, end] range
func (a AvailabilityRules) RangeAvailable(start, end time.Time) (bool, string) {
	if truncateToDay(end).Before(truncateToDay(start)) {
		return false, "End date must not be before start date"
	}
	for d := truncateToDay(start); !d.After(truncateToDay(end)); d = d.AddDate(0, 0, 1) {
		if ok, reason := a.DateAvailable(d); !ok {
			return false, reason
		}
	}
	return true, ""
}

// CheckTime validates an "HH:MM" slot selection. A disallowed time is reset
// to DefaultBookingTime and reported as not accepted so the caller can
// surface a warning instead of silently keeping a bad slot.
func (a AvailabilityRules) CheckTime(slot string) (string, bool) {
	for _, blocked := range a.DisallowedTimes {
		if slot == blocked {
			return DefaultBookingTime, false
		}
	}
	return slot, true
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
