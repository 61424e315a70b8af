package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateRangeContains(t *testing.T) {
	r := DateRange{Start: day(2026, 3, 10), End: day(2026, 3, 15)}

	assert.True(t, r.Contains(day(2026, 3, 10)), "start day is inclusive")
	assert.True(t, r.Contains(day(2026, 3, 15)), "end day is inclusive")
	assert.True(t, r.Contains(day(2026, 3, 12)))
	assert.False(t, r.Contains(day(2026, 3, 9)))
	assert.False(t, r.Contains(day(2026, 3, 16)))

	// Time of day within the end day does not matter
	assert.True(t, r.Contains(time.Date(2026, 3, 15, 23, 30, 0, 0, time.UTC)))
}

func TestDateRangeOverlaps(t *testing.T) {
	r := DateRange{Start: day(2026, 3, 10), End: day(2026, 3, 15)}

	assert.True(t, r.Overlaps(DateRange{Start: day(2026, 3, 15), End: day(2026, 3, 20)}), "shared boundary day overlaps")
	assert.True(t, r.Overlaps(DateRange{Start: day(2026, 3, 1), End: day(2026, 3, 10)}))
	assert.True(t, r.Overlaps(DateRange{Start: day(2026, 3, 12), End: day(2026, 3, 13)}))
	assert.False(t, r.Overlaps(DateRange{Start: day(2026, 3, 16), End: day(2026, 3, 20)}))
	assert.False(t, r.Overlaps(DateRange{Start: day(2026, 3, 1), End: day(2026, 3, 9)}))
}

func TestDateAvailable(t *testing.T) {
	rules := AvailabilityRules{
		DisabledRanges: []DateRange{
			{Start: day(2026, 4, 6), End: day(2026, 4, 8)},
		},
		ExcludeWeekends: true,
	}

	// 2026-04-09 is a Thursday
	ok, reason := rules.DateAvailable(day(2026, 4, 9))
	assert.True(t, ok)
	assert.Empty(t, reason)

	// 2026-04-11 is a Saturday
	ok, reason = rules.DateAvailable(day(2026, 4, 11))
	assert.False(t, ok)
	assert.Equal(t, "Selected date falls on a weekend", reason)

	// 2026-04-12 is a Sunday
	ok, _ = rules.DateAvailable(day(2026, 4, 12))
	assert.False(t, ok)

	// Inside the blocked range
	ok, reason = rules.DateAvailable(day(2026, 4, 7))
	assert.False(t, ok)
	assert.Equal(t, "Selected date is within a blocked period", reason)

	// Weekends allowed when the rule is off
	open := AvailabilityRules{}
	ok, _ = open.DateAvailable(day(2026, 4, 11))
	assert.True(t, ok)
}

func TestRangeAvailable(t *testing.T) {
	rules := AvailabilityRules{
		DisabledRanges: []DateRange{
			{Start: day(2026, 4, 6), End: day(2026, 4, 8)},
		},
	}

	ok, reason := rules.RangeAvailable(day(2026, 4, 9), day(2026, 4, 12))
	assert.True(t, ok)
	assert.Empty(t, reason)

	// Range touching a blocked day fails
	ok, reason = rules.RangeAvailable(day(2026, 4, 4), day(2026, 4, 6))
	assert.False(t, ok)
	assert.Equal(t, "Selected date is within a blocked period", reason)

	// Inverted range rejected
	ok, reason = rules.RangeAvailable(day(2026, 4, 12), day(2026, 4, 9))
	assert.False(t, ok)
	assert.Equal(t, "End date must not be before start date", reason)

	// Single-day range is valid
	ok, _ = rules.RangeAvailable(day(2026, 4, 9), day(2026, 4, 9))
	assert.True(t, ok)
}

func TestCheckTime(t *testing.T) {
	rules := DefaultAvailabilityRules()

	slot, accepted := rules.CheckTime("14:30")
	assert.True(t, accepted)
	assert.Equal(t, "14:30", slot)

	slot, accepted = rules.CheckTime("00:00")
	require.False(t, accepted)
	assert.Equal(t, DefaultBookingTime, slot)

	slot, accepted = rules.CheckTime("12:00")
	require.False(t, accepted)
	assert.Equal(t, "10:00", slot)
}
