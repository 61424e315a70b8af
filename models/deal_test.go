package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDealStatusAt(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	active := Deal{DiscountPercent: 20, ExpiresAt: now.Add(48 * time.Hour)}
	assert.False(t, active.IsExpired(now))
	assert.Equal(t, "active", active.StatusAt(now))

	expired := Deal{DiscountPercent: 20, ExpiresAt: now.Add(-time.Hour)}
	assert.True(t, expired.IsExpired(now))
	assert.Equal(t, "expired", expired.StatusAt(now))

	// A deal expiring exactly now is already expired
	boundary := Deal{DiscountPercent: 20, ExpiresAt: now}
	assert.True(t, boundary.IsExpired(now))
	assert.Equal(t, "expired", boundary.StatusAt(now))
}

func TestDealStatusRecomputedPerReading(t *testing.T) {
	deal := Deal{DiscountPercent: 15, ExpiresAt: time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)}

	before := time.Date(2026, 5, 9, 0, 0, 0, 0, time.UTC)
	after := time.Date(2026, 5, 11, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "active", deal.StatusAt(before))
	assert.Equal(t, "expired", deal.StatusAt(after))
}
