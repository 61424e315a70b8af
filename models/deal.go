package models

import (
	"time"

	"gorm.io/gorm"
)

// Deal represents a time-bounded percentage discount attached to a product.
// Active vs expired is never stored; it is recomputed from ExpiresAt on read.
type Deal struct {
	gorm.Model
	ProductID       uint      `json:"product_id"`
	Product         Product   `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	DiscountPercent float64   `json:"discount_percent"`
	ExpiresAt       time.Time `json:"expires_at"`
}

// IsExpired reports whether the deal has passed its expiration at the given time
func (d *Deal) IsExpired(now time.Time) bool {
	return !d.ExpiresAt.After(now)
}

// StatusAt returns the display status of the deal at the given time
func (d *Deal) StatusAt(now time.Time) string {
	if d.IsExpired(now) {
		return "expired"
	}
	return "active"
}
