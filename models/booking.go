package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking status constants
const (
	BookingStatusPending   = "Pending"
	BookingStatusConfirmed = "Confirmed"
	BookingStatusCancelled = "Cancelled"
	BookingStatusCompleted = "Completed"
)

// Booking represents a submitted reservation for a product.
// UserID 0 denotes a walk-in customer with no account.
// The scheduling fields used depend on the business category:
// accommodation uses CheckIn/CheckOut, activity uses VisitDate/ActivityTime,
// restaurant uses ReservationDate/ReservationTime.
type Booking struct {
	gorm.Model
	ReferenceCode string   `gorm:"uniqueIndex;not null" json:"reference_code"`
	BusinessID    uint     `json:"business_id"`
	Business      Business `json:"business,omitempty" gorm:"foreignKey:BusinessID"`
	ProductID     uint     `json:"product_id"`
	Product       Product  `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	UserID        uint     `json:"user_id"`

	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	NumberOfGuests  int    `json:"number_of_guests"`
	SpecialRequests string `json:"special_requests"`

	CheckIn         *time.Time `json:"check_in,omitempty"`
	CheckOut        *time.Time `json:"check_out,omitempty"`
	VisitDate       *time.Time `json:"visit_date,omitempty"`
	ActivityTime    string     `json:"activity_time,omitempty"`
	ReservationDate *time.Time `json:"reservation_date,omitempty"`
	ReservationTime string     `json:"reservation_time,omitempty"`

	// Pricing snapshot taken at submission; DiscountedPrice is derived
	// from OriginalPrice and DiscountPercent and never mutated on its own.
	OriginalPrice   float64 `json:"original_price"`
	DiscountPercent float64 `json:"discount_percent"`
	DiscountedPrice float64 `json:"discounted_price"`

	AgreeToTerms bool   `json:"agree_to_terms"`
	Status       string `json:"status" gorm:"default:'Pending'"`

	PaymentMethod   string `json:"payment_method,omitempty"`
	RazorpayOrderID string `json:"razorpay_order_id,omitempty"`
	IsPaid          bool   `json:"is_paid" gorm:"default:false"`

	CancellationReason string `json:"cancellation_reason,omitempty"`
}
