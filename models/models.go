package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered account (tourist or business owner)
type User struct {
	gorm.Model
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Password     string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Phone        string    `json:"phone"`
	ProfileImage string    `json:"profile_image"`
	IsBlocked    bool      `json:"is_blocked"`
	IsVerified   bool      `json:"is_verified" gorm:"default:false"`
	IsOwner      bool      `json:"is_owner" gorm:"default:false"`
	OTP          string    `json:"-"`
	OTPExpiresAt time.Time `json:"-"`
	LastLoginAt  time.Time `json:"last_login_at"`
	GoogleID     string    `gorm:"default:null" json:"google_id"`

	Businesses []Business `json:"businesses,omitempty" gorm:"foreignKey:OwnerID"`
}

// Admin represents a super-admin in the back office
type Admin struct {
	gorm.Model
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `json:"-"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	LastLogin time.Time `json:"last_login"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
}

// Municipality represents a destination town within the region
type Municipality struct {
	gorm.Model
	Name        string     `json:"name" gorm:"uniqueIndex"`
	Description string     `json:"description"`
	Highlights  string     `json:"highlights"`
	ImageURL    string     `json:"image_url"`
	Businesses  []Business `json:"businesses,omitempty"`
}

// UserOTP represents a one-time password for email verification
type UserOTP struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null"`
	Code      string    `json:"code" gorm:"not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
