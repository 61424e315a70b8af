package models

import (
	"time"

	"gorm.io/gorm"
)

// Verification status values
const (
	VerificationRejected = -1
	VerificationPending  = 0
	VerificationApproved = 1
)

// VerificationApplication represents a business owner's request to have a
// listing verified. Pending applications can be approved or rejected by an
// admin; both outcomes are terminal.
type VerificationApplication struct {
	gorm.Model
	OwnerID           uint       `json:"owner_id"`
	Owner             User       `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	BusinessID        uint       `json:"business_id"`
	Business          Business   `json:"business,omitempty" gorm:"foreignKey:BusinessID"`
	BusinessName      string     `json:"business_name"`
	Category          string     `json:"category"`
	CertificateNumber string     `json:"certificate_number"`
	Location          string     `json:"location"`
	SubmittedAt       time.Time  `json:"submitted_at"`
	Status            int        `json:"status" gorm:"default:0"`
	ReviewedAt        *time.Time `json:"reviewed_at,omitempty"`
	RejectReason      string     `json:"reject_reason,omitempty"`
}

// StatusLabel returns the display name for the application status
func (v *VerificationApplication) StatusLabel() string {
	switch v.Status {
	case VerificationApproved:
		return "Approved"
	case VerificationRejected:
		return "Rejected"
	default:
		return "Pending"
	}
}

// IsPending reports whether the application can still be reviewed
func (v *VerificationApplication) IsPending() bool {
	return v.Status == VerificationPending
}
