package db_models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type DonationStatus string

const (
	DonationStatusPending DonationStatus = "PENDING"
	DonationStatusSuccess DonationStatus = "SUCCESS"
	DonationStatusFailed  DonationStatus = "FAILED"
)

// Terminal reports whether a donation can no longer change state,
// with the one exception that FAILED may still be upgraded to SUCCESS
// when the provider settles late.
func (s DonationStatus) Terminal() bool {
	return s == DonationStatusSuccess || s == DonationStatusFailed
}

type Donation struct {
	BaseModel
	OrderID   string     `gorm:"size:64;uniqueIndex"` // provider-facing id, e.g. DON-1719223344-4821
	ProgramID uuid.UUID  `gorm:"index"`
	UserID    *uuid.UUID `gorm:"index"` // nullable for guest donations

	DonorName   string `gorm:"size:100"`
	DonorEmail  string `gorm:"size:120"`
	IsAnonymous bool

	AmountMinor  int64          // smallest currency unit (IDR rupiah)
	Status       DonationStatus `gorm:"size:16;index;default:'PENDING'"`
	ReferralCode string         `gorm:"size:32;index"`
	PaymentType  string         `gorm:"size:40"` // gopay, bank_transfer, ... from the notification

	PaidAt *int64 // unix seconds, set only when the donation settles

	// Checkout session output
	PaymentToken string `gorm:"size:120"`
	PaymentURL   string `gorm:"size:255"`

	// Raw provider notification, kept verbatim for audit / dispute resolution.
	ProviderPayload   datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	ProviderSignature string         `gorm:"size:160"`

	Program Program `gorm:"foreignKey:ProgramID"`
}

// DonorKey returns the stable leaderboard identity for this donation: the
// authenticated user id when present, else the lowercased donor email. Empty
// when neither exists; such donations cannot be attributed on the leaderboard.
func (d *Donation) DonorKey() string {
	if d.UserID != nil {
		return d.UserID.String()
	}
	if d.DonorEmail != "" {
		return strings.ToLower(strings.TrimSpace(d.DonorEmail))
	}
	return ""
}
