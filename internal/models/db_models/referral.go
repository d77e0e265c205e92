package db_models

import (
	"github.com/google/uuid"
)

type ReferralCode struct {
	BaseModel
	Code    string    `gorm:"size:32;uniqueIndex"`
	OwnerID uuid.UUID `gorm:"index"`

	// Aggregates over this code's attributions. Invariant: the sum of
	// attribution amounts equals TotalDonatedMinor.
	TotalDonatedMinor int64
	TotalDonors       int64

	IsActive bool `gorm:"default:true"`
}

type ReferralAttribution struct {
	BaseModel
	ReferralCodeID uuid.UUID `gorm:"index"`
	// One attribution per donation; re-delivered webhooks must not add rows.
	DonationID uuid.UUID `gorm:"uniqueIndex"`

	AmountMinor  int64
	DonorName    string    `gorm:"size:100"`
	DonorEmail   string    `gorm:"size:120"`
	ProgramID    uuid.UUID `gorm:"index"`
	ProgramTitle string    `gorm:"size:150"`
}
