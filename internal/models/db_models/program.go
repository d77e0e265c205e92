package db_models

import (
	"github.com/lib/pq"
)

type Program struct {
	BaseModel
	Title       string `gorm:"size:150"`
	Slug        string `gorm:"size:160;uniqueIndex"`
	Description string
	Categories  pq.StringArray `gorm:"type:text[]"`

	TargetAmountMinor int64
	// Sum of AmountMinor over this program's SUCCESS donations. Only the
	// settlement path may write it, and only through an atomic SQL increment.
	CollectedAmountMinor int64

	IsActive bool `gorm:"default:true"`
}
