package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"danakita/internal/models/db_models"
)

type ReferralRepositoryInterface interface {
	GetByCode(code string, ctx context.Context) (*db_models.ReferralCode, error)
	// Attribute records a referral attribution for the donation inside the
	// caller's transaction. Unknown or inactive codes are a silent no-op; a
	// donation id that was already attributed is a no-op as well, so
	// re-delivered webhooks never double-count.
	Attribute(tx *gorm.DB, code string, donation *db_models.Donation, programTitle string) error
}

func NewReferralRepository(db *gorm.DB) ReferralRepositoryInterface {
	return &ReferralRepository{db: db}
}

type ReferralRepository struct {
	db *gorm.DB
}

func (r *ReferralRepository) GetByCode(code string, ctx context.Context) (*db_models.ReferralCode, error) {
	var rc db_models.ReferralCode
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&rc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rc, nil
}

func (r *ReferralRepository) Attribute(tx *gorm.DB, code string, donation *db_models.Donation, programTitle string) error {
	var rc db_models.ReferralCode
	err := tx.Where("code = ? AND is_active = TRUE", code).First(&rc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	attribution := db_models.ReferralAttribution{
		ReferralCodeID: rc.ID,
		DonationID:     donation.ID,
		AmountMinor:    donation.AmountMinor,
		DonorName:      donation.DonorName,
		DonorEmail:     donation.DonorEmail,
		ProgramID:      donation.ProgramID,
		ProgramTitle:   programTitle,
	}

	res := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "donation_id"}},
		DoNothing: true,
	}).Create(&attribution)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// This donation was attributed by an earlier delivery.
		return nil
	}

	return tx.Model(&db_models.ReferralCode{}).
		Where("id = ?", rc.ID).
		UpdateColumns(map[string]interface{}{
			"total_donated_minor": gorm.Expr("total_donated_minor + ?", donation.AmountMinor),
			"total_donors":        gorm.Expr("total_donors + 1"),
		}).Error
}
