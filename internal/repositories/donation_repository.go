package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"danakita/internal/models/db_models"
)

type DonationRepositoryInterface interface {
	CreateDonation(donation *db_models.Donation, ctx context.Context) error
	GetByOrderID(orderID string, ctx context.Context) (*db_models.Donation, error)
	UpdateCheckoutSession(donationID uuid.UUID, token string, url string, ctx context.Context) error
	MarkFailed(donationID uuid.UUID, ctx context.Context) error
}

func NewDonationRepository(db *gorm.DB) DonationRepositoryInterface {
	return &DonationRepository{db: db}
}

type DonationRepository struct {
	db *gorm.DB
}

func (d *DonationRepository) CreateDonation(donation *db_models.Donation, ctx context.Context) error {
	return d.db.WithContext(ctx).Create(donation).Error
}

func (d *DonationRepository) GetByOrderID(orderID string, ctx context.Context) (*db_models.Donation, error) {
	var donation db_models.Donation
	err := d.db.WithContext(ctx).
		Preload("Program").
		Where("order_id = ?", orderID).
		First(&donation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &donation, nil
}

func (d *DonationRepository) UpdateCheckoutSession(donationID uuid.UUID, token string, url string, ctx context.Context) error {
	return d.db.WithContext(ctx).Model(&db_models.Donation{}).
		Where("id = ?", donationID).
		Updates(map[string]interface{}{
			"payment_token": token,
			"payment_url":   url,
		}).Error
}

func (d *DonationRepository) MarkFailed(donationID uuid.UUID, ctx context.Context) error {
	return d.db.WithContext(ctx).Model(&db_models.Donation{}).
		Where("id = ? AND status = ?", donationID, db_models.DonationStatusPending).
		Update("status", db_models.DonationStatusFailed).Error
}
