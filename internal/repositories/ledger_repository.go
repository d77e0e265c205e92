package repositories

import (
	"context"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"danakita/internal/models/db_models"
	"danakita/pkg/utils"
)

// SettlementUpdate carries everything the ledger needs to move one donation
// into its new state.
type SettlementUpdate struct {
	OrderID     string
	NewStatus   db_models.DonationStatus
	PaidAt      *int64 // set only when NewStatus is SUCCESS
	PaymentType string
	RawPayload  []byte
	Signature   string
}

type SettlementResult struct {
	Donation *db_models.Donation
	// FirstSuccess is true when this call moved the donation into SUCCESS for
	// the first time, i.e. the financial side effects were applied exactly now.
	FirstSuccess bool
	// Applied is false when the update was a no-op (duplicate delivery or an
	// attempted downgrade of a settled donation).
	Applied bool
}

// LedgerStoreInterface is the persistence boundary of the settlement engine.
// ApplySettlement runs the donation update, the program-total increment, the
// leaderboard upsert and the referral attribution as one transaction, so a
// crash between them can never leave a SUCCESS donation with an un-incremented
// program total.
type LedgerStoreInterface interface {
	GetDonationByOrderID(orderID string, ctx context.Context) (*db_models.Donation, error)
	ApplySettlement(upd SettlementUpdate, ctx context.Context) (*SettlementResult, error)
}

func NewLedgerStore(
	db *gorm.DB,
	programs ProgramRepositoryInterface,
	leaderboard LeaderboardRepositoryInterface,
	referrals ReferralRepositoryInterface,
) LedgerStoreInterface {
	return &LedgerStore{
		db:          db,
		programs:    programs,
		leaderboard: leaderboard,
		referrals:   referrals,
	}
}

type LedgerStore struct {
	db          *gorm.DB
	programs    ProgramRepositoryInterface
	leaderboard LeaderboardRepositoryInterface
	referrals   ReferralRepositoryInterface
}

func (l *LedgerStore) GetDonationByOrderID(orderID string, ctx context.Context) (*db_models.Donation, error) {
	var donation db_models.Donation
	err := l.db.WithContext(ctx).
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

func (l *LedgerStore) ApplySettlement(upd SettlementUpdate, ctx context.Context) (*SettlementResult, error) {
	result := &SettlementResult{}

	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var donation db_models.Donation
		if err := tx.Preload("Program").
			Where("order_id = ?", upd.OrderID).
			First(&donation).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrDonationNotFound
			}
			return err
		}

		updates := map[string]interface{}{
			"provider_payload":   datatypes.JSON(upd.RawPayload),
			"provider_signature": upd.Signature,
		}
		if upd.PaymentType != "" {
			updates["payment_type"] = upd.PaymentType
		}

		switch upd.NewStatus {
		case db_models.DonationStatusSuccess:
			updates["status"] = db_models.DonationStatusSuccess
			updates["paid_at"] = upd.PaidAt

			// Guarded update: a donation already in SUCCESS is left alone, so
			// concurrent duplicate deliveries race on this WHERE clause and
			// exactly one of them wins.
			q := tx.Model(&db_models.Donation{}).
				Where("id = ? AND status <> ?", donation.ID, db_models.DonationStatusSuccess).
				Updates(updates)
			if q.Error != nil {
				return q.Error
			}
			// Losing the race (another delivery settled first) is still a
			// valid outcome; the re-fetch below reports the settled row.
			if q.RowsAffected > 0 {
				result.Applied = true
				result.FirstSuccess = true

				if err := l.programs.IncrementCollected(tx, donation.ProgramID, donation.AmountMinor); err != nil {
					return err
				}

				if key := donation.DonorKey(); key != "" {
					paidAt := donation.CreatedAt
					if upd.PaidAt != nil {
						paidAt = *upd.PaidAt
					}
					entry := db_models.DonorLeaderboard{
						DonorKey:          key,
						DisplayName:       donation.DonorName,
						TotalDonatedMinor: donation.AmountMinor,
						IsAnonymous:       donation.IsAnonymous,
						LastDonationAt:    paidAt,
					}
					if err := l.leaderboard.RecordSuccess(tx, entry); err != nil {
						return err
					}
				}

				if donation.ReferralCode != "" {
					if err := l.referrals.Attribute(tx, donation.ReferralCode, &donation, donation.Program.Title); err != nil {
						return err
					}
				}
			}

		case db_models.DonationStatusFailed:
			updates["status"] = db_models.DonationStatusFailed
			// Never downgrade a settled donation.
			q := tx.Model(&db_models.Donation{}).
				Where("id = ? AND status <> ?", donation.ID, db_models.DonationStatusSuccess).
				Updates(updates)
			if q.Error != nil {
				return q.Error
			}
			result.Applied = q.RowsAffected > 0

		default:
			// PENDING re-notifications only refresh the stored provider
			// metadata on a donation that has not settled yet.
			q := tx.Model(&db_models.Donation{}).
				Where("id = ? AND status = ?", donation.ID, db_models.DonationStatusPending).
				Updates(updates)
			if q.Error != nil {
				return q.Error
			}
			result.Applied = q.RowsAffected > 0
		}

		if err := tx.Preload("Program").First(&donation, "id = ?", donation.ID).Error; err != nil {
			return err
		}
		result.Donation = &donation
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
