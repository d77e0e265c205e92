package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"danakita/internal/models/db_models"
)

type LeaderboardRepositoryInterface interface {
	// RecordSuccess upserts the donor's running total inside the caller's
	// transaction. entry.TotalDonatedMinor carries the single donation amount;
	// the increment happens at the SQL level so concurrent settlements for the
	// same donor cannot lose updates.
	RecordSuccess(tx *gorm.DB, entry db_models.DonorLeaderboard) error
	TopDonors(limit int, ctx context.Context) ([]db_models.DonorLeaderboard, error)
}

func NewLeaderboardRepository(db *gorm.DB) LeaderboardRepositoryInterface {
	return &LeaderboardRepository{db: db}
}

type LeaderboardRepository struct {
	db *gorm.DB
}

func (l *LeaderboardRepository) RecordSuccess(tx *gorm.DB, entry db_models.DonorLeaderboard) error {
	entry.DonationCount = 1
	entry.Tier = db_models.TierFor(entry.TotalDonatedMinor)

	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "donor_key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"total_donated_minor": gorm.Expr("donor_leaderboards.total_donated_minor + EXCLUDED.total_donated_minor"),
			"donation_count":      gorm.Expr("donor_leaderboards.donation_count + 1"),
			"display_name":        entry.DisplayName,
			"is_anonymous":        entry.IsAnonymous,
			"last_donation_at":    entry.LastDonationAt,
			"updated_at":          entry.LastDonationAt,
		}),
	}).Create(&entry).Error
	if err != nil {
		return err
	}

	// Tier derives from the post-increment cumulative total; the upsert above
	// row-locked the entry for the rest of the transaction.
	var row db_models.DonorLeaderboard
	if err := tx.Where("donor_key = ?", entry.DonorKey).First(&row).Error; err != nil {
		return err
	}
	if tier := db_models.TierFor(row.TotalDonatedMinor); tier != row.Tier {
		return tx.Model(&db_models.DonorLeaderboard{}).
			Where("donor_key = ?", entry.DonorKey).
			UpdateColumn("tier", tier).Error
	}
	return nil
}

func (l *LeaderboardRepository) TopDonors(limit int, ctx context.Context) ([]db_models.DonorLeaderboard, error) {
	var entries []db_models.DonorLeaderboard
	err := l.db.WithContext(ctx).
		Order("total_donated_minor DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
