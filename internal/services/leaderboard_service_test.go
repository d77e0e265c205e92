package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"danakita/internal/models/db_models"
	mem "danakita/pkg/memcache"
	"danakita/pkg/utils"
)

type mockLeaderboardRepository struct {
	entries   []db_models.DonorLeaderboard
	lastLimit int
}

func (m *mockLeaderboardRepository) RecordSuccess(tx *gorm.DB, entry db_models.DonorLeaderboard) error {
	return nil
}

func (m *mockLeaderboardRepository) TopDonors(limit int, ctx context.Context) ([]db_models.DonorLeaderboard, error) {
	m.lastLimit = limit
	if limit < len(m.entries) {
		return m.entries[:limit], nil
	}
	return m.entries, nil
}

func TestLeaderboardService_TopDonors(t *testing.T) {
	ctx := context.Background()
	repo := &mockLeaderboardRepository{
		entries: []db_models.DonorLeaderboard{
			{DisplayName: "Siti Rahma", TotalDonatedMinor: 12_000_000, DonationCount: 8, Tier: db_models.TierJuragan},
			{DisplayName: "Budi Santoso", TotalDonatedMinor: 2_500_000, DonationCount: 3, Tier: db_models.TierDermawan, IsAnonymous: true},
			{DisplayName: "Andi Wijaya", TotalDonatedMinor: 500_000, DonationCount: 1, Tier: db_models.TierPemula},
		},
	}
	svc := NewLeaderboardService(repo, mem.NewCache(0))

	t.Run("ranks follow the stored order and anonymous names are masked", func(t *testing.T) {
		out, err := svc.TopDonors(10, ctx)
		if err != nil {
			t.Fatalf("TopDonors failed: %v", err)
		}
		if len(out) != 3 {
			t.Fatalf("expected 3 entries, got %d", len(out))
		}
		for i, entry := range out {
			if entry.Rank != i+1 {
				t.Errorf("entry %d: rank = %d, want %d", i, entry.Rank, i+1)
			}
		}
		if out[0].DisplayName != "Siti Rahma" {
			t.Errorf("top donor = %q, want Siti Rahma", out[0].DisplayName)
		}
		if out[1].DisplayName != anonymousDisplayName {
			t.Errorf("anonymous donor shown as %q, want %q", out[1].DisplayName, anonymousDisplayName)
		}
		if out[1].TotalDonated != 2_500_000 {
			t.Errorf("anonymous donor total = %d, want 2500000", out[1].TotalDonated)
		}
	})

	t.Run("limit is passed through and clamped entries returned", func(t *testing.T) {
		out, err := svc.TopDonors(2, ctx)
		if err != nil {
			t.Fatalf("TopDonors failed: %v", err)
		}
		if len(out) != 2 || repo.lastLimit != 2 {
			t.Errorf("expected 2 entries with limit 2, got %d (limit %d)", len(out), repo.lastLimit)
		}
	})

	t.Run("repeated reads within the cache window hit the cache", func(t *testing.T) {
		countingRepo := &mockLeaderboardRepository{entries: repo.entries}
		cached := NewLeaderboardService(countingRepo, mem.NewCache(time.Minute))

		if _, err := cached.TopDonors(5, ctx); err != nil {
			t.Fatalf("first read failed: %v", err)
		}
		countingRepo.lastLimit = 0
		if _, err := cached.TopDonors(5, ctx); err != nil {
			t.Fatalf("second read failed: %v", err)
		}
		if countingRepo.lastLimit != 0 {
			t.Error("expected the second read to be served from cache")
		}
	})

	t.Run("out-of-range limits rejected", func(t *testing.T) {
		for _, limit := range []int{0, -1, 101} {
			if _, err := svc.TopDonors(limit, ctx); !errors.Is(err, utils.ErrInvalidPage) {
				t.Errorf("limit %d: expected ErrInvalidPage, got %v", limit, err)
			}
		}
	})
}

type mockReferralRepository struct {
	codes map[string]*db_models.ReferralCode
}

func (m *mockReferralRepository) GetByCode(code string, ctx context.Context) (*db_models.ReferralCode, error) {
	return m.codes[code], nil
}

func (m *mockReferralRepository) Attribute(tx *gorm.DB, code string, donation *db_models.Donation, programTitle string) error {
	return nil
}

func TestReferralService_CodeStats(t *testing.T) {
	ctx := context.Background()
	svc := NewReferralService(&mockReferralRepository{
		codes: map[string]*db_models.ReferralCode{
			"AJAK-BAIK": {Code: "AJAK-BAIK", TotalDonatedMinor: 350_000, TotalDonors: 4, IsActive: true},
		},
	})

	t.Run("known code returns its aggregates", func(t *testing.T) {
		stats, err := svc.CodeStats("AJAK-BAIK", ctx)
		if err != nil {
			t.Fatalf("CodeStats failed: %v", err)
		}
		if stats.TotalDonations != 350_000 || stats.TotalDonors != 4 || !stats.IsActive {
			t.Errorf("unexpected stats: %+v", stats)
		}
	})

	t.Run("unknown code yields NotFound", func(t *testing.T) {
		if _, err := svc.CodeStats("NOPE", ctx); !errors.Is(err, utils.ErrReferralNotFound) {
			t.Fatalf("expected ErrReferralNotFound, got %v", err)
		}
	})
}
