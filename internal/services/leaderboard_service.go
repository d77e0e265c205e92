package services

import (
	"context"
	"fmt"

	"danakita/internal/models/response_models"
	"danakita/internal/repositories"
	mem "danakita/pkg/memcache"
	"danakita/pkg/utils"
)

// Display name shown for donors who asked to stay anonymous.
const anonymousDisplayName = "Hamba Allah"

type LeaderboardServiceInterface interface {
	TopDonors(limit int, ctx context.Context) ([]response_models.LeaderboardEntryResponse, error)
}

func NewLeaderboardService(leaderboard repositories.LeaderboardRepositoryInterface, cache *mem.Cache) LeaderboardServiceInterface {
	return &LeaderboardService{leaderboard: leaderboard, cache: cache}
}

type LeaderboardService struct {
	leaderboard repositories.LeaderboardRepositoryInterface
	// Short-TTL cache; the leaderboard tolerates a few seconds of staleness
	// and the query is the hottest read on the donation pages.
	cache *mem.Cache
}

func (l *LeaderboardService) TopDonors(limit int, ctx context.Context) ([]response_models.LeaderboardEntryResponse, error) {
	if limit < 1 || limit > 100 {
		return nil, utils.ErrInvalidPage
	}

	cacheKey := fmt.Sprintf("leaderboard:top:%d", limit)
	if cached, ok := l.cache.Get(cacheKey); ok {
		if responses, ok := cached.([]response_models.LeaderboardEntryResponse); ok {
			return responses, nil
		}
	}

	entries, err := l.leaderboard.TopDonors(limit, ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.LeaderboardEntryResponse, 0, len(entries))
	for i, entry := range entries {
		name := entry.DisplayName
		if entry.IsAnonymous {
			name = anonymousDisplayName
		}
		responses = append(responses, response_models.LeaderboardEntryResponse{
			Rank:           i + 1,
			DisplayName:    name,
			TotalDonated:   entry.TotalDonatedMinor,
			DonationCount:  entry.DonationCount,
			Tier:           entry.Tier,
			LastDonationAt: entry.LastDonationAt,
		})
	}

	l.cache.Set(cacheKey, responses)
	return responses, nil
}
