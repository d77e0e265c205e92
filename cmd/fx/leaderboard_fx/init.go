package leaderboard_fx

import (
	"time"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"danakita/internal/api/controllers"
	"danakita/internal/repositories"
	"danakita/internal/services"
	mem "danakita/pkg/memcache"
)

// Leaderboard reads tolerate a few seconds of staleness.
const leaderboardCacheTTL = 10 * time.Second

var Module = fx.Provide(
	provideLeaderboardRepository,
	provideLeaderboardCache,
	provideLeaderboardService,
	provideLeaderboardController,
)

func provideLeaderboardRepository(db *gorm.DB) repositories.LeaderboardRepositoryInterface {
	return repositories.NewLeaderboardRepository(db)
}

func provideLeaderboardCache() *mem.Cache {
	return mem.NewCache(leaderboardCacheTTL)
}

func provideLeaderboardService(leaderboard repositories.LeaderboardRepositoryInterface, cache *mem.Cache) services.LeaderboardServiceInterface {
	return services.NewLeaderboardService(leaderboard, cache)
}

func provideLeaderboardController(leaderboardService services.LeaderboardServiceInterface) *controllers.LeaderboardController {
	return controllers.NewLeaderboardController(leaderboardService)
}
