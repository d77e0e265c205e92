package referral_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"danakita/internal/api/controllers"
	"danakita/internal/repositories"
	"danakita/internal/services"
)

var Module = fx.Provide(
	provideReferralRepository,
	provideReferralService,
	provideReferralController,
)

func provideReferralRepository(db *gorm.DB) repositories.ReferralRepositoryInterface {
	return repositories.NewReferralRepository(db)
}

func provideReferralService(referrals repositories.ReferralRepositoryInterface) services.ReferralServiceInterface {
	return services.NewReferralService(referrals)
}

func provideReferralController(referralService services.ReferralServiceInterface) *controllers.ReferralController {
	return controllers.NewReferralController(referralService)
}
