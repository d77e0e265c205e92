package donation_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"danakita/internal/api/controllers"
	"danakita/internal/gateway"
	"danakita/internal/repositories"
	"danakita/internal/services"
	"danakita/pkg/config"
)

var Module = fx.Provide(
	provideDonationRepository,
	provideDonationService,
	provideDonationController,
)

func provideDonationRepository(db *gorm.DB) repositories.DonationRepositoryInterface {
	return repositories.NewDonationRepository(db)
}

func provideDonationService(
	cfg *config.Config,
	donations repositories.DonationRepositoryInterface,
	programs repositories.ProgramRepositoryInterface,
	gw gateway.PaymentGateway,
) services.DonationServiceInterface {
	return services.NewDonationService(donations, programs, gw, cfg.Payment.ProviderName)
}

func provideDonationController(donationService services.DonationServiceInterface) *controllers.DonationController {
	return controllers.NewDonationController(donationService)
}
