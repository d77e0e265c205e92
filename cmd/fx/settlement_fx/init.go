package settlement_fx

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
	provideLedgerStore,
	provideSettlementService,
	providePaymentController,
)

func provideLedgerStore(
	db *gorm.DB,
	programs repositories.ProgramRepositoryInterface,
	leaderboard repositories.LeaderboardRepositoryInterface,
	referrals repositories.ReferralRepositoryInterface,
) repositories.LedgerStoreInterface {
	return repositories.NewLedgerStore(db, programs, leaderboard, referrals)
}

func provideSettlementService(
	cfg *config.Config,
	gw gateway.PaymentGateway,
	ledger repositories.LedgerStoreInterface,
	audit services.AuditRecorderInterface,
	receipts services.ReceiptNotifierInterface,
	feed *services.DonationFeed,
) services.SettlementServiceInterface {
	return services.NewSettlementService(gw, ledger, audit, receipts, feed, services.SettlementConfig{
		ProviderName:    cfg.Payment.ProviderName,
		SandboxSimulate: cfg.Payment.SandboxSimulate,
	})
}

func providePaymentController(settlementService services.SettlementServiceInterface) *controllers.PaymentController {
	return controllers.NewPaymentController(settlementService)
}
