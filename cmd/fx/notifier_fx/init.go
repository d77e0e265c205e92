package notifier_fx

import (
	"go.uber.org/fx"

	"danakita/internal/services"
	"danakita/pkg/config"
)

var Module = fx.Provide(
	provideAuditRecorder,
	provideReceiptNotifier,
)

func provideAuditRecorder(cfg *config.Config) services.AuditRecorderInterface {
	return services.NewHTTPAuditRecorder(cfg.Collaborators.AuditURL)
}

func provideReceiptNotifier(cfg *config.Config) services.ReceiptNotifierInterface {
	return services.NewHTTPReceiptNotifier(cfg.Collaborators.ReceiptURL)
}
