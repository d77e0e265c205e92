package gateway_fx

import (
	"log"

	"go.uber.org/fx"

	"danakita/internal/gateway"
	"danakita/pkg/config"
)

var Module = fx.Provide(provideGateway)

func provideGateway(cfg *config.Config) gateway.PaymentGateway {
	instance, err := gateway.NewMidtransGateway(gateway.Config{
		ServerKey:    cfg.Payment.ServerKey,
		ClientKey:    cfg.Payment.ClientKey,
		Production:   cfg.Payment.Production,
		ProviderName: cfg.Payment.ProviderName,
	})
	if err != nil {
		log.Fatalf("Error initializing payment gateway: %v", err)
	}

	return instance
}
