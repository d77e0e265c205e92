package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type PaymentConfig struct {
	ServerKey    string
	ClientKey    string
	Production   bool
	ProviderName string
	// SandboxSimulate enables the signature-bypassing simulate endpoint.
	// Must stay false in production deployments.
	SandboxSimulate bool
}

type CollaboratorConfig struct {
	AuditURL   string
	ReceiptURL string
}

type Config struct {
	Port        string
	PostgresURL string

	Payment       PaymentConfig
	Collaborators CollaboratorConfig
}

// Load reads config.yaml from the working directory when present and lets
// environment variables override every key (PAYMENT_SERVER_KEY, POSTGRES_URL,
// ...).
func Load() *Config {
	viper.SetConfigFile("config.yaml")
	if err := viper.ReadInConfig(); err != nil {
		log.Printf("config.yaml not loaded (%v), relying on environment", err)
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("port", "8080")
	viper.SetDefault("payment.provider_name", "midtrans")
	viper.SetDefault("payment.production", false)
	viper.SetDefault("payment.sandbox_simulate", false)

	return &Config{
		Port:        viper.GetString("port"),
		PostgresURL: viper.GetString("postgres_url"),
		Payment: PaymentConfig{
			ServerKey:       viper.GetString("payment.server_key"),
			ClientKey:       viper.GetString("payment.client_key"),
			Production:      viper.GetBool("payment.production"),
			ProviderName:    viper.GetString("payment.provider_name"),
			SandboxSimulate: viper.GetBool("payment.sandbox_simulate"),
		},
		Collaborators: CollaboratorConfig{
			AuditURL:   viper.GetString("collaborators.audit_url"),
			ReceiptURL: viper.GetString("collaborators.receipt_url"),
		},
	}
}
