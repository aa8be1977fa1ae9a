package config

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"backlog/backend/internal/secrets"
)

// Secret names as stored in the secret store.
const (
	SecretDatabaseURL = "DefaultConnection"
	SecretAPIKey      = "ApiKey"
)

// Config holds the application configuration. It is built once at startup
// and never mutated afterwards; handlers receive it by reference.
type Config struct {
	ServerAddr              string `mapstructure:"SERVER_ADDR"`
	KeyVaultName            string `mapstructure:"KEY_VAULT_NAME"`
	ManagedIdentityClientID string `mapstructure:"MANAGED_IDENTITY_CLIENT_ID"`
	TelemetryEndpoint       string `mapstructure:"TELEMETRY_ENDPOINT"`
	LogLevel                string `mapstructure:"LOG_LEVEL"`

	// Resolved from the secret provider, never from plain config.
	DatabaseURL string `mapstructure:"-"`
	APIKey      string `mapstructure:"-"`
}

// Load reads configuration from a .env file and environment variables.
func Load() (*Config, error) {
	viper.AddConfigPath(".")
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.SetDefault("SERVER_ADDR", ":8080")
	viper.SetDefault("KEY_VAULT_NAME", "")
	viper.SetDefault("MANAGED_IDENTITY_CLIENT_ID", "")
	viper.SetDefault("TELEMETRY_ENDPOINT", "")
	viper.SetDefault("LOG_LEVEL", "info")

	viper.AutomaticEnv()

	// The .env file is optional; environment variables alone are fine.
	_ = viper.ReadInConfig()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	return &cfg, nil
}

// SecretProvider picks the secret backend: Key Vault when a vault name is
// configured, environment variables otherwise.
func (c *Config) SecretProvider() (secrets.Provider, error) {
	if c.KeyVaultName == "" {
		return secrets.EnvProvider{}, nil
	}
	return secrets.NewKeyVaultProvider(secrets.KeyVaultConfig{
		VaultName:               c.KeyVaultName,
		ManagedIdentityClientID: c.ManagedIdentityClientID,
	})
}

// ResolveSecrets fetches the connection string and API key. Any failure here
// is fatal to process start.
func (c *Config) ResolveSecrets(ctx context.Context, provider secrets.Provider) error {
	dsn, err := provider.GetSecret(ctx, SecretDatabaseURL)
	if err != nil {
		return fmt.Errorf("config: resolving %s: %w", SecretDatabaseURL, err)
	}
	apiKey, err := provider.GetSecret(ctx, SecretAPIKey)
	if err != nil {
		return fmt.Errorf("config: resolving %s: %w", SecretAPIKey, err)
	}
	c.DatabaseURL = dsn
	c.APIKey = apiKey
	return nil
}
