package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoadConfig loads configuration from file using viper.
// CLI flags > environment > config file > defaults precedence.
func LoadConfig(configPath string) (*FilterAPIConfig, error) {
	v := viper.New()

	// Set defaults matching DefaultFilterAPIConfig
	v.SetDefault("filter_api.host", "0.0.0.0")
	v.SetDefault("filter_api.port", 50051)
	v.SetDefault("filter_api.max_connections", 1000)
	v.SetDefault("filter_api.request_timeout", "30s")

	// Bind environment variables with SIEVE_ prefix
	v.SetEnvPrefix("SIEVE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Load config file if provided
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Security check: reject secrets in config files
	// Secrets must be environment-only per 12-factor principles
	if err := validateNoSecretsInConfig(v); err != nil {
		return nil, err
	}

	cfg := &FilterAPIConfig{
		Host:           v.GetString("filter_api.host"),
		Port:           v.GetInt("filter_api.port"),
		MaxConnections: v.GetInt("filter_api.max_connections"),
		RequestTimeout: v.GetDuration("filter_api.request_timeout"),
	}

	// The schema is a list, so it comes from the config file only; there
	// is no sensible environment encoding for it.
	if err := v.UnmarshalKey("schema.fields", &cfg.SchemaFields); err != nil {
		return nil, fmt.Errorf("failed to parse schema.fields: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validateConfig checks port range, positive values for connections and
// timeout, and well-formed schema field declarations. Type names are
// checked syntactically here; the filter package validates them fully
// when the scheme is built.
func validateConfig(cfg *FilterAPIConfig) error {
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", cfg.Port)
	}
	if cfg.MaxConnections <= 0 {
		return fmt.Errorf("max_connections must be positive, got %d", cfg.MaxConnections)
	}
	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive, got %v", cfg.RequestTimeout)
	}
	seen := make(map[string]struct{}, len(cfg.SchemaFields))
	for i, field := range cfg.SchemaFields {
		if field.Name == "" {
			return fmt.Errorf("schema.fields[%d]: name must not be empty", i)
		}
		if field.Type == "" {
			return fmt.Errorf("schema.fields[%d] (%s): type must not be empty", i, field.Name)
		}
		if _, dup := seen[field.Name]; dup {
			return fmt.Errorf("schema.fields[%d]: duplicate field name '%s'", i, field.Name)
		}
		seen[field.Name] = struct{}{}
	}
	return nil
}

// validateNoSecretsInConfig enforces environment-only secrets (12-factor principle).
func validateNoSecretsInConfig(v *viper.Viper) error {
	if v.IsSet("hmac_secret") || v.IsSet("filter_api.hmac_secret") {
		return fmt.Errorf("HMAC secrets not allowed in config files (use SIEVE_HMAC_SECRET environment variable)")
	}
	return nil
}
