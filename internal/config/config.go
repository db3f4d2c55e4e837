// Package config loads process configuration once at startup. The resulting
// Config is passed explicitly into constructors; nothing downstream reads the
// environment on its own.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Backend names the forecast store implementations selectable at startup.
const (
	BackendPostgres = "postgres"
	BackendRest     = "rest"
	BackendMemory   = "memory"
)

type APIConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Key     string `mapstructure:"key"`
}

type ExportConfig struct {
	// AllowEmpty makes POST /export answer a header-only CSV instead of 404
	// when no rows match.
	AllowEmpty bool `mapstructure:"allow_empty"`
}

type Config struct {
	Backend           string       `mapstructure:"backend"`
	ListenAddr        string       `mapstructure:"listen_addr"`
	DatabaseURL       string       `mapstructure:"database_url"`
	API               APIConfig    `mapstructure:"api"`
	RedisAddr         string       `mapstructure:"redis_addr"`
	Export            ExportConfig `mapstructure:"export"`
	TopSkuLimit       int          `mapstructure:"top_sku_limit"`
	CriticalThreshold int          `mapstructure:"critical_threshold"`
}

// Load reads config.yaml (optional) and FORECAST_-prefixed environment
// variables, validates the result, and returns it. Missing required keys are
// an error so the process can refuse to start.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/forecast-dashboard/")

	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("top_sku_limit", 10)
	v.SetDefault("critical_threshold", 5)
	v.SetDefault("export.allow_empty", false)

	v.SetEnvPrefix("FORECAST")
	// Nested keys as env vars: FORECAST_API_BASE_URL etc.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range []string{"backend", "database_url", "api.base_url", "api.key", "redis_addr", "export.allow_empty"} {
		_ = v.BindEnv(key)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Backend {
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("backend %q requires database_url", c.Backend)
		}
	case BackendRest:
		if c.API.BaseURL == "" || c.API.Key == "" {
			return fmt.Errorf("backend %q requires api.base_url and api.key", c.Backend)
		}
	case BackendMemory:
	case "":
		return fmt.Errorf("backend is required (postgres, rest or memory)")
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	return nil
}
