// Package config loads the service configuration from configs/config.yml,
// a local .env file and CITYSIM_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"citysim/internal/city"
)

const envPrefix = "CITYSIM"

type Config struct {
	Port    string        `mapstructure:"port" validate:"required,numeric"`
	DB      DBConfig      `mapstructure:"db"`
	Log     LogConfig     `mapstructure:"log"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Sim     SimConfig     `mapstructure:"sim"`
	API     APIConfig     `mapstructure:"api"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

type DBConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

type AuthConfig struct {
	SigningKey string        `mapstructure:"signing_key" validate:"required,min=8"`
	TokenTTL   time.Duration `mapstructure:"token_ttl" validate:"gt=0"`
}

// SimConfig describes the city a new session starts from and how it advances.
type SimConfig struct {
	Slot             string        `mapstructure:"slot" validate:"required"`
	InitialFamilies  int           `mapstructure:"initial_families" validate:"gte=0"`
	InitialBudget    int           `mapstructure:"initial_budget"`
	InitialTaxRate   float64       `mapstructure:"initial_tax_rate" validate:"gte=0,lte=0.4"`
	InitialVatRate   float64       `mapstructure:"initial_vat_rate" validate:"gte=0,lte=0.25"`
	Sandbox          bool          `mapstructure:"sandbox"`
	Seed             int64         `mapstructure:"seed"`
	AutoAdvanceEvery time.Duration `mapstructure:"auto_advance_every" validate:"gte=0"`
}

// APIConfig throttles mutating API calls. RateLimit is requests per second;
// zero disables throttling.
type APIConfig struct {
	RateLimit float64 `mapstructure:"rate_limit" validate:"gte=0"`
	Burst     int     `mapstructure:"burst" validate:"min=1"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// CityConfig returns the founding configuration for new cities.
func (c SimConfig) CityConfig() city.Config {
	return city.Config{
		Families:     c.InitialFamilies,
		Budget:       c.InitialBudget,
		Satisfaction: city.DefaultSatisfaction,
		TaxRate:      c.InitialTaxRate,
		VatRate:      c.InitialVatRate,
	}
}

// Load reads configuration with priority env > config file > defaults.
// An empty path searches ./configs and the working directory; a missing
// file is fine in that case, but an explicit path must exist.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("configs")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Default returns the configuration built from defaults alone.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &cfg
}
