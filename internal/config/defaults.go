package config

import (
	"time"

	"github.com/spf13/viper"

	"citysim/internal/city"
	"citysim/internal/logger"
)

// SetDefaults registers a default for every key. Registering keys up front
// also lets AutomaticEnv override values that the config file omits.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("db.path", "citysim.db")
	v.SetDefault("log.level", logger.InfoLevel)

	v.SetDefault("auth.signing_key", "change-me-in-production")
	v.SetDefault("auth.token_ttl", time.Hour)

	v.SetDefault("sim.slot", "default")
	v.SetDefault("sim.initial_families", city.DefaultFamilies)
	v.SetDefault("sim.initial_budget", city.DefaultBudget)
	v.SetDefault("sim.initial_tax_rate", city.DefaultTaxRate)
	v.SetDefault("sim.initial_vat_rate", city.DefaultVatRate)
	v.SetDefault("sim.sandbox", false)
	v.SetDefault("sim.seed", 0)
	v.SetDefault("sim.auto_advance_every", time.Duration(0))

	v.SetDefault("api.rate_limit", 5.0)
	v.SetDefault("api.burst", 10)

	v.SetDefault("metrics.enabled", true)
}
