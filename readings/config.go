package readings

import (
	"time"

	"github.com/caarlos0/env/v11"

	starsays "github.com/dinaypatil-web/whatmystarssays"
)

// Config is the environment-driven configuration for the readings client.
type Config struct {
	APIKey  string `env:"STARSAYS_API_KEY"`
	BaseURL string `env:"STARSAYS_BASE_URL" envDefault:"https://api.whatmystarssays.com/v1/generate"`
	Model   string `env:"STARSAYS_MODEL" envDefault:"stellar-1"`

	RetryMaxAttempts  int           `env:"STARSAYS_RETRY_MAX_ATTEMPTS" envDefault:"2"`
	RetryInitialDelay time.Duration `env:"STARSAYS_RETRY_INITIAL_DELAY" envDefault:"1s"`
	RetryMultiplier   float64       `env:"STARSAYS_RETRY_MULTIPLIER" envDefault:"2"`

	TTLDaily   time.Duration `env:"STARSAYS_TTL_DAILY" envDefault:"12h"`
	TTLWeekly  time.Duration `env:"STARSAYS_TTL_WEEKLY" envDefault:"48h"`
	TTLMonthly time.Duration `env:"STARSAYS_TTL_MONTHLY" envDefault:"168h"`
	TTLYearly  time.Duration `env:"STARSAYS_TTL_YEARLY" envDefault:"720h"`
	TTLMatch   time.Duration `env:"STARSAYS_TTL_MATCH" envDefault:"168h"`
	TTLGeocode time.Duration `env:"STARSAYS_TTL_GEOCODE" envDefault:"720h"`

	CacheDisabled bool `env:"STARSAYS_CACHE_DISABLED"`
}

// ConfigFromEnv parses Config from the process environment.
func ConfigFromEnv() (Config, error) {
	return env.ParseAs[Config]()
}

// RetryPolicy builds the retry policy the client hands to every remote call.
func (c Config) RetryPolicy() starsays.Policy {
	return starsays.Policy{
		MaxAttempts:  c.RetryMaxAttempts,
		InitialDelay: c.RetryInitialDelay,
		Multiplier:   c.RetryMultiplier,
	}
}

// TTLs builds the TTL table, falling back to defaults for unset values.
// Birth-derived readings keep the never-expires sentinel regardless of env.
func (c Config) TTLs() TTLTable {
	t := DefaultTTLs()
	if c.TTLDaily > 0 {
		t.Daily = c.TTLDaily
	}
	if c.TTLWeekly > 0 {
		t.Weekly = c.TTLWeekly
	}
	if c.TTLMonthly > 0 {
		t.Monthly = c.TTLMonthly
	}
	if c.TTLYearly > 0 {
		t.Yearly = c.TTLYearly
	}
	if c.TTLMatch > 0 {
		t.Match = c.TTLMatch
	}
	if c.TTLGeocode > 0 {
		t.Geocode = c.TTLGeocode
	}
	return t
}
