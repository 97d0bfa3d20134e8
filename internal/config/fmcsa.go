package config

import "time"

type FMCSA struct {
	BaseURL             string        `env:"FMCSA_BASE_URL" envDefault:"https://mobile.fmcsa.dot.gov/qc/services"`
	WebKey              string        `env:"FMCSA_WEB_KEY,notEmpty" json:"-"`
	Timeout             time.Duration `env:"FMCSA_TIMEOUT" envDefault:"5s"`
	RetryMaxAttempts    int           `env:"FMCSA_RETRY_MAX_ATTEMPTS" envDefault:"3"`
	RetryInitialBackoff time.Duration `env:"FMCSA_RETRY_INITIAL_BACKOFF" envDefault:"500ms"`
	RetryMaxBackoff     time.Duration `env:"FMCSA_RETRY_MAX_BACKOFF" envDefault:"4s"`
	RateLimitRPS        float64       `env:"FMCSA_RATE_LIMIT_RPS" envDefault:"10"`
	RateLimitBurst      int           `env:"FMCSA_RATE_LIMIT_BURST" envDefault:"5"`
	HealthMCNumber      string        `env:"FMCSA_HEALTH_MC" envDefault:"123456"`
}
