package config

import "time"

type Negotiation struct {
	MaxRounds int           `env:"NEGOTIATION_MAX_ROUNDS" envDefault:"3"`
	Timeout   time.Duration `env:"NEGOTIATION_TIMEOUT" envDefault:"15m"`
	Queue     string        `env:"NEGOTIATION_QUEUE" envDefault:"negotiations"`
}
