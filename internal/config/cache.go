package config

import "time"

type Cache struct {
	CarrierTTL           time.Duration `env:"CACHE_CARRIER_TTL" envDefault:"24h"`
	SnapshotTTL          time.Duration `env:"CACHE_SNAPSHOT_TTL" envDefault:"1h"`
	FallbackMaxStaleness time.Duration `env:"FALLBACK_MAX_STALENESS" envDefault:"168h"`
	CleanupInterval      time.Duration `env:"CACHE_CLEANUP_INTERVAL" envDefault:"10m"`
}
