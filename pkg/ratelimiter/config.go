package ratelimiter

import (
	"fmt"
	"time"
)

// Config is the token bucket shape: Capacity tokens at most, RefillRate
// tokens added every RefillInterval.
type Config struct {
	Capacity       int           `env:"SUBMIT_RATE_BURST" envDefault:"5"`
	RefillRate     int           `env:"SUBMIT_RATE_REFILL" envDefault:"1"`
	RefillInterval time.Duration `env:"SUBMIT_RATE_INTERVAL" envDefault:"10s"`
}

// DefaultConfig allows a burst of five submissions and one more every ten seconds.
func DefaultConfig() Config {
	return Config{Capacity: 5, RefillRate: 1, RefillInterval: 10 * time.Second}
}

func (c Config) validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	}
	if c.RefillRate <= 0 {
		return fmt.Errorf("%w: refill rate must be positive, got %d", ErrInvalidConfig, c.RefillRate)
	}
	if c.RefillInterval <= 0 {
		return fmt.Errorf("%w: refill interval must be positive, got %v", ErrInvalidConfig, c.RefillInterval)
	}
	return nil
}
