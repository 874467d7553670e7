package forms

import (
	"fmt"
	"time"
)

// MinStreamBuffer is the smallest per-stream queue: a submit emits an
// announcement and a state before its stream is read.
const MinStreamBuffer = 4

// Config controls form instance lifetime and streaming.
type Config struct {
	// IdleTTL is how long a settled form instance is kept after its last use.
	IdleTTL time.Duration `env:"FORM_IDLE_TTL" envDefault:"30m"`
	// StreamBuffer is the number of updates queued per client stream.
	StreamBuffer int `env:"FORM_STREAM_BUFFER" envDefault:"16"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{IdleTTL: 30 * time.Minute, StreamBuffer: 16}
}

// Validate reports settings the module cannot run with.
func (c Config) Validate() error {
	if c.IdleTTL <= 0 {
		return fmt.Errorf("%w: idle ttl must be positive, got %v", ErrInvalidConfig, c.IdleTTL)
	}
	if c.StreamBuffer < MinStreamBuffer {
		return fmt.Errorf("%w: stream buffer must be at least %d, got %d", ErrInvalidConfig, MinStreamBuffer, c.StreamBuffer)
	}
	return nil
}
