package session

import "time"

// Store backends selectable through SESSION_STORE.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

type Config struct {
	Store          string        `env:"SESSION_STORE" envDefault:"memory"`
	CookieName     string        `env:"SESSION_COOKIE" envDefault:"proapp_session"`
	TTL            time.Duration `env:"SESSION_TTL" envDefault:"720h"`
	Secure         bool          `env:"SESSION_SECURE" envDefault:"false"`
	RedisKeyPrefix string        `env:"SESSION_REDIS_PREFIX" envDefault:"proapp:session:"`
}

// DefaultConfig mirrors the env defaults.
func DefaultConfig() Config {
	return Config{
		Store:          StoreMemory,
		CookieName:     "proapp_session",
		TTL:            720 * time.Hour,
		RedisKeyPrefix: DefaultRedisPrefix,
	}
}
