package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/proapp/pkg/config"
)

func TestAppConfigDefaults(t *testing.T) {
	t.Parallel()

	var cfg appConfig
	require.NoError(t, config.Parse(&cfg, map[string]string{}))

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "en", cfg.DefaultLanguage)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, storeMemory, cfg.Session.Store)
	assert.Equal(t, 2*time.Second, cfg.Delays.Submit)
	assert.Equal(t, 1500*time.Millisecond, cfg.Delays.Login)
	assert.Equal(t, 5*time.Second, cfg.Delays.SuccessExpiry)
	assert.Equal(t, 30*time.Minute, cfg.Forms.IdleTTL)
	assert.Equal(t, 5, cfg.Limit.Capacity)
	assert.Equal(t, 10*time.Second, cfg.Limit.RefillInterval)
}

func TestAppConfigOverrides(t *testing.T) {
	t.Parallel()

	var cfg appConfig
	require.NoError(t, config.Parse(&cfg, map[string]string{
		"SESSION_STORE":     "redis",
		"REDIS_URL":         "redis://cache:6379/1",
		"FORM_SUBMIT_DELAY": "250ms",
		"DEFAULT_LANGUAGE":  "es",
	}))

	assert.Equal(t, storeRedis, cfg.Session.Store)
	assert.Equal(t, "redis://cache:6379/1", cfg.Redis.ConnectionURL)
	assert.Equal(t, 250*time.Millisecond, cfg.Delays.Submit)
	assert.Equal(t, "es", cfg.DefaultLanguage)
}
