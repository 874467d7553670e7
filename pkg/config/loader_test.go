package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/proapp/pkg/config"
)

type defaultsConfig struct {
	Name    string        `env:"CFG_TEST_NAME" envDefault:"proapp"`
	Delay   time.Duration `env:"CFG_TEST_DELAY" envDefault:"1500ms"`
	Enabled bool          `env:"CFG_TEST_ENABLED" envDefault:"true"`
}

type overrideConfig struct {
	Name string `env:"CFG_TEST_OVERRIDE" envDefault:"default"`
}

type cachedConfig struct {
	Name string `env:"CFG_TEST_CACHED" envDefault:"default"`
}

type requiredConfig struct {
	Secret string `env:"CFG_TEST_REQUIRED,required"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "proapp", cfg.Name)
	assert.Equal(t, 1500*time.Millisecond, cfg.Delay)
	assert.True(t, cfg.Enabled)
}

func TestLoad_Override(t *testing.T) {
	t.Setenv("CFG_TEST_OVERRIDE", "custom")

	var cfg overrideConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "custom", cfg.Name)
}

func TestLoad_CachedPerType(t *testing.T) {
	t.Setenv("CFG_TEST_CACHED", "first")
	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("CFG_TEST_CACHED", "second")
	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Name)

	config.Reset()
	var third cachedConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second", third.Name)
}

func TestLoad_RequiredMissingCanRetry(t *testing.T) {
	os.Unsetenv("CFG_TEST_REQUIRED")

	var cfg requiredConfig
	err := config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	t.Setenv("CFG_TEST_REQUIRED", "s3cret")
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "s3cret", cfg.Secret)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *defaultsConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestParse(t *testing.T) {
	t.Parallel()

	var cfg defaultsConfig
	require.NoError(t, config.Parse(&cfg, map[string]string{"CFG_TEST_DELAY": "2s"}))
	assert.Equal(t, 2*time.Second, cfg.Delay)
	assert.Equal(t, "proapp", cfg.Name)

	var bad defaultsConfig
	assert.ErrorIs(t, config.Parse(&bad, map[string]string{"CFG_TEST_DELAY": "soon"}), config.ErrParsingConfig)
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("CFG_TEST_FROM_FILE=from-file\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("CFG_TEST_FROM_FILE") })

	require.NoError(t, config.LoadEnv(path))
	assert.Equal(t, "from-file", os.Getenv("CFG_TEST_FROM_FILE"))

	err := config.LoadEnv(filepath.Join(dir, "missing.env"))
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}
