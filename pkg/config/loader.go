package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	cache         sync.Map // reflect.Type -> *entry
	dotenvOnce    sync.Once
	dotenvDefault = []string{".env"}
)

type entry struct {
	once  sync.Once
	value any
	err   error
}

// LoadEnv reads the given .env files into the process environment without
// overriding variables that are already set. Missing files are an error.
// After LoadEnv, Load no longer looks for ./.env.
func LoadEnv(paths ...string) error {
	dotenvOnce.Do(func() {})
	if len(paths) == 0 {
		return nil
	}
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load parses the environment into v once per type and serves the cached
// copy afterwards. The first call also loads ./.env when it exists.
//
//	var cfg struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//	if err := config.Load(&cfg); err != nil { ... }
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	dotenvOnce.Do(func() {
		// ./.env is optional.
		_ = godotenv.Load(dotenvDefault...)
	})

	key := reflect.TypeFor[T]()
	actual, _ := cache.LoadOrStore(key, &entry{})
	e := actual.(*entry)
	e.once.Do(func() {
		var parsed T
		if err := env.Parse(&parsed); err != nil {
			e.err = errors.Join(ErrParsingConfig, err)
			return
		}
		e.value = parsed
	})
	if e.err != nil {
		// Allow a retry once the environment is fixed.
		cache.CompareAndDelete(key, e)
		return e.err
	}
	*v = e.value.(T)
	return nil
}

// MustLoad is Load that panics on failure. Use it for settings the process
// cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
}

// Parse fills v from vars only, ignoring the process environment and the
// cache. Tests use it to exercise defaults and overrides.
func Parse[T any](v *T, vars map[string]string) error {
	if v == nil {
		return ErrNilPointer
	}
	if vars == nil {
		vars = map[string]string{}
	}
	if err := env.ParseWithOptions(v, env.Options{Environment: vars}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// Reset drops every cached configuration.
func Reset() {
	cache.Range(func(k, _ any) bool {
		cache.Delete(k)
		return true
	})
}
