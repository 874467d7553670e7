package main

import (
	"github.com/dmitrymomot/proapp/modules/forms"
	"github.com/dmitrymomot/proapp/pkg/httpserver"
	"github.com/dmitrymomot/proapp/pkg/ratelimiter"
	"github.com/dmitrymomot/proapp/pkg/redis"
	"github.com/dmitrymomot/proapp/pkg/session"
	"github.com/dmitrymomot/proapp/pkg/submission"
)

// appConfig is the process configuration, read from the environment and ./.env.
type appConfig struct {
	Env             string `env:"APP_ENV" envDefault:"development"`
	Name            string `env:"APP_NAME" envDefault:"proapp"`
	LogLevel        string `env:"LOG_LEVEL"`
	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"en"`

	HTTP    httpserver.Config
	Session session.Config
	Redis   redis.Config
	Delays  submission.Delays
	Forms   forms.Config
	Limit   ratelimiter.Config
}

const (
	storeMemory = "memory"
	storeRedis  = "redis"
)
