// Package config loads typed configuration from environment variables with
// github.com/caarlos0/env, after reading an optional .env file with
// github.com/joho/godotenv.
//
// Each struct type is parsed once and cached; Reset clears the cache for
// tests. Parse reads from an explicit map instead of the environment.
package config
