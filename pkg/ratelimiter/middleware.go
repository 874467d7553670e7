package ratelimiter

import (
	"hash/fnv"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/proapp/pkg/logger"
)

// maxKeyLength bounds stored keys; longer composite keys are hashed.
const maxKeyLength = 64

// KeyFunc extracts the rate limit key of a request. An empty key skips limiting.
type KeyFunc func(r *http.Request) string

// Composite joins the non-empty keys of keyFuncs with ":". Keys longer than
// 64 bytes are replaced by their FNV-1a hash in base 36.
func Composite(keyFuncs ...KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(keyFuncs))
		for _, fn := range keyFuncs {
			if key := fn(r); key != "" {
				parts = append(parts, key)
			}
		}
		if len(parts) == 0 {
			return ""
		}

		combined := strings.Join(parts, ":")
		if len(combined) <= maxKeyLength {
			return combined
		}
		h := fnv.New64a()
		_, _ = h.Write([]byte(combined))
		return strconv.FormatUint(h.Sum64(), 36)
	}
}

type middlewareConfig struct {
	deny http.Handler
	log  *slog.Logger
	now  func() time.Time
}

type MiddlewareOption func(*middlewareConfig)

// WithDenyHandler renders rejected requests. The rate limit headers are
// already set when it runs. Defaults to a plain 429.
func WithDenyHandler(h http.Handler) MiddlewareOption {
	return func(c *middlewareConfig) {
		if h != nil {
			c.deny = h
		}
	}
}

func WithLogger(l *slog.Logger) MiddlewareOption {
	return func(c *middlewareConfig) {
		if l != nil {
			c.log = l
		}
	}
}

// WithNow replaces time.Now when computing Retry-After.
func WithNow(now func() time.Time) MiddlewareOption {
	return func(c *middlewareConfig) {
		if now != nil {
			c.now = now
		}
	}
}

// Middleware limits requests per key and sets the X-RateLimit-* headers.
// A limiter error lets the request through.
func Middleware(l Limiter, keyFunc KeyFunc, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := middlewareConfig{
		deny: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		}),
		log: slog.Default(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyFunc(r)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			res, err := l.Allow(r.Context(), key)
			if err != nil {
				cfg.log.WarnContext(r.Context(), "rate limiter unavailable",
					logger.Component("ratelimiter"),
					logger.Error(err),
				)
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(max(0, res.Remaining)))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

			if !res.Allowed() {
				retry := int(res.RetryAfter(cfg.now()).Round(time.Second).Seconds())
				w.Header().Set("Retry-After", strconv.Itoa(max(retry, 1)))
				cfg.log.InfoContext(r.Context(), "request rate limited",
					logger.Component("ratelimiter"),
					slog.String("key", key),
				)
				cfg.deny.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
