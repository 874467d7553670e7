// Package ratelimiter is a token bucket limiter with an in-memory store and
// net/http middleware. ProApp uses it to throttle form submissions per
// session.
//
//	limiter, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(), ratelimiter.DefaultConfig())
//	mw := ratelimiter.Middleware(limiter, keyFunc, ratelimiter.WithDenyHandler(deny))
package ratelimiter
