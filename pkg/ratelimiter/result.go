package ratelimiter

import "time"

// Result describes one rate limit decision.
type Result struct {
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Allowed reports whether the request fit in the bucket. A denied request
// leaves Remaining negative.
func (r Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter is how long a denied caller should wait, measured from now.
func (r Result) RetryAfter(now time.Time) time.Duration {
	if r.Allowed() {
		return 0
	}
	return max(r.ResetAt.Sub(now), 0)
}
