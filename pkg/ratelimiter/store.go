package ratelimiter

import (
	"context"
	"sync"
	"time"
)

// Store keeps bucket state per key.
type Store interface {
	// ConsumeTokens refills the bucket for the elapsed time and takes tokens
	// from it. A negative remaining count means the request must be denied;
	// denied requests do not consume.
	ConsumeTokens(ctx context.Context, key string, tokens int, cfg Config) (remaining int, resetAt time.Time, err error)
	Reset(ctx context.Context, key string) error
}

type bucket struct {
	tokens     int
	lastRefill time.Time
	lastAccess time.Time
}

// MemoryStore is a process-local Store. Buckets untouched for StaleAfter are
// swept on access.
type MemoryStore struct {
	mu         sync.Mutex
	buckets    map[string]*bucket
	now        func() time.Time
	staleAfter time.Duration
	lastSweep  time.Time
}

type MemoryStoreOption func(*MemoryStore)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) MemoryStoreOption {
	return func(s *MemoryStore) {
		if now != nil {
			s.now = now
		}
	}
}

// WithStaleAfter sets how long an idle bucket is kept. Zero keeps buckets forever.
func WithStaleAfter(d time.Duration) MemoryStoreOption {
	return func(s *MemoryStore) { s.staleAfter = d }
}

func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	s := &MemoryStore{
		buckets:    make(map[string]*bucket),
		now:        time.Now,
		staleAfter: time.Hour,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemoryStore) ConsumeTokens(_ context.Context, key string, tokens int, cfg Config) (int, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweepLocked(now)

	b, ok := s.buckets[key]
	if !ok {
		b = &bucket{tokens: cfg.Capacity, lastRefill: now}
		s.buckets[key] = b
	}
	b.lastAccess = now

	// Whole intervals only, capped so a long idle period cannot overflow.
	intervals := min(int64(now.Sub(b.lastRefill)/cfg.RefillInterval), int64(cfg.Capacity/cfg.RefillRate+1))
	if intervals > 0 {
		b.tokens = min(b.tokens+int(intervals)*cfg.RefillRate, cfg.Capacity)
		b.lastRefill = b.lastRefill.Add(time.Duration(intervals) * cfg.RefillInterval)
		if b.tokens == cfg.Capacity {
			b.lastRefill = now
		}
	}

	resetAt := b.lastRefill.Add(cfg.RefillInterval)
	if b.tokens < tokens {
		return b.tokens - tokens, resetAt, nil
	}
	b.tokens -= tokens
	return b.tokens, resetAt, nil
}

func (s *MemoryStore) Reset(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.buckets, key)
	s.mu.Unlock()
	return nil
}

// Len returns the number of tracked buckets.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.buckets)
}

func (s *MemoryStore) sweepLocked(now time.Time) {
	if s.staleAfter <= 0 || now.Sub(s.lastSweep) < s.staleAfter {
		return
	}
	s.lastSweep = now
	for key, b := range s.buckets {
		if now.Sub(b.lastAccess) > s.staleAfter {
			delete(s.buckets, key)
		}
	}
}
