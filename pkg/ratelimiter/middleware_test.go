package ratelimiter_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/proapp/pkg/ratelimiter"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})
}

func byHeader(name string) ratelimiter.KeyFunc {
	return func(r *http.Request) string { return r.Header.Get(name) }
}

func TestMiddleware(t *testing.T) {
	t.Parallel()
	c := newClock()
	b := newBucket(t, c)

	denied := false
	h := ratelimiter.Middleware(b, byHeader("X-Session"),
		ratelimiter.WithNow(c.Now),
		ratelimiter.WithDenyHandler(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			denied = true
			w.WriteHeader(http.StatusTooManyRequests)
		})),
	)(okHandler())

	send := func(session string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/forms/contact/submit", nil)
		if session != "" {
			req.Header.Set("X-Session", session)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	for i := 0; i < testConfig.Capacity; i++ {
		rec := send("s1")
		require.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, "3", rec.Header().Get("X-RateLimit-Limit"))
	}
	assert.False(t, denied)

	rec := send("s1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.True(t, denied)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "10", rec.Header().Get("Retry-After"))

	t.Run("empty key is not limited", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			assert.Equal(t, http.StatusAccepted, send("").Code)
		}
	})
}

func TestMiddleware_DefaultDeny(t *testing.T) {
	t.Parallel()
	b, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(), ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Minute})
	require.NoError(t, err)
	h := ratelimiter.Middleware(b, func(*http.Request) string { return "k" })(okHandler())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusAccepted, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestComposite(t *testing.T) {
	t.Parallel()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("A", "session")
	req.Header.Set("B", "login")
	req.Header.Set("Long", strings.Repeat("x", 80))

	assert.Equal(t, "session:login", ratelimiter.Composite(byHeader("A"), byHeader("Missing"), byHeader("B"))(req))
	assert.Equal(t, "", ratelimiter.Composite(byHeader("Missing"))(req))

	hashed := ratelimiter.Composite(byHeader("A"), byHeader("Long"))(req)
	assert.LessOrEqual(t, len(hashed), 64)
	assert.NotContains(t, hashed, ":")
	assert.Equal(t, hashed, ratelimiter.Composite(byHeader("A"), byHeader("Long"))(req))
}
