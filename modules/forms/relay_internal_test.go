package forms

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/proapp/pkg/submission"
)

func TestRelay(t *testing.T) {
	t.Parallel()

	t.Run("navigate without streams", func(t *testing.T) {
		t.Parallel()

		err := newRelay().Navigate(context.Background(), submission.Destination{Page: "dashboard", Signal: "logged"})
		assert.ErrorIs(t, err, ErrNoStream)
	})

	t.Run("fans out to attached streams", func(t *testing.T) {
		t.Parallel()

		r := newRelay()
		a, b := newSink(4), newSink(4)
		detachA := r.attach(a)
		r.attach(b)

		require.NoError(t, r.Navigate(context.Background(), submission.Destination{Page: "dashboard", Signal: "registered"}))
		r.Announce(context.Background(), "Account created successfully")
		r.Announce(context.Background(), "")

		for _, s := range []*sink{a, b} {
			assert.Equal(t, "/dashboard?registered=true", (<-s.ch).redirect)
			assert.Equal(t, "Account created successfully", (<-s.ch).announce)
			assert.Empty(t, s.ch)
		}

		detachA()
		r.Announce(context.Background(), "again")
		assert.Empty(t, a.ch)
		assert.Equal(t, "again", (<-b.ch).announce)
	})

	t.Run("closed sink never blocks", func(t *testing.T) {
		t.Parallel()

		s := newSink(1)
		s.send(message{announce: "fills buffer"})
		s.close()
		s.close()

		done := make(chan struct{})
		go func() {
			s.send(message{announce: "dropped"})
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("send blocked on a closed sink")
		}
	})
}
