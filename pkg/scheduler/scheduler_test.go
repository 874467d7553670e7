package scheduler_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/proapp/pkg/scheduler"
)

func TestManual_RunsInDueOrder(t *testing.T) {
	t.Parallel()

	clock := scheduler.NewManual()
	var got []string
	clock.AfterFunc(2*time.Second, func() { got = append(got, "b") })
	clock.AfterFunc(time.Second, func() { got = append(got, "a") })
	clock.AfterFunc(2*time.Second, func() { got = append(got, "c") })

	clock.Advance(999 * time.Millisecond)
	assert.Empty(t, got)
	assert.Equal(t, 3, clock.Pending())

	clock.Advance(time.Millisecond)
	assert.Equal(t, []string{"a"}, got)

	clock.Advance(time.Second)
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Equal(t, 2*time.Second, clock.Elapsed())
	assert.Zero(t, clock.Pending())
}

func TestManual_NestedScheduling(t *testing.T) {
	t.Parallel()

	clock := scheduler.NewManual()
	var got []time.Duration
	clock.AfterFunc(2*time.Second, func() {
		got = append(got, clock.Elapsed())
		clock.AfterFunc(2*time.Second, func() { got = append(got, clock.Elapsed()) })
	})

	clock.Advance(5 * time.Second)
	assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second}, got)
}

func TestManual_Stop(t *testing.T) {
	t.Parallel()

	clock := scheduler.NewManual()
	ran := false
	task := clock.AfterFunc(time.Second, func() { ran = true })

	assert.True(t, task.Stop())
	assert.False(t, task.Stop())
	clock.Advance(time.Minute)
	assert.False(t, ran)

	fired := clock.AfterFunc(time.Second, func() {})
	clock.Advance(time.Second)
	assert.False(t, fired.Stop())
}

func TestGroup_StopAll(t *testing.T) {
	t.Parallel()

	clock := scheduler.NewManual()
	g := scheduler.NewGroup(clock)

	var ran int
	g.AfterFunc(time.Second, func() { ran++ })
	g.AfterFunc(2*time.Second, func() { ran++ })
	assert.Equal(t, 2, g.Len())

	clock.Advance(time.Second)
	assert.Equal(t, 1, ran)
	assert.Equal(t, 1, g.Len())

	assert.Equal(t, 1, g.StopAll())
	clock.Advance(time.Minute)
	assert.Equal(t, 1, ran)
	assert.Zero(t, g.Len())
}

func TestReal_AfterFunc(t *testing.T) {
	t.Parallel()

	var ran atomic.Bool
	done := make(chan struct{})
	scheduler.Real().AfterFunc(time.Millisecond, func() {
		ran.Store(true)
		close(done)
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("callback did not run")
	}
	assert.True(t, ran.Load())
}

func TestGroup_RealStop(t *testing.T) {
	t.Parallel()

	g := scheduler.NewGroup(scheduler.Real())
	var ran atomic.Bool
	g.AfterFunc(50*time.Millisecond, func() { ran.Store(true) })
	require.Equal(t, 1, g.StopAll())

	time.Sleep(100 * time.Millisecond)
	assert.False(t, ran.Load())
}
