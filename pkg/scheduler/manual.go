package scheduler

import (
	"sort"
	"sync"
	"time"
)

// Manual is a deterministic Scheduler whose time only moves on Advance.
// Callbacks run synchronously inside Advance, ordered by due time and then by
// scheduling order.
type Manual struct {
	mu    sync.Mutex
	now   time.Duration
	seq   uint64
	tasks []*manualTask
}

type manualTask struct {
	m       *Manual
	due     time.Duration
	seq     uint64
	fn      func()
	stopped bool
	fired   bool
}

func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) AfterFunc(d time.Duration, fn func()) Task {
	m.mu.Lock()
	defer m.mu.Unlock()

	if d < 0 {
		d = 0
	}
	m.seq++
	t := &manualTask{m: m, due: m.now + d, seq: m.seq, fn: fn}
	m.tasks = append(m.tasks, t)
	return t
}

func (t *manualTask) Stop() bool {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Advance moves time forward by d and runs every callback that became due,
// including callbacks scheduled by other callbacks within the window.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	for {
		m.mu.Lock()
		next := m.nextDue(target)
		if next == nil {
			m.now = target
			m.mu.Unlock()
			return
		}
		m.now = next.due
		next.fired = true
		m.mu.Unlock()

		next.fn()
	}
}

// Elapsed reports the manual clock's current offset.
func (m *Manual) Elapsed() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Pending reports the number of callbacks that have neither run nor been stopped.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.tasks {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// nextDue must be called with the lock held. It also drops finished tasks.
func (m *Manual) nextDue(limit time.Duration) *manualTask {
	live := m.tasks[:0]
	for _, t := range m.tasks {
		if !t.stopped && !t.fired {
			live = append(live, t)
		}
	}
	m.tasks = live

	sort.SliceStable(m.tasks, func(i, j int) bool {
		if m.tasks[i].due != m.tasks[j].due {
			return m.tasks[i].due < m.tasks[j].due
		}
		return m.tasks[i].seq < m.tasks[j].seq
	})
	if len(m.tasks) == 0 || m.tasks[0].due > limit {
		return nil
	}
	return m.tasks[0]
}
