package scheduler

import (
	"sync"
	"time"
)

// Group schedules through a parent Scheduler and remembers its pending tasks
// so they can be cancelled together.
type Group struct {
	parent Scheduler
	mu     sync.Mutex
	next   uint64
	tasks  map[uint64]Task
}

func NewGroup(parent Scheduler) *Group {
	if parent == nil {
		parent = Real()
	}
	return &Group{parent: parent, tasks: make(map[uint64]Task)}
}

func (g *Group) AfterFunc(d time.Duration, fn func()) Task {
	g.mu.Lock()
	g.next++
	id := g.next
	g.tasks[id] = nil
	g.mu.Unlock()

	t := g.parent.AfterFunc(d, func() {
		g.mu.Lock()
		_, live := g.tasks[id]
		delete(g.tasks, id)
		g.mu.Unlock()
		if live {
			fn()
		}
	})

	g.mu.Lock()
	if _, live := g.tasks[id]; live {
		g.tasks[id] = t
	}
	g.mu.Unlock()
	return t
}

// StopAll cancels every pending task of the group and returns how many were stopped.
func (g *Group) StopAll() int {
	g.mu.Lock()
	tasks := g.tasks
	g.tasks = make(map[uint64]Task)
	g.mu.Unlock()

	n := 0
	for _, t := range tasks {
		// A nil entry is a task still being registered; removing it from
		// the map is enough for its callback to skip fn.
		if t == nil {
			n++
			continue
		}
		if t.Stop() {
			n++
		}
	}
	return n
}

// Len reports the number of tasks that have not run or been stopped through the group.
func (g *Group) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.tasks)
}
