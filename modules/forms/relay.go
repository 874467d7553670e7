package forms

import (
	"context"
	"sync"

	"github.com/dmitrymomot/proapp/pkg/submission"
)

// message is one update for a client stream. Exactly one member is set.
type message struct {
	state    *submission.FormState
	announce string
	redirect string
}

// sink is the receiving end of one client stream.
type sink struct {
	ch   chan message
	done chan struct{}
	once sync.Once
}

func newSink(size int) *sink {
	if size < MinStreamBuffer {
		size = MinStreamBuffer
	}
	return &sink{ch: make(chan message, size), done: make(chan struct{})}
}

// send blocks until the stream takes m or goes away.
func (s *sink) send(m message) {
	select {
	case s.ch <- m:
	case <-s.done:
	}
}

func (s *sink) close() {
	s.once.Do(func() { close(s.done) })
}

// relay is the navigator and announcer of one form instance. It forwards
// effects to every stream currently following the form.
type relay struct {
	mu    sync.Mutex
	sinks map[int]*sink
	next  int
}

func newRelay() *relay {
	return &relay{sinks: make(map[int]*sink)}
}

func (r *relay) attach(s *sink) (detach func()) {
	r.mu.Lock()
	id := r.next
	r.next++
	r.sinks[id] = s
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		delete(r.sinks, id)
		r.mu.Unlock()
	}
}

func (r *relay) publish(m message) int {
	r.mu.Lock()
	sinks := make([]*sink, 0, len(r.sinks))
	for _, s := range r.sinks {
		sinks = append(sinks, s)
	}
	r.mu.Unlock()

	for _, s := range sinks {
		s.send(m)
	}
	return len(sinks)
}

// Navigate implements submission.Navigator.
func (r *relay) Navigate(_ context.Context, dest submission.Destination) error {
	if r.publish(message{redirect: dest.URL()}) == 0 {
		return ErrNoStream
	}
	return nil
}

// Announce implements submission.Announcer.
func (r *relay) Announce(_ context.Context, msg string) {
	if msg != "" {
		r.publish(message{announce: msg})
	}
}
