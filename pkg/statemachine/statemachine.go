package statemachine

import (
	"context"
	"fmt"
	"sync"
)

// Action executes side effects during a transition. Returning an error prevents the transition.
type Action[S, E comparable] func(ctx context.Context, from, to S, event E) error

// Guard evaluates whether a transition should be allowed based on runtime conditions.
type Guard[S, E comparable] func(ctx context.Context, from S, event E) bool

// Listener is notified after the state changed.
type Listener[S, E comparable] func(from, to S, event E)

// Transition defines a state change triggered by an event, with optional guards and actions.
type Transition[S, E comparable] struct {
	From    S
	To      S
	Event   E
	Guards  []Guard[S, E]  // All must pass for transition to proceed
	Actions []Action[S, E] // Executed in order before state change
}

// Machine is a thread-safe in-memory finite state machine over typed states and events.
// Transitions are looked up as [from][event][]Transition; the first one whose
// guards pass wins, which allows guard-based branching in priority order.
type Machine[S, E comparable] struct {
	mu          sync.RWMutex
	initial     S
	current     S
	transitions map[S]map[E][]Transition[S, E]
	listeners   []Listener[S, E]
}

func newMachine[S, E comparable](initial S) *Machine[S, E] {
	return &Machine[S, E]{
		initial:     initial,
		current:     initial,
		transitions: make(map[S]map[E][]Transition[S, E]),
	}
}

func (m *Machine[S, E]) Current() S {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

func (m *Machine[S, E]) AddTransition(t Transition[S, E]) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.transitions[t.From]; !ok {
		m.transitions[t.From] = make(map[E][]Transition[S, E])
	}
	m.transitions[t.From][t.Event] = append(m.transitions[t.From][t.Event], t)
}

// OnTransition registers a listener called after every successful transition.
// Listeners run outside the machine lock, in registration order.
func (m *Machine[S, E]) OnTransition(l Listener[S, E]) {
	if l == nil {
		return
	}
	m.mu.Lock()
	m.listeners = append(m.listeners, l)
	m.mu.Unlock()
}

// Fire applies event to the current state.
func (m *Machine[S, E]) Fire(ctx context.Context, event E) error {
	m.mu.Lock()

	from := m.current
	t, err := m.match(ctx, from, event)
	if err != nil {
		m.mu.Unlock()
		return err
	}

	for _, action := range t.Actions {
		if action == nil {
			continue
		}
		if err := action(ctx, from, t.To, event); err != nil {
			m.mu.Unlock()
			return fmt.Errorf("action failed: %w", err)
		}
	}

	m.current = t.To
	listeners := m.listeners
	m.mu.Unlock()

	for _, l := range listeners {
		l(from, t.To, event)
	}
	return nil
}

// CanFire reports whether event would be accepted in the current state.
func (m *Machine[S, E]) CanFire(ctx context.Context, event E) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, err := m.match(ctx, m.current, event)
	return err == nil
}

// Reset returns the machine to its initial state without notifying listeners.
func (m *Machine[S, E]) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.initial
}

// match must be called with the lock held.
func (m *Machine[S, E]) match(ctx context.Context, from S, event E) (*Transition[S, E], error) {
	candidates := m.transitions[from][event]
	if len(candidates) == 0 {
		return nil, NewErrNoTransitionAvailable(from, event)
	}

	for i := range candidates {
		if guardsPass(ctx, candidates[i], from, event) {
			return &candidates[i], nil
		}
	}
	return nil, NewErrTransitionRejected(from, event)
}

func guardsPass[S, E comparable](ctx context.Context, t Transition[S, E], from S, event E) bool {
	for _, guard := range t.Guards {
		if guard != nil && !guard(ctx, from, event) {
			return false
		}
	}
	return true
}
