package statemachine

// Option configures a machine during construction.
type Option[S, E comparable] func(*Machine[S, E])

// TransitionOption configures a single transition with guards and actions.
type TransitionOption[S, E comparable] func(*Transition[S, E])

// New creates a machine in the given initial state.
func New[S, E comparable](initial S, opts ...Option[S, E]) *Machine[S, E] {
	m := newMachine[S, E](initial)
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// WithTransition adds a transition from -> to on event.
func WithTransition[S, E comparable](from, to S, event E, opts ...TransitionOption[S, E]) Option[S, E] {
	return func(m *Machine[S, E]) {
		t := Transition[S, E]{From: from, To: to, Event: event}
		for _, opt := range opts {
			opt(&t)
		}
		m.AddTransition(t)
	}
}

// WithTransitionFrom adds the same transition from each of the given states.
func WithTransitionFrom[S, E comparable](from []S, to S, event E, opts ...TransitionOption[S, E]) Option[S, E] {
	return func(m *Machine[S, E]) {
		for _, f := range from {
			WithTransition(f, to, event, opts...)(m)
		}
	}
}

// WithListener registers a transition listener.
func WithListener[S, E comparable](l Listener[S, E]) Option[S, E] {
	return func(m *Machine[S, E]) { m.OnTransition(l) }
}

func WithGuard[S, E comparable](guard Guard[S, E]) TransitionOption[S, E] {
	return func(t *Transition[S, E]) {
		if guard != nil {
			t.Guards = append(t.Guards, guard)
		}
	}
}

func WithAction[S, E comparable](action Action[S, E]) TransitionOption[S, E] {
	return func(t *Transition[S, E]) {
		if action != nil {
			t.Actions = append(t.Actions, action)
		}
	}
}
