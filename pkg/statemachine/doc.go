// Package statemachine provides a small, thread-safe finite state machine
// over typed states and events.
//
// States and events are any comparable type, typically string enums:
//
//	type Phase string
//	type Trigger string
//
//	m := statemachine.New[Phase, Trigger](Idle,
//	    statemachine.WithTransition(Idle, Loading, Submit),
//	    statemachine.WithTransition(Loading, Done, Finish,
//	        statemachine.WithGuard(func(ctx context.Context, from Phase, ev Trigger) bool { return ready }),
//	    ),
//	)
//	if err := m.Fire(ctx, Submit); err != nil {
//	    // ErrNoTransitionAvailable or ErrTransitionRejected
//	}
//
// Several transitions may share a (from, event) pair; the first one whose
// guards all pass is taken. Actions run before the state changes and can veto
// it by returning an error. Listeners registered with OnTransition are called
// after the change, outside the lock, so they may read the machine.
package statemachine
