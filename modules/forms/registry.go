package forms

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/proapp/pkg/logger"
	"github.com/dmitrymomot/proapp/pkg/submission"
)

type instanceKey struct {
	session string
	kind    submission.Kind
}

type instance struct {
	flow     *submission.Flow
	relay    *relay
	lastUsed time.Time
}

// Registry holds one form instance per session and form kind.
// Settled instances unused for longer than the idle TTL are dropped lazily.
type Registry struct {
	idle     time.Duration
	now      func() time.Time
	flowOpts []submission.Option
	log      *slog.Logger

	mu        sync.Mutex
	instances map[instanceKey]*instance
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithIdleTTL sets how long settled instances survive without use.
func WithIdleTTL(d time.Duration) RegistryOption {
	return func(r *Registry) {
		if d > 0 {
			r.idle = d
		}
	}
}

// WithFlowOptions sets options applied to every new flow.
func WithFlowOptions(opts ...submission.Option) RegistryOption {
	return func(r *Registry) {
		r.flowOpts = append(r.flowOpts, opts...)
	}
}

// WithLogger sets the base logger of the registry and its flows.
func WithLogger(l *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// WithClock replaces time.Now for eviction decisions.
func WithClock(now func() time.Time) RegistryOption {
	return func(r *Registry) {
		if now != nil {
			r.now = now
		}
	}
}

func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		idle:      DefaultConfig().IdleTTL,
		now:       time.Now,
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		instances: make(map[instanceKey]*instance),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Flow returns the form instance of kind for the session, creating it on first use.
func (r *Registry) Flow(sessionID string, kind submission.Kind) (*submission.Flow, error) {
	inst, err := r.instance(sessionID, kind)
	if err != nil {
		return nil, err
	}
	return inst.flow, nil
}

func (r *Registry) instance(sessionID string, kind submission.Kind) (*instance, error) {
	if sessionID == "" {
		return nil, ErrNoSession
	}
	def, err := submission.Lookup(kind)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.evictLocked(now)

	key := instanceKey{session: sessionID, kind: kind}
	if inst, ok := r.instances[key]; ok {
		inst.lastUsed = now
		return inst, nil
	}

	rel := newRelay()
	opts := append([]submission.Option{
		submission.WithLogger(r.log.With(logger.SessionID(sessionID))),
	}, r.flowOpts...)
	opts = append(opts, submission.WithNavigator(rel), submission.WithAnnouncer(rel))

	inst := &instance{flow: submission.NewFlow(def, opts...), relay: rel, lastUsed: now}
	r.instances[key] = inst
	r.log.Debug("form instance created",
		logger.SessionID(sessionID),
		logger.FormKind(string(kind)),
		logger.FormID(inst.flow.ID()),
	)
	return inst, nil
}

func (r *Registry) evictLocked(now time.Time) {
	for key, inst := range r.instances {
		if now.Sub(inst.lastUsed) > r.idle && inst.flow.State().Settled() {
			delete(r.instances, key)
		}
	}
}

// Forget cancels and removes every form instance of a session.
// It returns how many instances were removed.
func (r *Registry) Forget(ctx context.Context, sessionID string) int {
	r.mu.Lock()
	var flows []*submission.Flow
	for key, inst := range r.instances {
		if key.session == sessionID {
			flows = append(flows, inst.flow)
			delete(r.instances, key)
		}
	}
	r.mu.Unlock()

	for _, f := range flows {
		f.Cancel(ctx)
	}
	return len(flows)
}

// Len returns the number of live form instances.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.instances)
}
