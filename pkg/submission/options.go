package submission

import (
	"io"
	"log/slog"

	"github.com/dmitrymomot/proapp/pkg/scheduler"
)

// Option configures a Flow.
type Option func(*Flow)

// WithID sets the form instance id. A random id is generated otherwise.
func WithID(id string) Option {
	return func(f *Flow) {
		if id != "" {
			f.id = id
		}
	}
}

// WithScheduler sets the scheduler used for artificial delays.
func WithScheduler(s scheduler.Scheduler) Option {
	return func(f *Flow) {
		if s != nil {
			f.clock = s
		}
	}
}

func WithDelays(d Delays) Option {
	return func(f *Flow) { f.delays = d }
}

func WithVerifier(v CredentialVerifier) Option {
	return func(f *Flow) {
		if v != nil {
			f.verifier = v
		}
	}
}

func WithNavigator(n Navigator) Option {
	return func(f *Flow) {
		if n != nil {
			f.navigator = n
		}
	}
}

func WithAnnouncer(a Announcer) Option {
	return func(f *Flow) {
		if a != nil {
			f.announcer = a
		}
	}
}

func WithTranslator(t Translator) Option {
	return func(f *Flow) {
		if t != nil {
			f.translator = t
		}
	}
}

// WithLogger sets the logger for the informational trace. Discarded by default.
func WithLogger(l *slog.Logger) Option {
	return func(f *Flow) {
		if l != nil {
			f.logger = l
		}
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
