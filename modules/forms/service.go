package forms

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/proapp/binder"
	"github.com/dmitrymomot/proapp/handler"
	"github.com/dmitrymomot/proapp/pkg/clientip"
	"github.com/dmitrymomot/proapp/pkg/logger"
	"github.com/dmitrymomot/proapp/pkg/ratelimiter"
	"github.com/dmitrymomot/proapp/pkg/session"
	"github.com/dmitrymomot/proapp/pkg/submission"
	"github.com/dmitrymomot/proapp/pkg/validator"
)

// ErrSessionRequired is rendered when the session middleware did not run.
var ErrSessionRequired = handler.NewHTTPError(http.StatusBadRequest, "session_required")

// Service serves the form endpoints: blur validation, the submission stream,
// cancellation and state sync.
type Service struct {
	cfg          Config
	registry     *Registry
	errorHandler handler.ErrorHandler[handler.Context]
	limiter      ratelimiter.Limiter
	log          *slog.Logger
}

type ServiceOption func(*Service)

// WithSubmitLimiter throttles submissions per session and form kind.
// Visitors without a session are keyed by client address.
func WithSubmitLimiter(l ratelimiter.Limiter) ServiceOption {
	return func(s *Service) { s.limiter = l }
}

func NewService(cfg Config, registry *Registry, errorHandler handler.ErrorHandler[handler.Context], log *slog.Logger, opts ...ServiceOption) *Service {
	if log == nil {
		log = slog.Default()
	}
	s := &Service{cfg: cfg, registry: registry, errorHandler: errorHandler, log: log}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handle returns the router to mount at /forms.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/{kind}/state", handler.Wrap(s.state,
		handler.WithBinders[handler.Context, kindRequest](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, kindRequest](s.errorHandler),
	))
	r.Post("/{kind}/validate/{field}", handler.Wrap(s.validate,
		handler.WithBinders[handler.Context, validateRequest](binder.Signals(), binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, validateRequest](s.errorHandler),
	))
	r.With(s.throttle()).Post("/{kind}/submit", handler.Wrap(s.submit,
		handler.WithBinders[handler.Context, submitRequest](binder.Signals(), binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, submitRequest](s.errorHandler),
	))
	r.Post("/{kind}/cancel", handler.Wrap(s.cancel,
		handler.WithBinders[handler.Context, kindRequest](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, kindRequest](s.errorHandler),
	))

	return r
}

func (s *Service) throttle() func(http.Handler) http.Handler {
	if s.limiter == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	deny := handler.Wrap(func(handler.Context, struct{}) handler.Response {
		return handler.Error(handler.ErrTooManyRequests)
	}, handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler))

	return ratelimiter.Middleware(s.limiter,
		ratelimiter.Composite(visitorKey, func(r *http.Request) string { return chi.URLParam(r, "kind") }),
		ratelimiter.WithDenyHandler(deny),
		ratelimiter.WithLogger(s.log),
	)
}

func visitorKey(r *http.Request) string {
	if sid, ok := session.IDFromContext(r.Context()); ok {
		return sid
	}
	if ip := clientip.FromContext(r.Context()); ip != "" {
		return ip
	}
	return clientip.GetIP(r)
}

// formSignals is the client-side state of one form as sent by Datastar.
type formSignals struct {
	Values map[string]string `json:"values"`
	Terms  bool              `json:"terms"`
}

type kindRequest struct {
	Kind string `path:"kind"`
}

type validateRequest struct {
	Kind  string                 `path:"kind"`
	Field string                 `path:"field"`
	Forms map[string]formSignals `json:"forms"`
}

type submitRequest struct {
	Kind  string                 `path:"kind"`
	Forms map[string]formSignals `json:"forms"`
}

// submission maps signal keys back to field ids.
func (r submitRequest) submission(def submission.Definition) submission.Submission {
	sig := r.Forms[r.Kind]
	values := make(map[string]string, len(def.Fields))
	for _, f := range def.Fields {
		values[f.ID] = sig.Values[SignalName(f.ID)]
	}
	return submission.Submission{Values: values, TermsAccepted: sig.Terms}
}

func (s *Service) instance(ctx handler.Context, kind string) (*instance, error) {
	sid, _ := session.IDFromContext(ctx)
	inst, err := s.registry.instance(sid, submission.Kind(kind))
	switch {
	case errors.Is(err, ErrNoSession):
		return nil, ErrSessionRequired
	case errors.Is(err, submission.ErrUnknownKind):
		return nil, handler.ErrNotFound
	}
	return inst, err
}

func (s *Service) state(ctx handler.Context, req kindRequest) handler.Response {
	inst, err := s.instance(ctx, req.Kind)
	if err != nil {
		return handler.Error(err)
	}
	return handler.Signals(StateSignals(inst.flow.State()))
}

func (s *Service) validate(ctx handler.Context, req validateRequest) handler.Response {
	inst, err := s.instance(ctx, req.Kind)
	if err != nil {
		return handler.Error(err)
	}

	value := req.Forms[req.Kind].Values[SignalName(req.Field)]
	res, err := inst.flow.Blur(ctx, req.Field, value)
	if errors.Is(err, submission.ErrUnknownField) {
		return handler.Error(handler.ErrNotFound)
	} else if err != nil {
		return handler.Error(err)
	}

	return handler.Signals(FieldSignals(inst.flow.Kind(), req.Field, validator.DecorationFor(res)))
}

func (s *Service) cancel(ctx handler.Context, req kindRequest) handler.Response {
	inst, err := s.instance(ctx, req.Kind)
	if err != nil {
		return handler.Error(err)
	}
	if !inst.flow.Cancel(ctx) {
		return handler.Empty()
	}
	return handler.Signals(StateSignals(inst.flow.State()))
}

func (s *Service) submit(ctx handler.Context, req submitRequest) handler.Response {
	inst, err := s.instance(ctx, req.Kind)
	if err != nil {
		return handler.Error(err)
	}
	sub := req.submission(inst.flow.Definition())

	return handler.SSE(func(stream handler.StreamContext) error {
		return s.follow(stream, inst, sub)
	})
}

// follow submits sub and streams every resulting update until the form
// settles, navigates or the client goes away. A client leaving cancels
// whatever the form still had scheduled.
func (s *Service) follow(stream handler.StreamContext, inst *instance, sub submission.Submission) error {
	flow := inst.flow
	log := s.log.With(logger.FormKind(string(flow.Kind())), logger.FormID(flow.ID()))

	out := newSink(s.cfg.StreamBuffer)
	defer out.close()
	defer inst.relay.attach(out)()
	defer flow.Subscribe(func(st submission.FormState) {
		out.send(message{state: &st})
	})()

	// Submit publishes to out, so the stream is read while it runs.
	submitted := make(chan error, 1)
	go func() { submitted <- flow.Submit(stream, sub) }()

	for {
		select {
		case <-stream.Done():
			// Stop accepting updates first: Cancel notifies this stream's own subscriber.
			out.close()
			if submitted != nil {
				<-submitted
			}
			if flow.Cancel(context.WithoutCancel(stream)) {
				log.InfoContext(stream, "client left, pending form effects cancelled")
			}
			return nil
		case err := <-submitted:
			submitted = nil
			switch {
			case errors.Is(err, submission.ErrSubmissionInProgress):
				log.DebugContext(stream, "joining submission in progress")
				if err := stream.SendSignals(StateSignals(flow.State())); err != nil {
					return err
				}
			case errors.Is(err, submission.ErrValidationFailed), errors.Is(err, submission.ErrTermsNotAccepted):
				log.DebugContext(stream, "submission blocked by validation", logger.Error(err))
			case err != nil:
				return err
			}
			if st := flow.State(); st.Settled() && st.Destination == nil && len(out.ch) == 0 {
				return nil
			}
		case m := <-out.ch:
			switch {
			case m.redirect != "":
				return stream.Redirect(m.redirect)
			case m.announce != "":
				if err := stream.SendSignals(AnnouncementSignals(m.announce)); err != nil {
					return err
				}
			case m.state != nil:
				if err := stream.SendSignals(StateSignals(*m.state)); err != nil {
					return err
				}
				if submitted == nil && m.state.Settled() && m.state.Destination == nil && len(out.ch) == 0 {
					return nil
				}
			}
		}
	}
}
