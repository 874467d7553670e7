package submission

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/proapp/pkg/logger"
	"github.com/dmitrymomot/proapp/pkg/scheduler"
	"github.com/dmitrymomot/proapp/pkg/statemachine"
	"github.com/dmitrymomot/proapp/pkg/validator"
)

type trigger string

const (
	triggerSubmit  trigger = "submit"
	triggerInvalid trigger = "invalid"
	triggerValid   trigger = "valid"
	triggerSucceed trigger = "succeed"
	triggerReject  trigger = "reject"
	triggerExpire  trigger = "expire"
	triggerCancel  trigger = "cancel"
)

// Submission is what the user sent: field values by id and the terms checkbox.
type Submission struct {
	Values        map[string]string
	TermsAccepted bool
}

// Flow drives one form instance from submit to its outcome.
// All methods are safe for concurrent use; effects scheduled after a delay
// run on the scheduler's goroutine and can be discarded with Cancel.
type Flow struct {
	id         string
	def        Definition
	delays     Delays
	clock      scheduler.Scheduler
	tasks      *scheduler.Group
	verifier   CredentialVerifier
	navigator  Navigator
	announcer  Announcer
	translator Translator
	logger     *slog.Logger
	machine    *statemachine.Machine[Phase, trigger]

	// mu guards the machine together with state: a phase change and the
	// state it produces are always committed as one step.
	mu      sync.Mutex
	state   FormState
	run     uint64
	subs    map[int]func(FormState)
	nextSub int

	notifyMu  sync.Mutex
	delivered uint64
}

// NewFlow creates a flow for def in the Idle phase.
func NewFlow(def Definition, opts ...Option) *Flow {
	f := &Flow{
		id:         uuid.NewString(),
		def:        def,
		delays:     DefaultDelays(),
		clock:      scheduler.Real(),
		navigator:  noopNavigator{},
		announcer:  noopAnnouncer{},
		translator: fallbackTranslator{},
		logger:     discardLogger(),
		subs:       make(map[int]func(FormState)),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.verifier == nil && def.Outcome == OutcomeAuthenticate {
		f.verifier = MustDemoVerifier(bcrypt.MinCost)
	}

	f.tasks = scheduler.NewGroup(f.clock)
	f.logger = f.logger.With(logger.FormKind(string(def.Kind)), logger.FormID(f.id))
	f.state = NewState(f.id, def)
	f.machine = newMachine(f.logger)
	return f
}

func newMachine(log *slog.Logger) *statemachine.Machine[Phase, trigger] {
	settled := []Phase{PhaseIdle, PhaseSuccess, PhaseError}
	active := []Phase{PhaseValidating, PhaseLoading, PhaseSuccess, PhaseError}
	return statemachine.New[Phase, trigger](PhaseIdle,
		statemachine.WithTransitionFrom(settled, PhaseValidating, triggerSubmit),
		statemachine.WithTransition(PhaseValidating, PhaseIdle, triggerInvalid),
		statemachine.WithTransition(PhaseValidating, PhaseLoading, triggerValid),
		statemachine.WithTransition(PhaseLoading, PhaseSuccess, triggerSucceed),
		statemachine.WithTransition(PhaseLoading, PhaseError, triggerReject),
		statemachine.WithTransition(PhaseSuccess, PhaseIdle, triggerExpire),
		statemachine.WithTransitionFrom(active, PhaseIdle, triggerCancel),
		statemachine.WithListener(func(from, to Phase, ev trigger) {
			log.Debug("form phase changed",
				slog.String("from", string(from)),
				logger.Phase(string(to)),
				logger.Event(string(ev)),
			)
		}),
	)
}

// ID returns the form instance id.
func (f *Flow) ID() string { return f.id }

// Kind returns the form kind.
func (f *Flow) Kind() Kind { return f.def.Kind }

// Definition returns the form definition.
func (f *Flow) Definition() Definition { return f.def }

// State returns a snapshot of the current form state.
func (f *Flow) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.clone()
}

// Subscribe registers fn to receive every new state, in order. fn is called
// outside the flow's lock, possibly from a scheduler goroutine, and must not
// call back into the flow. The returned function removes the subscription.
func (f *Flow) Subscribe(fn func(FormState)) (unsubscribe func()) {
	f.mu.Lock()
	id := f.nextSub
	f.nextSub++
	f.subs[id] = fn
	f.mu.Unlock()

	return func() {
		f.mu.Lock()
		delete(f.subs, id)
		f.mu.Unlock()
	}
}

// Blur validates a single field, as when the input loses focus.
func (f *Flow) Blur(ctx context.Context, fieldID, value string) (validator.Result, error) {
	spec, ok := f.def.Field(fieldID)
	if !ok {
		return validator.Result{}, ErrUnknownField
	}
	res := f.validate(ctx, spec, value)
	f.logger.DebugContext(ctx, "field validated", logger.Field(fieldID), slog.Bool("valid", res.Valid))
	f.apply(FieldValidated{ID: fieldID, Value: value, Result: res})
	return res, nil
}

// Submit validates every field and, when all pass, enters Loading and
// schedules the outcome. Validation failures return an error joined with
// ErrValidationFailed and/or ErrTermsNotAccepted; they only update field
// decorations and the terms error, the phase and pending effects stay as they were.
// A submit while validating or loading returns ErrSubmissionInProgress.
//
// An accepted submit discards effects still pending from a previous one.
func (f *Flow) Submit(ctx context.Context, sub Submission) error {
	if f.busy() {
		return ErrSubmissionInProgress
	}

	var (
		events []Event
		verrs  validator.ValidationErrors
		errs   []error
	)
	for _, spec := range f.def.Fields {
		value := sub.Values[spec.ID]
		res := f.validate(ctx, spec, value)
		events = append(events, FieldValidated{ID: spec.ID, Value: value, Result: res})
		if !res.Valid {
			verrs.Add(*res.Error)
		}
	}
	if !verrs.IsEmpty() {
		errs = append(errs, ErrValidationFailed, verrs)
	}
	if f.def.RequiresTerms {
		events = append(events, TermsChecked{
			Accepted: sub.TermsAccepted,
			Message:  f.text(ctx, KeyTermsRequired, nil),
		})
		if !sub.TermsAccepted {
			errs = append(errs, ErrTermsNotAccepted)
		}
	}

	if len(errs) > 0 {
		f.logger.InfoContext(ctx, "form submission blocked",
			slog.Any("fields", verrs.Fields()),
			slog.Bool("terms_accepted", sub.TermsAccepted || !f.def.RequiresTerms),
		)
		f.announcer.Announce(ctx, f.text(ctx, KeyValidationFailed, nil))
		if !f.decorate(events...) {
			return ErrSubmissionInProgress
		}
		return errors.Join(errs...)
	}

	run, err := f.begin(ctx, append(events, PhaseChanged{Phase: PhaseLoading}, SuccessExpired{}, LoadingStarted{})...)
	if err != nil {
		return err
	}
	f.logger.InfoContext(ctx, "form submitted", logger.Duration(f.delays.loading(f.def.Outcome)))
	f.announcer.Announce(ctx, f.text(ctx, KeySubmitting, nil))

	// Deferred effects outlive the request that triggered them; Cancel stops them.
	detached := context.WithoutCancel(ctx)
	values := copyValues(sub.Values)
	f.tasks.AfterFunc(f.delays.loading(f.def.Outcome), func() {
		f.finishLoading(detached, run, values)
	})
	return nil
}

// begin moves the machine through Validating into Loading, starts a new run
// and discards effects of the previous one.
func (f *Flow) begin(ctx context.Context, events ...Event) (uint64, error) {
	f.mu.Lock()
	if err := f.machine.Fire(ctx, triggerSubmit); err != nil {
		f.mu.Unlock()
		if statemachine.IsNoTransitionAvailableError(err) {
			return 0, ErrSubmissionInProgress
		}
		return 0, err
	}
	if err := f.machine.Fire(ctx, triggerValid); err != nil {
		f.mu.Unlock()
		return 0, err
	}
	f.run++
	run := f.run
	snapshot, subs := f.reduceLocked(events...)
	f.mu.Unlock()

	if n := f.tasks.StopAll(); n > 0 {
		f.logger.DebugContext(ctx, "discarded pending form effects", slog.Int("count", n))
	}
	f.notify(snapshot, subs)
	return run, nil
}

// Cancel discards every pending delayed effect and returns the form to Idle.
// It reports whether there was anything to cancel. Effects of the cancelled
// run that are already executing are dropped before they change the state.
func (f *Flow) Cancel(ctx context.Context) bool {
	stopped := f.tasks.StopAll()

	f.mu.Lock()
	f.run++
	if err := f.machine.Fire(ctx, triggerCancel); err != nil {
		f.mu.Unlock()
		return stopped > 0
	}
	snapshot, subs := f.reduceLocked(PhaseChanged{Phase: PhaseIdle}, Cancelled{})
	f.mu.Unlock()

	f.notify(snapshot, subs)
	f.logger.InfoContext(ctx, "form cancelled", slog.Int("discarded", stopped))
	return true
}

func (f *Flow) finishLoading(ctx context.Context, run uint64, values map[string]string) {
	switch f.def.Outcome {
	case OutcomeAuthenticate:
		f.authenticate(ctx, run, values)
	case OutcomeRedirect:
		if !f.current(run) {
			return
		}
		f.announcer.Announce(ctx, f.text(ctx, SuccessKey(f.def.Kind), nil))
		if !f.commit(ctx, run, triggerSucceed, PhaseChanged{Phase: PhaseSuccess}, LoadingFinished{}, SuccessShown{}) {
			return
		}
		f.tasks.AfterFunc(f.delays.Redirect, func() {
			if f.commit(ctx, run, "", Navigated{Destination: f.def.Destination}) {
				f.navigate(ctx, run, f.def.Destination)
			}
		})
	default:
		if !f.current(run) {
			return
		}
		f.announcer.Announce(ctx, f.text(ctx, SuccessKey(f.def.Kind), nil))
		if !f.commit(ctx, run, triggerSucceed, PhaseChanged{Phase: PhaseSuccess}, LoadingFinished{}, SuccessShown{}, FormReset{}) {
			return
		}
		if f.def.ExpireSuccess {
			f.tasks.AfterFunc(f.delays.SuccessExpiry, func() {
				f.commit(ctx, run, triggerExpire, PhaseChanged{Phase: PhaseIdle}, SuccessExpired{})
			})
		}
	}
}

func (f *Flow) authenticate(ctx context.Context, run uint64, values map[string]string) {
	email, password := values[f.def.EmailField], values[f.def.PasswordField]
	if !f.current(run) {
		return
	}
	if f.verifier.Verify(email, password) {
		f.announcer.Announce(ctx, f.text(ctx, KeyLoginSuccess, nil))
		dest := f.def.Destination
		if f.commit(ctx, run, triggerSucceed, PhaseChanged{Phase: PhaseSuccess}, LoadingFinished{}, Navigated{Destination: dest}) {
			f.navigate(ctx, run, dest)
		}
		return
	}

	f.logger.InfoContext(ctx, "login rejected", logger.Error(ErrAuthenticationRejected))
	f.announcer.Announce(ctx, f.text(ctx, KeyLoginRejected, nil))
	f.commit(ctx, run, triggerReject, PhaseChanged{Phase: PhaseError}, LoadingFinished{}, LoginRejected{})
}

// navigate hands dest to the navigator unless the run was cancelled after the
// Navigated state was committed. The state carries the destination before the
// navigation fires so subscribers never see a settled state about to move.
func (f *Flow) navigate(ctx context.Context, run uint64, dest Destination) {
	if !f.current(run) {
		return
	}
	f.logger.InfoContext(ctx, "form navigating", slog.String("url", dest.URL()))
	if err := f.navigator.Navigate(ctx, dest); err != nil {
		f.logger.WarnContext(ctx, "navigation failed", logger.Error(err))
	}
}

// commit fires t (when set) and reduces events as one step, provided run is
// still the current one. A false result means the flow moved on (cancelled or
// resubmitted) and the caller is stale.
func (f *Flow) commit(ctx context.Context, run uint64, t trigger, events ...Event) bool {
	f.mu.Lock()
	if run != f.run {
		f.mu.Unlock()
		f.logger.DebugContext(ctx, "stale form effect skipped", logger.Event(string(t)))
		return false
	}
	if t != "" {
		if err := f.machine.Fire(ctx, t); err != nil {
			f.mu.Unlock()
			f.logger.DebugContext(ctx, "stale form effect skipped", logger.Event(string(t)), logger.Error(err))
			return false
		}
	}
	snapshot, subs := f.reduceLocked(events...)
	f.mu.Unlock()

	f.notify(snapshot, subs)
	return true
}

func (f *Flow) current(run uint64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return run == f.run
}

func (f *Flow) busy() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch f.machine.Current() {
	case PhaseValidating, PhaseLoading:
		return true
	}
	return false
}

// decorate applies validation events without a phase change. It refuses
// while a submission is in flight.
func (f *Flow) decorate(events ...Event) bool {
	f.mu.Lock()
	switch f.machine.Current() {
	case PhaseValidating, PhaseLoading:
		f.mu.Unlock()
		return false
	}
	snapshot, subs := f.reduceLocked(events...)
	f.mu.Unlock()

	f.notify(snapshot, subs)
	return true
}

func (f *Flow) validate(ctx context.Context, spec validator.FieldSpec, value string) validator.Result {
	label := f.translator.Translate(ctx, LabelKey(spec.ID), spec.Label, nil)
	res := validator.Validate(validator.Field{ID: spec.ID, Label: label, Value: value}, spec.Rules)
	if !res.Valid && res.Error != nil {
		res.Message = f.translator.Translate(ctx, res.Error.TranslationKey, res.Message, res.Error.TranslationValues)
		res.Error.Message = res.Message
	}
	return res
}

func (f *Flow) text(ctx context.Context, key string, values map[string]any) string {
	return f.translator.Translate(ctx, key, Fallback(key), values)
}

func (f *Flow) apply(events ...Event) {
	f.mu.Lock()
	snapshot, subs := f.reduceLocked(events...)
	f.mu.Unlock()

	f.notify(snapshot, subs)
}

func (f *Flow) reduceLocked(events ...Event) (FormState, []func(FormState)) {
	f.state = Reduce(f.state, events...)
	subs := make([]func(FormState), 0, len(f.subs))
	for _, fn := range f.subs {
		subs = append(subs, fn)
	}
	return f.state.clone(), subs
}

// notify delivers snapshot unless a newer state already went out.
func (f *Flow) notify(snapshot FormState, subs []func(FormState)) {
	f.notifyMu.Lock()
	defer f.notifyMu.Unlock()
	if snapshot.Version <= f.delivered {
		return
	}
	f.delivered = snapshot.Version
	for _, fn := range subs {
		fn(snapshot.clone())
	}
}

func copyValues(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
