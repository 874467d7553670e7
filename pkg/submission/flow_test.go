package submission_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/proapp/pkg/scheduler"
	"github.com/dmitrymomot/proapp/pkg/submission"
	"github.com/dmitrymomot/proapp/pkg/validator"
)

type recorder struct {
	mu        sync.Mutex
	navs      []submission.Destination
	announced []string
}

func (r *recorder) Navigate(_ context.Context, d submission.Destination) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.navs = append(r.navs, d)
	return nil
}

func (r *recorder) Announce(_ context.Context, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.announced = append(r.announced, msg)
}

func (r *recorder) navigations() []submission.Destination {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]submission.Destination(nil), r.navs...)
}

func (r *recorder) messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.announced...)
}

func newFlow(t *testing.T, def submission.Definition, opts ...submission.Option) (*submission.Flow, *scheduler.Manual, *recorder) {
	t.Helper()
	clock := scheduler.NewManual()
	rec := &recorder{}
	base := []submission.Option{
		submission.WithScheduler(clock),
		submission.WithNavigator(rec),
		submission.WithAnnouncer(rec),
		submission.WithVerifier(submission.MustDemoVerifier(bcrypt.MinCost)),
	}
	return submission.NewFlow(def, append(base, opts...)...), clock, rec
}

func validRegistration() submission.Submission {
	return submission.Submission{
		Values: map[string]string{
			"register-name":     "Ana",
			"register-email":    "ana@example.com",
			"register-company":  "Acme",
			"register-password": "Secret123",
		},
		TermsAccepted: true,
	}
}

func validContact() submission.Submission {
	return submission.Submission{
		Values: map[string]string{
			"contact-name":    "Ana",
			"contact-email":   "ana@example.com",
			"contact-subject": "Pricing",
			"contact-message": "I would like a quote",
		},
	}
}

func login(email, password string) submission.Submission {
	return submission.Submission{Values: map[string]string{
		"login-email":    email,
		"login-password": password,
	}}
}

func TestFlow_LoginSuccess(t *testing.T) {
	t.Parallel()

	flow, clock, rec := newFlow(t, submission.LoginForm())
	ctx := context.Background()

	require.NoError(t, flow.Submit(ctx, login(submission.DemoEmail, submission.DemoPassword)))

	s := flow.State()
	assert.Equal(t, submission.PhaseLoading, s.Phase)
	assert.True(t, s.LoadingVisible)
	assert.True(t, s.SubmitDisabled)

	clock.Advance(1499 * time.Millisecond)
	assert.Empty(t, rec.navigations())

	clock.Advance(time.Millisecond)
	navs := rec.navigations()
	require.Len(t, navs, 1)
	assert.Equal(t, "/dashboard?logged=true", navs[0].URL())

	s = flow.State()
	assert.Equal(t, submission.PhaseSuccess, s.Phase)
	assert.False(t, s.LoadingVisible)
	assert.False(t, s.LoginErrorVisible)
	require.NotNil(t, s.Destination)
	assert.True(t, s.Settled())
}

func TestFlow_LoginRejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", submission.DemoEmail, "Demo1234567"},
		{"wrong email", "other@proapp.com", submission.DemoPassword},
		{"email case differs", "Demo@proapp.com", submission.DemoPassword},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flow, clock, rec := newFlow(t, submission.LoginForm())
			require.NoError(t, flow.Submit(context.Background(), login(tt.email, tt.password)))

			clock.Advance(1500 * time.Millisecond)

			s := flow.State()
			assert.Equal(t, submission.PhaseError, s.Phase)
			assert.True(t, s.LoginErrorVisible)
			assert.False(t, s.LoadingVisible)
			assert.False(t, s.SubmitDisabled)
			assert.Nil(t, s.Destination)
			assert.Empty(t, rec.navigations())
			assert.Contains(t, rec.messages(), "Invalid email or password")

			clock.Advance(time.Minute)
			assert.Empty(t, rec.navigations())
		})
	}
}

func TestFlow_LoginErrorClearedOnNextSubmit(t *testing.T) {
	t.Parallel()

	flow, clock, rec := newFlow(t, submission.LoginForm())
	ctx := context.Background()

	require.NoError(t, flow.Submit(ctx, login(submission.DemoEmail, "nope")))
	clock.Advance(1500 * time.Millisecond)
	require.True(t, flow.State().LoginErrorVisible)

	require.NoError(t, flow.Submit(ctx, login(submission.DemoEmail, submission.DemoPassword)))
	assert.False(t, flow.State().LoginErrorVisible)

	clock.Advance(1500 * time.Millisecond)
	assert.Len(t, rec.navigations(), 1)
}

func TestFlow_LoginInvalidInputNeverLoads(t *testing.T) {
	t.Parallel()

	flow, clock, rec := newFlow(t, submission.LoginForm())

	err := flow.Submit(context.Background(), login("not-an-email", ""))
	require.Error(t, err)
	assert.ErrorIs(t, err, submission.ErrValidationFailed)

	verrs := validator.ExtractValidationErrors(err)
	assert.ElementsMatch(t, []string{"login-email", "login-password"}, verrs.Fields())

	s := flow.State()
	assert.Equal(t, submission.PhaseIdle, s.Phase)
	assert.False(t, s.LoadingVisible)

	email, ok := s.Field("login-email")
	require.True(t, ok)
	assert.Equal(t, validator.StatusError, email.Decoration.Status)
	assert.Equal(t, "Please enter a valid email", email.Decoration.Message)

	password, _ := s.Field("login-password")
	assert.Equal(t, "Password is required", password.Decoration.Message)

	assert.Zero(t, clock.Pending())
	clock.Advance(time.Minute)
	assert.Empty(t, rec.navigations())
}

func TestFlow_RegisterSuccessThenRedirect(t *testing.T) {
	t.Parallel()

	flow, clock, rec := newFlow(t, submission.RegisterForm())
	require.NoError(t, flow.Submit(context.Background(), validRegistration()))
	assert.Equal(t, submission.PhaseLoading, flow.State().Phase)

	clock.Advance(2000 * time.Millisecond)
	s := flow.State()
	assert.Equal(t, submission.PhaseSuccess, s.Phase)
	assert.True(t, s.SuccessVisible)
	assert.False(t, s.LoadingVisible)
	assert.False(t, s.Settled())
	assert.Empty(t, rec.navigations())
	assert.Contains(t, rec.messages(), "Account created successfully")

	clock.Advance(1999 * time.Millisecond)
	assert.Empty(t, rec.navigations())

	clock.Advance(time.Millisecond)
	navs := rec.navigations()
	require.Len(t, navs, 1)
	assert.Equal(t, "/dashboard?registered=true", navs[0].URL())
	assert.True(t, flow.State().Settled())
}

func TestFlow_RegisterRequiresTerms(t *testing.T) {
	t.Parallel()

	flow, clock, rec := newFlow(t, submission.RegisterForm())
	sub := validRegistration()
	sub.TermsAccepted = false

	err := flow.Submit(context.Background(), sub)
	require.Error(t, err)
	assert.ErrorIs(t, err, submission.ErrTermsNotAccepted)
	assert.NotErrorIs(t, err, submission.ErrValidationFailed)

	s := flow.State()
	assert.Equal(t, submission.PhaseIdle, s.Phase)
	assert.Equal(t, "You must accept the terms to continue", s.TermsError)
	assert.False(t, s.LoadingVisible)
	assert.Zero(t, clock.Pending())
	assert.Empty(t, rec.navigations())

	sub.TermsAccepted = true
	require.NoError(t, flow.Submit(context.Background(), sub))
	assert.Empty(t, flow.State().TermsError)
}

func TestFlow_RegisterReportsEveryFailure(t *testing.T) {
	t.Parallel()

	flow, _, _ := newFlow(t, submission.RegisterForm())
	err := flow.Submit(context.Background(), submission.Submission{
		Values: map[string]string{
			"register-name":     "A",
			"register-email":    "ana@",
			"register-password": "weakpass",
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, submission.ErrValidationFailed)
	assert.ErrorIs(t, err, submission.ErrTermsNotAccepted)

	s := flow.State()
	want := map[string]string{
		"register-name":     "Must be at least 2 characters",
		"register-email":    "Please enter a valid email",
		"register-company":  "Company is required",
		"register-password": "Password must be at least 8 characters and include uppercase, lowercase and numbers",
	}
	for id, msg := range want {
		f, ok := s.Field(id)
		require.True(t, ok, id)
		assert.Equal(t, msg, f.Decoration.Message, id)
		assert.True(t, f.Decoration.ErrorVisible, id)
	}
}

func TestFlow_ContactResetsAndExpires(t *testing.T) {
	t.Parallel()

	flow, clock, rec := newFlow(t, submission.ContactForm())
	require.NoError(t, flow.Submit(context.Background(), validContact()))

	clock.Advance(2000 * time.Millisecond)
	s := flow.State()
	assert.Equal(t, submission.PhaseSuccess, s.Phase)
	assert.True(t, s.SuccessVisible)
	for _, f := range s.Fields {
		assert.Empty(t, f.Value, f.ID)
		assert.Equal(t, validator.StatusNone, f.Decoration.Status, f.ID)
	}
	assert.Contains(t, rec.messages(), "Message sent successfully")

	clock.Advance(4999 * time.Millisecond)
	assert.True(t, flow.State().SuccessVisible)

	clock.Advance(time.Millisecond)
	s = flow.State()
	assert.False(t, s.SuccessVisible)
	assert.Equal(t, submission.PhaseIdle, s.Phase)
	assert.Empty(t, rec.navigations())
}

func TestFlow_ResubmitDiscardsStaleExpiry(t *testing.T) {
	t.Parallel()

	flow, clock, _ := newFlow(t, submission.ContactForm())
	ctx := context.Background()

	require.NoError(t, flow.Submit(ctx, validContact()))
	clock.Advance(2000 * time.Millisecond)
	require.True(t, flow.State().SuccessVisible)

	clock.Advance(4000 * time.Millisecond)
	require.NoError(t, flow.Submit(ctx, validContact()))
	assert.False(t, flow.State().SuccessVisible)

	// The first expiry would have fired here.
	clock.Advance(1000 * time.Millisecond)
	assert.Equal(t, submission.PhaseLoading, flow.State().Phase)

	clock.Advance(1000 * time.Millisecond)
	assert.True(t, flow.State().SuccessVisible)
	clock.Advance(5000 * time.Millisecond)
	assert.False(t, flow.State().SuccessVisible)
}

func TestFlow_ReentryWhileLoading(t *testing.T) {
	t.Parallel()

	flow, clock, rec := newFlow(t, submission.RegisterForm())
	ctx := context.Background()

	require.NoError(t, flow.Submit(ctx, validRegistration()))
	err := flow.Submit(ctx, validRegistration())
	assert.ErrorIs(t, err, submission.ErrSubmissionInProgress)
	assert.Equal(t, submission.PhaseLoading, flow.State().Phase)

	clock.Advance(4 * time.Second)
	assert.Len(t, rec.navigations(), 1)
}

func TestFlow_CancelDiscardsPendingEffects(t *testing.T) {
	t.Parallel()

	t.Run("during loading", func(t *testing.T) {
		t.Parallel()

		flow, clock, rec := newFlow(t, submission.LoginForm())
		require.NoError(t, flow.Submit(context.Background(), login(submission.DemoEmail, submission.DemoPassword)))

		assert.True(t, flow.Cancel(context.Background()))
		s := flow.State()
		assert.Equal(t, submission.PhaseIdle, s.Phase)
		assert.False(t, s.LoadingVisible)
		assert.False(t, s.SubmitDisabled)

		clock.Advance(time.Minute)
		assert.Empty(t, rec.navigations())
		assert.Equal(t, submission.PhaseIdle, flow.State().Phase)
	})

	t.Run("before redirect", func(t *testing.T) {
		t.Parallel()

		flow, clock, rec := newFlow(t, submission.RegisterForm())
		require.NoError(t, flow.Submit(context.Background(), validRegistration()))
		clock.Advance(2000 * time.Millisecond)

		assert.True(t, flow.Cancel(context.Background()))
		assert.False(t, flow.State().SuccessVisible)

		clock.Advance(time.Minute)
		assert.Empty(t, rec.navigations())
	})

	t.Run("nothing pending", func(t *testing.T) {
		t.Parallel()

		flow, _, _ := newFlow(t, submission.ContactForm())
		assert.False(t, flow.Cancel(context.Background()))
	})
}

func TestFlow_CancelDuringOutcome(t *testing.T) {
	t.Parallel()

	// The announcer cancels the flow while the outcome is being delivered,
	// as a stream whose client leaves at that moment would.
	cancelling := func(flow **submission.Flow, key string, cancelled *bool) submission.AnnouncerFunc {
		return func(ctx context.Context, msg string) {
			if msg == submission.Fallback(key) {
				*cancelled = (*flow).Cancel(ctx)
			}
		}
	}

	t.Run("login", func(t *testing.T) {
		t.Parallel()

		var (
			flow      *submission.Flow
			cancelled bool
		)
		flow, clock, rec := newFlow(t, submission.LoginForm(),
			submission.WithAnnouncer(cancelling(&flow, submission.KeyLoginSuccess, &cancelled)))

		require.NoError(t, flow.Submit(context.Background(), login(submission.DemoEmail, submission.DemoPassword)))
		clock.Advance(1500 * time.Millisecond)

		assert.True(t, cancelled)
		assert.Empty(t, rec.navigations())
		s := flow.State()
		assert.Equal(t, submission.PhaseIdle, s.Phase)
		assert.Nil(t, s.Destination)
		assert.False(t, s.LoadingVisible)

		require.NoError(t, flow.Submit(context.Background(), login(submission.DemoEmail, submission.DemoPassword)))
		assert.Equal(t, submission.PhaseLoading, flow.State().Phase)
	})

	t.Run("contact", func(t *testing.T) {
		t.Parallel()

		var (
			flow      *submission.Flow
			cancelled bool
		)
		flow, clock, _ := newFlow(t, submission.ContactForm(),
			submission.WithAnnouncer(cancelling(&flow, submission.KeyContactSuccess, &cancelled)))

		require.NoError(t, flow.Submit(context.Background(), validContact()))
		clock.Advance(2000 * time.Millisecond)

		assert.True(t, cancelled)
		s := flow.State()
		assert.Equal(t, submission.PhaseIdle, s.Phase)
		assert.False(t, s.SuccessVisible)
		assert.True(t, s.Settled())
		assert.Zero(t, clock.Pending())
	})
}

func TestFlow_InvalidResubmitKeepsOutcome(t *testing.T) {
	t.Parallel()

	t.Run("contact success still expires", func(t *testing.T) {
		t.Parallel()

		flow, clock, _ := newFlow(t, submission.ContactForm())
		ctx := context.Background()

		require.NoError(t, flow.Submit(ctx, validContact()))
		clock.Advance(2000 * time.Millisecond)
		before := flow.State()
		require.Equal(t, submission.PhaseSuccess, before.Phase)

		err := flow.Submit(ctx, submission.Submission{})
		assert.ErrorIs(t, err, submission.ErrValidationFailed)

		s := flow.State()
		assert.Equal(t, submission.PhaseSuccess, s.Phase)
		assert.True(t, s.SuccessVisible)
		assert.Equal(t, 1, clock.Pending())
		name, _ := s.Field("contact-name")
		assert.Equal(t, validator.StatusError, name.Decoration.Status)

		clock.Advance(5000 * time.Millisecond)
		s = flow.State()
		assert.Equal(t, submission.PhaseIdle, s.Phase)
		assert.False(t, s.SuccessVisible)
	})

	t.Run("register still redirects", func(t *testing.T) {
		t.Parallel()

		flow, clock, rec := newFlow(t, submission.RegisterForm())
		ctx := context.Background()

		require.NoError(t, flow.Submit(ctx, validRegistration()))
		clock.Advance(2000 * time.Millisecond)

		err := flow.Submit(ctx, submission.Submission{})
		assert.ErrorIs(t, err, submission.ErrTermsNotAccepted)
		assert.Equal(t, submission.PhaseSuccess, flow.State().Phase)

		clock.Advance(2000 * time.Millisecond)
		navs := rec.navigations()
		require.Len(t, navs, 1)
		assert.Equal(t, "/dashboard?registered=true", navs[0].URL())
	})

	t.Run("login error stays visible", func(t *testing.T) {
		t.Parallel()

		flow, clock, _ := newFlow(t, submission.LoginForm())
		ctx := context.Background()

		require.NoError(t, flow.Submit(ctx, login(submission.DemoEmail, "nope")))
		clock.Advance(1500 * time.Millisecond)

		require.Error(t, flow.Submit(ctx, login("", "")))
		s := flow.State()
		assert.Equal(t, submission.PhaseError, s.Phase)
		assert.True(t, s.LoginErrorVisible)
	})

	t.Run("while loading", func(t *testing.T) {
		t.Parallel()

		flow, _, _ := newFlow(t, submission.ContactForm())
		ctx := context.Background()

		require.NoError(t, flow.Submit(ctx, validContact()))
		err := flow.Submit(ctx, submission.Submission{})
		assert.ErrorIs(t, err, submission.ErrSubmissionInProgress)
		name, _ := flow.State().Field("contact-name")
		assert.Equal(t, validator.StatusSuccess, name.Decoration.Status)
	})
}

func TestFlow_DeferredEffectsOutliveRequestContext(t *testing.T) {
	t.Parallel()

	flow, clock, rec := newFlow(t, submission.LoginForm())
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, flow.Submit(ctx, login(submission.DemoEmail, submission.DemoPassword)))
	cancel()

	clock.Advance(1500 * time.Millisecond)
	assert.Len(t, rec.navigations(), 1)
}

func TestFlow_Blur(t *testing.T) {
	t.Parallel()

	flow, _, _ := newFlow(t, submission.ContactForm())
	ctx := context.Background()

	res, err := flow.Blur(ctx, "contact-email", "ana@")
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Equal(t, "Please enter a valid email", res.Message)

	f, _ := flow.State().Field("contact-email")
	assert.Equal(t, "ana@", f.Value)
	assert.Equal(t, validator.StatusError, f.Decoration.Status)
	require.NotNil(t, f.Decoration.AriaInvalid)
	assert.True(t, *f.Decoration.AriaInvalid)

	res, err = flow.Blur(ctx, "contact-email", "ana@example.com")
	require.NoError(t, err)
	assert.True(t, res.Valid)
	f, _ = flow.State().Field("contact-email")
	assert.Equal(t, validator.StatusSuccess, f.Decoration.Status)
	assert.False(t, f.Decoration.ErrorVisible)

	_, err = flow.Blur(ctx, "login-email", "x")
	assert.ErrorIs(t, err, submission.ErrUnknownField)
	assert.Equal(t, submission.PhaseIdle, flow.State().Phase)
}

func TestFlow_TranslatesMessages(t *testing.T) {
	t.Parallel()

	es := submission.TranslatorFunc(func(_ context.Context, key, fallback string, values map[string]any) string {
		switch key {
		case submission.LabelKey("contact-name"):
			return "Nombre"
		case "validation.required":
			return fmt.Sprintf("%v es obligatorio", values["field"])
		case submission.KeyContactSuccess:
			return "Mensaje enviado"
		}
		return fallback
	})
	flow, clock, rec := newFlow(t, submission.ContactForm(), submission.WithTranslator(es))

	res, err := flow.Blur(context.Background(), "contact-name", "  ")
	require.NoError(t, err)
	assert.Equal(t, "Nombre es obligatorio", res.Message)

	require.NoError(t, flow.Submit(context.Background(), validContact()))
	clock.Advance(2 * time.Second)
	assert.Contains(t, rec.messages(), "Mensaje enviado")
}

func TestFlow_Subscribe(t *testing.T) {
	t.Parallel()

	flow, clock, _ := newFlow(t, submission.LoginForm())

	var mu sync.Mutex
	var phases []submission.Phase
	unsubscribe := flow.Subscribe(func(s submission.FormState) {
		mu.Lock()
		defer mu.Unlock()
		phases = append(phases, s.Phase)
	})

	require.NoError(t, flow.Submit(context.Background(), login(submission.DemoEmail, "bad")))
	clock.Advance(1500 * time.Millisecond)

	mu.Lock()
	assert.Equal(t, []submission.Phase{submission.PhaseLoading, submission.PhaseError}, phases)
	mu.Unlock()

	unsubscribe()
	_, err := flow.Blur(context.Background(), "login-email", "x@y.z")
	require.NoError(t, err)

	mu.Lock()
	assert.Len(t, phases, 2)
	mu.Unlock()
}

func TestFlow_NavigatorErrorIsContained(t *testing.T) {
	t.Parallel()

	clock := scheduler.NewManual()
	failing := submission.NavigatorFunc(func(context.Context, submission.Destination) error {
		return errors.New("client gone")
	})
	flow := submission.NewFlow(submission.LoginForm(),
		submission.WithScheduler(clock),
		submission.WithNavigator(failing),
		submission.WithVerifier(submission.VerifierFunc(func(string, string) bool { return true })),
	)

	require.NoError(t, flow.Submit(context.Background(), login("a@b.co", "x")))
	clock.Advance(1500 * time.Millisecond)

	s := flow.State()
	assert.Equal(t, submission.PhaseSuccess, s.Phase)
	require.NotNil(t, s.Destination)
}

func TestFlow_CustomDelays(t *testing.T) {
	t.Parallel()

	delays := submission.Delays{Submit: 10 * time.Millisecond, Redirect: 5 * time.Millisecond}
	flow, clock, rec := newFlow(t, submission.RegisterForm(), submission.WithDelays(delays))
	require.NoError(t, flow.Submit(context.Background(), validRegistration()))

	clock.Advance(15 * time.Millisecond)
	assert.Len(t, rec.navigations(), 1)
}

func TestFlow_Identity(t *testing.T) {
	t.Parallel()

	flow := submission.NewFlow(submission.ContactForm(), submission.WithID("contact-1"))
	assert.Equal(t, "contact-1", flow.ID())
	assert.Equal(t, submission.KindContact, flow.Kind())
	assert.Equal(t, "contact-1", flow.State().ID)

	other := submission.NewFlow(submission.ContactForm())
	assert.NotEmpty(t, other.ID())
	assert.NotEqual(t, other.ID(), submission.NewFlow(submission.ContactForm()).ID())
}

func TestFlow_AnnouncesBeforeSettling(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	clock := scheduler.NewManual()
	flow := submission.NewFlow(submission.LoginForm(),
		submission.WithScheduler(clock),
		submission.WithNavigator(rec),
		submission.WithAnnouncer(rec),
	)

	var mu sync.Mutex
	var seen []string
	flow.Subscribe(func(s submission.FormState) {
		mu.Lock()
		defer mu.Unlock()
		if s.Settled() {
			seen = append(seen, fmt.Sprintf("%s settled after %d announcements, destination=%t", s.Phase, len(rec.messages()), s.Destination != nil))
		}
	})

	require.NoError(t, flow.Submit(context.Background(), login(submission.DemoEmail, submission.DemoPassword)))
	clock.Advance(1500 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"success settled after 2 announcements, destination=true"}, seen)
}
