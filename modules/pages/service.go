package pages

import (
	"context"
	"log/slog"
	"net/http"
	"slices"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/proapp/binder"
	"github.com/dmitrymomot/proapp/handler"
	"github.com/dmitrymomot/proapp/pkg/logger"
	"github.com/dmitrymomot/proapp/pkg/session"
	"github.com/dmitrymomot/proapp/pkg/site"
)

// LogoutHook runs after a session signed out, e.g. to drop its form flows.
type LogoutHook func(ctx context.Context, sessionID string)

// Service serves the site pages and the small UI endpoints behind the
// mobile menu and the FAQ accordion.
type Service struct {
	views        *Views
	store        session.FlagStore
	errorHandler handler.ErrorHandler[handler.Context]
	onLogout     LogoutHook
	log          *slog.Logger
}

type ServiceOption func(*Service)

func WithErrorHandler(h handler.ErrorHandler[handler.Context]) ServiceOption {
	return func(s *Service) { s.errorHandler = h }
}

func WithLogoutHook(h LogoutHook) ServiceOption {
	return func(s *Service) { s.onLogout = h }
}

func WithLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

func NewService(views *Views, store session.FlagStore, opts ...ServiceOption) *Service {
	s := &Service{views: views, store: store, log: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handle returns the router to mount at the site root.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.page("/", "pages.index.title", s.views.Index))
	r.Get("/features", s.page("/features", "pages.features.title", s.views.Features))
	r.Get("/pricing", s.page("/pricing", "pages.pricing.title", s.views.Pricing))
	r.Get("/contact", s.page("/contact", "pages.contact.title", s.views.Contact))
	r.Get("/register", s.page("/register", "pages.register.title", s.views.Register))
	r.Get("/login", s.page("/login", "pages.login.title", s.views.Login))
	r.With(session.Guard(s.store, s.log)).
		Get("/dashboard", s.page("/dashboard", "pages.dashboard.title", s.views.Dashboard))
	r.Get("/logout", handler.Wrap(s.logout,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))

	r.Route("/ui", func(r chi.Router) {
		r.Post("/menu/{action}", handler.Wrap(s.menu,
			handler.WithBinders[handler.Context, menuRequest](binder.Signals(), binder.Path(chi.URLParam)),
			handler.WithErrorHandler[handler.Context, menuRequest](s.errorHandler),
		))
		r.Post("/faq/{id}", handler.Wrap(s.faq,
			handler.WithBinders[handler.Context, faqRequest](binder.Signals(), binder.Path(chi.URLParam)),
			handler.WithErrorHandler[handler.Context, faqRequest](s.errorHandler),
		))
	})

	r.NotFound(handler.Wrap(func(handler.Context, struct{}) handler.Response {
		return handler.Error(handler.ErrNotFound)
	}, handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler)))

	return r
}

func (s *Service) page(path, titleKey string, body func() templ.Component) http.HandlerFunc {
	return handler.Wrap(func(handler.Context, struct{}) handler.Response {
		return handler.Templ(s.views.Page(path, titleKey, body()))
	}, handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler))
}

// menuRequest is the flat Datastar signal object plus the action from the URL.
type menuRequest struct {
	site.Menu
	Width  int    `json:"viewportWidth"`
	Action string `path:"action"`
}

func (s *Service) menu(ctx handler.Context, req menuRequest) handler.Response {
	next := req.Menu
	switch req.Action {
	case "toggle":
		next = req.Menu.Toggle()
	case "escape":
		next, _ = req.Menu.Escape()
	case "resize":
		next = req.Menu.Resize(req.Width)
	default:
		return handler.Error(handler.ErrNotFound)
	}
	return handler.Signals(s.views.menuSignals(ctx, next))
}

type faqRequest struct {
	site.Accordion
	ID string `path:"id"`
}

func (s *Service) faq(_ handler.Context, req faqRequest) handler.Response {
	if !slices.Contains(FAQItems, req.ID) {
		return handler.Error(handler.ErrNotFound)
	}
	return handler.Signals(faqSignals(req.Accordion.Toggle(req.ID)))
}

// logout clears the signed-in flag, drops the session's form state and
// returns to the login page.
func (s *Service) logout(ctx handler.Context, _ struct{}) handler.Response {
	sid, ok := session.IDFromContext(ctx)
	if !ok {
		return handler.Redirect("/login")
	}
	if s.store != nil {
		if err := s.store.Delete(ctx, sid, session.LoggedInFlag); err != nil {
			s.log.WarnContext(ctx, "failed to clear signed-in flag",
				logger.SessionID(sid),
				logger.Error(err),
			)
		}
	}
	if s.onLogout != nil {
		s.onLogout(ctx, sid)
	}
	return handler.Redirect("/login")
}
