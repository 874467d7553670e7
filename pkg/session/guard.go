package session

import (
	"log/slog"
	"net/http"
	"net/url"
)

// LoginRedirect is where the dashboard guard sends visitors it turns away.
const LoginRedirect = "/login?redirect=dashboard"

// Access signals accepted by the dashboard guard as query parameters.
const (
	SignalLogged     = "logged"
	SignalRegistered = "registered"
)

// Allowed reports whether a dashboard request may proceed: either query
// signal equals "true", or the session's LoggedInFlag is set.
// A store error counts as not signed in.
func Allowed(r *http.Request, store FlagStore) (bool, error) {
	if signalled(r.URL.Query()) {
		return true, nil
	}
	id, ok := IDFromContext(r.Context())
	if !ok || store == nil {
		return false, nil
	}
	return store.Get(r.Context(), id, LoggedInFlag)
}

func signalled(q url.Values) bool {
	return q.Get(SignalLogged) == "true" || q.Get(SignalRegistered) == "true"
}

// Guard protects the dashboard. Rejected requests are redirected to
// LoginRedirect with 303 See Other.
//
// A successful login navigates with ?logged=true but does not write
// LoggedInFlag, so a later visit without the query is turned away unless
// something else set the flag.
func Guard(store FlagStore, log *slog.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ok, err := Allowed(r, store)
			if err != nil {
				log.WarnContext(r.Context(), "session flag lookup failed", slog.Any("error", err))
			}
			if !ok {
				http.Redirect(w, r, LoginRedirect, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
