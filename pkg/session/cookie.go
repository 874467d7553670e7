package session

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type idContextKey struct{}

// WithID stores the session id in ctx.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, idContextKey{}, id)
}

// IDFromContext returns the session id set by Middleware.
func IDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(idContextKey{}).(string)
	return id, ok && id != ""
}

// Middleware makes sure every visitor carries an HttpOnly session cookie
// holding a random UUID and puts the id in the request context.
func Middleware(cfg Config) func(http.Handler) http.Handler {
	if cfg.CookieName == "" {
		cfg.CookieName = DefaultConfig().CookieName
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := readID(r, cfg.CookieName)
			if id == "" {
				id = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     cfg.CookieName,
					Value:    id,
					Path:     "/",
					MaxAge:   int(cfg.TTL.Seconds()),
					HttpOnly: true,
					Secure:   cfg.Secure,
					SameSite: http.SameSiteLaxMode,
				})
			}
			next.ServeHTTP(w, r.WithContext(WithID(r.Context(), id)))
		})
	}
}

// readID returns the cookie value when it is a well-formed UUID.
func readID(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	if _, err := uuid.Parse(c.Value); err != nil {
		return ""
	}
	return c.Value
}
