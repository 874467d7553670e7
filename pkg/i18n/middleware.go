package i18n

import "net/http"

// Middleware stores the request language in the context. The default
// extractor checks the lang query parameter, then the lang cookie, then
// Accept-Language. A language chosen through the query is remembered in the
// cookie.
func Middleware(t *Translator, extractors ...LangExtractor) func(http.Handler) http.Handler {
	extract := Chain(extractors...)
	if len(extractors) == 0 {
		extract = Chain(FromQuery(t), FromCookie(t), FromAcceptLanguage(t))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := extract(r)
			if lang == "" {
				lang = t.DefaultLanguage()
			}
			if q := FromQuery(t)(r); q != "" {
				http.SetCookie(w, &http.Cookie{
					Name:     LangCookie,
					Value:    q,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}
