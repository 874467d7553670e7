package i18n

import (
	"net/http"
	"strings"
)

// DefaultLanguage is used when nothing better can be negotiated.
const DefaultLanguage = "en"

// maxAcceptLanguageLength caps the header before parsing.
const maxAcceptLanguageLength = 4096

const (
	// LangQueryParam lets a link force a language, e.g. /contact?lang=es.
	LangQueryParam = "lang"
	// LangCookie remembers an explicit choice across pages.
	LangCookie = "lang"
)

// LangExtractor returns the language for a request, or "" when it cannot tell.
type LangExtractor func(r *http.Request) string

// FromQuery reads LangQueryParam when it names a supported language.
func FromQuery(t *Translator) LangExtractor {
	return func(r *http.Request) string {
		return supported(t, r.URL.Query().Get(LangQueryParam))
	}
}

// FromCookie reads LangCookie when it names a supported language.
func FromCookie(t *Translator) LangExtractor {
	return func(r *http.Request) string {
		c, err := r.Cookie(LangCookie)
		if err != nil {
			return ""
		}
		return supported(t, c.Value)
	}
}

// FromAcceptLanguage negotiates the Accept-Language header.
func FromAcceptLanguage(t *Translator) LangExtractor {
	return func(r *http.Request) string {
		h := r.Header.Get("Accept-Language")
		if h == "" {
			return ""
		}
		return t.Match(h)
	}
}

// Chain returns the first non-empty result of extractors.
func Chain(extractors ...LangExtractor) LangExtractor {
	return func(r *http.Request) string {
		for _, ex := range extractors {
			if ex == nil {
				continue
			}
			if lang := ex(r); lang != "" {
				return lang
			}
		}
		return ""
	}
}

func supported(t *Translator, lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" || len(lang) > 35 || !t.Supports(lang) {
		return ""
	}
	return lang
}
