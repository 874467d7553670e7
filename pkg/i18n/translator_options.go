package i18n

import "log/slog"

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language used when a request's language is
// unknown or has no translation for a key.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithMissingTranslationsLogging logs every lookup that falls back. Off by default.
func WithMissingTranslationsLogging(on bool) Option {
	return func(t *Translator) {
		t.logMissing = on
	}
}
