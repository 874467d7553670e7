package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Translator resolves dotted keys ("forms.login.error") to localized text.
// It is safe for concurrent use.
type Translator struct {
	mu           sync.RWMutex
	translations map[string]map[string]any
	langs        []string
	matcher      language.Matcher

	defaultLang string
	logMissing  bool
	logger      *slog.Logger
}

// NewTranslator loads translations through adapter and prepares language
// negotiation over the loaded languages, default language first.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, opts ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang: DefaultLanguage,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(translations) == 0 {
		return nil, ErrNoTranslations
	}

	langs := make([]string, 0, len(translations))
	for lang, tree := range translations {
		if lang == "" || tree == nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLanguageCode, lang)
		}
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	if i := slices.Index(langs, t.defaultLang); i > 0 {
		langs = append([]string{t.defaultLang}, slices.Delete(langs, i, i+1)...)
	}

	tags := make([]language.Tag, len(langs))
	for i, lang := range langs {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidLanguageCode, lang, err)
		}
		tags[i] = tag
	}

	t.translations = translations
	t.langs = langs
	t.matcher = language.NewMatcher(tags)
	t.logger.InfoContext(ctx, "translations loaded", slog.Any("languages", langs))
	return t, nil
}

// SupportedLanguages returns the loaded language codes, default first.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.langs)
}

// DefaultLanguage returns the fallback language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Match negotiates an Accept-Language header against the loaded languages.
// An empty, malformed or unmatched header yields the default language.
func (t *Translator) Match(acceptLanguage string) string {
	if acceptLanguage == "" {
		return t.defaultLang
	}
	if len(acceptLanguage) > maxAcceptLanguageLength {
		acceptLanguage = acceptLanguage[:maxAcceptLanguageLength]
	}
	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return t.defaultLang
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	_, idx, conf := t.matcher.Match(prefs...)
	if conf == language.No || idx < 0 || idx >= len(t.langs) {
		return t.defaultLang
	}
	return t.langs[idx]
}

// Supports reports whether lang has translations.
func (t *Translator) Supports(lang string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.translations[lang]
	return ok
}

// HasTranslation reports whether key exists for lang.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.lookup(lang, key)
	return ok
}

// T translates key for lang. args are name/value pairs substituted into
// %{name} placeholders. Missing keys fall back to the default language and
// then to the key itself.
//
//	t.T("es", "dashboard.welcome", "name", "Ana") // "Bienvenido de vuelta, Ana"
func (t *Translator) T(lang, key string, args ...string) string {
	params := make(map[string]any, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return t.resolve(context.Background(), lang, key, key, params)
}

// Tc is T with the language taken from ctx.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	params := make(map[string]any, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return t.resolve(ctx, GetLocale(ctx), key, key, params)
}

// Translate resolves key in the language stored in ctx and substitutes values.
// fallback is returned, with values substituted, when no language has the key.
func (t *Translator) Translate(ctx context.Context, key, fallback string, values map[string]any) string {
	return t.resolve(ctx, GetLocale(ctx), key, fallback, values)
}

func (t *Translator) resolve(ctx context.Context, lang, key, fallback string, values map[string]any) string {
	t.mu.RLock()
	tmpl, ok := t.lookup(lang, key)
	if !ok && lang != t.defaultLang {
		tmpl, ok = t.lookup(t.defaultLang, key)
	}
	t.mu.RUnlock()

	if !ok {
		if t.logMissing {
			t.logger.WarnContext(ctx, "translation not found", slog.String("lang", lang), slog.String("key", key))
		}
		tmpl = fallback
	}
	return substitute(tmpl, values)
}

// lookup walks the nested tree of lang; the caller holds the read lock.
func (t *Translator) lookup(lang, key string) (string, bool) {
	node, ok := t.translations[lang]
	if !ok {
		return "", false
	}
	parts := strings.Split(key, ".")
	for i, part := range parts {
		v, ok := node[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			s, ok := v.(string)
			return s, ok
		}
		if node, ok = v.(map[string]any); !ok {
			return "", false
		}
	}
	return "", false
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} placeholders; unknown names are left as is.
func substitute(tmpl string, values map[string]any) string {
	if len(values) == 0 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if v, ok := values[match[2:len(match)-1]]; ok {
			return fmt.Sprint(v)
		}
		return match
	})
}
