package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dmitrymomot/proapp/pkg/environment"
)

// Format is the record encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

type config struct {
	level      slog.Level
	format     Format
	output     io.Writer
	attrs      []slog.Attr
	extractors []ContextExtractor
}

// Option configures New.
type Option func(*config)

func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithLevelName sets the level from a LOG_LEVEL value. Unknown or empty
// names leave the level unchanged.
func WithLevelName(name string) Option {
	return func(c *config) {
		if l, ok := ParseLevel(name); ok {
			c.level = l
		}
	}
}

// ParseLevel accepts debug, info, warn (or warning) and error, in any case.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return 0, false
}

// WithFormat panics on an unknown format; a misconfigured logger should stop startup.
func WithFormat(f Format) Option {
	return func(c *config) {
		switch f {
		case FormatJSON, FormatText:
			c.format = f
		default:
			panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
		}
	}
}

// WithOutput sets the destination. Nil is ignored.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithAttr adds attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) { c.attrs = append(c.attrs, attrs...) }
}

func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) { c.extractors = append(c.extractors, extractors...) }
}

// WithEnvironment applies the defaults for an APP_ENV value and tags records
// with service and env. Development logs text at debug level; every other
// environment logs JSON at info level. An empty service name applies nothing.
func WithEnvironment(env, service string) Option {
	e := environment.Parse(env)
	return func(c *config) {
		if service == "" {
			return
		}
		c.level, c.format = slog.LevelInfo, FormatJSON
		if e.IsDevelopment() {
			c.level, c.format = slog.LevelDebug, FormatText
		}
		c.attrs = append(c.attrs,
			slog.String("service", service),
			slog.String("env", e.String()),
		)
	}
}

func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

// New builds a logger. Without options it writes JSON at info level to stdout.
func New(opts ...Option) *slog.Logger {
	cfg := &config{level: slog.LevelInfo, format: FormatJSON, output: os.Stdout}
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.level}
	var h slog.Handler
	if cfg.format == FormatText {
		h = slog.NewTextHandler(cfg.output, handlerOpts)
	} else {
		h = slog.NewJSONHandler(cfg.output, handlerOpts)
	}
	if len(cfg.attrs) > 0 {
		h = h.WithAttrs(cfg.attrs)
	}
	return slog.New(NewContextHandler(h, cfg.extractors...))
}
