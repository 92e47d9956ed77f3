package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config describes a logger. It is usually loaded from the same YAML file as
// the htmx client config.
type Config struct {
	Level  string       `yaml:"level"`  // debug, info, warn or error (default info)
	Format string       `yaml:"format"` // json (default) or text
	Sentry SentryConfig `yaml:"sentry"`
}

// Option configures New and NewWithSentry.
type Option func(*options)

type options struct {
	level      slog.Level
	out        io.Writer
	text       bool
	extractors []ContextExtractor
}

// WithLevel sets the minimum level written to the output. Defaults to info.
func WithLevel(l slog.Level) Option {
	return func(o *options) { o.level = l }
}

// WithOutput sets the destination. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithText switches from JSON to logfmt-style text output.
func WithText() Option {
	return func(o *options) { o.text = true }
}

// WithExtractors adds context extractors applied to every record.
func WithExtractors(ex ...ContextExtractor) Option {
	return func(o *options) { o.extractors = append(o.extractors, ex...) }
}

// New creates a JSON logger on stdout at info level unless opts say otherwise.
func New(opts ...Option) *slog.Logger {
	o := newOptions(opts)
	return slog.New(NewLogHandlerDecorator(o.handler(), o.extractors...))
}

// FromConfig builds a logger from cfg. Sentry is enabled when cfg.Sentry.DSN is set.
func FromConfig(cfg Config, opts ...Option) (*slog.Logger, error) {
	if cfg.Level != "" {
		l, err := ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		opts = append([]Option{WithLevel(l)}, opts...)
	}
	switch strings.ToLower(cfg.Format) {
	case "", "json":
	case "text":
		opts = append([]Option{WithText()}, opts...)
	default:
		return nil, fmt.Errorf("logger: unknown format %q", cfg.Format)
	}
	return NewWithSentry(cfg.Sentry, opts...), nil
}

// ParseLevel parses debug, info, warn or error, case-insensitively.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

func newOptions(opts []Option) *options {
	o := &options{level: slog.LevelInfo, out: os.Stdout}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) handler() slog.Handler {
	ho := &slog.HandlerOptions{Level: o.level}
	if o.text {
		return slog.NewTextHandler(o.out, ho)
	}
	return slog.NewJSONHandler(o.out, ho)
}
