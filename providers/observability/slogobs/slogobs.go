package slogobs

import (
	"io"
	"log/slog"
	"os"

	"github.com/modelrelay/relay/providers/observability"
)

// Observer implements observability.Logger using Go's standard library slog.
type Observer struct {
	logger *slog.Logger
}

// Ensure Observer implements observability.Logger
var _ observability.Logger = (*Observer)(nil)

type config struct {
	logger *slog.Logger
	level  slog.Level
	output io.Writer
	json   bool
}

// Option configures the observer built by [New].
type Option func(*config)

// WithLevel sets the minimum level of records that are emitted.
func WithLevel(level slog.Level) Option {
	return func(c *config) { c.level = level }
}

// WithOutput sets the destination writer. Defaults to os.Stderr.
func WithOutput(w io.Writer) Option {
	return func(c *config) { c.output = w }
}

// WithJSON switches output to JSON records instead of logfmt-style text.
func WithJSON(json bool) Option {
	return func(c *config) { c.json = json }
}

// WithLogger uses an existing slog.Logger, ignoring the other options.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// New creates a slog-based logger. Without options it reads RELAY_LOG_LEVEL
// and RELAY_LOG_FORMAT from the environment, defaulting to INFO-level text
// output on stderr.
//
// Example usage:
//
//	// Use defaults from environment
//	logger := slogobs.New()
//
//	// Explicit configuration
//	logger := slogobs.New(slogobs.WithLevel(slog.LevelDebug), slogobs.WithJSON(true))
func New(opts ...Option) *Observer {
	cfg := config{
		level:  LevelFromEnv(),
		output: os.Stderr,
		json:   os.Getenv("RELAY_LOG_FORMAT") == "json",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	logger := cfg.logger
	if logger == nil {
		handlerOpts := &slog.HandlerOptions{Level: cfg.level}
		if cfg.json {
			logger = slog.New(slog.NewJSONHandler(cfg.output, handlerOpts))
		} else {
			logger = slog.New(slog.NewTextHandler(cfg.output, handlerOpts))
		}
	}

	return &Observer{logger: logger}
}

// Debug logs at debug level with the given attributes.
func (o *Observer) Debug(msg string, attrs ...observability.Attribute) {
	o.logger.Debug(msg, toSlogArgs(attrs)...)
}

// Info logs at info level with the given attributes.
func (o *Observer) Info(msg string, attrs ...observability.Attribute) {
	o.logger.Info(msg, toSlogArgs(attrs)...)
}

// Warn logs at warn level with the given attributes.
func (o *Observer) Warn(msg string, attrs ...observability.Attribute) {
	o.logger.Warn(msg, toSlogArgs(attrs)...)
}

// Error logs at error level with the given attributes.
func (o *Observer) Error(msg string, attrs ...observability.Attribute) {
	o.logger.Error(msg, toSlogArgs(attrs)...)
}

func toSlogArgs(attrs []observability.Attribute) []any {
	args := make([]any, 0, len(attrs)*2)
	for _, attr := range attrs {
		args = append(args, attr.Key, attr.Value)
	}
	return args
}
