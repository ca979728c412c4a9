// Package logging configures the structured logger shared by every command.
package logging

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Prefix is attached to every log line written by the application.
const Prefix = "tally"

// New creates a logger writing to w according to cfg.
func New(w io.Writer, cfg LoggingConfig) (*log.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	level, _ := log.ParseLevel(cfg.Level)
	formatter, _ := parseFormatter(cfg.Format)

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       formatter,
		Prefix:          Prefix,
		ReportTimestamp: cfg.Timestamp,
		ReportCaller:    cfg.Caller,
	}), nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// NewRunID returns a fresh identifier for one invocation.
func NewRunID() string {
	return uuid.NewString()
}

// WithRun returns a child logger tagged with the invocation id.
func WithRun(logger *log.Logger, runID string) *log.Logger {
	return logger.With("run", runID)
}

// WithLogger adds a logger to the context
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	return log.WithContext(ctx, logger)
}

// FromContext retrieves a logger from the context, falling back to a
// discarding logger when none was attached.
func FromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return Discard()
	}
	if logger, ok := ctx.Value(log.ContextKey).(*log.Logger); ok && logger != nil {
		return logger
	}
	return Discard()
}
