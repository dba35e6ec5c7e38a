// Package logging builds the zerolog loggers used across pr and carries them
// through context.Context.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// Output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Output targets.
const (
	OutputStderr = "stderr"
	OutputFile   = "file"
)

// Config describes where and how to log.
type Config struct {
	Level  string
	Format string
	Output string
	File   string
	Caller bool
}

// Result is a constructed logger and the file it writes to, if any.
type Result struct {
	Logger zerolog.Logger
	// FilePath is set when logs go to a file.
	FilePath string
	// FallbackReason explains why file output was abandoned for stderr.
	FallbackReason string

	file *os.File
}

// UsingFile reports whether the logger writes to a file.
func (r *Result) UsingFile() bool {
	return r.file != nil
}

// Close closes the log file, if one is open.
func (r *Result) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// NewLogger builds a logger for cfg, writing to stderr unless a file is
// configured. If the file cannot be opened the logger falls back to stderr.
func NewLogger(cfg Config, stderr io.Writer) *Result {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.WarnLevel
	}

	result := &Result{}
	var out io.Writer = stderr
	if cfg.Output == OutputFile && cfg.File != "" {
		f, openErr := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if openErr != nil {
			result.FallbackReason = fmt.Sprintf("could not open log file %s: %v", cfg.File, openErr)
		} else {
			result.file = f
			result.FilePath = cfg.File
			out = f
		}
	}

	if cfg.Format == FormatConsole && result.file == nil {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(out).Level(lvl).With().Timestamp()
	if cfg.Caller {
		ctx = ctx.Caller()
	}
	result.Logger = ctx.Logger()
	return result
}

// Disabled returns a logger that drops every event.
func Disabled() zerolog.Logger {
	return zerolog.Nop()
}

// ComponentLogger returns a child logger tagged with component.
func ComponentLogger(l zerolog.Logger, component string) zerolog.Logger {
	return l.With().Str("component", component).Logger()
}

// FromContext returns the logger stored in ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

type runIDKey struct{}

// NewRunID returns a new sortable identifier for one invocation.
func NewRunID() string {
	return ulid.Make().String()
}

// ContextWithRunID stores id in ctx.
func ContextWithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

// RunIDFromContext returns the run id stored in ctx, or "".
func RunIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(runIDKey{}).(string)
	return id
}

// GetOrGenerateRunID returns the run id in ctx, generating one if absent.
func GetOrGenerateRunID(ctx context.Context) string {
	if id := RunIDFromContext(ctx); id != "" {
		return id
	}
	return NewRunID()
}
