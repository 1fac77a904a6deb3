// Package middleware wraps shell command actions with cross-cutting
// behavior: panic recovery, execution logging, timeouts and validation.
package middleware

import (
	"context"
	"time"
)

// The shell package implements these interfaces; middleware never imports
// it, which keeps the dependency one-way.

// Context is what middleware sees of one command invocation.
type Context interface {
	// Context returns the invocation's context. It is canceled when the
	// shell stops, when Cancel is called or when a timeout fires.
	Context() context.Context

	// Done is a shorthand for Context().Done().
	Done() <-chan struct{}

	// Cancel cancels the invocation. It is idempotent.
	Cancel()

	// Args returns the words that followed the command name. The slice
	// aliases the shell's line buffer and is only valid during the call.
	Args() []string

	// Set and Get carry values between middleware. Keys should be
	// namespaced, e.g. "logger.start".
	Set(key string, value any)
	Get(key string) any

	// Command describes the command being run.
	Command() Command
}

// Command is satisfied by *shell.Command.
type Command interface {
	Name() string
	Description() string
}

// ActionFunc runs a command.
type ActionFunc func(ctx Context) error

// Middleware decorates an ActionFunc.
type Middleware func(next ActionFunc) ActionFunc

// Chain is an ordered list of middleware. The first element is the
// outermost wrapper.
type Chain []Middleware

// Apply wraps action with every middleware of the chain.
func (chain Chain) Apply(action ActionFunc) ActionFunc {
	for i := len(chain) - 1; i >= 0; i-- {
		action = chain[i](action)
	}
	return action
}

// Use returns a chain with middleware appended.
func (chain Chain) Use(middleware ...Middleware) Chain {
	return append(chain, middleware...)
}

// ValidationError is returned when a validator rejects an invocation.
type ValidationError struct {
	Field   string
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = e.Field + ": " + msg
	}
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

func (e *ValidationError) Unwrap() error { return e.Cause }

// TimeoutError is returned when a command outlives its deadline.
type TimeoutError struct {
	Duration time.Duration
	Command  string
}

func (e *TimeoutError) Error() string {
	return "command '" + e.Command + "' timed out after " + e.Duration.String()
}

// RecoveryError is returned in place of a panic.
type RecoveryError struct {
	Panic   any
	Command string
	Stack   []byte
}

func (e *RecoveryError) Error() string {
	return "command '" + e.Command + "' panicked: " + toString(e.Panic)
}

// Config holds the knobs shared by the built-in middleware.
type Config struct {
	LogLevel    LogLevel
	LogFormat   LogFormat
	IncludeArgs bool
	PrintStack  bool
	StackSize   int
}

// LogLevel filters what Logger prints.
type LogLevel int

const (
	LogLevelNone LogLevel = iota
	LogLevelError
	LogLevelInfo
	LogLevelDebug
)

// LogFormat selects text or JSON lines.
type LogFormat int

const (
	LogFormatText LogFormat = iota
	LogFormatJSON
)

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the configuration used when no option is given.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:    LogLevelInfo,
		LogFormat:   LogFormatText,
		IncludeArgs: true,
		StackSize:   4096,
	}
}

func newConfig(options []Option) *Config {
	config := DefaultConfig()
	for _, option := range options {
		option(config)
	}
	return config
}

func WithLogLevel(level LogLevel) Option { return func(c *Config) { c.LogLevel = level } }
func WithLogFormat(f LogFormat) Option   { return func(c *Config) { c.LogFormat = f } }
func WithArgs(enabled bool) Option       { return func(c *Config) { c.IncludeArgs = enabled } }
func WithStackTrace(enabled bool) Option { return func(c *Config) { c.PrintStack = enabled } }

func toString(v any) string {
	switch v := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return v
	case error:
		return v.Error()
	default:
		return "<unknown>"
	}
}

func commandName(ctx Context) string {
	cmd := ctx.Command()
	if cmd == nil {
		return "unknown"
	}
	return cmd.Name()
}
