package noshell

import (
	"errors"
	"strings"

	"github.com/dzonerzy/go-noshell/parser"
)

// ErrorType categorizes binding failures.
type ErrorType string

const (
	ErrorTypeUnknownFlag     ErrorType = "unknown_flag"
	ErrorTypeInvalidValue    ErrorType = "invalid_value"
	ErrorTypeMissingValue    ErrorType = "missing_value"
	ErrorTypeUnexpectedValue ErrorType = "unexpected_value"
	ErrorTypeTooManyArgs     ErrorType = "too_many_arguments"
	ErrorTypeUnknownCommand  ErrorType = "unknown_command"
	ErrorTypeDefinition      ErrorType = "definition"
)

// Definition errors returned by Build.
var (
	ErrDuplicateFlag  = errors.New("duplicate flag")
	ErrDuplicateField = errors.New("duplicate field")
	ErrEmptyName      = errors.New("empty field name")
	ErrInvalidFlag    = errors.New("invalid flag spelling")
)

// Error is returned by TryParseFrom. It unwraps to the engine error, so
// errors.Is(err, parser.ErrMissingArgument) and friends hold.
type Error struct {
	Type       ErrorType
	Field      string // field id, or the flag spelling for unknown flags
	Message    string
	Suggestion string
	Cause      error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Field != "" {
		b.WriteString(" '")
		b.WriteString(e.Field)
		b.WriteByte('\'')
	}
	if e.Suggestion != "" {
		b.WriteString(" (did you mean ")
		b.WriteString(e.Suggestion)
		b.WriteString("?)")
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Cause }

// newError wraps an engine error for field.
func newError(field string, cause error) *Error {
	typ, msg := describe(parser.KindOf(cause))
	return &Error{Type: typ, Field: field, Message: msg, Cause: cause}
}

func describe(kind parser.ErrorKind) (ErrorType, string) {
	switch kind {
	case parser.UndefinedArgument:
		return ErrorTypeUnknownFlag, "unknown flag"
	case parser.InvalidArgument:
		return ErrorTypeInvalidValue, "invalid value for"
	case parser.NoValueArgument:
		return ErrorTypeUnexpectedValue, "unexpected value for"
	case parser.MissingArgument:
		return ErrorTypeMissingValue, "missing value for"
	case parser.OutOfMemory:
		return ErrorTypeTooManyArgs, "too many arguments"
	default:
		return ErrorTypeDefinition, "invalid definition"
	}
}
