package parser

import "errors"

// ErrorKind categorizes parse and accessor failures.
type ErrorKind string

const (
	// UndefinedArgument: a flag on the command line has no lookup entry.
	UndefinedArgument ErrorKind = "undefined_argument"
	// InvalidArgument: a value cannot be decoded, or a single-value argument
	// holds more than one value.
	InvalidArgument ErrorKind = "invalid_argument"
	// NoValueArgument: a value was requested from a switch.
	NoValueArgument ErrorKind = "no_value_argument"
	// MissingArgument: a required argument or value is absent.
	MissingArgument ErrorKind = "missing_argument"
	// OutOfMemory: argv does not fit the store capacity.
	OutOfMemory ErrorKind = "out_of_memory"
)

// Error is returned by every fallible operation of the package.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrInvalidArgument)
// holds for wrapped or freshly built errors alike.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Preallocated errors keep the failure paths allocation-free.
var (
	ErrUndefinedArgument = &Error{Kind: UndefinedArgument, Message: "undefined argument"}
	ErrInvalidArgument   = &Error{Kind: InvalidArgument, Message: "invalid argument"}
	ErrNoValueArgument   = &Error{Kind: NoValueArgument, Message: "no value expected"}
	ErrMissingArgument   = &Error{Kind: MissingArgument, Message: "missing argument"}
	ErrOutOfMemory       = &Error{Kind: OutOfMemory, Message: "out of parser memory space"}
)

// KindOf returns the kind of err, or "" when err is not an *Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
