package noshell

import (
	"errors"

	"github.com/dzonerzy/go-noshell/middleware"
)

// ExitError asks ParseFrom callers and the shell to exit with Code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "exit"
}

func (e *ExitError) Unwrap() error { return e.Err }

// Exit builds an *ExitError.
func Exit(code int, err error) error { return &ExitError{Code: code, Err: err} }

// ExitDefaults are the codes used when no specific mapping applies.
type ExitDefaults struct {
	Success    int // 0
	General    int // 1
	Misusage   int // 2
	Validation int // 3
	NotFound   int // 127
}

// ExitCodes maps errors to process exit codes. Resolution order:
// *ExitError, then the binding error type, then errors registered with
// DefineError, then middleware errors, then General.
type ExitCodes struct {
	byType   map[ErrorType]int
	byError  []errorCode
	defaults ExitDefaults
}

type errorCode struct {
	target error
	code   int
}

// NewExitCodes returns the default mapping: binding errors exit 2,
// unknown commands 127, validation failures 3, everything else 1.
func NewExitCodes() *ExitCodes {
	d := ExitDefaults{Success: 0, General: 1, Misusage: 2, Validation: 3, NotFound: 127}
	return &ExitCodes{
		byType: map[ErrorType]int{
			ErrorTypeUnknownFlag:     d.Misusage,
			ErrorTypeInvalidValue:    d.Misusage,
			ErrorTypeMissingValue:    d.Misusage,
			ErrorTypeUnexpectedValue: d.Misusage,
			ErrorTypeTooManyArgs:     d.Misusage,
			ErrorTypeUnknownCommand:  d.NotFound,
			ErrorTypeDefinition:      d.General,
		},
		defaults: d,
	}
}

// Define overrides the code for a binding error type.
func (c *ExitCodes) Define(typ ErrorType, code int) *ExitCodes { c.byType[typ] = code; return c }

// DefineError maps every error matching target with errors.Is to code.
func (c *ExitCodes) DefineError(target error, code int) *ExitCodes {
	if target != nil {
		c.byError = append(c.byError, errorCode{target: target, code: code})
	}
	return c
}

// Default replaces the fallback codes.
func (c *ExitCodes) Default(d ExitDefaults) *ExitCodes { c.defaults = d; return c }

// Resolve converts err to an exit code.
func (c *ExitCodes) Resolve(err error) int {
	if err == nil {
		return c.defaults.Success
	}

	var exit *ExitError
	if errors.As(err, &exit) {
		return exit.Code
	}

	var bind *Error
	if errors.As(err, &bind) {
		if code, ok := c.byType[bind.Type]; ok {
			return code
		}
		return c.defaults.Misusage
	}

	for _, m := range c.byError {
		if errors.Is(err, m.target) {
			return m.code
		}
	}

	var verr *middleware.ValidationError
	if errors.As(err, &verr) {
		return c.defaults.Validation
	}
	return c.defaults.General
}
