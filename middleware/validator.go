package middleware

import (
	"errors"
	"os"
)

// ValidatorFunc checks an invocation before the action runs.
type ValidatorFunc func(ctx Context) error

// NamedValidator pairs a check with the name reported on failure.
type NamedValidator struct {
	Name string
	Fn   ValidatorFunc
}

// Custom names a validator.
func Custom(name string, fn ValidatorFunc) NamedValidator {
	return NamedValidator{Name: name, Fn: fn}
}

// Validate runs validators in order and stops at the first failure, which is
// returned as a *ValidationError.
func Validate(validators ...NamedValidator) Middleware {
	return func(next ActionFunc) ActionFunc {
		return func(ctx Context) error {
			for _, v := range validators {
				err := v.Fn(ctx)
				if err == nil {
					continue
				}
				var verr *ValidationError
				if errors.As(err, &verr) {
					return verr
				}
				return &ValidationError{Field: v.Name, Message: "validation failed", Cause: err}
			}
			return next(ctx)
		}
	}
}

// ArgCount rejects invocations whose word count falls outside [lo, hi].
// A negative hi means no upper bound.
func ArgCount(lo, hi int) NamedValidator {
	return Custom("args", func(ctx Context) error {
		n := len(ctx.Args())
		if n < lo || (hi >= 0 && n > hi) {
			return &ValidationError{Field: "args", Message: "wrong number of arguments"}
		}
		return nil
	})
}

// FileArg checks that the positional word at index names an existing
// regular file. Missing words are left to the binding layer.
func FileArg(index int) NamedValidator {
	return Custom("file", func(ctx Context) error {
		args := ctx.Args()
		if index >= len(args) {
			return nil
		}
		info, err := os.Stat(args[index])
		if err != nil {
			return &ValidationError{Field: args[index], Message: "file does not exist", Cause: err}
		}
		if info.IsDir() {
			return &ValidationError{Field: args[index], Message: "is a directory"}
		}
		return nil
	})
}
