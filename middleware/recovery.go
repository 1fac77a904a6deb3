package middleware

import (
	"fmt"
	"io"
	"os"
	"runtime"
)

// Recovery turns a panic inside a command into a *RecoveryError so that the
// shell keeps running. With WithStackTrace(true) the stack is also printed to
// stderr.
func Recovery(options ...Option) Middleware {
	return RecoveryTo(os.Stderr, options...)
}

// RecoveryTo is Recovery printing stacks to w.
func RecoveryTo(w io.Writer, options ...Option) Middleware {
	config := newConfig(options)

	return func(next ActionFunc) ActionFunc {
		return func(ctx Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				var stack []byte
				if config.PrintStack {
					stack = make([]byte, config.StackSize)
					stack = stack[:runtime.Stack(stack, false)]
				}
				rerr := &RecoveryError{Panic: r, Command: commandName(ctx), Stack: stack}
				if len(stack) > 0 {
					fmt.Fprintf(w, "PANIC in command '%s': %v\n%s\n", rerr.Command, r, stack)
				}
				ctx.Set("recovery.panic", r)
				err = rerr
			}()
			return next(ctx)
		}
	}
}
