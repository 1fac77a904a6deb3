package middleware

import (
	"context"
	"time"
)

// Timeout cancels a command that runs longer than duration and returns a
// *TimeoutError. A non-positive duration disables the limit. The action
// keeps running in its goroutine until it notices the canceled context.
func Timeout(duration time.Duration) Middleware {
	return func(next ActionFunc) ActionFunc {
		if duration <= 0 {
			return next
		}
		return func(ctx Context) error {
			timer, cancel := context.WithTimeout(ctx.Context(), duration)
			defer cancel()

			result := make(chan error, 1)
			go func() {
				defer func() {
					if r := recover(); r != nil {
						result <- &RecoveryError{Panic: r, Command: commandName(ctx)}
					}
				}()
				result <- next(ctx)
			}()

			select {
			case err := <-result:
				return err
			case <-timer.Done():
				if ctx.Context().Err() != nil {
					return context.Cause(ctx.Context())
				}
				ctx.Cancel()
				return &TimeoutError{Duration: duration, Command: commandName(ctx)}
			}
		}
	}
}

// TimeoutPerCommand applies a per-command timeout, falling back to
// defaultTimeout for commands not in the map.
func TimeoutPerCommand(timeouts map[string]time.Duration, defaultTimeout time.Duration) Middleware {
	return func(next ActionFunc) ActionFunc {
		return func(ctx Context) error {
			d, ok := timeouts[commandName(ctx)]
			if !ok {
				d = defaultTimeout
			}
			return Timeout(d)(next)(ctx)
		}
	}
}
