package middleware

import (
	"encoding/json"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/dzonerzy/go-noshell/internal/pool"
)

// invocation is the record Logger writes for one command run.
type invocation struct {
	command  string
	args     []string
	start    time.Time
	duration time.Duration
	err      error
}

var (
	invocations = pool.NewWithReset(
		func() *invocation { return &invocation{args: make([]string, 0, 8)} },
		func(inv *invocation) {
			clear(inv.args)
			*inv = invocation{args: inv.args[:0]}
		},
	)
	lineBuffers = pool.NewBuffer(256)
)

// Logger writes one line per command run to stderr.
func Logger(options ...Option) Middleware {
	return LoggerTo(os.Stderr, options...)
}

// LoggerTo writes one line per command run to w. At LogLevelDebug a START
// line precedes the run; at LogLevelError only failures are written.
func LoggerTo(w io.Writer, options ...Option) Middleware {
	config := newConfig(options)

	return func(next ActionFunc) ActionFunc {
		return func(ctx Context) error {
			if config.LogLevel == LogLevelNone {
				return next(ctx)
			}

			inv := invocations.Get()
			defer invocations.Put(inv)

			inv.command = commandName(ctx)
			if config.IncludeArgs {
				inv.args = append(inv.args, ctx.Args()...)
			}
			inv.start = time.Now()
			ctx.Set("logger.start", inv.start)

			if config.LogLevel >= LogLevelDebug {
				writeLog(w, config, inv, "START")
			}

			err := next(ctx)
			inv.duration = time.Since(inv.start)
			inv.err = err

			switch {
			case err != nil:
				writeLog(w, config, inv, "ERROR")
			case config.LogLevel >= LogLevelInfo:
				writeLog(w, config, inv, "SUCCESS")
			}
			return err
		}
	}
}

func writeLog(w io.Writer, config *Config, inv *invocation, level string) {
	buf := lineBuffers.Get()
	defer lineBuffers.Put(buf)

	if config.LogFormat == LogFormatJSON {
		*buf = appendJSON(*buf, inv, level)
	} else {
		*buf = appendText(*buf, inv, level)
	}
	//nolint:errcheck,gosec // logging is best-effort
	w.Write(*buf)
}

func appendText(b []byte, inv *invocation, level string) []byte {
	b = append(b, '[')
	b = inv.start.AppendFormat(b, "2006-01-02 15:04:05")
	b = append(b, "] "...)
	b = append(b, level...)
	b = append(b, " command="...)
	b = append(b, inv.command...)
	if inv.duration > 0 {
		b = append(b, " duration="...)
		b = append(b, inv.duration.String()...)
	}
	if len(inv.args) > 0 {
		b = append(b, " args="...)
		for i, arg := range inv.args {
			if i > 0 {
				b = append(b, ' ')
			}
			b = append(b, arg...)
		}
	}
	if inv.err != nil {
		b = append(b, " error="...)
		b = strconv.AppendQuote(b, inv.err.Error())
	}
	return append(b, '\n')
}

func appendJSON(b []byte, inv *invocation, level string) []byte {
	b = append(b, `{"timestamp":"`...)
	b = inv.start.AppendFormat(b, time.RFC3339)
	b = append(b, `","level":"`...)
	b = append(b, level...)
	b = append(b, `","command":`...)
	b = appendJSONString(b, inv.command)
	if inv.duration > 0 {
		b = append(b, `,"duration_ms":`...)
		b = strconv.AppendInt(b, inv.duration.Milliseconds(), 10)
	}
	if len(inv.args) > 0 {
		b = append(b, `,"args":[`...)
		for i, arg := range inv.args {
			if i > 0 {
				b = append(b, ',')
			}
			b = appendJSONString(b, arg)
		}
		b = append(b, ']')
	}
	if inv.err != nil {
		b = append(b, `,"error":`...)
		b = appendJSONString(b, inv.err.Error())
	}
	return append(b, "}\n"...)
}

func appendJSONString(b []byte, s string) []byte {
	enc, err := json.Marshal(s)
	if err != nil {
		return append(b, `""`...)
	}
	return append(b, enc...)
}
