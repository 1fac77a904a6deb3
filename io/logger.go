package shellio

import (
	"fmt"
	stdio "io"
	"strings"
	"time"
)

// LogLevel is the severity of a log line.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelSuccess
	LevelWarning
	LevelError
)

func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelSuccess:
		return "SUCCESS"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LogFormat selects how a line is prefixed.
type LogFormat int

const (
	LogFormatSymbols LogFormat = iota // ● ◆ ✓ ▲ ✗
	LogFormatTagged                   // [INFO] [WARN] ...
	LogFormatPlain                    // no prefix
)

// ParseLogFormat maps "symbols", "tagged" and "plain" to a LogFormat.
// Unknown names fall back to LogFormatSymbols.
func ParseLogFormat(name string) LogFormat {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "tagged":
		return LogFormatTagged
	case "plain":
		return LogFormatPlain
	default:
		return LogFormatSymbols
	}
}

var (
	symbolPrefixes = [...]string{"●", "◆", "✓", "▲", "✗"}
	taggedPrefixes = [...]string{"[DEBUG]", "[INFO]", "[SUCCESS]", "[WARN]", "[ERROR]"}
)

// Logger writes leveled, optionally colored lines. Warnings and errors go to
// the error stream unless ErrorsToStderr(false) is set.
type Logger struct {
	io           *IOManager
	format       LogFormat
	minLevel     LogLevel
	withTime     bool
	timeFormat   string
	errorsStderr bool
	theme        Theme
}

// NewLogger returns a logger bound to m using the default theme for its
// color level.
func NewLogger(m *IOManager) *Logger {
	return &Logger{
		io:           m,
		format:       LogFormatSymbols,
		minLevel:     LevelInfo,
		errorsStderr: true,
		timeFormat:   "15:04:05",
		theme:        DefaultTheme(m),
	}
}

func (l *Logger) WithFormat(format LogFormat) *Logger { l.format = format; return l }
func (l *Logger) WithLevel(level LogLevel) *Logger    { l.minLevel = level; return l }
func (l *Logger) WithTimestamp(enabled bool) *Logger  { l.withTime = enabled; return l }
func (l *Logger) WithTimeFormat(f string) *Logger     { l.timeFormat = f; return l }
func (l *Logger) WithTheme(theme Theme) *Logger       { l.theme = theme; return l }
func (l *Logger) ErrorsToStderr(enabled bool) *Logger { l.errorsStderr = enabled; return l }

// Log writes one line at level. Lines below the minimum level are dropped.
func (l *Logger) Log(level LogLevel, format string, args ...any) {
	if level < l.minLevel {
		return
	}
	fmt.Fprintln(l.writer(level), l.format1(level, fmt.Sprintf(format, args...)))
}

func (l *Logger) format1(level LogLevel, msg string) string {
	var prefix string
	switch l.format {
	case LogFormatSymbols:
		prefix = symbolPrefixes[level]
	case LogFormatTagged:
		prefix = taggedPrefixes[level]
	}
	if prefix != "" {
		prefix = NewStyle().Fg(l.color(level)).Sprint(l.io, prefix)
	}

	var b strings.Builder
	b.WriteString(prefix)
	if l.withTime {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(l.io.Faint("[" + time.Now().Format(l.timeFormat) + "]"))
	}
	if strings.TrimSpace(msg) != "" {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(msg)
	}
	return b.String()
}

func (l *Logger) color(level LogLevel) ColorSpec {
	switch level {
	case LevelDebug:
		return l.theme.Debug
	case LevelSuccess:
		return l.theme.Success
	case LevelWarning:
		return l.theme.Warning
	case LevelError:
		return l.theme.Error
	default:
		return l.theme.Info
	}
}

func (l *Logger) writer(level LogLevel) stdio.Writer {
	if l.errorsStderr && level >= LevelWarning {
		return l.io.Err()
	}
	return l.io.Out()
}

func (l *Logger) Debug(format string, args ...any)   { l.Log(LevelDebug, format, args...) }
func (l *Logger) Info(format string, args ...any)    { l.Log(LevelInfo, format, args...) }
func (l *Logger) Success(format string, args ...any) { l.Log(LevelSuccess, format, args...) }
func (l *Logger) Warning(format string, args ...any) { l.Log(LevelWarning, format, args...) }
func (l *Logger) Error(format string, args ...any)   { l.Log(LevelError, format, args...) }
