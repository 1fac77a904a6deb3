package shell

import (
	"time"

	"github.com/xyproto/env/v2"

	shellio "github.com/dzonerzy/go-noshell/io"
)

// Config holds the shell settings. ConfigFromEnv reads them from NOSHELL_*
// variables.
type Config struct {
	Prompt    string
	Words     int // maximum words per line
	LineSize  int // maximum bytes per line
	LogFormat shellio.LogFormat
	Timeout   time.Duration // per command; zero disables
}

// DefaultConfig is used by New before the environment is applied.
func DefaultConfig() Config {
	return Config{
		Prompt:   ">",
		Words:    32,
		LineSize: 1024,
	}
}

// ConfigFromEnv applies NOSHELL_PROMPT, NOSHELL_CAPACITY, NOSHELL_LINE_SIZE,
// NOSHELL_LOG_FORMAT and NOSHELL_TIMEOUT over DefaultConfig. Malformed values
// keep the default. The environment is re-read on every call.
func ConfigFromEnv() Config {
	env.Load()
	c := DefaultConfig()
	c.Prompt = env.Str("NOSHELL_PROMPT", c.Prompt)
	if n := env.Int("NOSHELL_CAPACITY", c.Words); n > 0 {
		c.Words = n
	}
	if n := env.Int("NOSHELL_LINE_SIZE", c.LineSize); n > 0 {
		c.LineSize = n
	}
	c.LogFormat = shellio.ParseLogFormat(env.Str("NOSHELL_LOG_FORMAT"))
	if d, err := time.ParseDuration(env.Str("NOSHELL_TIMEOUT", "0s")); err == nil && d > 0 {
		c.Timeout = d
	}
	return c
}
