// Package shell is a line-oriented command interpreter built on the noshell
// engine. Each line is unescaped, split into words inside fixed buffers, and
// dispatched on its first word to a registered command whose arguments are
// bound by a noshell.Parser.
package shell

import (
	"context"
	"errors"
	"io"
	"iter"
	"strings"
	"unsafe"

	"github.com/dzonerzy/go-noshell/cmdline"
	"github.com/dzonerzy/go-noshell/internal/fuzzy"
	"github.com/dzonerzy/go-noshell/internal/intern"
	"github.com/dzonerzy/go-noshell/internal/pool"
	shellio "github.com/dzonerzy/go-noshell/io"
	"github.com/dzonerzy/go-noshell/middleware"
	"github.com/dzonerzy/go-noshell/noshell"
)

// ErrCommandNotFound is the cause of the error returned for an unknown
// command name.
var ErrCommandNotFound = errors.New("command not found")

// errExit stops Run after the exit built-in.
var errExit = errors.New("exit")

// Command is a registered command.
type Command struct {
	name        string
	description string
	run         func(ctx *Context) error
	usage       func(w io.Writer) error
}

func (c *Command) Name() string        { return c.name }
func (c *Command) Description() string { return c.description }

// Shell dispatches lines to commands. It is not safe for concurrent use.
type Shell struct {
	name     string
	config   Config
	io       *shellio.IOManager
	log      *shellio.Logger
	commands []*Command
	chain    middleware.Chain
	exit     *noshell.ExitCodes

	words    *pool.Slots[string]
	lines    *pool.Buffer
	exitCode int
}

// New returns a shell configured from the environment with the help and
// exit built-ins registered.
func New(name string) *Shell {
	s := &Shell{name: name, exit: noshell.NewExitCodes()}
	s.WithIO(shellio.New()).WithConfig(ConfigFromEnv())
	s.addBuiltins()
	return s
}

// WithConfig replaces the configuration. Non-positive sizes fall back to
// the defaults.
func (s *Shell) WithConfig(c Config) *Shell {
	def := DefaultConfig()
	if c.Words <= 0 {
		c.Words = def.Words
	}
	if c.LineSize <= 0 {
		c.LineSize = def.LineSize
	}
	s.config = c
	s.words = pool.NewSlots[string](c.Words)
	s.lines = pool.NewBuffer(c.LineSize)
	if s.log != nil {
		s.log.WithFormat(c.LogFormat)
	}
	return s
}

// WithIO sets the terminal streams.
func (s *Shell) WithIO(m *shellio.IOManager) *Shell {
	s.io = m
	s.log = shellio.NewLogger(m).WithFormat(s.config.LogFormat)
	return s
}

// Use appends middleware around every command.
func (s *Shell) Use(mw ...middleware.Middleware) *Shell {
	s.chain = s.chain.Use(mw...)
	return s
}

// ExitCodes exposes the mapping used by ExitCode.
func (s *Shell) ExitCodes() *noshell.ExitCodes { return s.exit }

// ExitCode maps the error returned by Run or Exec to a process exit code.
func (s *Shell) ExitCode(err error) int { return s.exit.Resolve(err) }

// Logger returns the shell logger.
func (s *Shell) Logger() *shellio.Logger { return s.log }

// Commands yields the registered commands in registration order.
func (s *Shell) Commands() iter.Seq[*Command] {
	return func(yield func(*Command) bool) {
		for _, c := range s.commands {
			if !yield(c) {
				return
			}
		}
	}
}

// Handle registers a command whose arguments are bound to a fresh R by p
// before action runs. It panics when the name is taken or the parser
// definition is invalid, since both are programming errors.
func Handle[R any](s *Shell, name, description string, p *noshell.Parser[R], action func(ctx *Context, rec *R) error) *Command {
	if err := p.Build(); err != nil {
		panic("shell: command " + name + ": " + err.Error())
	}
	cmd := &Command{
		name:        intern.Intern(name),
		description: description,
		usage: func(w io.Writer) error {
			return p.WithIO(s.io).Usage(w)
		},
		run: func(ctx *Context) error {
			var rec R
			if err := p.TryParseFrom(ctx.args, &rec); err != nil {
				return err
			}
			return action(ctx, &rec)
		},
	}
	s.add(cmd)
	return cmd
}

// HandleFunc registers a command that takes its words unparsed.
func (s *Shell) HandleFunc(name, description string, action func(ctx *Context) error) *Command {
	cmd := &Command{name: intern.Intern(name), description: description, run: action}
	s.add(cmd)
	return cmd
}

func (s *Shell) add(cmd *Command) {
	if cmd.name == "" || strings.ContainsAny(cmd.name, " \t\n\"") {
		panic("shell: invalid command name " + `"` + cmd.name + `"`)
	}
	if s.lookup(cmd.name) != nil {
		panic("shell: command " + cmd.name + " registered twice")
	}
	s.commands = append(s.commands, cmd)
}

func (s *Shell) lookup(name string) *Command {
	for _, c := range s.commands {
		if c.name == name {
			return c
		}
	}
	return nil
}

// Exec runs one line. Escapes are resolved, then the line is split into
// words; the first word names the command.
func (s *Shell) Exec(ctx context.Context, line string) (err error) {
	buf := s.lines.Get()
	defer func() {
		if !abandoned(err) {
			s.lines.Put(buf)
		}
	}()
	if len(line) > s.config.LineSize {
		return cmdline.ErrLineTooLong
	}
	*buf = append(*buf, line...)
	return s.exec(ctx, *buf)
}

// exec works in place on line, which must stay untouched until it returns.
// When the command is abandoned the line must not be reused at all.
func (s *Shell) exec(ctx context.Context, line []byte) (err error) {
	line = cmdline.Unescape(line[:0], line)

	argv := s.words.Get()
	defer func() {
		if !abandoned(err) {
			s.words.Put(argv)
		}
	}()

	words, err := cmdline.Words(unsafe.String(unsafe.SliceData(line), len(line)), (*argv)[:0])
	if err != nil {
		return err
	}
	if len(words) == 0 {
		return nil
	}

	cmd := s.lookup(words[0])
	if cmd == nil {
		return s.notFound(words[0])
	}

	cctx, cancel := context.WithCancel(ctx)
	defer cancel()
	c := &Context{ctx: cctx, cancel: cancel, shell: s, command: cmd, args: words[1:]}

	chain := s.chain
	if s.config.Timeout > 0 {
		chain = chain.Use(middleware.Timeout(s.config.Timeout))
	}
	return chain.Apply(func(middleware.Context) error { return cmd.run(c) })(c)
}

// abandoned reports whether err left a command running after exec returned.
// Its words still alias the line and argv buffers, so those are dropped
// instead of recycled.
func abandoned(err error) bool {
	var timeout *middleware.TimeoutError
	return errors.As(err, &timeout)
}

func (s *Shell) notFound(name string) error {
	e := &noshell.Error{
		Type:    noshell.ErrorTypeUnknownCommand,
		Field:   strings.Clone(name),
		Message: "command not found",
		Cause:   ErrCommandNotFound,
	}
	names := func(yield func(string) bool) {
		for _, c := range s.commands {
			if !yield(c.name) {
				return
			}
		}
	}
	if match, ok := fuzzy.Closest(name, names, fuzzy.Threshold(len(name))); ok {
		e.Suggestion = match
	}
	return e
}

// Run reads lines from the terminal until EOF, the exit built-in or ctx is
// done. Command errors are logged and do not stop the loop. Run returns nil
// on a clean exit, an *noshell.ExitError for "exit N" with N != 0, or the
// error that stopped it.
func (s *Shell) Run(ctx context.Context) error {
	buf := s.lines.Get()
	defer func() { s.lines.Put(buf) }()

	out := s.io.Out()
	if !s.io.IsInteractive() {
		out = io.Discard
	}
	editor := cmdline.NewEditor(s.io.In(), out, *buf)
	prompt := cmdline.NewPrompt(shellio.NewStyle().Fg(shellio.DefaultTheme(s.io).Prompt).Sprint(s.io, s.config.Prompt))

	for {
		line, err := s.readline(ctx, editor, prompt)
		switch {
		case errors.Is(err, cmdline.ErrInterrupted):
			continue
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, cmdline.ErrLineTooLong):
			s.log.Error("%v", err)
			continue
		case err != nil:
			return err
		}

		err = s.exec(ctx, line)
		if abandoned(err) {
			buf = s.lines.Get()
			editor = cmdline.NewEditor(s.io.In(), out, *buf)
		}
		switch {
		case errors.Is(err, errExit):
			if s.exitCode != 0 {
				return noshell.Exit(s.exitCode, nil)
			}
			return nil
		case err != nil:
			s.log.Error("%v", err)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// readline holds the terminal in raw mode only while a line is edited so
// that command output keeps its normal line discipline.
func (s *Shell) readline(ctx context.Context, e *cmdline.Editor, prompt cmdline.Prompt) ([]byte, error) {
	restore, err := s.io.MakeRaw()
	if err != nil {
		return nil, err
	}
	defer restore() //nolint:errcheck // nothing to do if the terminal cannot be restored
	return e.Readline(ctx, prompt)
}
