package shell

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dzonerzy/go-noshell/parser"
)

func (s *Shell) addBuiltins() {
	s.HandleFunc("help", "Show commands, or the usage of one command", s.help)
	s.HandleFunc("exit", "Leave the shell with an optional status", s.exitCmd)
}

func (s *Shell) help(ctx *Context) error {
	w := ctx.Out()
	if args := ctx.Args(); len(args) > 0 {
		cmd := s.lookup(args[0])
		if cmd == nil {
			return s.notFound(args[0])
		}
		if cmd.usage != nil {
			return cmd.usage(w)
		}
		_, err := fmt.Fprintf(w, "%s - %s\n", cmd.name, cmd.description)
		return err
	}

	width := 0
	for _, c := range s.commands {
		width = max(width, len(c.name))
	}
	var b strings.Builder
	b.WriteString(s.io.Bold("Commands:"))
	b.WriteByte('\n')
	for _, c := range s.commands {
		b.WriteString("  ")
		b.WriteString(c.name)
		b.WriteString(strings.Repeat(" ", width-len(c.name)+2))
		b.WriteString(c.description)
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (s *Shell) exitCmd(ctx *Context) error {
	s.exitCode = 0
	if args := ctx.Args(); len(args) > 0 {
		code, err := parser.Int(args[0])
		if err != nil {
			return fmt.Errorf("exit: invalid status %s", strconv.Quote(args[0]))
		}
		s.exitCode = code
	}
	return errExit
}
