package shell

import (
	"context"
	"io"

	shellio "github.com/dzonerzy/go-noshell/io"
	"github.com/dzonerzy/go-noshell/middleware"
)

// Context is handed to command actions and middleware for one invocation.
type Context struct {
	ctx     context.Context
	cancel  context.CancelFunc
	shell   *Shell
	command *Command
	args    []string
	values  map[string]any
}

var _ middleware.Context = (*Context)(nil)

func (c *Context) Context() context.Context { return c.ctx }
func (c *Context) Done() <-chan struct{}    { return c.ctx.Done() }
func (c *Context) Cancel()                  { c.cancel() }

// Args returns the words after the command name. They alias the shell's line
// buffer: copy any word that must outlive the action.
func (c *Context) Args() []string { return c.args }

func (c *Context) Command() middleware.Command { return c.command }

func (c *Context) Set(key string, value any) {
	if c.values == nil {
		c.values = make(map[string]any, 4)
	}
	c.values[key] = value
}

func (c *Context) Get(key string) any { return c.values[key] }

// Out is the shell's output stream.
func (c *Context) Out() io.Writer { return c.shell.io.Out() }

// Err is the shell's error stream.
func (c *Context) Err() io.Writer { return c.shell.io.Err() }

// Logger is the shell's logger.
func (c *Context) Logger() *shellio.Logger { return c.shell.log }

// Shell returns the shell running the command.
func (c *Context) Shell() *Shell { return c.shell }
