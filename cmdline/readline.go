package cmdline

import (
	"context"
	"errors"
	"io"
)

var (
	// ErrInterrupted is returned when the user presses Ctrl-C.
	ErrInterrupted = errors.New("interrupted")
	// ErrLineTooLong is returned when the line does not fit the buffer.
	ErrLineTooLong = errors.New("line too long")
)

// Key bytes understood by the editor.
const (
	keyInterrupt = 0x03
	keyEOF       = 0x04
	keyBackspace = 0x08
	keyEnter     = '\r'
	keyNewline   = '\n'
	keyEscape    = 0x1b
	keyDelete    = 0x7f
)

// continuationIndent is printed after an escaped Enter.
const continuationIndent = "\r\n    "

// Editor reads one line at a time from a terminal in raw mode. It handles one
// key event at a time and echoes what it accepts. The line is stored in a
// fixed buffer chosen by the caller.
type Editor struct {
	in  io.Reader
	out io.Writer
	buf []byte

	key [1]byte
}

// NewEditor returns an editor reading keys from in and echoing to out. Lines
// are limited to cap(buf) bytes.
func NewEditor(in io.Reader, out io.Writer, buf []byte) *Editor {
	return &Editor{in: in, out: out, buf: buf[:0]}
}

// Readline prints the prompt and collects key presses until Enter. A
// backslash right before Enter continues the line: the newline is kept and
// later removed by Unescape. The returned slice aliases the editor buffer
// and is only valid until the next call.
//
// Readline checks ctx between key presses; a read already blocked on the
// terminal is not interrupted.
func (e *Editor) Readline(ctx context.Context, prompt Prompt) ([]byte, error) {
	line := e.buf[:0]
	escaped := false

	if err := prompt.Render(e.out); err != nil {
		return nil, err
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		c, err := e.readKey()
		if err != nil {
			if errors.Is(err, io.EOF) && len(line) > 0 {
				return line, nil
			}
			return nil, err
		}

		switch c {
		case keyEnter, keyNewline:
			if !escaped {
				if _, err := io.WriteString(e.out, "\r\n"); err != nil {
					return nil, err
				}
				return line, nil
			}
			if len(line) == cap(line) {
				return nil, ErrLineTooLong
			}
			line = append(line, '\n')
			escaped = false
			if _, err := io.WriteString(e.out, continuationIndent); err != nil {
				return nil, err
			}

		case keyBackspace, keyDelete:
			if len(line) == 0 || line[len(line)-1] == '\n' {
				continue
			}
			line = line[:len(line)-1]
			escaped = len(line) > 0 && line[len(line)-1] == '\\'
			if _, err := io.WriteString(e.out, "\b \b"); err != nil {
				return nil, err
			}

		case keyInterrupt:
			_, _ = io.WriteString(e.out, "^C\r\n")
			return nil, ErrInterrupted

		case keyEOF:
			if len(line) == 0 {
				return nil, io.EOF
			}

		case keyEscape:
			if err := e.skipEscapeSequence(); err != nil {
				return nil, err
			}

		default:
			if c < 0x20 && c != '\t' {
				continue
			}
			if len(line) == cap(line) {
				return nil, ErrLineTooLong
			}
			line = append(line, c)
			escaped = c == '\\'
			e.key[0] = c
			if _, err := e.out.Write(e.key[:]); err != nil {
				return nil, err
			}
		}
	}
}

func (e *Editor) readKey() (byte, error) {
	for {
		n, err := e.in.Read(e.key[:])
		if n == 1 {
			return e.key[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}

// skipEscapeSequence discards a CSI sequence (ESC [ params final). Cursor
// keys are not supported.
func (e *Editor) skipEscapeSequence() error {
	c, err := e.readKey()
	if err != nil || c != '[' {
		return err
	}
	for {
		c, err = e.readKey()
		if err != nil {
			return err
		}
		if c >= 0x40 && c <= 0x7e {
			return nil
		}
	}
}
