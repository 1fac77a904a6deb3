package cmdline

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestReadline(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		echo  string
	}{
		{"enter", "ls -l\r", "ls -l", "> ls -l\r\n"},
		{"newline", "ls\n", "ls", "> ls\r\n"},
		{"backspace", "lx\x7fs\r", "ls", "> lx\b \bs\r\n"},
		{"continuation", "a \\\rb\r", "a \\\nb", "> a \\" + continuationIndent + "b\r\n"},
		{"backspace stops at continuation", "a\\\r\x7fb\r", "a\\\nb", "> a\\" + continuationIndent + "b\r\n"},
		{"escape sequence ignored", "a\x1b[Db\r", "ab", "> ab\r\n"},
		{"control bytes ignored", "a\x01b\r", "ab", "> ab\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			ed := NewEditor(strings.NewReader(tt.input), &out, make([]byte, 0, 64))

			line, err := ed.Readline(context.Background(), NewPrompt(">"))
			if err != nil {
				t.Fatalf("Readline failed: %v", err)
			}
			if string(line) != tt.want {
				t.Errorf("line = %q, want %q", line, tt.want)
			}
			if got := strings.TrimPrefix(out.String(), "\r"); got != tt.echo {
				t.Errorf("echo = %q, want %q", got, tt.echo)
			}
		})
	}
}

func TestReadlineErrors(t *testing.T) {
	ctx := context.Background()

	ed := NewEditor(strings.NewReader("abcdef\r"), io.Discard, make([]byte, 0, 4))
	if _, err := ed.Readline(ctx, Prompt{}); !errors.Is(err, ErrLineTooLong) {
		t.Errorf("err = %v, want line too long", err)
	}

	ed = NewEditor(strings.NewReader("ab\x03"), io.Discard, make([]byte, 0, 8))
	if _, err := ed.Readline(ctx, Prompt{}); !errors.Is(err, ErrInterrupted) {
		t.Errorf("err = %v, want interrupted", err)
	}

	ed = NewEditor(strings.NewReader("\x04"), io.Discard, make([]byte, 0, 8))
	if _, err := ed.Readline(ctx, Prompt{}); !errors.Is(err, io.EOF) {
		t.Errorf("err = %v, want EOF", err)
	}

	ed = NewEditor(strings.NewReader("last"), io.Discard, make([]byte, 0, 8))
	if line, err := ed.Readline(ctx, Prompt{}); err != nil || string(line) != "last" {
		t.Errorf("unterminated final line = (%q, %v)", line, err)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	ed = NewEditor(strings.NewReader("x\r"), io.Discard, make([]byte, 0, 8))
	if _, err := ed.Readline(cancelled, Prompt{}); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context canceled", err)
	}
}

func TestReadlineThenSplit(t *testing.T) {
	input := "-f value1 \\\r--flag2 \"value2.1 value2.2\"\r"
	ed := NewEditor(strings.NewReader(input), io.Discard, make([]byte, 0, 128))

	line, err := ed.Readline(context.Background(), Prompt{})
	if err != nil {
		t.Fatalf("Readline failed: %v", err)
	}
	line = Unescape(line[:0], line)

	words, err := Words(string(line), make([]string, 0, 8))
	if err != nil {
		t.Fatalf("Words failed: %v", err)
	}
	if len(words) != 4 || words[3] != "value2.1 value2.2" {
		t.Errorf("words = %q", words)
	}
}
