// Package noshell binds command-line arguments to the members of a Go
// struct.
//
// Fields are registered with a shape (Required, Optional, OptionalValue,
// List, OptionalList, Switch), a target accessor and a value decoder:
//
//	type config struct {
//		port    int
//		verbose bool
//		files   []string
//	}
//
//	p := noshell.New[config]("serve",
//		noshell.Required("port", func(c *config) *int { return &c.port }, parser.Int).Short('p'),
//		noshell.Switch("verbose", func(c *config) *bool { return &c.verbose }).Short('v'),
//		noshell.OptionalList("files", func(c *config) *[]string { return &c.files }, parser.String),
//	)
//
// Parsing runs the zero-allocation engine from package parser over a pooled
// argument buffer, then hands each field its values. String values alias
// argv.
package noshell

import (
	"fmt"
	"io"
	"iter"
	"os"
	"strings"
	"sync"

	"github.com/dzonerzy/go-noshell/internal/fuzzy"
	"github.com/dzonerzy/go-noshell/internal/intern"
	"github.com/dzonerzy/go-noshell/internal/pool"
	shellio "github.com/dzonerzy/go-noshell/io"
	"github.com/dzonerzy/go-noshell/parser"
)

var osExit = os.Exit

// Parser binds argv to a record of type R. A built Parser is safe for
// concurrent TryParseFrom calls on distinct records.
type Parser[R any] struct {
	name     string
	about    string
	fields   []*Field[R]
	rest     func(*R) *[]string
	capacity int

	once  sync.Once
	err   error
	table parser.LookupTable
	bufs  *pool.Pool[parser.ParsedArgs]

	io   *shellio.IOManager
	exit *ExitCodes
}

// New returns a parser named name with the given fields.
func New[R any](name string, fields ...*Field[R]) *Parser[R] {
	return &Parser[R]{
		name:     name,
		fields:   fields,
		capacity: parser.DefaultCapacity,
		io:       shellio.New(),
		exit:     NewExitCodes(),
	}
}

// Add registers more fields. Fields added after Build are ignored.
func (p *Parser[R]) Add(fields ...*Field[R]) *Parser[R] {
	p.fields = append(p.fields, fields...)
	return p
}

// About sets the description printed by Usage.
func (p *Parser[R]) About(text string) *Parser[R] { p.about = text; return p }

// Capacity sets the maximum number of argv elements one parse accepts.
func (p *Parser[R]) Capacity(n int) *Parser[R] { p.capacity = n; return p }

// Rest collects every positional value, in argv order, into target.
// Without Rest, positionals are ignored.
func (p *Parser[R]) Rest(target func(*R) *[]string) *Parser[R] { p.rest = target; return p }

// WithIO sets the streams used by ParseFrom and Usage.
func (p *Parser[R]) WithIO(m *shellio.IOManager) *Parser[R] { p.io = m; return p }

// ExitCodes exposes the exit code mapping used by ParseFrom.
func (p *Parser[R]) ExitCodes() *ExitCodes { return p.exit }

func (p *Parser[R]) Name() string        { return p.name }
func (p *Parser[R]) Description() string { return p.about }

// Build validates the field definitions and freezes the lookup table. It is
// called by the first parse; calling it early surfaces definition errors at
// startup.
func (p *Parser[R]) Build() error {
	p.once.Do(func() { p.err = p.build() })
	return p.err
}

func (p *Parser[R]) build() error {
	if p.capacity <= 0 {
		return fmt.Errorf("%s: capacity must be positive, got %d", p.name, p.capacity)
	}

	entries := make([]parser.LookupEntry, 0, 2*len(p.fields))
	ids := make(map[string]struct{}, len(p.fields))
	owners := make(map[parser.Flag]string, 2*len(p.fields))

	for _, f := range p.fields {
		if f.id == "" {
			return ErrEmptyName
		}
		if _, dup := ids[f.id]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateField, f.id)
		}
		f.id = intern.Intern(f.id)
		ids[f.id] = struct{}{}

		if !f.hasShort && !f.hasLong {
			f.long, f.hasLong = f.id, true
		}

		var flags [2]parser.Flag
		spellings := flags[:0]
		if f.hasShort {
			if f.short == '-' || ('0' <= f.short && f.short <= '9') || !parser.IsShortChar(f.short) {
				return fmt.Errorf("%w: short %q for field %q cannot be typed as a flag", ErrInvalidFlag, f.short, f.id)
			}
			spellings = append(spellings, parser.ShortFlag(f.short))
		}
		if f.hasLong {
			if f.long == "" || f.long[0] == '-' {
				return fmt.Errorf("%w: %q for field %q", ErrInvalidFlag, f.long, f.id)
			}
			f.long = intern.Intern(f.long)
			spellings = append(spellings, parser.LongFlag(f.long))
		}

		for _, flag := range spellings {
			if owner, dup := owners[flag]; dup {
				return fmt.Errorf("%w: %s is used by %q and %q", ErrDuplicateFlag, flag, owner, f.id)
			}
			owners[flag] = f.id
			entries = append(entries, parser.LookupEntry{Flag: flag, ID: f.id, AtMost: f.shape.AtMost()})
		}
	}

	p.table = parser.NewLookupTable(entries...)
	capacity := p.capacity
	p.bufs = pool.NewWithReset(
		func() *parser.ParsedArgs {
			args := parser.NewParsedArgs(make([]parser.Arg, capacity))
			return &args
		},
		(*parser.ParsedArgs).Reset,
	)
	return nil
}

// Table returns the lookup table, building the parser if needed.
func (p *Parser[R]) Table() (*parser.LookupTable, error) {
	if err := p.Build(); err != nil {
		return nil, err
	}
	return &p.table, nil
}

// TryParseFrom parses argv into rec. Members whose flags are absent keep
// their current values, except switches which are set to false. On error rec
// may be partially written.
func (p *Parser[R]) TryParseFrom(argv []string, rec *R) error {
	if err := p.Build(); err != nil {
		return err
	}

	args := p.bufs.Get()
	defer func() {
		args.Reset()
		p.bufs.Put(args)
	}()

	if err := args.Parse(argv, &p.table); err != nil {
		return p.parseError(argv, err)
	}

	for _, f := range p.fields {
		if err := f.bind(rec, args); err != nil {
			return err
		}
	}

	if p.rest != nil {
		dst := p.rest(rec)
		*dst = args.Positionals((*dst)[:0])
	}
	return nil
}

func (p *Parser[R]) parseError(argv []string, err error) error {
	if parser.KindOf(err) != parser.UndefinedArgument {
		return newError("", err)
	}
	flag, _ := parser.FirstUndefined(argv, &p.table)
	e := newError(flag.String(), err)
	if flag.IsLong() {
		if match, ok := fuzzy.Closest(flag.Long, p.longSpellings(), fuzzy.Threshold(len(flag.Long))); ok {
			e.Suggestion = "--" + match
		}
	}
	return e
}

func (p *Parser[R]) longSpellings() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, e := range p.table.Entries() {
			if e.Flag.IsLong() && !yield(e.Flag.Long) {
				return
			}
		}
	}
}

// ParseFrom is TryParseFrom that reports failures on the error stream and
// exits with the code mapped by ExitCodes.
func (p *Parser[R]) ParseFrom(argv []string, rec *R) {
	err := p.TryParseFrom(argv, rec)
	if err == nil {
		return
	}
	shellio.NewLogger(p.io).Error("%s: %v", p.name, err)
	_ = p.Usage(p.io.Err())
	osExit(p.exit.Resolve(err))
}

// Parse is ParseFrom over os.Args[1:].
func (p *Parser[R]) Parse(rec *R) { p.ParseFrom(os.Args[1:], rec) }

// Usage writes a synopsis and one line per field.
func (p *Parser[R]) Usage(w io.Writer) error {
	if err := p.Build(); err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(p.io.Bold("Usage:"))
	b.WriteString(" " + p.name)
	if len(p.fields) > 0 {
		b.WriteString(" [OPTIONS]")
	}
	if p.rest != nil {
		b.WriteString(" [ARGS...]")
	}
	b.WriteByte('\n')
	if p.about != "" {
		b.WriteString("\n" + p.about + "\n")
	}

	if len(p.fields) > 0 {
		b.WriteString("\n" + p.io.Bold("Options:") + "\n")
		names := make([]string, len(p.fields))
		width := 0
		for i, f := range p.fields {
			names[i] = f.synopsis()
			width = max(width, len(names[i]))
		}
		for i, f := range p.fields {
			b.WriteString("  ")
			b.WriteString(names[i])
			if f.help != "" || f.shape == ShapeRequired || f.shape == ShapeList {
				b.WriteString(strings.Repeat(" ", width-len(names[i])+2))
				b.WriteString(f.help)
				if f.shape == ShapeRequired || f.shape == ShapeList {
					b.WriteString(p.io.Faint(" (required)"))
				}
			}
			b.WriteByte('\n')
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// synopsis renders the spellings and value placeholder, e.g.
// "-p, --port <PORT>".
func (f *Field[R]) synopsis() string {
	var b strings.Builder
	if f.hasShort {
		b.WriteByte('-')
		b.WriteString(intern.Rune(f.short))
	} else {
		b.WriteString("  ")
	}
	if f.hasLong {
		if f.hasShort {
			b.WriteString(", ")
		} else {
			b.WriteString("  ")
		}
		b.WriteString("--")
		b.WriteString(f.long)
	}

	meta := f.meta
	if meta == "" {
		meta = strings.ToUpper(f.id)
	}
	switch f.shape {
	case ShapeSwitch:
	case ShapeOptionalValue:
		b.WriteString(" [<" + meta + ">]")
	case ShapeList, ShapeOptionalList:
		b.WriteString(" <" + meta + ">...")
	default:
		b.WriteString(" <" + meta + ">")
	}
	return b.String()
}
