package parser

// DefaultCapacity is the number of Arg slots used when a caller does not pick
// one.
const DefaultCapacity = 32

// ArgKind tells named arguments from positional ones.
type ArgKind uint8

const (
	// Named is a flag, resolved to its canonical id, with its values.
	Named ArgKind = iota + 1
	// Positional is a value that no open flag claimed.
	Positional
)

// Arg is one grouped argument. Named arguments carry ID and Values;
// positional arguments carry Value. Every string aliases argv.
type Arg struct {
	Kind   ArgKind
	ID     string
	Values Values
	Value  string
}

// NamedArg builds a named argument.
func NamedArg(id string, values Values) Arg {
	return Arg{Kind: Named, ID: id, Values: values}
}

// PositionalArg builds a positional argument.
func PositionalArg(value string) Arg {
	return Arg{Kind: Positional, Value: value}
}

// Equal reports structural equality.
func (a Arg) Equal(b Arg) bool {
	return a.Kind == b.Kind && a.ID == b.ID && a.Value == b.Value && a.Values.Equal(b.Values)
}

// ParsedArgs is the fixed-capacity result of one parse. It never grows: its
// backing array is supplied by the caller and its capacity is the length of
// that array.
//
// ParsedArgs borrows from argv: the argv slice must outlive the store and
// every value obtained from it.
type ParsedArgs struct {
	args []Arg
	n    int
}

// NewParsedArgs returns an empty store backed by buf. The capacity is len(buf).
func NewParsedArgs(buf []Arg) ParsedArgs {
	return ParsedArgs{args: buf[:len(buf):len(buf)]}
}

// TryParseFrom groups argv into a store backed by buf.
//
// On error no argument is observable: the returned store is empty.
func TryParseFrom(argv []string, table *LookupTable, buf []Arg) (ParsedArgs, error) {
	p := NewParsedArgs(buf)
	if err := p.Parse(argv, table); err != nil {
		return p, err
	}
	return p, nil
}

// MustParseFrom is TryParseFrom that panics on error. It is meant for tests
// and prototypes.
func MustParseFrom(argv []string, table *LookupTable, buf []Arg) ParsedArgs {
	p, err := TryParseFrom(argv, table, buf)
	if err != nil {
		panic("cannot parse arguments: " + err.Error())
	}
	return p
}

// Parse clears the store and fills it from argv. Validation runs over the
// whole of argv before anything is written, so a failed parse leaves the
// store empty.
func (p *ParsedArgs) Parse(argv []string, table *LookupTable) error {
	p.Reset()

	if len(argv) > len(p.args) {
		return ErrOutOfMemory
	}
	if _, undefined := FirstUndefined(argv, table); undefined {
		return ErrUndefinedArgument
	}

	p.group(argv, table)
	return nil
}

// FirstUndefined returns the first flag in argv that has no entry in table.
func FirstUndefined(argv []string, table *LookupTable) (Flag, bool) {
	for _, arg := range argv {
		tok := Tokenize(arg)
		if tok.Kind == TokenFlag && !table.Has(tok.Flag) {
			return tok.Flag, true
		}
	}
	return Flag{}, false
}

// group is the single left-to-right fold. A pending flag collects the run of
// values that follows it; the run is closed by the next flag or by the end of
// argv. Validation already guaranteed that every flag resolves and that the
// store can hold one Arg per argv element, so the fold cannot fail.
func (p *ParsedArgs) group(argv []string, table *LookupTable) {
	var (
		pending    Flag
		hasPending bool
		start      int
	)

	for i, arg := range argv {
		tok := Tokenize(arg)

		switch {
		case hasPending && tok.Kind == TokenFlag:
			p.closeRun(pending, argv[start:i], table)
			pending, start = tok.Flag, i+1

		case hasPending:
			// The value joins the pending run.

		case tok.Kind == TokenFlag:
			pending, start, hasPending = tok.Flag, i+1, true

		default:
			p.push(PositionalArg(tok.Value))
		}
	}

	if hasPending {
		p.closeRun(pending, argv[start:], table)
	}
}

// closeRun emits the named argument for flag and, depending on its
// cardinality, the leftover values of run as positionals.
func (p *ParsedArgs) closeRun(flag Flag, run []string, table *LookupTable) {
	id, atMost, _ := table.MetadataOf(flag)

	var rest []string
	switch atMost {
	case Zero:
		p.push(NamedArg(id, EmptyValues()))
		rest = run
	case One:
		if len(run) == 0 {
			p.push(NamedArg(id, EmptyValues()))
			return
		}
		p.push(NamedArg(id, NewValues(run[:1:1])))
		rest = run[1:]
	case Many:
		p.push(NamedArg(id, NewValues(run)))
	}

	for _, value := range rest {
		p.push(PositionalArg(value))
	}
}

// push appends without bounds growth. The capacity check in Parse makes an
// overflow impossible; reaching it anyway is a programming error.
func (p *ParsedArgs) push(arg Arg) {
	p.args[p.n] = arg
	p.n++
}

// Reset empties the store, keeping its backing array.
func (p *ParsedArgs) Reset() {
	clear(p.args[:p.n])
	p.n = 0
}

// Len returns the number of grouped arguments.
func (p *ParsedArgs) Len() int { return p.n }

// Cap returns the fixed capacity of the store.
func (p *ParsedArgs) Cap() int { return len(p.args) }

// At returns the i-th argument in first-encounter order.
func (p *ParsedArgs) At(i int) Arg {
	if i < 0 || i >= p.n {
		panic("parser: argument index out of range")
	}
	return p.args[i]
}

// Args exposes the grouped arguments. Callers must not modify the slice.
func (p *ParsedArgs) Args() []Arg { return p.args[:p.n] }

// Positionals appends every positional value, in argv order, to dst.
func (p *ParsedArgs) Positionals(dst []string) []string {
	for i := 0; i < p.n; i++ {
		if p.args[i].Kind == Positional {
			dst = append(dst, p.args[i].Value)
		}
	}
	return dst
}

// Named returns the values of the first named argument with the given id.
func (p *ParsedArgs) Named(id string) (Values, bool) {
	for i := 0; i < p.n; i++ {
		if p.args[i].Kind == Named && p.args[i].ID == id {
			return p.args[i].Values, true
		}
	}
	return Values{}, false
}

// Contains reports whether a named argument with the given id was parsed.
func (p *ParsedArgs) Contains(id string) bool {
	_, ok := p.Named(id)
	return ok
}
