package noshell

import (
	"github.com/dzonerzy/go-noshell/parser"
)

// Shape decides how many values a field takes and what happens when its
// flag is absent or given without a value.
type Shape uint8

const (
	// ShapeRequired takes one value; absent or valueless is an error.
	ShapeRequired Shape = iota
	// ShapeOptional takes one value; absent leaves the field unset, but a
	// flag given without its value is an error.
	ShapeOptional
	// ShapeOptionalValue takes one value; the flag alone is recorded as
	// present without a value.
	ShapeOptionalValue
	// ShapeList takes every value up to the next flag; at least one.
	ShapeList
	// ShapeOptionalList is ShapeList that may be absent.
	ShapeOptionalList
	// ShapeSwitch takes no value.
	ShapeSwitch
)

func (s Shape) String() string {
	switch s {
	case ShapeRequired:
		return "required"
	case ShapeOptional:
		return "optional"
	case ShapeOptionalValue:
		return "optional value"
	case ShapeList:
		return "list"
	case ShapeOptionalList:
		return "optional list"
	case ShapeSwitch:
		return "switch"
	default:
		return "unknown"
	}
}

// AtMost is the cardinality registered in the lookup table.
func (s Shape) AtMost() parser.AtMost {
	switch s {
	case ShapeSwitch:
		return parser.Zero
	case ShapeList, ShapeOptionalList:
		return parser.Many
	default:
		return parser.One
	}
}

// Option is the target of ShapeOptional and ShapeOptionalValue fields.
// Present is set when the flag was given, Valued when a value followed it.
type Option[T any] struct {
	Present bool
	Valued  bool
	Value   T
}

// Get returns the value and whether one was given.
func (o Option[T]) Get() (T, bool) { return o.Value, o.Valued }

// Or returns the value, or def when none was given.
func (o Option[T]) Or(def T) T {
	if o.Valued {
		return o.Value
	}
	return def
}

// Field binds one argument id to a member of the record R.
type Field[R any] struct {
	id    string
	shape Shape
	help  string
	meta  string
	limit int

	short    rune
	long     string
	hasShort bool
	hasLong  bool

	bind func(rec *R, args *parser.ParsedArgs) error
}

// Short sets the single-character spelling, typed as -c.
func (f *Field[R]) Short(c rune) *Field[R] { f.short, f.hasShort = c, true; return f }

// Long sets the long spelling, typed as --name. A field with neither
// spelling gets its id as long spelling.
func (f *Field[R]) Long(name string) *Field[R] { f.long, f.hasLong = name, true; return f }

// Help sets the usage text.
func (f *Field[R]) Help(text string) *Field[R] { f.help = text; return f }

// Meta sets the value placeholder shown in usage, e.g. PORT.
func (f *Field[R]) Meta(name string) *Field[R] { f.meta = name; return f }

// Limit caps the number of values a list field accepts. Exceeding it fails
// with parser.ErrOutOfMemory. Zero means no cap beyond the parser capacity.
func (f *Field[R]) Limit(n int) *Field[R] { f.limit = n; return f }

func (f *Field[R]) ID() string   { return f.id }
func (f *Field[R]) Shape() Shape { return f.shape }

// Required binds a single mandatory value.
func Required[R, T any](id string, target func(*R) *T, decode parser.Decoder[T]) *Field[R] {
	f := &Field[R]{id: id, shape: ShapeRequired}
	f.bind = func(rec *R, args *parser.ParsedArgs) error {
		v, presence, err := parser.TryGetOne(args, f.id, decode)
		if err != nil {
			return newError(f.id, err)
		}
		if presence != parser.HasValue {
			return newError(f.id, parser.ErrMissingArgument)
		}
		*target(rec) = v
		return nil
	}
	return f
}

// Optional binds a single value that may be omitted together with its flag.
func Optional[R, T any](id string, target func(*R) *Option[T], decode parser.Decoder[T]) *Field[R] {
	f := &Field[R]{id: id, shape: ShapeOptional}
	f.bind = func(rec *R, args *parser.ParsedArgs) error {
		v, presence, err := parser.TryGetOne(args, f.id, decode)
		switch {
		case err != nil:
			return newError(f.id, err)
		case presence == parser.NoValue:
			return newError(f.id, parser.ErrMissingArgument)
		case presence == parser.HasValue:
			*target(rec) = Option[T]{Present: true, Valued: true, Value: v}
		}
		return nil
	}
	return f
}

// OptionalValue binds a flag whose value is itself optional.
func OptionalValue[R, T any](id string, target func(*R) *Option[T], decode parser.Decoder[T]) *Field[R] {
	f := &Field[R]{id: id, shape: ShapeOptionalValue}
	f.bind = func(rec *R, args *parser.ParsedArgs) error {
		v, presence, err := parser.TryGetOne(args, f.id, decode)
		switch {
		case err != nil:
			return newError(f.id, err)
		case presence == parser.NoValue:
			*target(rec) = Option[T]{Present: true}
		case presence == parser.HasValue:
			*target(rec) = Option[T]{Present: true, Valued: true, Value: v}
		}
		return nil
	}
	return f
}

// List binds one or more values. Decoded values are appended to the target
// after truncating it, so a preallocated target is reused without
// allocation.
func List[R, T any](id string, target func(*R) *[]T, decode parser.Decoder[T]) *Field[R] {
	f := &Field[R]{id: id, shape: ShapeList}
	f.bind = func(rec *R, args *parser.ParsedArgs) error {
		return bindMany(f, rec, args, target, decode, true)
	}
	return f
}

// OptionalList is List whose flag may be omitted. An absent flag leaves the
// target untouched.
func OptionalList[R, T any](id string, target func(*R) *[]T, decode parser.Decoder[T]) *Field[R] {
	f := &Field[R]{id: id, shape: ShapeOptionalList}
	f.bind = func(rec *R, args *parser.ParsedArgs) error {
		return bindMany(f, rec, args, target, decode, false)
	}
	return f
}

// Switch binds a flag that takes no value. The target is set to whether the
// flag was given.
func Switch[R any](id string, target func(*R) *bool) *Field[R] {
	f := &Field[R]{id: id, shape: ShapeSwitch}
	f.bind = func(rec *R, args *parser.ParsedArgs) error {
		present, err := parser.CheckNoValue(args, f.id)
		if err != nil {
			return newError(f.id, err)
		}
		*target(rec) = present
		return nil
	}
	return f
}

func bindMany[R, T any](f *Field[R], rec *R, args *parser.ParsedArgs, target func(*R) *[]T, decode parser.Decoder[T], required bool) error {
	values, ok := args.Named(f.id)
	switch {
	case !ok && !required:
		return nil
	case !ok || values.IsEmpty():
		return newError(f.id, parser.ErrMissingArgument)
	case f.limit > 0 && values.Len() > f.limit:
		return &Error{Type: ErrorTypeTooManyArgs, Field: f.id, Message: "too many values for", Cause: parser.ErrOutOfMemory}
	}

	dst := target(rec)
	out, _, err := parser.TryGetMany(args, f.id, (*dst)[:0], decode)
	if err != nil {
		return newError(f.id, err)
	}
	*dst = out
	return nil
}
