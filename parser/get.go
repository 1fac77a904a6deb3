package parser

// Presence describes what the command line said about a single-value
// argument.
type Presence uint8

const (
	// Absent: the flag was not given.
	Absent Presence = iota
	// NoValue: the flag was given without a value.
	NoValue
	// HasValue: the flag was given with exactly one value.
	HasValue
)

func (p Presence) String() string {
	switch p {
	case Absent:
		return "absent"
	case NoValue:
		return "no value"
	case HasValue:
		return "value"
	default:
		return "unknown"
	}
}

// Decoder converts one buffered value into T.
type Decoder[T any] func(string) (T, error)

// TryGetOne decodes the value of the argument with the given id.
//
// The result distinguishes an absent argument, an argument given without a
// value, and an argument given with a value. More than one buffered value,
// or a value that does not decode, yields ErrInvalidArgument. The
// cardinality recorded in the lookup table is not trusted: the values are
// counted.
func TryGetOne[T any](p *ParsedArgs, id string, decode Decoder[T]) (T, Presence, error) {
	var zero T

	values, ok := p.Named(id)
	if !ok {
		return zero, Absent, nil
	}

	switch values.Len() {
	case 0:
		return zero, NoValue, nil
	case 1:
	default:
		return zero, NoValue, ErrInvalidArgument
	}

	v, err := decode(values.At(0))
	if err != nil {
		return zero, HasValue, ErrInvalidArgument
	}
	return v, HasValue, nil
}

// TryGetMany decodes every value of the argument with the given id and
// appends them to dst in argv order. The boolean is false when the argument
// is absent. A single decode failure fails the whole call.
func TryGetMany[T any](p *ParsedArgs, id string, dst []T, decode Decoder[T]) ([]T, bool, error) {
	values, ok := p.Named(id)
	if !ok {
		return dst, false, nil
	}

	start := len(dst)
	for _, raw := range values.Slice() {
		v, err := decode(raw)
		if err != nil {
			return dst[:start], true, ErrInvalidArgument
		}
		dst = append(dst, v)
	}
	return dst, true, nil
}

// GetOne is TryGetOne that panics on error. Reserved for tests and
// prototypes.
func GetOne[T any](p *ParsedArgs, id string, decode Decoder[T]) (T, Presence) {
	v, presence, err := TryGetOne(p, id, decode)
	if err != nil {
		panic("invalid argument " + id + ": " + err.Error())
	}
	return v, presence
}

// GetMany is TryGetMany that panics on error. Reserved for tests and
// prototypes.
func GetMany[T any](p *ParsedArgs, id string, dst []T, decode Decoder[T]) ([]T, bool) {
	out, ok, err := TryGetMany(p, id, dst, decode)
	if err != nil {
		panic("invalid argument " + id + ": " + err.Error())
	}
	return out, ok
}

// CheckNoValue fails with ErrNoValueArgument when a switch was given a value.
// Switches never buffer values after grouping, so this only trips on tables
// whose cardinality was changed between parse and read.
func CheckNoValue(p *ParsedArgs, id string) (bool, error) {
	values, ok := p.Named(id)
	if !ok {
		return false, nil
	}
	if !values.IsEmpty() {
		return true, ErrNoValueArgument
	}
	return true, nil
}
