package parser

import "iter"

// AtMost declares how many contiguous value tokens a named argument consumes.
type AtMost uint8

const (
	// Zero means the flag is a switch and takes no value.
	Zero AtMost = iota
	// One means the flag takes at most one value.
	One
	// Many means the flag takes every contiguous value that follows it.
	Many
)

func (a AtMost) String() string {
	switch a {
	case Zero:
		return "zero"
	case One:
		return "one"
	case Many:
		return "many"
	default:
		return "unknown"
	}
}

// Values is a read-only view over a contiguous run of argv. It never owns or
// copies the strings it exposes; they stay valid as long as argv does.
type Values struct {
	slice []string
}

// NewValues wraps a sub-slice of argv.
func NewValues(slice []string) Values {
	return Values{slice: slice}
}

// EmptyValues returns a view with no values.
func EmptyValues() Values {
	return Values{}
}

// Len returns the number of values in the view.
func (v Values) Len() int { return len(v.slice) }

// IsEmpty reports whether the view holds no value.
func (v Values) IsEmpty() bool { return len(v.slice) == 0 }

// At returns the i-th value. It panics when i is out of range.
func (v Values) At(i int) string { return v.slice[i] }

// First returns the first value, if any.
func (v Values) First() (string, bool) {
	if len(v.slice) == 0 {
		return "", false
	}
	return v.slice[0], true
}

// Slice exposes the underlying argv run. Callers must not modify it.
func (v Values) Slice() []string { return v.slice }

// All iterates the values left to right.
func (v Values) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, s := range v.slice {
			if !yield(s) {
				return
			}
		}
	}
}

// Equal reports whether both views hold the same strings in the same order.
func (v Values) Equal(other Values) bool {
	if len(v.slice) != len(other.slice) {
		return false
	}
	for i := range v.slice {
		if v.slice[i] != other.slice[i] {
			return false
		}
	}
	return true
}
