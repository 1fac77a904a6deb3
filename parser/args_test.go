package parser

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var valuesComparer = cmp.Comparer(func(a, b Values) bool { return a.Equal(b) })

func table(entries ...LookupEntry) *LookupTable {
	t := NewLookupTable(entries...)
	return &t
}

func TestParseOneValue(t *testing.T) {
	lookup := table(LookupEntry{ShortFlag('f'), "field", One})

	args := MustParseFrom([]string{"-f", "42"}, lookup, make([]Arg, DefaultCapacity))
	v, presence, err := TryGetOne(&args, "field", Uint32)
	if err != nil {
		t.Fatalf("TryGetOne failed: %v", err)
	}
	if presence != HasValue || v != 42 {
		t.Errorf("got (%d, %v), want (42, value)", v, presence)
	}

	args = MustParseFrom([]string{"-f"}, lookup, make([]Arg, DefaultCapacity))
	_, presence, err = TryGetOne(&args, "field", Uint32)
	if err != nil {
		t.Fatalf("TryGetOne failed: %v", err)
	}
	if presence != NoValue {
		t.Errorf("presence = %v, want no value", presence)
	}
}

func TestParseManyValues(t *testing.T) {
	lookup := table(LookupEntry{ShortFlag('f'), "field", Many})

	args := MustParseFrom([]string{"-f", "42", "24"}, lookup, make([]Arg, DefaultCapacity))
	values, ok, err := TryGetMany(&args, "field", nil, Uint32)
	if err != nil || !ok {
		t.Fatalf("TryGetMany = (%v, %v, %v)", values, ok, err)
	}
	if diff := cmp.Diff([]uint32{42, 24}, values); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
	var sum uint32
	for _, v := range values {
		sum += v
	}
	if sum != 66 {
		t.Errorf("sum = %d, want 66", sum)
	}
}

func TestParseManyWithoutValues(t *testing.T) {
	lookup := table(LookupEntry{ShortFlag('f'), "field", Many})

	args := MustParseFrom([]string{"-f"}, lookup, make([]Arg, DefaultCapacity))
	values, ok, err := TryGetMany(&args, "field", nil, Uint32)
	if err != nil || !ok {
		t.Fatalf("TryGetMany = (%v, %v, %v)", values, ok, err)
	}
	if len(values) != 0 {
		t.Errorf("values = %v, want none", values)
	}
}

func TestParseCapacityBoundary(t *testing.T) {
	lookup := table(LookupEntry{LongFlag("field"), "field", Many})
	const capacity = 4

	argv := []string{"--field", "1", "2", "3"}
	if _, err := TryParseFrom(argv, lookup, make([]Arg, capacity)); err != nil {
		t.Fatalf("argv of capacity length rejected: %v", err)
	}

	argv = append(argv, "4")
	args, err := TryParseFrom(argv, lookup, make([]Arg, capacity))
	if !errors.Is(err, ErrOutOfMemory) {
		t.Fatalf("err = %v, want out of memory", err)
	}
	if args.Len() != 0 {
		t.Errorf("failed parse exposes %d args", args.Len())
	}
}

func TestParseUndefinedArgumentIsAllOrNothing(t *testing.T) {
	lookup := table(LookupEntry{ShortFlag('f'), "field", One})
	buf := make([]Arg, DefaultCapacity)

	args := MustParseFrom([]string{"-f", "1", "pos"}, lookup, buf)
	if args.Len() != 2 {
		t.Fatalf("setup parse produced %d args", args.Len())
	}

	err := args.Parse([]string{"-f", "1", "pos", "--unknown", "x"}, lookup)
	if !errors.Is(err, ErrUndefinedArgument) {
		t.Fatalf("err = %v, want undefined argument", err)
	}
	if KindOf(err) != UndefinedArgument {
		t.Errorf("KindOf = %q", KindOf(err))
	}
	if args.Len() != 0 || args.Contains("field") {
		t.Errorf("failed parse still exposes arguments: %v", args.Args())
	}
	for i := range buf {
		if buf[i].Kind != 0 {
			t.Fatalf("slot %d not cleared: %+v", i, buf[i])
		}
	}

	flag, undefined := FirstUndefined([]string{"-f", "--nope", "-z"}, lookup)
	if !undefined || flag != LongFlag("nope") {
		t.Errorf("FirstUndefined = (%v, %v)", flag, undefined)
	}
}

func TestParseGrouping(t *testing.T) {
	lookup := table(
		LookupEntry{ShortFlag('v'), "verbose", Zero},
		LookupEntry{LongFlag("verbose"), "verbose", Zero},
		LookupEntry{ShortFlag('o'), "output", One},
		LookupEntry{LongFlag("output"), "output", One},
		LookupEntry{ShortFlag('i'), "input", Many},
	)

	tests := []struct {
		name string
		argv []string
		want func(argv []string) []Arg
	}{
		{
			name: "empty",
			argv: nil,
			want: func([]string) []Arg { return []Arg{} },
		},
		{
			name: "positionals only",
			argv: []string{"a", "b"},
			want: func([]string) []Arg {
				return []Arg{PositionalArg("a"), PositionalArg("b")}
			},
		},
		{
			name: "switch releases its run as positionals",
			argv: []string{"-v", "a", "b"},
			want: func([]string) []Arg {
				return []Arg{NamedArg("verbose", EmptyValues()), PositionalArg("a"), PositionalArg("b")}
			},
		},
		{
			name: "single value keeps the first and releases the rest",
			argv: []string{"--output", "out.txt", "extra", "-v"},
			want: func(argv []string) []Arg {
				return []Arg{
					NamedArg("output", NewValues(argv[1:2])),
					PositionalArg("extra"),
					NamedArg("verbose", EmptyValues()),
				}
			},
		},
		{
			name: "many takes the whole run",
			argv: []string{"pre", "-i", "a", "-2", "b", "-o"},
			want: func(argv []string) []Arg {
				return []Arg{
					PositionalArg("pre"),
					NamedArg("input", NewValues(argv[2:5])),
					NamedArg("output", EmptyValues()),
				}
			},
		},
		{
			name: "repeated flags keep first-encounter order",
			argv: []string{"-o", "1", "-i", "x", "-o", "2"},
			want: func(argv []string) []Arg {
				return []Arg{
					NamedArg("output", NewValues(argv[1:2])),
					NamedArg("input", NewValues(argv[3:4])),
					NamedArg("output", NewValues(argv[5:6])),
				}
			},
		},
		{
			name: "dash words are values",
			argv: []string{"-o", "-flag", "-", "--"},
			want: func(argv []string) []Arg {
				return []Arg{
					NamedArg("output", NewValues(argv[1:2])),
					PositionalArg("-"),
					PositionalArg("--"),
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args, err := TryParseFrom(tt.argv, lookup, make([]Arg, DefaultCapacity))
			if err != nil {
				t.Fatalf("TryParseFrom(%q) failed: %v", tt.argv, err)
			}
			if diff := cmp.Diff(tt.want(tt.argv), args.Args(), valuesComparer); diff != "" {
				t.Errorf("args mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseBorrowsArgv(t *testing.T) {
	lookup := table(LookupEntry{ShortFlag('i'), "input", Many})
	argv := []string{"-i", "a", "b"}

	args := MustParseFrom(argv, lookup, make([]Arg, 8))
	values, _ := args.Named("input")
	if &values.Slice()[0] != &argv[1] {
		t.Error("values do not alias argv")
	}
}

func TestPositionals(t *testing.T) {
	lookup := table(LookupEntry{ShortFlag('o'), "output", One})

	args := MustParseFrom([]string{"a", "-o", "x", "b", "c"}, lookup, make([]Arg, 8))
	got := args.Positionals(nil)
	if diff := cmp.Diff([]string{"a", "b", "c"}, got); diff != "" {
		t.Errorf("positionals mismatch (-want +got):\n%s", diff)
	}
}

func TestMustParseFromPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseFrom did not panic on an undefined flag")
		}
	}()
	MustParseFrom([]string{"-x"}, table(), make([]Arg, 4))
}

func TestLookupTableValidate(t *testing.T) {
	ok := table(
		LookupEntry{ShortFlag('f'), "field", One},
		LookupEntry{LongFlag("field"), "field", One},
	)
	if err := ok.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}

	dup := table(
		LookupEntry{ShortFlag('f'), "field", One},
		LookupEntry{ShortFlag('f'), "file", Many},
	)
	if err := dup.Validate(); err == nil {
		t.Error("duplicate short flag accepted")
	}

	id, atMost, found := ok.MetadataOf(LongFlag("field"))
	if !found || id != "field" || atMost != One {
		t.Errorf("MetadataOf = (%q, %v, %v)", id, atMost, found)
	}
	if _, _, found := ok.MetadataOf(LongFlag("f")); found {
		t.Error("long flag matched a short spelling")
	}
}
