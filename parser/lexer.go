package parser

// FlagKind tells a short flag (-v) from a long flag (--verbose).
type FlagKind uint8

const (
	// FlagShort is a single character introduced by one dash.
	FlagShort FlagKind = iota + 1
	// FlagLong is a word introduced by two dashes.
	FlagLong
)

// Flag identifies a named argument on the command line. Only the identifier is
// stored, never the dashes. Two flags are equal when their kind and identifier
// are equal, so Flag can be compared with == and used as a map key.
type Flag struct {
	Kind  FlagKind
	Short rune
	Long  string
}

// ShortFlag returns the flag spelled -c.
func ShortFlag(c rune) Flag {
	return Flag{Kind: FlagShort, Short: c}
}

// LongFlag returns the flag spelled --name.
func LongFlag(name string) Flag {
	return Flag{Kind: FlagLong, Long: name}
}

// IsShort reports whether f is a short flag.
func (f Flag) IsShort() bool { return f.Kind == FlagShort }

// IsLong reports whether f is a long flag.
func (f Flag) IsLong() bool { return f.Kind == FlagLong }

// String renders the flag the way it is typed on the command line.
func (f Flag) String() string {
	switch f.Kind {
	case FlagShort:
		return "-" + string(f.Short)
	case FlagLong:
		return "--" + f.Long
	default:
		return "<invalid flag>"
	}
}

// TokenKind is the semantic class of a token.
type TokenKind uint8

const (
	// TokenValue is everything that is not a flag.
	TokenValue TokenKind = iota
	// TokenFlag introduces a named argument.
	TokenFlag
)

// Token is one classified element of argv. For TokenValue, Value holds the
// original string (not a copy); for TokenFlag, Flag holds the identifier.
type Token struct {
	Kind  TokenKind
	Flag  Flag
	Value string
}

// IsFlag reports whether the token introduces a named argument.
func (t Token) IsFlag() bool { return t.Kind == TokenFlag }

// Tokenize classifies one raw argument. The rules apply in order:
//
//  1. a dash-prefixed numeric literal ("-2", "-2.5e1") is a value;
//  2. "--name" with at least one character after the dashes is a long flag;
//  3. "-c" of exactly two bytes, c printable ASCII, is a short flag;
//  4. anything else is a value, including "-", "--" and "-abc".
//
// Single-dash words longer than two bytes are never split into bundled short
// flags.
func Tokenize(arg string) Token {
	if len(arg) > 0 && arg[0] == '-' && IsNumber(arg) {
		return Token{Kind: TokenValue, Value: arg}
	}

	if IsLongFlag(arg) {
		return Token{Kind: TokenFlag, Flag: Flag{Kind: FlagLong, Long: arg[2:]}}
	}

	if IsShortFlag(arg) {
		return Token{Kind: TokenFlag, Flag: Flag{Kind: FlagShort, Short: rune(arg[1])}}
	}

	return Token{Kind: TokenValue, Value: arg}
}

// IsLongFlag reports whether arg is spelled --name.
func IsLongFlag(arg string) bool {
	return len(arg) >= 3 && arg[0] == '-' && arg[1] == '-'
}

// IsShortFlag reports whether arg is spelled -c, where c is a printable
// ASCII character, and is not a negative number.
func IsShortFlag(arg string) bool {
	return len(arg) == 2 && arg[0] == '-' && arg[1] != '-' && IsShortChar(rune(arg[1])) && !IsNumber(arg)
}

// IsShortChar reports whether c can follow a single dash as a short flag.
func IsShortChar(c rune) bool {
	return ' ' < c && c < 0x7f
}

// IsFlag reports whether arg would be classified as a flag by Tokenize.
func IsFlag(arg string) bool {
	return Tokenize(arg).Kind == TokenFlag
}

// IsNumber reports whether arg is a numeric literal once a single leading
// sign is stripped: digits, at most one '.' (not first, not after the
// exponent) and at most one 'e'/'E' (not first, not last).
func IsNumber(arg string) bool {
	if len(arg) > 0 && arg[0] == '-' {
		arg = arg[1:]
	}
	if len(arg) == 0 {
		return false
	}

	exp := -1
	dot := false

	for i := 0; i < len(arg); i++ {
		switch c := arg[i]; {
		case c >= '0' && c <= '9':
		case (c == 'e' || c == 'E') && exp < 0 && i > 0:
			exp = i
		case c == '.' && !dot && exp < 0 && i > 0:
			dot = true
		default:
			return false
		}
	}

	return exp != len(arg)-1
}
