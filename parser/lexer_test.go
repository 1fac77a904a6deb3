package parser

import "testing"

func TestTokenizeNumbersAreValues(t *testing.T) {
	for _, arg := range []string{"-2", "2", "-2.", "2.", "-2e1", "2e1", "-2.5e1", "-2.e1", "2.e1"} {
		tok := Tokenize(arg)
		if tok.Kind != TokenValue {
			t.Errorf("Tokenize(%q) = flag %v, want value", arg, tok.Flag)
			continue
		}
		if tok.Value != arg {
			t.Errorf("Tokenize(%q).Value = %q", arg, tok.Value)
		}
	}
}

func TestTokenizeFlags(t *testing.T) {
	tests := []struct {
		arg  string
		want Token
	}{
		{"-f", Token{Kind: TokenFlag, Flag: ShortFlag('f')}},
		{"-F", Token{Kind: TokenFlag, Flag: ShortFlag('F')}},
		{"--flag", Token{Kind: TokenFlag, Flag: LongFlag("flag")}},
		{"--x", Token{Kind: TokenFlag, Flag: LongFlag("x")}},
		{"--with-dash", Token{Kind: TokenFlag, Flag: LongFlag("with-dash")}},
		{"-flag", Token{Kind: TokenValue, Value: "-flag"}},
		{"-ab", Token{Kind: TokenValue, Value: "-ab"}},
		{"-", Token{Kind: TokenValue, Value: "-"}},
		{"--", Token{Kind: TokenValue, Value: "--"}},
		{"", Token{Kind: TokenValue, Value: ""}},
		{"value", Token{Kind: TokenValue, Value: "value"}},
		{"-e", Token{Kind: TokenFlag, Flag: ShortFlag('e')}},
		{"-.", Token{Kind: TokenFlag, Flag: ShortFlag('.')}},
		{"-\xe9", Token{Kind: TokenValue, Value: "-\xe9"}},
		{"-é", Token{Kind: TokenValue, Value: "-é"}},
		{"- ", Token{Kind: TokenValue, Value: "- "}},
	}

	for _, tt := range tests {
		if got := Tokenize(tt.arg); got != tt.want {
			t.Errorf("Tokenize(%q) = %+v, want %+v", tt.arg, got, tt.want)
		}
	}
}

func TestIsNumber(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"0", true},
		{"-0", true},
		{"123", true},
		{"1.5", true},
		{"1e9", true},
		{"1E9", true},
		{"1.5e3", true},
		{"", false},
		{"-", false},
		{"--1", false},
		{".5", false},
		{"e5", false},
		{"1e", false},
		{"1e5.0", false},
		{"1.2.3", false},
		{"1e2e3", false},
		{"12a", false},
	}

	for _, tt := range tests {
		if got := IsNumber(tt.in); got != tt.want {
			t.Errorf("IsNumber(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFlagString(t *testing.T) {
	if got := ShortFlag('v').String(); got != "-v" {
		t.Errorf("short flag rendered as %q", got)
	}
	if got := LongFlag("verbose").String(); got != "--verbose" {
		t.Errorf("long flag rendered as %q", got)
	}
	if ShortFlag('v') != ShortFlag('v') || ShortFlag('v') == LongFlag("v") {
		t.Error("flag equality must be structural")
	}
}
