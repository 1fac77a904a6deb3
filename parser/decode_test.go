package parser

import (
	"math"
	"testing"
)

func TestSigned(t *testing.T) {
	tests := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"0", 0, true},
		{"+7", 7, true},
		{"-7", -7, true},
		{"0x7f", 127, true},
		{"-0X10", -16, true},
		{"9223372036854775807", math.MaxInt64, true},
		{"-9223372036854775808", math.MinInt64, true},
		{"9223372036854775808", 0, false},
		{"", 0, false},
		{"-", 0, false},
		{"0x", 0, false},
		{"1_000", 0, false},
		{"0xg", 0, false},
	}

	for _, tt := range tests {
		got, err := Int64(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("Int64(%q) err = %v, want ok=%v", tt.in, err, tt.ok)
			continue
		}
		if tt.ok && got != tt.want {
			t.Errorf("Int64(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}

	if v, err := Signed[int8]("-128"); err != nil || v != -128 {
		t.Errorf("Signed[int8](-128) = (%d, %v)", v, err)
	}
	if _, err := Signed[int8]("128"); err == nil {
		t.Error("Signed[int8](128) accepted")
	}
}

func TestUnsigned(t *testing.T) {
	if v, err := Unsigned[uint8]("255"); err != nil || v != 255 {
		t.Errorf("Unsigned[uint8](255) = (%d, %v)", v, err)
	}
	if _, err := Unsigned[uint8]("256"); err == nil {
		t.Error("Unsigned[uint8](256) accepted")
	}
	if v, err := Uint64("18446744073709551615"); err != nil || v != math.MaxUint64 {
		t.Errorf("Uint64(max) = (%d, %v)", v, err)
	}
	if _, err := Uint64("18446744073709551616"); err == nil {
		t.Error("Uint64(max+1) accepted")
	}
	if _, err := Uint32("-1"); err == nil {
		t.Error("Uint32(-1) accepted")
	}

	type port uint16
	if v, err := Unsigned[port]("8080"); err != nil || v != 8080 {
		t.Errorf("Unsigned[port](8080) = (%d, %v)", v, err)
	}
}

func TestBoolAndFloat(t *testing.T) {
	for in, want := range map[string]bool{"1": true, "TRUE": true, "yes": true, "t": true, "0": false, "False": false, "no": false} {
		got, err := Bool(in)
		if err != nil || got != want {
			t.Errorf("Bool(%q) = (%v, %v)", in, got, err)
		}
	}
	if _, err := Bool("maybe"); err == nil {
		t.Error("Bool(maybe) accepted")
	}

	if v, err := Float64("-2.5e1"); err != nil || v != -25 {
		t.Errorf("Float64(-2.5e1) = (%v, %v)", v, err)
	}
}
