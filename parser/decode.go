package parser

import (
	"strconv"
	"time"
	"unsafe"
)

// SignedInt is the set of signed integer types a Signed decoder produces.
type SignedInt interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInt is the set of unsigned integer types an Unsigned decoder produces.
type UnsignedInt interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// String returns the value unchanged. It never allocates.
func String(s string) (string, error) { return s, nil }

// Int decodes a decimal or 0x-prefixed hexadecimal int.
func Int(s string) (int, error) { return Signed[int](s) }

// Int64 decodes a decimal or 0x-prefixed hexadecimal int64.
func Int64(s string) (int64, error) { return Signed[int64](s) }

// Uint decodes a decimal or 0x-prefixed hexadecimal uint.
func Uint(s string) (uint, error) { return Unsigned[uint](s) }

// Uint32 decodes a decimal or 0x-prefixed hexadecimal uint32.
func Uint32(s string) (uint32, error) { return Unsigned[uint32](s) }

// Uint64 decodes a decimal or 0x-prefixed hexadecimal uint64.
func Uint64(s string) (uint64, error) { return Unsigned[uint64](s) }

// Signed decodes an optionally signed integer with ASCII math, rejecting
// values that overflow T. It never allocates.
func Signed[T SignedInt](s string) (T, error) {
	if len(s) == 0 {
		return 0, ErrInvalidArgument
	}

	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	// The negative range is one larger than the positive one.
	limit := uint64(1) << (bitSize[T]() - 1)
	if !negative {
		limit--
	}

	magnitude, ok := parseMagnitude(s, limit)
	if !ok {
		return 0, ErrInvalidArgument
	}
	if negative {
		return T(-int64(magnitude)), nil
	}
	return T(int64(magnitude)), nil
}

// Unsigned decodes an unsigned integer with ASCII math, rejecting signs and
// values that overflow T. It never allocates.
func Unsigned[T UnsignedInt](s string) (T, error) {
	if len(s) > 0 && s[0] == '+' {
		s = s[1:]
	}
	limit := uint64(1)<<(bitSize[T]()-1)<<1 - 1

	v, ok := parseMagnitude(s, limit)
	if !ok {
		return 0, ErrInvalidArgument
	}
	return T(v), nil
}

// parseMagnitude parses decimal or 0x-prefixed hexadecimal digits, failing
// when the value exceeds limit.
func parseMagnitude(s string, limit uint64) (uint64, bool) {
	base := uint64(10)
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}
	if len(s) == 0 {
		return 0, false
	}

	var result uint64
	for i := 0; i < len(s); i++ {
		digit, ok := digitValue(s[i], base)
		if !ok {
			return 0, false
		}
		if result > (limit-digit)/base {
			return 0, false
		}
		result = result*base + digit
	}
	return result, true
}

func digitValue(c byte, base uint64) (uint64, bool) {
	var d uint64
	switch {
	case c >= '0' && c <= '9':
		d = uint64(c - '0')
	case c >= 'a' && c <= 'f':
		d = uint64(c-'a') + 10
	case c >= 'A' && c <= 'F':
		d = uint64(c-'A') + 10
	default:
		return 0, false
	}
	return d, d < base
}

func bitSize[T SignedInt | UnsignedInt]() uint {
	var v T
	return uint(unsafe.Sizeof(v)) * 8
}

// Bool accepts 1/0, t/f, true/false and yes/no in any case. It never
// allocates.
func Bool(s string) (bool, error) {
	switch {
	case s == "1" || equalFold(s, "t") || equalFold(s, "true") || equalFold(s, "yes"):
		return true, nil
	case s == "0" || equalFold(s, "f") || equalFold(s, "false") || equalFold(s, "no"):
		return false, nil
	default:
		return false, ErrInvalidArgument
	}
}

// equalFold compares s to a lower-case ASCII word without allocating.
func equalFold(s, lower string) bool {
	if len(s) != len(lower) {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != lower[i] {
			return false
		}
	}
	return true
}

// Float64 decodes a floating point literal, exponent included.
func Float64(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidArgument
	}
	return v, nil
}

// Duration decodes a Go duration ("1h30m", "250ms").
func Duration(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, ErrInvalidArgument
	}
	return d, nil
}
