// Package intern canonicalizes the identifiers schemas and shells are built
// from, so repeated definitions share one backing array.
package intern

import "sync"

// Interner is a concurrency-safe set of canonical strings.
type Interner struct {
	mu      sync.RWMutex
	strings map[string]string
}

// New returns an interner sized for capacity entries.
func New(capacity int) *Interner {
	if capacity <= 0 {
		capacity = 64
	}
	return &Interner{strings: make(map[string]string, capacity)}
}

// Intern returns the canonical copy of s, storing s if it is new.
func (in *Interner) Intern(s string) string {
	in.mu.RLock()
	v, ok := in.strings[s]
	in.mu.RUnlock()
	if ok {
		return v
	}

	in.mu.Lock()
	defer in.mu.Unlock()
	if v, ok := in.strings[s]; ok {
		return v
	}
	in.strings[s] = s
	return s
}

// Len is the number of canonical strings.
func (in *Interner) Len() int {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return len(in.strings)
}

// Rune returns a one-character string for r. ASCII letters and digits come
// from a static table.
func Rune(r rune) string {
	switch {
	case 'a' <= r && r <= 'z':
		return ascii[r-'a']
	case 'A' <= r && r <= 'Z':
		return ascii[26+r-'A']
	case '0' <= r && r <= '9':
		return ascii[52+r-'0']
	}
	return Default.Intern(string(r))
}

var ascii = [62]string{
	"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m",
	"n", "o", "p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z",
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
}

// Default is the process-wide interner used for field ids and flag names.
var Default = New(128)

// Intern interns s in Default.
func Intern(s string) string { return Default.Intern(s) }
