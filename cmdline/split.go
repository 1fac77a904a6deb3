// Package cmdline turns raw terminal input into argv-style words: a line
// editor that reads key bytes, an unescaper, and a quote-aware splitter.
package cmdline

import (
	"errors"
	"iter"
	"strings"
	"unicode/utf8"
)

var (
	// ErrMalformedWord is reported when a word is not valid UTF-8 text.
	ErrMalformedWord = errors.New("malformed word")
	// ErrTooManyWords is reported when a line holds more words than the
	// destination buffer can take.
	ErrTooManyWords = errors.New("too many words")
)

// Splitter lazily yields the words of one command line. Each word is a
// substring of the input; nothing is copied. A Splitter is single-use: to
// restart, call Split again on the same input, which yields the same words.
//
// Words are, in order of preference: the content of a '...' span, the content
// of a "..." span (quotes stripped, no escape processing), or the longest run
// of non-whitespace bytes. Space, tab and newline separate words. An
// unterminated quote is not a quoted span; it starts a plain word.
type Splitter struct {
	input string
	pos   int
	err   error
}

// Split returns a splitter over line.
func Split(line string) Splitter {
	return Splitter{input: line}
}

// Next returns the next word. It returns false at the end of the input or
// after a malformed word; Err tells the two apart.
func (s *Splitter) Next() (string, bool) {
	if s.err != nil {
		return "", false
	}

	s.pos = skipWhitespace(s.input, s.pos)
	if s.pos >= len(s.input) {
		return "", false
	}

	word, end := scanWord(s.input, s.pos)
	if !utf8.ValidString(word) {
		s.err = ErrMalformedWord
		return "", false
	}

	s.pos = end
	return word, true
}

// Err returns the error that halted the splitter, if any.
func (s *Splitter) Err() error { return s.err }

// Offset returns the byte offset where the next scan starts.
func (s *Splitter) Offset() int { return s.pos }

// All ranges over the remaining words. A malformed word ends the sequence
// with a non-nil error.
func (s *Splitter) All() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for {
			word, ok := s.Next()
			if !ok {
				if s.err != nil {
					yield("", s.err)
				}
				return
			}
			if !yield(word, nil) {
				return
			}
		}
	}
}

// Words splits line into dst, which is reused from index 0. It never grows
// dst past its capacity: a line with more words fails with ErrTooManyWords.
func Words(line string, dst []string) ([]string, error) {
	dst = dst[:0]
	sp := Split(line)
	for {
		word, ok := sp.Next()
		if !ok {
			return dst, sp.Err()
		}
		if len(dst) == cap(dst) {
			return dst, ErrTooManyWords
		}
		dst = append(dst, word)
	}
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n'
}

func skipWhitespace(s string, pos int) int {
	for pos < len(s) && isWhitespace(s[pos]) {
		pos++
	}
	return pos
}

// scanWord matches one word starting at pos, which is not whitespace. It
// returns the word and the offset just past the consumed span, closing quote
// included.
func scanWord(s string, pos int) (string, int) {
	if q := s[pos]; q == '\'' || q == '"' {
		if end := strings.IndexByte(s[pos+1:], q); end >= 0 {
			start := pos + 1
			return s[start : start+end], start + end + 1
		}
	}

	end := pos
	for end < len(s) && !isWhitespace(s[end]) {
		end++
	}
	return s[pos:end], end
}
