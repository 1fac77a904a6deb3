// Package fuzzy ranks near-miss spellings. noshell uses it to suggest a
// defined flag when parsing hits an undefined one, and the shell uses it to
// suggest a command for a mistyped name.
package fuzzy

import (
	"iter"
	"slices"
)

// minInput is the shortest input worth suggesting for; one-letter typos
// match almost everything.
const minInput = 2

// Match is one ranked candidate.
type Match struct {
	Value    string
	Distance int
	Prefix   int // length of the shared ASCII-case-insensitive prefix
}

// Distance returns the edit distance between a and b, counting an insertion,
// a deletion, a substitution or a swap of two adjacent letters as one edit
// (optimal string alignment). ASCII letters compare case-insensitively. Once
// the distance is known to exceed limit the computation stops and limit+1 is
// returned.
func Distance(a, b string, limit int) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	if len(b)-len(a) > limit {
		return limit + 1
	}
	if len(a) == 0 {
		return len(b)
	}

	var stack [3][33]int
	prev2, prev, cur := stack[0][:], stack[1][:], stack[2][:]
	if len(a)+1 > len(prev) {
		prev2, prev, cur = make([]int, len(a)+1), make([]int, len(a)+1), make([]int, len(a)+1)
	}
	prev2, prev, cur = prev2[:len(a)+1], prev[:len(a)+1], cur[:len(a)+1]
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(b); i++ {
		cur[0] = i
		rowMin := i
		for j := 1; j <= len(a); j++ {
			cost := 1
			if lower(a[j-1]) == lower(b[i-1]) {
				cost = 0
			}
			cur[j] = min(cur[j-1]+1, prev[j]+1, prev[j-1]+cost)
			if i > 1 && j > 1 && lower(a[j-1]) == lower(b[i-2]) && lower(a[j-2]) == lower(b[i-1]) {
				cur[j] = min(cur[j], prev2[j-2]+1)
			}
			rowMin = min(rowMin, cur[j])
		}
		if rowMin > limit {
			return limit + 1
		}
		prev2, prev, cur = prev, cur, prev2
	}
	return prev[len(a)]
}

// Ranked returns up to n candidates within maxDistance of input, nearest
// first. A candidate identical to input is skipped; one differing only in
// letter case is kept at distance zero. Among equal distances the
// longer shared prefix wins, then the order the candidates came in.
func Ranked(input string, candidates iter.Seq[string], maxDistance, n int) []Match {
	if len(input) < minInput || n <= 0 {
		return nil
	}
	var matches []Match
	for c := range candidates {
		d := Distance(input, c, maxDistance)
		if c == input || d > maxDistance {
			continue
		}
		matches = append(matches, Match{Value: c, Distance: d, Prefix: commonPrefix(input, c)})
	}
	slices.SortStableFunc(matches, func(x, y Match) int {
		if x.Distance != y.Distance {
			return x.Distance - y.Distance
		}
		return y.Prefix - x.Prefix
	})
	if len(matches) > n {
		matches = matches[:n]
	}
	return matches
}

// Closest returns the best candidate within maxDistance of input.
func Closest(input string, candidates iter.Seq[string], maxDistance int) (string, bool) {
	m := Ranked(input, candidates, maxDistance, 1)
	if len(m) == 0 {
		return "", false
	}
	return m[0].Value, true
}

// Threshold is the default edit budget for a word of length n: one edit for
// short words, two for medium and three beyond that.
func Threshold(n int) int {
	switch {
	case n <= 4:
		return 1
	case n <= 8:
		return 2
	default:
		return 3
	}
}

func commonPrefix(a, b string) int {
	n := min(len(a), len(b))
	for i := range n {
		if lower(a[i]) != lower(b[i]) {
			return i
		}
	}
	return n
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
