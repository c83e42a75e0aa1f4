// Package stringmatch finds the first occurrence of a pattern in a text.
//
// KMP runs in O(len(text)+len(pattern)) using the failure function of the
// pattern. Naive is the quadratic scan it is checked against. Both compare
// bytes and return NotFound when the pattern does not occur; an empty
// pattern matches at 0.
package stringmatch

// NotFound is returned when the pattern does not occur in the text.
const NotFound = -1

// Naive returns the index of the first occurrence of pattern in text by
// trying every alignment.
func Naive(text, pattern string) int {
	for i := 0; i+len(pattern) <= len(text); i++ {
		j := 0
		for j < len(pattern) && text[i+j] == pattern[j] {
			j++
		}
		if j == len(pattern) {
			return i
		}
	}
	return NotFound
}

// FailureFunction returns f of length len(pattern)+1 where f[i] is the
// length of the longest proper prefix of pattern[:i] that is also a suffix
// of it. f[0] is -1 and stands for the empty prefix.
//
// For "ABABAC" the result is [-1 0 0 1 2 3 0].
func FailureFunction(pattern string) []int {
	f := make([]int, len(pattern)+1)
	f[0] = -1
	for i := 2; i < len(f); i++ {
		k := f[i-1]
		for k >= 0 && pattern[i-1] != pattern[k] {
			k = f[k]
		}
		f[i] = k + 1
	}
	return f
}

// KMP returns the index of the first occurrence of pattern in text using the
// Knuth-Morris-Pratt automaton.
func KMP(text, pattern string) int {
	if pattern == "" {
		return 0
	}
	return newMatcher(pattern).next(text, 0)
}

// KMPAll returns the start index of every occurrence of pattern in text,
// overlapping ones included. An empty pattern yields no matches.
func KMPAll(text, pattern string) []int {
	if pattern == "" {
		return nil
	}
	m := newMatcher(pattern)
	var matches []int
	for from := 0; ; {
		i := m.next(text, from)
		if i == NotFound {
			return matches
		}
		matches = append(matches, i)
		from = i + 1
	}
}

type matcher struct {
	pattern string
	failure []int
}

func newMatcher(pattern string) matcher {
	return matcher{pattern: pattern, failure: FailureFunction(pattern)}
}

// next returns the first match starting at or after from.
func (m matcher) next(text string, from int) int {
	j := 0
	for i := from; i < len(text); i++ {
		for j >= 0 && text[i] != m.pattern[j] {
			j = m.failure[j]
		}
		j++
		if j == len(m.pattern) {
			return i + 1 - j
		}
	}
	return NotFound
}
