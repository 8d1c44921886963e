package wordlist

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CaseVariants returns the lowercase, Capitalized and UPPERCASE forms
// of w, in that order. Input case is discarded first.
func CaseVariants(w string) []string {
	lower := strings.ToLower(w)
	return []string{lower, Capitalize(lower), strings.ToUpper(lower)}
}

// Capitalize upper-cases the first rune of s.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// leetMap is the classic letter-to-symbol substitution table.
var leetMap = map[rune]rune{
	'a': '@',
	'e': '3',
	'i': '1',
	'o': '0',
	's': '$',
	't': '7',
}

// LeetVariants streams every leet-speak rendering of w to fn: each
// non-empty subset of the substitutable positions, over the lowercased
// word. The unmodified word itself is not emitted. Words with many
// substitutable letters expand exponentially; the name tables this runs
// on stay under a dozen positions.
func LeetVariants(w string, fn func(variant string)) {
	lower := []rune(strings.ToLower(w))

	var positions []int
	for i, r := range lower {
		if _, ok := leetMap[r]; ok {
			positions = append(positions, i)
		}
	}
	if len(positions) == 0 {
		return
	}

	total := 1 << uint(len(positions))
	out := make([]rune, len(lower))

	for mask := 1; mask < total; mask++ {
		copy(out, lower)
		for bit, pos := range positions {
			if mask&(1<<uint(bit)) != 0 {
				out[pos] = leetMap[lower[pos]]
			}
		}
		fn(string(out))
	}
}
