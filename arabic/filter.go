package arabic

import (
	"bufio"
	"io"
	"strings"
)

// Filter decides whether a candidate letter sequence is plausibly
// well-formed Arabic. The zero value applies the relaxed rule set used
// on generation paths.
type Filter struct {
	// Strict additionally enforces the positional restrictions on
	// ة, ى (final-only) and ؤ, ئ (non-initial). Brute-force generation
	// bakes these into its positional charsets and leaves Strict off.
	Strict bool
}

// IsLikelyWord reports whether word passes the plausibility rules.
// The input is assumed to contain only Arabic letters; the empty string
// is always rejected.
func (f Filter) IsLikelyWord(word string) bool {
	runes := []rune(word)
	n := len(runes)

	if n == 0 {
		return false
	}

	// Words of 4+ letters must contain a vowel letter.
	if n >= 4 {
		hasVowel := false
		for _, r := range runes {
			if vowelLetters[r] {
				hasVowel = true
				break
			}
		}
		if !hasVowel {
			return false
		}
	}

	for _, bad := range badDoubles {
		if strings.Contains(word, bad) {
			return false
		}
	}

	// Hamza only at the edges.
	if n > 2 {
		for _, r := range runes[1 : n-1] {
			if r == hamza {
				return false
			}
		}
	}

	if f.Strict {
		for _, r := range runes[:n-1] {
			if finalOnly[r] {
				return false
			}
		}
		if noInitial[runes[0]] {
			return false
		}
	}

	return true
}

// FilterLines copies every line of r that passes the filter to w,
// unmodified. Lines are candidate words, one per line, as produced by
// mask generators upstream of a cracking tool.
func (f Filter) FilterLines(r io.Reader, w io.Writer) error {
	out := bufio.NewWriter(w)
	sc := bufio.NewScanner(r)

	for sc.Scan() {
		line := sc.Text()
		if f.IsLikelyWord(line) {
			out.WriteString(line)
			out.WriteByte('\n')
		}
	}

	if err := sc.Err(); err != nil {
		return err
	}

	return out.Flush()
}
