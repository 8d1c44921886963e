package pattern

import (
	"strings"

	"arabicrackr/arabic"
)

// HasBadDoubles reports whether word contains doubled letters that no
// shadda can justify: the banned vowel/hamza bigrams plus any identical
// adjacent pair drawn from ا, و, ي, ء. Doubled consonants stay legal,
// they are ordinary gemination (كتّب).
func HasBadDoubles(word string) bool {
	for _, bad := range [...]string{"اا", "وو", "يي", "ءء"} {
		if strings.Contains(word, bad) {
			return true
		}
	}

	runes := []rune(word)
	for i := 0; i+1 < len(runes); i++ {
		if runes[i] == runes[i+1] && arabic.IsShaddaBanned(runes[i]) {
			return true
		}
	}

	return false
}

// Generate applies every pattern to every root and streams the surviving
// words to fn, in root-major catalog order. Inapplicable roots are
// skipped, each word is emitted at most once (first occurrence wins), and
// words with invalid doubled letters are dropped. The returned count is
// the number of words dropped by the doubled-letter check.
func Generate(roots []string, patterns []Pattern, fn func(word string)) (skipped int) {
	seen := make(map[string]bool)

	for _, root := range roots {
		for _, p := range patterns {
			word, ok := Apply(root, p.Template)
			if !ok || seen[word] {
				continue
			}
			seen[word] = true

			if HasBadDoubles(word) {
				skipped++
				continue
			}

			fn(word)
		}
	}

	return skipped
}
