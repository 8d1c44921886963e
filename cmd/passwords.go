package cmd

import (
	"fmt"

	"arabicrackr/pattern"
	"arabicrackr/wordlist"

	"github.com/spf13/cobra"
	log "github.com/visionmedia/go-cli-log"
)

var (
	passwordsMode     string
	passwordsYear     bool
	passwordsAt       bool
	passwordsNoSpace  bool
	passwordsNoPrefix bool
	passwordsEstimate bool
)

// prefixEntry pairs a name prefix with the separator that follows it.
type prefixEntry struct {
	prefix string
	sep    string
}

// namePrefixes lists the particles that attach to Arabic names:
// the definite article, kunya (ابو/ام), servant-of (عبد) and
// son-of (بن/ابن) constructions, attached and spaced.
var namePrefixes = []prefixEntry{
	{"", ""},
	{"ال", ""},   // المحمد
	{"ال", " "},  // ال محمد (less common)
	{"ابو", " "}, // ابو محمد
	{"ابو", ""},  // ابومحمد
	{"أبو", " "},
	{"أبو", ""},
	{"عبد", " "}, // عبد الله
	{"عبد", ""},  // عبدالله
	{"ام", " "},
	{"ام", ""},
	{"أم", " "},
	{"أم", ""},
	{"بن", " "},
	{"بن", ""},
	{"ابن", " "},
	{"ابن", ""},
}

// simplePrefixes is the reduced set used by default generation.
var simplePrefixes = []prefixEntry{
	{"", ""},
	{"ال", ""},
	{"ابو", " "},
	{"ابو", ""},
	{"عبد", ""},
	{"عبد", " "},
}

// passwordsCmd represents the passwords command
var passwordsCmd = &cobra.Command{
	Use:     "passwords",
	Aliases: []string{"pw"},
	Short:   "Unified Arabic password generator (root words, prefixes, pairs, years)",
	Long: `Combines root-derived words with common name prefixes, two-word
combinations and year suffixes:

    محمد
    عبدالله
    ابو محمد@2019
    محمد علي2019

Attack order, fastest first: --mode single, then single --year --at,
then --mode pairs, then --mode full.`,
	Args: cobra.ExactArgs(0),
	RunE: runPasswords,
}

func runPasswords(_ *cobra.Command, _ []string) error {
	if passwordsEstimate {
		est := estimatePasswords(passwordsMode, passwordsYear, passwordsAt)
		log.Info("passwords", "mode: %s", passwordsMode)
		log.Info("passwords", "year suffix: %v", passwordsYear)
		log.Info("passwords", "@ separator: %v", passwordsAt)
		log.Info("passwords", "estimated candidates: %d", est)
		return nil
	}

	out, err := outputWriter()
	if err != nil {
		return err
	}
	defer out.Close()

	switch passwordsMode {
	case "single":
		w := wordlist.NewWriter(out, wordlist.Options{})
		emitSingleWords(w, !passwordsNoPrefix, passwordsYear, passwordsAt)
		log.Info("passwords", "generated %d candidates", w.Count())
		return w.Flush()

	case "pairs":
		w := wordlist.NewWriter(out, wordlist.Options{})
		emitWordPairs(w, !passwordsNoPrefix, passwordsYear, passwordsAt, !passwordsNoSpace)
		log.Info("passwords", "generated %d candidates", w.Count())
		return w.Flush()

	case "full":
		// Full mode overlaps its sub-generators; dedup across all of them.
		w := wordlist.NewWriter(out, wordlist.Options{Dedup: true})
		emitSingleWords(w, true, true, passwordsAt)
		emitWordPairs(w, true, true, passwordsAt, true)
		emitWordPairs(w, true, true, passwordsAt, false)
		log.Info("passwords", "generated %d candidates", w.Count())
		return w.Flush()

	default:
		return fmt.Errorf("unknown mode %q (want single, pairs or full)", passwordsMode)
	}
}

// rootWords materializes the deduplicated root-derived word list.
func rootWords() []string {
	var words []string
	pattern.Generate(pattern.DefaultRoots, pattern.NameForms, func(word string) {
		words = append(words, word)
	})
	return words
}

// prefixedWords expands every word with the simple prefix table.
func prefixedWords(words []string) []string {
	out := make([]string, 0, len(words)*len(simplePrefixes))
	for _, word := range words {
		for _, p := range simplePrefixes {
			out = append(out, p.prefix+p.sep+word)
		}
	}
	return out
}

// yearSuffixes streams the year suffix set: the empty suffix, each
// common year, and optionally each year behind an @ sign.
func yearSuffixes(withAt bool, fn func(suffix string)) {
	fn("")
	for _, year := range wordlist.CommonYears {
		fn(year)
		if withAt {
			fn("@" + year)
		}
	}
}

func emitSingleWords(w *wordlist.Writer, withPrefix, withYear, withAt bool) {
	words := rootWords()
	if withPrefix {
		words = prefixedWords(words)
	}

	for _, word := range words {
		if !withYear {
			w.Emit(word)
			continue
		}
		yearSuffixes(withAt, func(suffix string) {
			w.Emit(word + suffix)
		})
	}
}

func emitWordPairs(w *wordlist.Writer, withPrefix, withYear, withAt, space bool) {
	words := rootWords()

	firstWords := words
	if withPrefix {
		firstWords = prefixedWords(words)
	}

	// Second word only takes the construct-state article.
	secondWords := make([]string, 0, len(words)*2)
	secondWords = append(secondWords, words...)
	for _, word := range words {
		secondWords = append(secondWords, "ال"+word)
	}

	separator := ""
	if space {
		separator = " "
	}

	for _, w1 := range firstWords {
		for _, w2 := range secondWords {
			base := w1 + separator + w2
			if !withYear {
				w.Emit(base)
				continue
			}
			yearSuffixes(withAt, func(suffix string) {
				w.Emit(base + suffix)
			})
		}
	}
}

// estimatePasswords computes the closed-form keyspace size without
// deduplication, so it overestimates slightly.
func estimatePasswords(mode string, withYear, withAt bool) int {
	baseWords := len(pattern.DefaultRoots) * len(pattern.NameForms)
	prefixed := baseWords * len(simplePrefixes)

	yearMult := 1
	if withYear {
		yearMult = 1 + len(wordlist.CommonYears)
		if withAt {
			yearMult = 1 + len(wordlist.CommonYears)*2
		}
	}

	switch mode {
	case "single":
		return prefixed * yearMult
	case "pairs":
		return prefixed * (baseWords * 2) * yearMult
	case "full":
		single := prefixed * yearMult
		pairs := prefixed * (baseWords * 2) * yearMult
		return single + pairs*2
	}

	return 0
}

func init() {
	rootCmd.AddCommand(passwordsCmd)

	passwordsCmd.Flags().StringVarP(&passwordsMode, "mode", "m", "single",
		"generation mode: single words, word pairs, or full")
	passwordsCmd.Flags().BoolVarP(&passwordsYear, "year", "y", false,
		"add year suffixes (1990-2025 + common numbers)")
	passwordsCmd.Flags().BoolVarP(&passwordsAt, "at", "a", false,
		"include @ before year (e.g. محمد@2019)")
	passwordsCmd.Flags().BoolVar(&passwordsNoSpace, "no-space", false,
		"for pairs mode: no space between words")
	passwordsCmd.Flags().BoolVar(&passwordsNoPrefix, "no-prefix", false,
		"skip prefixes (ال، ابو، عبد)")
	passwordsCmd.Flags().BoolVarP(&passwordsEstimate, "estimate", "e", false,
		"only show the keyspace estimate, do not generate")
}
