package cmd

import (
	"errors"
	"fmt"

	"arabicrackr/pattern"
	"arabicrackr/wordlist"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	log "github.com/visionmedia/go-cli-log"
)

var (
	rootsFile     string
	rootsDigits   string
	rootsEstimate bool
	rootsFull     bool
	rootsPatterns bool
)

// rootsCmd represents the roots command
var rootsCmd = &cobra.Command{
	Use:     "roots",
	Aliases: []string{"r"},
	Short:   "Generate Arabic words from 3-letter roots using morphological patterns",
	Long: `Applies the template catalog (أوزان) to triliteral roots to derive
word candidates: root كتب yields كاتب، مكتوب، كتاب and so on. Uses the
built-in root list unless --roots points at a file (one root per line,
either كتب or ك-ت-ب form, # comments allowed).

    arabicrackr roots --digits 4
    arabicrackr roots --roots my_roots.txt --full
    arabicrackr roots --patterns`,
	Args: cobra.ExactArgs(0),
	RunE: runRoots,
}

func runRoots(_ *cobra.Command, _ []string) error {
	if rootsPatterns {
		listPatterns()
		return nil
	}

	digits, err := wordlist.ParseDigitRange(rootsDigits)
	if err != nil {
		return err
	}

	patterns := pattern.Simple
	if rootsFull {
		patterns = pattern.Catalog
	}

	roots, err := resolveRoots()
	if err != nil {
		return err
	}

	if rootsEstimate {
		log.Info("roots", "roots: %d", len(roots))
		log.Info("roots", "patterns: %d", len(patterns))
		log.Info("roots", "digit combinations: %d", digits.Count())
		log.Info("roots", "estimated candidates: %d", len(roots)*len(patterns)*digits.Count())
		return nil
	}

	log.Info("roots", "generating from %d roots x %d patterns", len(roots), len(patterns))

	out, err := outputWriter()
	if err != nil {
		return err
	}
	defer out.Close()

	w := wordlist.NewWriter(out, wordlist.Options{})

	skipped := pattern.Generate(roots, patterns, func(word string) {
		digits.Suffixes(func(suffix string) {
			w.Emit(word + suffix)
		})
	})

	if skipped > 0 {
		log.Info("roots", "skipped %d words with invalid doubled letters", skipped)
	}
	log.Info("roots", "generated %d candidates", w.Count())

	return w.Flush()
}

// resolveRoots picks the root list: the --roots flag wins, then the
// configured RootsFile, then the built-in list. A file that yields no
// valid roots is fatal; a file with some bad lines loads the rest and
// reports the bad ones.
func resolveRoots() ([]string, error) {
	path := rootsFile
	if path == "" {
		path = viper.GetString("RootsFile")
	}
	if path == "" || path == "builtin" {
		return pattern.DefaultRoots, nil
	}

	roots, err := pattern.LoadRoots(path)
	if err != nil {
		if len(roots) == 0 {
			return nil, err
		}
		log.Info("roots", "ignoring invalid lines: %v", err)
	}
	if len(roots) == 0 {
		return nil, errors.New("roots file contains no valid roots")
	}

	return roots, nil
}

func listPatterns() {
	fmt.Println("Available patterns:")
	for _, p := range pattern.Catalog {
		example, _ := pattern.Apply("كتب", p.Template)
		fmt.Printf("  %-10s (%-25s) -> %s\n", p.Template, p.Description, example)
	}
}

func init() {
	rootCmd.AddCommand(rootsCmd)

	rootsCmd.Flags().StringVarP(&rootsFile, "roots", "r", "",
		"path to roots file (default: configured RootsFile or builtin)")
	rootsCmd.Flags().StringVarP(&rootsDigits, "digits", "d", "0",
		`digit suffix range: "4" for exactly 4, "0-4" for 0 to 4`)
	rootsCmd.Flags().BoolVarP(&rootsEstimate, "estimate", "e", false,
		"only show the keyspace estimate, do not generate")
	rootsCmd.Flags().BoolVarP(&rootsFull, "full", "f", false,
		"use the full pattern catalog (slower, more words)")
	rootsCmd.Flags().BoolVarP(&rootsPatterns, "patterns", "p", false,
		"list available patterns and exit")
}
