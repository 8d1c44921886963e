package cmd

import (
	"strconv"

	"arabicrackr/wordlist"

	"github.com/spf13/cobra"
	log "github.com/visionmedia/go-cli-log"
)

// The fixed word set for the last-resort sweep: target names plus the
// filler words that glue multi-word passwords together.
var (
	oneshotNames = []string{
		"yahya", "yahia", "yehya",
		"noor", "nour", "nur",
		"sana", "sanaa", "sanah",
		"othman", "osman", "uthman",
		"majed", "majid", "majedh",
		"afnan", "afneen", "afnon",
		"osama", "ussama", "ussamah", "usama",
	}
	oneshotKeywords = []string{
		"and", "love", "my", "forever", "with", "best", "only", "true",
	}
	oneshotSpecials = []string{"", "@", "#", "!", ".", "_", "-", "*", "%"}
)

// oneshotCmd represents the oneshot command
var oneshotCmd = &cobra.Command{
	Use:   "oneshot",
	Short: "Exhaustive sweep over the fixed name/keyword set",
	Long: `Expands the fixed Latin name and keyword set through case variants,
then emits single words, two- and three-word combinations joined by
special characters, and two-word combinations with a year in every
position. No filtering, no length bounds: the everything-else attack.`,
	Args: cobra.ExactArgs(0),
	RunE: runOneshot,
}

func runOneshot(_ *cobra.Command, _ []string) error {
	var words []string
	for _, w := range append(append([]string{}, oneshotNames...), oneshotKeywords...) {
		words = append(words, wordlist.CaseVariants(w)...)
	}

	out, err := outputWriter()
	if err != nil {
		return err
	}
	defer out.Close()

	w := wordlist.NewWriter(out, wordlist.Options{})

	// Single words.
	for _, a := range words {
		w.Emit(a)
	}

	// Two-word combinations.
	for _, a := range words {
		for _, b := range words {
			for _, s := range oneshotSpecials {
				w.Emit(a + s + b)
			}
		}
	}

	// Three-word combinations.
	for _, a := range words {
		for _, b := range words {
			for _, c := range words {
				for _, s := range oneshotSpecials {
					w.Emit(a + s + b + s + c)
				}
			}
		}
	}

	// Two words with a year in every position.
	for _, a := range words {
		for _, b := range words {
			for year := 1900; year <= 2025; year++ {
				y := strconv.Itoa(year)
				for _, s := range oneshotSpecials {
					w.Emit(a + s + b + s + y)
					w.Emit(y + s + a + s + b)
					w.Emit(a + s + y + s + b)
				}
			}
		}
	}

	log.Info("oneshot", "generated %d candidates", w.Count())
	return w.Flush()
}

func init() {
	rootCmd.AddCommand(oneshotCmd)
}
