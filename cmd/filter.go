package cmd

import (
	"os"

	"arabicrackr/arabic"

	"github.com/spf13/cobra"
)

var filterRelaxed bool

// filterCmd represents the filter command
var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Filter candidate words on stdin down to plausible Arabic",
	Long: `Reads candidate words one per line from stdin and writes through
only those that pass the Arabic orthography filter. Meant to sit between
a mask generator and the cracking tool:

    maskprocessor '?1?2?2?2?2?3' | arabicrackr filter | hashcat ...`,
	Args: cobra.ExactArgs(0),
	RunE: runFilter,
}

func runFilter(_ *cobra.Command, _ []string) error {
	out, err := outputWriter()
	if err != nil {
		return err
	}
	defer out.Close()

	f := arabic.Filter{Strict: !filterRelaxed}
	return f.FilterLines(os.Stdin, out)
}

func init() {
	rootCmd.AddCommand(filterCmd)

	filterCmd.Flags().BoolVar(&filterRelaxed, "relaxed", false,
		"drop the positional rules for ة ى ؤ ئ (generation-path rule set)")
}
