package cmd

import (
	"fmt"

	"arabicrackr/names"
	"arabicrackr/utility"
	"arabicrackr/wordlist"

	"github.com/spf13/cobra"
	log "github.com/visionmedia/go-cli-log"
)

var (
	arTargetedCities       bool
	arTargetedNoNames      bool
	arTargetedOnlyCities   bool
	arTargetedPhone        bool
	arTargetedExtended     bool
	arTargetedArabicDigits bool
)

// Common Arabic affixes attached to names.
var (
	arabicNamePrefixes = []string{"يا", "ال", "أنا", "حب", "نور"}
	arabicNameSuffixes = []string{"ي", "تي", "نا", "كم"}
	religiousWords     = []string{"الله", "محمد", "رب", "حمد"}
	loveWords          = []string{"حب", "حبي", "حبيب", "حبيبي", "حبيبتي", "عمر", "عمري", "روح", "روحي", "قلب", "قلبي"}
	recentFullYears    = []string{
		"2020", "2021", "2022", "2023", "2024",
		"1440", "1441", "1442", "1443", "1444", "1445", "1446",
	}
)

// targetedArabicCmd represents the targeted-arabic command
var targetedArabicCmd = &cobra.Command{
	Use:   "targeted-arabic",
	Short: "Targeted wordlist from Arabic-script family and city names",
	Long: `The Arabic-script twin of the targeted command: generates candidates
around the target family names (يحيى، نور، سنا، عثمان، ماجد) and,
optionally, Jordan/Syria city names, combined with years, digits,
separators, common affixes (يا، ال، حبيبي) and religious words.`,
	Args: cobra.ExactArgs(0),
	RunE: runTargetedArabic,
}

func runTargetedArabic(_ *cobra.Command, _ []string) error {
	if arTargetedOnlyCities {
		arTargetedCities = true
		arTargetedNoNames = true
	}

	nameList, err := names.Arabic(names.Sources{
		Names:  !arTargetedNoNames,
		Cities: arTargetedCities,
		Abu:    !arTargetedNoNames,
	})
	if err != nil {
		return err
	}

	log.Info("targeted-arabic", "using %d name/city %v",
		len(nameList), utility.Pluralize("variation", len(nameList)))

	out, err := outputWriter()
	if err != nil {
		return err
	}
	defer out.Close()

	w := wordlist.NewWriter(out, wordlist.Options{
		MinLen:       boundedLength("MinLength", 8),
		MaxLen:       boundedLength("MaxLength", 20),
		Dedup:        true,
		ArabicDigits: arTargetedArabicDigits,
	})

	generators := []func([]string, *wordlist.Writer){
		genNameYear,
		genYearName,
		genArNameSpaceYear,
		genNameSepName,
		genArNameNameYear,
		genArNameDigits,
		genArNameSpaceDigits,
		genNameSpecialDigits,
		genArCommonAffixes,
		genArReligious,
		genArLove,
	}

	if arTargetedPhone {
		log.Info("targeted-arabic", "including phone number patterns")
		generators = append(generators, genArPhonePatterns)
	}
	if arTargetedExtended {
		log.Info("targeted-arabic", "including extended digit patterns (5-7 digits)")
		generators = append(generators, genExtendedDigits)
	}

	for _, gen := range generators {
		gen(nameList, w)
	}

	log.Info("targeted-arabic", "generated %d candidates", w.Count())
	return w.Flush()
}

// Name + space + year, optionally with a special after the space.
func genArNameSpaceYear(nameList []string, w *wordlist.Writer) {
	for _, name := range nameList {
		for _, year := range wordlist.AllYears {
			w.Emit(name + " " + year)
			for _, spec := range wordlist.Specials[1:] {
				w.Emit(name + " " + spec + year)
			}
		}
	}
}

// Name + separator + name + short or recent year.
func genArNameNameYear(nameList []string, w *wordlist.Writer) {
	years := append(append([]string{}, wordlist.ShortYears...), wordlist.ShortHijri...)
	years = append(years, recentFullYears...)

	for _, name1 := range nameList {
		for _, sep := range wordlist.Separators {
			for _, name2 := range nameList {
				base := name1 + sep + name2
				for _, year := range years {
					w.Emit(base + year)
				}
			}
		}
	}
}

// Name + 1-4 digits.
func genArNameDigits(nameList []string, w *wordlist.Writer) {
	for _, name := range nameList {
		for width := 1; width <= 4; width++ {
			emitDigitTail(name, "", width, w)
		}
	}
}

// Name + space + 1-4 digits.
func genArNameSpaceDigits(nameList []string, w *wordlist.Writer) {
	for _, name := range nameList {
		for width := 1; width <= 4; width++ {
			emitDigitTail(name, " ", width, w)
		}
	}
}

func emitDigitTail(name, sep string, width int, w *wordlist.Writer) {
	limit := 1
	for i := 0; i < width; i++ {
		limit *= 10
	}
	for d := 0; d < limit; d++ {
		w.Emit(fmt.Sprintf("%s%s%0*d", name, sep, width, d))
	}
}

// Vocative/article prefixes and possessive suffixes, with short years.
func genArCommonAffixes(nameList []string, w *wordlist.Writer) {
	shortYears := append(append([]string{}, wordlist.ShortYears...), wordlist.ShortHijri...)

	for _, name := range nameList {
		for _, prefix := range arabicNamePrefixes {
			w.Emit(prefix + name)
			for _, year := range shortYears {
				w.Emit(prefix + name + year)
			}
		}

		for _, suffix := range arabicNameSuffixes {
			w.Emit(name + suffix)
			for _, year := range shortYears {
				w.Emit(name + suffix + year)
			}
		}
	}
}

// Religious words around the name, attached and spaced, plus year tails.
func genArReligious(nameList []string, w *wordlist.Writer) {
	shortYears := append(append([]string{}, wordlist.ShortYears...), wordlist.ShortHijri...)

	for _, name := range nameList {
		for _, rel := range religiousWords {
			w.Emit(name + rel)
			w.Emit(name + " " + rel)
			w.Emit(rel + name)
			w.Emit(rel + " " + name)
			for _, year := range shortYears {
				w.Emit(name + rel + year)
			}
		}
	}
}

// Love/family words around the name, plus recent-year tails.
func genArLove(nameList []string, w *wordlist.Writer) {
	for _, name := range nameList {
		for _, love := range loveWords {
			w.Emit(love + name)
			w.Emit(love + " " + name)
			w.Emit(name + love)
			w.Emit(name + " " + love)
			for _, year := range recentFullYears {
				w.Emit(love + name + year)
			}
		}
	}
}

// Name + mobile prefix + 4-5 digits; spaced variant with 4 digits.
func genArPhonePatterns(nameList []string, w *wordlist.Writer) {
	prefixes := append(append([]string{}, jordanMobilePrefixes...), syriaMobilePrefixes...)

	for _, name := range nameList {
		for _, prefix := range prefixes {
			for d := 0; d < 10000; d++ {
				w.Emit(fmt.Sprintf("%s%s%04d", name, prefix, d))
			}
			for d := 0; d < 100000; d++ {
				w.Emit(fmt.Sprintf("%s%s%05d", name, prefix, d))
			}
		}

		for _, prefix := range prefixes {
			for d := 0; d < 10000; d++ {
				w.Emit(fmt.Sprintf("%s %s%04d", name, prefix, d))
			}
		}
	}
}

func init() {
	rootCmd.AddCommand(targetedArabicCmd)

	targetedArabicCmd.Flags().BoolVar(&arTargetedCities, "cities", false,
		"include Jordan/Syria city names")
	targetedArabicCmd.Flags().BoolVar(&arTargetedNoNames, "no-names", false,
		"exclude family names")
	targetedArabicCmd.Flags().BoolVar(&arTargetedOnlyCities, "only-cities", false,
		"use only city names (same as --cities --no-names)")
	targetedArabicCmd.Flags().BoolVar(&arTargetedPhone, "phone", false,
		"include phone number patterns (large keyspace)")
	targetedArabicCmd.Flags().BoolVar(&arTargetedExtended, "extended", false,
		"include extended 5-7 digit patterns (very large)")
	targetedArabicCmd.Flags().BoolVar(&arTargetedArabicDigits, "arabic-digits", false,
		"also emit candidates with Eastern Arabic numerals")
}
