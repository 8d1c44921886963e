package cmd

import (
	"fmt"

	"arabicrackr/names"
	"arabicrackr/utility"
	"arabicrackr/wordlist"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	log "github.com/visionmedia/go-cli-log"
)

var (
	targetedCities     bool
	targetedNoNames    bool
	targetedOnlyCities bool
	targetedPhone      bool
	targetedDigits4    bool
	targetedExtended   bool
)

// Mobile number prefixes for the target region.
var (
	jordanMobilePrefixes = []string{"077", "078", "079"}
	syriaMobilePrefixes  = []string{"091", "092", "093", "094", "095", "099"}
)

// commonTemplates are fixed shapes observed around names in cracked
// corpora; %s is the name slot.
var commonTemplates = []string{
	"%s123", "%s1234", "%s12345",
	"%s!", "%s!!", "%s@", "%s@@",
	"%s#1", "%s@1", "%s!1",
	"123%s", "1234%s",
	"%sabc", "%sxyz",
	"i%s", "my%s", "the%s",
	"%slove", "love%s",
	// Recent Gregorian years
	"%s2020", "%s2021", "%s2022", "%s2023", "%s2024",
	// Recent Hijri years
	"%s1440", "%s1441", "%s1442", "%s1443", "%s1444", "%s1445", "%s1446",
}

// targetedCmd represents the targeted command
var targetedCmd = &cobra.Command{
	Use:   "targeted",
	Short: "Targeted wordlist from Latin-spelling family and city names",
	Long: `Generates candidates around English spellings of the target family
names and, optionally, Jordan/Syria/Saudi city names: name+year,
year+name, name pairs, digit and special-character suffixes, leet-speak
variants and common password templates. Candidate length is bounded
(8-20 by default, configurable via MinLength/MaxLength).`,
	Args: cobra.ExactArgs(0),
	RunE: runTargeted,
}

func runTargeted(_ *cobra.Command, _ []string) error {
	if targetedOnlyCities {
		targetedCities = true
		targetedNoNames = true
	}

	nameList, err := names.Latin(names.Sources{
		Names:  !targetedNoNames,
		Cities: targetedCities,
		Abu:    !targetedNoNames,
	})
	if err != nil {
		return err
	}

	log.Info("targeted", "using %d name/city %v",
		len(nameList), utility.Pluralize("variation", len(nameList)))

	out, err := outputWriter()
	if err != nil {
		return err
	}
	defer out.Close()

	w := wordlist.NewWriter(out, wordlist.Options{
		MinLen: boundedLength("MinLength", 8),
		MaxLen: boundedLength("MaxLength", 20),
		Dedup:  true,
	})

	generators := []func([]string, *wordlist.Writer){
		genNameYear,
		genYearName,
		genNameSepName,
		genNameNameYear,
		genNameDigits,
		genNameSpecialDigits,
		genLeetYear,
		genCommonTemplates,
	}

	if targetedPhone {
		log.Info("targeted", "including phone number patterns")
		generators = append(generators, genPhonePatterns)
	}
	if targetedDigits4 {
		log.Info("targeted", "including 4-digit patterns (0000-9999)")
		generators = append(generators, genDigits4)
	}
	if targetedExtended {
		log.Info("targeted", "including extended digit patterns (5-7 digits)")
		generators = append(generators, genExtendedDigits)
	}

	for _, gen := range generators {
		gen(nameList, w)
	}

	log.Info("targeted", "generated %d candidates", w.Count())
	return w.Flush()
}

// boundedLength reads a length bound from config, falling back when the
// key is unset or unparseable.
func boundedLength(key string, fallback int) int {
	if !viper.IsSet(key) {
		return fallback
	}
	return viper.GetInt(key)
}

// Name + special + year (Gregorian + Hijri).
func genNameYear(nameList []string, w *wordlist.Writer) {
	for _, name := range nameList {
		for _, spec := range wordlist.Specials {
			for _, year := range wordlist.AllYears {
				w.Emit(name + spec + year)
			}
		}
	}
}

// Year + special + name.
func genYearName(nameList []string, w *wordlist.Writer) {
	for _, year := range wordlist.AllYears {
		for _, spec := range wordlist.Specials {
			for _, name := range nameList {
				w.Emit(year + spec + name)
			}
		}
	}
}

// Name + separator + name.
func genNameSepName(nameList []string, w *wordlist.Writer) {
	for _, name1 := range nameList {
		for _, sep := range wordlist.Separators {
			for _, name2 := range nameList {
				w.Emit(name1 + sep + name2)
			}
		}
	}
}

// Name + separator + name + short year.
func genNameNameYear(nameList []string, w *wordlist.Writer) {
	shortYears := append(append([]string{}, wordlist.ShortYears...), wordlist.ShortHijri...)

	for _, name1 := range nameList {
		for _, sep := range wordlist.Separators {
			for _, name2 := range nameList {
				base := name1 + sep + name2
				for _, year := range shortYears {
					w.Emit(base + year)
				}
			}
		}
	}
}

// Name + 1-3 digits.
func genNameDigits(nameList []string, w *wordlist.Writer) {
	for _, name := range nameList {
		for d := 0; d < 10; d++ {
			w.Emit(fmt.Sprintf("%s%d", name, d))
		}
		for d := 0; d < 100; d++ {
			w.Emit(fmt.Sprintf("%s%02d", name, d))
		}
		for d := 0; d < 1000; d++ {
			w.Emit(fmt.Sprintf("%s%03d", name, d))
		}
	}
}

// Name + special + up-to-4 digits.
func genNameSpecialDigits(nameList []string, w *wordlist.Writer) {
	for _, name := range nameList {
		for _, spec := range wordlist.Specials[1:] {
			for d := 0; d < 10000; d++ {
				w.Emit(fmt.Sprintf("%s%s%d", name, spec, d))
			}
		}
	}
}

// Leet-speak name variants with year suffixes.
func genLeetYear(nameList []string, w *wordlist.Writer) {
	for _, name := range nameList {
		wordlist.LeetVariants(name, func(leet string) {
			for _, year := range wordlist.AllYears {
				w.Emit(leet + year)
				for _, spec := range wordlist.Specials[1:] {
					w.Emit(leet + spec + year)
				}
			}
		})
	}
}

// Fixed common templates around the name, plain and Capitalized.
func genCommonTemplates(nameList []string, w *wordlist.Writer) {
	for _, name := range nameList {
		for _, tpl := range commonTemplates {
			w.Emit(fmt.Sprintf(tpl, name))
			w.Emit(fmt.Sprintf(tpl, wordlist.Capitalize(name)))
		}
	}
}

// Name + mobile prefix + 4-5 digits, with optional separator.
func genPhonePatterns(nameList []string, w *wordlist.Writer) {
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

		for _, sep := range []string{" ", "_"} {
			for _, prefix := range prefixes {
				for d := 0; d < 10000; d++ {
					w.Emit(fmt.Sprintf("%s%s%s%04d", name, sep, prefix, d))
				}
			}
		}
	}
}

// Name +/- separator + any 4 digits, both orders. Covers PO boxes,
// pins and short codes.
func genDigits4(nameList []string, w *wordlist.Writer) {
	separators := []string{"", " ", "_", "-", "."}

	for _, name := range nameList {
		for _, sep := range separators {
			for d := 0; d < 10000; d++ {
				w.Emit(fmt.Sprintf("%s%s%04d", name, sep, d))
				w.Emit(fmt.Sprintf("%04d%s%s", d, sep, name))
			}
		}
	}
}

// Name + 5-7 digits; 7-digit space sampled by thousands to stay sane.
func genExtendedDigits(nameList []string, w *wordlist.Writer) {
	for _, name := range nameList {
		for d := 0; d < 100000; d++ {
			w.Emit(fmt.Sprintf("%s%05d", name, d))
		}
		for d := 0; d < 1000000; d++ {
			w.Emit(fmt.Sprintf("%s%06d", name, d))
		}
		for d := 0; d < 10000000; d += 1000 {
			w.Emit(fmt.Sprintf("%s%07d", name, d))
		}
	}
}

func init() {
	rootCmd.AddCommand(targetedCmd)

	targetedCmd.Flags().BoolVar(&targetedCities, "cities", false,
		"include Jordan/Syria/Saudi city names")
	targetedCmd.Flags().BoolVar(&targetedNoNames, "no-names", false,
		"exclude family names")
	targetedCmd.Flags().BoolVar(&targetedOnlyCities, "only-cities", false,
		"use only city names (same as --cities --no-names)")
	targetedCmd.Flags().BoolVar(&targetedPhone, "phone", false,
		"include phone number patterns (large keyspace)")
	targetedCmd.Flags().BoolVar(&targetedDigits4, "digits4", false,
		"include any 4-digit patterns (PO boxes, pins)")
	targetedCmd.Flags().BoolVar(&targetedExtended, "extended", false,
		"include extended 5-7 digit patterns (very large)")
}
