// Package names carries the targeted wordlist data: spelling variants
// of the target family names and of Jordanian, Syrian and Saudi city
// names, in both Latin transliteration and Arabic script, plus the
// kunya (abu/umm) prefix expansion applied to personal names.
//
// Tables are ordered slices, not maps, so generation order is stable
// across runs.
package names

import (
	"errors"
	"strings"
)

// Entry groups the spelling variants of one name under a canonical key.
type Entry struct {
	Key      string
	Variants []string
}

// Sources selects which tables feed the working name list.
type Sources struct {
	Names  bool // family names
	Cities bool // Jordan + Syria (+ Saudi for Latin) city names
	Abu    bool // kunya-prefixed family name variants
}

// ErrNoSources is returned when neither names nor cities are selected.
var ErrNoSources = errors.New("must include at least names or cities")

// Latin returns the flattened Latin-spelling name list for the selected
// sources, preserving table order.
func Latin(src Sources) ([]string, error) {
	if !src.Names && !src.Cities {
		return nil, ErrNoSources
	}

	var out []string
	if src.Names {
		out = appendVariants(out, FamilyNames)
		if src.Abu {
			out = append(out, abuVariantsLatin(FamilyNames)...)
		}
	}
	if src.Cities {
		out = appendVariants(out, JordanCities)
		out = appendVariants(out, SyriaCities)
		out = appendVariants(out, SaudiCities)
	}
	return out, nil
}

// Arabic returns the flattened Arabic-script name list for the selected
// sources.
func Arabic(src Sources) ([]string, error) {
	if !src.Names && !src.Cities {
		return nil, ErrNoSources
	}

	var out []string
	if src.Names {
		out = appendVariants(out, FamilyNamesArabic)
		if src.Abu {
			out = append(out, abuVariantsArabic(FamilyNamesArabic)...)
		}
	}
	if src.Cities {
		out = appendVariants(out, JordanCitiesArabic)
		out = appendVariants(out, SyriaCitiesArabic)
	}
	return out, nil
}

func appendVariants(dst []string, table []Entry) []string {
	for _, e := range table {
		dst = append(dst, e.Variants...)
	}
	return dst
}

// Kunya prefixes. Cities never take them, only personal names.
var (
	abuPrefixesLatin  = []string{"abu", "Abu", "ABU", "abo", "Abo", "ABO"}
	abuSeparators     = []string{"", " ", "_"}
	abuPrefixesArabic = []string{"ابو", "أبو", "ابو ", "أبو "}
)

// abuVariantsLatin expands abu + separator + name over the table,
// skipping variants that already carry the prefix.
func abuVariantsLatin(table []Entry) []string {
	var out []string
	for _, e := range table {
		for _, name := range e.Variants {
			lower := strings.ToLower(name)
			if strings.HasPrefix(lower, "abu") || strings.HasPrefix(lower, "abo") {
				continue
			}
			for _, abu := range abuPrefixesLatin {
				for _, sep := range abuSeparators {
					out = append(out, abu+sep+name)
				}
			}
		}
	}
	return out
}

func abuVariantsArabic(table []Entry) []string {
	var out []string
	for _, e := range table {
		for _, name := range e.Variants {
			for _, abu := range abuPrefixesArabic {
				out = append(out, abu+name)
			}
		}
	}
	return out
}
