package wordlist

import (
	"fmt"
	"strconv"
)

// Year suffix tables. Gregorian years cover living memory; Hijri years
// cover the Islamic-calendar equivalents, which are just as common in
// the target region's passwords.
var (
	// Years are Gregorian years 1900-2025.
	Years = yearStrings(1900, 2025)
	// ShortYears are two-digit Gregorian years covering 1950-2025.
	ShortYears = shortYearStrings(1950, 2025)
	// HijriYears are Islamic calendar years 1300-1446.
	HijriYears = yearStrings(1300, 1446)
	// ShortHijri are two-digit Hijri years covering 1400-1446.
	ShortHijri = shortYearStrings(1400, 1446)
	// AllYears concatenates every year table.
	AllYears = concat(Years, ShortYears, HijriYears, ShortHijri)
	// CommonYears is the compact recent-year set plus the universal
	// numeric suffixes, used by the unified password generator.
	CommonYears = append(yearStrings(1990, 2025), "123", "1234", "12345")
)

// Specials are the separator/terminator characters observed between
// name and year. The leading empty entry means "no separator".
var Specials = []string{"", "!", "@", "#", "$", "%", "&", "*", "_", "-", ".", "+", "="}

// Separators join two words or names.
var Separators = []string{"", " ", "_", "-", ".", "@", "#"}

func yearStrings(from, to int) []string {
	out := make([]string, 0, to-from+1)
	for y := from; y <= to; y++ {
		out = append(out, strconv.Itoa(y))
	}
	return out
}

func shortYearStrings(from, to int) []string {
	out := make([]string, 0, to-from+1)
	for y := from; y <= to; y++ {
		out = append(out, fmt.Sprintf("%02d", y%100))
	}
	return out
}

func concat(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
