package wordlist

import (
	"fmt"
	"strconv"
	"strings"
)

// DigitRange is an inclusive range of digit-suffix widths. Min 0 means
// the empty suffix is included.
type DigitRange struct {
	Min, Max int
}

// ParseDigitRange parses a width specification: "4" means exactly four
// digits, "0-4" means none up to four, "2-4" means two to four.
func ParseDigitRange(spec string) (DigitRange, error) {
	var d DigitRange

	if i := strings.Index(spec, "-"); i >= 0 {
		min, err := strconv.Atoi(spec[:i])
		if err != nil {
			return d, fmt.Errorf("invalid digit range %q: %v", spec, err)
		}
		max, err := strconv.Atoi(spec[i+1:])
		if err != nil {
			return d, fmt.Errorf("invalid digit range %q: %v", spec, err)
		}
		d.Min, d.Max = min, max
	} else {
		n, err := strconv.Atoi(spec)
		if err != nil {
			return d, fmt.Errorf("invalid digit range %q: %v", spec, err)
		}
		d.Min, d.Max = n, n
	}

	if d.Min < 0 || d.Max < d.Min {
		return d, fmt.Errorf("invalid digit range %q", spec)
	}

	return d, nil
}

// Suffixes streams every digit suffix in the range to fn: the empty
// suffix first when Min is 0, then all fixed-width strings per width in
// ascending numeric order ("00" before "01").
func (d DigitRange) Suffixes(fn func(suffix string)) {
	if d.Min == 0 {
		fn("")
	}

	lo := d.Min
	if lo < 1 {
		lo = 1
	}

	for width := lo; width <= d.Max; width++ {
		buf := make([]byte, width)
		fillDigits(buf, 0, fn)
	}
}

func fillDigits(buf []byte, pos int, fn func(string)) {
	if pos == len(buf) {
		fn(string(buf))
		return
	}
	for c := byte('0'); c <= '9'; c++ {
		buf[pos] = c
		fillDigits(buf, pos+1, fn)
	}
}

// Count returns the number of suffixes Suffixes will produce.
func (d DigitRange) Count() int {
	total := 0
	if d.Min == 0 {
		total = 1
	}

	lo := d.Min
	if lo < 1 {
		lo = 1
	}

	for width := lo; width <= d.Max; width++ {
		p := 1
		for i := 0; i < width; i++ {
			p *= 10
		}
		total += p
	}

	return total
}

// easternDigits maps ASCII digits to Eastern Arabic numerals (٠-٩).
var easternDigits = map[rune]rune{
	'0': '٠', '1': '١', '2': '٢', '3': '٣', '4': '٤',
	'5': '٥', '6': '٦', '7': '٧', '8': '٨', '9': '٩',
}

// EasternArabic replaces every ASCII digit in s with the corresponding
// Eastern Arabic numeral; other characters pass through unchanged.
func EasternArabic(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if e, ok := easternDigits[r]; ok {
			b.WriteRune(e)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
