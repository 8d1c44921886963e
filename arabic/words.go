package arabic

import "math"

// Positional charsets for brute-force enumeration. Letters that cannot
// occupy a position are excluded up front so the filter has less to do.
const (
	// FirstLetters excludes ة ى ؤ ئ, which cannot start a word.
	FirstLetters = "ابتثجحخدذرزسشصضطظعغفقكلمنهويأإآ"
	// MiddleLetters excludes ء ة ى, which cannot appear word-medially.
	MiddleLetters = "ابتثجحخدذرزسشصضطظعغفقكلمنهويأإآؤئ"
	// LastLetters allows every letter.
	LastLetters = "ءابتثجحخدذرزسشصضطظعغفقكلمنهويأإآؤئةى"
)

// Words calls fn for every filter-passing word of the given rune length.
// Single-letter words enumerate the initial charset only; longer words
// combine first + middle(s) + last positions. Enumeration order is fixed
// by the charset tables, so repeated runs produce identical streams.
func (f Filter) Words(length int, fn func(word string)) {
	switch {
	case length < 1:
		return

	case length == 1:
		for _, c := range FirstLetters {
			fn(string(c))
		}

	case length == 2:
		for _, first := range FirstLetters {
			for _, last := range LastLetters {
				word := string([]rune{first, last})
				if f.IsLikelyWord(word) {
					fn(word)
				}
			}
		}

	default:
		buf := make([]rune, length)
		middles := []rune(MiddleLetters)
		for _, first := range FirstLetters {
			buf[0] = first
			f.fillMiddle(buf, 1, middles, fn)
		}
	}
}

func (f Filter) fillMiddle(buf []rune, pos int, middles []rune, fn func(string)) {
	if pos == len(buf)-1 {
		for _, last := range LastLetters {
			buf[pos] = last
			word := string(buf)
			if f.IsLikelyWord(word) {
				fn(word)
			}
		}
		return
	}

	for _, m := range middles {
		buf[pos] = m
		f.fillMiddle(buf, pos+1, middles, fn)
	}
}

// EstimateWords returns a rough count of filter-passing words of the
// given length, without enumerating. The constants are calibrated against
// observed survival rates: ~90% of two-letter and ~25% of longer
// combinations pass the filter.
func EstimateWords(length int) float64 {
	switch {
	case length < 1:
		return 0
	case length == 1:
		return 32
	case length == 2:
		return 32 * 36 * 0.9
	default:
		return 32 * math.Pow(33, float64(length-2)) * 36 * 0.25
	}
}
