// Package arabic classifies candidate strings as plausible Arabic
// orthography and enumerates the positional brute-force keyspace.
//
// The filter is a keyspace-reduction heuristic for password-cracking
// pipelines, not a linguistic model: it discards roughly 75-80% of raw
// letter combinations while keeping real Arabic words. The rules encode
// positional restrictions of standard orthography:
//
//   - Words of 4+ letters need at least one vowel letter (ا و ي).
//   - Vowel letters and hamza never double (اا وو يي ءء).
//   - Hamza (ء) only occurs word-initially or word-finally.
//   - Strict mode only: ة and ى are final-only, ؤ and ئ never start a word.
//
// Strictness is a configuration knob: standalone filtering of external
// candidate streams wants the full rule set, brute-force generation
// already restricts letters by position and runs relaxed.
package arabic

// vowelLetters holds the Arabic vowel letters (حروف العلة).
var vowelLetters = map[rune]bool{
	'ا': true,
	'و': true,
	'ي': true,
}

// badDoubles lists the letter bigrams that never occur in Arabic words.
var badDoubles = [...]string{"اا", "وو", "يي", "ءء"}

// finalOnly holds letters restricted to word-final position.
var finalOnly = map[rune]bool{
	'ة': true, // taa marbuta
	'ى': true, // alef maqsura
}

// noInitial holds the hamza carriers that cannot start a word.
var noInitial = map[rune]bool{
	'ؤ': true,
	'ئ': true,
}

// hamza is the bare glottal stop letter.
const hamza = 'ء'

// doublable marks the letters that may not appear as identical adjacent
// pairs even when gemination (shadda) would otherwise allow doubling.
var doublable = map[rune]bool{
	'ا': true,
	'و': true,
	'ي': true,
	'ء': true,
}

// IsVowelLetter reports whether r is one of the vowel letters ا, و, ي.
func IsVowelLetter(r rune) bool {
	return vowelLetters[r]
}

// IsShaddaBanned reports whether r may never appear doubled.
func IsShaddaBanned(r rune) bool {
	return doublable[r]
}
