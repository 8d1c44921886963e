package arabic

import (
	"bytes"
	"strings"
	"testing"
)

func TestIsLikelyWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		word   string
		strict bool
		want   bool
	}{
		{name: "empty string", word: "", want: false},
		{name: "empty string strict", word: "", strict: true, want: false},

		// Vowel-letter requirement applies from length 4.
		{name: "real word with vowel", word: "كتاب", want: true},
		{name: "four letters no vowel", word: "كتبت", want: false},
		{name: "five letters no vowel", word: "كتبتم", want: false},
		{name: "three letters no vowel ok", word: "كتب", want: true},
		{name: "two letters no vowel ok", word: "كت", want: true},
		{name: "vowel waw counts", word: "مكتوب", want: true},
		{name: "vowel ya counts", word: "كريمي", want: true},

		// Banned doubled letters.
		{name: "doubled alef", word: "سااب", want: false},
		{name: "doubled waw", word: "سووب", want: false},
		{name: "doubled ya", word: "سييب", want: false},
		{name: "doubled hamza", word: "ءء", want: false},
		{name: "doubled alef at start", word: "اابت", want: false},
		{name: "doubled alef at end", word: "بتاا", want: false},

		// Hamza position.
		{name: "hamza initial ok", word: "ءاب", want: true},
		{name: "hamza final ok", word: "باء", want: true},
		{name: "hamza medial", word: "بءا", want: false},
		{name: "hamza medial long", word: "ساءاب", want: false},
		{name: "hamza both letters of pair ok", word: "ءب", want: true},

		// Strict-only rules: final-only letters.
		{name: "taa marbuta final ok strict", word: "جميلة", strict: true, want: true},
		{name: "taa marbuta medial strict", word: "مةرسا", strict: true, want: false},
		{name: "taa marbuta medial relaxed", word: "مةرسا", strict: false, want: true},
		{name: "alef maqsura final ok strict", word: "منى", strict: true, want: true},
		{name: "alef maqsura medial strict", word: "مىنا", strict: true, want: false},
		{name: "alef maqsura medial relaxed", word: "مىنا", strict: false, want: true},

		// Strict-only rules: non-initial letters.
		{name: "waw hamza initial strict", word: "ؤمن", strict: true, want: false},
		{name: "waw hamza initial relaxed", word: "ؤمن", strict: false, want: true},
		{name: "ya hamza initial strict", word: "ئمن", strict: true, want: false},
		{name: "waw hamza medial ok strict", word: "سؤال", strict: true, want: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := Filter{Strict: tt.strict}
			if got := f.IsLikelyWord(tt.word); got != tt.want {
				t.Errorf("Filter{Strict: %v}.IsLikelyWord(%q) = %v, want %v",
					tt.strict, tt.word, got, tt.want)
			}
		})
	}
}

func TestIsLikelyWordNoVowelRejection(t *testing.T) {
	t.Parallel()

	// Every 4-letter combination of non-vowel letters must be rejected.
	consonants := []rune("بتثجد")
	f := Filter{}

	for _, a := range consonants {
		for _, b := range consonants {
			word := string([]rune{a, b, 'ت', 'ب'})
			if f.IsLikelyWord(word) {
				t.Errorf("IsLikelyWord(%q) = true for vowelless 4-letter word", word)
			}
		}
	}
}

func TestFilterLines(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"كتاب",  // accepted
		"كتبت",  // no vowel, length 4
		"بءا",   // medial hamza
		"ؤمن",   // strict: bad initial
		"جميلة", // accepted
		"",      // empty
	}, "\n")

	var out bytes.Buffer
	f := Filter{Strict: true}
	if err := f.FilterLines(strings.NewReader(input), &out); err != nil {
		t.Fatalf("FilterLines: %v", err)
	}

	want := "كتاب\nجميلة\n"
	if out.String() != want {
		t.Errorf("FilterLines output = %q, want %q", out.String(), want)
	}
}

func TestFilterLinesRelaxedKeepsMore(t *testing.T) {
	t.Parallel()

	input := "ؤمن\nمةرسا\n"

	var strictOut, relaxedOut bytes.Buffer
	if err := (Filter{Strict: true}).FilterLines(strings.NewReader(input), &strictOut); err != nil {
		t.Fatalf("FilterLines strict: %v", err)
	}
	if err := (Filter{}).FilterLines(strings.NewReader(input), &relaxedOut); err != nil {
		t.Fatalf("FilterLines relaxed: %v", err)
	}

	if strictOut.Len() != 0 {
		t.Errorf("strict filter kept %q, want nothing", strictOut.String())
	}
	if relaxedOut.String() != input {
		t.Errorf("relaxed filter output = %q, want %q", relaxedOut.String(), input)
	}
}
