package arabic

import (
	"testing"
	"unicode/utf8"
)

func TestWordsLengthOne(t *testing.T) {
	t.Parallel()

	var words []string
	Filter{}.Words(1, func(w string) { words = append(words, w) })

	want := utf8.RuneCountInString(FirstLetters)
	if len(words) != want {
		t.Fatalf("Words(1) produced %d words, want %d", len(words), want)
	}
	for _, w := range words {
		if utf8.RuneCountInString(w) != 1 {
			t.Errorf("Words(1) produced %q", w)
		}
	}
}

func TestWordsAllPassFilter(t *testing.T) {
	t.Parallel()

	f := Filter{}
	for _, length := range []int{2, 3} {
		f.Words(length, func(w string) {
			if utf8.RuneCountInString(w) != length {
				t.Errorf("Words(%d) produced %q with wrong length", length, w)
			}
			if !f.IsLikelyWord(w) {
				t.Errorf("Words(%d) produced %q which fails its own filter", length, w)
			}
		})
	}
}

func TestWordsDeterministic(t *testing.T) {
	t.Parallel()

	collect := func() []string {
		var out []string
		Filter{}.Words(3, func(w string) { out = append(out, w) })
		return out
	}

	first, second := collect(), collect()
	if len(first) != len(second) {
		t.Fatalf("runs differ in length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("runs diverge at %d: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestWordsPrunesKeyspace(t *testing.T) {
	t.Parallel()

	// The filter exists to cut the raw combinatorial space; by length 4
	// the survivor fraction should be well under half.
	count := 0
	Filter{}.Words(4, func(string) { count++ })

	raw := 31 * 33 * 33 * 36
	if count == 0 {
		t.Fatal("Words(4) produced nothing")
	}
	if count*2 > raw {
		t.Errorf("Words(4) kept %d of %d raw combinations, expected sub-50%% survival", count, raw)
	}
}

func TestWordsZeroLength(t *testing.T) {
	t.Parallel()

	called := false
	Filter{}.Words(0, func(string) { called = true })
	if called {
		t.Error("Words(0) produced output")
	}
}

func TestEstimateWords(t *testing.T) {
	t.Parallel()

	if got := EstimateWords(0); got != 0 {
		t.Errorf("EstimateWords(0) = %v, want 0", got)
	}
	if got := EstimateWords(1); got != 32 {
		t.Errorf("EstimateWords(1) = %v, want 32", got)
	}
	// Estimates must grow with length.
	prev := 0.0
	for l := 1; l <= 6; l++ {
		e := EstimateWords(l)
		if e <= prev {
			t.Errorf("EstimateWords(%d) = %v, not greater than EstimateWords(%d) = %v", l, e, l-1, prev)
		}
		prev = e
	}
}
