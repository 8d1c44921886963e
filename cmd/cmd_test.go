package cmd

import (
	"strings"
	"testing"

	"arabicrackr/wordlist"
)

func TestParseWordLength(t *testing.T) {
	tests := []struct {
		arg     string
		want    int
		wantErr bool
	}{
		{arg: "1", want: 1},
		{arg: "8", want: 8},
		{arg: "0", wantErr: true},
		{arg: "9", wantErr: true},
		{arg: "-1", wantErr: true},
		{arg: "abc", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseWordLength(tt.arg)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseWordLength(%q): want error", tt.arg)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("parseWordLength(%q) = (%d, %v), want (%d, nil)", tt.arg, got, err, tt.want)
		}
	}
}

func TestYearSuffixes(t *testing.T) {
	var plain, withAt []string
	yearSuffixes(false, func(s string) { plain = append(plain, s) })
	yearSuffixes(true, func(s string) { withAt = append(withAt, s) })

	if plain[0] != "" {
		t.Errorf("first suffix = %q, want empty", plain[0])
	}
	if want := 1 + len(wordlist.CommonYears); len(plain) != want {
		t.Errorf("plain suffixes = %d, want %d", len(plain), want)
	}
	if want := 1 + len(wordlist.CommonYears)*2; len(withAt) != want {
		t.Errorf("withAt suffixes = %d, want %d", len(withAt), want)
	}

	atSeen := false
	for _, s := range withAt {
		if strings.HasPrefix(s, "@") {
			atSeen = true
			break
		}
	}
	if !atSeen {
		t.Error("yearSuffixes(true) produced no @-prefixed suffix")
	}
}

func TestPrefixedWords(t *testing.T) {
	got := prefixedWords([]string{"محمد"})

	if want := len(simplePrefixes); len(got) != want {
		t.Fatalf("prefixedWords produced %d words, want %d", len(got), want)
	}

	wantSet := map[string]bool{
		"محمد":     true, // no prefix
		"المحمد":   true,
		"ابو محمد": true,
		"ابومحمد":  true,
		"عبدمحمد":  true,
		"عبد محمد": true,
	}
	for _, w := range got {
		if !wantSet[w] {
			t.Errorf("unexpected prefixed word %q", w)
		}
	}
}

func TestEstimatePasswordsMonotonic(t *testing.T) {
	single := estimatePasswords("single", false, false)
	singleYear := estimatePasswords("single", true, false)
	singleYearAt := estimatePasswords("single", true, true)
	pairs := estimatePasswords("pairs", true, true)
	full := estimatePasswords("full", true, true)

	if single <= 0 {
		t.Fatalf("estimate single = %d, want positive", single)
	}
	if !(single < singleYear && singleYear < singleYearAt) {
		t.Errorf("year options must grow the estimate: %d, %d, %d", single, singleYear, singleYearAt)
	}
	if pairs <= singleYearAt {
		t.Errorf("pairs estimate %d not larger than single %d", pairs, singleYearAt)
	}
	if full <= pairs {
		t.Errorf("full estimate %d not larger than pairs %d", full, pairs)
	}

	if got := estimatePasswords("bogus", false, false); got != 0 {
		t.Errorf("estimate for unknown mode = %d, want 0", got)
	}
}
