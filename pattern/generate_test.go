package pattern

import "testing"

func TestHasBadDoubles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word string
		want bool
	}{
		{"كتاب", false},
		{"كتتب", false}, // geminated consonant is fine
		{"سااب", true},
		{"سووب", true},
		{"سييب", true},
		{"ءء", true},
		{"", false},
		{"ا", false},
	}

	for _, tt := range tests {
		if got := HasBadDoubles(tt.word); got != tt.want {
			t.Errorf("HasBadDoubles(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestGenerateNoDuplicates(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	Generate(DefaultRoots, Catalog, func(word string) {
		if seen[word] {
			t.Errorf("Generate emitted %q twice", word)
		}
		seen[word] = true
	})

	if len(seen) == 0 {
		t.Fatal("Generate emitted nothing")
	}
}

func TestGenerateSkipsInapplicableRoots(t *testing.T) {
	t.Parallel()

	count := 0
	Generate([]string{"كت", "كتبت"}, Simple, func(string) { count++ })
	if count != 0 {
		t.Errorf("Generate emitted %d words from invalid roots, want 0", count)
	}
}

func TestGenerateDropsBadDoubles(t *testing.T) {
	t.Parallel()

	// Root اوي under فاعل gives ااوي which starts with a banned double.
	skipped := Generate([]string{"اوي"}, []Pattern{{Template: "فاعل"}}, func(word string) {
		t.Errorf("Generate emitted %q, want it dropped", word)
	})
	if skipped != 1 {
		t.Errorf("Generate skipped = %d, want 1", skipped)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	t.Parallel()

	collect := func() []string {
		var out []string
		Generate(DefaultRoots, Simple, func(w string) { out = append(out, w) })
		return out
	}

	first, second := collect(), collect()
	if len(first) != len(second) {
		t.Fatalf("runs differ in length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("runs diverge at index %d: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestGenerateKnownWords(t *testing.T) {
	t.Parallel()

	// The كتب root must yield its textbook derivations.
	want := map[string]bool{
		"كاتب":  false, // فاعل
		"مكتوب": false, // مفعول
		"كتاب":  false, // فعال
		"مكتبة": false, // مفعلة
	}

	Generate([]string{"كتب"}, Catalog, func(word string) {
		if _, ok := want[word]; ok {
			want[word] = true
		}
	})

	for word, found := range want {
		if !found {
			t.Errorf("Generate over كتب did not emit %q", word)
		}
	}
}
