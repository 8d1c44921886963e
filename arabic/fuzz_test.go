package arabic

import (
	"strings"
	"testing"
)

func FuzzIsLikelyWord(f *testing.F) {
	f.Add("كتاب")
	f.Add("كتب")
	f.Add("مكتوب")
	f.Add("ءاب")
	f.Add("بءا")
	f.Add("سااب")
	f.Add("ؤمن")
	f.Add("مدرسة")
	f.Add("")
	f.Add("ءء")
	f.Add("a")
	f.Add("\xff\xfe")

	f.Fuzz(func(t *testing.T, word string) {
		relaxed := Filter{}.IsLikelyWord(word)
		strict := Filter{Strict: true}.IsLikelyWord(word)

		// Strict is a refinement: it never accepts what relaxed rejects.
		if strict && !relaxed {
			t.Errorf("strict accepted %q but relaxed rejected it", word)
		}

		if word == "" && relaxed {
			t.Error("empty string accepted")
		}

		// Banned doubles always reject, in both modes.
		for _, bad := range []string{"اا", "وو", "يي", "ءء"} {
			if strings.Contains(word, bad) && relaxed {
				t.Errorf("word %q with banned double %q accepted", word, bad)
			}
		}

		// Interior hamza always rejects.
		runes := []rune(word)
		if len(runes) > 2 {
			for _, r := range runes[1 : len(runes)-1] {
				if r == 'ء' && relaxed {
					t.Errorf("word %q with interior hamza accepted", word)
				}
			}
		}
	})
}
