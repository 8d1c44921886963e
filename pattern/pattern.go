// Package pattern derives Arabic surface words from triliteral roots.
//
// Classical Arabic morphology maps a 3-letter consonantal root onto
// fixed templates (أوزان) to form words: the root ك-ت-ب yields كاتب
// (writer) under فاعل, مكتوب (written) under مفعول, كتاب (book) under
// فعال, and so on. Templates use ف, ع and ل as placeholders for the
// first, second and third root letters; every other letter is copied
// verbatim, and the shadda diacritic doubles the letter before it.
//
// The package carries the template catalog, the substitution engine and
// root-list loading. It has no state: the same root and template always
// produce the same word.
package pattern

// Template slot markers and the gemination mark.
const (
	slotFirst  = 'ف' // first root letter
	slotSecond = 'ع' // second root letter
	slotThird  = 'ل' // third root letter
	shadda     = 'ّ' // repeat previously emitted letter
)

// Pattern is one catalog entry: a template plus a human-readable
// description of the word class it derives.
type Pattern struct {
	Template    string
	Description string
}

// Apply substitutes the letters of a 3-letter root into template.
// ok is false when the root does not have exactly 3 letters; that marks
// the pairing inapplicable, not an error. A shadda before any emitted
// letter is a no-op.
func Apply(root, template string) (word string, ok bool) {
	r := []rune(root)
	if len(r) != 3 {
		return "", false
	}

	out := make([]rune, 0, len(template))
	for _, c := range template {
		switch c {
		case slotFirst:
			out = append(out, r[0])
		case slotSecond:
			out = append(out, r[1])
		case slotThird:
			out = append(out, r[2])
		case shadda:
			if len(out) > 0 {
				out = append(out, out[len(out)-1])
			}
		default:
			out = append(out, c)
		}
	}

	return string(out), true
}
