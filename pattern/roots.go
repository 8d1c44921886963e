package pattern

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"
)

// DefaultRoots is the built-in root list: roughly the hundred roots
// behind the most common Arabic names and vocabulary.
var DefaultRoots = []string{
	// Names, very common in passwords
	"حمد", "علم", "سلم", "عبد", "حسن", "كرم", "جمل", "نور", "صلح", "فتح",
	"خلد", "رحم", "عزز", "صدق", "نصر", "فرح", "سعد", "مجد", "هدي", "فضل",
	"جلل", "عدل", "قدر", "امن", "وجد", "كتب", "قول", "عمل", "درس", "فهم",
	// Common verbs and nouns
	"سمع", "نظر", "جلس", "اكل", "شرب", "نوم", "قوم", "مشي", "ركب", "سكن",
	"خرج", "دخل", "حمل", "نقل", "طلب", "بحث", "عرف", "جمع", "صنع", "بني",
	"ملك", "سفر", "خدم", "لبس", "غسل", "طبخ", "كسر", "فتح", "غلق", "ربح",
	// Religious and cultural
	"صلو", "زكو", "صوم", "حجج", "توب", "غفر", "شكر", "صبر", "حلم", "خلق",
	// Family
	"ولد", "زوج", "اخو", "ابو", "امم", "بنت", "عمم", "خال",
}

var rootSeparators = strings.NewReplacer("-", "", " ", "")

// ParseRoots reads a root list: one root per line, UTF-8, blank lines
// and # comments ignored. A root may be written as three joined letters
// (كتب) or separated by dashes or spaces (ك-ت-ب). Lines that do not
// normalize to exactly 3 letters are collected into the returned error;
// valid lines still load, so callers decide whether partial input is
// usable.
func ParseRoots(r io.Reader) ([]string, error) {
	var roots []string
	var errs *multierror.Error

	sc := bufio.NewScanner(r)
	lineNum := 0

	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		root := rootSeparators.Replace(line)
		if utf8.RuneCountInString(root) != 3 {
			errs = multierror.Append(errs,
				fmt.Errorf("line %d: %q does not normalize to a 3-letter root", lineNum, line))
			continue
		}

		roots = append(roots, root)
	}

	if err := sc.Err(); err != nil {
		errs = multierror.Append(errs, err)
	}

	return roots, errs.ErrorOrNil()
}

// LoadRoots reads a root list file. A missing or unreadable file is
// fatal; malformed lines are reported the way ParseRoots reports them.
func LoadRoots(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseRoots(f)
}
