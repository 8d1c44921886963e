package wordlist

import (
	"testing"

	. "github.com/onsi/gomega"
)

func TestCaseVariants(t *testing.T) {
	g := NewWithT(t)

	g.Expect(CaseVariants("yahya")).To(Equal([]string{"yahya", "Yahya", "YAHYA"}))
	g.Expect(CaseVariants("NOOR")).To(Equal([]string{"noor", "Noor", "NOOR"}))
	g.Expect(CaseVariants("")).To(Equal([]string{"", "", ""}))
}

func TestLeetVariants(t *testing.T) {
	g := NewWithT(t)

	var got []string
	LeetVariants("sana", func(v string) { got = append(got, v) })

	// Three substitutable positions (s, a, a) give 2^3-1 variants.
	g.Expect(got).To(HaveLen(7))
	g.Expect(got).To(ContainElement("$@n@")) // all substituted
	g.Expect(got).To(ContainElement("$ana")) // s only
	g.Expect(got).To(ContainElement("s@n@"))
	g.Expect(got).NotTo(ContainElement("sana"))
}

func TestLeetVariantsNoSubstitutableLetters(t *testing.T) {
	g := NewWithT(t)

	called := false
	LeetVariants("jq", func(string) { called = true })
	g.Expect(called).To(BeFalse())
}

func TestLeetVariantsLowercasesInput(t *testing.T) {
	g := NewWithT(t)

	var got []string
	LeetVariants("SANA", func(v string) { got = append(got, v) })
	g.Expect(got).To(ContainElement("$@n@"))
}

func TestYearTables(t *testing.T) {
	g := NewWithT(t)

	g.Expect(Years).To(HaveLen(126)) // 1900-2025
	g.Expect(Years[0]).To(Equal("1900"))
	g.Expect(Years[len(Years)-1]).To(Equal("2025"))

	g.Expect(ShortYears[0]).To(Equal("50"))
	g.Expect(ShortYears[len(ShortYears)-1]).To(Equal("25"))

	g.Expect(HijriYears[0]).To(Equal("1300"))
	g.Expect(HijriYears[len(HijriYears)-1]).To(Equal("1446"))

	g.Expect(ShortHijri[0]).To(Equal("00"))
	g.Expect(ShortHijri[len(ShortHijri)-1]).To(Equal("46"))

	g.Expect(AllYears).To(HaveLen(len(Years) + len(ShortYears) + len(HijriYears) + len(ShortHijri)))

	g.Expect(CommonYears).To(ContainElement("1990"))
	g.Expect(CommonYears).To(ContainElement("12345"))

	g.Expect(Specials[0]).To(Equal(""))
	g.Expect(Separators[0]).To(Equal(""))
}
