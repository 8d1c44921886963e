package wordlist

import (
	"testing"

	. "github.com/onsi/gomega"
)

func TestParseDigitRange(t *testing.T) {
	g := NewWithT(t)

	tests := []struct {
		spec    string
		want    DigitRange
		wantErr bool
	}{
		{spec: "4", want: DigitRange{4, 4}},
		{spec: "0", want: DigitRange{0, 0}},
		{spec: "0-4", want: DigitRange{0, 4}},
		{spec: "2-4", want: DigitRange{2, 4}},
		{spec: "", wantErr: true},
		{spec: "x", wantErr: true},
		{spec: "4-2", wantErr: true},
		{spec: "-1", wantErr: true},
		{spec: "1-", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseDigitRange(tt.spec)
		if tt.wantErr {
			g.Expect(err).To(HaveOccurred(), "spec %q", tt.spec)
			continue
		}
		g.Expect(err).NotTo(HaveOccurred(), "spec %q", tt.spec)
		g.Expect(got).To(Equal(tt.want), "spec %q", tt.spec)
	}
}

func TestDigitRangeSuffixes(t *testing.T) {
	g := NewWithT(t)

	var got []string
	DigitRange{0, 1}.Suffixes(func(s string) { got = append(got, s) })
	g.Expect(got).To(Equal([]string{"", "0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}))

	got = nil
	DigitRange{2, 2}.Suffixes(func(s string) { got = append(got, s) })
	g.Expect(got).To(HaveLen(100))
	g.Expect(got[0]).To(Equal("00"))
	g.Expect(got[99]).To(Equal("99"))
}

func TestDigitRangeCountMatchesSuffixes(t *testing.T) {
	g := NewWithT(t)

	ranges := []DigitRange{{0, 0}, {0, 2}, {1, 3}, {2, 2}, {0, 4}}
	for _, d := range ranges {
		n := 0
		d.Suffixes(func(string) { n++ })
		g.Expect(d.Count()).To(Equal(n), "range %+v", d)
	}
}

func TestEasternArabic(t *testing.T) {
	g := NewWithT(t)

	g.Expect(EasternArabic("2019")).To(Equal("٢٠١٩"))
	g.Expect(EasternArabic("نور123")).To(Equal("نور١٢٣"))
	g.Expect(EasternArabic("نور")).To(Equal("نور"))
	g.Expect(EasternArabic("")).To(Equal(""))
}
