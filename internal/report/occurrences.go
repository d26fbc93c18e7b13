package report

import "github.com/ldwg/diacritica/internal/model"

// otherOccurrences lists the base+mark combinations that appear in the Latin
// RZ LGR as code point sequences rather than precomposed characters. They
// never reach the classifier (the repertoire carries no precomposed form),
// so the report appends them as a fixed table.
var otherOccurrences = [][]rune{
	{0x0061, 0x0331}, // a + combining macron below
	{0x0065, 0x0331}, // e + combining macron below
	{0x0067, 0x0303}, // g + combining tilde
	{0x0069, 0x0331}, // i + combining macron below
	{0x006D, 0x0327}, // m + combining cedilla
	{0x006E, 0x0304}, // n + combining macron
	{0x006E, 0x0308}, // n + combining diaeresis
	{0x006F, 0x0327}, // o + combining cedilla
	{0x006F, 0x0331}, // o + combining macron below
	{0x0072, 0x0303}, // r + combining tilde
	{0x1EB9, 0x0300}, // e with dot below + combining grave accent
	{0x1EB9, 0x0301}, // e with dot below + combining acute accent
	{0x1ECD, 0x0300}, // o with dot below + combining grave accent
	{0x1ECD, 0x0301}, // o with dot below + combining acute accent
}

// OtherOccurrences returns the fixed LGR sequence table.
func OtherOccurrences() []model.MarkSequence {
	out := make([]model.MarkSequence, 0, len(otherOccurrences))
	for _, cps := range otherOccurrences {
		seq := model.MarkSequence{
			CodePoints: append([]rune(nil), cps...),
			Base:       cps[0],
			Marks:      append([]rune(nil), cps[1:]...),
		}
		out = append(out, seq)
	}
	return out
}
