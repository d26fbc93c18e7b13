package ucd

import "testing"

func TestLoad(t *testing.T) {
	src, err := Load()
	if err != nil {
		t.Fatalf("load source: %v", err)
	}
	if src.Version() == "" {
		t.Fatalf("expected a unicode version")
	}
}

func TestCanonicalDecomposition(t *testing.T) {
	src, err := Load()
	if err != nil {
		t.Fatalf("load source: %v", err)
	}
	tests := []struct {
		name string
		r    rune
		want []rune
	}{
		{"plain ascii has no decomposition", 'A', nil},
		{"e acute", 0x00E9, []rune{'e', 0x0301}},
		{"combining mark has no decomposition", 0x0301, nil},
		{"ligature is compatibility only", 0xFB01, nil}, // ﬁ
		{"fullwidth is compatibility only", 0xFF21, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := src.CanonicalDecomposition(tt.r)
			if len(got) != len(tt.want) {
				t.Fatalf("decomposition of %U: got %v want %v", tt.r, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("decomposition of %U: got %v want %v", tt.r, got, tt.want)
				}
			}
		})
	}
}

func TestCategoryAndScript(t *testing.T) {
	src, err := Load()
	if err != nil {
		t.Fatalf("load source: %v", err)
	}
	if got := src.Category('A'); got != "Lu" {
		t.Fatalf("category of A: got %q", got)
	}
	if got := src.Category(0x0301); got != "Mn" {
		t.Fatalf("category of U+0301: got %q", got)
	}
	if got := src.Script(0x00E9); got != "Latin" {
		t.Fatalf("script of U+00E9: got %q", got)
	}
	if got := src.Script(0x0301); got != "Inherited" {
		t.Fatalf("script of U+0301: got %q", got)
	}
}

func TestIsHelpers(t *testing.T) {
	if !IsASCIILetter('z') || !IsASCIILetter('A') {
		t.Fatalf("expected ascii letters to qualify")
	}
	if IsASCIILetter('0') || IsASCIILetter(0x00E9) {
		t.Fatalf("expected non-letters to be rejected")
	}
	if !IsCombiningMark("Mn") || !IsCombiningMark("Mc") || !IsCombiningMark("Me") {
		t.Fatalf("expected M* categories to be combining marks")
	}
	if IsCombiningMark("Lu") || IsCombiningMark("M") || IsCombiningMark("") {
		t.Fatalf("expected non-mark categories to be rejected")
	}
}
