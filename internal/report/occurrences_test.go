package report

import (
	"testing"

	"github.com/ldwg/diacritica/internal/ucd"
)

func TestOtherOccurrences(t *testing.T) {
	src, err := ucd.Load()
	if err != nil {
		t.Fatalf("load source: %v", err)
	}
	seqs := OtherOccurrences()
	if len(seqs) != 14 {
		t.Fatalf("expected 14 sequences, got %d", len(seqs))
	}
	for _, seq := range seqs {
		if len(seq.CodePoints) < 2 {
			t.Fatalf("sequence too short: %v", seq.CodePoints)
		}
		if seq.Base != seq.CodePoints[0] {
			t.Fatalf("base mismatch in %v", seq.CodePoints)
		}
		for _, m := range seq.Marks {
			if !ucd.IsCombiningMark(src.Category(m)) {
				t.Fatalf("non-mark %U in sequence %v", m, seq.CodePoints)
			}
		}
	}
}

func TestOtherOccurrencesCopies(t *testing.T) {
	first := OtherOccurrences()
	first[0].CodePoints[0] = 'x'
	second := OtherOccurrences()
	if second[0].CodePoints[0] == 'x' {
		t.Fatalf("sequences share backing storage with the fixed table")
	}
}
