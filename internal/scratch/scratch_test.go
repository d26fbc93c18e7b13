package scratch

import (
	"context"
	"testing"

	"github.com/ldwg/diacritica/internal/model"
)

func TestStoreRoundTrip(t *testing.T) {
	st, err := Open()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	ctx := context.Background()
	records := []model.DecompositionRecord{
		{
			CodePoint:              0x00E9,
			CanonicalDecomposition: []rune{'e', 0x0301},
			Qualifying:             true,
			DiacriticCount:         1,
			Meta:                   model.CharacterMeta{Name: "LATIN SMALL LETTER E WITH ACUTE", Category: "Ll", Script: "Latin"},
		},
		{
			CodePoint:              0x1EC7,
			CanonicalDecomposition: []rune{'e', 0x0323, 0x0302},
			Qualifying:             true,
			DiacriticCount:         2,
			Meta:                   model.CharacterMeta{Name: "LATIN SMALL LETTER E WITH CIRCUMFLEX AND DOT BELOW", Category: "Ll", Script: "Latin"},
		},
		{
			CodePoint: 'A',
			Meta:      model.CharacterMeta{Name: "LATIN CAPITAL LETTER A", Category: "Lu", Script: "Latin"},
		},
	}
	for _, rec := range records {
		if err := st.InsertRecord(ctx, rec); err != nil {
			t.Fatalf("insert record %U: %v", rec.CodePoint, err)
		}
	}

	qualifying, nonQualifying, err := st.CountByQualification(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if qualifying != 2 || nonQualifying != 1 {
		t.Fatalf("unexpected counts: qualifying=%d nonQualifying=%d", qualifying, nonQualifying)
	}

	cps, err := st.ListQualifyingCodePoints(ctx, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(cps) != 1 || cps[0] != 0x00E9 {
		t.Fatalf("unexpected code points for count 1: %v", cps)
	}
}

func TestStoreEmpty(t *testing.T) {
	st, err := Open()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	qualifying, nonQualifying, err := st.CountByQualification(context.Background())
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if qualifying != 0 || nonQualifying != 0 {
		t.Fatalf("expected empty store, got qualifying=%d nonQualifying=%d", qualifying, nonQualifying)
	}
}
