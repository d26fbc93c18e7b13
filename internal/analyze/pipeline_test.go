package analyze

import (
	"context"
	"testing"

	"github.com/ldwg/diacritica/internal/scratch"
	"github.com/ldwg/diacritica/internal/ucd"
)

func TestRunEndToEnd(t *testing.T) {
	src, err := ucd.Load()
	if err != nil {
		t.Fatalf("load source: %v", err)
	}
	st, err := scratch.Open()
	if err != nil {
		t.Fatalf("open scratch store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	ctx := context.Background()
	candidates := []rune{0x0041, 0x00E9, 0x1EC7, 0x0301}
	result, err := Run(ctx, src, candidates, st, "test repertoire")
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if len(result.Buckets) != 2 {
		t.Fatalf("expected buckets {1, 2}, got %+v", result.Buckets)
	}
	one, _ := result.Bucket(1)
	if len(one.Records) != 1 || one.Records[0].CodePoint != 0x00E9 {
		t.Fatalf("unexpected bucket 1: %+v", one)
	}
	two, _ := result.Bucket(2)
	if len(two.Records) != 1 || two.Records[0].CodePoint != 0x1EC7 {
		t.Fatalf("unexpected bucket 2: %+v", two)
	}
	if result.Summary.NonQualifying != 2 {
		t.Fatalf("expected 2 non-qualifying, got %d", result.Summary.NonQualifying)
	}
	if result.UnicodeVersion == "" {
		t.Fatalf("expected unicode version in result")
	}

	// The scratch store saw every classified record.
	qualifying, nonQualifying, err := st.CountByQualification(ctx)
	if err != nil {
		t.Fatalf("count staged: %v", err)
	}
	if qualifying != 2 || nonQualifying != 2 {
		t.Fatalf("unexpected staged counts: qualifying=%d nonQualifying=%d", qualifying, nonQualifying)
	}
}

func TestRunSkipsInvalidCodePoints(t *testing.T) {
	src, err := ucd.Load()
	if err != nil {
		t.Fatalf("load source: %v", err)
	}
	candidates := []rune{0x00E9, -1, 0xD800}
	result, err := Run(context.Background(), src, candidates, nil, "test")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Summary.Invalid != 2 {
		t.Fatalf("expected 2 invalid candidates, got %d", result.Summary.Invalid)
	}
	if result.Summary.Examined != 1 || result.Summary.Qualifying != 1 {
		t.Fatalf("unexpected summary: %+v", result.Summary)
	}
}

func TestRunWithoutStore(t *testing.T) {
	src, err := ucd.Load()
	if err != nil {
		t.Fatalf("load source: %v", err)
	}
	result, err := Run(context.Background(), src, []rune{0x00E9}, nil, "test")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Summary.Qualifying != 1 {
		t.Fatalf("unexpected summary: %+v", result.Summary)
	}
}

func TestRunDuplicatesAreIndependent(t *testing.T) {
	src, err := ucd.Load()
	if err != nil {
		t.Fatalf("load source: %v", err)
	}
	result, err := Run(context.Background(), src, []rune{0x00E9, 0x00E9}, nil, "test")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	one, _ := result.Bucket(1)
	if len(one.Records) != 2 {
		t.Fatalf("expected duplicates to be classified independently, got %+v", one)
	}
}
