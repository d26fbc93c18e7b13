package analyze

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ldwg/diacritica/internal/classify"
	"github.com/ldwg/diacritica/internal/model"
	"github.com/ldwg/diacritica/internal/scratch"
	"github.com/ldwg/diacritica/internal/ucd"
)

// Run classifies every candidate code point, checkpoints the classified rows
// into the scratch store when one is provided, and aggregates the stream
// into the final result. Invalid code points are skipped and counted in the
// summary; any other classification error aborts the run.
func Run(ctx context.Context, src ucd.Source, candidates []rune, st *scratch.Store, sourceDesc string) (model.AnalysisResult, error) {
	classifier := classify.New(src)
	records := make([]model.DecompositionRecord, 0, len(candidates))
	invalid := 0

	for _, cp := range candidates {
		rec, err := classifier.Classify(cp)
		if err != nil {
			if errors.Is(err, classify.ErrInvalidCodePoint) {
				invalid++
				continue
			}
			return model.AnalysisResult{}, fmt.Errorf("failed to classify %#x: %w", int32(cp), err)
		}
		if st != nil {
			if err := st.InsertRecord(ctx, rec); err != nil {
				return model.AnalysisResult{}, fmt.Errorf("failed to stage record: %w", err)
			}
		}
		records = append(records, rec)
	}

	result, err := Aggregate(records)
	if err != nil {
		return model.AnalysisResult{}, err
	}
	result.Summary.Invalid = invalid
	result.UnicodeVersion = src.Version()
	result.Source = sourceDesc
	result.GeneratedAt = time.Now()
	return result, nil
}
