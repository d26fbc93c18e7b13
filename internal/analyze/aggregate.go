// Package analyze groups classified code points into diacritic-count buckets.
package analyze

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ldwg/diacritica/internal/model"
)

// ErrInvariantViolation reports a malformed record reaching the aggregator,
// which indicates a classifier bug and must never be silently absorbed.
var ErrInvariantViolation = errors.New("aggregation invariant violated")

// Aggregate partitions records by qualification and groups qualifying ones
// into buckets keyed by diacritic count. Buckets preserve input order;
// the returned bucket list is sorted ascending by count.
func Aggregate(records []model.DecompositionRecord) (model.AnalysisResult, error) {
	buckets := map[int]*model.CategoryBucket{}
	var counts []int
	summary := model.RunSummary{}

	for _, rec := range records {
		summary.Examined++
		if !rec.Qualifying {
			summary.NonQualifying++
			continue
		}
		if rec.DiacriticCount <= 0 {
			return model.AnalysisResult{}, fmt.Errorf(
				"%w: qualifying record %U has diacritic count %d",
				ErrInvariantViolation, rec.CodePoint, rec.DiacriticCount)
		}
		summary.Qualifying++
		if summary.MinDiacriticCount == 0 || rec.DiacriticCount < summary.MinDiacriticCount {
			summary.MinDiacriticCount = rec.DiacriticCount
		}
		if rec.DiacriticCount > summary.MaxDiacriticCount {
			summary.MaxDiacriticCount = rec.DiacriticCount
		}
		b, ok := buckets[rec.DiacriticCount]
		if !ok {
			b = &model.CategoryBucket{DiacriticCount: rec.DiacriticCount}
			buckets[rec.DiacriticCount] = b
			counts = append(counts, rec.DiacriticCount)
		}
		b.Records = append(b.Records, rec)
	}

	sort.Ints(counts)
	result := model.AnalysisResult{Summary: summary}
	for _, count := range counts {
		result.Buckets = append(result.Buckets, *buckets[count])
	}
	return result, nil
}
