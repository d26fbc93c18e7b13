// Package model defines shared data structures.
package model

import "time"

// Config defines analysis settings resolved from flags and the config file.
type Config struct {
	SourceURL   string
	InputPath   string
	OutputPath  string
	Format      string
	Refresh     bool
	Color       bool
	Occurrences bool
	FontPath    string
	FontBold    string
}

// CharacterMeta carries Unicode metadata for a single code point, resolved
// from the character database for report output.
type CharacterMeta struct {
	Name     string
	Category string
	Script   string
}

// DecompositionRecord is the classifier's verdict for one code point.
type DecompositionRecord struct {
	CodePoint              rune
	CanonicalDecomposition []rune
	Base                   rune
	CombiningMarks         []rune
	Qualifying             bool
	DiacriticCount         int
	Meta                   CharacterMeta
}

// CategoryBucket groups qualifying records by diacritic count.
type CategoryBucket struct {
	DiacriticCount int
	Records        []DecompositionRecord
}

// RunSummary holds exact counters for one analysis pass.
type RunSummary struct {
	Examined          int
	Qualifying        int
	NonQualifying     int
	Invalid           int
	MinDiacriticCount int
	MaxDiacriticCount int
}

// AnalysisResult is the aggregate root handed to the report emitter.
// It is built once by the aggregator and not mutated afterwards.
type AnalysisResult struct {
	Buckets        []CategoryBucket
	Summary        RunSummary
	UnicodeVersion string
	Source         string
	GeneratedAt    time.Time
}

// Bucket returns the bucket for the given diacritic count, if present.
func (r AnalysisResult) Bucket(count int) (CategoryBucket, bool) {
	for _, b := range r.Buckets {
		if b.DiacriticCount == count {
			return b, true
		}
	}
	return CategoryBucket{}, false
}

// MarkSequence is a base+marks combination that occurs in the LGR as a
// sequence of code points rather than a precomposed character.
type MarkSequence struct {
	CodePoints []rune
	Base       rune
	Marks      []rune
}
