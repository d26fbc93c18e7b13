package ucd

import (
	"fmt"
	"sort"
	"unicode"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/unicode/runenames"
)

// XText is a Source backed by the x/text normalization tables and the
// standard library Unicode range tables.
type XText struct {
	categories []tableEntry
	scripts    []tableEntry
}

type tableEntry struct {
	name  string
	table *unicode.RangeTable
}

// Load builds the production Source and probes it against a known
// decomposition. A failed probe means the linked tables are unusable and
// yields ErrUnavailable.
func Load() (*XText, error) {
	src := &XText{
		categories: sortedEntries(unicode.Categories, 2),
		scripts:    sortedEntries(unicode.Scripts, 0),
	}
	// U+00E9 must decompose to e + U+0301 in any correct table set.
	probe := src.CanonicalDecomposition(0x00E9)
	if len(probe) != 2 || probe[0] != 'e' || probe[1] != 0x0301 {
		return nil, fmt.Errorf("%w: U+00E9 probe returned %v", ErrUnavailable, probe)
	}
	if src.Category(0x0301) != "Mn" {
		return nil, fmt.Errorf("%w: U+0301 probe returned category %q", ErrUnavailable, src.Category(0x0301))
	}
	return src, nil
}

// CanonicalDecomposition returns the NFD decomposition mapping for r, or nil.
// The NFD tables carry canonical mappings only, so compatibility-only
// decompositions (e.g. ligatures, fullwidth forms) come back nil.
func (x *XText) CanonicalDecomposition(r rune) []rune {
	d := norm.NFD.PropertiesString(string(r)).Decomposition()
	if len(d) == 0 {
		return nil
	}
	return []rune(string(d))
}

// Category returns the two-letter General Category tag for r.
func (x *XText) Category(r rune) string {
	for _, e := range x.categories {
		if unicode.Is(e.table, r) {
			return e.name
		}
	}
	return "Cn"
}

// Name returns the Unicode character name for r.
func (x *XText) Name(r rune) string {
	return runenames.Name(r)
}

// Script returns the script property name for r.
func (x *XText) Script(r rune) string {
	for _, e := range x.scripts {
		if unicode.Is(e.table, r) {
			return e.name
		}
	}
	return "Unknown"
}

// Version reports the Unicode version of the range tables.
func (x *XText) Version() string {
	return unicode.Version
}

func sortedEntries(tables map[string]*unicode.RangeTable, nameLen int) []tableEntry {
	entries := make([]tableEntry, 0, len(tables))
	for name, table := range tables {
		if nameLen > 0 && len(name) != nameLen {
			continue
		}
		entries = append(entries, tableEntry{name: name, table: table})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].name < entries[j].name
	})
	return entries
}
