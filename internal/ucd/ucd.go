// Package ucd binds the Unicode character database lookups used by the
// classifier and the report emitter.
package ucd

import "errors"

// ErrUnavailable reports that no usable character database could be opened.
var ErrUnavailable = errors.New("unicode character database unavailable")

// Source provides the character database lookups. A Source is immutable
// after construction; implementations must be safe for read-only sharing.
type Source interface {
	// CanonicalDecomposition returns the canonical (never compatibility)
	// decomposition mapping for the code point, or nil when it has none.
	// The mapping may itself contain decomposable code points.
	CanonicalDecomposition(r rune) []rune
	// Category returns the two-letter General Category tag, e.g. "Lu" or "Mn".
	Category(r rune) string
	// Name returns the Unicode character name, or "" when unassigned.
	Name(r rune) string
	// Script returns the script property name, e.g. "Latin".
	Script(r rune) string
	// Version identifies the Unicode version of the underlying data.
	Version() string
}

// IsCombiningMark reports whether the category tag denotes a combining mark
// (Mn, Mc, or Me).
func IsCombiningMark(category string) bool {
	return len(category) == 2 && category[0] == 'M'
}

// IsASCIILetter reports whether the code point is a basic Latin letter.
func IsASCIILetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}
