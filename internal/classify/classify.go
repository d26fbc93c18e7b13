// Package classify implements the decomposition classifier.
package classify

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/ldwg/diacritica/internal/model"
	"github.com/ldwg/diacritica/internal/ucd"
)

// ErrInvalidCodePoint reports input outside the Unicode scalar value range.
var ErrInvalidCodePoint = errors.New("invalid code point")

// Classifier decides whether a code point canonically decomposes into an
// ASCII base letter plus combining marks. It is pure: the same input always
// yields the same record.
type Classifier struct {
	src ucd.Source
}

// New returns a Classifier bound to the given character database.
func New(src ucd.Source) *Classifier {
	return &Classifier{src: src}
}

// Classify computes the decomposition record for a single code point.
func (c *Classifier) Classify(cp rune) (model.DecompositionRecord, error) {
	if !utf8.ValidRune(cp) {
		return model.DecompositionRecord{}, fmt.Errorf("%w: %#x", ErrInvalidCodePoint, int32(cp))
	}

	rec := model.DecompositionRecord{
		CodePoint: cp,
		Meta:      c.meta(cp),
	}

	expanded, err := c.expand(cp)
	if err != nil {
		return model.DecompositionRecord{}, err
	}
	if len(expanded) == 0 {
		return rec, nil
	}

	rec.CanonicalDecomposition = expanded
	rec.Base = expanded[0]
	rec.CombiningMarks = expanded[1:]
	rec.DiacriticCount = len(rec.CombiningMarks)
	rec.Qualifying = c.qualifies(rec.Base, rec.CombiningMarks)
	return rec, nil
}

func (c *Classifier) meta(cp rune) model.CharacterMeta {
	return model.CharacterMeta{
		Name:     c.src.Name(cp),
		Category: c.src.Category(cp),
		Script:   c.src.Script(cp),
	}
}

// maxExpandSteps bounds the number of mapping replacements in a single
// expansion. Real canonical decompositions are at most a few levels deep;
// only cyclic mapping data from a broken source ever approaches the bound.
const maxExpandSteps = 256

// expand computes the full recursive canonical decomposition of cp, or nil
// when cp has no canonical decomposition at all. A single-level lookup is
// not enough: some mappings are multi-stage (U+1EC7 maps through U+00EA).
// The worklist loop replaces decomposable elements until only terminal code
// points remain. A data source may hand back mappings that are already fully
// expanded and canonically ordered (marks sorted by combining class); the
// loop converges immediately on those and preserves their order.
func (c *Classifier) expand(cp rune) ([]rune, error) {
	first := c.src.CanonicalDecomposition(cp)
	if len(first) == 0 {
		return nil, nil
	}

	out := make([]rune, 0, len(first))
	stack := make([]rune, 0, len(first))
	for i := len(first) - 1; i >= 0; i-- {
		stack = append(stack, first[i])
	}
	steps := 0
	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		sub := c.src.CanonicalDecomposition(r)
		if len(sub) == 0 {
			out = append(out, r)
			continue
		}
		steps++
		if steps > maxExpandSteps {
			return nil, fmt.Errorf("%w: decomposition of %U does not terminate", ucd.ErrUnavailable, cp)
		}
		for i := len(sub) - 1; i >= 0; i-- {
			stack = append(stack, sub[i])
		}
	}
	return out, nil
}

func (c *Classifier) qualifies(base rune, marks []rune) bool {
	if !ucd.IsASCIILetter(base) {
		return false
	}
	if len(marks) == 0 {
		return false
	}
	for _, m := range marks {
		if !ucd.IsCombiningMark(c.src.Category(m)) {
			return false
		}
	}
	return true
}
