// Package style records font styling applied to a document as additive spans.
//
// Spans are annotations for the presentation layer only. They are never
// written to disk and never merged: a later span over the same text wins when
// rendering, but every span stays in the record.
package style

import (
	"strings"

	"github.com/bethropolis/textwriter/internal/logger"
)

// Range is a half-open [Start, End) interval of rune offsets, or the whole
// document when Whole is set (Start and End are then ignored).
type Range struct {
	Start int
	End   int
	Whole bool
}

// WholeDocument covers the entire document, whatever its current length.
var WholeDocument = Range{Whole: true}

// IsWholeDocument reports whether r covers the entire document.
func (r Range) IsWholeDocument() bool {
	return r.Whole
}

// Contains reports whether offset falls inside r.
func (r Range) Contains(offset int) bool {
	if r.IsWholeDocument() {
		return offset >= 0
	}
	return offset >= r.Start && offset < r.End
}

// Span is one application of a descriptor over a range.
type Span struct {
	Descriptor string
	Range      Range
	Seq        int // application order, starting at 1
}

// Applier is the per-document span record. The zero value is ready to use.
type Applier struct {
	spans   []Span
	nextSeq int
}

// NewApplier returns an empty Applier.
func NewApplier() *Applier {
	return &Applier{}
}

// Apply records descriptor over rng. An empty or blank descriptor is ignored
// and reported with ok == false; any other descriptor is stored as given.
// Ranges given backwards are normalised, negative offsets are clamped to 0,
// and a range left empty after that is ignored.
func (a *Applier) Apply(descriptor string, rng Range) (Span, bool) {
	if strings.TrimSpace(descriptor) == "" {
		return Span{}, false
	}
	if rng.IsWholeDocument() {
		rng = WholeDocument
	} else {
		if rng.End < rng.Start {
			rng.Start, rng.End = rng.End, rng.Start
		}
		if rng.Start < 0 {
			rng.Start = 0
		}
		if rng.End <= rng.Start {
			return Span{}, false
		}
	}

	a.nextSeq++
	span := Span{Descriptor: descriptor, Range: rng, Seq: a.nextSeq}
	a.spans = append(a.spans, span)
	logger.DebugTagf("style", "Applier: span #%d '%s' over %+v", span.Seq, descriptor, rng)
	return span, true
}

// Spans returns a copy of every span in application order.
func (a *Applier) Spans() []Span {
	out := make([]Span, len(a.spans))
	copy(out, a.spans)
	return out
}

// Len returns the number of recorded spans.
func (a *Applier) Len() int {
	return len(a.spans)
}

// EffectiveAt returns the most recently applied span covering offset in a
// document of docLen runes. An offset equal to docLen (the end of text, where
// the cursor may sit) is treated as covered by whole-document spans.
func (a *Applier) EffectiveAt(offset, docLen int) (Span, bool) {
	if offset < 0 || offset > docLen {
		return Span{}, false
	}
	for i := len(a.spans) - 1; i >= 0; i-- {
		if a.spans[i].Range.Contains(offset) {
			return a.spans[i], true
		}
	}
	return Span{}, false
}

// Current returns the last whole-document span.
func (a *Applier) Current() (Span, bool) {
	for i := len(a.spans) - 1; i >= 0; i-- {
		if a.spans[i].Range.IsWholeDocument() {
			return a.spans[i], true
		}
	}
	return Span{}, false
}

// ContentReplaced drops ranged spans, whose offsets referred to the old text.
// Whole-document spans still apply to the new text and are kept.
func (a *Applier) ContentReplaced() {
	kept := a.spans[:0]
	for _, s := range a.spans {
		if s.Range.IsWholeDocument() {
			kept = append(kept, s)
		}
	}
	dropped := len(a.spans) - len(kept)
	a.spans = kept
	if dropped > 0 {
		logger.DebugTagf("style", "Applier: dropped %d ranged span(s) after content replacement", dropped)
	}
}
