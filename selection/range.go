// Package selection reconciles a declared selection with a widget's live
// selection.
//
// Reconciliation is pull-then-compare: the live selection is read and a write
// is issued only when it differs, so typing never fights a declared caret.
package selection

import (
	"fmt"

	"github.com/iw2rmb/textfield/native"
)

// Range is a declared selection. Without an end it is a caret at Start.
type Range struct {
	Start  int
	End    int
	HasEnd bool
}

// At returns a caret at pos.
func At(pos int) Range { return Range{Start: pos} }

// Span returns the range [start, end].
func Span(start, end int) Range { return Range{Start: start, End: end, HasEnd: true} }

// EndOrStart returns End, or Start when no end was declared.
func (r Range) EndOrStart() int {
	if r.HasEnd {
		return r.End
	}
	return r.Start
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d]", r.Start, r.EndOrStart())
}

// FromLive converts a widget selection into a fully specified Range.
func FromLive(s native.Selection) Range {
	return Span(s.Start, s.End)
}

// IsStale reports whether the declared target differs from live.
// A nil target is never stale.
func IsStale(target *Range, live native.Selection) bool {
	if target == nil {
		return false
	}
	return target.Start != live.Start || target.EndOrStart() != live.End
}
