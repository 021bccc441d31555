package widget

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/iw2rmb/textfield/native"
)

// selectionSupported mirrors browser inputs: email and number kinds refuse
// selection reads and writes.
func selectionSupported(k native.InputKind) bool {
	return k != native.KindEmail && k != native.KindNumber
}

func unsupported(k native.InputKind, op string) error {
	return fmt.Errorf("%s on %s input: %w", op, k, native.ErrUnsupported)
}

// acceptRune reports whether r may be typed into a widget of kind k.
func acceptRune(k native.InputKind, r rune) bool {
	switch k {
	case native.KindNumber:
		return unicode.IsDigit(r) || strings.ContainsRune(".-+eE", r)
	case native.KindTel:
		return unicode.IsDigit(r) || strings.ContainsRune("+-() #*", r)
	default:
		return r == '\n' || r == '\t' || unicode.IsPrint(r)
	}
}

// filterRunes drops runes k does not accept and applies auto-capitalization.
func filterRunes(k native.InputKind, capitalize string, rs []rune) []rune {
	out := rs[:0:0]
	for _, r := range rs {
		if !acceptRune(k, r) {
			continue
		}
		if capitalize == "characters" {
			r = unicode.ToUpper(r)
		}
		out = append(out, r)
	}
	return out
}

// emitter delivers native events to the installed sink.
type emitter struct {
	sink func(*native.Event)
}

func (e *emitter) SetEventSink(fn func(*native.Event)) { e.sink = fn }

func (e *emitter) emit(ev *native.Event) {
	if e.sink != nil {
		e.sink(ev)
	}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func ordered(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
