package selection

import (
	"io"
	"log"

	"github.com/iw2rmb/textfield/native"
)

// Outcome describes what Apply did.
type Outcome uint8

const (
	// Skipped: no target was declared.
	Skipped Outcome = iota
	// InSync: the live selection already matched.
	InSync
	// Applied: one range write was issued and accepted.
	Applied
	// Rejected: the widget refused the read or the write.
	Rejected
)

func (o Outcome) String() string {
	switch o {
	case Skipped:
		return "skipped"
	case InSync:
		return "in-sync"
	case Applied:
		return "applied"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Synchronizer applies declared selections to widgets. Failures never
// propagate; they are logged and reported as Rejected.
type Synchronizer struct {
	Logger *log.Logger
}

func NewSynchronizer(logger *log.Logger) *Synchronizer {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Synchronizer{Logger: logger}
}

// Apply writes target to h when h's live selection differs from it.
func (s *Synchronizer) Apply(h native.Handle, target *Range) Outcome {
	if h == nil || target == nil {
		return Skipped
	}

	live, err := h.Selection()
	if err != nil {
		s.logf("selection read rejected: %v", err)
		return Rejected
	}
	if !IsStale(target, live) {
		return InSync
	}

	if err := h.SetSelectionRange(target.Start, target.EndOrStart()); err != nil {
		s.logf("selection write %s rejected: %v", target, err)
		return Rejected
	}
	return Applied
}

func (s *Synchronizer) logf(format string, args ...any) {
	if s == nil || s.Logger == nil {
		return
	}
	s.Logger.Printf(format, args...)
}
