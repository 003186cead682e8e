package catalogcheck

import (
	"errors"
	"fmt"
)

// Findings collects inconsistencies discovered while checking a catalog. It is not safe
// for concurrent use.
type Findings struct {
	items []Finding
}

// Finding is a single inconsistency.
type Finding struct {
	Phase   Phase
	Entry   int // position in declaration order, -1 for blob-wide findings
	Message string
}

func (f Finding) String() string {
	if f.Entry < 0 {
		return fmt.Sprintf("[%s] %s", f.Phase, f.Message)
	}

	return fmt.Sprintf("[%s] entry %d: %s", f.Phase, f.Entry, f.Message)
}

// Phase marks the check stage a finding was produced at.
type Phase int

const (
	phaseInvalid Phase = iota
	PhaseScan          // blob segmentation
	PhaseOffsets       // offset table against segments
	PhaseAliases       // value uniqueness across entries
)

func (p Phase) String() string {
	switch p {
	case PhaseScan:
		return "scan"
	case PhaseOffsets:
		return "offsets"
	case PhaseAliases:
		return "aliases"
	default:
		return fmt.Sprintf("unknown-phase(%d)", p)
	}
}

// FindingsPhase binds Findings to a fixed phase.
type FindingsPhase struct {
	parent *Findings
	phase  Phase
}

// Phase returns a collector setting the given phase on everything reported through it.
func (f *Findings) Phase(p Phase) *FindingsPhase {
	return &FindingsPhase{parent: f, phase: p}
}

// Add records a finding.
func (f *Findings) Add(item Finding) {
	f.items = append(f.items, item)
}

// Report records a finding under the bound phase.
func (fp *FindingsPhase) Report(entry int, format string, a ...any) {
	fp.parent.Add(Finding{
		Phase:   fp.phase,
		Entry:   entry,
		Message: fmt.Sprintf(format, a...),
	})
}

// Items returns a snapshot of collected findings, nil if there are none.
func (f *Findings) Items() []Finding {
	if len(f.items) == 0 {
		return nil
	}
	out := make([]Finding, len(f.items))
	copy(out, f.items)
	return out
}

// Err joins all findings into one error, nil if there are none.
func (f *Findings) Err() error {
	var errs []error
	for _, item := range f.Items() {
		errs = append(errs, errors.New(item.String()))
	}

	return errors.Join(errs...)
}
