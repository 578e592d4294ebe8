package pairing

import (
	"fmt"

	"github.com/spikesdivzero/lifecycle-bind/internal/lberrors"
	"github.com/spikesdivzero/lifecycle-bind/internal/phase"
)

//go:generate go tool stringer -type outcome -trimprefix outcome
type outcome int

const (
	outcomeMissing  outcome = iota // zero value; a table that leaves a phase out is a bug
	outcomePair                    // binding is allowed, ends at target
	outcomeTerminal                // the family has already ended
	outcomeAbsent                  // phase.None
	outcomeForeign                 // not part of this family
)

type entry struct {
	outcome outcome
	target  phase.Phase
}

type table = [phase.Count]entry

func pair(target phase.Phase) entry { return entry{outcomePair, target} }

var (
	absent   = entry{outcome: outcomeAbsent}
	terminal = entry{outcome: outcomeTerminal}
	foreign  = entry{outcome: outcomeForeign}
)

// Every phase is listed explicitly, foreign ones included, so TestTables can catch an entry left at
// outcomeMissing.
var simpleTable = [...]entry{
	phase.None:        absent,
	phase.Attach:      foreign,
	phase.Create:      pair(phase.Destroy),
	phase.CreateView:  foreign,
	phase.Start:       pair(phase.Stop),
	phase.Resume:      pair(phase.Pause),
	phase.Pause:       pair(phase.Stop),
	phase.Stop:        pair(phase.Destroy),
	phase.DestroyView: foreign,
	phase.Destroy:     terminal,
	phase.Detach:      foreign,
}

var extendedTable = [...]entry{
	phase.None:        absent,
	phase.Attach:      pair(phase.Detach),
	phase.Create:      pair(phase.Destroy),
	phase.CreateView:  pair(phase.DestroyView),
	phase.Start:       pair(phase.Stop),
	phase.Resume:      pair(phase.Pause),
	phase.Pause:       pair(phase.Stop),
	phase.Stop:        pair(phase.DestroyView),
	phase.DestroyView: pair(phase.Destroy),
	phase.Destroy:     pair(phase.Detach),
	phase.Detach:      terminal,
}

// A phase added after the end of a table without an entry for it fails to compile here.
var (
	_ = [1]struct{}{}[len(simpleTable)-phase.Count]
	_ = [1]struct{}{}[len(extendedTable)-phase.Count]
)

func tableFor(f phase.Family) *table {
	switch f {
	case phase.FamilySimple:
		return &simpleTable
	case phase.FamilyExtended:
		return &extendedTable
	}
	panic(fmt.Sprintf("pairing: unknown lifecycle family %v", f))
}

// Resolve returns the phase that ends anything bound while the lifecycle was at start.
//
// Creation phases pair with their destructive counterpart (CREATE→DESTROY), and destructive phases end at
// the next destructive step (PAUSE→STOP).
//
// Panics if f is not a known Family; callers validate that up front.
func Resolve(f phase.Family, start phase.Phase) (phase.Phase, error) {
	t := tableFor(f)

	if start < 0 || int(start) >= len(t) {
		return phase.None, lberrors.UnsupportedPhaseError{Family: f, Phase: start}
	}

	e := t[start]
	switch e.outcome {
	case outcomePair:
		return e.target, nil
	case outcomeTerminal:
		return phase.None, lberrors.OutOfLifecycleError{Family: f, Phase: start}
	case outcomeAbsent:
		return phase.None, lberrors.InvalidPhaseError{Family: f}
	case outcomeForeign, outcomeMissing:
		return phase.None, lberrors.UnsupportedPhaseError{Family: f, Phase: start}
	}
	panic(fmt.Sprintf("internal: pairing table entry for %v has outcome %v", start, e.outcome))
}
