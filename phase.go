package bind

import (
	"github.com/spikesdivzero/lifecycle-bind/internal/pairing"
	"github.com/spikesdivzero/lifecycle-bind/internal/phase"
)

type (
	Phase  = phase.Phase
	Family = phase.Family
)

const (
	PhaseNone        = phase.None
	PhaseAttach      = phase.Attach
	PhaseCreate      = phase.Create
	PhaseCreateView  = phase.CreateView
	PhaseStart       = phase.Start
	PhaseResume      = phase.Resume
	PhasePause       = phase.Pause
	PhaseStop        = phase.Stop
	PhaseDestroyView = phase.DestroyView
	PhaseDestroy     = phase.Destroy
	PhaseDetach      = phase.Detach
)

const (
	FamilySimple   = phase.FamilySimple
	FamilyExtended = phase.FamilyExtended
)

// ParsePhase accepts phase names as written in logs and configs: CREATE_VIEW, create-view, CreateView.
func ParsePhase(s string) (Phase, error) { return phase.Parse(s) }

// Resolve reports the phase that ends a binding made while family is at start.
//
// Panics if family is not FamilySimple or FamilyExtended.
func Resolve(family Family, start Phase) (Phase, error) { return pairing.Resolve(family, start) }
