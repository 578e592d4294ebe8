package phase

import "slices"

// Family selects which set of phases a lifecycle stream is made of.
//
//go:generate go tool stringer -type Family -trimprefix Family
type Family int

const (
	// The six-phase lifecycle: CREATE, START, RESUME, PAUSE, STOP, DESTROY.
	FamilySimple Family = iota + 1

	// The ten-phase lifecycle, which adds ATTACH/DETACH and the CREATE_VIEW/DESTROY_VIEW sub-phases.
	FamilyExtended
)

var (
	simplePhases   = []Phase{Create, Start, Resume, Pause, Stop, Destroy}
	extendedPhases = []Phase{Attach, Create, CreateView, Start, Resume, Pause, Stop, DestroyView, Destroy, Detach}
)

func (f Family) Valid() bool {
	return f == FamilySimple || f == FamilyExtended
}

// Phases returns the family's phases in their canonical forward order.
func (f Family) Phases() []Phase {
	switch f {
	case FamilySimple:
		return slices.Clone(simplePhases)
	case FamilyExtended:
		return slices.Clone(extendedPhases)
	}
	return nil
}

func (f Family) Contains(p Phase) bool {
	switch f {
	case FamilySimple:
		return slices.Contains(simplePhases, p)
	case FamilyExtended:
		return slices.Contains(extendedPhases, p)
	}
	return false
}

// Terminal is the phase that ends the family; nothing can be bound starting from it.
func (f Family) Terminal() Phase {
	switch f {
	case FamilySimple:
		return Destroy
	case FamilyExtended:
		return Detach
	}
	return None
}
