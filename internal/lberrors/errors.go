package lberrors

import (
	"errors"
	"fmt"

	"github.com/spikesdivzero/lifecycle-bind/internal/debug"
	"github.com/spikesdivzero/lifecycle-bind/internal/phase"
)

// Sentinels, so callers can use errors.Is without caring about the struct fields.
var (
	ErrConfig           = errors.New("invalid binding configuration")
	ErrOutOfLifecycle   = errors.New("cannot bind when already at the terminal phase")
	ErrInvalidPhase     = errors.New("invalid phase")
	ErrUnsupportedPhase = errors.New("unsupported phase")
)

// ConfigError reports a required argument that was not given when a binding was set up.
type ConfigError struct {
	Func string
	Arg  string

	// Where the misconfigured call was made from; not part of Error().
	Stack string
}

// NewConfigError records the stack of the caller's caller, skipping skip additional frames.
func NewConfigError(fn, arg string, skip int) ConfigError {
	return ConfigError{
		Func:  fn,
		Arg:   arg,
		Stack: debug.CallerStack(skip + 1),
	}
}

func (ce ConfigError) Error() string {
	return fmt.Sprintf("%v: %v must be given", ce.Func, ce.Arg)
}

func (ce ConfigError) Is(target error) bool { return target == ErrConfig }

type OutOfLifecycleError struct {
	Family phase.Family
	Phase  phase.Phase
}

func (e OutOfLifecycleError) Error() string {
	return fmt.Sprintf("cannot bind to %v lifecycle starting at %v: already at the terminal phase", e.Family, e.Phase)
}

func (e OutOfLifecycleError) Is(target error) bool { return target == ErrOutOfLifecycle }

type InvalidPhaseError struct {
	Family phase.Family
}

func (e InvalidPhaseError) Error() string {
	return fmt.Sprintf("cannot bind to %v lifecycle: start phase is absent", e.Family)
}

func (e InvalidPhaseError) Is(target error) bool { return target == ErrInvalidPhase }

// UnsupportedPhaseError is returned for a phase the selected family does not map, either because it belongs
// to the other family or because it is newer than the tables.
type UnsupportedPhaseError struct {
	Family phase.Family // zero when no family was involved
	Phase  phase.Phase
}

func (e UnsupportedPhaseError) Error() string {
	if e.Family == 0 {
		return fmt.Sprintf("binding to phase %v is not supported", e.Phase)
	}
	return fmt.Sprintf("binding to phase %v is not supported by the %v lifecycle", e.Phase, e.Family)
}

func (e UnsupportedPhaseError) Is(target error) bool { return target == ErrUnsupportedPhase }
