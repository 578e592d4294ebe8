// Package bindErrors holds the errors returned by lifecycle bindings, for use with errors.Is and errors.As.
package bindErrors

import "github.com/spikesdivzero/lifecycle-bind/internal/lberrors"

type (
	// ConfigError is returned when a binding is set up without a required argument. Its Stack field
	// records where that happened.
	ConfigError = lberrors.ConfigError

	// OutOfLifecycleError fails a bound stream whose lifecycle had already reached its terminal phase.
	// It is delivered through the stream's Error once the start phase is seen, not returned at setup;
	// with a phase source that doesn't replay its current phase, data may flow before it arrives.
	OutOfLifecycleError = lberrors.OutOfLifecycleError

	// InvalidPhaseError fails a bound stream whose start phase was PhaseNone.
	InvalidPhaseError = lberrors.InvalidPhaseError

	// UnsupportedPhaseError is returned for a phase the lifecycle family has no pairing for.
	UnsupportedPhaseError = lberrors.UnsupportedPhaseError
)

var (
	ErrConfig           = lberrors.ErrConfig
	ErrOutOfLifecycle   = lberrors.ErrOutOfLifecycle
	ErrInvalidPhase     = lberrors.ErrInvalidPhase
	ErrUnsupportedPhase = lberrors.ErrUnsupportedPhase
)
