// Package bind ends data streams when a lifecycle reaches the point at which they should stop, the way a
// resource acquired in one phase is released in its counterpart.
//
// A binding is built from a stream of lifecycle phases. It is a [Transformer]: given a data stream, it
// returns a stream that mirrors it until the terminating phase occurs, then completes.
//
//	until, err := bind.SimpleLifecycle[string](phases)
//	if err != nil {
//		return err
//	}
//	sub := bind.Listen(ctx, until(messages), observer)
//	defer sub.Cancel()
package bind

import (
	"log/slog"

	"github.com/spikesdivzero/lifecycle-bind/internal/lberrors"
	"github.com/spikesdivzero/lifecycle-bind/internal/phase"
	"github.com/spikesdivzero/lifecycle-bind/internal/selector"
	"github.com/spikesdivzero/lifecycle-bind/internal/stream"
)

// Transformer applies a binding to a data stream. Apply it once, right before the result is consumed.
//
// The returned stream subscribes to the phase stream and the data stream anew for each subscription made to
// it. Passing a nil stream panics with a ConfigError.
type Transformer[T any] func(Stream[T]) Stream[T]

// Until ends data streams at the first occurrence of target.
//
// Returns a ConfigError if phases is nil or target is PhaseNone, and an UnsupportedPhaseError if target is
// not a known phase.
func Until[T any](phases Stream[Phase], target Phase, opts ...Option) (Transformer[T], error) {
	if phases == nil {
		return nil, lberrors.NewConfigError("Until", "phases", 1)
	}
	if target == phase.None {
		return nil, lberrors.NewConfigError("Until", "target", 1)
	}
	if !target.Valid() {
		return nil, lberrors.UnsupportedPhaseError{Phase: target}
	}

	cfg := buildConfig(opts)
	cfg.log.Debug("binding until phase", "target", target.String())

	return transformer[T]("Until", selector.Until(phases, target), cfg.log), nil
}

// SimpleLifecycle binds using the six-phase lifecycle, CREATE through DESTROY.
//
// The first phase seen after subscribing is taken as the start, and the stream ends at the phase that
// pairs with it: CREATE→DESTROY, START→STOP, RESUME→PAUSE, PAUSE→STOP, STOP→DESTROY. A start with no
// pairing fails the returned stream with an OutOfLifecycleError, InvalidPhaseError or UnsupportedPhaseError.
//
// Those errors arrive through the stream's Error, not from this call. The failure is only eager when phases
// emits its current phase on subscription: then the data stream is never subscribed. Against a hot source
// that does not replay, data is subscribed straight away and may forward values until the next phase shows
// up and fails the stream.
func SimpleLifecycle[T any](phases Stream[Phase], opts ...Option) (Transformer[T], error) {
	return lifecycle[T]("SimpleLifecycle", phases, phase.FamilySimple, opts)
}

// ExtendedLifecycle binds using the ten-phase lifecycle, ATTACH through DETACH.
//
// As SimpleLifecycle, with the pairings ATTACH→DETACH, CREATE→DESTROY, CREATE_VIEW→DESTROY_VIEW,
// START→STOP, RESUME→PAUSE, PAUSE→STOP, STOP→DESTROY_VIEW, DESTROY_VIEW→DESTROY and DESTROY→DETACH.
// The same caveat about when resolution errors arrive applies.
func ExtendedLifecycle[T any](phases Stream[Phase], opts ...Option) (Transformer[T], error) {
	return lifecycle[T]("ExtendedLifecycle", phases, phase.FamilyExtended, opts)
}

// Lifecycle binds using the pairing table of family. Resolution errors arrive as in SimpleLifecycle.
func Lifecycle[T any](phases Stream[Phase], family Family, opts ...Option) (Transformer[T], error) {
	return lifecycle[T]("Lifecycle", phases, family, opts)
}

func lifecycle[T any](fn string, phases Stream[Phase], family Family, opts []Option) (Transformer[T], error) {
	if phases == nil {
		return nil, lberrors.NewConfigError(fn, "phases", 2)
	}
	if !family.Valid() {
		return nil, lberrors.NewConfigError(fn, "family", 2)
	}

	cfg := buildConfig(opts)
	return transformer[T](fn, selector.Lifecycle(phases, family, cfg.log), cfg.log), nil
}

func transformer[T any](fn string, signal stream.Stream[struct{}], log *slog.Logger) Transformer[T] {
	return func(data Stream[T]) Stream[T] {
		if data == nil {
			panic(lberrors.NewConfigError(fn, "data", 1))
		}
		return stream.TakeUntil(data, signal, log)
	}
}

// Compose applies transformers to s in order.
func Compose[T any](s Stream[T], transformers ...Transformer[T]) Stream[T] {
	for _, t := range transformers {
		s = t(s)
	}
	return s
}
