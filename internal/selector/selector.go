// Package selector turns a stream of lifecycle phases into a termination signal: a stream that emits once,
// at the moment a binding made now should end.
package selector

import (
	"context"
	"log/slog"

	"github.com/spikesdivzero/lifecycle-bind/internal/pairing"
	"github.com/spikesdivzero/lifecycle-bind/internal/phase"
	"github.com/spikesdivzero/lifecycle-bind/internal/stream"
)

// Until fires on the first occurrence of target.
func Until(phases stream.Stream[phase.Phase], target phase.Phase) stream.Stream[struct{}] {
	return stream.Map(stream.First(phases, func(p phase.Phase) bool { return p == target }), toSignal[phase.Phase])
}

// Lifecycle treats the first phase it sees as the start of the binding, looks up the phase that ends it
// in the family's pairing table, and fires when that phase occurs.
//
// A start that has no pairing fails the signal with the error from [pairing.Resolve]. If the phases run
// out before the end phase occurs, the signal completes without firing.
//
// phases is subscribed once per subscription to the signal, however many views are derived from it.
// family must be valid.
func Lifecycle(phases stream.Stream[phase.Phase], family phase.Family, log *slog.Logger) stream.Stream[struct{}] {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	log = log.With("family", family.String())

	resolve := func(start phase.Phase) (phase.Phase, error) {
		end, err := pairing.Resolve(family, start)
		if err != nil {
			log.Debug("cannot resolve terminating phase", "start", start.String(), "err", err)
			return phase.None, err
		}
		log.Debug("resolved terminating phase", "start", start.String(), "target", end.String())
		return end, nil
	}

	return stream.Func[struct{}](func(ctx context.Context, obs stream.Observer[struct{}]) {
		shared := stream.Publish(phases)

		target := stream.Map(stream.Take[phase.Phase](shared, 1), resolve)
		current := stream.Skip[phase.Phase](shared, 1)
		reached := stream.First(stream.CombineLatest(target, current), func(p stream.Pair[phase.Phase, phase.Phase]) bool {
			want, got := p.Values()
			return want == got
		})

		// Both views must be registered before the source gets a chance to emit.
		stream.Map(reached, toSignal[stream.Pair[phase.Phase, phase.Phase]]).Subscribe(ctx, obs)
		shared.Connect(ctx)
	})
}

func toSignal[T any](T) (struct{}, error) { return struct{}{}, nil }
