package e2etests

import (
	"context"
	"testing"
	"time"

	"github.com/spikesdivzero/lifecycle-bind"
	"go.uber.org/goleak"
)

// For many of these tests, I'm going to be wrapping them in synctest.Test mainly for the benefit of deadlock detection.
// The lifecycle and the data each run on a goroutine of their own, sleeping between emissions, so the fake clock
// decides every interleaving.

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// timed emits values from a goroutine: the first after offset, the rest every interval. The goroutine exits
// once ctx is done, even if nobody is reading any more.
func timed[T any](ctx context.Context, offset, every time.Duration, values ...T) bind.Stream[T] {
	ch := make(chan T)
	go func() {
		defer close(ch)

		time.Sleep(offset)
		for i, v := range values {
			if i > 0 {
				time.Sleep(every)
			}
			select {
			case ch <- v:
			case <-ctx.Done():
				return
			}
		}
	}()
	return bind.FromChan(ch)
}

// ticks is a data stream of 0, 1, 2... at 0.5s, 1.5s, 2.5s...
func ticks(ctx context.Context, n int) bind.Stream[int] {
	values := make([]int, n)
	for i := range values {
		values[i] = i
	}
	return timed(ctx, 500*time.Millisecond, time.Second, values...)
}

// Phases at 1s, 2s, 3s...
func phasesEverySecond(ctx context.Context, phases ...bind.Phase) bind.Stream[bind.Phase] {
	return timed(ctx, time.Second, time.Second, phases...)
}
