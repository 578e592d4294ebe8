package stream

import (
	"context"
	"sync"
)

// CombineLatest emits the latest value of each source, paired, every time either emits once both have
// emitted at least once.
//
// It completes when both sources have completed, or as soon as one completes without ever emitting, since
// no pair can be formed after that. An error from either source fails it and releases both.
//
// The sources may deliver from different goroutines.
func CombineLatest[A, B any](a Stream[A], b Stream[B]) Stream[Pair[A, B]] {
	return Func[Pair[A, B]](func(ctx context.Context, obs Observer[Pair[A, B]]) {
		upCtx, cancel := context.WithCancel(ctx)
		c := &combiner[A, B]{
			cancel: cancel,
			out:    newSerializer(ctx, obs, nil),
		}

		a.Subscribe(upCtx, ObserverFuncs[A]{
			OnNext:     c.nextA,
			OnError:    c.fail,
			OnComplete: func() { c.complete(&c.doneA, &c.haveA) },
		})
		b.Subscribe(upCtx, ObserverFuncs[B]{
			OnNext:     c.nextB,
			OnError:    c.fail,
			OnComplete: func() { c.complete(&c.doneB, &c.haveB) },
		})
	})
}

type combiner[A, B any] struct {
	cancel context.CancelFunc
	out    *serializer[Pair[A, B]]

	mu           sync.Mutex
	a            A
	b            B
	haveA, haveB bool
	doneA, doneB bool
	finished     bool
}

func (c *combiner[A, B]) nextA(v A) {
	c.mu.Lock()
	c.a, c.haveA = v, true
	c.emitLocked()
}

func (c *combiner[A, B]) nextB(v B) {
	c.mu.Lock()
	c.b, c.haveB = v, true
	c.emitLocked()
}

// emitLocked queues the current pair while still holding c.mu, so pairs go out in the order they were
// formed, then unlocks before delivering.
func (c *combiner[A, B]) emitLocked() {
	drain := false
	if c.haveA && c.haveB && !c.finished {
		drain = c.out.enqueue(note[Pair[A, B]]{kind: noteNext, value: Pair[A, B]{c.a, c.b}})
	}
	c.mu.Unlock()

	if drain {
		c.out.drain()
	}
}

func (c *combiner[A, B]) complete(done, have *bool) {
	c.mu.Lock()
	*done = true
	if *have && !(c.doneA && c.doneB) {
		c.mu.Unlock()
		return
	}
	c.finishLocked(nil)
}

func (c *combiner[A, B]) fail(err error) {
	c.mu.Lock()
	c.finishLocked(err)
}

func (c *combiner[A, B]) finishLocked(err error) {
	if c.finished {
		c.mu.Unlock()
		return
	}
	c.finished = true
	drain := c.out.enqueue(terminalNote[Pair[A, B]](err))
	c.mu.Unlock()

	if drain {
		c.out.drain()
	}
	c.cancel()
}
