package stream

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"go.uber.org/goleak"
)

// FromChan and context.AfterFunc both run goroutines; none may outlive the tests.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// probe wraps a stream, remembering every subscription made to it.
type probe[T any] struct {
	Stream[T]

	subscribes atomic.Int32

	mu   sync.Mutex
	ctxs []context.Context
}

func newProbe[T any](s Stream[T]) *probe[T] {
	return &probe[T]{Stream: s}
}

func (p *probe[T]) Subscribe(ctx context.Context, obs Observer[T]) {
	p.subscribes.Add(1)
	p.mu.Lock()
	p.ctxs = append(p.ctxs, ctx)
	p.mu.Unlock()

	p.Stream.Subscribe(ctx, obs)
}

// released reports whether every subscription made so far has been released.
func (p *probe[T]) released() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, ctx := range p.ctxs {
		if ctx.Err() == nil {
			return false
		}
	}
	return true
}
