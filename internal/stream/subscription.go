package stream

import (
	"context"
	"sync"
	"sync/atomic"
)

// Subscription is the consumer's handle on a stream started with Listen.
type Subscription struct {
	done   chan struct{}
	once   sync.Once
	cancel context.CancelFunc

	mu  sync.Mutex
	err error
}

// Listen subscribes obs to s and returns a handle for releasing it.
//
// obs sees at most one terminal notification, and nothing at all after Cancel. The subscription is also
// released when ctx is done.
func Listen[T any](ctx context.Context, s Stream[T], obs Observer[T]) *Subscription {
	ctx, cancel := context.WithCancel(ctx)
	sub := &Subscription{
		done:   make(chan struct{}),
		cancel: cancel,
	}
	context.AfterFunc(ctx, sub.markDone)

	s.Subscribe(ctx, &listener[T]{ctx: ctx, obs: obs, sub: sub})
	return sub
}

// Cancel stops obs from receiving anything further and releases the stream. Calling it again, or after the
// stream has finished, does nothing.
func (s *Subscription) Cancel() {
	s.cancel()
	s.markDone()
}

// Done is closed once the stream has finished or the subscription has been cancelled.
func (s *Subscription) Done() <-chan struct{} { return s.done }

// Err is the error the stream failed with, if any.
func (s *Subscription) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Subscription) markDone() {
	s.once.Do(func() { close(s.done) })
}

type listener[T any] struct {
	ctx      context.Context
	obs      Observer[T]
	sub      *Subscription
	finished atomic.Bool
}

func (l *listener[T]) Next(v T) {
	if l.ctx.Err() != nil || l.finished.Load() {
		return
	}
	l.obs.Next(v)
}

func (l *listener[T]) Error(err error) {
	if !l.claimTerminal() {
		return
	}
	l.sub.mu.Lock()
	l.sub.err = err
	l.sub.mu.Unlock()

	l.obs.Error(err)
	l.sub.Cancel()
}

func (l *listener[T]) Complete() {
	if !l.claimTerminal() {
		return
	}
	l.obs.Complete()
	l.sub.Cancel()
}

func (l *listener[T]) claimTerminal() bool {
	return l.ctx.Err() == nil && l.finished.CompareAndSwap(false, true)
}
