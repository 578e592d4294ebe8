package stream

import (
	"context"
	"sync"
)

// Subject is a hot stream driven by hand: whatever is passed to Next reaches every observer subscribed at
// that moment. Observers that subscribe after Error or Complete get that terminal notification immediately.
//
// Subscribing and releasing subscriptions are safe at any time. Next, Error and Complete must not be called
// concurrently with each other; serialising the source is the caller's job.
type Subject[T any] struct {
	mu        sync.Mutex
	observers observerSet[T]
	finished  bool
	err       error
}

func NewSubject[T any]() *Subject[T] {
	return &Subject[T]{}
}

func (s *Subject[T]) Subscribe(ctx context.Context, obs Observer[T]) {
	if ctx.Err() != nil {
		return
	}

	s.mu.Lock()
	if s.finished {
		err := s.err
		s.mu.Unlock()
		deliverTerminal([]*observerEntry[T]{{ctx: ctx, obs: obs}}, err)
		return
	}
	s.observers.add(ctx, obs, s.release)
	s.mu.Unlock()
}

func (s *Subject[T]) release(e *observerEntry[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers.remove(e)
}

func (s *Subject[T]) Next(v T) {
	s.mu.Lock()
	if s.finished {
		s.mu.Unlock()
		return
	}
	entries := s.observers.snapshot()
	s.mu.Unlock()

	deliverNext(entries, v)
}

func (s *Subject[T]) Error(err error) { s.finish(err) }

func (s *Subject[T]) Complete() { s.finish(nil) }

func (s *Subject[T]) finish(err error) {
	s.mu.Lock()
	if s.finished {
		s.mu.Unlock()
		return
	}
	s.finished, s.err = true, err
	entries := s.observers.takeAll()
	s.mu.Unlock()

	deliverTerminal(entries, err)
}

// Observers counts live subscriptions.
func (s *Subject[T]) Observers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.observers.count()
}
