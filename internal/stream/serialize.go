package stream

import (
	"context"
	"sync"
)

type noteKind int

const (
	noteNext noteKind = iota
	noteError
	noteComplete
)

type note[T any] struct {
	kind  noteKind
	value T
	err   error
}

// serializer delivers notifications to target one at a time and in the order they were queued, whichever
// goroutine queued them, including a delivery that queues another from inside the target. Whoever finds it
// idle drains the queue; everyone else only enqueues. Nothing ever blocks waiting for a delivery.
type serializer[T any] struct {
	ctx    context.Context // once done, nothing more is delivered
	target Observer[T]
	cut    func() bool // if set and true, queued values are dropped; terminal notifications still go out

	mu       sync.Mutex
	emitting bool
	closed   bool // a terminal notification has been queued
	queue    []note[T]
}

func newSerializer[T any](ctx context.Context, target Observer[T], cut func() bool) *serializer[T] {
	return &serializer[T]{ctx: ctx, target: target, cut: cut}
}

func (s *serializer[T]) pushNext(v T) {
	s.push(note[T]{kind: noteNext, value: v})
}

// pushTerminal queues Error for a non-nil err, Complete otherwise.
func (s *serializer[T]) pushTerminal(err error) {
	s.push(terminalNote[T](err))
}

func terminalNote[T any](err error) note[T] {
	if err != nil {
		return note[T]{kind: noteError, err: err}
	}
	return note[T]{kind: noteComplete}
}

func (s *serializer[T]) push(n note[T]) {
	if s.enqueue(n) {
		s.drain()
	}
}

// enqueue reports whether the caller has become the emitter and must call drain.
//
// Split from push so callers can enqueue while holding a lock of their own, and drain after releasing it.
func (s *serializer[T]) enqueue(n note[T]) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}
	if n.kind != noteNext {
		s.closed = true
	}
	s.queue = append(s.queue, n)

	if s.emitting {
		return false
	}
	s.emitting = true
	return true
}

func (s *serializer[T]) drain() {
	s.mu.Lock()
	for len(s.queue) > 0 {
		n := s.queue[0]
		s.queue[0] = note[T]{}
		s.queue = s.queue[1:]
		s.mu.Unlock()

		s.deliver(n)

		s.mu.Lock()
	}
	s.emitting = false
	s.mu.Unlock()
}

func (s *serializer[T]) deliver(n note[T]) {
	if s.ctx.Err() != nil {
		return
	}

	switch n.kind {
	case noteNext:
		if s.cut != nil && s.cut() {
			return
		}
		s.target.Next(n.value)
	case noteError:
		s.target.Error(n.err)
	case noteComplete:
		s.target.Complete()
	}
}
