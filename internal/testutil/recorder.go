package testutil

import (
	"sync"
)

// Recorder is an observer that remembers everything delivered to it. It satisfies stream.Observer without
// importing it (which would be an import cycle for the stream package's own tests).
//
// Hooks run code from inside a delivery; everything else is there to assert against afterwards.
type Recorder[T any] struct {
	Hooks struct {
		Next     func(T)
		Terminal func()
	}

	mu          sync.Mutex
	values      []T
	err         error
	completions int
	errors      int
	late        int // notifications that arrived after a terminal one
	done        chan struct{}
	doneOnce    sync.Once
}

func NewRecorder[T any]() *Recorder[T] {
	return &Recorder[T]{done: make(chan struct{})}
}

func (r *Recorder[T]) Next(v T) {
	r.mu.Lock()
	if r.terminatedLocked() {
		r.late++
	}
	r.values = append(r.values, v)
	hook := r.Hooks.Next
	r.mu.Unlock()

	if hook != nil {
		hook(v)
	}
}

func (r *Recorder[T]) Error(err error) {
	r.mu.Lock()
	if r.terminatedLocked() {
		r.late++
	}
	r.errors++
	if r.err == nil {
		r.err = err
	}
	r.mu.Unlock()

	r.finish()
}

func (r *Recorder[T]) Complete() {
	r.mu.Lock()
	if r.terminatedLocked() {
		r.late++
	}
	r.completions++
	r.mu.Unlock()

	r.finish()
}

func (r *Recorder[T]) finish() {
	r.doneOnce.Do(func() { close(r.done) })
	if hook := r.Hooks.Terminal; hook != nil {
		hook()
	}
}

func (r *Recorder[T]) terminatedLocked() bool {
	return r.completions+r.errors > 0
}

func (r *Recorder[T]) Values() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]T(nil), r.values...)
}

func (r *Recorder[T]) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// Completions counts Complete calls; anything other than 0 or 1 is a contract violation by the stream.
func (r *Recorder[T]) Completions() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.completions
}

func (r *Recorder[T]) Errors() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.errors
}

// Late counts notifications of any kind delivered after the first terminal one.
func (r *Recorder[T]) Late() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.late
}

func (r *Recorder[T]) Terminated() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.terminatedLocked()
}

// Done is closed on the first terminal notification.
func (r *Recorder[T]) Done() <-chan struct{} { return r.done }
