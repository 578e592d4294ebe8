package stream

import (
	"context"
	"sync"
)

// Multicast shares one subscription to its source between any number of observers.
//
// Observers are reference counted: when the last one is released, the source subscription is released too.
// A later Connect subscribes to the source afresh.
type Multicast[T any] struct {
	source Stream[T]

	mu         sync.Mutex
	observers  observerSet[T]
	connected  bool
	disconnect context.CancelFunc
}

// Publish wraps s without subscribing to it. Register observers with Subscribe, then call Connect, so that
// nothing the source emits synchronously on subscription is missed by any of them.
func Publish[T any](s Stream[T]) *Multicast[T] {
	return &Multicast[T]{source: s}
}

// Share is Publish with the connection managed for you: the first subscriber connects, and the source
// stays subscribed for as long as anyone is listening.
func Share[T any](s Stream[T]) Stream[T] {
	m := Publish(s)
	return Func[T](func(ctx context.Context, obs Observer[T]) {
		if m.subscribe(ctx, obs) {
			m.Connect(context.Background())
		}
	})
}

func (m *Multicast[T]) Subscribe(ctx context.Context, obs Observer[T]) {
	m.subscribe(ctx, obs)
}

// subscribe reports whether obs was registered; a dead ctx registers nothing.
func (m *Multicast[T]) subscribe(ctx context.Context, obs Observer[T]) bool {
	if ctx.Err() != nil {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.observers.add(ctx, obs, m.release)
	return true
}

func (m *Multicast[T]) release(e *observerEntry[T]) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.observers.remove(e) && len(m.observers.entries) == 0 && m.connected {
		m.connected = false
		m.disconnect()
	}
}

// Connect subscribes to the source, unless already connected or nobody is subscribed. The source
// subscription lives until ctx is done, the source terminates, or the reference count drops to zero.
func (m *Multicast[T]) Connect(ctx context.Context) {
	m.mu.Lock()
	if m.connected || ctx.Err() != nil || m.observers.count() == 0 {
		m.mu.Unlock()
		return
	}
	upCtx, cancel := context.WithCancel(ctx)
	m.connected, m.disconnect = true, cancel
	m.mu.Unlock()

	m.source.Subscribe(upCtx, &multicastUpstream[T]{m: m, ctx: upCtx, cancel: cancel})
}

// Observers counts live subscriptions.
func (m *Multicast[T]) Observers() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.observers.count()
}

// Connected reports whether the source is currently subscribed.
func (m *Multicast[T]) Connected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.connected
}

// One per connection, so that a late notification from a released connection can't leak into the next one.
type multicastUpstream[T any] struct {
	m      *Multicast[T]
	ctx    context.Context
	cancel context.CancelFunc
}

func (u *multicastUpstream[T]) Next(v T) {
	if u.ctx.Err() != nil {
		return
	}
	u.m.mu.Lock()
	entries := u.m.observers.snapshot()
	u.m.mu.Unlock()

	deliverNext(entries, v)
}

func (u *multicastUpstream[T]) Error(err error) { u.finish(err) }

func (u *multicastUpstream[T]) Complete() { u.finish(nil) }

func (u *multicastUpstream[T]) finish(err error) {
	if u.ctx.Err() != nil {
		return
	}
	u.m.mu.Lock()
	u.m.connected = false
	entries := u.m.observers.takeAll()
	u.m.mu.Unlock()

	u.cancel()
	deliverTerminal(entries, err)
}
