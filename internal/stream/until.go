package stream

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
)

//go:generate go tool stringer -type bindingState -trimprefix binding
type bindingState int32

const (
	bindingNew bindingState = iota
	bindingArmed
	bindingTerminated
)

// TakeUntil mirrors data until signal emits for the first time, then completes.
//
// The signal is subscribed first and the data stream second, so both are live before any value is
// forwarded; if the signal fires while being subscribed, data is never subscribed at all.
//
//   - signal emits: both subscriptions are released, then Complete is delivered.
//   - signal fails: as above, but the error is delivered instead.
//   - signal completes without emitting: nothing changes.
//   - data completes or fails: that is delivered, then the signal subscription is released.
//
// Termination wins races with data. A value that has not yet reached obs when the signal is observed is
// dropped, including values queued from other goroutines. At most one terminal notification is delivered,
// and none at all once ctx is cancelled.
//
// A nil log discards.
func TakeUntil[T, S any](data Stream[T], signal Stream[S], log *slog.Logger) Stream[T] {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return Func[T](func(ctx context.Context, obs Observer[T]) {
		newBinding[T, S](ctx, obs, log).arm(data, signal)
	})
}

// binding is the state behind one subscription to a TakeUntil stream.
type binding[T, S any] struct {
	log *slog.Logger
	ctx context.Context // downstream's

	state atomic.Int32
	cut   atomic.Bool // set once data must no longer be forwarded

	dataCtx      context.Context
	dataCancel   context.CancelFunc
	signalCtx    context.Context
	signalCancel context.CancelFunc
	stopWatch    func() bool

	out *serializer[T]
}

func newBinding[T, S any](ctx context.Context, obs Observer[T], log *slog.Logger) *binding[T, S] {
	b := &binding[T, S]{log: log, ctx: ctx}
	b.dataCtx, b.dataCancel = context.WithCancel(ctx)
	b.signalCtx, b.signalCancel = context.WithCancel(ctx)
	b.out = newSerializer(ctx, obs, b.cut.Load)
	return b
}

func (b *binding[T, S]) arm(data Stream[T], signal Stream[S]) {
	// Consumer went away before we started.
	if b.ctx.Err() != nil {
		b.release()
		return
	}

	b.setState(bindingNew, bindingArmed)
	b.stopWatch = context.AfterFunc(b.ctx, b.abandon)
	b.log.Debug("binding armed")

	signal.Subscribe(b.signalCtx, ObserverFuncs[S]{
		OnNext:  func(S) { b.terminate("signal", nil) },
		OnError: func(err error) { b.terminate("signal failed", err) },
	})
	if b.getState() != bindingArmed {
		return
	}

	data.Subscribe(b.dataCtx, ObserverFuncs[T]{
		OnNext:     b.forward,
		OnError:    func(err error) { b.finish("data failed", err) },
		OnComplete: func() { b.finish("data completed", nil) },
	})
}

func (b *binding[T, S]) forward(v T) {
	if b.cut.Load() {
		return
	}
	b.out.pushNext(v)
}

// terminate handles the signal side: release both subscriptions, then deliver.
func (b *binding[T, S]) terminate(reason string, err error) {
	if !b.transition(bindingArmed, bindingTerminated) {
		return
	}
	b.cut.Store(true)
	b.stopWatch()
	b.release()

	b.logTerminated(reason, err)
	b.out.pushTerminal(err)
}

// finish handles the data stream ending on its own: deliver, then release the signal.
func (b *binding[T, S]) finish(reason string, err error) {
	if !b.transition(bindingArmed, bindingTerminated) {
		return
	}
	b.stopWatch()

	b.logTerminated(reason, err)
	b.out.pushTerminal(err)
	b.release()
}

// abandon runs when the downstream context is cancelled; nothing more is delivered.
func (b *binding[T, S]) abandon() {
	if !b.transition(bindingArmed, bindingTerminated) {
		return
	}
	b.cut.Store(true)
	b.release()
	b.logTerminated("cancelled", context.Cause(b.ctx))
}

// release is idempotent: cancelling an already cancelled context does nothing.
func (b *binding[T, S]) release() {
	b.dataCancel()
	b.signalCancel()
}

func (b *binding[T, S]) logTerminated(reason string, err error) {
	if err != nil {
		b.log.Debug("binding terminated", "reason", reason, "err", err)
		return
	}
	b.log.Debug("binding terminated", "reason", reason)
}

func (b *binding[T, S]) getState() bindingState {
	return bindingState(b.state.Load())
}

func (b *binding[T, S]) transition(from, to bindingState) bool {
	return b.state.CompareAndSwap(int32(from), int32(to))
}

func (b *binding[T, S]) setState(from, to bindingState) {
	if !b.transition(from, to) {
		panic(fmt.Sprintf("internal: binding setState from state %v, expected %v", b.getState(), from))
	}
}
