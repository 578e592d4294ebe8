package stream

import "context"

// Observer receives a stream's notifications: any number of Next calls, followed by at most one Error or
// Complete. A single stream never calls an observer concurrently with itself.
type Observer[T any] interface {
	Next(T)
	Error(error)
	Complete()
}

// ObserverFuncs adapts plain functions to an Observer. Nil funcs are skipped.
type ObserverFuncs[T any] struct {
	OnNext     func(T)
	OnError    func(error)
	OnComplete func()
}

func (o ObserverFuncs[T]) Next(v T) {
	if o.OnNext != nil {
		o.OnNext(v)
	}
}

func (o ObserverFuncs[T]) Error(err error) {
	if o.OnError != nil {
		o.OnError(err)
	}
}

func (o ObserverFuncs[T]) Complete() {
	if o.OnComplete != nil {
		o.OnComplete()
	}
}

// Stream is a push-based source of values.
//
// Subscribe starts delivery to obs and returns without blocking. A source may deliver synchronously from
// inside Subscribe, or later from a goroutine of its own. Cancelling ctx releases the subscription: the
// source stops delivering, and no terminal notification is sent for it.
type Stream[T any] interface {
	Subscribe(ctx context.Context, obs Observer[T])
}

// Func adapts a function to a Stream.
type Func[T any] func(ctx context.Context, obs Observer[T])

func (f Func[T]) Subscribe(ctx context.Context, obs Observer[T]) { f(ctx, obs) }

type Pair[T1, T2 any] struct {
	a T1
	b T2
}

func MakePair[T1, T2 any](a T1, b T2) Pair[T1, T2] { return Pair[T1, T2]{a, b} }

func (p Pair[T1, T2]) Values() (T1, T2) {
	return p.a, p.b
}
