package bind

import (
	"context"

	"github.com/spikesdivzero/lifecycle-bind/internal/stream"
)

// The stream types live internally; these aliases are the public names for them.
type (
	Stream[T any]        = stream.Stream[T]
	Observer[T any]      = stream.Observer[T]
	ObserverFuncs[T any] = stream.ObserverFuncs[T]
	StreamFunc[T any]    = stream.Func[T]
	Subject[T any]       = stream.Subject[T]
	Subscription         = stream.Subscription
)

// Listen subscribes obs to s. Cancel the returned subscription, or ctx, to stop receiving.
func Listen[T any](ctx context.Context, s Stream[T], obs Observer[T]) *Subscription {
	return stream.Listen(ctx, s, obs)
}

// FromSlice emits values synchronously on subscription, then completes.
func FromSlice[T any](values ...T) Stream[T] { return stream.FromSlice(values...) }

// FromChan emits what is received from ch until it is closed. Each subscription reads on its own goroutine.
func FromChan[T any](ch <-chan T) Stream[T] { return stream.FromChan(ch) }

// NewSubject returns a stream driven by hand, handy as a phase source.
func NewSubject[T any]() *Subject[T] { return stream.NewSubject[T]() }

// Share lets several subscribers use one subscription to s.
func Share[T any](s Stream[T]) Stream[T] { return stream.Share(s) }
