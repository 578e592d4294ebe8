package stream

import "context"

// FromSlice emits values synchronously from inside Subscribe, then completes.
func FromSlice[T any](values ...T) Stream[T] {
	return Func[T](func(ctx context.Context, obs Observer[T]) {
		for _, v := range values {
			if ctx.Err() != nil {
				return
			}
			obs.Next(v)
		}
		if ctx.Err() == nil {
			obs.Complete()
		}
	})
}

// FromChan emits everything received from ch, completing when ch is closed.
//
// Each subscription starts a goroutine that exits when ch is closed or the subscription is released.
// Several subscriptions to the same channel compete for its values.
func FromChan[T any](ch <-chan T) Stream[T] {
	return Func[T](func(ctx context.Context, obs Observer[T]) {
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case v, ok := <-ch:
					// Both cases may have been ready; cancellation wins.
					if ctx.Err() != nil {
						return
					}
					if !ok {
						obs.Complete()
						return
					}
					obs.Next(v)
				}
			}
		}()
	})
}

func Empty[T any]() Stream[T] {
	return Func[T](func(ctx context.Context, obs Observer[T]) {
		if ctx.Err() == nil {
			obs.Complete()
		}
	})
}

func Never[T any]() Stream[T] {
	return Func[T](func(context.Context, Observer[T]) {})
}

func Fail[T any](err error) Stream[T] {
	return Func[T](func(ctx context.Context, obs Observer[T]) {
		if ctx.Err() == nil {
			obs.Error(err)
		}
	})
}
