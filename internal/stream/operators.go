package stream

import "context"

// stage is the bookkeeping shared by the single-source operators: it forwards to obs until either side
// finishes, then releases the upstream subscription.
//
// A single source never delivers concurrently with itself, so no locking is needed.
type stage[T any] struct {
	ctx     context.Context // downstream's
	cancel  context.CancelFunc
	obs     Observer[T]
	stopped bool
}

// newStage returns the stage and the context to subscribe upstream with.
func newStage[T any](ctx context.Context, obs Observer[T]) (*stage[T], context.Context) {
	upCtx, cancel := context.WithCancel(ctx)
	return &stage[T]{ctx: ctx, cancel: cancel, obs: obs}, upCtx
}

func (s *stage[T]) active() bool { return !s.stopped && s.ctx.Err() == nil }

func (s *stage[T]) next(v T) {
	if s.active() {
		s.obs.Next(v)
	}
}

func (s *stage[T]) finish(err error) {
	if !s.active() {
		return
	}
	s.stopped = true
	s.cancel()
	if err != nil {
		s.obs.Error(err)
	} else {
		s.obs.Complete()
	}
}

func (s *stage[T]) upstreamError(err error) { s.finish(err) }

func (s *stage[T]) upstreamComplete() { s.finish(nil) }

// Map transforms every value with f. An error from f fails the stream and releases the source.
func Map[T, U any](s Stream[T], f func(T) (U, error)) Stream[U] {
	return Func[U](func(ctx context.Context, obs Observer[U]) {
		st, upCtx := newStage(ctx, obs)
		s.Subscribe(upCtx, ObserverFuncs[T]{
			OnNext: func(v T) {
				if !st.active() {
					return
				}
				u, err := f(v)
				if err != nil {
					st.finish(err)
					return
				}
				st.next(u)
			},
			OnError:    st.upstreamError,
			OnComplete: st.upstreamComplete,
		})
	})
}

func Filter[T any](s Stream[T], keep func(T) bool) Stream[T] {
	return Func[T](func(ctx context.Context, obs Observer[T]) {
		st, upCtx := newStage(ctx, obs)
		s.Subscribe(upCtx, ObserverFuncs[T]{
			OnNext: func(v T) {
				if st.active() && keep(v) {
					st.next(v)
				}
			},
			OnError:    st.upstreamError,
			OnComplete: st.upstreamComplete,
		})
	})
}

// Take emits the first n values, then completes and releases the source.
func Take[T any](s Stream[T], n int) Stream[T] {
	return Func[T](func(ctx context.Context, obs Observer[T]) {
		st, upCtx := newStage(ctx, obs)
		if n <= 0 {
			st.finish(nil)
			return
		}

		remaining := n
		s.Subscribe(upCtx, ObserverFuncs[T]{
			OnNext: func(v T) {
				if !st.active() {
					return
				}
				remaining--
				st.next(v)
				if remaining == 0 {
					st.finish(nil)
				}
			},
			OnError:    st.upstreamError,
			OnComplete: st.upstreamComplete,
		})
	})
}

// Skip drops the first n values.
func Skip[T any](s Stream[T], n int) Stream[T] {
	return Func[T](func(ctx context.Context, obs Observer[T]) {
		st, upCtx := newStage(ctx, obs)

		skipped := 0
		s.Subscribe(upCtx, ObserverFuncs[T]{
			OnNext: func(v T) {
				if skipped < n {
					skipped++
					return
				}
				st.next(v)
			},
			OnError:    st.upstreamError,
			OnComplete: st.upstreamComplete,
		})
	})
}

// First emits the first value matching match, then completes. If the source completes first, so does First,
// without emitting.
func First[T any](s Stream[T], match func(T) bool) Stream[T] {
	return Take(Filter(s, match), 1)
}
