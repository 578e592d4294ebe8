package stream

import (
	"context"
	"errors"
	"testing"
	"testing/synctest"

	"github.com/shoenig/test"
	"github.com/spikesdivzero/lifecycle-bind/internal/testutil"
)

func TestListen(t *testing.T) {
	t.Run("completes", func(t *testing.T) {
		rec := testutil.NewRecorder[int]()
		sub := Listen[int](t.Context(), FromSlice(1, 2), rec)

		testutil.ChanReadIsClosed(t, sub.Done())
		test.NoError(t, sub.Err())
		test.Eq(t, []int{1, 2}, rec.Values())
		test.Eq(t, 1, rec.Completions())
	})

	t.Run("fails", func(t *testing.T) {
		errBoom := errors.New("boom")
		rec := testutil.NewRecorder[int]()
		sub := Listen[int](t.Context(), Fail[int](errBoom), rec)

		testutil.ChanReadIsClosed(t, sub.Done())
		test.ErrorIs(t, sub.Err(), errBoom)
		test.ErrorIs(t, rec.Err(), errBoom)
	})

	t.Run("cancel releases the stream", func(t *testing.T) {
		synctest.Test(t, func(t *testing.T) {
			subj := NewSubject[string]()
			rec := testutil.NewRecorder[string]()
			sub := Listen[string](t.Context(), subj, rec)

			subj.Next("a")
			testutil.ChanReadIsBlocked(t, sub.Done())

			sub.Cancel()
			sub.Cancel()
			testutil.ChanReadIsClosed(t, sub.Done())
			synctest.Wait()

			subj.Next("b")
			subj.Complete()
			test.Eq(t, []string{"a"}, rec.Values())
			test.False(t, rec.Terminated())
			test.Eq(t, 0, subj.Observers())
		})
	})

	t.Run("parent context", func(t *testing.T) {
		synctest.Test(t, func(t *testing.T) {
			ctx, cancel := context.WithCancel(t.Context())
			sub := Listen[int](ctx, Never[int](), testutil.NewRecorder[int]())

			testutil.ChanReadIsBlocked(t, sub.Done())
			cancel()
			synctest.Wait()
			testutil.ChanReadIsClosed(t, sub.Done())
			test.NoError(t, sub.Err())
		})
	})

	t.Run("misbehaving source is tamed", func(t *testing.T) {
		rude := Func[int](func(ctx context.Context, obs Observer[int]) {
			obs.Next(1)
			obs.Complete()
			obs.Next(2)
			obs.Error(errors.New("late"))
			obs.Complete()
		})
		rec := testutil.NewRecorder[int]()
		sub := Listen[int](t.Context(), rude, rec)

		test.Eq(t, []int{1}, rec.Values())
		test.Eq(t, 1, rec.Completions())
		test.Eq(t, 0, rec.Late())
		test.NoError(t, sub.Err())
	})
}
