package stream

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shoenig/test"
	"github.com/spikesdivzero/lifecycle-bind/internal/testutil"
)

func pairStrings[A, B any](rec *testutil.Recorder[Pair[A, B]]) []string {
	var out []string
	for _, p := range rec.Values() {
		a, b := p.Values()
		out = append(out, fmt.Sprintf("%v/%v", a, b))
	}
	return out
}

func TestCombineLatest(t *testing.T) {
	t.Run("pairs latest values", func(t *testing.T) {
		a, b := NewSubject[int](), NewSubject[string]()
		rec := testutil.NewRecorder[Pair[int, string]]()
		CombineLatest[int, string](a, b).Subscribe(t.Context(), rec)

		a.Next(1)
		a.Next(2)
		b.Next("x")
		a.Next(3)
		a.Complete()
		b.Next("y")
		test.False(t, rec.Terminated())
		b.Complete()

		test.Eq(t, []string{"2/x", "3/x", "3/y"}, pairStrings(rec))
		test.Eq(t, 1, rec.Completions())
		test.Eq(t, 0, rec.Late())
	})

	t.Run("completes early when a side can never pair", func(t *testing.T) {
		other := newProbe(Never[string]())
		rec := testutil.NewRecorder[Pair[int, string]]()
		CombineLatest[int, string](Empty[int](), other).Subscribe(t.Context(), rec)

		test.Eq(t, 1, rec.Completions())
		test.Len(t, 0, rec.Values())
		test.True(t, other.released())
	})

	t.Run("error fails and releases both", func(t *testing.T) {
		errBoom := errors.New("boom")
		a := newProbe[int](NewSubject[int]())
		b := NewSubject[string]()
		rec := testutil.NewRecorder[Pair[int, string]]()
		CombineLatest[int, string](a, b).Subscribe(t.Context(), rec)

		b.Error(errBoom)
		test.ErrorIs(t, rec.Err(), errBoom)
		test.True(t, a.released())
	})

	t.Run("synchronous sources", func(t *testing.T) {
		rec := testutil.NewRecorder[Pair[string, int]]()
		CombineLatest(FromSlice("a", "b"), FromSlice(1, 2)).Subscribe(t.Context(), rec)

		test.Eq(t, []string{"b/1", "b/2"}, pairStrings(rec))
		test.Eq(t, 1, rec.Completions())
	})

	t.Run("reentrant emission keeps order", func(t *testing.T) {
		a, b := NewSubject[int](), NewSubject[int]()
		rec := testutil.NewRecorder[Pair[int, int]]()
		rec.Hooks.Next = func(p Pair[int, int]) {
			if x, _ := p.Values(); x == 1 {
				a.Next(2)
			}
		}
		CombineLatest[int, int](a, b).Subscribe(t.Context(), rec)

		a.Next(1)
		b.Next(10)

		test.Eq(t, []string{"1/10", "2/10"}, pairStrings(rec))
	})
}
