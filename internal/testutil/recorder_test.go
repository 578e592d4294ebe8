package testutil

import (
	"errors"
	"testing"

	"github.com/shoenig/test"
)

func TestRecorder(t *testing.T) {
	t.Run("values then complete", func(t *testing.T) {
		r := NewRecorder[string]()

		var hooked []string
		r.Hooks.Next = func(v string) { hooked = append(hooked, v) }

		r.Next("a")
		r.Next("b")
		ChanReadIsBlocked(t, r.Done())
		test.False(t, r.Terminated())

		r.Complete()
		ChanReadIsClosed(t, r.Done())

		test.Eq(t, []string{"a", "b"}, r.Values())
		test.Eq(t, []string{"a", "b"}, hooked)
		test.Eq(t, 1, r.Completions())
		test.Eq(t, 0, r.Errors())
		test.Eq(t, 0, r.Late())
		test.NoError(t, r.Err())
	})

	t.Run("error keeps the first one", func(t *testing.T) {
		r := NewRecorder[int]()
		err1, err2 := errors.New("one"), errors.New("two")

		r.Error(err1)
		r.Error(err2)

		test.ErrorIs(t, r.Err(), err1)
		test.Eq(t, 2, r.Errors())
		test.Eq(t, 1, r.Late())
	})

	t.Run("counts late notifications", func(t *testing.T) {
		r := NewRecorder[int]()
		terminalHooks := 0
		r.Hooks.Terminal = func() { terminalHooks++ }

		r.Complete()
		r.Next(1)
		r.Complete()

		test.Eq(t, 2, r.Late())
		test.Eq(t, 2, r.Completions())
		test.Eq(t, 2, terminalHooks)
	})

	t.Run("values is a copy", func(t *testing.T) {
		r := NewRecorder[int]()
		r.Next(1)
		vs := r.Values()
		vs[0] = 99
		test.Eq(t, []int{1}, r.Values())
	})
}
