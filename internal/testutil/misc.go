package testutil

import (
	"errors"
	"fmt"
	"testing"
)

// defer WantPanic(t, "wanted reason")
//
// If want is empty string, the specific cause message is not checked.
func WantPanic(t *testing.T, want string) {
	t.Helper()
	checkPanic(t, recover(), func(e any) {
		if want == "" {
			return
		}
		if got := fmt.Sprint(e); got != want {
			t.Errorf("got panic message %q, want %q", got, want)
		}
	})
}

// defer WantPanicIs(t, ErrSomething)
//
// The recovered value must be an error matching target under errors.Is.
func WantPanicIs(t *testing.T, target error) {
	t.Helper()
	checkPanic(t, recover(), func(e any) {
		err, ok := e.(error)
		if !ok {
			t.Errorf("got panic value %#v, want an error", e)
			return
		}
		if !errors.Is(err, target) {
			t.Errorf("got panic error %v, want one matching %v", err, target)
		}
	})
}

// recover only works when called directly by the deferred function, hence passing the value in.
func checkPanic(t *testing.T, e any, check func(any)) {
	t.Helper()
	if e == nil {
		t.Errorf("got no panic, want one")
		return
	}
	check(e)
}
