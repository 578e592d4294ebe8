package testutil

import (
	"reflect"
	"sync"
	"testing"
)

//go:generate go tool stringer -type ChanReadStatus -trimprefix ChanReadStatus
type ChanReadStatus int

const (
	ChanReadStatusClosed ChanReadStatus = iota + 1
	ChanReadStatusBlocked
	ChanReadStatusOk // got a value
)

func Zero[T any]() T {
	var zeroT T
	return zeroT
}

func MaybeReadChan[T any](ch <-chan T) (T, ChanReadStatus) {
	select {
	case v, ok := <-ch:
		if ok {
			return v, ChanReadStatusOk
		}
		return v, ChanReadStatusClosed // v is the zero value for a closed channel
	default:
		return Zero[T](), ChanReadStatusBlocked
	}
}

// Checks both the read status and the value in one call, without ever blocking (and so without letting
// synctest advance time underneath us).
func ChanReadIs[T any](t *testing.T, ch <-chan T, wantStatus ChanReadStatus, wantValue T) {
	t.Helper()

	value, status := MaybeReadChan(ch)
	if status != wantStatus {
		t.Errorf("ChanReadIs status %v, expected %v", status, wantStatus)
	}
	if !reflect.DeepEqual(value, wantValue) {
		t.Errorf(
			"ChanReadIs value mismatch:\n"+
				"\tGot:  %#v\n"+
				"\tWant: %#v",
			value, wantValue)
	}
}

// Most of our channels are done-style signals, where only the status matters.

func ChanReadIsBlocked[T any](t *testing.T, ch <-chan T) {
	t.Helper()
	if _, status := MaybeReadChan(ch); status != ChanReadStatusBlocked {
		t.Errorf("ChanReadIsBlocked got status %v", status)
	}
}

func ChanReadIsClosed[T any](t *testing.T, ch <-chan T) {
	t.Helper()
	if _, status := MaybeReadChan(ch); status != ChanReadStatusClosed {
		t.Errorf("ChanReadIsClosed got status %v", status)
	}
}

// Returns a channel along with a closer that's safe to call more than once.
func ChanWithCloser[T any](size int) (chan T, func()) {
	ch := make(chan T, size)
	var once sync.Once
	return ch, func() { once.Do(func() { close(ch) }) }
}
