package stream

import (
	"context"
	"slices"
)

// observerSet is the registry shared by Subject and Multicast. It has no lock of its own; every method must
// be called with the owner's lock held. Deliveries happen on snapshots, outside that lock.
type observerSet[T any] struct {
	entries []*observerEntry[T]
}

type observerEntry[T any] struct {
	ctx  context.Context
	obs  Observer[T]
	stop func() bool
}

func (e *observerEntry[T]) live() bool { return e.ctx.Err() == nil }

// add registers obs, arranging for onRelease to run (on its own goroutine) when ctx is done.
func (s *observerSet[T]) add(ctx context.Context, obs Observer[T], onRelease func(*observerEntry[T])) {
	e := &observerEntry[T]{ctx: ctx, obs: obs}
	e.stop = context.AfterFunc(ctx, func() { onRelease(e) })
	s.entries = append(s.entries, e)
}

// remove reports whether e was still registered.
func (s *observerSet[T]) remove(e *observerEntry[T]) bool {
	i := slices.Index(s.entries, e)
	if i < 0 {
		return false
	}
	s.entries = slices.Delete(s.entries, i, i+1)
	return true
}

func (s *observerSet[T]) snapshot() []*observerEntry[T] {
	return slices.Clone(s.entries)
}

// takeAll empties the set and stops the release callbacks; used once a terminal notification is sent.
func (s *observerSet[T]) takeAll() []*observerEntry[T] {
	entries := s.entries
	s.entries = nil
	for _, e := range entries {
		e.stop()
	}
	return entries
}

// count counts entries whose subscription is still live. Released ones may linger until their callback runs.
func (s *observerSet[T]) count() int {
	n := 0
	for _, e := range s.entries {
		if e.live() {
			n++
		}
	}
	return n
}

func deliverNext[T any](entries []*observerEntry[T], v T) {
	for _, e := range entries {
		if e.live() {
			e.obs.Next(v)
		}
	}
}

func deliverTerminal[T any](entries []*observerEntry[T], err error) {
	for _, e := range entries {
		if !e.live() {
			continue
		}
		if err != nil {
			e.obs.Error(err)
		} else {
			e.obs.Complete()
		}
	}
}
