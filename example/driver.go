package main

import (
	"context"
	"log/slog"
	"sync"

	"github.com/spikesdivzero/lifecycle-bind"
	bindErrors "github.com/spikesdivzero/lifecycle-bind/bind-errors"
)

// Driver stands in for whatever owns the lifecycle in a real application (a UI framework, a plugin host).
// Scenario steps, the HTTP endpoint and the SIGINT handler all advance it, so it serialises them.
type Driver struct {
	Log *slog.Logger

	family bind.Family
	phases *bind.Subject[bind.Phase]

	mu      sync.Mutex
	current bind.Phase
	ended   bool
}

func NewDriver(log *slog.Logger, family bind.Family) *Driver {
	return &Driver{
		Log:    log,
		family: family,
		phases: bind.NewSubject[bind.Phase](),
	}
}

// Phases starts every subscription with the current phase, the way a lifecycle owner answers "where are
// we now?", then follows the lifecycle live.
func (d *Driver) Phases() bind.Stream[bind.Phase] {
	return bind.StreamFunc[bind.Phase](func(ctx context.Context, obs bind.Observer[bind.Phase]) {
		// Holding mu keeps an Advance from slipping in between the two.
		d.mu.Lock()
		defer d.mu.Unlock()

		if d.current != bind.PhaseNone && ctx.Err() == nil {
			obs.Next(d.current)
		}
		d.phases.Subscribe(ctx, obs)
	})
}

func (d *Driver) Current() bind.Phase {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.current
}

// Advance moves the lifecycle to p. Reaching the family's terminal phase completes the phase stream.
func (d *Driver) Advance(p bind.Phase) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.advanceLocked(p)
}

func (d *Driver) advanceLocked(p bind.Phase) error {
	if d.ended {
		return bindErrors.OutOfLifecycleError{Family: d.family, Phase: d.current}
	}
	if !d.family.Contains(p) {
		return bindErrors.UnsupportedPhaseError{Family: d.family, Phase: p}
	}

	d.Log.Info("Lifecycle advanced", "from", d.current.String(), "to", p.String())
	d.current = p
	d.phases.Next(p)

	if p == d.family.Terminal() {
		d.ended = true
		d.phases.Complete()
	}
	return nil
}

// Teardown walks the lifecycle down from wherever it is, each phase followed by its counterpart, until the
// terminal phase. A lifecycle that never started just ends.
func (d *Driver) Teardown() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.ended {
		return
	}
	d.Log.Info("Tearing down lifecycle", "from", d.current.String())

	for p := d.current; p != bind.PhaseNone; {
		next, err := bind.Resolve(d.family, p)
		if err != nil {
			break
		}
		if err := d.advanceLocked(next); err != nil {
			d.Log.Error("Teardown step failed", "err", err)
			break
		}
		p = next
	}

	if !d.ended {
		d.ended = true
		d.phases.Complete()
	}
}
