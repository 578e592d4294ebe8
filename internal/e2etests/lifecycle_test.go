package e2etests

import (
	"context"
	"errors"
	"testing"
	"testing/synctest"
	"time"

	"github.com/shoenig/test"
	"github.com/shoenig/test/must"
	"github.com/spikesdivzero/lifecycle-bind"
	bindErrors "github.com/spikesdivzero/lifecycle-bind/bind-errors"
	"github.com/spikesdivzero/lifecycle-bind/internal/testutil"
)

func TestSimpleStartEndsAtStop(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		begin := time.Now()
		ctx, cancel := context.WithCancel(t.Context())
		defer cancel()

		phases := phasesEverySecond(ctx, bind.PhaseStart, bind.PhaseResume, bind.PhasePause, bind.PhaseStop, bind.PhaseDestroy)
		until, err := bind.SimpleLifecycle[int](phases)
		must.NoError(t, err)

		rec := testutil.NewRecorder[int]()
		sub := bind.Listen(ctx, until(ticks(ctx, 10)), bind.Observer[int](rec))
		<-sub.Done()

		// STOP arrives at 4s, between the ticks at 3.5s and 4.5s.
		test.Eq(t, []int{0, 1, 2, 3}, rec.Values())
		test.Eq(t, 1, rec.Completions())
		test.NoError(t, sub.Err())
		test.Eq(t, 4*time.Second, time.Since(begin))
	})
}

func TestExtendedPhases(t *testing.T) {
	tests := []struct {
		name   string
		phases []bind.Phase
		want   []int
	}{
		{"pause ends at stop",
			[]bind.Phase{bind.PhasePause, bind.PhaseResume, bind.PhasePause, bind.PhaseStop, bind.PhaseDestroyView},
			[]int{0, 1, 2, 3}},
		{"stop ends at destroy view",
			[]bind.Phase{bind.PhaseStop, bind.PhaseStart, bind.PhaseStop, bind.PhaseDestroyView, bind.PhaseDestroy},
			[]int{0, 1, 2, 3}},
		{"attach ends at detach",
			[]bind.Phase{bind.PhaseAttach, bind.PhaseCreate, bind.PhaseDestroy, bind.PhaseDetach},
			[]int{0, 1, 2, 3}},
		{"create view outlives the data",
			[]bind.Phase{bind.PhaseCreateView, bind.PhaseStart, bind.PhaseStop, bind.PhaseStart, bind.PhaseStop, bind.PhaseStart},
			[]int{0, 1, 2, 3, 4, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			synctest.Test(t, func(t *testing.T) {
				ctx, cancel := context.WithCancel(t.Context())
				defer cancel()

				until, err := bind.ExtendedLifecycle[int](phasesEverySecond(ctx, tt.phases...))
				must.NoError(t, err)

				rec := testutil.NewRecorder[int]()
				sub := bind.Listen(ctx, until(ticks(ctx, 6)), bind.Observer[int](rec))
				<-sub.Done()

				test.Eq(t, tt.want, rec.Values())
				test.Eq(t, 1, rec.Completions())
				test.Eq(t, 0, rec.Late())
			})
		})
	}
}

func TestUntilStop(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		defer cancel()

		phases := phasesEverySecond(ctx, bind.PhaseCreate, bind.PhaseStart, bind.PhaseStop, bind.PhaseDestroy)
		until, err := bind.Until[string](phases, bind.PhaseStop)
		must.NoError(t, err)

		// X after START, Y after DESTROY.
		data := timed(ctx, 2500*time.Millisecond, 2*time.Second, "X", "Y")

		rec := testutil.NewRecorder[string]()
		sub := bind.Listen(ctx, until(data), bind.Observer[string](rec))
		<-sub.Done()

		test.Eq(t, []string{"X"}, rec.Values())
		test.Eq(t, 1, rec.Completions())
	})
}

func TestDataEndsFirst(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		defer cancel()

		phases := phasesEverySecond(ctx, bind.PhaseCreate, bind.PhaseStart, bind.PhaseStop)
		until, err := bind.SimpleLifecycle[int](phases)
		must.NoError(t, err)

		rec := testutil.NewRecorder[int]()
		sub := bind.Listen(ctx, until(ticks(ctx, 2)), bind.Observer[int](rec))
		<-sub.Done()

		test.Eq(t, []int{0, 1}, rec.Values())
		test.Eq(t, 1, rec.Completions())
	})
}

func TestBoundAtTheEnd(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		defer cancel()

		phases := phasesEverySecond(ctx, bind.PhaseDestroy, bind.PhaseCreate)
		until, err := bind.SimpleLifecycle[int](phases)
		must.NoError(t, err)

		rec := testutil.NewRecorder[int]()
		sub := bind.Listen(ctx, until(ticks(ctx, 5)), bind.Observer[int](rec))
		<-sub.Done()

		test.ErrorIs(t, sub.Err(), bindErrors.ErrOutOfLifecycle)
		var ole bindErrors.OutOfLifecycleError
		must.True(t, errors.As(sub.Err(), &ole))
		test.Eq(t, bind.PhaseDestroy, ole.Phase)
		test.Eq(t, []int{0}, rec.Values())
	})
}

// Two bindings share one subscription to the lifecycle. Each takes the first phase it sees as its start.
func TestSharedLifecycle(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		begin := time.Now()
		ctx, cancel := context.WithCancel(t.Context())
		defer cancel()

		phases := bind.Share(phasesEverySecond(ctx, bind.PhaseCreate, bind.PhaseStart, bind.PhaseStop, bind.PhaseDestroy))
		until, err := bind.SimpleLifecycle[int](phases)
		must.NoError(t, err)

		early := testutil.NewRecorder[int]()
		earlySub := bind.Listen(ctx, until(ticks(ctx, 10)), bind.Observer[int](early))

		// Bound after CREATE, so its start is START.
		time.Sleep(1500 * time.Millisecond)
		late := testutil.NewRecorder[int]()
		lateData := timed(ctx, 250*time.Millisecond, time.Second, 0, 1, 2, 3)
		lateSub := bind.Listen(ctx, until(lateData), bind.Observer[int](late))

		<-lateSub.Done()
		test.Eq(t, 3*time.Second, time.Since(begin))
		<-earlySub.Done()
		test.Eq(t, 4*time.Second, time.Since(begin))

		test.Eq(t, []int{0, 1}, late.Values())
		test.Eq(t, []int{0, 1, 2, 3}, early.Values())
	})
}
