package main

import (
	"testing"

	"github.com/shoenig/test"
	"github.com/shoenig/test/must"
	"github.com/spikesdivzero/lifecycle-bind"
)

func TestRun_DefaultScenario(t *testing.T) {
	sc := defaultScenario()
	sc.Step = "0s"
	st, err := sc.settings()
	must.NoError(t, err)

	received, err := run(t.Context(), discardLogger(), st, "")
	must.NoError(t, err)
	test.Eq(t, []string{"A", "B"}, received)
}

func TestRun_ExtendedScenario(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t, extendedScenario))
	must.NoError(t, err)
	st, err := sc.settings()
	must.NoError(t, err)

	// Bound in CREATE_VIEW, so DESTROY_VIEW ends it; STOP on the way doesn't.
	received, err := run(t.Context(), discardLogger(), st, "")
	must.NoError(t, err)
	test.Eq(t, []string{"first", "second"}, received)
}

func TestRun_Until(t *testing.T) {
	sc := defaultScenario()
	sc.Step = "0s"
	sc.Until = "pause"
	st, err := sc.settings()
	must.NoError(t, err)

	received, err := run(t.Context(), discardLogger(), st, "")
	must.NoError(t, err)
	test.Eq(t, []string{"A"}, received)
}

// Bound once the lifecycle has ended: the stream fails rather than running unbounded.
func TestRun_BoundAfterEnd(t *testing.T) {
	emit := "late"
	st, err := Scenario{
		Step: "0s",
		Steps: []Step{
			{Phase: bind.PhaseCreate},
			{Phase: bind.PhaseDestroy},
			{Bind: true},
			{Emit: &emit},
		},
	}.settings()
	must.NoError(t, err)

	received, err := run(t.Context(), discardLogger(), st, "")
	must.NoError(t, err)
	test.Len(t, 0, received)
}
