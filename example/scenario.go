package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/spikesdivzero/lifecycle-bind"
)

// Scenario is a scripted run of the demo, as read from a TOML file:
//
//	family = "simple"
//	step = "300ms"
//
//	[[steps]]
//	phase = "CREATE"
//	[[steps]]
//	bind = true
//	[[steps]]
//	emit = "A"
type Scenario struct {
	Family string `toml:"family"`
	Until  string `toml:"until"`
	Step   string `toml:"step"`
	Steps  []Step `toml:"steps"`
}

// Step does exactly one thing: advance the lifecycle, emit a data value, or subscribe the bound stream.
type Step struct {
	Phase bind.Phase `toml:"phase"`
	Emit  *string    `toml:"emit"`
	Bind  bool       `toml:"bind"`
}

func (s Step) String() string {
	switch {
	case s.Bind:
		return "bind"
	case s.Emit != nil:
		return fmt.Sprintf("emit %q", *s.Emit)
	default:
		return "phase " + s.Phase.String()
	}
}

// The built-in run: bound while STARTed, so the stream ends at STOP, before C is emitted.
func defaultScenario() Scenario {
	emit := func(s string) Step { return Step{Emit: &s} }
	return Scenario{
		Family: "simple",
		Step:   "300ms",
		Steps: []Step{
			{Phase: bind.PhaseCreate},
			{Phase: bind.PhaseStart},
			{Bind: true},
			emit("A"),
			{Phase: bind.PhaseResume},
			{Phase: bind.PhasePause},
			emit("B"),
			{Phase: bind.PhaseStop},
			emit("C"),
			{Phase: bind.PhaseDestroy},
		},
	}
}

func LoadScenario(path string) (Scenario, error) {
	var sc Scenario
	b, err := os.ReadFile(path)
	if err != nil {
		return sc, err
	}
	if err := toml.Unmarshal(b, &sc); err != nil {
		return sc, err
	}
	return sc, nil
}

// settings is a Scenario after validation.
type settings struct {
	family bind.Family
	until  bind.Phase // PhaseNone binds to the family's lifecycle instead
	step   time.Duration
	steps  []Step
}

func (sc Scenario) settings() (settings, error) {
	var st settings
	var err error

	if st.family, err = parseFamily(sc.Family); err != nil {
		return st, err
	}

	if sc.Until != "" {
		if st.until, err = bind.ParsePhase(sc.Until); err != nil {
			return st, fmt.Errorf("until: %w", err)
		}
	}

	if sc.Step != "" {
		if st.step, err = time.ParseDuration(sc.Step); err != nil {
			return st, fmt.Errorf("step: %w", err)
		}
		if st.step < 0 {
			return st, errors.New("step: must not be negative")
		}
	}

	if len(sc.Steps) == 0 {
		return st, errors.New("scenario has no steps")
	}
	for i, s := range sc.Steps {
		n := 0
		if s.Phase != bind.PhaseNone {
			n++
		}
		if s.Emit != nil {
			n++
		}
		if s.Bind {
			n++
		}
		if n != 1 {
			return st, fmt.Errorf("step %d: exactly one of phase, emit or bind must be set", i+1)
		}
	}
	st.steps = sc.Steps

	return st, nil
}

func parseFamily(s string) (bind.Family, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "simple":
		return bind.FamilySimple, nil
	case "extended":
		return bind.FamilyExtended, nil
	}
	return 0, fmt.Errorf("unknown lifecycle family %q (want simple or extended)", s)
}
