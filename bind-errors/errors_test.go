package bindErrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shoenig/test"
	"github.com/spikesdivzero/lifecycle-bind/internal/phase"
)

func TestConfigError_Basics(t *testing.T) {
	err := error(ConfigError{Func: "SimpleLifecycle", Arg: "phases"})

	test.Eq(t, "SimpleLifecycle: phases must be given", err.Error())
	test.ErrorIs(t, err, ErrConfig)
}

func TestErrorsAs(t *testing.T) {
	err := fmt.Errorf("bound stream: %w", OutOfLifecycleError{Family: phase.FamilyExtended, Phase: phase.Detach})

	test.ErrorIs(t, err, ErrOutOfLifecycle)
	test.False(t, errors.Is(err, ErrUnsupportedPhase))

	var ole OutOfLifecycleError
	test.True(t, errors.As(err, &ole))
	test.Eq(t, phase.Detach, ole.Phase)
}
