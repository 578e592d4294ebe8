package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/dpotapov/slogpfx"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// This isn't really necessary for the example, but it helps a bit to be able to see some color
// when following which phase ended which stream.
func colorLogger(level slog.Level) *slog.Logger {
	h := tint.NewHandler(colorable.NewColorable(os.Stdout), &tint.Options{
		Level: level,
	})

	prefixed := slogpfx.NewHandler(h, &slogpfx.HandlerOptions{
		PrefixKeys: []string{"prefix"},
	})

	return slog.New(prefixed)
}

var exampleUsage = strings.TrimSpace(`
  lifecycle-demo
  lifecycle-demo --family extended --scenario ./extended.toml -v
  lifecycle-demo --until STOP --listen :8844 --step 2s
`)

func main() {
	var (
		scenarioPath string
		family       string
		until        string
		step         time.Duration
		listen       string
		verbose      bool
	)

	root := &cobra.Command{
		Use:   "lifecycle-demo",
		Short: "Replay a lifecycle and watch a bound stream end at the matching phase",
		Long: strings.TrimSpace(`
Replays a scripted lifecycle against a stream of data values. The data stream is bound to the lifecycle
partway through, and completes when the phase pairing with the one it was bound in comes around.

^C tears the lifecycle down through its remaining phases before exiting.`),
		Example:      exampleUsage,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			log := colorLogger(level)

			sc := defaultScenario()
			if scenarioPath != "" {
				var err error
				if sc, err = LoadScenario(scenarioPath); err != nil {
					return fmt.Errorf("load scenario: %w", err)
				}
			}

			// Flags given explicitly win over the scenario file.
			cmd.Flags().Visit(func(f *pflag.Flag) {
				switch f.Name {
				case "family":
					sc.Family = family
				case "until":
					sc.Until = until
				case "step":
					sc.Step = step.String()
				}
			})

			st, err := sc.settings()
			if err != nil {
				return err
			}

			received, err := run(cmd.Context(), log, st, listen)
			if err != nil {
				return err
			}
			log.Info("Finished", "received", received)
			return nil
		},
	}

	flags := root.Flags()
	flags.StringVarP(&scenarioPath, "scenario", "s", "", "TOML scenario file (default: a built-in run)")
	flags.StringVar(&family, "family", "simple", "lifecycle family: simple or extended")
	flags.StringVar(&until, "until", "", "end at this phase instead of the family's pairing")
	flags.DurationVar(&step, "step", 300*time.Millisecond, "delay between scenario steps")
	flags.StringVar(&listen, "listen", "", "serve the HTTP lifecycle driver on this address, e.g. :8844")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log at debug level, including the binding's own records")

	if err := root.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
