package bind

import (
	"fmt"
	"log/slog"
)

type config struct {
	log *slog.Logger
}

func buildConfig(opts []Option) config {
	cfg := config{log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

type Option func(*config)

type optionNilArgError struct {
	fn  string
	arg string
}

func (e optionNilArgError) Error() string {
	return fmt.Sprintf("%v: %v must not be nil", e.fn, e.arg)
}

// WithLogger receives Debug records as bindings arm, resolve their terminating phase, and terminate.
func WithLogger(log *slog.Logger) Option {
	if log == nil {
		panic(optionNilArgError{"WithLogger", "log"})
	}

	return func(cfg *config) {
		cfg.log = log
	}
}

// WithBundledOptions applies opts in order, for sharing a set of options between bindings.
func WithBundledOptions(opts ...Option) Option {
	return func(cfg *config) {
		for _, opt := range opts {
			opt(cfg)
		}
	}
}
