package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
)

// On ^C the demo doesn't just exit: it tears the lifecycle down, so you can watch every bound stream reach
// its terminating phase on the way out.
type InterruptListener struct {
	Log         *slog.Logger
	OnInterrupt func()

	runCtxCancel context.CancelFunc
}

func (il *InterruptListener) Run(ctx context.Context) error {
	ctx, il.runCtxCancel = context.WithCancel(ctx)
	defer il.runCtxCancel()

	signalCh := make(chan os.Signal, 1)

	signal.Notify(signalCh, os.Interrupt)
	defer signal.Stop(signalCh)

	select {
	case <-signalCh:
		il.Log.Info("Received SIGINT")
		if il.OnInterrupt != nil {
			il.OnInterrupt()
		}
	case <-ctx.Done():
		il.Log.Debug("Context cancelled (could be via Shutdown)")
	}

	return nil
}

func (il *InterruptListener) Shutdown(ctx context.Context) error {
	if il.runCtxCancel == nil {
		return errors.New("runCtxCancel isn't set (run not started?)")
	}

	il.runCtxCancel()
	return nil
}
