package main

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/spikesdivzero/lifecycle-bind"
)

// consumer is the application side of the demo: it just logs what the bound stream delivers.
type consumer struct {
	Log *slog.Logger

	mu       sync.Mutex
	received []string
}

func (c *consumer) Next(v string) {
	c.mu.Lock()
	c.received = append(c.received, v)
	c.mu.Unlock()

	c.Log.Info("Received", "value", v)
}

func (c *consumer) Error(err error) {
	c.Log.Error("Bound stream failed", "err", err)
}

func (c *consumer) Complete() {
	c.Log.Info("Bound stream completed")
}

func (c *consumer) Received() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.received...)
}

func newBinding(driver *Driver, st settings, log *slog.Logger) (bind.Transformer[string], error) {
	if st.until != bind.PhaseNone {
		return bind.Until[string](driver.Phases(), st.until, bind.WithLogger(log))
	}
	return bind.Lifecycle[string](driver.Phases(), st.family, bind.WithLogger(log))
}

// run plays the scenario, returning what the bound stream delivered. A bound stream that failed is
// logged, not returned: showing that is part of the demo.
func run(ctx context.Context, log *slog.Logger, st settings, listen string) ([]string, error) {
	ctx, cancel := context.WithCancel(ctx)

	driver := NewDriver(log.With("prefix", "lifecycle"), st.family)
	feed := bind.NewSubject[string]()
	sink := &consumer{Log: log.With("prefix", "consumer")}

	until, err := newBinding(driver, st, log.With("prefix", "bind"))
	if err != nil {
		cancel()
		return nil, err
	}

	var wg sync.WaitGroup
	var srv *httpServer

	sigint := InterruptListener{
		Log: log.With("prefix", "sigint"),
		OnInterrupt: func() {
			driver.Teardown()
			cancel()
		},
	}
	wg.Go(func() { _ = sigint.Run(ctx) })

	if listen != "" {
		srv = NewHttpDriverServer(log.With("prefix", "http"), listen, driver)
		wg.Go(func() {
			if err := srv.Run(ctx); err != nil {
				log.Error("HTTP driver failed", "err", err)
			}
		})
	}

	defer func() {
		cancel()
		if srv != nil {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error("HTTP driver shutdown failed", "err", err)
			}
		}
		wg.Wait()
	}()

	var sub *bind.Subscription
	for i, s := range st.steps {
		select {
		case <-ctx.Done():
			log.Info("Scenario interrupted", "step", i+1)
			return sink.Received(), nil
		case <-time.After(st.step):
		}

		log.Debug("Step", "n", i+1, "step", s.String())
		switch {
		case s.Bind:
			if sub != nil {
				log.Warn("Already bound, ignoring", "step", i+1)
				continue
			}
			sub = bind.Listen(ctx, until(feed), bind.Observer[string](sink))
		case s.Emit != nil:
			feed.Next(*s.Emit)
		default:
			if err := driver.Advance(s.Phase); err != nil {
				log.Warn("Cannot advance lifecycle", "err", err)
			}
		}
	}

	// Whatever hasn't ended by now ends with the data.
	feed.Complete()
	if sub != nil {
		<-sub.Done()
	}
	return sink.Received(), nil
}
