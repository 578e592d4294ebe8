package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/spikesdivzero/lifecycle-bind"
)

// An HTTP way to push the lifecycle around while a scenario is running:
//
//	curl -X POST localhost:8844/phase/pause
//	curl localhost:8844/phase
type httpServer struct {
	Log *slog.Logger

	addr string
	mux  *http.ServeMux

	srv *http.Server
}

func NewHttpDriverServer(log *slog.Logger, addr string, driver *Driver) *httpServer {
	s := &httpServer{
		Log:  log,
		addr: addr,
		mux:  http.NewServeMux(),
	}

	s.mux.HandleFunc("GET /phase", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, driver.Current())
	})

	s.mux.HandleFunc("POST /phase/{name}", func(w http.ResponseWriter, r *http.Request) {
		p, err := bind.ParsePhase(r.PathValue("name"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := driver.Advance(p); err != nil {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		fmt.Fprintln(w, p)
	})

	s.mux.HandleFunc("POST /teardown", func(w http.ResponseWriter, r *http.Request) {
		driver.Teardown()
		fmt.Fprintln(w, driver.Current())
	})

	s.mux.HandleFunc("/_/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("happy as a clam"))
	})

	s.srv = &http.Server{
		Addr:    s.addr,
		Handler: s.mux,
	}
	return s
}

func (h *httpServer) Run(ctx context.Context) error {
	h.Log.Info("Listening", "addr", h.addr)

	err := h.srv.ListenAndServe()
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return fmt.Errorf("http.Server.ListenAndServe returned %w", err)
}

func (h *httpServer) Shutdown(ctx context.Context) error {
	err := h.srv.Shutdown(ctx)
	if err != nil {
		return fmt.Errorf("http.Server.Shutdown returned %w", err)
	}

	return nil
}
