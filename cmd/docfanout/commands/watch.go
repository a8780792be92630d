package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"git.home.luguber.info/inful/docfanout/internal/build"
	"git.home.luguber.info/inful/docfanout/internal/config"
	"git.home.luguber.info/inful/docfanout/internal/logfields"
	"git.home.luguber.info/inful/docfanout/internal/metrics"
	"git.home.luguber.info/inful/docfanout/internal/watch"
)

// WatchCmd implements the 'watch' command: one initial build, then a
// debounced full rebuild on every source change until interrupted.
type WatchCmd struct {
	Metrics string `help:"Serve Prometheus metrics on this address (e.g. :9090); disabled when empty"`
}

func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.Source.GitURL != "" {
		return fmt.Errorf("watch mode requires a local source directory")
	}

	recorder := metrics.Recorder(metrics.NoopRecorder{})
	if w.Metrics != "" {
		registry := prometheus.NewRegistry()
		recorder = metrics.NewPrometheusRecorder(registry)
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
			slog.Info("Serving metrics", slog.String("address", w.Metrics))
			if err := http.ListenAndServe(w.Metrics, mux); err != nil {
				slog.Error("Metrics server failed", logfields.Error(err))
			}
		}()
	}

	rebuild := func() error {
		_, err := build.NewOrchestrator(cfg.Source.Directory, cfg.Output.Directory).
			WithRecorder(recorder).
			Run()
		return err
	}

	if err := rebuild(); err != nil {
		// Keep watching: the next save can fix the source.
		slog.Error("Initial build failed", logfields.Error(err))
	}

	watcher, err := watch.New(cfg.Source.Directory, rebuild)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
