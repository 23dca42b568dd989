package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/autoaudit/autoaudit/internal/audit"
	"github.com/autoaudit/autoaudit/internal/benchmark"
	"github.com/autoaudit/autoaudit/internal/config"
	httpapp "github.com/autoaudit/autoaudit/internal/http"
	"github.com/autoaudit/autoaudit/internal/http/handlers"
	"github.com/autoaudit/autoaudit/internal/logging"
	"github.com/autoaudit/autoaudit/internal/metrics"
	"github.com/autoaudit/autoaudit/internal/runlog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dashboard HTTP server.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.BootstrapFromEnv(logging.BootstrapOptions{Command: "autoaudit serve"})
	if err != nil {
		return err
	}

	catalog, err := benchmark.LoadCatalog()
	if err != nil {
		return err
	}

	h := &handlers.Handlers{
		Cfg:     cfg,
		Catalog: catalog,
		RunLog:  runlog.New(cfg.RunLogCapacity),
	}
	if cfg.ResultsPath != "" {
		h.Override = audit.FileSource{Path: cfg.ResultsPath}
		logger.Info("serving results from file", "path", cfg.ResultsPath)
	}

	es := httpapp.NewEchoServer(h, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           es.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	_, metricsErrCh := metrics.StartServer(ctx, cfg.MetricsAddr)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if metricsErrCh != nil {
		g.Go(func() error {
			select {
			case err := <-metricsErrCh:
				return err
			case <-gctx.Done():
				return nil
			}
		})
	}

	return g.Wait()
}
