// The processor binary drains the submitted-complaint backlog through
// the triage pipeline.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/civicgrid/triage/internal/bootstrap"
	"github.com/civicgrid/triage/internal/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("processor: %v", err)
	}
}

func run() error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	logg, err := bootstrap.CreateLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logg.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	comps, err := bootstrap.NewProcessorComponents(ctx, cfg, logg)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := comps.DB.Close(); closeErr != nil {
			logg.Error("closing database", logger.Error(closeErr))
		}
	}()

	if err := comps.Poller.Start(ctx); err != nil {
		return err
	}
	logg.Info("processor started, polling for submitted complaints")

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	sig := <-shutdown

	logg.Info("shutdown signal received", logger.String("signal", sig.String()))
	comps.Poller.Stop()
	logg.Info("processor stopped")
	return nil
}
