// The httpd binary serves the complaint intake and triage API.
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
		log.Fatalf("httpd: %v", err)
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

	ctx := context.Background()
	comps, err := bootstrap.NewHTTPComponents(ctx, cfg, logg)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := comps.DB.Close(); closeErr != nil {
			logg.Error("closing database", logger.Error(closeErr))
		}
	}()

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- comps.Server.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-shutdown:
		logg.Info("shutdown signal received", logger.String("signal", sig.String()))

		shutdownCtx, cancel := context.WithTimeout(ctx, bootstrap.HTTPShutdownTimeout())
		defer cancel()

		if err := comps.Server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		logg.Info("server stopped gracefully")
	}
	return nil
}
