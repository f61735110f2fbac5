package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/civicgrid/triage/internal/api"
	"github.com/civicgrid/triage/internal/config"
	"github.com/civicgrid/triage/internal/logger"
	"github.com/civicgrid/triage/internal/logging"
	"github.com/civicgrid/triage/internal/processor"
	"github.com/civicgrid/triage/internal/service"
	"github.com/civicgrid/triage/internal/telemetry"
)

const defaultHTTPTimeout = 30 * time.Second

// HTTPComponents holds everything the HTTP binary needs.
type HTTPComponents struct {
	DB     *sqlx.DB
	Server *api.Server
}

// NewHTTPComponents creates all components for the HTTP server.
func NewHTTPComponents(ctx context.Context, cfg *config.Config, log logger.Logger) (*HTTPComponents, error) {
	dbComps, err := SetupDatabase(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}

	reviews := SetupReviewStore(ctx, cfg, log)
	tp := telemetry.NewProvider()
	pc := BuildPipeline(cfg, reviews, tp, log)
	svc := service.NewComplaintService(dbComps.Complaints, pc.Orchestrator, pc.Matcher, log)

	adapter := logging.NewAdapter(log)
	handler := api.NewHandler(svc, dbComps.DB, cfg.Service.Version, adapter)
	for name, check := range pc.SidecarChecks {
		handler.AddSidecar(name, check)
	}
	server := api.NewServer(handler, tp.Handler(), api.ServerConfig{
		Port:         cfg.Service.Port,
		ReadTimeout:  defaultHTTPTimeout,
		WriteTimeout: defaultHTTPTimeout,
		Debug:        cfg.Service.Debug,
	}, adapter)

	return &HTTPComponents{
		DB:     dbComps.DB,
		Server: server,
	}, nil
}

// ProcessorComponents holds everything the background processor needs.
type ProcessorComponents struct {
	DB     *sqlx.DB
	Poller *processor.Poller
}

// NewProcessorComponents creates all components for the backlog
// processor.
func NewProcessorComponents(ctx context.Context, cfg *config.Config, log logger.Logger) (*ProcessorComponents, error) {
	dbComps, err := SetupDatabase(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}

	reviews := SetupReviewStore(ctx, cfg, log)
	tp := telemetry.NewProvider()
	pc := BuildPipeline(cfg, reviews, tp, log)
	svc := service.NewComplaintService(dbComps.Complaints, pc.Orchestrator, pc.Matcher, log)

	adapter := logging.NewAdapter(log)
	batch := processor.NewBatchProcessor(svc, cfg.Service.Concurrency, tp, adapter)
	poller := processor.NewPoller(svc, batch, adapter, processor.PollerConfig{
		BatchSize:     cfg.Service.BatchSize,
		PollInterval:  cfg.Service.PollInterval,
		RunsPerSecond: cfg.Service.RunsPerSecond,
	})

	return &ProcessorComponents{
		DB:     dbComps.DB,
		Poller: poller,
	}, nil
}

// HTTPShutdownTimeout returns the timeout for HTTP server graceful shutdown.
func HTTPShutdownTimeout() time.Duration {
	return defaultHTTPTimeout
}
