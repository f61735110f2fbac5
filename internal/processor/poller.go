package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/civicgrid/triage/internal/domain"
)

const (
	defaultBatchSize           = 25
	defaultPollIntervalSeconds = 30
	defaultRunsPerSecond       = 2
)

// PendingSource yields submitted complaints awaiting triage.
type PendingSource interface {
	ListPending(ctx context.Context, limit int) ([]domain.Complaint, error)
}

// Poller periodically pulls the submitted backlog and hands it to the
// batch processor. A rate limiter paces pipeline runs so the inference
// providers are not hammered after downtime.
type Poller struct {
	source         PendingSource
	batchProcessor *BatchProcessor
	limiter        *rate.Limiter
	logger         Logger

	batchSize    int
	pollInterval time.Duration
	running      bool
	stopChan     chan struct{}
}

// PollerConfig holds poller configuration.
type PollerConfig struct {
	BatchSize     int
	PollInterval  time.Duration
	RunsPerSecond float64
}

// NewPoller creates a new poller.
func NewPoller(source PendingSource, batchProcessor *BatchProcessor, logger Logger, config PollerConfig) *Poller {
	if config.BatchSize <= 0 {
		config.BatchSize = defaultBatchSize
	}
	if config.PollInterval <= 0 {
		config.PollInterval = defaultPollIntervalSeconds * time.Second
	}
	if config.RunsPerSecond <= 0 {
		config.RunsPerSecond = defaultRunsPerSecond
	}

	return &Poller{
		source:         source,
		batchProcessor: batchProcessor,
		limiter:        rate.NewLimiter(rate.Limit(config.RunsPerSecond), config.BatchSize),
		logger:         logger,
		batchSize:      config.BatchSize,
		pollInterval:   config.PollInterval,
		stopChan:       make(chan struct{}),
	}
}

// Start starts the poller.
func (p *Poller) Start(ctx context.Context) error {
	if p.running {
		return errors.New("poller is already running")
	}

	p.running = true
	p.logger.Info("Poller starting",
		"batch_size", p.batchSize,
		"poll_interval", p.pollInterval,
	)

	go p.run(ctx)
	return nil
}

// Stop stops the poller.
func (p *Poller) Stop() {
	if !p.running {
		return
	}
	p.logger.Info("Poller stopping")
	close(p.stopChan)
	p.running = false
}

// run is the main polling loop.
func (p *Poller) run(ctx context.Context) {
	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	// Drain immediately on start rather than waiting a full interval.
	if err := p.ProcessPending(ctx); err != nil {
		p.logger.Error("Failed to process backlog on startup", "error", err)
	}

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("Poller stopped due to context cancellation")
			return
		case <-p.stopChan:
			p.logger.Info("Poller stopped")
			return
		case <-ticker.C:
			if err := p.ProcessPending(ctx); err != nil {
				p.logger.Error("Failed to process backlog", "error", err)
			}
		}
	}
}

// ProcessPending drains one batch of submitted complaints.
func (p *Poller) ProcessPending(ctx context.Context) error {
	p.logger.Debug("Polling for submitted complaints", "batch_size", p.batchSize)

	pending, err := p.source.ListPending(ctx, p.batchSize)
	if err != nil {
		return fmt.Errorf("query submitted complaints: %w", err)
	}
	if len(pending) == 0 {
		p.logger.Debug("No submitted complaints found")
		return nil
	}

	p.logger.Info("Found submitted complaints", "count", len(pending))

	// Pace the batch against the provider budget before dispatching.
	if waitErr := p.limiter.WaitN(ctx, len(pending)); waitErr != nil {
		return fmt.Errorf("rate limit wait: %w", waitErr)
	}

	results := p.batchProcessor.Process(ctx, pending)

	failed := 0
	for _, r := range results {
		if r.Error != nil {
			failed++
		}
	}
	if failed > 0 {
		p.logger.Warn("Some complaints failed triage",
			"failed_count", failed,
			"total", len(results),
		)
	}
	return nil
}

// IsRunning returns whether the poller is currently running.
func (p *Poller) IsRunning() bool {
	return p.running
}

// GetStats returns poller statistics.
func (p *Poller) GetStats() map[string]any {
	return map[string]any{
		"running":       p.running,
		"batch_size":    p.batchSize,
		"poll_interval": p.pollInterval.String(),
	}
}
