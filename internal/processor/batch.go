// Package processor drains the submitted-complaint backlog through the
// triage pipeline with a bounded worker pool.
package processor

import (
	"context"
	"sync"
	"time"

	"github.com/civicgrid/triage/internal/domain"
	"github.com/civicgrid/triage/internal/telemetry"
)

const defaultConcurrency = 4

// Logger defines the logging interface
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// Triager runs the pipeline for one stored complaint and persists the
// verdict.
type Triager interface {
	Process(ctx context.Context, c *domain.Complaint) error
}

// ProcessResult holds the outcome of processing a single complaint.
type ProcessResult struct {
	Complaint *domain.Complaint
	Error     error
}

// BatchProcessor processes complaints in parallel using a worker pool.
type BatchProcessor struct {
	triager     Triager
	concurrency int
	telemetry   *telemetry.Provider
	logger      Logger
}

// NewBatchProcessor creates a new batch processor. tp may be nil.
func NewBatchProcessor(triager Triager, concurrency int, tp *telemetry.Provider, logger Logger) *BatchProcessor {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &BatchProcessor{
		triager:     triager,
		concurrency: concurrency,
		telemetry:   tp,
		logger:      logger,
	}
}

// Process triages a batch of complaints using the worker pool.
func (b *BatchProcessor) Process(ctx context.Context, complaints []domain.Complaint) []ProcessResult {
	if len(complaints) == 0 {
		return []ProcessResult{}
	}

	b.logger.Info("Starting batch processing",
		"batch_size", len(complaints),
		"concurrency", b.concurrency,
	)
	startTime := time.Now()

	if b.telemetry != nil {
		b.telemetry.RecordBatchSize(len(complaints))
		b.telemetry.SetQueueDepth(len(complaints))
		b.telemetry.SetActiveWorkers(b.concurrency)
		defer func() {
			b.telemetry.SetQueueDepth(0)
			b.telemetry.SetActiveWorkers(0)
		}()
	}

	jobs := make(chan *domain.Complaint, len(complaints))
	results := make(chan ProcessResult, len(complaints))

	var wg sync.WaitGroup
	for i := 0; i < b.concurrency; i++ {
		wg.Add(1)
		go b.worker(ctx, i, jobs, results, &wg)
	}

	for i := range complaints {
		jobs <- &complaints[i]
	}
	close(jobs)

	wg.Wait()
	close(results)

	processResults := make([]ProcessResult, 0, len(complaints))
	successCount := 0
	for result := range results {
		if result.Error == nil {
			successCount++
		}
		processResults = append(processResults, result)
	}

	duration := time.Since(startTime)
	b.logger.Info("Batch processing complete",
		"total", len(complaints),
		"success", successCount,
		"errors", len(processResults)-successCount,
		"duration_ms", duration.Milliseconds(),
	)

	return processResults
}

// worker processes complaints from the jobs channel.
func (b *BatchProcessor) worker(
	ctx context.Context,
	id int,
	jobs <-chan *domain.Complaint,
	results chan<- ProcessResult,
	wg *sync.WaitGroup,
) {
	defer wg.Done()

	b.logger.Debug("Worker started", "worker_id", id)

	for c := range jobs {
		select {
		case <-ctx.Done():
			b.logger.Warn("Worker stopping due to context cancellation", "worker_id", id)
			return
		default:
		}

		if b.telemetry != nil {
			b.telemetry.RecordPollerLag(ctx, c.CreatedAt)
		}

		err := b.triager.Process(ctx, c)
		if err != nil {
			b.logger.Error("Failed to triage complaint",
				"complaint_id", c.ID,
				"error", err,
			)
			if b.telemetry != nil {
				b.telemetry.RecordTriageFailure(ctx, "poller", "pipeline_error")
			}
		}
		results <- ProcessResult{Complaint: c, Error: err}
	}

	b.logger.Debug("Worker finished", "worker_id", id)
}

// SetConcurrency updates the worker pool concurrency.
func (b *BatchProcessor) SetConcurrency(concurrency int) {
	if concurrency > 0 {
		b.concurrency = concurrency
		b.logger.Info("Concurrency updated", "new_concurrency", concurrency)
	}
}
