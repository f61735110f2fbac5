//nolint:testpackage // White-box tests for poll loop internals
package processor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/civicgrid/triage/internal/domain"
)

type stubSource struct {
	pending []domain.Complaint
	err     error
	calls   int
}

func (s *stubSource) ListPending(_ context.Context, _ int) ([]domain.Complaint, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	out := s.pending
	s.pending = nil
	return out, nil
}

func newTestPoller(source PendingSource, triager Triager) *Poller {
	b := NewBatchProcessor(triager, 2, nil, testLogger{})
	return NewPoller(source, b, testLogger{}, PollerConfig{
		BatchSize:     10,
		PollInterval:  time.Hour,
		RunsPerSecond: 1000,
	})
}

func TestProcessPendingDrainsBacklog(t *testing.T) {
	triager := &stubTriager{}
	source := &stubSource{pending: makeComplaints("a", "b", "c")}
	p := newTestPoller(source, triager)

	if err := p.ProcessPending(context.Background()); err != nil {
		t.Fatalf("ProcessPending returned unexpected error: %v", err)
	}
	if len(triager.seen) != 3 {
		t.Errorf("triaged %d complaints, want 3", len(triager.seen))
	}
}

func TestProcessPendingEmptyBacklog(t *testing.T) {
	triager := &stubTriager{}
	p := newTestPoller(&stubSource{}, triager)

	if err := p.ProcessPending(context.Background()); err != nil {
		t.Fatalf("ProcessPending returned unexpected error: %v", err)
	}
	if len(triager.seen) != 0 {
		t.Errorf("triaged %d complaints, want 0", len(triager.seen))
	}
}

func TestProcessPendingSourceError(t *testing.T) {
	p := newTestPoller(&stubSource{err: errors.New("db down")}, &stubTriager{})
	if err := p.ProcessPending(context.Background()); err == nil {
		t.Fatal("expected error when source fails")
	}
}

func TestPollerStartStop(t *testing.T) {
	source := &stubSource{}
	p := newTestPoller(source, &stubTriager{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := p.Start(ctx); err != nil {
		t.Fatalf("Start returned unexpected error: %v", err)
	}
	if !p.IsRunning() {
		t.Error("expected poller running")
	}
	if err := p.Start(ctx); err == nil {
		t.Error("expected error starting twice")
	}

	p.Stop()
	if p.IsRunning() {
		t.Error("expected poller stopped")
	}

	stats := p.GetStats()
	if stats["batch_size"] != 10 {
		t.Errorf("stats batch_size = %v, want 10", stats["batch_size"])
	}
}
