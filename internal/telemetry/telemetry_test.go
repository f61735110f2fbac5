package telemetry_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/civicgrid/triage/internal/telemetry"
)

// providerOnce ensures we only create one Provider per test run to avoid
// duplicate Prometheus metric registration errors from promauto's global registry
var (
	testProvider *telemetry.Provider
	providerOnce sync.Once
)

func getTestProvider(t *testing.T) *telemetry.Provider {
	t.Helper()
	providerOnce.Do(func() {
		testProvider = telemetry.NewProvider()
	})
	return testProvider
}

func TestNewProvider(t *testing.T) {
	provider := getTestProvider(t)
	if provider == nil {
		t.Fatal("expected non-nil provider")
	}
	if provider.Tracer == nil {
		t.Error("expected non-nil tracer")
	}
	if provider.Metrics == nil {
		t.Error("expected non-nil metrics")
	}
}

func TestRecordTriage(t *testing.T) {
	provider := getTestProvider(t)
	ctx := context.Background()

	// Should not panic
	provider.RecordTriage(ctx, "api", true, 100*time.Millisecond)
	provider.RecordTriage(ctx, "poller", false, 50*time.Millisecond)
	provider.RecordTriageFailure(ctx, "poller", "pipeline_error")
}

func TestRecordVerdict(t *testing.T) {
	provider := getTestProvider(t)
	ctx := context.Background()

	// Should not panic
	provider.RecordVerdict(ctx, "Potholes", "CRITICAL", "Validated", true)
	provider.RecordVerdict(ctx, "", "LOW", "Needs_Review", false)
	provider.RecordStage(ctx, "classify", 5*time.Millisecond)
	provider.RecordProviderFailure(ctx, "groq")
}

func TestSetQueueDepth(t *testing.T) {
	provider := getTestProvider(t)

	// Should not panic
	provider.SetQueueDepth(100)
	provider.SetActiveWorkers(5)
	provider.RecordBatchSize(25)
	provider.RecordPollerLag(context.Background(), time.Now().Add(-time.Minute))
}
