package groqclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/civicgrid/triage/internal/groqclient"
	"github.com/civicgrid/triage/internal/logger"
)

func chatServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			t.Errorf("encode response: %v", err)
		}
	}))
}

func TestClassifyParsesVerdict(t *testing.T) {
	srv := chatServer(t, `{"category":"Potholes","priority":"HIGH","confidence":0.85}`)
	defer srv.Close()

	c := groqclient.New("test-key", srv.URL, "", logger.NewNop())
	got, err := c.Classify(context.Background(), "huge pothole on main road")
	if err != nil {
		t.Fatalf("Classify returned unexpected error: %v", err)
	}

	if got.Category != "Potholes" {
		t.Errorf("category = %q", got.Category)
	}
	if got.Priority != "HIGH" {
		t.Errorf("priority = %q", got.Priority)
	}
	if got.Confidence != 0.85 {
		t.Errorf("confidence = %f", got.Confidence)
	}
}

func TestClassifyDefaultsConfidence(t *testing.T) {
	srv := chatServer(t, `{"category":"Garbage","priority":"MEDIUM"}`)
	defer srv.Close()

	c := groqclient.New("test-key", srv.URL, "", logger.NewNop())
	got, err := c.Classify(context.Background(), "garbage pile")
	if err != nil {
		t.Fatalf("Classify returned unexpected error: %v", err)
	}
	if got.Confidence != 0.7 {
		t.Errorf("confidence = %f, want default 0.7", got.Confidence)
	}
}

func TestClassifyGeneralGetsLowConfidence(t *testing.T) {
	srv := chatServer(t, `{"category":"General","priority":"LOW"}`)
	defer srv.Close()

	c := groqclient.New("test-key", srv.URL, "", logger.NewNop())
	got, err := c.Classify(context.Background(), "something vague")
	if err != nil {
		t.Fatalf("Classify returned unexpected error: %v", err)
	}
	if got.Confidence != 0.2 {
		t.Errorf("confidence = %f, want 0.2 for General", got.Confidence)
	}
}

func TestTranslate(t *testing.T) {
	srv := chatServer(t, "The street light near my house is not working")
	defer srv.Close()

	c := groqclient.New("test-key", srv.URL, "", logger.NewNop())
	got, err := c.Translate(context.Background(), "theru vilakku work aagala")
	if err != nil {
		t.Fatalf("Translate returned unexpected error: %v", err)
	}
	if got != "The street light near my house is not working" {
		t.Errorf("translation = %q", got)
	}
}

func TestClassifyServerErrorWrapsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := groqclient.New("test-key", srv.URL, "", logger.NewNop())
	if _, err := c.Classify(context.Background(), "text"); err == nil {
		t.Fatal("expected error for 503 response, got nil")
	}
}
