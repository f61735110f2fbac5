//nolint:testpackage // White-box test for fence stripping
package geminiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/civicgrid/triage/internal/logger"
)

func generateServer(t *testing.T, text string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, ":generateContent") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("missing api key in query")
		}
		resp := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
			},
		}
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			t.Errorf("encode response: %v", err)
		}
	}))
}

func TestClassifyStripsCodeFences(t *testing.T) {
	srv := generateServer(t, "```json\n{\"category\":\"Street Light\",\"priority\":\"MEDIUM\",\"confidence\":0.9}\n```")
	defer srv.Close()

	c := New("test-key", srv.URL, "", srv.Client(), logger.NewNop())
	got, err := c.Classify(context.Background(), "street light broken")
	if err != nil {
		t.Fatalf("Classify returned unexpected error: %v", err)
	}
	if got.Category != "Street Light" {
		t.Errorf("category = %q", got.Category)
	}
	if got.Confidence != 0.9 {
		t.Errorf("confidence = %f", got.Confidence)
	}
}

func TestClassifyDefaultConfidences(t *testing.T) {
	tests := []struct {
		name string
		body string
		want float64
	}{
		{"named category", `{"category":"Garbage","priority":"MEDIUM"}`, 0.8},
		{"general", `{"category":"General","priority":"LOW"}`, 0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := generateServer(t, tt.body)
			defer srv.Close()

			c := New("test-key", srv.URL, "", srv.Client(), logger.NewNop())
			got, err := c.Classify(context.Background(), "text")
			if err != nil {
				t.Fatalf("Classify returned unexpected error: %v", err)
			}
			if got.Confidence != tt.want {
				t.Errorf("confidence = %f, want %f", got.Confidence, tt.want)
			}
		})
	}
}

func TestTranslate(t *testing.T) {
	srv := generateServer(t, "Water is stagnating near the school")
	defer srv.Close()

	c := New("test-key", srv.URL, "", srv.Client(), logger.NewNop())
	got, err := c.Translate(context.Background(), "பள்ளி அருகே தண்ணீர் தேங்கி உள்ளது")
	if err != nil {
		t.Fatalf("Translate returned unexpected error: %v", err)
	}
	if got != "Water is stagnating near the school" {
		t.Errorf("translation = %q", got)
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct{ in, want string }{
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{`{"a":1}`, `{"a":1}`},
	}
	for _, tt := range tests {
		if got := stripFences(tt.in); got != tt.want {
			t.Errorf("stripFences(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestClassifyUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New("test-key", srv.URL, "", srv.Client(), logger.NewNop())
	if _, err := c.Classify(context.Background(), "text"); err == nil {
		t.Fatal("expected error for 502 response, got nil")
	}
}
