package ocrclient_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/civicgrid/triage/internal/ocrclient"
)

func TestExtract(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ocr" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if _, err := w.Write([]byte(`{"text":"Ward 104 notice board broken"}`)); err != nil {
			t.Errorf("write response: %v", err)
		}
	}))
	defer srv.Close()

	c := ocrclient.NewClient(srv.URL, srv.Client())
	got, err := c.Extract(context.Background(), "/uploads/photo-9.jpg")
	if err != nil {
		t.Fatalf("Extract returned unexpected error: %v", err)
	}
	if got.Text != "Ward 104 notice board broken" {
		t.Errorf("text = %q", got.Text)
	}
}

func TestExtractUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := ocrclient.NewClient(srv.URL, srv.Client())
	_, err := c.Extract(context.Background(), "/uploads/photo-9.jpg")
	if !errors.Is(err, ocrclient.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
