//nolint:testpackage // White-box tests for resolver internals
package location

import (
	"context"
	"errors"
	"testing"

	"github.com/civicgrid/triage/internal/data"
	"github.com/civicgrid/triage/internal/domain"
	"github.com/civicgrid/triage/internal/logger"
)

type mockGeocoder struct {
	localities []string
	err        error
	calls      int
}

func (m *mockGeocoder) Lookup(_ context.Context, _, _ float64) ([]string, error) {
	m.calls++
	return m.localities, m.err
}

func newTestResolver(g Geocoder) *Resolver {
	return NewResolver(data.Landmarks(), data.Zones(), g, logger.NewNop())
}

func TestParseGPS(t *testing.T) {
	t.Helper()

	lat, lon, ok := ParseGPS(" 13.0850, 80.2100 ")
	if !ok {
		t.Fatal("expected valid parse")
	}
	if lat != 13.0850 || lon != 80.2100 {
		t.Errorf("got %f,%f", lat, lon)
	}

	for _, bad := range []string{"", "13.0850", "abc,def", "1,2,3"} {
		if _, _, ok := ParseGPS(bad); ok {
			t.Errorf("ParseGPS(%q) = ok, want failure", bad)
		}
	}
}

func TestResolveLandmarkFromGPS(t *testing.T) {
	t.Helper()

	r := newTestResolver(nil)
	typ, name := r.resolveLandmark("13.0850,80.2100", "There is a huge pothole here")

	if typ != domain.LandmarkSchool {
		t.Errorf("type = %q, want School", typ)
	}
	if name != "DAV School (Anna Nagar)" {
		t.Errorf("name = %q", name)
	}
}

func TestResolveLandmarkOutsideAllRadii(t *testing.T) {
	t.Helper()

	r := newTestResolver(nil)
	typ, name := r.resolveLandmark("12.9716,77.5946", "Issue in town")

	if typ != domain.LandmarkResidential {
		t.Errorf("type = %q, want Residential", typ)
	}
	if name != "" {
		t.Errorf("name = %q, want empty", name)
	}
}

func TestResolveLandmarkFromTextName(t *testing.T) {
	t.Helper()

	r := newTestResolver(nil)
	typ, name := r.resolveLandmark("", "Garbage pileup outside Apollo Hospital gate")

	if typ != domain.LandmarkHospital {
		t.Errorf("type = %q, want Hospital", typ)
	}
	if name != "Apollo Hospital (Thousand Lights)" {
		t.Errorf("name = %q", name)
	}
}

func TestResolveLandmarkGenericKeyword(t *testing.T) {
	t.Helper()

	r := newTestResolver(nil)
	typ, name := r.resolveLandmark("", "water logging near the railway station entrance")

	if typ != domain.LandmarkTransportHub {
		t.Errorf("type = %q, want Transport Hub", typ)
	}
	if name != "" {
		t.Errorf("name = %q, want empty for generic keyword", name)
	}
}

func TestResolveZoneNearLandmark(t *testing.T) {
	t.Helper()

	r := newTestResolver(nil)
	zone := r.ResolveZone(context.Background(), "13.0850,80.2100", "There is a huge pothole here")

	if zone != "Anna Nagar Zone" {
		t.Errorf("zone = %q, want Anna Nagar Zone", zone)
	}
}

func TestResolveZoneLandmarkNameInsideLocality(t *testing.T) {
	t.Helper()

	// Landmark names shorter than the locality they sit in must still
	// map to the locality's zone.
	landmarks := []domain.LandmarkEntry{
		{Name: "Besant", Type: domain.LandmarkSchool, Lat: 12.9980, Lon: 80.2665, RadiusKM: 0.5},
	}
	r := NewResolver(landmarks, data.Zones(), nil, logger.NewNop())

	zone := r.ResolveZone(context.Background(), "12.9982,80.2660", "pothole near the school gate")

	if zone != "Adyar Zone" {
		t.Errorf("zone = %q, want Adyar Zone via besant nagar locality", zone)
	}
}

func TestResolveZoneFromTextLocality(t *testing.T) {
	t.Helper()

	r := newTestResolver(nil)
	zone := r.ResolveZone(context.Background(), "", "Garbage overflow in Perambur market area")

	if zone != "Thiru Vi Ka Nagar Zone" {
		t.Errorf("zone = %q, want Thiru Vi Ka Nagar Zone", zone)
	}
}

func TestResolveZoneFarOutsideCity(t *testing.T) {
	t.Helper()

	r := newTestResolver(nil)
	zone := r.ResolveZone(context.Background(), "12.9716,77.5946", "Issue in Bangalore")

	if zone != "" {
		t.Errorf("zone = %q, want empty", zone)
	}
}

func TestResolveZoneViaGeocoder(t *testing.T) {
	t.Helper()

	g := &mockGeocoder{localities: []string{"Velachery"}}
	r := newTestResolver(g)

	// Point in Chennai but outside the 1 km landmark inference radius.
	zone := r.ResolveZone(context.Background(), "12.9758,80.2205", "water stagnation near my street")

	if zone != "Adyar Zone" {
		t.Errorf("zone = %q, want Adyar Zone", zone)
	}
	if g.calls != 1 {
		t.Errorf("geocoder calls = %d, want 1", g.calls)
	}
}

func TestResolveZoneGeocoderFailureIsSwallowed(t *testing.T) {
	t.Helper()

	g := &mockGeocoder{err: errors.New("timeout")}
	r := newTestResolver(g)

	zone := r.ResolveZone(context.Background(), "12.9758,80.2205", "water stagnation near velachery lake")

	// Geocoder failed; text fallback still finds the locality.
	if zone != "Adyar Zone" {
		t.Errorf("zone = %q, want Adyar Zone via text fallback", zone)
	}
}

func TestDetectUrgency(t *testing.T) {
	t.Helper()

	r := newTestResolver(nil)
	if !r.DetectUrgency("Tree fell, road completely BLOCKED") {
		t.Error("expected urgency for blocked road")
	}
	if r.DetectUrgency("garbage not collected this week") {
		t.Error("unexpected urgency")
	}
}

func TestResolveContext(t *testing.T) {
	t.Helper()

	r := newTestResolver(nil)
	got := r.ResolveContext(context.Background(), "13.0850,80.2100", "There is a huge pothole here")

	if got.LandmarkType != domain.LandmarkSchool {
		t.Errorf("landmark type = %q", got.LandmarkType)
	}
	if got.Zone != "Anna Nagar Zone" {
		t.Errorf("zone = %q", got.Zone)
	}
	if got.UrgencyFound {
		t.Error("unexpected urgency")
	}
}
