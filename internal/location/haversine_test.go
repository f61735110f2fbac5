//nolint:testpackage // White-box tests for distance math
package location

import (
	"math"
	"testing"
)

func TestHaversineSymmetric(t *testing.T) {
	t.Helper()

	d1 := Haversine(13.0850, 80.2100, 13.0827, 80.2707)
	d2 := Haversine(13.0827, 80.2707, 13.0850, 80.2100)

	if math.Abs(d1-d2) > 1e-9 {
		t.Errorf("distance not symmetric: %f vs %f", d1, d2)
	}
}

func TestHaversineZeroForSamePoint(t *testing.T) {
	t.Helper()

	if d := Haversine(13.0850, 80.2100, 13.0850, 80.2100); d != 0 {
		t.Errorf("distance(A,A) = %f, want 0", d)
	}
}

func TestHaversineKnownDistance(t *testing.T) {
	t.Helper()

	// Chennai Central to Chennai Airport is roughly 15-17 km.
	d := Haversine(13.0827, 80.2707, 12.9941, 80.1709)
	if d < 13 || d > 19 {
		t.Errorf("Central to Airport distance = %f km, want roughly 15", d)
	}
}

func TestHaversineFarCity(t *testing.T) {
	t.Helper()

	// Chennai to Bangalore is roughly 290 km great-circle.
	d := Haversine(13.0827, 80.2707, 12.9716, 77.5946)
	if d < 250 || d > 330 {
		t.Errorf("Chennai to Bangalore distance = %f km, want roughly 290", d)
	}
}
