//nolint:testpackage // White-box tests for reference table integrity
package data

import (
	"strings"
	"testing"

	"github.com/civicgrid/triage/internal/domain"
)

func TestLandmarksHaveValidEntries(t *testing.T) {
	t.Helper()

	for _, lm := range Landmarks() {
		if lm.Name == "" {
			t.Error("landmark with empty name")
		}
		if lm.Type == "" {
			t.Errorf("landmark %q has empty type", lm.Name)
		}
		if lm.RadiusKM <= 0 {
			t.Errorf("landmark %q has non-positive radius %f", lm.Name, lm.RadiusKM)
		}
		if lm.Lat < 12.5 || lm.Lat > 13.5 || lm.Lon < 79.8 || lm.Lon > 80.5 {
			t.Errorf("landmark %q outside Chennai bounding box: %f,%f", lm.Name, lm.Lat, lm.Lon)
		}
	}
}

func TestLandmarkNamesResolveToZones(t *testing.T) {
	t.Helper()

	// Gazetteer names carry their locality so zone inference can work.
	// Every school and hospital should map to a zone.
	for _, lm := range Landmarks() {
		if lm.Type != domain.LandmarkSchool && lm.Type != domain.LandmarkHospital {
			continue
		}
		found := false
		nameLower := strings.ToLower(lm.Name)
		for _, zone := range Zones() {
			for _, loc := range zone.Localities {
				if strings.Contains(nameLower, loc) || strings.Contains(loc, nameLower) {
					found = true
					break
				}
			}
		}
		if !found {
			t.Errorf("landmark %q does not map to any zone locality", lm.Name)
		}
	}
}

func TestZonesContainKnownLocalities(t *testing.T) {
	t.Helper()

	cases := map[string]string{
		"perambur":   "Thiru Vi Ka Nagar",
		"anna nagar": "Anna Nagar",
		"guindy":     "Adyar",
		"egmore":     "Royapuram",
	}

	for locality, wantZone := range cases {
		var got string
		for _, zone := range Zones() {
			for _, loc := range zone.Localities {
				if loc == locality {
					got = zone.Name
					break
				}
			}
		}
		if got != wantZone {
			t.Errorf("locality %q: got zone %q, want %q", locality, got, wantZone)
		}
	}
}

func TestCategoryKeywordTableOrder(t *testing.T) {
	t.Helper()

	table := CategoryKeywordTable()
	if len(table) == 0 {
		t.Fatal("empty category keyword table")
	}
	if table[0].Category != "Street Light" {
		t.Errorf("first category = %q, want Street Light", table[0].Category)
	}
	for _, entry := range table {
		if len(entry.Keywords) == 0 {
			t.Errorf("category %q has no keywords", entry.Category)
		}
	}
}

func TestFoldLocality(t *testing.T) {
	t.Helper()

	cases := map[string]string{
		"  Perambur ": "perambur",
		"Adyār":       "adyar",
		"GUINDY":      "guindy",
	}
	for in, want := range cases {
		if got := FoldLocality(in); got != want {
			t.Errorf("FoldLocality(%q) = %q, want %q", in, got, want)
		}
	}
}
