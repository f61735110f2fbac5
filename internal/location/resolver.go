// Package location resolves GPS coordinates and text mentions to a
// landmark, an administrative zone, and an urgency signal.
package location

import (
	"context"
	"strconv"
	"strings"

	"github.com/civicgrid/triage/internal/data"
	"github.com/civicgrid/triage/internal/domain"
	"github.com/civicgrid/triage/internal/logger"
)

// zoneInferenceRadiusKM bounds how far a GPS point may be from a known
// landmark for that landmark's locality to decide the zone.
const zoneInferenceRadiusKM = 1.0

// urgencyKeywords flag a complaint as needing immediate attention.
var urgencyKeywords = []string{
	"emergency", "danger", "fire", "accident", "urgent", "blocked", "stuck",
}

// genericLandmarkKeywords give a coarse landmark type when no gazetteer
// name appears in the text. Checked in order.
var genericLandmarkKeywords = []struct {
	keyword string
	typ     string
}{
	{"school", domain.LandmarkSchool},
	{"hospital", domain.LandmarkHospital},
	{"station", domain.LandmarkTransportHub},
	{"college", domain.LandmarkCollege},
}

// Geocoder is the reverse-geocoding collaborator. Implementations must
// bound their own timeouts; errors are swallowed by the resolver.
type Geocoder interface {
	Lookup(ctx context.Context, lat, lon float64) ([]string, error)
}

// Context is the resolved location context for one complaint.
type Context struct {
	LandmarkType string
	LandmarkName string
	Zone         string
	UrgencyFound bool
}

// Resolver resolves landmarks and zones against the static gazetteer,
// falling back to an optional external reverse geocoder.
type Resolver struct {
	landmarks []domain.LandmarkEntry
	zones     []domain.ZoneEntry
	geocoder  Geocoder
	logger    logger.Logger
}

// NewResolver creates a resolver. The geocoder may be nil, in which case
// the external fallback is skipped.
func NewResolver(landmarks []domain.LandmarkEntry, zones []domain.ZoneEntry, geocoder Geocoder, log logger.Logger) *Resolver {
	return &Resolver{
		landmarks: landmarks,
		zones:     zones,
		geocoder:  geocoder,
		logger:    log,
	}
}

// ResolveContext resolves the full location context for a complaint from
// its GPS string and merged text.
func (r *Resolver) ResolveContext(ctx context.Context, gps, text string) Context {
	landmarkType, landmarkName := r.resolveLandmark(gps, text)

	return Context{
		LandmarkType: landmarkType,
		LandmarkName: landmarkName,
		Zone:         r.ResolveZone(ctx, gps, text),
		UrgencyFound: r.DetectUrgency(text),
	}
}

// resolveLandmark finds the nearest gazetteer landmark for a GPS fix, or
// falls back to scanning the text for landmark names and generic
// keywords. Defaults to Residential with no name.
func (r *Resolver) resolveLandmark(gps, text string) (string, string) {
	if lat, lon, ok := ParseGPS(gps); ok {
		for _, lm := range r.landmarks {
			if Haversine(lat, lon, lm.Lat, lm.Lon) <= lm.RadiusKM {
				return lm.Type, lm.Name
			}
		}
	}

	textLower := strings.ToLower(text)
	for _, lm := range r.landmarks {
		nameLower := strings.ToLower(lm.Name)
		// Accept the bare name without its locality suffix too.
		bare := strings.TrimSpace(strings.SplitN(nameLower, "(", 2)[0])
		if strings.Contains(textLower, nameLower) || (bare != "" && strings.Contains(textLower, bare)) {
			return lm.Type, lm.Name
		}
	}

	for _, g := range genericLandmarkKeywords {
		if strings.Contains(textLower, g.keyword) {
			return g.typ, ""
		}
	}

	return domain.LandmarkResidential, ""
}

// ResolveZone determines the administrative zone for a complaint.
// GPS-adjacent landmarks are tried first, then the external reverse
// geocoder, then locality mentions in the text. Returns "" when nothing
// matches; external failures are treated as no zone, never fatal.
func (r *Resolver) ResolveZone(ctx context.Context, gps, text string) string {
	if lat, lon, ok := ParseGPS(gps); ok {
		if zone := r.zoneNearLandmark(lat, lon); zone != "" {
			return zone
		}
		if zone := r.zoneFromGeocoder(ctx, lat, lon); zone != "" {
			return zone
		}
	}

	return r.zoneFromText(text)
}

// zoneNearLandmark maps a GPS point within 1 km of a known landmark to a
// zone via the landmark's locality name.
func (r *Resolver) zoneNearLandmark(lat, lon float64) string {
	for _, lm := range r.landmarks {
		if Haversine(lat, lon, lm.Lat, lm.Lon) > zoneInferenceRadiusKM {
			continue
		}
		nameLower := strings.ToLower(lm.Name)
		for _, zone := range r.zones {
			for _, loc := range zone.Localities {
				if strings.Contains(nameLower, loc) || strings.Contains(loc, nameLower) {
					return zone.Name + " Zone"
				}
			}
		}
	}
	return ""
}

// zoneFromGeocoder asks the external reverse geocoder for locality
// candidates and matches them against the zone table.
func (r *Resolver) zoneFromGeocoder(ctx context.Context, lat, lon float64) string {
	if r.geocoder == nil {
		return ""
	}

	localities, err := r.geocoder.Lookup(ctx, lat, lon)
	if err != nil {
		r.logger.Warn("reverse geocoding failed, skipping zone lookup",
			logger.Float64("lat", lat),
			logger.Float64("lon", lon),
			logger.Error(err))
		return ""
	}

	for _, locality := range localities {
		if zone := r.matchLocalityToZone(locality); zone != "" {
			return zone
		}
	}
	return ""
}

// matchLocalityToZone matches a single locality name against the zone
// table, substring in either direction.
func (r *Resolver) matchLocalityToZone(locality string) string {
	folded := data.FoldLocality(locality)
	if folded == "" {
		return ""
	}
	for _, zone := range r.zones {
		for _, loc := range zone.Localities {
			if strings.Contains(folded, loc) || strings.Contains(loc, folded) {
				return zone.Name + " Zone"
			}
		}
	}
	return ""
}

// zoneFromText scans free text for zone names or locality fragments.
func (r *Resolver) zoneFromText(text string) string {
	textLower := strings.ToLower(text)
	for _, zone := range r.zones {
		if strings.Contains(textLower, strings.ToLower(zone.Name)) {
			return zone.Name + " Zone"
		}
		for _, loc := range zone.Localities {
			if strings.Contains(textLower, loc) {
				return zone.Name + " Zone"
			}
		}
	}
	return ""
}

// DetectUrgency reports whether the text contains any emergency term.
func (r *Resolver) DetectUrgency(text string) bool {
	textLower := strings.ToLower(text)
	for _, k := range urgencyKeywords {
		if strings.Contains(textLower, k) {
			return true
		}
	}
	return false
}

// ParseGPS parses a "lat,lon" string, tolerating surrounding whitespace.
// Malformed input returns ok=false and is treated as absent upstream.
func ParseGPS(gps string) (lat, lon float64, ok bool) {
	trimmed := strings.ReplaceAll(strings.TrimSpace(gps), " ", "")
	if trimmed == "" {
		return 0, 0, false
	}

	parts := strings.Split(trimmed, ",")
	if len(parts) != 2 {
		return 0, 0, false
	}

	lat, latErr := strconv.ParseFloat(parts[0], 64)
	lon, lonErr := strconv.ParseFloat(parts[1], 64)
	if latErr != nil || lonErr != nil {
		return 0, 0, false
	}
	return lat, lon, true
}
