package domain

// LandmarkEntry is a gazetteer point of interest with a proximity radius.
// Static reference data, loaded once at process start and never mutated,
// so unsynchronized concurrent reads are safe.
type LandmarkEntry struct {
	Name     string
	Type     string
	Lat      float64
	Lon      float64
	RadiusKM float64
}

// ZoneEntry maps an administrative zone to the locality name fragments it
// contains. Entries are kept in a slice so iteration order is stable;
// first match wins everywhere zones are consulted.
type ZoneEntry struct {
	Name       string
	Localities []string
}

// CategoryKeywords maps an issue category to its trigger phrases across
// scripts and languages. Slice order decides which category wins when a
// text matches more than one.
type CategoryKeywords struct {
	Category string
	Keywords []string
}

// CivicTerm maps a colloquial or dialect phrase to its canonical
// technical meaning.
type CivicTerm struct {
	Colloquial string
	Canonical  string
}
