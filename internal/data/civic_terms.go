package data

import "github.com/civicgrid/triage/internal/domain"

// civicTerms maps Tanglish, colloquial, and Tamil-script fragments to
// canonical technical terms. The normalizer appends the canonical term
// as a hint; it never replaces the citizen's own words.
var civicTerms = []domain.CivicTerm{
	// Electricity / street light
	{Colloquial: "eriyala", Canonical: "not glowing / light not working"},
	{Colloquial: "vilakku", Canonical: "street light"},
	{Colloquial: "theru vilakku", Canonical: "street light"},
	{Colloquial: "current", Canonical: "electricity / power"},
	{Colloquial: "karandu", Canonical: "electricity / power"},
	{Colloquial: "light work aagala", Canonical: "street light not working"},
	{Colloquial: "pole", Canonical: "electric pole"},
	{Colloquial: "kamba", Canonical: "electric pole"},

	// Roads / potholes
	{Colloquial: "kuzhi", Canonical: "pothole / ditch on road"},
	{Colloquial: "pallam", Canonical: "pothole / dip on road"},
	{Colloquial: "road sariyilla", Canonical: "road is bad / damaged"},
	{Colloquial: "paathai", Canonical: "path / road"},

	// Water / sewage
	{Colloquial: "thanni", Canonical: "water"},
	{Colloquial: "thannir", Canonical: "water"},
	{Colloquial: "thengi", Canonical: "stagnant / logging"},
	{Colloquial: "nikuthu", Canonical: "standing / staying"},
	{Colloquial: "saakadai", Canonical: "sewage / drainage"},
	{Colloquial: "drainage block", Canonical: "blocked drainage"},
	{Colloquial: "kaluval", Canonical: "drainage / sewage"},

	// Garbage
	{Colloquial: "kuppai", Canonical: "garbage / waste"},
	{Colloquial: "kupai", Canonical: "garbage / waste"},
	{Colloquial: "thotti", Canonical: "bin / container"},
	{Colloquial: "dustbin broken", Canonical: "garbage bin damaged"},

	// General
	{Colloquial: "mosu", Canonical: "mosquito"},
	{Colloquial: "kosu", Canonical: "mosquito"},
	{Colloquial: "adhigam", Canonical: "more / heavy presence"},
	{Colloquial: "naai", Canonical: "dog"},
	{Colloquial: "stray dog", Canonical: "street dog"},
	{Colloquial: "moraiykuthu", Canonical: "growling / aggressive"},

	// Tamil script
	{Colloquial: "தெரு விளக்கு", Canonical: "street light"},
	{Colloquial: "எரியல", Canonical: "not glowing / light not working"},
	{Colloquial: "விளக்கு", Canonical: "light"},
	{Colloquial: "குப்பை", Canonical: "garbage"},
	{Colloquial: "ரோடு", Canonical: "road"},
	{Colloquial: "தண்ணி", Canonical: "water"},
	{Colloquial: "நாய்கள்", Canonical: "dogs"},
	{Colloquial: "பள்ளம்", Canonical: "pothole"},
	{Colloquial: "குழி", Canonical: "pothole"},
	{Colloquial: "கொசு", Canonical: "mosquito"},
	{Colloquial: "மழை", Canonical: "rain"},
	{Colloquial: "தேக்கம்", Canonical: "stagnation"},
}

// CivicTerms returns the colloquial term dictionary in match order.
func CivicTerms() []domain.CivicTerm {
	return civicTerms
}
