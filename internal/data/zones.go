package data

import "github.com/civicgrid/triage/internal/domain"

// zones maps the Greater Chennai Corporation zones to their locality
// name fragments. Matching is case-insensitive substring in either
// direction; slice order makes the first match deterministic.
var zones = []domain.ZoneEntry{
	{Name: "Tiruvottiyur", Localities: []string{"tiruvottiyur", "kathivakkam", "ernavoor"}},
	{Name: "Manali", Localities: []string{"manali", "chinnasekkadu", "mathur"}},
	{Name: "Madhavaram", Localities: []string{"madhavaram", "puthagaram"}},
	{Name: "Tondiarpet", Localities: []string{"tondiarpet", "korukkupet", "washermanpet"}},
	{Name: "Royapuram", Localities: []string{"royapuram", "george town", "kondithope", "mannady", "broadway", "egmore", "chintadripet"}},
	{Name: "Thiru Vi Ka Nagar", Localities: []string{"perambur", "kolathur", "villivakkam", "thiru vi ka nagar"}},
	{Name: "Ambattur", Localities: []string{"ambattur", "padi", "korattur", "mogappair"}},
	{Name: "Anna Nagar", Localities: []string{"anna nagar", "aminjikarai", "shenoy nagar", "arumbakkam"}},
	{Name: "Teynampet", Localities: []string{"teynampet", "t. nagar", "nandanam", "alwarpet", "mylapore", "royapettah", "triplicane", "thousand lights"}},
	{Name: "Kodambakkam", Localities: []string{"kodambakkam", "vadapalani", "k.k. nagar", "mgr nagar", "saligramam"}},
	{Name: "Valasaravakkam", Localities: []string{"valasaravakkam", "porur", "ramapuram"}},
	{Name: "Alandur", Localities: []string{"alandur", "nanganallur", "adambakkam", "meenambakkam"}},
	{Name: "Adyar", Localities: []string{"adyar", "besant nagar", "thiruvanmiyur", "kotturpuram", "guindy", "velachery"}},
	{Name: "Perungudi", Localities: []string{"perungudi", "kottivakkam", "palavakkam"}},
	{Name: "Sholinganallur", Localities: []string{"sholinganallur", "karapakkam", "injambakkam", "neelankarai"}},
}

// Zones returns the zone membership table in match order.
func Zones() []domain.ZoneEntry {
	return zones
}
