// Package data holds the static reference tables the pipeline reads:
// the landmark gazetteer, the zone membership table, the colloquial
// term dictionary, and the category keyword table. Everything here is
// loaded once and never mutated, so concurrent reads need no locking.
package data

import "github.com/civicgrid/triage/internal/domain"

// landmarks is the curated Chennai gazetteer. Slice order is the match
// order: for a GPS fix the first entry whose radius covers the point
// wins, so more sensitive categories come first.
var landmarks = []domain.LandmarkEntry{
	// Schools
	{Name: "DAV School (Anna Nagar)", Type: domain.LandmarkSchool, Lat: 13.0850, Lon: 80.2100, RadiusKM: 0.5},
	{Name: "Don Bosco School (Egmore)", Type: domain.LandmarkSchool, Lat: 13.0732, Lon: 80.2609, RadiusKM: 0.4},
	{Name: "PS Senior Secondary School (Mylapore)", Type: domain.LandmarkSchool, Lat: 13.0368, Lon: 80.2676, RadiusKM: 0.4},
	{Name: "Chettinad Vidyashram (Adyar)", Type: domain.LandmarkSchool, Lat: 13.0067, Lon: 80.2572, RadiusKM: 0.4},

	// Hospitals
	{Name: "Apollo Hospital (Thousand Lights)", Type: domain.LandmarkHospital, Lat: 13.0569, Lon: 80.2425, RadiusKM: 0.6},
	{Name: "Rajiv Gandhi Government Hospital (George Town)", Type: domain.LandmarkHospital, Lat: 13.0810, Lon: 80.2760, RadiusKM: 0.6},
	{Name: "Fortis Malar Hospital (Adyar)", Type: domain.LandmarkHospital, Lat: 13.0053, Lon: 80.2555, RadiusKM: 0.5},
	{Name: "Sundaram Medical Foundation (Anna Nagar)", Type: domain.LandmarkHospital, Lat: 13.0906, Lon: 80.2130, RadiusKM: 0.4},

	// Colleges
	{Name: "Anna University (Guindy)", Type: domain.LandmarkCollege, Lat: 13.0108, Lon: 80.2355, RadiusKM: 0.6},
	{Name: "Presidency College (Triplicane)", Type: domain.LandmarkCollege, Lat: 13.0633, Lon: 80.2806, RadiusKM: 0.4},
	{Name: "Loyola College (Nungambakkam)", Type: domain.LandmarkCollege, Lat: 13.0635, Lon: 80.2344, RadiusKM: 0.5},

	// Transport hubs
	{Name: "Chennai Central Station (George Town)", Type: domain.LandmarkTransportHub, Lat: 13.0827, Lon: 80.2707, RadiusKM: 0.8},
	{Name: "Egmore Railway Station (Egmore)", Type: domain.LandmarkTransportHub, Lat: 13.0783, Lon: 80.2614, RadiusKM: 0.5},
	{Name: "Koyambedu CMBT (Arumbakkam)", Type: domain.LandmarkTransportHub, Lat: 13.0694, Lon: 80.1948, RadiusKM: 0.8},
	{Name: "Guindy Metro Station (Guindy)", Type: domain.LandmarkTransportHub, Lat: 13.0066, Lon: 80.2206, RadiusKM: 0.4},

	// Markets
	{Name: "Koyambedu Wholesale Market (Arumbakkam)", Type: domain.LandmarkMarket, Lat: 13.0735, Lon: 80.1889, RadiusKM: 0.6},
	{Name: "Ranganathan Street Market (T. Nagar)", Type: domain.LandmarkMarket, Lat: 13.0418, Lon: 80.2341, RadiusKM: 0.5},
	{Name: "Pondy Bazaar (T. Nagar)", Type: domain.LandmarkMarket, Lat: 13.0434, Lon: 80.2412, RadiusKM: 0.4},
	{Name: "Perambur Market (Perambur)", Type: domain.LandmarkMarket, Lat: 13.1143, Lon: 80.2329, RadiusKM: 0.4},
}

// Landmarks returns the landmark gazetteer in match order.
func Landmarks() []domain.LandmarkEntry {
	return landmarks
}
