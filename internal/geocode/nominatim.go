// Package geocode wraps the Nominatim reverse-geocoding API.
package geocode

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/civicgrid/triage/internal/aitransport"
)

const defaultUserAgent = "civicgrid-triage"

// Address is the address block of a Nominatim reverse response, limited
// to the keys the zone resolver cares about.
type Address struct {
	Suburb        string `json:"suburb"`
	Neighbourhood string `json:"neighbourhood"`
	Residential   string `json:"residential"`
	Town          string `json:"town"`
	Village       string `json:"village"`
	CityDistrict  string `json:"city_district"`
}

type reverseResponse struct {
	Address Address `json:"address"`
}

// Localities returns the populated address fields in resolution priority
// order, most specific first.
func (a Address) Localities() []string {
	candidates := []string{
		a.Suburb, a.Neighbourhood, a.Residential,
		a.Town, a.Village, a.CityDistrict,
	}
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

// Client is a Nominatim reverse-geocoding client. It implements the
// location package's Geocoder interface.
type Client struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

// NewClient creates a client against baseURL. Nominatim's usage policy
// requires an identifying User-Agent; an empty userAgent falls back to
// the service default.
func NewClient(baseURL, userAgent string, client *http.Client) *Client {
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	if client == nil {
		client = &http.Client{Timeout: aitransport.DefaultTimeout}
	}
	return &Client{baseURL: baseURL, userAgent: userAgent, client: client}
}

// Lookup reverse geocodes a coordinate pair and returns locality
// candidates in priority order.
func (c *Client) Lookup(ctx context.Context, lat, lon float64) ([]string, error) {
	q := url.Values{}
	q.Set("format", "json")
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("lon", fmt.Sprintf("%f", lon))

	var resp reverseResponse
	err := aitransport.GetJSON(ctx, c.client, c.baseURL+"/reverse?"+q.Encode(),
		map[string]string{"User-Agent": c.userAgent}, &resp)
	if err != nil {
		return nil, fmt.Errorf("reverse geocode: %w", err)
	}
	return resp.Address.Localities(), nil
}
