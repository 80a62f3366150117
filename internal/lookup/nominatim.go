package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sunseat-app/service-schedule/internal/domain/apperr"
	"github.com/sunseat-app/service-schedule/internal/domain/seat"
)

// NominatimGeocoder resolves place names via the OSM Nominatim search API.
type NominatimGeocoder struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

// NewNominatimGeocoder creates a geocoder against the given Nominatim
// instance. Nominatim's usage policy requires an identifying User-Agent.
func NewNominatimGeocoder(baseURL, userAgent string, timeout time.Duration) *NominatimGeocoder {
	return &NominatimGeocoder{
		baseURL:   baseURL,
		userAgent: userAgent,
		client:    &http.Client{Timeout: timeout},
	}
}

// nominatimPlace is the subset of a Nominatim search result we consume.
// Nominatim serializes coordinates as strings.
type nominatimPlace struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Resolve returns the best match for the place name, or a location-not-found
// error when Nominatim has no result.
func (g *NominatimGeocoder) Resolve(ctx context.Context, place string) (seat.Coordinate, error) {
	q := url.Values{}
	q.Set("q", place)
	q.Set("format", "json")
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return seat.Coordinate{}, apperr.NewUpstream("geocoding", err)
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return seat.Coordinate{}, apperr.NewUpstream("geocoding", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return seat.Coordinate{}, apperr.NewUpstream("geocoding", fmt.Errorf("nominatim returned status %d", resp.StatusCode))
	}

	var places []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return seat.Coordinate{}, apperr.NewUpstream("geocoding", err)
	}
	if len(places) == 0 {
		return seat.Coordinate{}, apperr.NewLocationNotFound(place)
	}

	lat, err := strconv.ParseFloat(places[0].Lat, 64)
	if err != nil {
		return seat.Coordinate{}, apperr.NewUpstream("geocoding", fmt.Errorf("invalid latitude %q: %w", places[0].Lat, err))
	}
	lon, err := strconv.ParseFloat(places[0].Lon, 64)
	if err != nil {
		return seat.Coordinate{}, apperr.NewUpstream("geocoding", fmt.Errorf("invalid longitude %q: %w", places[0].Lon, err))
	}

	return seat.Coordinate{Lat: lat, Lon: lon}, nil
}
