package lookup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sunseat-app/service-schedule/internal/domain/apperr"
	"github.com/sunseat-app/service-schedule/internal/domain/seat"
)

// drivingProfilePath is the OpenRouteService directions endpoint for the
// driving-car profile, GeoJSON flavor.
const drivingProfilePath = "/v2/directions/driving-car/geojson"

// ORSRoutePlanner fetches driving routes from the OpenRouteService
// directions API.
type ORSRoutePlanner struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewORSRoutePlanner creates a planner with the given API key. The key is an
// explicit dependency here rather than process-global state so tests can
// inject a fake server.
func NewORSRoutePlanner(baseURL, apiKey string, timeout time.Duration) *ORSRoutePlanner {
	return &ORSRoutePlanner{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

type orsRequest struct {
	// Coordinates are (lon, lat) pairs per the ORS convention.
	Coordinates [][]float64 `json:"coordinates"`
}

type orsResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

type orsError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// PlanRoute requests a driving route between the two coordinates and returns
// it as a polyline in (lat, lon) order.
func (p *ORSRoutePlanner) PlanRoute(ctx context.Context, origin, destination seat.Coordinate) (seat.RoutePolyline, error) {
	body, err := json.Marshal(orsRequest{
		Coordinates: [][]float64{
			{origin.Lon, origin.Lat},
			{destination.Lon, destination.Lat},
		},
	})
	if err != nil {
		return nil, apperr.NewUpstream("routing", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+drivingProfilePath, bytes.NewReader(body))
	if err != nil {
		return nil, apperr.NewUpstream("routing", err)
	}
	req.Header.Set("Authorization", p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, apperr.NewUpstream("routing", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decode
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusBadRequest:
		// ORS signals unroutable points with 404/400 and an error body.
		var e orsError
		_ = json.NewDecoder(resp.Body).Decode(&e)
		msg := e.Error.Message
		if msg == "" {
			msg = "no route between the given points"
		}
		return nil, apperr.NewRouteUnavailable(msg)
	default:
		return nil, apperr.NewUpstream("routing", fmt.Errorf("openrouteservice returned status %d", resp.StatusCode))
	}

	var route orsResponse
	if err := json.NewDecoder(resp.Body).Decode(&route); err != nil {
		return nil, apperr.NewUpstream("routing", err)
	}
	if len(route.Features) == 0 {
		return nil, apperr.NewRouteUnavailable("no route between the given points")
	}

	return seat.NewRoutePolylineFromLonLat(route.Features[0].Geometry.Coordinates)
}
