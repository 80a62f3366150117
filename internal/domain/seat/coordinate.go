package seat

import (
	"fmt"

	"github.com/sunseat-app/service-schedule/internal/domain/apperr"
)

// Coordinate is an immutable geographic position in degrees (WGS 84).
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// minRoutePoints is the smallest polyline that still describes a path.
const minRoutePoints = 2

// RoutePolyline is an ordered sequence of coordinates from origin to
// destination, in traversal order.
type RoutePolyline []Coordinate

// NewRoutePolyline builds a polyline from coordinates already in (lat, lon)
// order, validating the minimum length.
func NewRoutePolyline(points []Coordinate) (RoutePolyline, error) {
	if len(points) < minRoutePoints {
		return nil, apperr.NewValidation(fmt.Sprintf("route must contain at least %d points, got %d", minRoutePoints, len(points)))
	}
	route := make(RoutePolyline, len(points))
	copy(route, points)
	return route, nil
}

// NewRoutePolylineFromLonLat builds a polyline from (lon, lat) pairs as
// returned by routing providers. The swap to (lat, lon) happens here, exactly
// once, so everything past this boundary works in (lat, lon).
func NewRoutePolylineFromLonLat(pairs [][]float64) (RoutePolyline, error) {
	if len(pairs) < minRoutePoints {
		return nil, apperr.NewValidation(fmt.Sprintf("route must contain at least %d points, got %d", minRoutePoints, len(pairs)))
	}
	route := make(RoutePolyline, 0, len(pairs))
	for i, p := range pairs {
		if len(p) < 2 {
			return nil, apperr.NewValidation(fmt.Sprintf("route point %d has %d components, want 2", i, len(p)))
		}
		route = append(route, Coordinate{Lat: p[1], Lon: p[0]})
	}
	return route, nil
}

// Origin returns the first point of the polyline.
func (r RoutePolyline) Origin() Coordinate { return r[0] }

// Destination returns the last point of the polyline.
func (r RoutePolyline) Destination() Coordinate { return r[len(r)-1] }
