package seat

import "context"

// Geocoder resolves a free-text place name to a coordinate. Implementations
// return an apperr location-not-found error when no match exists.
type Geocoder interface {
	Resolve(ctx context.Context, place string) (Coordinate, error)
}

// RoutePlanner fetches a driving route between two coordinates.
// Implementations return an apperr route-unavailable error when no path
// exists between the points.
type RoutePlanner interface {
	PlanRoute(ctx context.Context, origin, destination Coordinate) (RoutePolyline, error)
}
