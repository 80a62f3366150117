package lookup

import (
	"context"
	"fmt"

	maps "googlemaps.github.io/maps"

	"github.com/sunseat-app/service-schedule/internal/domain/apperr"
	"github.com/sunseat-app/service-schedule/internal/domain/seat"
)

// GoogleMapsLookup implements both collaborator ports on the Google Maps
// Platform: geocoding for place resolution, Directions (driving) for routes.
type GoogleMapsLookup struct {
	client *maps.Client
}

// NewGoogleMapsLookup creates a lookup backed by the Google Maps APIs.
func NewGoogleMapsLookup(apiKey string) (*GoogleMapsLookup, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("maps.NewClient: %w", err)
	}
	return &GoogleMapsLookup{client: client}, nil
}

// Resolve geocodes the place name to a coordinate.
func (g *GoogleMapsLookup) Resolve(ctx context.Context, place string) (seat.Coordinate, error) {
	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: place})
	if err != nil {
		return seat.Coordinate{}, apperr.NewUpstream("geocoding", err)
	}
	if len(results) == 0 {
		return seat.Coordinate{}, apperr.NewLocationNotFound(place)
	}
	loc := results[0].Geometry.Location
	return seat.Coordinate{Lat: loc.Lat, Lon: loc.Lng}, nil
}

// PlanRoute requests driving directions and decodes the overview polyline
// into the route.
func (g *GoogleMapsLookup) PlanRoute(ctx context.Context, origin, destination seat.Coordinate) (seat.RoutePolyline, error) {
	routes, _, err := g.client.Directions(ctx, &maps.DirectionsRequest{
		Origin:      fmt.Sprintf("%f,%f", origin.Lat, origin.Lon),
		Destination: fmt.Sprintf("%f,%f", destination.Lat, destination.Lon),
		Mode:        maps.TravelModeDriving,
	})
	if err != nil {
		return nil, apperr.NewUpstream("routing", err)
	}
	if len(routes) == 0 {
		return nil, apperr.NewRouteUnavailable("no route between the given points")
	}

	latlngs, err := routes[0].OverviewPolyline.Decode()
	if err != nil {
		return nil, apperr.NewUpstream("routing", err)
	}

	points := make([]seat.Coordinate, 0, len(latlngs))
	for _, ll := range latlngs {
		points = append(points, seat.Coordinate{Lat: ll.Lat, Lon: ll.Lng})
	}
	return seat.NewRoutePolyline(points)
}
