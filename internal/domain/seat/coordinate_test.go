package seat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunseat-app/service-schedule/internal/domain/apperr"
)

func TestNewRoutePolylineFromLonLat_SwapsOrdering(t *testing.T) {
	// Providers deliver (lon, lat); the polyline must hold (lat, lon).
	route, err := NewRoutePolylineFromLonLat([][]float64{
		{13.405, 52.52},
		{2.3522, 48.8566},
	})
	require.NoError(t, err)

	assert.Equal(t, Coordinate{Lat: 52.52, Lon: 13.405}, route.Origin())
	assert.Equal(t, Coordinate{Lat: 48.8566, Lon: 2.3522}, route.Destination())
}

func TestNewRoutePolylineFromLonLat_Rejections(t *testing.T) {
	_, err := NewRoutePolylineFromLonLat([][]float64{{13.405, 52.52}})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, err = NewRoutePolylineFromLonLat(nil)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, err = NewRoutePolylineFromLonLat([][]float64{{13.405, 52.52}, {2.3522}})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestNewRoutePolyline(t *testing.T) {
	points := []Coordinate{{Lat: 1, Lon: 2}, {Lat: 3, Lon: 4}}
	route, err := NewRoutePolyline(points)
	require.NoError(t, err)
	assert.Equal(t, RoutePolyline(points), route)

	_, err = NewRoutePolyline(points[:1])
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestParseSide(t *testing.T) {
	for _, s := range []Side{SideLeft, SideRight, SideAny} {
		parsed, err := ParseSide(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := ParseSide("middle")
	assert.Error(t, err)
}
