package lookup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunseat-app/service-schedule/internal/domain/apperr"
	"github.com/sunseat-app/service-schedule/internal/domain/seat"
)

func TestNominatimGeocoder_Resolve(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Times Square, New York", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.Equal(t, "sunseat-test", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"lat":"40.7579747","lon":"-73.9855426","display_name":"Times Square"}]`))
	}))
	defer srv.Close()

	g := NewNominatimGeocoder(srv.URL, "sunseat-test", 5*time.Second)
	coord, err := g.Resolve(context.Background(), "Times Square, New York")
	require.NoError(t, err)
	assert.InDelta(t, 40.7579747, coord.Lat, 1e-9)
	assert.InDelta(t, -73.9855426, coord.Lon, 1e-9)
}

func TestNominatimGeocoder_NoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	g := NewNominatimGeocoder(srv.URL, "sunseat-test", 5*time.Second)
	_, err := g.Resolve(context.Background(), "Nowhere At All")
	assert.True(t, apperr.IsKind(err, apperr.KindLocationNotFound))

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Nowhere At All", appErr.Input())
}

func TestNominatimGeocoder_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	g := NewNominatimGeocoder(srv.URL, "sunseat-test", 5*time.Second)
	_, err := g.Resolve(context.Background(), "Berlin")
	assert.True(t, apperr.IsKind(err, apperr.KindUpstream))
}

var _ seat.Geocoder = (*NominatimGeocoder)(nil)
