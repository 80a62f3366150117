//go:build integration

package main_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sunseat-app/service-schedule/internal/application"
	"github.com/sunseat-app/service-schedule/internal/handler"
	"github.com/sunseat-app/service-schedule/internal/lookup"
	"github.com/sunseat-app/service-schedule/internal/metrics"
	"github.com/sunseat-app/service-schedule/internal/middleware"
)

// fakeUpstreams hosts httptest stand-ins for Nominatim and OpenRouteService.
type fakeUpstreams struct {
	Nominatim *httptest.Server
	ORS       *httptest.Server
}

// knownPlaces is the fake geocoding table.
var knownPlaces = map[string][2]float64{
	"Times Square, New York": {40.7579747, -73.9855426},
	"Central Park, New York": {40.7828647, -73.9653551},
}

// setupFakeUpstreams starts fake Nominatim and ORS servers. The ORS fake
// returns a three-point route between whatever coordinates it is asked for.
func setupFakeUpstreams(t *testing.T) *fakeUpstreams {
	t.Helper()

	nominatim := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		coords, ok := knownPlaces[q]
		w.Header().Set("Content-Type", "application/json")
		if !ok {
			_, _ = w.Write([]byte(`[]`))
			return
		}
		_, _ = fmt.Fprintf(w, `[{"lat":"%f","lon":"%f"}]`, coords[0], coords[1])
	}))
	t.Cleanup(nominatim.Close)

	ors := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Coordinates [][]float64 `json:"coordinates"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Coordinates) != 2 {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		from, to := req.Coordinates[0], req.Coordinates[1]
		mid := []float64{(from[0] + to[0]) / 2, (from[1] + to[1]) / 2}
		resp := map[string]interface{}{
			"features": []map[string]interface{}{{
				"geometry": map[string]interface{}{
					"coordinates": [][]float64{from, mid, to},
				},
			}},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(ors.Close)

	return &fakeUpstreams{Nominatim: nominatim, ORS: ors}
}

// setupRouter wires the full HTTP stack against the fake upstreams, the same
// way cmd/server does.
func setupRouter(t *testing.T, upstreams *fakeUpstreams) *gin.Engine {
	t.Helper()

	log := zap.NewNop()
	geocoder := lookup.NewNominatimGeocoder(upstreams.Nominatim.URL, "sunseat-test", 5*time.Second)
	planner := lookup.NewORSRoutePlanner(upstreams.ORS.URL, "test-key", 5*time.Second)
	collector := metrics.NewCollector()
	service := application.NewScheduleService(geocoder, planner, collector, log)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(collector.Handler()))
	handler.NewScheduleHandler(service).RegisterRoutes(&router.RouterGroup)
	return router
}
