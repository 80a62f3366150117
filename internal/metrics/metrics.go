package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles the service's prometheus metrics on a private registry.
type Collector struct {
	reg *prometheus.Registry

	SchedulesComputed *prometheus.CounterVec // outcome label: ok|validation|location_not_found|route_unavailable|upstream|internal

	GeocodeCalls    prometheus.Counter
	GeocodeErrs     prometheus.Counter
	RouteCalls      prometheus.Counter
	RouteErrs       prometheus.Counter
	UpstreamLatency *prometheus.HistogramVec // upstream label: geocode|route

	ScheduleIntervals prometheus.Histogram
	BuildDuration     prometheus.Histogram
}

// NewCollector creates and registers all service metrics.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		SchedulesComputed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sunseat_schedules_computed_total",
			Help: "Total seat schedule requests by outcome.",
		}, []string{"outcome"}),
		GeocodeCalls: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sunseat_geocode_calls_total",
			Help: "Total geocoding upstream calls.",
		}),
		GeocodeErrs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sunseat_geocode_errors_total",
			Help: "Total geocoding upstream failures.",
		}),
		RouteCalls: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sunseat_route_calls_total",
			Help: "Total routing upstream calls.",
		}),
		RouteErrs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sunseat_route_errors_total",
			Help: "Total routing upstream failures.",
		}),
		UpstreamLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sunseat_upstream_duration_seconds",
			Help:    "Duration of upstream geocode/route calls.",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
		}, []string{"upstream"}),
		ScheduleIntervals: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "sunseat_schedule_intervals",
			Help:    "Number of intervals per computed schedule.",
			Buckets: prometheus.LinearBuckets(1, 1, 10),
		}),
		BuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "sunseat_schedule_build_duration_seconds",
			Help:    "Duration of the pure schedule computation.",
			Buckets: prometheus.ExponentialBuckets(0.00001, 2, 15),
		}),
	}

	reg.MustRegister(
		c.SchedulesComputed,
		c.GeocodeCalls, c.GeocodeErrs,
		c.RouteCalls, c.RouteErrs,
		c.UpstreamLatency,
		c.ScheduleIntervals,
		c.BuildDuration,
	)
	return c
}

// Handler returns the HTTP handler exposing the registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}
