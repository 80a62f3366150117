package application

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sunseat-app/service-schedule/internal/domain/apperr"
	"github.com/sunseat-app/service-schedule/internal/domain/seat"
	"github.com/sunseat-app/service-schedule/internal/metrics"
)

// maxDurationMinutes caps a journey at one day.
const maxDurationMinutes = 1440

// SuggestRequest holds the data needed to compute a seat schedule.
type SuggestRequest struct {
	FromPlace       string
	ToPlace         string
	StartTime       time.Time
	DurationMinutes int
}

// IntervalDTO is the response representation of one schedule interval.
type IntervalDTO struct {
	Side     string    `json:"side"`
	Start    string    `json:"start"`
	End      string    `json:"end"`
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
}

// ScheduleDTO is the response representation of a computed seat schedule.
type ScheduleDTO struct {
	From            string          `json:"from"`
	To              string          `json:"to"`
	Origin          seat.Coordinate `json:"origin"`
	Destination     seat.Coordinate `json:"destination"`
	StartTime       time.Time       `json:"start_time"`
	DurationMinutes int             `json:"duration_minutes"`
	Schedule        []IntervalDTO   `json:"schedule"`
}

// ScheduleService orchestrates a seat schedule computation: resolve both
// endpoints, fetch the driving route, run the schedule builder.
type ScheduleService struct {
	geocoder  seat.Geocoder
	planner   seat.RoutePlanner
	collector *metrics.Collector
	logger    *zap.Logger
}

// NewScheduleService creates a new ScheduleService. The collector may be nil.
func NewScheduleService(
	geocoder seat.Geocoder,
	planner seat.RoutePlanner,
	collector *metrics.Collector,
	logger *zap.Logger,
) *ScheduleService {
	return &ScheduleService{
		geocoder:  geocoder,
		planner:   planner,
		collector: collector,
		logger:    logger,
	}
}

// SuggestSeatSchedule is the single public entry point: it validates the
// request, performs the collaborator lookups, and returns the compressed
// interval schedule. The computation is a pure function of its inputs and the
// collaborator responses; identical inputs yield identical schedules.
func (s *ScheduleService) SuggestSeatSchedule(ctx context.Context, req SuggestRequest) (*ScheduleDTO, error) {
	dto, err := s.suggest(ctx, req)
	s.countOutcome(err)
	return dto, err
}

func (s *ScheduleService) suggest(ctx context.Context, req SuggestRequest) (*ScheduleDTO, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	origin, err := s.resolve(ctx, req.FromPlace)
	if err != nil {
		return nil, err
	}
	destination, err := s.resolve(ctx, req.ToPlace)
	if err != nil {
		return nil, err
	}

	route, err := s.planRoute(ctx, origin, destination)
	if err != nil {
		return nil, err
	}

	buildStart := time.Now()
	intervals, err := seat.BuildSchedule(route, destination, req.StartTime, req.DurationMinutes)
	if err != nil {
		return nil, err
	}
	if s.collector != nil {
		s.collector.BuildDuration.Observe(time.Since(buildStart).Seconds())
		s.collector.ScheduleIntervals.Observe(float64(len(intervals)))
	}

	s.logger.Info("seat schedule computed",
		zap.String("from", req.FromPlace),
		zap.String("to", req.ToPlace),
		zap.Int("duration_minutes", req.DurationMinutes),
		zap.Int("route_points", len(route)),
		zap.Int("intervals", len(intervals)),
	)

	return &ScheduleDTO{
		From:            req.FromPlace,
		To:              req.ToPlace,
		Origin:          origin,
		Destination:     destination,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		Schedule:        toIntervalDTOs(intervals),
	}, nil
}

func (s *ScheduleService) resolve(ctx context.Context, place string) (seat.Coordinate, error) {
	start := time.Now()
	coord, err := s.geocoder.Resolve(ctx, place)
	if s.collector != nil {
		s.collector.GeocodeCalls.Inc()
		s.collector.UpstreamLatency.WithLabelValues("geocode").Observe(time.Since(start).Seconds())
		if err != nil {
			s.collector.GeocodeErrs.Inc()
		}
	}
	if err != nil {
		s.logger.Warn("geocoding failed", zap.String("place", place), zap.Error(err))
		return seat.Coordinate{}, err
	}
	return coord, nil
}

func (s *ScheduleService) planRoute(ctx context.Context, origin, destination seat.Coordinate) (seat.RoutePolyline, error) {
	start := time.Now()
	route, err := s.planner.PlanRoute(ctx, origin, destination)
	if s.collector != nil {
		s.collector.RouteCalls.Inc()
		s.collector.UpstreamLatency.WithLabelValues("route").Observe(time.Since(start).Seconds())
		if err != nil {
			s.collector.RouteErrs.Inc()
		}
	}
	if err != nil {
		s.logger.Warn("routing failed", zap.Error(err))
		return nil, err
	}
	return route, nil
}

func (s *ScheduleService) countOutcome(err error) {
	if s.collector == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		if kind, known := apperr.KindOf(err); known {
			outcome = string(kind)
		} else {
			outcome = "internal"
		}
	}
	s.collector.SchedulesComputed.WithLabelValues(outcome).Inc()
}

func validateRequest(req SuggestRequest) error {
	if req.FromPlace == "" {
		return apperr.NewValidation("origin place is required")
	}
	if req.ToPlace == "" {
		return apperr.NewValidation("destination place is required")
	}
	if req.StartTime.IsZero() {
		return apperr.NewValidation("start time is required")
	}
	if req.DurationMinutes < seat.StepMinutes {
		return apperr.NewValidation(fmt.Sprintf("duration must be at least %d minutes", seat.StepMinutes))
	}
	if req.DurationMinutes > maxDurationMinutes {
		return apperr.NewValidation(fmt.Sprintf("duration must be at most %d minutes", maxDurationMinutes))
	}
	return nil
}

func toIntervalDTOs(intervals []seat.Interval) []IntervalDTO {
	out := make([]IntervalDTO, 0, len(intervals))
	for _, iv := range intervals {
		out = append(out, IntervalDTO{
			Side:     iv.Side.String(),
			Start:    iv.StartLabel(),
			End:      iv.EndLabel(),
			StartsAt: iv.Start,
			EndsAt:   iv.End,
		})
	}
	return out
}
