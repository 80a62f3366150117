package seat

import (
	"time"

	"github.com/sunseat-app/service-schedule/internal/domain/apperr"
)

// StepMinutes is the sampling resolution of the schedule builder.
const StepMinutes = 10

// timeLabelLayout renders zero-padded 24-hour wall-clock labels.
const timeLabelLayout = "15:04"

// Interval is a maximal contiguous span of the trip during which the
// recommended side is constant. Immutable once built.
type Interval struct {
	Side  Side
	Start time.Time
	End   time.Time
}

// StartLabel returns the interval start formatted as HH:MM local time.
func (i Interval) StartLabel() string { return i.Start.Format(timeLabelLayout) }

// EndLabel returns the interval end formatted as HH:MM local time.
func (i Interval) EndLabel() string { return i.End.Format(timeLabelLayout) }

// BuildSchedule samples the trip at fixed 10-minute steps and compresses
// consecutive identical seat decisions into intervals. At each step it takes
// the route position for that step, the bearing from there to the
// destination, and the sun azimuth for the wall-clock hour, then decides the
// side. The returned intervals tile [start, start+duration] exactly, in
// order, with no gaps or overlaps.
//
// A duration shorter than one step yields a single sample at the route start
// and one interval covering the whole duration.
func BuildSchedule(route RoutePolyline, destination Coordinate, start time.Time, durationMinutes int) ([]Interval, error) {
	if len(route) < minRoutePoints {
		return nil, apperr.NewValidation("route polyline is too short to schedule")
	}
	if durationMinutes <= 0 {
		return nil, apperr.NewValidation("duration must be positive")
	}

	totalSteps := durationMinutes / StepMinutes
	sampleSteps := totalSteps
	if sampleSteps < 1 {
		sampleSteps = 1
	}

	var (
		schedule      []Interval
		lastSeat      Side
		intervalStart = start
	)

	for step := 0; step <= totalSteps; step++ {
		current := start.Add(time.Duration(step*StepMinutes) * time.Minute)
		hour := float64(current.Hour()) + float64(current.Minute())/60

		azimuth, sunUp := SunAzimuth(hour)
		pos := PositionAt(route, sampleSteps, step)
		side := DecideSeat(Bearing(pos, destination), azimuth, sunUp)

		if step == 0 {
			lastSeat = side
			continue
		}
		if side != lastSeat {
			schedule = append(schedule, Interval{Side: lastSeat, Start: intervalStart, End: current})
			intervalStart = current
			lastSeat = side
		}
	}

	// The last interval runs to the true trip end, which need not fall on a
	// step boundary.
	end := start.Add(time.Duration(durationMinutes) * time.Minute)
	schedule = append(schedule, Interval{Side: lastSeat, Start: intervalStart, End: end})

	return schedule, nil
}
