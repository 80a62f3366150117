package seat

// PositionAt maps a time step onto the route polyline by index: stepIndex is
// projected linearly onto [0, len(route)-1] and truncated. This is
// nearest-preceding-sample interpolation by point index, not by travelled
// distance, so positions are uneven when the route's points are.
// Requires totalSteps >= 1 and 0 <= stepIndex <= totalSteps.
func PositionAt(route RoutePolyline, totalSteps, stepIndex int) Coordinate {
	index := int(float64(stepIndex) / float64(totalSteps) * float64(len(route)-1))
	return route[index]
}
