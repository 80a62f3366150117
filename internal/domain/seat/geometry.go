package seat

import "math"

const (
	sunriseHour    = 6.0
	sunsetHour     = 18.0
	degreesPerHour = 15.0
)

// Bearing returns the initial compass bearing in degrees [0, 360) along the
// great-circle path from one coordinate to another (forward azimuth).
// When from == to the bearing is mathematically undefined; atan2(0, 0) makes
// this return 0, which is accepted as-is.
func Bearing(from, to Coordinate) float64 {
	lat1 := radians(from.Lat)
	lat2 := radians(to.Lat)
	dLon := radians(to.Lon - from.Lon)

	x := math.Sin(dLon) * math.Cos(lat2)
	y := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)

	return math.Mod(degrees(math.Atan2(x, y))+360, 360)
}

// SunAzimuth approximates the sun's compass azimuth for a fractional hour of
// day using a linear daytime model: the sun rises at hour 6 (azimuth 0),
// sweeps 15° per hour, and sets at hour 18 (azimuth 180). Outside [6, 18] the
// sun is down and ok is false.
func SunAzimuth(hour float64) (azimuth float64, ok bool) {
	if hour < sunriseHour || hour > sunsetHour {
		return 0, false
	}
	return (hour - sunriseHour) * degreesPerHour, true
}

// DecideSeat picks the side of the vehicle the sun shines on given the
// vehicle's bearing and the sun's azimuth. With the sun down it returns
// SideAny. The comparisons are strict: an angular difference of exactly 90 or
// 270, and a sun dead ahead or behind, all classify as SideRight.
func DecideSeat(bearing, sunAzimuth float64, sunUp bool) Side {
	if !sunUp {
		return SideAny
	}
	diff := math.Mod(sunAzimuth-bearing+360, 360)
	if diff > 90 && diff < 270 {
		return SideLeft
	}
	return SideRight
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
