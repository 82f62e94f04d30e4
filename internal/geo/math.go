package geo

import "math"

// Radians converts an angle in degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Degrees converts an angle in radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// NormalizeLatitude folds a latitude into [-90, 90].
//
// Values past a pole continue down the other side of the sphere, so 100 becomes 80
// and 180 becomes 0. This is a reflection, not a clamp.
func NormalizeLatitude(lat float64) float64 {
	rad := Radians(lat)
	return Degrees(math.Atan(math.Sin(rad) / math.Abs(math.Cos(rad))))
}

// NormalizeLongitude wraps a longitude into (-180, 180].
func NormalizeLongitude(lon float64) float64 {
	rad := Radians(lon)
	return Degrees(math.Atan2(math.Sin(rad), math.Cos(rad)))
}
