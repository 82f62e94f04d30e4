// Package geo holds the spherical and planar value types shared by projections and layers.
package geo

import "strconv"

// Latitude is an angle north (positive) or south of the equator, in degrees.
// Arithmetic does not normalize; call Normalize when a canonical range is needed.
type Latitude float64

// Longitude is an angle east (positive) or west of the prime meridian, in degrees.
// Arithmetic does not normalize; call Normalize when a canonical range is needed.
type Longitude float64

// Degrees returns the raw degree value.
func (l Latitude) Degrees() float64 { return float64(l) }

// Radians returns the value in radians.
func (l Latitude) Radians() float64 { return Radians(float64(l)) }

// Add returns l + o without normalizing.
func (l Latitude) Add(o Latitude) Latitude { return l + o }

// Sub returns l - o without normalizing.
func (l Latitude) Sub(o Latitude) Latitude { return l - o }

// Normalize folds the latitude into [-90, 90].
func (l Latitude) Normalize() Latitude { return Latitude(NormalizeLatitude(float64(l))) }

func (l Latitude) String() string {
	return strconv.FormatFloat(float64(l), 'f', -1, 64) + "°"
}

// Degrees returns the raw degree value.
func (l Longitude) Degrees() float64 { return float64(l) }

// Radians returns the value in radians.
func (l Longitude) Radians() float64 { return Radians(float64(l)) }

// Add returns l + o without normalizing.
func (l Longitude) Add(o Longitude) Longitude { return l + o }

// Sub returns l - o without normalizing.
func (l Longitude) Sub(o Longitude) Longitude { return l - o }

// Normalize wraps the longitude into (-180, 180].
func (l Longitude) Normalize() Longitude { return Longitude(NormalizeLongitude(float64(l))) }

func (l Longitude) String() string {
	return strconv.FormatFloat(float64(l), 'f', -1, 64) + "°"
}
