package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// LatLonRect is an axis-aligned box in lat/lon space.
// It cannot describe a region that crosses the antimeridian.
type LatLonRect struct {
	North Latitude  `yaml:"north" json:"north"`
	South Latitude  `yaml:"south" json:"south"`
	East  Longitude `yaml:"east" json:"east"`
	West  Longitude `yaml:"west" json:"west"`
}

// RectFromPoints returns the smallest rect containing every position.
// It returns false when no positions are given.
func RectFromPoints(points ...LatLon) (LatLonRect, bool) {
	if len(points) == 0 {
		return LatLonRect{}, false
	}

	r := LatLonRect{
		North: points[0].Latitude,
		South: points[0].Latitude,
		East:  points[0].Longitude,
		West:  points[0].Longitude,
	}
	for _, p := range points[1:] {
		r = r.Extend(p)
	}

	return r, true
}

// RectFromBound converts an orb bound (min/max as lon/lat) to a LatLonRect.
func RectFromBound(b orb.Bound) LatLonRect {
	return LatLonRect{
		North: Latitude(b.Max.Lat()),
		South: Latitude(b.Min.Lat()),
		East:  Longitude(b.Max.Lon()),
		West:  Longitude(b.Min.Lon()),
	}
}

// Bound returns the rect as an orb bound.
func (r LatLonRect) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{r.West.Degrees(), r.South.Degrees()},
		Max: orb.Point{r.East.Degrees(), r.North.Degrees()},
	}
}

// Contains reports whether the position lies inside the rect, edges included.
func (r LatLonRect) Contains(p LatLon) bool {
	return p.Latitude >= r.South && p.Latitude <= r.North &&
		p.Longitude >= r.West && p.Longitude <= r.East
}

// Extend grows the rect to include p.
func (r LatLonRect) Extend(p LatLon) LatLonRect {
	return LatLonRect{
		North: Latitude(math.Max(r.North.Degrees(), p.Latitude.Degrees())),
		South: Latitude(math.Min(r.South.Degrees(), p.Latitude.Degrees())),
		East:  Longitude(math.Max(r.East.Degrees(), p.Longitude.Degrees())),
		West:  Longitude(math.Min(r.West.Degrees(), p.Longitude.Degrees())),
	}
}

// Union returns the smallest rect containing both r and o.
func (r LatLonRect) Union(o LatLonRect) LatLonRect {
	return r.Extend(LatLon{Latitude: o.North, Longitude: o.East}).
		Extend(LatLon{Latitude: o.South, Longitude: o.West})
}

// Center returns the midpoint of the rect.
func (r LatLonRect) Center() LatLon {
	return LatLon{
		Latitude:  (r.North + r.South) / 2,
		Longitude: (r.East + r.West) / 2,
	}
}
