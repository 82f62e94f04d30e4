package projection

import (
	"math"

	"github.com/woozymasta/mapproj/internal/geo"
)

// Stereographic projects onto a plane touching the sphere at a tangent point.
//
// Zenith and azimuth are taken from the plain latitude/longitude offsets to the
// tangent point rather than from great-circle geometry. Because of that the
// antipode of the tangent point lands exactly on the origin only when the tangent
// point is on the equator; elsewhere it lands near, not on, the origin. The
// tangent point itself has no finite image.
type Stereographic struct {
	center geo.LatLon
}

// NewStereographic returns a stereographic projection touching the sphere at center.
func NewStereographic(center geo.LatLon) *Stereographic {
	return &Stereographic{center: center}
}

// Center returns the tangent point.
func (s *Stereographic) Center() geo.LatLon { return s.center }

// SetCenter moves the tangent point.
func (s *Stereographic) SetCenter(center geo.LatLon) { s.center = center }

func (s *Stereographic) Project(pos geo.LatLon) geo.Point[float64] {
	dLat := geo.Radians(pos.Latitude.Sub(s.center.Latitude).Degrees())
	dLon := geo.Radians(geo.NormalizeLongitude(pos.Longitude.Sub(s.center.Longitude).Degrees()))

	zenith := math.Hypot(dLat, dLon)
	azimuth := math.Atan2(dLat, dLon)

	r := math.Sin(zenith) / (1 - math.Cos(zenith))
	return geo.Pt(r*math.Cos(azimuth), r*math.Sin(azimuth))
}

func (s *Stereographic) Unproject(p geo.Point[float64]) geo.LatLon {
	r := math.Hypot(p.X, p.Y)
	theta := math.Atan2(p.Y, p.X)
	zenith := 2 * math.Atan(1/r)

	lat := s.center.Latitude.Degrees() + geo.Degrees(zenith*math.Sin(theta))
	lon := s.center.Longitude.Degrees() + geo.Degrees(zenith*math.Cos(theta))

	return geo.NewLatLon(geo.NormalizeLatitude(lat), geo.NormalizeLongitude(lon))
}

func (s *Stereographic) String() string { return NameStereographic }
