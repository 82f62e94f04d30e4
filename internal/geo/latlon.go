package geo

import (
	"fmt"

	"github.com/paulmach/orb"
)

// LatLon is a position on the sphere. Components may be out of range until normalized.
type LatLon struct {
	Latitude  Latitude  `yaml:"lat" json:"lat"`
	Longitude Longitude `yaml:"lon" json:"lon"`
}

// NewLatLon builds a LatLon from plain degree values.
func NewLatLon(lat, lon float64) LatLon {
	return LatLon{Latitude: Latitude(lat), Longitude: Longitude(lon)}
}

// LatLonFromPoint converts an orb point ([lon, lat]) to a LatLon.
func LatLonFromPoint(p orb.Point) LatLon {
	return NewLatLon(p.Lat(), p.Lon())
}

// Point returns the position as an orb point ([lon, lat]).
func (ll LatLon) Point() orb.Point {
	return orb.Point{ll.Longitude.Degrees(), ll.Latitude.Degrees()}
}

// Normalize returns the position with both components in their canonical ranges.
func (ll LatLon) Normalize() LatLon {
	return LatLon{Latitude: ll.Latitude.Normalize(), Longitude: ll.Longitude.Normalize()}
}

// Antipode returns the point on the opposite side of the sphere.
func (ll LatLon) Antipode() LatLon {
	return LatLon{
		Latitude:  Latitude(NormalizeLatitude(ll.Latitude.Degrees() + 180.0)),
		Longitude: Longitude(NormalizeLongitude(ll.Longitude.Degrees() + 180.0)),
	}
}

func (ll LatLon) String() string {
	return fmt.Sprintf("(%v, %v)", ll.Latitude, ll.Longitude)
}
