// Package projection converts between positions on the sphere, planar map
// coordinates and viewport pixels.
package projection

import (
	"errors"
	"fmt"
	"strings"

	"github.com/woozymasta/mapproj/internal/geo"
)

// Projection names accepted by ByName.
const (
	NameEquirectangular = "equirectangular"
	NameStereographic   = "stereographic"
	NameMiller          = "miller"
)

// ErrUnknownProjection is returned by ByName for names it does not recognise.
var ErrUnknownProjection = errors.New("unknown projection")

// Projection maps between the sphere and a plane. Project and Unproject are
// near-inverses; they need not agree at a projection's singular points.
type Projection interface {
	// Project converts a position on the sphere to plane coordinates.
	Project(pos geo.LatLon) geo.Point[float64]
	// Unproject converts plane coordinates back to a position on the sphere.
	Unproject(p geo.Point[float64]) geo.LatLon
}

// PolygonProjection is implemented by projections that provide their own batch
// transforms. ProjectPolygon and UnprojectPolygon use it when available.
type PolygonProjection interface {
	Projection
	ProjectPolygon(poly geo.Polygon[geo.LatLon]) geo.Polygon[geo.Point[float64]]
	UnprojectPolygon(poly geo.Polygon[geo.Point[float64]]) geo.Polygon[geo.LatLon]
}

// ProjectPolygon projects every vertex of poly, keeping order and count.
func ProjectPolygon(p Projection, poly geo.Polygon[geo.LatLon]) geo.Polygon[geo.Point[float64]] {
	if pp, ok := p.(PolygonProjection); ok {
		return pp.ProjectPolygon(poly)
	}
	return projectEach(p, poly)
}

// UnprojectPolygon unprojects every vertex of poly, keeping order and count.
func UnprojectPolygon(p Projection, poly geo.Polygon[geo.Point[float64]]) geo.Polygon[geo.LatLon] {
	if pp, ok := p.(PolygonProjection); ok {
		return pp.UnprojectPolygon(poly)
	}
	return unprojectEach(p, poly)
}

func projectEach(p Projection, poly geo.Polygon[geo.LatLon]) geo.Polygon[geo.Point[float64]] {
	out := make([]geo.Point[float64], poly.Len())
	for i, ll := range poly.Points() {
		out[i] = p.Project(ll)
	}
	return geo.NewPolygon(out...)
}

func unprojectEach(p Projection, poly geo.Polygon[geo.Point[float64]]) geo.Polygon[geo.LatLon] {
	out := make([]geo.LatLon, poly.Len())
	for i, pt := range poly.Points() {
		out[i] = p.Unproject(pt)
	}
	return geo.NewPolygon(out...)
}

// Names lists the projections ByName can build.
func Names() []string {
	return []string{NameEquirectangular, NameStereographic, NameMiller}
}

// ByName returns the named projection. center is only used by projections that
// have a tangent point.
func ByName(name string, center geo.LatLon) (Projection, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameEquirectangular, "plate-carree", "":
		return Equirectangular{}, nil
	case NameStereographic:
		return NewStereographic(center), nil
	case NameMiller:
		return Miller{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProjection, name)
	}
}
