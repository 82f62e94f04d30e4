package projection

import "github.com/woozymasta/mapproj/internal/geo"

// Combined chains a spherical projection with a view so that Project goes
// straight from lat/lon to viewport pixels. It borrows both; build one per draw
// and do not keep it after the view changes.
type Combined struct {
	sphere Projection
	view   *ViewProjection
	width  int
	height int
}

// NewCombined builds the pixel-space projection for a width x height viewport.
func NewCombined(sphere Projection, view *ViewProjection, width, height int) Combined {
	return Combined{sphere: sphere, view: view, width: width, height: height}
}

func (c Combined) Project(pos geo.LatLon) geo.Point[float64] {
	return c.view.Project(c.sphere.Project(pos), c.width, c.height)
}

func (c Combined) Unproject(p geo.Point[float64]) geo.LatLon {
	return c.sphere.Unproject(c.view.Unproject(p, c.width, c.height))
}

// ProjectPolygon runs the spherical batch transform first, so projections with
// their own polygon handling keep it when viewed.
func (c Combined) ProjectPolygon(poly geo.Polygon[geo.LatLon]) geo.Polygon[geo.Point[float64]] {
	mapped := ProjectPolygon(c.sphere, poly)

	out := make([]geo.Point[float64], mapped.Len())
	for i, p := range mapped.Points() {
		out[i] = c.view.Project(p, c.width, c.height)
	}
	return geo.NewPolygon(out...)
}

func (c Combined) UnprojectPolygon(poly geo.Polygon[geo.Point[float64]]) geo.Polygon[geo.LatLon] {
	mapped := make([]geo.Point[float64], poly.Len())
	for i, p := range poly.Points() {
		mapped[i] = c.view.Unproject(p, c.width, c.height)
	}
	return UnprojectPolygon(c.sphere, geo.NewPolygon(mapped...))
}

// Size returns the viewport size the projection was built for.
func (c Combined) Size() (width, height int) {
	return c.width, c.height
}
