// Package layer contains the drawable layers a map can stack.
package layer

import (
	"github.com/woozymasta/mapproj/internal/geo"
	"github.com/woozymasta/mapproj/internal/projection"
	"github.com/woozymasta/mapproj/internal/render"
)

// Canvas is the pixel surface layers paint on. render.Surface implements it.
type Canvas interface {
	Polyline(points []geo.Point[float64], style render.Style)
	Polygon(rings [][]geo.Point[float64], style render.Style)
	Circle(center geo.Point[float64], style render.Style)
	Text(at geo.Point[float64], text string, style render.Style)
}

// toPixels projects a lat/lon path and moves it into the target rectangle.
func toPixels(proj projection.Projection, poly geo.Polygon[geo.LatLon], x, y int) []geo.Point[float64] {
	offset := geo.Pt(x, y).Float()
	projected := projection.ProjectPolygon(proj, poly).Points()

	pts := make([]geo.Point[float64], len(projected))
	for i, p := range projected {
		pts[i] = p.Add(offset)
	}
	return pts
}
