package projection

import "github.com/woozymasta/mapproj/internal/geo"

// ViewProjection is the affine transform between map units and viewport pixels.
// The point Center is drawn in the middle of the viewport and one map unit spans
// Zoom pixels. Zoom is not validated; zero or negative values break Unproject.
type ViewProjection struct {
	Center geo.Point[float64] `json:"center"`
	Zoom   float64            `json:"zoom"`
}

// NewViewProjection returns a view centered on the map origin at zoom 1.
func NewViewProjection() *ViewProjection {
	return &ViewProjection{Zoom: 1}
}

// Project converts map units to pixels for a width x height viewport.
func (v *ViewProjection) Project(p geo.Point[float64], width, height int) geo.Point[float64] {
	return p.Sub(v.Center).Scale(v.Zoom).Add(halfViewport(width, height))
}

// Unproject converts viewport pixels back to map units.
func (v *ViewProjection) Unproject(p geo.Point[float64], width, height int) geo.Point[float64] {
	return p.Sub(halfViewport(width, height)).Scale(1 / v.Zoom).Add(v.Center)
}

// halfViewport truncates odd sizes, so a 5px wide viewport is centered at x=2.
func halfViewport(width, height int) geo.Point[float64] {
	return geo.Pt(width/2, height/2).Float()
}
