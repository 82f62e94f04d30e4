package layer

import (
	"math"

	"github.com/woozymasta/mapproj/internal/geo"
	"github.com/woozymasta/mapproj/internal/projection"
	"github.com/woozymasta/mapproj/internal/render"
)

// DefaultGraticuleStep is the grid spacing used when none is configured, in degrees.
const DefaultGraticuleStep = 15.0

// minGraticuleStep keeps the number of grid lines bounded.
const minGraticuleStep = 0.1

// densify is the spacing between vertices along grid lines, in degrees.
const densify = 1.0

// Graticule draws meridians and parallels every Step degrees.
type Graticule struct {
	Step  float64
	Style render.Style

	canvas Canvas
}

// NewGraticule returns a grid layer painting onto canvas.
func NewGraticule(step float64, canvas Canvas, style render.Style) *Graticule {
	if step <= 0 {
		step = DefaultGraticuleStep
	}
	step = math.Max(step, minGraticuleStep)
	return &Graticule{Step: step, Style: style, canvas: canvas}
}

func (g *Graticule) Draw(proj projection.Projection, x, y, width, height int) {
	for _, line := range g.lines() {
		g.canvas.Polyline(toPixels(proj, line, x, y), g.Style)
	}
}

// Bounds is always false: the grid covers the whole globe.
func (g *Graticule) Bounds() (geo.LatLonRect, bool) {
	return geo.LatLonRect{}, false
}

func (g *Graticule) lines() []geo.Polygon[geo.LatLon] {
	var lines []geo.Polygon[geo.LatLon]

	for lon := -180.0; lon <= 180.0+1e-9; lon += g.Step {
		var line geo.Polygon[geo.LatLon]
		for lat := -90.0; lat <= 90.0+1e-9; lat += densify {
			line.Append(geo.NewLatLon(math.Min(lat, 90), lon))
		}
		lines = append(lines, line)
	}

	for lat := -90.0 + g.Step; lat < 90.0-1e-9; lat += g.Step {
		var line geo.Polygon[geo.LatLon]
		for lon := -180.0; lon <= 180.0+1e-9; lon += densify {
			line.Append(geo.NewLatLon(lat, math.Min(lon, 180)))
		}
		lines = append(lines, line)
	}

	return lines
}
