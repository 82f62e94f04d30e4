// Package mapview composes a spherical projection, a pan/zoom view and a stack
// of layers into a drawable map.
package mapview

import (
	"github.com/rs/zerolog/log"

	"github.com/woozymasta/mapproj/internal/geo"
	"github.com/woozymasta/mapproj/internal/projection"
)

// Map owns a projection, a view over the projected plane and an ordered list of
// layers. Layers are drawn in insertion order, so later layers end up on top.
type Map struct {
	projection projection.Projection
	view       *projection.ViewProjection
	layers     []Layer

	x, y          int
	width, height int
}

// New returns a map over the given viewport, centered on the map origin at zoom 1.
func New(proj projection.Projection, x, y, width, height int) *Map {
	return &Map{
		projection: proj,
		view:       projection.NewViewProjection(),
		x:          x,
		y:          y,
		width:      width,
		height:     height,
	}
}

// Projection returns the spherical projection.
func (m *Map) Projection() projection.Projection { return m.projection }

// SetProjection replaces the spherical projection. Layers and view are kept.
func (m *Map) SetProjection(proj projection.Projection) { m.projection = proj }

// AddLayer appends a layer on top of the existing ones.
func (m *Map) AddLayer(l Layer) { m.layers = append(m.layers, l) }

// ClearLayers removes every layer.
func (m *Map) ClearLayers() { m.layers = nil }

// Layers returns the layers in draw order.
func (m *Map) Layers() []Layer { return m.layers }

// Zoom returns the number of pixels per map unit.
func (m *Map) Zoom() float64 { return m.view.Zoom }

// SetZoom sets the number of pixels per map unit. It is not validated.
func (m *Map) SetZoom(zoom float64) { m.view.Zoom = zoom }

// Center returns the map point shown in the middle of the viewport.
func (m *Map) Center() geo.Point[float64] { return m.view.Center }

// CenterOn moves the view so that pos is in the middle of the viewport.
func (m *Map) CenterOn(pos geo.LatLon) {
	m.view.Center = m.projection.Project(pos)
}

// Geometry returns the viewport rectangle in pixels.
func (m *Map) Geometry() (x, y, width, height int) {
	return m.x, m.y, m.width, m.height
}

// SetGeometry replaces the viewport rectangle.
func (m *Map) SetGeometry(x, y, width, height int) {
	m.x, m.y, m.width, m.height = x, y, width, height
}

// Scroll moves the view by (dx, dy) pixels at the current zoom, so the same
// drag covers less of the map when zoomed in.
func (m *Map) Scroll(dx, dy float64) {
	origin := m.view.Unproject(geo.Pt(0.0, 0.0), 0, 0)
	delta := m.view.Unproject(geo.Pt(dx, dy), 0, 0).Sub(origin)
	m.view.Center = m.view.Center.Add(delta)
}

// View returns the pixel-space projection for the current state. It is only
// valid until the projection, zoom, center or geometry changes.
func (m *Map) View() projection.Combined {
	return projection.NewCombined(m.projection, m.view, m.width, m.height)
}

// Bounds returns the union of the layers' bounds. It returns false when no
// layer reports a bound.
func (m *Map) Bounds() (geo.LatLonRect, bool) {
	var (
		rect  geo.LatLonRect
		found bool
	)

	for _, l := range m.layers {
		b, ok := l.Bounds()
		if !ok {
			continue
		}
		if !found {
			rect, found = b, true
			continue
		}
		rect = rect.Union(b)
	}

	return rect, found
}

// Draw hands every layer the pixel-space projection and the full viewport.
func (m *Map) Draw() {
	view := m.View()

	log.Trace().
		Int("layers", len(m.layers)).
		Int("width", m.width).
		Int("height", m.height).
		Float64("zoom", m.view.Zoom).
		Float64("center_x", m.view.Center.X).
		Float64("center_y", m.view.Center.Y).
		Msg("Drawing map")

	for _, l := range m.layers {
		l.Draw(view, m.x, m.y, m.width, m.height)
	}
}
