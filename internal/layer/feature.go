package layer

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/rs/zerolog/log"

	"github.com/woozymasta/mapproj/internal/geo"
	"github.com/woozymasta/mapproj/internal/projection"
	"github.com/woozymasta/mapproj/internal/render"
)

// Features draws GeoJSON features: points as markers, lines as polylines and
// polygons as filled rings.
type Features struct {
	Name string
	// LabelKey names the property printed next to point markers. Empty disables labels.
	LabelKey string
	Style    render.Style

	canvas   Canvas
	features *geojson.FeatureCollection
}

// NewFeatures returns a layer painting fc onto canvas.
func NewFeatures(name string, fc *geojson.FeatureCollection, canvas Canvas, style render.Style) *Features {
	if fc == nil {
		fc = geojson.NewFeatureCollection()
	}
	return &Features{Name: name, Style: style, canvas: canvas, features: fc}
}

func (l *Features) Draw(proj projection.Projection, x, y, width, height int) {
	log.Trace().
		Str("layer", l.Name).
		Int("features", len(l.features.Features)).
		Int("width", width).
		Int("height", height).
		Msg("Drawing features")

	for _, f := range l.features.Features {
		label := ""
		if l.LabelKey != "" {
			label = f.Properties.MustString(l.LabelKey, "")
		}
		l.drawGeometry(proj, f.Geometry, label, x, y)
	}
}

func (l *Features) drawGeometry(proj projection.Projection, g orb.Geometry, label string, x, y int) {
	switch g := g.(type) {
	case orb.Point:
		l.marker(proj, g, label, x, y)
	case orb.MultiPoint:
		for _, p := range g {
			l.marker(proj, p, label, x, y)
		}
	case orb.LineString:
		l.canvas.Polyline(toPixels(proj, geo.PolygonFromLineString(g), x, y), l.Style)
	case orb.MultiLineString:
		for _, ls := range g {
			l.canvas.Polyline(toPixels(proj, geo.PolygonFromLineString(ls), x, y), l.Style)
		}
	case orb.Ring:
		l.polygon(proj, orb.Polygon{g}, x, y)
	case orb.Polygon:
		l.polygon(proj, g, x, y)
	case orb.MultiPolygon:
		for _, p := range g {
			l.polygon(proj, p, x, y)
		}
	case orb.Bound:
		l.polygon(proj, g.ToPolygon(), x, y)
	case orb.Collection:
		for _, c := range g {
			l.drawGeometry(proj, c, label, x, y)
		}
	case nil:
	default:
		log.Debug().Str("layer", l.Name).Str("type", g.GeoJSONType()).Msg("Skipping unsupported geometry")
	}
}

func (l *Features) marker(proj projection.Projection, p orb.Point, label string, x, y int) {
	at := proj.Project(geo.LatLonFromPoint(p)).Add(geo.Pt(x, y).Float())
	l.canvas.Circle(at, l.Style)
	if label != "" {
		l.canvas.Text(at, label, l.Style)
	}
}

func (l *Features) polygon(proj projection.Projection, p orb.Polygon, x, y int) {
	rings := make([][]geo.Point[float64], 0, len(p))
	for _, r := range p {
		rings = append(rings, toPixels(proj, geo.PolygonFromRing(r), x, y))
	}
	l.canvas.Polygon(rings, l.Style)
}

// Bounds returns the box around every feature, or false for an empty collection.
func (l *Features) Bounds() (geo.LatLonRect, bool) {
	var (
		bound orb.Bound
		found bool
	)

	for _, f := range l.features.Features {
		if f.Geometry == nil {
			continue
		}
		b := f.Geometry.Bound()
		if !found {
			bound, found = b, true
			continue
		}
		bound = bound.Union(b)
	}

	if !found {
		return geo.LatLonRect{}, false
	}
	return geo.RectFromBound(bound), true
}
