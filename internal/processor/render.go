package processor

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/woozymasta/mapproj/internal/config"
	"github.com/woozymasta/mapproj/internal/geo"
	"github.com/woozymasta/mapproj/internal/layer"
	"github.com/woozymasta/mapproj/internal/mapview"
	"github.com/woozymasta/mapproj/internal/projection"
	"github.com/woozymasta/mapproj/internal/render"

	"github.com/rs/zerolog/log"
)

// ErrUnknownLayerType is returned for layer types BuildLayers cannot build.
var ErrUnknownLayerType = errors.New("unknown layer type")

// fitPadding is the share of the viewport left empty around fitted bounds.
const fitPadding = 0.05

// BuildLayers creates the configured layers painting onto canvas, bottom first.
func BuildLayers(layers []config.Layer, canvas layer.Canvas, loader *Loader) ([]mapview.Layer, error) {
	out := make([]mapview.Layer, 0, len(layers))

	for _, lc := range layers {
		style, err := layerStyle(lc)
		if err != nil {
			return nil, fmt.Errorf("layer %s: %w", lc.Name, err)
		}

		switch lc.Type {
		case config.LayerGraticule:
			out = append(out, layer.NewGraticule(lc.Step, canvas, style))

		case config.LayerMarkers:
			l := layer.NewFeatures(lc.Name, markerFeatures(lc.Markers), canvas, style)
			l.LabelKey = lc.Label
			out = append(out, l)

		case config.LayerGeoJSON:
			fc, err := loader.Load(lc.Source)
			if err != nil {
				return nil, fmt.Errorf("layer %s: %w", lc.Name, err)
			}
			l := layer.NewFeatures(lc.Name, fc, canvas, style)
			l.LabelKey = lc.Label
			out = append(out, l)

		default:
			return nil, fmt.Errorf("layer %s: %w: %q", lc.Name, ErrUnknownLayerType, lc.Type)
		}
	}

	return out, nil
}

func layerStyle(lc config.Layer) (render.Style, error) {
	stroke, err := render.ParseColor(lc.Stroke)
	if err != nil {
		return render.Style{}, err
	}
	fill, err := render.ParseColor(lc.Fill)
	if err != nil {
		return render.Style{}, err
	}
	return render.Style{Stroke: stroke, Fill: fill, Width: lc.Width, Radius: lc.Radius}, nil
}

// BuildMap creates the map described by cfg with its layers painting onto canvas.
func BuildMap(cfg *config.Config, canvas layer.Canvas, loader *Loader) (*mapview.Map, error) {
	proj, err := projection.ByName(cfg.Projection.Name, cfg.Projection.Center)
	if err != nil {
		return nil, err
	}

	layers, err := BuildLayers(cfg.Layers, canvas, loader)
	if err != nil {
		return nil, err
	}

	m := mapview.New(proj, 0, 0, cfg.View.Width, cfg.View.Height)
	for _, l := range layers {
		m.AddLayer(l)
	}

	m.SetZoom(cfg.View.Zoom)
	if cfg.View.FitBounds {
		if rect, ok := m.Bounds(); ok {
			FitBounds(m, rect)
		}
	}
	if cfg.View.Center != nil {
		m.CenterOn(*cfg.View.Center)
	}
	if cfg.View.Scroll != (geo.Point[float64]{}) {
		m.Scroll(cfg.View.Scroll.X, cfg.View.Scroll.Y)
	}

	return m, nil
}

// FitBounds centers m on rect and zooms so that its projected corners and edge
// midpoints fit the viewport. Points without a finite image are ignored.
func FitBounds(m *mapview.Map, rect geo.LatLonRect) {
	c := rect.Center()
	samples := []geo.LatLon{
		{Latitude: rect.North, Longitude: rect.West},
		{Latitude: rect.North, Longitude: c.Longitude},
		{Latitude: rect.North, Longitude: rect.East},
		{Latitude: c.Latitude, Longitude: rect.West},
		{Latitude: c.Latitude, Longitude: rect.East},
		{Latitude: rect.South, Longitude: rect.West},
		{Latitude: rect.South, Longitude: c.Longitude},
		{Latitude: rect.South, Longitude: rect.East},
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, s := range samples {
		p := m.Projection().Project(s)
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			continue
		}
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	if math.IsInf(minX, 1) {
		return
	}

	m.CenterOn(c)

	_, _, width, height := m.Geometry()
	dx, dy := maxX-minX, maxY-minY
	zoom := math.Inf(1)
	if dx > 0 {
		zoom = float64(width) / dx
	}
	if dy > 0 {
		zoom = math.Min(zoom, float64(height)/dy)
	}
	if !math.IsInf(zoom, 1) {
		m.SetZoom(zoom * (1 - 2*fitPadding))
	}
}

// Render draws the map described by cfg and writes the encoded image to w.
// It returns the content type of the written data.
func Render(cfg *config.Config, loader *Loader, w io.Writer) (string, error) {
	bg, err := render.ParseColor(cfg.View.Background)
	if err != nil {
		return "", fmt.Errorf("view background: %w", err)
	}

	surface, err := render.New(render.Options{
		Format:     cfg.Output.Format,
		Width:      cfg.View.Width,
		Height:     cfg.View.Height,
		Background: bg,
		Quality:    cfg.Output.Quality,
	})
	if err != nil {
		return "", err
	}

	m, err := BuildMap(cfg, surface, loader)
	if err != nil {
		return "", err
	}

	log.Debug().
		Str("projection", cfg.Projection.Name).
		Str("format", cfg.Output.Format).
		Int("layers", len(m.Layers())).
		Float64("zoom", m.Zoom()).
		Msg("Rendering map")

	m.Draw()

	if err := surface.Encode(w); err != nil {
		return "", err
	}
	return surface.ContentType(), nil
}
