package main

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/woozymasta/mapproj/internal/geo"
	"github.com/woozymasta/mapproj/internal/projection"
)

// projectedFeature is a feature whose coordinates are plane pairs instead of lon/lat.
type projectedFeature struct {
	Type        string         `json:"type"                 yaml:"type"`
	Coordinates any            `json:"coordinates"          yaml:"coordinates"`
	Properties  map[string]any `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// projectDocument projects every feature of a GeoJSON feature collection.
func projectDocument(proj projection.Projection, data []byte) ([]projectedFeature, int, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, 0, fmt.Errorf("parse geojson: %w", err)
	}

	out := make([]projectedFeature, 0, len(fc.Features))
	for _, f := range fc.Features {
		if f.Geometry == nil {
			continue
		}
		out = append(out, projectedFeature{
			Type:        f.Geometry.GeoJSONType(),
			Coordinates: projectGeometry(proj, f.Geometry),
			Properties:  f.Properties,
		})
	}
	return out, len(out), nil
}

// projectGeometry mirrors the GeoJSON coordinate nesting of g with [x, y] pairs.
func projectGeometry(proj projection.Projection, g orb.Geometry) any {
	switch g := g.(type) {
	case orb.Point:
		return pair(proj.Project(geo.LatLonFromPoint(g)))
	case orb.MultiPoint:
		return path(proj, geo.PolygonFromRing(orb.Ring(g)))
	case orb.LineString:
		return path(proj, geo.PolygonFromLineString(g))
	case orb.Ring:
		return path(proj, geo.PolygonFromRing(g))
	case orb.MultiLineString:
		out := make([][][2]float64, len(g))
		for i, ls := range g {
			out[i] = path(proj, geo.PolygonFromLineString(ls))
		}
		return out
	case orb.Polygon:
		return rings(proj, g)
	case orb.MultiPolygon:
		out := make([][][][2]float64, len(g))
		for i, p := range g {
			out[i] = rings(proj, p)
		}
		return out
	case orb.Bound:
		return rings(proj, g.ToPolygon())
	case orb.Collection:
		out := make([]any, len(g))
		for i, c := range g {
			out[i] = projectGeometry(proj, c)
		}
		return out
	}
	return nil
}

func rings(proj projection.Projection, p orb.Polygon) [][][2]float64 {
	out := make([][][2]float64, len(p))
	for i, r := range p {
		out[i] = path(proj, geo.PolygonFromRing(r))
	}
	return out
}

func path(proj projection.Projection, poly geo.Polygon[geo.LatLon]) [][2]float64 {
	projected := projection.ProjectPolygon(proj, poly).Points()
	out := make([][2]float64, len(projected))
	for i, p := range projected {
		out[i] = pair(p)
	}
	return out
}

func pair(p geo.Point[float64]) [2]float64 {
	return [2]float64{p.X, p.Y}
}
