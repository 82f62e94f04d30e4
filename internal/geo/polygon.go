package geo

import "github.com/paulmach/orb"

// Polygon is an ordered sequence of vertices. Nothing forces the ring closed;
// callers decide whether the last vertex repeats the first.
type Polygon[P any] struct {
	points []P
}

// NewPolygon copies the given vertices into a new polygon.
func NewPolygon[P any](points ...P) Polygon[P] {
	owned := make([]P, len(points))
	copy(owned, points)
	return Polygon[P]{points: owned}
}

// Points returns the vertices in order. The slice must not be modified.
func (p Polygon[P]) Points() []P { return p.points }

// Len returns the number of vertices.
func (p Polygon[P]) Len() int { return len(p.points) }

// At returns the i-th vertex.
func (p Polygon[P]) At(i int) P { return p.points[i] }

// Append adds vertices to the end of the polygon.
func (p *Polygon[P]) Append(points ...P) {
	p.points = append(p.points, points...)
}

// PolygonFromRing converts an orb ring to a lat/lon polygon, vertex for vertex.
func PolygonFromRing(r orb.Ring) Polygon[LatLon] {
	points := make([]LatLon, len(r))
	for i, p := range r {
		points[i] = LatLonFromPoint(p)
	}
	return Polygon[LatLon]{points: points}
}

// PolygonFromLineString converts an orb line string to a lat/lon polygon.
func PolygonFromLineString(ls orb.LineString) Polygon[LatLon] {
	return PolygonFromRing(orb.Ring(ls))
}

// Ring converts a lat/lon polygon back to an orb ring.
func Ring(p Polygon[LatLon]) orb.Ring {
	r := make(orb.Ring, len(p.points))
	for i, ll := range p.points {
		r[i] = ll.Point()
	}
	return r
}

// Closed reports whether the first and last vertices are equal.
func Closed[P comparable](p Polygon[P]) bool {
	n := len(p.points)
	return n > 1 && p.points[0] == p.points[n-1]
}
