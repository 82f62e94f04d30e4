package geo

import "golang.org/x/exp/constraints"

// Number is the set of numeric types a Point can carry.
type Number interface {
	constraints.Integer | constraints.Float
}

// Point is a 2-D coordinate pair. Whether it is in map units or pixels depends on
// where it came from.
type Point[N Number] struct {
	X N `json:"x"`
	Y N `json:"y"`
}

// Pt is shorthand for Point[N]{x, y}.
func Pt[N Number](x, y N) Point[N] {
	return Point[N]{X: x, Y: y}
}

// Add returns the vector p+q.
func (p Point[N]) Add(q Point[N]) Point[N] {
	return Point[N]{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector p-q.
func (p Point[N]) Sub(q Point[N]) Point[N] {
	return Point[N]{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p multiplied by k.
func (p Point[N]) Scale(k N) Point[N] {
	return Point[N]{X: p.X * k, Y: p.Y * k}
}

// Float converts the point to float64 components.
func (p Point[N]) Float() Point[float64] {
	return Point[float64]{X: float64(p.X), Y: float64(p.Y)}
}
