package geom

import (
	"fmt"
	"math"
)

// Point is a site or mesh vertex. The y axis points down, as on a canvas.
type Point struct {
	X float64
	Y float64
}

// Points at infinity. They bound the triangulation and are never drawn.
var (
	InfTopLeft     = Point{math.Inf(-1), math.Inf(-1)}
	InfTopRight    = Point{math.Inf(1), math.Inf(-1)}
	InfBottomRight = Point{math.Inf(1), math.Inf(1)}
	InfBottomLeft  = Point{math.Inf(-1), math.Inf(1)}

	// used by the triangular bootstrap
	InfBottom = Point{0, math.Inf(1)}
	InfRight  = Point{math.Inf(1), 0}
)

// MaxSafeInteger stands in for an infinite coordinate inside the predicates.
const MaxSafeInteger = 1<<53 - 1

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Norm() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Equal is exact: sentinels compare equal only to themselves.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

func (p Point) IsInf() bool {
	return math.IsInf(p.X, 0) || math.IsInf(p.Y, 0)
}

// Safe replaces infinite coordinates with ±MaxSafeInteger so that sentinels can
// take part in determinant arithmetic without producing NaN.
func (p Point) Safe() Point {
	return Point{safe(p.X), safe(p.Y)}
}

func (p Point) String() string {
	return fmt.Sprintf("(%s, %s)", coord(p.X), coord(p.Y))
}

func safe(v float64) float64 {
	switch {
	case math.IsInf(v, -1):
		return -MaxSafeInteger
	case math.IsInf(v, 1):
		return MaxSafeInteger
	default:
		return v
	}
}

func coord(v float64) string {
	switch {
	case math.IsInf(v, -1):
		return "-∞"
	case math.IsInf(v, 1):
		return "∞"
	default:
		return fmt.Sprintf("%g", v)
	}
}
