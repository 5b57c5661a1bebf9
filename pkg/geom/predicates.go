package geom

import (
	"math"

	"github.com/pkg/errors"
)

// Epsilon is the default tolerance for on-edge and coincidence tests.
const Epsilon = 1e-6

var ErrCollinear = errors.New("circumcircle of collinear points")

type Matrix3x3 [3][3]float64

func Det3x3(m Matrix3x3) float64 {
	a, b, c := m[0][0], m[0][1], m[0][2]
	d, e, f := m[1][0], m[1][1], m[1][2]
	g, h, i := m[2][0], m[2][1], m[2][2]
	return a*e*i + b*f*g + c*d*h - g*e*c - h*f*a - i*d*b
}

// TriArea2 is twice the signed area of abc in y-up terms, i.e. the determinant
// |ax ay 1; bx by 1; cx cy 1| expanded about a. Sentinels are replaced by their
// safe coordinates. With a fixed, swapping b and c negates the result exactly,
// which keeps walks from bouncing on points collinear with a sentinel.
func TriArea2(a, b, c Point) float64 {
	a, b, c = a.Safe(), b.Safe(), c.Safe()
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// CCW reports whether a, b, c turn counterclockwise on a y-down plane.
// Collinear triples count as counterclockwise.
func CCW(a, b, c Point) bool {
	return TriArea2(a, b, c) <= 0
}

// InCircle reports whether d lies inside (or on) the circle through a, b and c.
// The triple is brought into CCW order first, so the answer does not depend on
// the order a, b, c are given in.
func InCircle(a, b, c, d Point) bool {
	if !CCW(a, b, c) {
		b, c = c, b
	}
	a, b, c, d = a.Safe(), b.Safe(), c.Safe(), d.Safe()

	adx, ady := a.X-d.X, a.Y-d.Y
	bdx, bdy := b.X-d.X, b.Y-d.Y
	cdx, cdy := c.X-d.X, c.Y-d.Y

	abdet := adx*bdy - bdx*ady
	bcdet := bdx*cdy - cdx*bdy
	cadet := cdx*ady - adx*cdy

	alift := adx*adx + ady*ady
	blift := bdx*bdx + bdy*bdy
	clift := cdx*cdx + cdy*cdy

	return alift*bcdet+blift*cadet+clift*abdet <= 0
}

// Circumcircle returns the centre and radius of the circle through a, b and c.
// Collinear input is a caller error.
func Circumcircle(a, b, c Point) (Point, float64, error) {
	a, b, c = a.Safe(), b.Safe(), c.Safe()
	alift := a.X*a.X + a.Y*a.Y
	blift := b.X*b.X + b.Y*b.Y
	clift := c.X*c.X + c.Y*c.Y

	xNum := Det3x3(Matrix3x3{
		{alift, a.Y, 1},
		{blift, b.Y, 1},
		{clift, c.Y, 1},
	})
	yNum := Det3x3(Matrix3x3{
		{a.X, alift, 1},
		{b.X, blift, 1},
		{c.X, clift, 1},
	})
	denom := 2 * Det3x3(Matrix3x3{
		{a.X, a.Y, 1},
		{b.X, b.Y, 1},
		{c.X, c.Y, 1},
	})
	if denom == 0 {
		return Point{}, 0, errors.Wrapf(ErrCollinear, "%v %v %v", a, b, c)
	}

	center := Point{xNum / denom, yNum / denom}
	if math.IsNaN(center.X) || math.IsNaN(center.Y) || center.IsInf() {
		return Point{}, 0, errors.Wrapf(ErrCollinear, "%v %v %v", a, b, c)
	}
	return center, a.Sub(center).Norm(), nil
}

// OnEdge reports whether x coincides with a or b, or lies on the segment ab
// within eps.
func OnEdge(x, a, b Point, eps float64) bool {
	t1 := x.Safe().Sub(a.Safe()).Norm()
	t2 := x.Safe().Sub(b.Safe()).Norm()
	if t1 < eps || t2 < eps {
		return true
	}
	t3 := a.Safe().Sub(b.Safe()).Norm()
	if t1 > t3 || t2 > t3 {
		// дальше от концов, чем концы друг от друга
		return false
	}
	return math.Abs(NewLine(a, b).Eval(x)) < eps
}

// Near compares two points with a tolerance.
func Near(p, q Point, eps float64) bool {
	return math.Abs(p.X-q.X) < eps && math.Abs(p.Y-q.Y) < eps
}
