package geom

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriArea2(t *testing.T) {
	assert.Equal(t, 2.0, TriArea2(Point{0, 0}, Point{2, 0}, Point{0, 1}))
	assert.Equal(t, -2.0, TriArea2(Point{0, 0}, Point{0, 1}, Point{2, 0}))
}

func TestCCW(t *testing.T) {
	a, b, c := Point{0, 0}, Point{0, 1}, Point{1, 0}

	assert.True(t, CCW(a, b, c))
	assert.False(t, CCW(c, b, a))

	t.Run("degenerate counts as ccw", func(t *testing.T) {
		assert.True(t, CCW(Point{0, 0}, Point{1, 1}, Point{2, 2}))
		assert.True(t, CCW(Point{2, 2}, Point{1, 1}, Point{0, 0}))
	})

	t.Run("points at infinity", func(t *testing.T) {
		assert.False(t, CCW(InfTopLeft, Point{1, 0}, Point{0, 1}))
		assert.True(t, CCW(InfTopLeft, Point{0, 1}, Point{1, 0}))
		assert.True(t, CCW(Point{1, 0}, InfTopLeft, InfBottomRight))
		assert.False(t, CCW(Point{1, 0}, InfBottomRight, InfTopLeft))
	})

	t.Run("collinear with a sentinel", func(t *testing.T) {
		x, p := Point{200, 200}, Point{350, 350}
		assert.Equal(t, 0.0, TriArea2(x, p, InfBottomRight))
		assert.Equal(t, -TriArea2(x, Point{350, 351}, InfBottomRight), TriArea2(x, InfBottomRight, Point{350, 351}))
	})
}

func TestInCircle(t *testing.T) {
	a, b, c := Point{0, 0}, Point{1, 0}, Point{0, 1}

	assert.True(t, InCircle(a, b, c, Point{0.5, 0.5}))
	for _, d := range []Point{{-0.1, -0.1}, {1.1, -0.1}, {1.1, 1.1}, {-0.1, 1.1}} {
		assert.False(t, InCircle(a, b, c, d), "%v", d)
	}

	t.Run("order of the triple does not matter", func(t *testing.T) {
		assert.True(t, InCircle(a, c, b, Point{0.5, 0.5}))
		assert.False(t, InCircle(c, a, b, Point{1.1, 1.1}))
	})

	t.Run("sentinel behaves like a half plane", func(t *testing.T) {
		// circle through (0,0), (10,0) and a point far below: everything
		// under the x axis is inside
		assert.True(t, InCircle(Point{0, 0}, Point{10, 0}, InfBottom, Point{5, 100}))
		assert.False(t, InCircle(Point{0, 0}, Point{10, 0}, InfBottom, Point{5, -1}))
	})
}

func TestCircumcircle(t *testing.T) {
	center, r, err := Circumcircle(Point{0, 0}, Point{2, 0}, Point{0, 2})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, center.X, 1e-12)
	assert.InDelta(t, 1.0, center.Y, 1e-12)
	assert.InDelta(t, math.Sqrt2, r, 1e-12)

	_, _, err = Circumcircle(Point{0, 0}, Point{1, 1}, Point{3, 3})
	assert.True(t, errors.Is(err, ErrCollinear))
}

func TestOnEdge(t *testing.T) {
	a, b := Point{0, 0}, Point{10, 10}

	assert.True(t, OnEdge(Point{5, 5}, a, b, Epsilon))
	assert.True(t, OnEdge(a, a, b, Epsilon))
	assert.False(t, OnEdge(Point{5, 6}, a, b, Epsilon))
	assert.False(t, OnEdge(Point{11, 11}, a, b, Epsilon))

	t.Run("edge to a sentinel", func(t *testing.T) {
		assert.True(t, OnEdge(Point{200, 200}, Point{100, 100}, InfBottomRight, Epsilon))
		assert.False(t, OnEdge(Point{200, 210}, Point{100, 100}, InfBottomRight, Epsilon))
	})
}

func TestPoint(t *testing.T) {
	p := Point{3, 4}

	assert.Equal(t, 5.0, p.Norm())
	assert.Equal(t, Point{2, 3}, p.Sub(Point{1, 1}))
	assert.True(t, InfTopLeft.Equal(InfTopLeft))
	assert.False(t, InfTopLeft.Equal(InfTopRight))
	assert.True(t, InfRight.IsInf())
	assert.False(t, p.IsInf())
	assert.Equal(t, Point{-MaxSafeInteger, MaxSafeInteger}, InfBottomLeft.Safe())
	assert.Equal(t, "(-∞, 1.5)", Point{math.Inf(-1), 1.5}.String())
}

func TestLine(t *testing.T) {
	l := NewLine(Point{0, 0}, Point{4, 0})

	assert.InDelta(t, 0, l.Eval(Point{2, 0}), 1e-12)
	assert.InDelta(t, 3, math.Abs(l.Eval(Point{2, 3})), 1e-12)
	assert.Equal(t, -l.Eval(Point{1, 3}), l.Eval(Point{1, -3}))
}
