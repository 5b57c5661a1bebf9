package geom

// Line through two points, normalised so that Eval returns the signed distance.
type Line struct {
	A, B, C float64
	anchor  Point
}

func NewLine(p, q Point) Line {
	anchor := p
	if p.IsInf() && !q.IsInf() {
		anchor = q
	}
	p, q, anchor = p.Safe(), q.Safe(), anchor.Safe()
	t := q.Sub(p)
	l := t.Norm()
	a := t.Y / l
	b := -t.X / l
	return Line{
		A:      a,
		B:      b,
		C:      -(a*p.X + b*p.Y),
		anchor: anchor,
	}
}

// Eval is measured from a finite anchor rather than through C: next to a
// sentinel C is of the order of 1e15 and swallows the finite part.
func (l Line) Eval(p Point) float64 {
	p = p.Safe()
	return l.A*(p.X-l.anchor.X) + l.B*(p.Y-l.anchor.Y)
}
