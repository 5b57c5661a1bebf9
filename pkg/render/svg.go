package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo/float"
)

// SVG writes the scene as a document of the same size PNG would produce.
func SVG(w io.Writer, s Scene, scale float64) error {
	width, height := s.size(scale)
	lo := s.Bounds.Lo()

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(float64(width), float64(height))
	canvas.Rect(0, 0, float64(width), float64(height), "fill:black")
	canvas.Gtransform(fmt.Sprintf("scale(%g) translate(%g,%g)", scale, -lo.X, -lo.Y))

	if len(s.Face) >= 3 {
		xs := make([]float64, len(s.Face))
		ys := make([]float64, len(s.Face))
		for i, p := range s.Face {
			xs[i], ys[i] = p.X, p.Y
		}
		canvas.Polygon(xs, ys, "fill:orange;fill-opacity:0.35;stroke:none")
	}

	canvas.Gid("voronoi")
	for _, seg := range s.Voronoi {
		canvas.Line(seg.A.X, seg.A.Y, seg.B.X, seg.B.Y, "stroke:#66f;stroke-width:1")
	}
	canvas.Gend()

	canvas.Gid("delaunay")
	for _, seg := range s.Delaunay {
		canvas.Line(seg.A.X, seg.A.Y, seg.B.X, seg.B.Y, "stroke:cyan;stroke-width:2")
	}
	canvas.Gend()

	canvas.Gid("sites")
	for _, p := range s.sortedSites() {
		canvas.Circle(p.X, p.Y, siteRadius/scale, "fill:lightgreen;stroke:none")
	}
	canvas.Gend()

	if s.Probe != nil {
		canvas.Circle(s.Probe.X, s.Probe.Y, siteRadius/scale, "fill:orange;stroke:none")
	}

	canvas.Gend()
	canvas.End()
	return ew.err
}

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
