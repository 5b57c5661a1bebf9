// Package render draws a triangulation to PNG or SVG.
package render

import (
	"slices"

	"github.com/0x0FACED/go-delaunay/pkg/delaunay"
	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

type Segment struct {
	A, B geom.Point
}

// Scene is everything that gets drawn, in mesh coordinates. The y axis points
// down on the page, as in the mesh.
type Scene struct {
	Bounds   r2.Rect
	Sites    []geom.Point
	Delaunay []Segment
	Voronoi  []Segment
	// Face is the finite part of the face a probe fell into.
	Face  []geom.Point
	Probe *geom.Point
}

// FromTriangulation collects the finite Delaunay edges and the closed Voronoi
// edges. Pass r2.EmptyRect() to fit the bounds to the sites.
func FromTriangulation(tr *delaunay.Triangulation, bounds r2.Rect) Scene {
	s := Scene{Bounds: bounds, Sites: tr.Sites()}
	for _, e := range tr.Edges() {
		if e.Finite {
			s.Delaunay = append(s.Delaunay, Segment{e.Org, e.Dest})
		}
	}
	for _, v := range tr.VoronoiEdges() {
		s.Voronoi = append(s.Voronoi, Segment{v.A, v.B})
	}
	if s.Bounds.IsEmpty() {
		s.Bounds = Fit(s.Sites, 20)
	}
	return s
}

// Highlight marks the face of tr that contains p.
func (s *Scene) Highlight(tr *delaunay.Triangulation, p geom.Point) error {
	e, err := tr.Locate(p, tr.StartingEdge())
	if err != nil {
		return errors.Wrapf(err, "highlight %v", p)
	}
	s.Face = s.Face[:0]
	for f := range e.LOrbit() {
		if org, ok := f.Org(); ok && !org.IsInf() {
			s.Face = append(s.Face, org)
		}
	}
	s.Probe = &p
	return nil
}

// Fit is the bounding box of pts grown by margin on every side. No points
// give a unit box at the origin.
func Fit(pts []geom.Point, margin float64) r2.Rect {
	if len(pts) == 0 {
		return r2.RectFromPoints(r2.Point{}, r2.Point{X: 1, Y: 1})
	}
	rect := r2.EmptyRect()
	for _, p := range pts {
		rect = rect.AddPoint(r2.Point{X: p.X, Y: p.Y})
	}
	return rect.ExpandedByMargin(margin)
}

// Canvas is the rectangle [0,w]×[0,h].
func Canvas(width, height int) r2.Rect {
	return r2.RectFromPoints(r2.Point{}, r2.Point{X: float64(width), Y: float64(height)})
}

func (s Scene) size(scale float64) (int, int) {
	size := s.Bounds.Size()
	return max(1, int(size.X*scale+0.5)), max(1, int(size.Y*scale+0.5))
}

// sortedSites keeps output stable for identical meshes.
func (s Scene) sortedSites() []geom.Point {
	sites := slices.Clone(s.Sites)
	slices.SortFunc(sites, func(a, b geom.Point) int {
		switch {
		case a.Y != b.Y:
			if a.Y < b.Y {
				return -1
			}
			return 1
		case a.X < b.X:
			return -1
		case a.X > b.X:
			return 1
		}
		return 0
	})
	return sites
}
