package delaunay

import (
	"slices"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/quadedge"
)

// The Voronoi diagram is read off the dual: every Delaunay triangle gives a
// Voronoi vertex at its circumcentre, and every Delaunay edge between two
// finite triangles gives the Voronoi edge joining their centres. Parts that
// would run out to infinity are left out.

// Segment is the Voronoi edge dual to the Delaunay edge Edge.
type Segment struct {
	A, B geom.Point
	Edge quadedge.EdgeID
}

// Cell is the closed Voronoi region of Site, its vertices counterclockwise.
type Cell struct {
	Site     geom.Point
	Vertices []geom.Point
}

func (t *Triangulation) VoronoiEdges() []Segment {
	var out []Segment
	for _, e := range t.bag.Edges() {
		a, ok := faceCenter(e)
		if !ok {
			continue
		}
		b, ok := faceCenter(e.Sym())
		if !ok {
			continue
		}
		out = append(out, Segment{A: a, B: b, Edge: e.ID()})
	}
	return out
}

// VoronoiCells returns the cells of sites surrounded by finite triangles only.
func (t *Triangulation) VoronoiCells() []Cell {
	var out []Cell
	done := make(map[geom.Point]struct{})
	for _, d := range t.primalEdges() {
		site, ok := d.Org()
		if !ok || site.IsInf() {
			continue
		}
		if _, ok := done[site]; ok {
			continue
		}
		done[site] = struct{}{}

		if cell, ok := cellAround(site, d); ok {
			out = append(out, cell)
		}
	}
	return out
}

func cellAround(site geom.Point, d Edge) (Cell, bool) {
	cell := Cell{Site: site}
	for o := range d.OOrbit() {
		c, ok := faceCenter(o)
		if !ok {
			return Cell{}, false
		}
		cell.Vertices = append(cell.Vertices, c)
	}
	return cell, true
}

// faceCenter is the circumcentre of the face left of e, when that face is a
// finite triangle.
func faceCenter(e Edge) (geom.Point, bool) {
	tr, ok := triangle(slices.Collect(e.LOrbit()))
	if !ok {
		return geom.Point{}, false
	}
	c, _, err := tr.Circumcircle()
	return c, err == nil
}
