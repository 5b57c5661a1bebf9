package delaunay

import (
	"slices"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/quadedge"
)

// EdgeView is a read-only snapshot of one undirected mesh edge.
type EdgeView struct {
	ID    quadedge.EdgeID
	Label string
	Org   geom.Point
	Dest  geom.Point
	// Boundary edges join two points at infinity.
	Boundary bool
	// Finite edges join two sites.
	Finite bool
}

func (t *Triangulation) Edges() []EdgeView {
	edges := t.bag.Edges()
	views := make([]EdgeView, 0, len(edges))
	for _, e := range edges {
		org, _ := e.Org()
		dest, _ := e.Dest()
		views = append(views, EdgeView{
			ID:       e.ID(),
			Label:    e.Label(),
			Org:      org,
			Dest:     dest,
			Boundary: org.IsInf() && dest.IsInf(),
			Finite:   !org.IsInf() && !dest.IsInf(),
		})
	}
	return views
}

// Triangle is a face whose three vertices are sites, counterclockwise.
type Triangle struct {
	A, B, C geom.Point
	// Edge is the id of the directed edge A→B, whose left face this is.
	Edge quadedge.EdgeID
}

func (tr Triangle) Circumcircle() (geom.Point, float64, error) {
	return geom.Circumcircle(tr.A, tr.B, tr.C)
}

func (tr Triangle) HasVertex(p geom.Point) bool {
	return tr.A.Equal(p) || tr.B.Equal(p) || tr.C.Equal(p)
}

// Triangles lists every finite triangular face once.
func (t *Triangulation) Triangles() []Triangle {
	var out []Triangle
	seen := make(map[quadedge.EdgeID]struct{})
	for _, d := range t.primalEdges() {
		if _, ok := seen[d.ID()]; ok {
			continue
		}
		face := slices.Collect(d.LOrbit())
		for _, f := range face {
			seen[f.ID()] = struct{}{}
		}
		if tr, ok := triangle(face); ok {
			out = append(out, tr)
		}
	}
	return out
}

func triangle(face []Edge) (Triangle, bool) {
	if len(face) != 3 {
		return Triangle{}, false
	}
	var pts [3]geom.Point
	for i, f := range face {
		p, ok := f.Org()
		if !ok || p.IsInf() {
			return Triangle{}, false
		}
		pts[i] = p
	}
	return Triangle{A: pts[0], B: pts[1], C: pts[2], Edge: face[0].ID()}, true
}

// primalEdges are both directions of every quad, by id.
func (t *Triangulation) primalEdges() []Edge {
	quads := t.bag.Edges()
	out := make([]Edge, 0, 2*len(quads))
	for _, e := range quads {
		out = append(out, e, e.Sym())
	}
	return out
}

// Sites returns the inserted sites in insertion order, duplicates excluded.
func (t *Triangulation) Sites() []geom.Point {
	return slices.Clone(t.sites)
}
