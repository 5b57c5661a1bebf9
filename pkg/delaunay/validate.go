package delaunay

import (
	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/pkg/errors"
)

// Validate checks the quad-edge invariants, that every site is a mesh vertex,
// and that no site lies strictly inside the circumcircle of a finite triangle.
// Sites on a circle are allowed: cocircular input has no unique answer.
func (t *Triangulation) Validate() error {
	if err := t.bag.Check(); err != nil {
		return err
	}

	vertices := make(map[geom.Point]struct{})
	for _, e := range t.primalEdges() {
		if p, ok := e.Org(); ok && !p.IsInf() {
			vertices[p] = struct{}{}
		}
	}
	if len(vertices) != len(t.sites) {
		return errors.Wrapf(ErrNotDelaunay, "%d sites but %d finite vertices", len(t.sites), len(vertices))
	}

	for _, tr := range t.Triangles() {
		center, r, err := tr.Circumcircle()
		if err != nil {
			return errors.Wrapf(ErrNotDelaunay, "triangle %v %v %v: %v", tr.A, tr.B, tr.C, err)
		}
		tol := t.opts.epsilon * max(1, r)
		for _, s := range t.sites {
			if tr.HasVertex(s) {
				continue
			}
			if r-s.Sub(center).Norm() > tol {
				return errors.Wrapf(ErrNotDelaunay, "%v inside the circumcircle of %v %v %v", s, tr.A, tr.B, tr.C)
			}
		}
	}
	return nil
}
