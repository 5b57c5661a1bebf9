package delaunay

import (
	"slices"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// InsertSite adds x to the triangulation and restores the Delaunay property
// around it. Inserting a site that is already present (within the epsilon) does
// nothing.
func (t *Triangulation) InsertSite(x geom.Point) (err error) {
	defer func() {
		if recovered := handlePanicRecover(recover()); recovered != nil {
			err = recovered
		}
	}()

	if !validSite(x) {
		return errors.Wrapf(ErrInvalidSite, "insert %v", x)
	}

	e, err := t.locate(x, t.start)
	if err != nil {
		return err
	}

	e, pos := t.classify(x, e)
	switch pos {
	case onVertex:
		t.log.Debug("[insert] duplicate site, nothing to do", zap.Stringer("site", x))
		return nil
	case onEdge:
		if t.opts.onEdge == OnEdgeReject {
			return errors.Wrapf(ErrOnEdge, "%v on %s", x, e)
		}
		if t.debugging() {
			t.log.Debug("[insert] site on edge, splitting", zap.Stringer("site", x), zap.String("edge", t.edgeName(e)))
		}
		// x goes into the quadrilateral left by e
		e = e.Oprev()
		if _, err := t.bag.DeleteEdge(e.Onext()); err != nil {
			return errors.Wrap(err, "split")
		}
	}

	first, last := t.star(x, e)
	if err := t.legalize(x, first, last); err != nil {
		return err
	}

	t.start = first
	t.sites = append(t.sites, x)
	t.log.Debug("[insert] site added",
		zap.Stringer("site", x),
		zap.Int("sites", len(t.sites)),
		zap.Int("edges", t.bag.Len()),
	)
	return nil
}

// InsertSites inserts xs in order and stops at the first failure.
func (t *Triangulation) InsertSites(xs []geom.Point) error {
	for i, x := range xs {
		if err := t.InsertSite(x); err != nil {
			return errors.Wrapf(err, "site %d", i)
		}
	}
	return nil
}

// star connects x to every vertex of the face left of e. It returns the first
// spoke (from the origin of e to x) and the face edge legalization starts at.
func (t *Triangulation) star(x geom.Point, e Edge) (Edge, Edge) {
	face := slices.Collect(e.LOrbit())
	if len(face) < 3 {
		fatalf("face of %s has %d edges", e.Label(), len(face))
	}

	base := t.bag.CreateEdge()
	t.bag.Splice(face[0], base)
	base.SetDest(x)
	first := base
	for _, f := range face[:len(face)-1] {
		base = t.bag.Connect(f, base.Sym())
	}

	if t.debugging() {
		t.log.Debug("[star] face starred",
			zap.Stringer("site", x),
			zap.Int("spokes", len(face)),
			zap.String("first", t.edgeName(first)),
		)
	}
	return first, face[len(face)-1]
}

// legalize flips the edges opposite x until every triangle around x passes the
// circle test. e runs over the polygon around x, counterclockwise from start.
func (t *Triangulation) legalize(x geom.Point, first, e Edge) error {
	limit := t.stepLimit()
	for steps := 0; steps < limit; steps++ {
		cand := e.Oprev()
		if t.illegal(x, e, cand) {
			if t.debugging() {
				t.log.Debug("[legalize] swap", zap.String("edge", t.edgeName(e)))
			}
			if err := t.bag.Swap(e); err != nil {
				return errors.Wrapf(err, "legalize %s", e.Label())
			}
			e = e.Oprev()
			continue
		}
		if e.Onext().Is(first) {
			return nil
		}
		e = e.Onext().Lprev()
	}

	t.log.Error("[legalize] flips did not settle", zap.Stringer("site", x), zap.Int("steps", limit))
	return errors.Wrapf(ErrSearchFailed, "legalize %v after %d steps", x, limit)
}

// illegal: the far vertex of the triangle across e lies inside the circle
// through x and e. Boundary edges are never flipped.
func (t *Triangulation) illegal(x geom.Point, e, cand Edge) bool {
	if IsBoundaryEdge(e) {
		return false
	}
	org, dest := mustEndpoints(e)
	_, far := mustEndpoints(cand)
	return rightOf(far, e) && geom.InCircle(org, far, dest, x)
}
