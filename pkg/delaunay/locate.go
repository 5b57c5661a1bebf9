package delaunay

import (
	"slices"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/quadedge"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Locate walks from start towards x. For a site of the mesh it returns an edge
// leaving that site; otherwise an edge whose left face contains x, with x on
// that edge or strictly inside the face.
func (t *Triangulation) Locate(x geom.Point, start Edge) (e Edge, err error) {
	defer func() {
		if recovered := handlePanicRecover(recover()); recovered != nil {
			err = recovered
		}
	}()

	if !t.bag.Contains(start) {
		return Edge{}, errors.Wrapf(quadedge.ErrDeadEdge, "locate from %s", start.Label())
	}
	if !validSite(x) {
		return Edge{}, errors.Wrapf(ErrInvalidSite, "locate %v", x)
	}
	e, err = t.locate(x, start)
	if err != nil {
		return Edge{}, err
	}
	if f, pos := t.classify(x, e); pos == onVertex {
		return f, nil
	}
	return e, nil
}

func (t *Triangulation) locate(x geom.Point, start Edge) (Edge, error) {
	e := start
	limit := t.stepLimit()
	for steps := 0; steps < limit; steps++ {
		org, dest := mustEndpoints(e)
		switch {
		case x.Equal(org) || x.Equal(dest):
			return e, nil
		case !leftOf(x, e):
			e = e.Sym()
		case !rightOf(x, e.Onext()):
			e = e.Onext()
		case !rightOf(x, e.Dprev()):
			e = e.Dprev()
		default:
			return e, nil
		}
	}

	t.log.Error("[locate] walk did not settle",
		zap.Stringer("site", x),
		zap.Int("steps", limit),
	)
	return Edge{}, errors.Wrapf(ErrSearchFailed, "locate %v after %d steps", x, limit)
}

type position int

const (
	inFace position = iota
	onVertex
	onEdge
)

// classify places x against the face left of e, which the walk found to hold
// it. onVertex returns the edge leaving the coinciding vertex, onEdge the edge
// x lies on.
func (t *Triangulation) classify(x geom.Point, e Edge) (Edge, position) {
	face := slices.Collect(e.LOrbit())
	for _, f := range face {
		org, _ := mustEndpoints(f)
		if geom.Near(x, org, t.opts.epsilon) {
			return f, onVertex
		}
	}
	for _, f := range face {
		org, dest := mustEndpoints(f)
		if geom.OnEdge(x, org, dest, t.opts.epsilon) {
			return f, onEdge
		}
	}
	return e, inFace
}
