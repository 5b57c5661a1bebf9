// Package delaunay maintains a Delaunay triangulation by incremental insertion
// (Guibas & Stolfi 1985, section 8) on top of the quad-edge bag.
//
// The mesh starts as a polygon of points at infinity. Every finite site lies
// inside it, so a site always has a containing face and the walk never leaves
// the mesh. Edges between two points at infinity are the boundary and are never
// flipped.
package delaunay

import (
	"math"

	"github.com/0x0FACED/go-delaunay/pkg/dbg"
	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/logger"
	"github.com/0x0FACED/go-delaunay/pkg/quadedge"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Edge is a directed mesh edge carrying its origin vertex.
type Edge = quadedge.Edge[geom.Point]

// Triangulation owns one mesh. It is not safe for concurrent use.
type Triangulation struct {
	bag   *quadedge.Bag[geom.Point]
	start Edge
	sites []geom.Point
	opts  options
	log   *logger.ZapLogger
	names *dbg.Namer
}

func New(opts ...Option) (*Triangulation, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	if o.log == nil {
		o.log = logger.NewNop()
	}

	bag := quadedge.New[geom.Point]()
	corners := o.bootstrap.corners()
	first, err := bag.AddPolygon(len(corners))
	if err != nil {
		return nil, errors.Wrap(err, "bootstrap")
	}
	e := first
	for _, c := range corners {
		e.SetOrg(c)
		e = e.Lnext()
	}

	o.log.Debug("[bootstrap] mesh ready",
		zap.Stringer("bootstrap", o.bootstrap),
		zap.Int("edges", bag.Len()),
	)
	return &Triangulation{bag: bag, start: first, opts: o, log: o.log, names: dbg.NewNamer()}, nil
}

// Bag exposes the underlying mesh for inspection. Mutating it directly voids
// every guarantee of the triangulation.
func (t *Triangulation) Bag() *quadedge.Bag[geom.Point] {
	return t.bag
}

// StartingEdge is where the next walk begins: the first spoke of the latest
// insertion, or the bootstrap polygon.
func (t *Triangulation) StartingEdge() Edge {
	return t.start
}

// IsBoundaryPoint reports whether p is one of the points at infinity.
func IsBoundaryPoint(p geom.Point) bool {
	return p.IsInf()
}

// IsBoundaryEdge reports whether both endpoints of e are at infinity. Edges
// without data are not boundary edges.
func IsBoundaryEdge(e Edge) bool {
	org, dest, err := endpoints(e)
	return err == nil && IsBoundaryPoint(org) && IsBoundaryPoint(dest)
}

// RightOf reports whether x is on the right of e or on its line.
func RightOf(x geom.Point, e Edge) (bool, error) {
	org, dest, err := endpoints(e)
	if err != nil {
		return false, err
	}
	return geom.CCW(x, dest, org), nil
}

// LeftOf reports whether x is on the left of e or on its line.
func LeftOf(x geom.Point, e Edge) (bool, error) {
	org, dest, err := endpoints(e)
	if err != nil {
		return false, err
	}
	return geom.CCW(x, org, dest), nil
}

func endpoints(e Edge) (geom.Point, geom.Point, error) {
	if !e.Live() {
		return geom.Point{}, geom.Point{}, errors.Wrapf(quadedge.ErrDeadEdge, "edge %s", e.Label())
	}
	org, ok := e.Org()
	if !ok {
		return geom.Point{}, geom.Point{}, errors.Wrapf(ErrMissingVertex, "origin of %s", e.Label())
	}
	dest, ok := e.Dest()
	if !ok {
		return geom.Point{}, geom.Point{}, errors.Wrapf(ErrMissingVertex, "destination of %s", e.Label())
	}
	return org, dest, nil
}

func mustEndpoints(e Edge) (geom.Point, geom.Point) {
	org, dest, err := endpoints(e)
	if err != nil {
		fatal(err)
	}
	return org, dest
}

func rightOf(x geom.Point, e Edge) bool {
	org, dest := mustEndpoints(e)
	return geom.CCW(x, dest, org)
}

func leftOf(x geom.Point, e Edge) bool {
	org, dest := mustEndpoints(e)
	return geom.CCW(x, org, dest)
}

// stepLimit bounds one walk. A sound mesh needs far fewer steps.
func (t *Triangulation) stepLimit() int {
	if t.opts.maxSteps > 0 {
		return t.opts.maxSteps
	}
	return max(64, 8*t.bag.Len())
}

func validSite(x geom.Point) bool {
	return !x.IsInf() && !math.IsNaN(x.X) && !math.IsNaN(x.Y)
}

func (t *Triangulation) debugging() bool {
	return t.log.Enabled(zapcore.DebugLevel)
}

// edgeName is a readable, colour-coded name for log lines. Names are keyed by
// edge id so the memo does not keep the mesh alive.
func (t *Triangulation) edgeName(e Edge) string {
	org, dest, err := endpoints(e)
	kind := dbg.Finite
	switch {
	case err != nil:
		return t.names.Name(e.ID())
	case org.IsInf() && dest.IsInf():
		kind = dbg.Boundary
	case org.IsInf() || dest.IsInf():
		kind = dbg.Outer
	}
	return t.names.Colored(e.ID(), kind) + " " + e.String()
}
