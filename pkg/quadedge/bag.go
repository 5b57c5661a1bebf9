// Package quadedge implements the quad-edge structure of
//
//	Primitives for the Manipulation of General Subdivisions and the Computation of Voronoi Diagrams
//	Leonidas Guibas and Jorge Stolfi
//	ACM Transactions on Graphics, Vol. 4, No. 2, April 1985, Pages 74-123.
//
// All directed edge records live in a Bag. Callers hold Edge handles (bag +
// id) and navigate or mutate only through them, so rot/onext rings are plain
// id indirection rather than pointer cycles.
package quadedge

import (
	"slices"

	"github.com/pkg/errors"
)

type record[T comparable] struct {
	quad  EdgeID
	rot   EdgeID
	onext EdgeID
	data  T
	set   bool
}

// Bag owns every record of one mesh. It is not safe for concurrent mutation.
type Bag[T comparable] struct {
	records map[EdgeID]*record[T]
	lastID  EdgeID
	quads   int
}

func New[T comparable]() *Bag[T] {
	return &Bag[T]{records: make(map[EdgeID]*record[T])}
}

// Len is the number of live quads (undirected edges).
func (b *Bag[T]) Len() int {
	return b.quads
}

// Edge returns the handle for id when the record is live.
func (b *Bag[T]) Edge(id EdgeID) (Edge[T], bool) {
	_, ok := b.records[id]
	return Edge[T]{b, id}, ok
}

func (b *Bag[T]) Contains(e Edge[T]) bool {
	return e.bag == b && e.Live()
}

func (b *Bag[T]) nextID() EdgeID {
	b.lastID++
	return b.lastID
}

func (b *Bag[T]) own(e Edge[T]) {
	if e.bag != b {
		panic(errors.Wrapf(ErrForeignEdge, "edge %s", e.Label()))
	}
}

// Basic topological operators, p. 96

// CreateEdge allocates an isolated quad and returns its canonical edge.
func (b *Bag[T]) CreateEdge() Edge[T] {
	e0, e1, e2, e3 := b.nextID(), b.nextID(), b.nextID(), b.nextID()
	b.records[e0] = &record[T]{quad: e0, rot: e1, onext: e0}
	b.records[e1] = &record[T]{quad: e0, rot: e2, onext: e3}
	b.records[e2] = &record[T]{quad: e0, rot: e3, onext: e2}
	b.records[e3] = &record[T]{quad: e0, rot: e0, onext: e1}
	b.quads++
	return Edge[T]{b, e0}
}

// Splice merges the origin orbits of a and c when they are distinct and splits
// them when they are the same; it is its own inverse. Afterwards c's orbit
// carries a's origin data (and likewise for the dual rings), which merges two
// vertices into one. Callers that split and want distinct vertices must set the
// data again. When a has no origin data but c does, c's data is copied onto a's
// orbit instead, so a merge never leaves an orbit half unset.
func (b *Bag[T]) Splice(a, c Edge[T]) {
	b.own(a)
	b.own(c)

	alpha := a.Onext().Rot()
	beta := c.Onext().Rot()

	t1 := c.Onext().id
	t2 := a.Onext().id
	t3 := beta.Onext().id
	t4 := alpha.Onext().id

	a.rec().onext = t1
	c.rec().onext = t2
	alpha.rec().onext = t3
	beta.rec().onext = t4

	shareOrg(a, c)
	shareOrg(alpha, beta)
}

// shareOrg copies the origin data of a onto c's orbit. When only c has data
// it flows the other way, so a merged orbit never mixes set and unset records.
func shareOrg[T comparable](a, c Edge[T]) {
	if v, ok := a.Org(); ok {
		c.SetOrg(v)
	} else if v, ok := c.Org(); ok {
		a.SetOrg(v)
	}
}

// DeleteEdge takes e out of both endpoint orbits and drops its quad.
func (b *Bag[T]) DeleteEdge(e Edge[T]) (Detached[T], error) {
	if !b.Contains(e) {
		return Detached[T]{}, errors.Wrapf(ErrDeadEdge, "delete %s", e.Label())
	}

	if !e.Onext().Is(e) {
		b.Splice(e, e.Oprev())
	}
	if sym := e.Sym(); !sym.Onext().Is(sym) {
		b.Splice(sym, sym.Oprev())
	}

	d := Detached[T]{ID: e.id}
	d.Org, d.HasOrg = e.Org()
	d.Dest, d.HasDest = e.Dest()

	for _, id := range []EdgeID{e.id, e.Rot().id, e.Sym().id, e.InvRot().id} {
		delete(b.records, id)
	}
	b.quads--
	return d, nil
}

// Concat glues c onto the destination of a.
func (b *Bag[T]) Concat(a, c Edge[T]) {
	b.Splice(a.Sym(), c)
}

// AddEdge creates an edge starting at a's destination.
func (b *Bag[T]) AddEdge(a Edge[T]) Edge[T] {
	c := b.CreateEdge()
	b.Concat(a, c)
	return c
}

// Derived topological operators, p. 103

// Connect adds an edge from a's destination to c's origin so that a, c and the
// new edge share a left face. The new edge takes its endpoint data from a and c.
func (b *Bag[T]) Connect(a, c Edge[T]) Edge[T] {
	e := b.CreateEdge()
	b.Splice(a.Lnext(), e)
	b.Splice(c, e.Sym())
	return e
}

// AddPolygon builds a closed cycle of n edges and returns the first one. The
// rest follow through Lnext.
func (b *Bag[T]) AddPolygon(n int) (Edge[T], error) {
	if n < 2 {
		return Edge[T]{}, errors.Wrapf(ErrPolygonTooSmall, "n=%d", n)
	}
	first := b.CreateEdge()
	last := first
	for i := 0; i < n-2; i++ {
		last = b.AddEdge(last)
	}
	b.Connect(last, first)
	return first, nil
}

// Swap turns e into the other diagonal of the quadrilateral formed by its two
// triangles. The four boundary edges are left untouched.
func (b *Bag[T]) Swap(e Edge[T]) error {
	if !b.Contains(e) {
		return errors.Wrapf(ErrDeadEdge, "swap %s", e.Label())
	}
	if !b.isDiagonal(e) {
		return errors.Wrapf(ErrNotInterior, "swap %s", e.Label())
	}

	a := e.Oprev()
	c := e.Sym().Oprev()
	b.Splice(e, a)
	b.Splice(e.Sym(), c)
	b.Splice(a.Lnext(), e)
	b.Splice(c.Lnext(), e.Sym())
	return nil
}

// isDiagonal: both faces are triangles and they have only e in common.
func (b *Bag[T]) isDiagonal(e Edge[T]) bool {
	left := slices.Collect(e.LOrbit())
	right := slices.Collect(e.ROrbit())
	if len(left) != 3 || len(right) != 3 {
		return false
	}
	for _, l := range left[1:] {
		for _, r := range right[1:] {
			if l.Quad().Is(r.Quad()) {
				return false
			}
		}
	}
	return true
}

// Edges lists the canonical edge of every live quad in creation order.
func (b *Bag[T]) Edges() []Edge[T] {
	edges := make([]Edge[T], 0, b.quads)
	for id, r := range b.records {
		if r.quad == id {
			edges = append(edges, Edge[T]{b, id})
		}
	}
	sortEdges(edges)
	return edges
}

// DirectedEdges lists all four records of every live quad.
func (b *Bag[T]) DirectedEdges() []Edge[T] {
	edges := make([]Edge[T], 0, len(b.records))
	for id := range b.records {
		edges = append(edges, Edge[T]{b, id})
	}
	sortEdges(edges)
	return edges
}

func sortEdges[T comparable](edges []Edge[T]) {
	slices.SortFunc(edges, func(x, y Edge[T]) int {
		switch {
		case x.id < y.id:
			return -1
		case x.id > y.id:
			return 1
		}
		return 0
	})
}
