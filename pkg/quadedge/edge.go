package quadedge

import (
	"fmt"

	"github.com/pkg/errors"
)

// EdgeID identifies one directed edge record. Ids are handed out by the owning
// bag in increasing order and are never reused.
type EdgeID uint64

// Label renders the id alphabetically: 1 is "a", 26 is "z", 27 is "aa".
func (id EdgeID) Label() string {
	var buf []byte
	for n := uint64(id); n > 0; n /= 26 {
		n--
		buf = append(buf, byte('a'+n%26))
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// Edge is a handle on a directed edge record. It holds no structural links of
// its own; every navigation step goes through the bag.
type Edge[T comparable] struct {
	bag *Bag[T]
	id  EdgeID
}

func (e Edge[T]) ID() EdgeID {
	return e.id
}

func (e Edge[T]) Label() string {
	return e.id.Label()
}

// Is compares identities.
func (e Edge[T]) Is(f Edge[T]) bool {
	return e.bag == f.bag && e.id == f.id
}

// Live reports whether the record still belongs to the mesh.
func (e Edge[T]) Live() bool {
	if e.bag == nil {
		return false
	}
	_, ok := e.bag.records[e.id]
	return ok
}

func (e Edge[T]) rec() *record[T] {
	if e.bag == nil {
		panic(errors.Wrap(ErrDeadEdge, "zero edge handle"))
	}
	r, ok := e.bag.records[e.id]
	if !ok {
		panic(errors.Wrapf(ErrDeadEdge, "edge %s", e.Label()))
	}
	return r
}

// Quad returns the canonical edge of the quad this record belongs to.
func (e Edge[T]) Quad() Edge[T] {
	return Edge[T]{e.bag, e.rec().quad}
}

// Primitive algebraic operations

func (e Edge[T]) Rot() Edge[T] {
	return Edge[T]{e.bag, e.rec().rot}
}

func (e Edge[T]) Onext() Edge[T] {
	return Edge[T]{e.bag, e.rec().onext}
}

// Derived algebraic operations

func (e Edge[T]) Sym() Edge[T] {
	return e.Rot().Rot()
}

func (e Edge[T]) InvRot() Edge[T] {
	return e.Rot().Rot().Rot()
}

func (e Edge[T]) Oprev() Edge[T] {
	return e.Rot().Onext().Rot()
}

func (e Edge[T]) Dnext() Edge[T] {
	return e.Sym().Onext().Sym()
}

func (e Edge[T]) Dprev() Edge[T] {
	return e.InvRot().Onext().InvRot()
}

func (e Edge[T]) Lnext() Edge[T] {
	return e.InvRot().Onext().Rot()
}

func (e Edge[T]) Lprev() Edge[T] {
	return e.Onext().Sym()
}

func (e Edge[T]) Rnext() Edge[T] {
	return e.Rot().Onext().InvRot()
}

func (e Edge[T]) Rprev() Edge[T] {
	return e.Sym().Onext()
}

// Org returns the origin payload, if one was set.
func (e Edge[T]) Org() (T, bool) {
	r := e.rec()
	return r.data, r.set
}

// Dest is by definition the origin of Sym.
func (e Edge[T]) Dest() (T, bool) {
	return e.Sym().Org()
}

// SetOrg writes v into every record of the origin orbit: they share one vertex.
func (e Edge[T]) SetOrg(v T) {
	for o := range e.OOrbit() {
		r := o.rec()
		r.data = v
		r.set = true
	}
}

func (e Edge[T]) SetDest(v T) {
	e.Sym().SetOrg(v)
}

func (e Edge[T]) String() string {
	if !e.Live() {
		return fmt.Sprintf("%s [detached]", e.Label())
	}
	return fmt.Sprintf("%s [from %s to %s]", e.Label(), show(e.Org()), show(e.Dest()))
}

func show[T any](v T, ok bool) string {
	if !ok {
		return "∅"
	}
	return fmt.Sprint(v)
}

// Detached is what remains readable of an edge after DeleteEdge.
type Detached[T comparable] struct {
	ID      EdgeID
	Org     T
	Dest    T
	HasOrg  bool
	HasDest bool
}

func (d Detached[T]) Label() string {
	return d.ID.Label()
}
