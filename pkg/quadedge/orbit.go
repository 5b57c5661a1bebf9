package quadedge

import "iter"

// Orbits are produced lazily and breadth first from the starting edge over one
// or more step functions. Each distinct edge is yielded once; a seen-set and a
// step bound keep a corrupt structure from looping forever. The sequences do
// not mutate the mesh and can be ranged over any number of times, but not
// across a Splice, DeleteEdge or Swap.

func (e Edge[T]) OOrbit() iter.Seq[Edge[T]] {
	return e.orbit(Edge[T].Onext)
}

func (e Edge[T]) DOrbit() iter.Seq[Edge[T]] {
	return e.orbit(Edge[T].Dnext)
}

func (e Edge[T]) LOrbit() iter.Seq[Edge[T]] {
	return e.orbit(Edge[T].Lnext)
}

func (e Edge[T]) ROrbit() iter.Seq[Edge[T]] {
	return e.orbit(Edge[T].Rnext)
}

// OLOrbit reaches every primal edge connected to e.
func (e Edge[T]) OLOrbit() iter.Seq[Edge[T]] {
	return e.orbit(Edge[T].Onext, Edge[T].Lnext)
}

func (e Edge[T]) DROrbit() iter.Seq[Edge[T]] {
	return e.orbit(Edge[T].Dnext, Edge[T].Rnext)
}

func (e Edge[T]) orbit(steps ...func(Edge[T]) Edge[T]) iter.Seq[Edge[T]] {
	return func(yield func(Edge[T]) bool) {
		if !e.Live() {
			return
		}
		limit := len(e.bag.records)
		seen := map[EdgeID]struct{}{e.id: {}}
		queue := []Edge[T]{e}
		for n := 0; len(queue) > 0 && n < limit; n++ {
			cur := queue[0]
			queue = queue[1:]
			if !yield(cur) {
				return
			}
			for _, step := range steps {
				next := step(cur)
				if !next.Live() {
					continue
				}
				if _, ok := seen[next.id]; ok {
					continue
				}
				seen[next.id] = struct{}{}
				queue = append(queue, next)
			}
		}
	}
}

// OrbitLen counts the members of an orbit.
func OrbitLen[T comparable](seq iter.Seq[Edge[T]]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}
