package quadedge

import "github.com/pkg/errors"

// Check verifies the structural invariants of the bag:
//   - rot has order 4 and stays inside its quad,
//   - onext is a permutation of the records and Onext().Oprev() is the identity,
//   - all records of an origin orbit carry the same data.
func (b *Bag[T]) Check() error {
	preds := make(map[EdgeID]int, len(b.records))
	quads := 0
	for id, r := range b.records {
		e := Edge[T]{b, id}
		if r.quad == id {
			quads++
		}

		cur := e
		for i := 0; i < 4; i++ {
			rr, ok := b.records[cur.id]
			if !ok {
				return errors.Wrapf(ErrCorrupt, "%s: rot leads to a missing record", e.Label())
			}
			if rr.quad != r.quad {
				return errors.Wrapf(ErrCorrupt, "%s: rot leaves the quad", e.Label())
			}
			cur = Edge[T]{b, rr.rot}
		}
		if cur.id != id {
			return errors.Wrapf(ErrCorrupt, "%s: rot does not have order 4", e.Label())
		}

		if _, ok := b.records[r.onext]; !ok {
			return errors.Wrapf(ErrCorrupt, "%s: onext leads to a missing record", e.Label())
		}
		preds[r.onext]++
		if !e.Onext().Oprev().Is(e) {
			return errors.Wrapf(ErrCorrupt, "%s: onext and oprev disagree", e.Label())
		}

		next := b.records[r.onext]
		if r.set != next.set || r.data != next.data {
			return errors.Wrapf(ErrCorrupt, "%s: origin orbit carries different data", e.Label())
		}
	}
	for id := range b.records {
		if preds[id] != 1 {
			return errors.Wrapf(ErrCorrupt, "%s: %d onext predecessors", id.Label(), preds[id])
		}
	}
	if quads != b.quads {
		return errors.Wrapf(ErrCorrupt, "%d quads counted, %d recorded", quads, b.quads)
	}
	return nil
}
