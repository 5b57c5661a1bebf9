package delaunay

import (
	"github.com/0x0FACED/go-delaunay/pkg/quadedge"
	"github.com/pkg/errors"
)

var (
	// ErrSearchFailed means a walk ran past its step bound. The mesh is broken
	// and retrying will not help.
	ErrSearchFailed = errors.New("delaunay: search failed")
	ErrOnEdge       = errors.New("delaunay: site lies on an existing edge")
	ErrNotDelaunay  = errors.New("delaunay: empty circumcircle property violated")
	ErrBadOption    = errors.New("delaunay: bad option")

	ErrMissingVertex = errors.WithMessage(quadedge.ErrPrecondition, "edge has no vertex data")
	ErrInvalidSite   = errors.WithMessage(quadedge.ErrPrecondition, "site must be a finite point")
)

// The walks and the star/flip steps only fail when the mesh itself is broken.
// Threading that through every helper adds nothing, so they panic with a
// meshError and the exported methods recover it into a plain error.

type meshError struct {
	error
}

func fatal(err error) {
	panic(meshError{err})
}

func fatalf(format string, args ...any) {
	fatal(errors.Errorf(format, args...))
}

// handlePanicRecover turns a recovered meshError, or a precondition panic from
// the quad-edge layer, back into an error. Anything else keeps panicking.
func handlePanicRecover(r any) error {
	if r == nil {
		return nil
	}
	if me, ok := r.(meshError); ok {
		return me.error
	}
	if err, ok := r.(error); ok && errors.Is(err, quadedge.ErrPrecondition) {
		return err
	}
	panic(r)
}
