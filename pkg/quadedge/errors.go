package quadedge

import "github.com/pkg/errors"

// ErrPrecondition is the root of every caller error raised by the bag.
var ErrPrecondition = errors.New("quadedge: precondition violated")

var (
	ErrDeadEdge        = errors.WithMessage(ErrPrecondition, "edge is not part of the mesh")
	ErrPolygonTooSmall = errors.WithMessage(ErrPrecondition, "polygon needs at least 2 edges")
	ErrNotInterior     = errors.WithMessage(ErrPrecondition, "edge is not the diagonal of a triangulated quadrilateral")
	ErrForeignEdge     = errors.WithMessage(ErrPrecondition, "edge belongs to another bag")
)

// ErrCorrupt is returned by Check when an invariant of the structure is broken.
var ErrCorrupt = errors.New("quadedge: corrupt mesh")
