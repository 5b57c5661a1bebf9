package delaunay

import (
	"strings"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/logger"
	"github.com/pkg/errors"
)

// Bootstrap selects the polygon of points at infinity the mesh starts from.
type Bootstrap int

const (
	// BootstrapQuad uses the four diagonal directions.
	BootstrapQuad Bootstrap = iota
	// BootstrapTriangle uses (-∞,-∞), (0,∞) and (∞,0).
	BootstrapTriangle
)

func (b Bootstrap) String() string {
	switch b {
	case BootstrapQuad:
		return "quad"
	case BootstrapTriangle:
		return "triangle"
	}
	return "unknown"
}

func ParseBootstrap(s string) (Bootstrap, error) {
	switch strings.ToLower(s) {
	case "", "quad":
		return BootstrapQuad, nil
	case "triangle":
		return BootstrapTriangle, nil
	}
	return 0, errors.Wrapf(ErrBadOption, "bootstrap %q", s)
}

func (b Bootstrap) corners() []geom.Point {
	if b == BootstrapTriangle {
		return []geom.Point{geom.InfTopLeft, geom.InfBottom, geom.InfRight}
	}
	// counterclockwise on a y-down plane, so the bounded face is on the left
	return []geom.Point{geom.InfTopRight, geom.InfTopLeft, geom.InfBottomLeft, geom.InfBottomRight}
}

// OnEdgePolicy decides what InsertSite does with a site that falls on an
// existing edge.
type OnEdgePolicy int

const (
	// OnEdgeSplit removes the edge and stars the site into the quadrilateral
	// left behind.
	OnEdgeSplit OnEdgePolicy = iota
	// OnEdgeReject returns ErrOnEdge and leaves the mesh as it was.
	OnEdgeReject
)

func (p OnEdgePolicy) String() string {
	switch p {
	case OnEdgeSplit:
		return "split"
	case OnEdgeReject:
		return "reject"
	}
	return "unknown"
}

func ParseOnEdge(s string) (OnEdgePolicy, error) {
	switch strings.ToLower(s) {
	case "", "split":
		return OnEdgeSplit, nil
	case "reject":
		return OnEdgeReject, nil
	}
	return 0, errors.Wrapf(ErrBadOption, "on-edge policy %q", s)
}

type options struct {
	bootstrap Bootstrap
	epsilon   float64
	maxSteps  int
	onEdge    OnEdgePolicy
	log       *logger.ZapLogger
}

type Option func(*options)

func WithBootstrap(b Bootstrap) Option {
	return func(o *options) { o.bootstrap = b }
}

// WithEpsilon sets the tolerance of the coincidence and on-edge tests.
func WithEpsilon(eps float64) Option {
	return func(o *options) { o.epsilon = eps }
}

// WithMaxSteps bounds every walk. Zero picks a bound from the mesh size.
func WithMaxSteps(n int) Option {
	return func(o *options) { o.maxSteps = n }
}

func WithOnEdge(p OnEdgePolicy) Option {
	return func(o *options) { o.onEdge = p }
}

func WithLogger(l *logger.ZapLogger) Option {
	return func(o *options) { o.log = l }
}

func defaultOptions() options {
	return options{
		bootstrap: BootstrapQuad,
		epsilon:   geom.Epsilon,
		onEdge:    OnEdgeSplit,
	}
}

func (o options) validate() error {
	switch {
	case o.bootstrap != BootstrapQuad && o.bootstrap != BootstrapTriangle:
		return errors.Wrapf(ErrBadOption, "bootstrap %d", o.bootstrap)
	case o.onEdge != OnEdgeSplit && o.onEdge != OnEdgeReject:
		return errors.Wrapf(ErrBadOption, "on-edge policy %d", o.onEdge)
	case !(o.epsilon > 0):
		return errors.Wrapf(ErrBadOption, "epsilon %g", o.epsilon)
	case o.maxSteps < 0:
		return errors.Wrapf(ErrBadOption, "max steps %d", o.maxSteps)
	}
	return nil
}
