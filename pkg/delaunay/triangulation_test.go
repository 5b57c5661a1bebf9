package delaunay

import (
	"math"
	"math/rand"
	"testing"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/logger"
	"github.com/0x0FACED/go-delaunay/pkg/quadedge"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var workedExample = []geom.Point{{X: 700, Y: 200}, {X: 100, Y: 100}, {X: 200, Y: 700}, {X: 600, Y: 400}}

var bootstraps = []Bootstrap{BootstrapQuad, BootstrapTriangle}

func build(t *testing.T, sites []geom.Point, opts ...Option) *Triangulation {
	t.Helper()
	tr, err := New(opts...)
	require.NoError(t, err)
	require.NoError(t, tr.InsertSites(sites))
	return tr
}

func TestNew(t *testing.T) {
	t.Run("quad", func(t *testing.T) {
		tr, err := New()
		require.NoError(t, err)
		edges := tr.Edges()
		require.Len(t, edges, 4)
		for _, e := range edges {
			assert.True(t, e.Boundary, e.Label)
			assert.False(t, e.Finite, e.Label)
		}
		assert.True(t, IsBoundaryEdge(tr.StartingEdge()))
		assert.Empty(t, tr.Triangles())
		assert.NoError(t, tr.Validate())
	})

	t.Run("triangle", func(t *testing.T) {
		tr, err := New(WithBootstrap(BootstrapTriangle))
		require.NoError(t, err)
		assert.Len(t, tr.Edges(), 3)
		org, _ := tr.StartingEdge().Org()
		assert.Equal(t, geom.InfTopLeft, org)
		assert.NoError(t, tr.Validate())
	})

	t.Run("bad options", func(t *testing.T) {
		for _, opt := range []Option{
			WithEpsilon(0),
			WithEpsilon(math.NaN()),
			WithMaxSteps(-1),
			WithBootstrap(Bootstrap(7)),
			WithOnEdge(OnEdgePolicy(7)),
		} {
			_, err := New(opt)
			assert.True(t, errors.Is(err, ErrBadOption))
		}
	})
}

func TestParseOptions(t *testing.T) {
	b, err := ParseBootstrap("Triangle")
	require.NoError(t, err)
	assert.Equal(t, BootstrapTriangle, b)
	b, err = ParseBootstrap("")
	require.NoError(t, err)
	assert.Equal(t, BootstrapQuad, b)
	_, err = ParseBootstrap("hexagon")
	assert.True(t, errors.Is(err, ErrBadOption))

	p, err := ParseOnEdge("reject")
	require.NoError(t, err)
	assert.Equal(t, OnEdgeReject, p)
	assert.Equal(t, "split", OnEdgeSplit.String())
	_, err = ParseOnEdge("ignore")
	assert.True(t, errors.Is(err, ErrBadOption))
}

func TestRightOf(t *testing.T) {
	bag := quadedge.New[geom.Point]()
	e := bag.CreateEdge()

	_, err := RightOf(geom.Point{}, e)
	assert.True(t, errors.Is(err, ErrMissingVertex))
	assert.True(t, errors.Is(err, quadedge.ErrPrecondition))
	_, err = LeftOf(geom.Point{}, e)
	assert.True(t, errors.Is(err, ErrMissingVertex))
	assert.False(t, IsBoundaryEdge(e))

	e.SetOrg(geom.Point{X: 0, Y: 0})
	e.SetDest(geom.Point{X: 10, Y: 0})

	// y grows downwards: (5, 5) is below the edge, on its right
	right, err := RightOf(geom.Point{X: 5, Y: 5}, e)
	require.NoError(t, err)
	assert.True(t, right)
	left, err := LeftOf(geom.Point{X: 5, Y: 5}, e)
	require.NoError(t, err)
	assert.False(t, left)

	left, err = LeftOf(geom.Point{X: 5, Y: -5}, e)
	require.NoError(t, err)
	assert.True(t, left)

	// on the line counts for both sides
	right, _ = RightOf(geom.Point{X: 20, Y: 0}, e)
	left, _ = LeftOf(geom.Point{X: 20, Y: 0}, e)
	assert.True(t, right && left)
}

func TestWorkedExample(t *testing.T) {
	for _, b := range bootstraps {
		t.Run(b.String(), func(t *testing.T) {
			tr := build(t, workedExample, WithBootstrap(b))
			require.NoError(t, tr.Validate())
			assert.Equal(t, workedExample, tr.Sites())

			triangles := tr.Triangles()
			require.Len(t, triangles, 2)
			for _, tri := range triangles {
				assert.True(t, geom.CCW(tri.A, tri.B, tri.C))
			}

			finite := 0
			for _, e := range tr.Edges() {
				if e.Finite {
					finite++
				}
			}
			assert.Equal(t, 5, finite)

			t.Run("locate from every edge", func(t *testing.T) {
				for _, p := range workedExample {
					for _, start := range tr.primalEdges() {
						e, err := tr.Locate(p, start)
						require.NoError(t, err)
						org, _ := e.Org()
						assert.Equal(t, p, org)
					}
				}
			})

			t.Run("duplicate", func(t *testing.T) {
				n := tr.Bag().Len()
				require.NoError(t, tr.InsertSite(geom.Point{X: 600, Y: 400}))
				require.NoError(t, tr.InsertSite(geom.Point{X: 600, Y: 400.0000001}))
				assert.Equal(t, n, tr.Bag().Len())
				assert.Equal(t, workedExample, tr.Sites())
				assert.NoError(t, tr.Validate())
			})
		})
	}
}

func TestLocateInsideFace(t *testing.T) {
	tr := build(t, workedExample)
	x := geom.Point{X: 450, Y: 300}

	e, err := tr.Locate(x, tr.StartingEdge())
	require.NoError(t, err)
	for f := range e.LOrbit() {
		left, err := LeftOf(x, f)
		require.NoError(t, err)
		assert.True(t, left, f.String())
	}
}

func TestRandomSites(t *testing.T) {
	for _, b := range bootstraps {
		for seed := int64(1); seed <= 10; seed++ {
			rng := rand.New(rand.NewSource(seed))
			sites := make([]geom.Point, 40*seed)
			for i := range sites {
				sites[i] = geom.Point{X: rng.Float64() * 1000, Y: rng.Float64() * 1000}
			}

			tr := build(t, sites, WithBootstrap(b))
			require.NoError(t, tr.Validate(), "bootstrap %s seed %d", b, seed)
			assert.Len(t, tr.Sites(), len(sites))
		}
	}
}

func TestCollinearSites(t *testing.T) {
	// a grid with midpoints puts many sites on existing edges and on lines
	// through the points at infinity
	var sites []geom.Point
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			sites = append(sites, geom.Point{X: float64(x * 50), Y: float64(y * 50)})
			if x < 7 {
				sites = append(sites, geom.Point{X: float64(x*50 + 25), Y: float64(y * 50)})
			}
		}
	}

	for _, b := range bootstraps {
		for seed := int64(0); seed < 10; seed++ {
			shuffled := append([]geom.Point(nil), sites...)
			rand.New(rand.NewSource(seed)).Shuffle(len(shuffled), func(i, j int) {
				shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
			})
			tr := build(t, shuffled, WithBootstrap(b))
			require.NoError(t, tr.Validate(), "bootstrap %s seed %d", b, seed)
		}
	}

	t.Run("diagonal", func(t *testing.T) {
		var diagonal []geom.Point
		for i := 0; i < 10; i++ {
			diagonal = append(diagonal, geom.Point{X: float64(i * 10), Y: float64(i * 10)})
		}
		tr := build(t, diagonal)
		require.NoError(t, tr.Validate())
		assert.Empty(t, tr.Triangles())
		assert.Len(t, tr.Sites(), 10)
	})
}

func TestOnEdge(t *testing.T) {
	base := []geom.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 40, Y: 70}}
	mid := geom.Point{X: 50, Y: 0}

	t.Run("split", func(t *testing.T) {
		tr := build(t, base)
		n := tr.Bag().Len()
		require.NoError(t, tr.InsertSite(mid))
		// one edge removed, four spokes added
		assert.Equal(t, n+3, tr.Bag().Len())
		assert.Len(t, tr.Triangles(), 2)
		require.NoError(t, tr.Validate())

		e, err := tr.Locate(mid, tr.StartingEdge())
		require.NoError(t, err)
		org, _ := e.Org()
		assert.Equal(t, mid, org)
	})

	t.Run("reject", func(t *testing.T) {
		tr := build(t, base, WithOnEdge(OnEdgeReject))
		n := tr.Bag().Len()
		err := tr.InsertSite(mid)
		assert.True(t, errors.Is(err, ErrOnEdge))
		assert.Equal(t, n, tr.Bag().Len())
		assert.Equal(t, base, tr.Sites())
		require.NoError(t, tr.Validate())
	})
}

func TestInvalidInput(t *testing.T) {
	tr, err := New()
	require.NoError(t, err)

	for _, p := range []geom.Point{geom.InfRight, {X: math.NaN(), Y: 0}, {X: 0, Y: math.Inf(-1)}} {
		assert.True(t, errors.Is(tr.InsertSite(p), ErrInvalidSite))
	}

	err = tr.InsertSites([]geom.Point{{X: 1, Y: 1}, {X: math.Inf(1), Y: 0}})
	assert.True(t, errors.Is(err, ErrInvalidSite))
	assert.Contains(t, err.Error(), "site 1")

	other, err := New()
	require.NoError(t, err)
	_, err = tr.Locate(geom.Point{X: 1, Y: 1}, other.StartingEdge())
	assert.True(t, errors.Is(err, quadedge.ErrDeadEdge))

	_, err = tr.Locate(geom.Point{X: 1, Y: 1}, Edge{})
	assert.True(t, errors.Is(err, quadedge.ErrDeadEdge))
}

func TestSearchBound(t *testing.T) {
	tr, err := New(WithMaxSteps(1))
	require.NoError(t, err)
	err = tr.InsertSite(geom.Point{X: 10, Y: 10})
	assert.True(t, errors.Is(err, ErrSearchFailed))
	assert.Empty(t, tr.Sites())
}

func TestVoronoi(t *testing.T) {
	tr := build(t, []geom.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}, {X: 50, Y: 50}})
	require.NoError(t, tr.Validate())
	require.Len(t, tr.Triangles(), 4)

	diamond := []geom.Point{{X: 50, Y: 0}, {X: 100, Y: 50}, {X: 50, Y: 100}, {X: 0, Y: 50}}

	segments := tr.VoronoiEdges()
	require.Len(t, segments, 4)
	for _, s := range segments {
		assertOneOf(t, diamond, s.A)
		assertOneOf(t, diamond, s.B)
	}

	cells := tr.VoronoiCells()
	require.Len(t, cells, 1)
	assert.Equal(t, geom.Point{X: 50, Y: 50}, cells[0].Site)
	require.Len(t, cells[0].Vertices, 4)
	for _, v := range cells[0].Vertices {
		assertOneOf(t, diamond, v)
	}
}

func assertOneOf(t *testing.T, want []geom.Point, got geom.Point) {
	t.Helper()
	for _, w := range want {
		if geom.Near(w, got, 1e-9) {
			return
		}
	}
	assert.Fail(t, "unexpected point", "%v is none of %v", got, want)
}

func TestLogging(t *testing.T) {
	log := logger.New()
	tr := build(t, workedExample, WithLogger(log))
	require.NoError(t, tr.InsertSite(workedExample[0]))

	out := log.HTML()
	assert.Contains(t, out, "[bootstrap] mesh ready")
	assert.Contains(t, out, "[star] face starred")
	assert.Contains(t, out, "[insert] site added")
	assert.Contains(t, out, "[insert] duplicate site")

	// Debug names belong to the triangulation that logged them.
	assert.Positive(t, tr.names.Len())
	other := build(t, workedExample)
	assert.Equal(t, 0, other.names.Len())
}

func TestHandlePanicRecover(t *testing.T) {
	testFn := func(throw, precondition, realPanic bool) (err error) {
		defer func() {
			if recovered := handlePanicRecover(recover()); recovered != nil {
				err = recovered
			}
		}()

		switch {
		case throw:
			fatalf("kaboom")
		case precondition:
			panic(errors.Wrap(quadedge.ErrDeadEdge, "gone"))
		case realPanic:
			panic("true panic")
		}
		return nil
	}

	assert.EqualError(t, testFn(true, false, false), "kaboom")
	assert.True(t, errors.Is(testFn(false, true, false), quadedge.ErrDeadEdge))
	assert.Panics(t, func() { _ = testFn(false, false, true) })
	assert.NoError(t, testFn(false, false, false))
}
