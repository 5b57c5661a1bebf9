package sites

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandom(t *testing.T) {
	a := Random(50, 100, 200, 42)
	b := Random(50, 100, 200, 42)
	require.Len(t, a, 50)
	assert.Equal(t, a, b)
	for _, p := range a {
		assert.True(t, p.X >= 0 && p.X < 100, "%v", p)
		assert.True(t, p.Y >= 0 && p.Y < 200, "%v", p)
	}
	assert.Len(t, Random(3, 10, 10, 0), 3)
}

func TestGrid(t *testing.T) {
	sites := Grid(4, 100, 100)
	assert.Equal(t, []geom.Point{{X: 25, Y: 25}, {X: 75, Y: 25}, {X: 25, Y: 75}, {X: 75, Y: 75}}, sites)

	// 10 sites: 3 rows of 4, the last one short
	sites = Grid(10, 400, 300)
	require.Len(t, sites, 10)
	assert.Equal(t, geom.Point{X: 50, Y: 50}, sites[0])
	assert.Equal(t, geom.Point{X: 150, Y: 250}, sites[9])

	assert.Empty(t, Grid(0, 100, 100))
	assert.Equal(t, Grid(9, 90, 90), Generate("grid", 9, 90, 90, 1))
	assert.Equal(t, Random(9, 90, 90, 1), Generate("random", 9, 90, 90, 1))
}

func TestReadText(t *testing.T) {
	in := `# worked example
700 200
100 100

  200	700
600 400.5
`
	sites, err := ReadText(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []geom.Point{{X: 700, Y: 200}, {X: 100, Y: 100}, {X: 200, Y: 700}, {X: 600, Y: 400.5}}, sites)

	_, err = ReadText(strings.NewReader("1 2\n3\n"))
	assert.True(t, errors.Is(err, ErrFormat))
	assert.Contains(t, err.Error(), "line 2")

	_, err = ReadText(strings.NewReader("1 x\n"))
	assert.True(t, errors.Is(err, ErrFormat))
}

const fixture = `<svg xmlns="http://www.w3.org/2000/svg" width="100" height="100">
  <g>
    <circle cx="10" cy="20" r="2"/>
    <polygon points="30,40 50,60 70,80"/>
  </g>
  <polyline points="1 2 3 4"/>
</svg>`

func TestReadSVG(t *testing.T) {
	sites, err := ReadSVG(strings.NewReader(fixture))
	require.NoError(t, err)
	assert.Equal(t, []geom.Point{{X: 10, Y: 20}, {X: 30, Y: 40}, {X: 50, Y: 60}, {X: 70, Y: 80}, {X: 1, Y: 2}, {X: 3, Y: 4}}, sites)

	_, err = ReadSVG(strings.NewReader(`<svg><polygon points="1,2 3"/></svg>`))
	assert.True(t, errors.Is(err, ErrFormat))

	_, err = ReadSVG(strings.NewReader(`<svg><circle cx="a" cy="1" r="1"/></svg>`))
	assert.True(t, errors.Is(err, ErrFormat))
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	svg := filepath.Join(dir, "sites.SVG")
	txt := filepath.Join(dir, "sites.txt")
	require.NoError(t, os.WriteFile(svg, []byte(fixture), 0o600))
	require.NoError(t, os.WriteFile(txt, []byte("1 2\n"), 0o600))

	sites, err := ReadFile(svg)
	require.NoError(t, err)
	assert.Len(t, sites, 6)

	sites, err = ReadFile(txt)
	require.NoError(t, err)
	assert.Equal(t, []geom.Point{{X: 1, Y: 2}}, sites)

	_, err = ReadFile(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}
