// Package sites produces the point sets fed to the triangulation: generated
// inside a canvas, or read from text and SVG files.
package sites

import (
	"math"
	"math/rand"
	"time"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
)

// Random scatters n sites with integer coordinates over a width×height canvas.
// A zero seed picks one from the clock.
func Random(n, width, height int, seed int64) []geom.Point {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	sites := make([]geom.Point, n)
	for i := range sites {
		sites[i] = geom.Point{
			X: float64(rng.Intn(width)),
			Y: float64(rng.Intn(height)),
		}
	}
	return sites
}

// Grid lays n sites out in cell centres, row by row. The grid is as square as
// n allows; the last row may be short.
func Grid(n, width, height int) []geom.Point {
	if n <= 0 {
		return nil
	}
	sites := make([]geom.Point, 0, n)

	rows := int(math.Sqrt(float64(n)))
	cols := (n + rows - 1) / rows

	xStep := float64(width) / float64(cols)
	yStep := float64(height) / float64(rows)

	for i := 0; i < rows && len(sites) < n; i++ {
		for j := 0; j < cols && len(sites) < n; j++ {
			sites = append(sites, geom.Point{
				X: xStep/2 + float64(j)*xStep,
				Y: yStep/2 + float64(i)*yStep,
			})
		}
	}
	return sites
}

// Generate dispatches on the configured mode.
func Generate(mode string, n, width, height int, seed int64) []geom.Point {
	if mode == "random" {
		return Random(n, width, height, seed)
	}
	return Grid(n, width, height)
}
