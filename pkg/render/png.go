package render

import (
	"io"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

const siteRadius = 3

// PNG rasterises the scene, scale pixels per mesh unit.
func PNG(w io.Writer, s Scene, scale float64) error {
	width, height := s.size(scale)
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	lo := s.Bounds.Lo()
	c.Scale(scale, scale)
	c.Translate(-lo.X, -lo.Y)

	if len(s.Face) >= 3 {
		c.MoveTo(s.Face[0].X, s.Face[0].Y)
		for _, p := range s.Face[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetRGBA(1, 0.5, 0, 0.35)
		c.Fill()
	}

	c.SetLineWidth(1)
	for _, seg := range s.Voronoi {
		c.DrawLine(seg.A.X, seg.A.Y, seg.B.X, seg.B.Y)
	}
	c.SetRGB(0.4, 0.4, 1)
	c.Stroke()

	c.SetLineWidth(2)
	for _, seg := range s.Delaunay {
		c.DrawLine(seg.A.X, seg.A.Y, seg.B.X, seg.B.Y)
	}
	c.SetRGB(0, 1, 1)
	c.Stroke()

	for _, p := range s.sortedSites() {
		c.DrawCircle(p.X, p.Y, siteRadius/scale)
	}
	c.SetRGB(0.56, 0.93, 0.56)
	c.Fill()

	if s.Probe != nil {
		c.DrawCircle(s.Probe.X, s.Probe.Y, siteRadius/scale)
		c.SetRGB(1, 0.5, 0)
		c.Fill()
	}

	return errors.Wrap(c.EncodePNG(w), "encode png")
}

// SavePNG writes the scene to path and, when preview is set, shows it in the
// terminal.
func SavePNG(path string, s Scene, scale float64, preview bool) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create png")
	}
	if err := PNG(f, s, scale); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "close png")
	}

	if preview {
		imgcat.CatFile(path, os.Stdout)
	}
	return nil
}
