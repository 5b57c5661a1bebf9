package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/0x0FACED/go-delaunay/pkg/config"
	"github.com/0x0FACED/go-delaunay/pkg/delaunay"
	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/logger"
	"github.com/0x0FACED/go-delaunay/pkg/render"
	"github.com/0x0FACED/go-delaunay/pkg/sites"

	"github.com/golang/geo/r2"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type renderArgs struct {
	in     string
	out    string
	format string
	scale  float64
	probe  string
	check  bool
	imgcat bool
}

func renderMesh(cfg config.Config, log *logger.ZapLogger, args renderArgs) error {
	points, bounds, err := loadSites(cfg, args.in)
	if err != nil {
		return err
	}

	options, err := cfg.Mesh.Options(log)
	if err != nil {
		return err
	}
	tr, err := delaunay.New(options...)
	if err != nil {
		return err
	}
	if err := tr.InsertSites(points); err != nil {
		return err
	}
	log.Info("[render] triangulated", zap.Int("sites", len(tr.Sites())), zap.Int("quads", tr.Bag().Len()))

	if args.check {
		if err := tr.Validate(); err != nil {
			return err
		}
		fmt.Println(aurora.Green("valid"), "Delaunay triangulation")
	}

	scene := render.FromTriangulation(tr, bounds)
	if args.probe != "" {
		p, err := parseProbe(args.probe)
		if err != nil {
			return err
		}
		if err := scene.Highlight(tr, p); err != nil {
			return err
		}
	}

	format := args.format
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(args.out)), ".")
	}
	switch format {
	case "png":
		err = render.SavePNG(args.out, scene, args.scale, args.imgcat)
	case "svg":
		err = saveSVG(args.out, scene, args.scale)
	default:
		return errors.Errorf("unknown output format %q", format)
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s %s: %d sites, %d triangles, %d voronoi edges\n",
		aurora.Cyan("wrote"), args.out,
		len(scene.Sites), len(tr.Triangles()), len(scene.Voronoi))
	return nil
}

// loadSites reads the input file or generates sites from the config. Read
// sites are framed by their own bounding box, generated ones by the canvas.
func loadSites(cfg config.Config, path string) ([]geom.Point, r2.Rect, error) {
	if path != "" {
		points, err := sites.ReadFile(path)
		return points, r2.EmptyRect(), err
	}
	c := cfg.Canvas
	points := sites.Generate(cfg.Sites.Mode, cfg.Sites.Count, c.Width, c.Height, cfg.Sites.Seed)
	return points, render.Canvas(c.Width, c.Height).ExpandedByMargin(float64(c.Padding)), nil
}

func parseProbe(s string) (geom.Point, error) {
	x, y, ok := strings.Cut(s, ",")
	if !ok {
		return geom.Point{}, errors.Errorf("probe %q: want x,y", s)
	}
	px, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
	if err != nil {
		return geom.Point{}, errors.Wrapf(err, "probe %q", s)
	}
	py, err := strconv.ParseFloat(strings.TrimSpace(y), 64)
	if err != nil {
		return geom.Point{}, errors.Wrapf(err, "probe %q", s)
	}
	return geom.Point{X: px, Y: py}, nil
}

func saveSVG(path string, scene render.Scene, scale float64) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create svg")
	}
	if err := render.SVG(f, scene, scale); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "close svg")
}
