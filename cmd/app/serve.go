package main

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/0x0FACED/go-delaunay/pkg/config"
	"github.com/0x0FACED/go-delaunay/pkg/delaunay"
	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/logger"
	"github.com/0x0FACED/go-delaunay/pkg/render"
	"github.com/0x0FACED/go-delaunay/pkg/sites"
	"github.com/0x0FACED/go-delaunay/static"

	"go.uber.org/zap"
)

type server struct {
	cfg config.Config
	log *logger.ZapLogger
}

func serve(cfg config.Config, log *logger.ZapLogger) error {
	s := &server{cfg: cfg, log: log}
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.diagramHandler)

	log.Info("[serve] listening", zap.String("url", "http://localhost"+cfg.Server.Addr))
	return http.ListenAndServe(cfg.Server.Addr, mux)
}

// request is what the page form asks for.
type request struct {
	width, height int
	n             int
	random        bool
	probe         *geom.Point
	probeX        string
	probeY        string
}

func (req request) form() static.Form {
	return static.Form{
		Width:  req.width,
		Height: req.height,
		Sites:  req.n,
		Random: req.random,
		ProbeX: req.probeX,
		ProbeY: req.probeY,
	}
}

func (s *server) parseRequest(r *http.Request) request {
	req := request{
		width:  s.cfg.Canvas.Width,
		height: s.cfg.Canvas.Height,
		n:      s.cfg.Sites.Count,
		random: s.cfg.Sites.Mode == "random",
	}
	if r.Method != http.MethodPost {
		return req
	}
	if err := r.ParseForm(); err != nil {
		return req
	}

	formInt := func(key string, def int) int {
		v, err := strconv.Atoi(r.FormValue(key))
		if err != nil || v < 1 {
			return def
		}
		return v
	}
	req.width = formInt("width", req.width)
	req.height = formInt("height", req.height)
	req.n = formInt("stations", req.n)
	req.random = r.FormValue("random") == "true"

	req.probeX = r.FormValue("probe_x")
	req.probeY = r.FormValue("probe_y")
	px, errX := strconv.ParseFloat(req.probeX, 64)
	py, errY := strconv.ParseFloat(req.probeY, 64)
	if errX == nil && errY == nil {
		req.probe = &geom.Point{X: px, Y: py}
	}
	return req
}

// diagramHandler builds a fresh triangulation per request and renders the page
// with the chart and the debug log of that build.
func (s *server) diagramHandler(w http.ResponseWriter, r *http.Request) {
	req := s.parseRequest(r)

	mode := "grid"
	if req.random {
		mode = "random"
	}
	points := sites.Generate(mode, req.n, req.width, req.height, s.cfg.Sites.Seed)

	pageLog := logger.New()
	defer pageLog.ClearLogs()

	tr, err := s.triangulate(points, pageLog)
	if err != nil {
		s.log.Error("[serve] triangulation failed", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var face []geom.Point
	if req.probe != nil {
		face = locateProbe(tr, *req.probe, pageLog)
	}

	scatter := meshToEcharts(tr, req, face)

	if err := static.WriteHead(w, req.form()); err != nil {
		s.log.Error("[serve] page rendering failed", zap.Error(err))
		return
	}
	if err := scatter.Render(w); err != nil {
		s.log.Error("[serve] chart rendering failed", zap.Error(err))
	}
	io.WriteString(w, static.LogsOpen)
	fmt.Fprintln(w, pageLog.HTML())
	io.WriteString(w, static.Tail)
}

func (s *server) triangulate(points []geom.Point, pageLog *logger.ZapLogger) (*delaunay.Triangulation, error) {
	options, err := s.cfg.Mesh.Options(pageLog)
	if err != nil {
		return nil, err
	}
	tr, err := delaunay.New(options...)
	if err != nil {
		return nil, err
	}
	if err := tr.InsertSites(points); err != nil {
		return nil, err
	}
	pageLog.Info("[serve] triangulated",
		zap.Int("sites", len(tr.Sites())),
		zap.Int("triangles", len(tr.Triangles())),
		zap.Int("voronoi edges", len(tr.VoronoiEdges())),
	)
	return tr, nil
}

// locateProbe returns the finite corners of the face holding p.
func locateProbe(tr *delaunay.Triangulation, p geom.Point, pageLog *logger.ZapLogger) []geom.Point {
	var scene render.Scene
	if err := scene.Highlight(tr, p); err != nil {
		pageLog.Error("[probe] locate failed", zap.Error(err))
		return nil
	}
	pageLog.Info("[probe] located",
		zap.Stringer("probe", p),
		zap.Stringers("face", scene.Face),
	)
	return scene.Face
}
