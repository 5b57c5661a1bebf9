package main

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/0x0FACED/go-delaunay/pkg/config"
	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer() *server {
	cfg := config.Default()
	cfg.Sites.Count = 10
	return &server{cfg: cfg, log: logger.NewNop()}
}

func TestDiagramHandler(t *testing.T) {
	s := testServer()

	t.Run("default page", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.diagramHandler(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "<title>Триангуляция Делоне</title>")
		assert.Contains(t, body, `name="stations" value="10"`)
		assert.Contains(t, body, "echarts")
		assert.Contains(t, body, "[serve] triangulated")
		assert.NotContains(t, body, "[probe]")
		assert.Contains(t, body, `<div id="logs">`)
		assert.True(t, strings.HasSuffix(body, "</html>\n"))
	})

	t.Run("form with probe", func(t *testing.T) {
		form := url.Values{
			"width":    {"400"},
			"height":   {"300"},
			"stations": {"10"},
			"probe_x":  {"120"},
			"probe_y":  {"140"},
		}
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		s.diagramHandler(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `name="width" value="400"`)
		assert.Contains(t, body, `name="probe_x" value="120"`)
		assert.Contains(t, body, "[probe] located")
	})

	t.Run("garbage falls back to defaults", func(t *testing.T) {
		form := url.Values{"width": {"-5"}, "stations": {"many"}}
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		r := s.parseRequest(req)
		assert.Equal(t, s.cfg.Canvas.Width, r.width)
		assert.Equal(t, 10, r.n)
		assert.False(t, r.random)
		assert.Nil(t, r.probe)
	})
}

func TestParseProbe(t *testing.T) {
	p, err := parseProbe(" 12.5, 40 ")
	require.NoError(t, err)
	assert.Equal(t, geom.Point{X: 12.5, Y: 40}, p)

	for _, bad := range []string{"12", "x,1", "1,y"} {
		_, err := parseProbe(bad)
		assert.Error(t, err, bad)
	}
}

func TestRenderMesh(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "sites.txt")
	require.NoError(t, os.WriteFile(in, []byte("# square\n0 0\n100 0\n100 100\n0 100\n50 50\n"), 0o644))

	cfg := config.Default()
	log := logger.NewNop()

	out := filepath.Join(dir, "mesh.svg")
	require.NoError(t, renderMesh(cfg, log, renderArgs{in: in, out: out, scale: 2, probe: "30,40", check: true}))
	svg, err := os.ReadFile(out)
	require.NoError(t, err)
	// five sites and the probe
	assert.Equal(t, 6, strings.Count(string(svg), "<circle"))

	out = filepath.Join(dir, "generated.png")
	require.NoError(t, renderMesh(cfg, log, renderArgs{out: out, scale: 0.5}))
	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	err = renderMesh(cfg, log, renderArgs{in: in, out: filepath.Join(dir, "mesh.gif"), scale: 1})
	assert.ErrorContains(t, err, "unknown output format")

	err = renderMesh(cfg, log, renderArgs{in: in, out: out, scale: 1, probe: "nowhere"})
	assert.Error(t, err)
}
