package config

import (
	"os"

	"github.com/0x0FACED/go-delaunay/pkg/delaunay"
	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/logger"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Server Server `yaml:"server"`
	Canvas Canvas `yaml:"canvas"`
	Sites  Sites  `yaml:"sites"`
	Mesh   Mesh   `yaml:"mesh"`
	Log    Log    `yaml:"log"`
}

type Server struct {
	Addr string `yaml:"addr"`
}

// Canvas is the drawing area in pixels. Sites are generated inside it.
type Canvas struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	Padding int `yaml:"padding"`
}

type Sites struct {
	Count int `yaml:"count"`
	// Mode is "random" or "grid".
	Mode string `yaml:"mode"`
	// Seed 0 means a new seed per run.
	Seed int64 `yaml:"seed"`
}

type Mesh struct {
	Bootstrap string  `yaml:"bootstrap"`
	OnEdge    string  `yaml:"on_edge"`
	Epsilon   float64 `yaml:"epsilon"`
	MaxSteps  int     `yaml:"max_steps"`
}

type Log struct {
	Level string `yaml:"level"`
}

func Default() Config {
	return Config{
		Server: Server{Addr: ":8080"},
		Canvas: Canvas{Width: 1000, Height: 1000, Padding: 20},
		Sites:  Sites{Count: 12, Mode: "grid"},
		Mesh: Mesh{
			Bootstrap: delaunay.BootstrapQuad.String(),
			OnEdge:    delaunay.OnEdgeSplit.String(),
			Epsilon:   geom.Epsilon,
		},
		Log: Log{Level: "info"},
	}
}

// Load reads a YAML file over the defaults. An empty path gives the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Canvas.Width < 1 || c.Canvas.Height < 1:
		return errors.Wrapf(ErrInvalid, "canvas %dx%d", c.Canvas.Width, c.Canvas.Height)
	case c.Canvas.Padding < 0:
		return errors.Wrapf(ErrInvalid, "padding %d", c.Canvas.Padding)
	case c.Sites.Count < 0:
		return errors.Wrapf(ErrInvalid, "site count %d", c.Sites.Count)
	case c.Sites.Mode != "random" && c.Sites.Mode != "grid":
		return errors.Wrapf(ErrInvalid, "site mode %q", c.Sites.Mode)
	}
	if _, err := c.Mesh.Options(nil); err != nil {
		return errors.Wrap(ErrInvalid, err.Error())
	}
	return nil
}

// Options turns the mesh section into triangulation options.
func (m Mesh) Options(log *logger.ZapLogger) ([]delaunay.Option, error) {
	b, err := delaunay.ParseBootstrap(m.Bootstrap)
	if err != nil {
		return nil, err
	}
	p, err := delaunay.ParseOnEdge(m.OnEdge)
	if err != nil {
		return nil, err
	}
	if !(m.Epsilon > 0) {
		return nil, errors.Wrapf(delaunay.ErrBadOption, "epsilon %g", m.Epsilon)
	}
	if m.MaxSteps < 0 {
		return nil, errors.Wrapf(delaunay.ErrBadOption, "max steps %d", m.MaxSteps)
	}

	opts := []delaunay.Option{
		delaunay.WithBootstrap(b),
		delaunay.WithOnEdge(p),
		delaunay.WithEpsilon(m.Epsilon),
		delaunay.WithMaxSteps(m.MaxSteps),
	}
	if log != nil {
		opts = append(opts, delaunay.WithLogger(log))
	}
	return opts, nil
}
