package main

import (
	"os"

	"github.com/0x0FACED/go-delaunay/pkg/config"
	"github.com/0x0FACED/go-delaunay/pkg/logger"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app        = kingpin.New("delaunay", "Incremental Delaunay triangulation and its Voronoi dual.")
	configPath = app.Flag("config", "YAML config file.").Short('c').ExistingFile()
	logLevel   = app.Flag("log-level", "Overrides log.level from the config.").String()

	serveCmd  = app.Command("serve", "Serve the interactive page.").Default()
	serveAddr = serveCmd.Flag("addr", "Listen address, overrides server.addr.").String()

	renderCmd    = app.Command("render", "Triangulate a point set and draw it to a file.")
	renderIn     = renderCmd.Flag("in", "Sites: .svg (circles, polygons) or text with one \"x y\" per line. Generated from the config when empty.").ExistingFile()
	renderOut    = renderCmd.Flag("out", "Output file.").Short('o').Default("mesh.png").String()
	renderFormat = renderCmd.Flag("format", "png or svg; taken from --out when empty.").Enum("png", "svg")
	renderScale  = renderCmd.Flag("scale", "Pixels per unit.").Default("1").Float64()
	renderProbe  = renderCmd.Flag("probe", "Highlight the face containing \"x,y\".").String()
	renderCheck  = renderCmd.Flag("check", "Validate the triangulation before drawing.").Bool()
	renderImgcat = renderCmd.Flag("imgcat", "Show the PNG in the terminal (iTerm2).").Bool()
)

func main() {
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg, err := config.Load(*configPath)
	app.FatalIfError(err, "config")
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	log, err := logger.NewConsole(cfg.Log.Level)
	app.FatalIfError(err, "logger")
	defer log.Sync()

	switch cmd {
	case serveCmd.FullCommand():
		if *serveAddr != "" {
			cfg.Server.Addr = *serveAddr
		}
		err = serve(cfg, log)
	case renderCmd.FullCommand():
		err = renderMesh(cfg, log, renderArgs{
			in:     *renderIn,
			out:    *renderOut,
			format: *renderFormat,
			scale:  *renderScale,
			probe:  *renderProbe,
			check:  *renderCheck,
			imgcat: *renderImgcat,
		})
	}
	app.FatalIfError(err, "%s", cmd)
}
