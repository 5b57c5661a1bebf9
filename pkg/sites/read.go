package sites

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

var ErrFormat = errors.New("sites: bad input")

// ReadText reads one "x y" site per line. Blank lines and lines starting with
// '#' are skipped.
func ReadText(r io.Reader) ([]geom.Point, error) {
	var sites []geom.Point
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		p, err := parsePoint(strings.Fields(line))
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", n)
		}
		sites = append(sites, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read sites")
	}
	return sites, nil
}

// ReadSVG takes the centre of every <circle> and the corners of every
// <polygon> and <polyline>, in document order. Transforms are ignored.
func ReadSVG(r io.Reader) ([]geom.Point, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parse svg")
	}

	var sites []geom.Point
	var walk func(el *svgparser.Element) error
	walk = func(el *svgparser.Element) error {
		switch el.Name {
		case "circle":
			p, err := parsePoint([]string{el.Attributes["cx"], el.Attributes["cy"]})
			if err != nil {
				return errors.Wrap(err, "circle")
			}
			sites = append(sites, p)
		case "polygon", "polyline":
			pts, err := parsePoints(el.Attributes["points"])
			if err != nil {
				return errors.Wrap(err, el.Name)
			}
			sites = append(sites, pts...)
		}
		for _, child := range el.Children {
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(root); err != nil {
		return nil, err
	}
	return sites, nil
}

// ReadFile picks the reader from the extension: .svg or text.
func ReadFile(path string) ([]geom.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open sites")
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return ReadSVG(f)
	}
	return ReadText(f)
}

// parsePoints reads an SVG points list: "x,y x,y" or "x y x y".
func parsePoints(s string) ([]geom.Point, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Wrapf(ErrFormat, "odd number of coordinates in %q", s)
	}

	pts := make([]geom.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		p, err := parsePoint(fields[i : i+2])
		if err != nil {
			return nil, err
		}
		pts = append(pts, p)
	}
	return pts, nil
}

func parsePoint(parts []string) (geom.Point, error) {
	if len(parts) != 2 {
		return geom.Point{}, errors.Wrapf(ErrFormat, "want 2 coordinates, got %d", len(parts))
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return geom.Point{}, errors.Wrapf(ErrFormat, "x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return geom.Point{}, errors.Wrapf(ErrFormat, "y value %q", parts[1])
	}
	return geom.Point{X: x, Y: y}, nil
}
