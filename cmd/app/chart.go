package main

import (
	"github.com/0x0FACED/go-delaunay/pkg/delaunay"
	"github.com/0x0FACED/go-delaunay/pkg/geom"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Both axes share the look; the range is pinned to the canvas so that long
// Voronoi edges do not rescale the chart.
func axisLabel() *opts.AxisLabel { return &opts.AxisLabel{Color: "white"} }

func hiddenSplit() *opts.SplitLine { return &opts.SplitLine{Show: opts.Bool(false)} }

func zoom(orient string) opts.DataZoom {
	return opts.DataZoom{Type: "inside", Start: 0, End: 100, FilterMode: "none", Orient: orient}
}

func prepareScatter(scatter *charts.Scatter, req request) {
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Height: "580px", Width: "1020px"}),
		charts.WithLegendOpts(opts.Legend{
			TextStyle: &opts.TextStyle{Color: "white"},
			Right:     "5%",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:                "Триангуляция Делоне и диаграмма Вороного",
			TitleBackgroundColor: "white",
			Left:                 "5%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value", Name: "x",
			Min: 0, Max: req.width,
			AxisLabel: axisLabel(), SplitLine: hiddenSplit(),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value", Name: "y",
			Min: 0, Max: req.height,
			AxisLabel: axisLabel(), SplitLine: hiddenSplit(),
		}),
		charts.WithDataZoomOpts(zoom("horizontal")),
		charts.WithDataZoomOpts(zoom("vertical")),
	)
}

func segmentLine(name string, style opts.LineStyle, a, b geom.Point) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithXAxisOpts(opts.XAxis{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Show: opts.Bool(true)}),
	)
	line.AddSeries(name, []opts.LineData{
		{Value: []float64{a.X, a.Y}},
		{Value: []float64{b.X, b.Y}},
	}).SetSeriesOptions(
		charts.WithLineStyleOpts(style),
	)
	return line
}

// meshToEcharts draws the sites, the finite Delaunay edges, the closed
// Voronoi edges and, when a probe was given, the face around it.
func meshToEcharts(tr *delaunay.Triangulation, req request, face []geom.Point) *charts.Scatter {
	scatter := charts.NewScatter()
	prepareScatter(scatter, req)

	points := make([]opts.ScatterData, 0, len(tr.Sites()))
	for _, p := range tr.Sites() {
		points = append(points, opts.ScatterData{
			Value: []float64{p.X, p.Y},
		})
	}
	scatter.AddSeries("Точки", points).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "lightgreen",
			}),
		)

	if req.probe != nil {
		scatter.AddSeries("Запрос", []opts.ScatterData{{Value: []float64{req.probe.X, req.probe.Y}}}).
			SetSeriesOptions(
				charts.WithItemStyleOpts(opts.ItemStyle{
					Color: "orange",
				}),
			)
	}

	for _, v := range tr.VoronoiEdges() {
		scatter.Overlap(segmentLine("Вороной", opts.LineStyle{Color: "#6666ff", Width: 1}, v.A, v.B))
	}
	for _, e := range tr.Edges() {
		if e.Finite {
			scatter.Overlap(segmentLine("Делоне", opts.LineStyle{Color: "cyan", Width: 2}, e.Org, e.Dest))
		}
	}
	for i := range face {
		scatter.Overlap(segmentLine("Грань", opts.LineStyle{Color: "orange", Width: 3}, face[i], face[(i+1)%len(face)]))
	}

	return scatter
}
