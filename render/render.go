package render

import (
	"github.com/minor-industries/benchplot/schema"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

type Options struct {
	Title  string
	XLabel string
	YLabel string
	Width  vg.Length
	Height vg.Length
}

func DefaultOptions() Options {
	return Options{
		Title:  "Benchmark Results",
		XLabel: "Test Bytes",
		YLabel: "ns/op",
		Width:  12 * vg.Inch,
		Height: 8 * vg.Inch,
	}
}

// Chart draws one line of circle markers per series on log-log axes. Points
// are connected in sequence order, not sorted by x, so an input that isn't
// monotonic in x renders with crossing segments.
func Chart(table *schema.Table, opts Options) (*plot.Plot, error) {
	p := plot.New()

	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel

	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	p.Legend.Left = true

	for i, series := range table.All() {
		xys := make(plotter.XYs, series.Len())
		for j := range xys {
			xys[j].X = float64(series.X[j])
			xys[j].Y = series.Y[j]
		}

		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, errors.Wrap(err, "new line points")
		}

		line.Color = plotutil.Color(i)
		points.Color = plotutil.Color(i)
		points.Shape = draw.CircleGlyph{}

		p.Add(line, points)
		p.Legend.Add(series.Name, line, points)
	}

	if table.Len() == 0 {
		// a log scale can't autoscale an empty range
		p.X.Min, p.X.Max = 1, 10
		p.Y.Min, p.Y.Max = 1, 10
	}

	return p, nil
}

// WriteFile renders the table and writes the image, overwriting any
// existing file. The format follows the path's extension.
func WriteFile(table *schema.Table, path string, opts Options) error {
	p, err := Chart(table, opts)
	if err != nil {
		return errors.Wrap(err, "chart")
	}

	if err := p.Save(opts.Width, opts.Height, path); err != nil {
		return errors.Wrap(err, "save")
	}

	return nil
}
