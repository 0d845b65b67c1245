package benchplot

import (
	"github.com/chrispappas/golang-generics-set/set"
	"github.com/minor-industries/benchplot/database"
	"github.com/minor-industries/benchplot/parser"
	"github.com/minor-industries/benchplot/render"
	"github.com/minor-industries/benchplot/schema"
	"github.com/minor-industries/benchplot/smooth"
	"github.com/minor-industries/benchplot/storage"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	DefaultInput  = "bench.txt"
	DefaultOutput = "benchmark_results.png"
)

// Pipeline is one batch run: extract series from a benchmark log, then
// render them to an image. The zero value reads DefaultInput and writes
// DefaultOutput.
type Pipeline struct {
	Input    string
	Output   string
	Archive  string   // sqlite path, empty disables archival
	Requests []string // series selection/smoothing, empty selects all
	Metric   parser.Metric
	Log      *zap.Logger
}

func (p *Pipeline) Run() error {
	log := p.Log
	if log == nil {
		log = zap.NewNop()
	}

	input := p.Input
	if input == "" {
		input = DefaultInput
	}
	output := p.Output
	if output == "" {
		output = DefaultOutput
	}
	metric := p.Metric
	if metric == "" {
		metric = parser.MetricNsPerOp
	}

	extractor := parser.NewExtractor(metric, log)
	table, err := extractor.ParseFile(input)
	if err != nil {
		return errors.Wrap(err, "parse benchmarks")
	}

	if len(p.Requests) > 0 {
		table, err = applyRequests(table, p.Requests)
		if err != nil {
			return errors.Wrap(err, "apply series requests")
		}
	}

	if p.Archive != "" {
		if err := p.archive(table, metric); err != nil {
			return errors.Wrap(err, "archive")
		}
	}

	log.Info("plotting",
		zap.Int("series", table.Len()),
		zap.String("output", output),
	)

	opts := render.DefaultOptions()
	opts.YLabel = string(metric)
	if err := render.WriteFile(table, output, opts); err != nil {
		return errors.Wrap(err, "render")
	}

	return nil
}

// applyRequests rebuilds the table with only the requested series, in
// request order, running each through its operator.
func applyRequests(table *schema.Table, requests []string) (*schema.Table, error) {
	reqs := make([]smooth.Request, len(requests))
	seen := set.FromSlice([]string{})
	for i, r := range requests {
		req, err := smooth.Parse(r)
		if err != nil {
			return nil, errors.Wrap(err, "parse request")
		}
		if seen.Has(req.SeriesName) {
			return nil, errors.New("duplicate series in request: " + req.SeriesName)
		}
		seen.Add(req.SeriesName)
		reqs[i] = req
	}

	result := schema.NewTable()
	for _, req := range reqs {
		series, ok := table.Get(req.SeriesName)
		if !ok {
			return nil, errors.New("unknown series: " + req.SeriesName)
		}

		for _, pt := range req.Op.Process(series.Points()) {
			result.Append(series.Name, pt.X, pt.Y)
		}
	}

	return result, nil
}

func (p *Pipeline) archive(table *schema.Table, metric parser.Metric) error {
	db, err := database.Get(p.Archive)
	if err != nil {
		return errors.Wrap(err, "get database")
	}

	var backend storage.Backend = database.NewBackend(db, string(metric))

	if err := backend.CreateSeries(table.Names()); err != nil {
		return errors.Wrap(err, "create series")
	}
	if err := backend.InsertTable(table); err != nil {
		return errors.Wrap(err, "insert table")
	}

	return nil
}
