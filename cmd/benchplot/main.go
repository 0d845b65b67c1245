package main

import (
	"flag"
	"github.com/minor-industries/benchplot"
	"github.com/minor-industries/benchplot/parser"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"strings"
)

func run() error {
	var (
		in      = flag.String("in", benchplot.DefaultInput, "benchmark log to read")
		out     = flag.String("out", benchplot.DefaultOutput, "chart image to write")
		series  = flag.String("series", "", "comma-separated series requests, e.g. 'Foo,Bar|avg 5' (default: all series)")
		metric  = flag.String("metric", string(parser.MetricNsPerOp), "y-axis metric: ns/op, B/op, allocs/op, MB/s")
		archive = flag.String("archive", "", "also archive parsed results to this sqlite file")
		verbose = flag.Bool("v", false, "trace each input line")
	)
	flag.Parse()

	log := zap.NewNop()
	if *verbose {
		var err error
		log, err = zap.NewDevelopment()
		if err != nil {
			return errors.Wrap(err, "new logger")
		}
	}

	m, err := parser.ParseMetric(*metric)
	if err != nil {
		return err
	}

	var requests []string
	if *series != "" {
		requests = strings.Split(*series, ",")
	}

	p := &benchplot.Pipeline{
		Input:    *in,
		Output:   *out,
		Archive:  *archive,
		Requests: requests,
		Metric:   m,
		Log:      log,
	}

	return p.Run()
}

func main() {
	if err := run(); err != nil {
		panic(err)
	}
}
