package parser

import (
	"bufio"
	"github.com/minor-industries/benchplot/schema"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/tools/benchmark/parse"
	"io"
	"os"
	"regexp"
	"strconv"
)

// Metric selects which go-bench measurement becomes the y-value.
type Metric string

const (
	MetricNsPerOp     Metric = "ns/op"
	MetricBytesPerOp  Metric = "B/op"
	MetricAllocsPerOp Metric = "allocs/op"
	MetricMBPerS      Metric = "MB/s"
)

func ParseMetric(s string) (Metric, error) {
	switch Metric(s) {
	case MetricNsPerOp, MetricBytesPerOp, MetricAllocsPerOp, MetricMBPerS:
		return Metric(s), nil
	default:
		return "", errors.New("unknown metric: " + s)
	}
}

var benchLine = regexp.MustCompile(`Benchmark(\w+)/testBytes=(\d+)\s+\d+\s+([\d.]+) ns/op`)

type Extractor struct {
	metric Metric
	log    *zap.Logger
}

func NewExtractor(metric Metric, log *zap.Logger) *Extractor {
	if metric == "" {
		metric = MetricNsPerOp
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Extractor{
		metric: metric,
		log:    log,
	}
}

func (e *Extractor) ParseFile(path string) (*schema.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open")
	}
	defer f.Close()

	return e.Parse(f)
}

// Parse scans benchmark output line by line and accumulates every line of
// the form
//
//	Benchmark<Name>/testBytes=<int>  <int>  <float> ns/op
//
// into a table keyed by <Name>. Lines that don't match are skipped.
func (e *Extractor) Parse(r io.Reader) (*schema.Table, error) {
	table := schema.NewTable()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		e.log.Debug("line", zap.String("raw", line))

		m := benchLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		e.log.Debug("match", zap.String("benchmark", m[1]))

		x, err := strconv.ParseInt(m[2], 10, 64)
		if err != nil {
			return nil, errors.Wrap(err, "parse test bytes")
		}

		y, ok, err := e.value(line, m[3])
		if err != nil {
			return nil, errors.Wrap(err, "resolve metric")
		}
		if !ok {
			continue
		}

		table.Append(m[1], x, y)
	}

	return table, errors.Wrap(scanner.Err(), "scan")
}

// value resolves the y measurement for a matched line. The default ns/op
// metric comes straight from the capture group; the others need the full
// go-bench field set, so lines lacking the measurement are skipped.
func (e *Extractor) value(line, nsField string) (float64, bool, error) {
	if e.metric == MetricNsPerOp {
		y, err := strconv.ParseFloat(nsField, 64)
		if err != nil {
			return 0, false, errors.Wrap(err, "parse ns/op")
		}
		return y, true, nil
	}

	b, err := parse.ParseLine(line)
	if err != nil {
		return 0, false, nil
	}

	switch e.metric {
	case MetricBytesPerOp:
		if b.Measured&parse.AllocedBytesPerOp == 0 {
			return 0, false, nil
		}
		return float64(b.AllocedBytesPerOp), true, nil
	case MetricAllocsPerOp:
		if b.Measured&parse.AllocsPerOp == 0 {
			return 0, false, nil
		}
		return float64(b.AllocsPerOp), true, nil
	case MetricMBPerS:
		if b.Measured&parse.MBPerS == 0 {
			return 0, false, nil
		}
		return b.MBPerS, true, nil
	default:
		return 0, false, errors.New("unknown metric: " + string(e.metric))
	}
}
