package smooth

import (
	"github.com/pkg/errors"
	"strconv"
	"strings"
)

// Request names a series and the operator to run its points through.
type Request struct {
	SeriesName string
	Op         Operator
}

func trimSpace(parts []string) []string {
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}

// Parse reads a series request of the form "name | fcn args | fcn args".
// A bare "name" selects the series untouched.
func Parse(s string) (Request, error) {
	if len(strings.TrimSpace(s)) == 0 {
		return Request{}, errors.New("empty series request")
	}

	mainParts := trimSpace(strings.Split(s, "|"))

	var series string
	{
		seriesParts := strings.Fields(mainParts[0])
		if len(seriesParts) != 1 {
			return Request{}, errors.New("invalid series name")
		}
		series = seriesParts[0]
	}

	switch len(mainParts) {
	case 1:
		return Request{SeriesName: series, Op: Identity{}}, nil
	case 2:
		op, err := parseFunction(mainParts[1])
		if err != nil {
			return Request{}, err
		}
		return Request{SeriesName: series, Op: op}, nil
	default:
		ops := make([]Operator, 0, len(mainParts)-1)
		for _, def := range mainParts[1:] {
			op, err := parseFunction(def)
			if err != nil {
				return Request{}, err
			}
			ops = append(ops, op)
		}
		return Request{SeriesName: series, Op: chain{ops: ops}}, nil
	}
}

func parseFunction(def string) (Operator, error) {
	parts := strings.Fields(def)
	if len(parts) == 0 {
		return nil, errors.New("empty function")
	}

	switch parts[0] {
	case "avg":
		if len(parts) != 2 {
			return nil, errors.New("avg needs a window size")
		}
		n, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, errors.Wrap(err, "parse window size")
		}
		if n < 1 {
			return nil, errors.New("window size must be positive")
		}
		return NewMovingAvg(n), nil
	default:
		return nil, errors.New("unknown function: " + parts[0])
	}
}
