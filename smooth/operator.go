package smooth

import (
	"github.com/minor-industries/benchplot/schema"
)

type Operator interface {
	Process(points []schema.Point) []schema.Point
}

type Identity struct{}

func (i Identity) Process(points []schema.Point) []schema.Point {
	return points
}

type chain struct {
	ops []Operator
}

func (c chain) Process(points []schema.Point) []schema.Point {
	for _, op := range c.ops {
		points = op.Process(points)
	}
	return points
}
