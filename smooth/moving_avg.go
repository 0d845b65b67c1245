package smooth

import (
	"github.com/gammazero/deque"
	"github.com/minor-industries/benchplot/schema"
)

// MovingAvg replaces each y with the mean of the trailing n points. The
// window counts points, it does not measure x distance.
type MovingAvg struct {
	window *deque.Deque[schema.Point]
	n      int
	sum    float64
}

func NewMovingAvg(n int) *MovingAvg {
	return &MovingAvg{
		window: deque.New[schema.Point](0, 16),
		n:      n,
	}
}

func (m *MovingAvg) Process(points []schema.Point) []schema.Point {
	result := make([]schema.Point, 0, len(points))

	for _, p := range points {
		m.window.PushBack(p)
		m.sum += p.Y

		for m.window.Len() > m.n {
			old := m.window.PopFront()
			m.sum -= old.Y
		}

		result = append(result, schema.Point{
			X: p.X,
			Y: m.sum / float64(m.window.Len()),
		})
	}

	return result
}
