package schema

type Point struct {
	X int64
	Y float64
}

// Series holds the measurements of one benchmark as parallel sequences, in
// the order they appeared in the input.
type Series struct {
	Name string
	X    []int64
	Y    []float64
}

func (s *Series) Append(x int64, y float64) {
	s.X = append(s.X, x)
	s.Y = append(s.Y, y)
}

func (s *Series) Len() int {
	return len(s.X)
}

func (s *Series) Points() []Point {
	points := make([]Point, len(s.X))
	for i := range s.X {
		points[i] = Point{X: s.X[i], Y: s.Y[i]}
	}
	return points
}

// Table maps series names to their measurements, preserving the order in
// which names were first seen.
type Table struct {
	order  []string
	series map[string]*Series
}

func NewTable() *Table {
	return &Table{
		series: map[string]*Series{},
	}
}

func (t *Table) Append(name string, x int64, y float64) {
	s, ok := t.series[name]
	if !ok {
		s = &Series{Name: name}
		t.series[name] = s
		t.order = append(t.order, name)
	}
	s.Append(x, y)
}

func (t *Table) Get(name string) (*Series, bool) {
	s, ok := t.series[name]
	return s, ok
}

func (t *Table) Names() []string {
	return t.order
}

func (t *Table) All() []*Series {
	result := make([]*Series, len(t.order))
	for i, name := range t.order {
		result[i] = t.series[name]
	}
	return result
}

func (t *Table) Len() int {
	return len(t.order)
}
