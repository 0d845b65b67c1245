package smooth

import (
	"github.com/minor-industries/benchplot/schema"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestIdentity(t *testing.T) {
	points := []schema.Point{{X: 1, Y: 2}, {X: 2, Y: 4}}
	require.Equal(t, points, Identity{}.Process(points))
}

func TestMovingAvg(t *testing.T) {
	points := []schema.Point{
		{X: 1, Y: 1},
		{X: 2, Y: 3},
		{X: 4, Y: 5},
	}

	out := NewMovingAvg(2).Process(points)
	require.Equal(t, []schema.Point{
		{X: 1, Y: 1},
		{X: 2, Y: 2},
		{X: 4, Y: 4},
	}, out)
}

func TestMovingAvgWindowOfOne(t *testing.T) {
	points := []schema.Point{{X: 1, Y: 7}, {X: 2, Y: 9}}

	out := NewMovingAvg(1).Process(points)
	require.Equal(t, points, out)
}

func TestMovingAvgIncremental(t *testing.T) {
	// feeding points in two batches matches one batch
	op1 := NewMovingAvg(3)
	a := op1.Process([]schema.Point{{X: 1, Y: 1}, {X: 2, Y: 2}})
	b := op1.Process([]schema.Point{{X: 3, Y: 6}})

	op2 := NewMovingAvg(3)
	all := op2.Process([]schema.Point{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 6}})

	require.Equal(t, all, append(a, b...))
}
