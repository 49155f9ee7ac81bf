package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Tajwarbot/Graphly/format"
)

func TestPointsProjection(t *testing.T) {
	rows := []Row{
		{"x": 1.0, "y": 2.0},
		{"x": "2.5", "y": 3},        // numeric string and int coerce
		{"x": 3.0, "y": "not-a-number"}, // excluded
		{"x": nil, "y": 4.0},        // excluded
		{"y": 5.0},                  // missing x, excluded
		{"x": math.NaN(), "y": 6.0}, // non-finite, excluded
	}

	points := Points(rows, "x", "y")
	require.Equal(t, []Point{{X: 1, Y: 2}, {X: 2.5, Y: 3}}, points)
}

func TestPointsEmpty(t *testing.T) {
	require.Empty(t, Points(nil, "x", "y"))
	require.Empty(t, Points([]Row{{"a": "b"}}, "x", "y"))
}

func TestDescribe(t *testing.T) {
	rows := []Row{
		{"x": 1.0, "y": 2.0},
		{"x": 2.0, "y": 4.0},
		{"x": 3.0, "y": 6.0},
		{"x": 4.0, "y": 8.0},
	}

	stats := Describe(rows, "x", "y")
	require.Equal(t, 4, stats.N)
	require.InDelta(t, 2.5, stats.MeanX, 1e-12)
	require.InDelta(t, 5.0, stats.MeanY, 1e-12)

	// Population standard deviation: sqrt(sum((x-mean)^2)/n).
	require.InDelta(t, math.Sqrt(1.25), stats.StdDevX, 1e-12)
	require.InDelta(t, math.Sqrt(5.0), stats.StdDevY, 1e-12)
}

func TestDescribeSkipsInvalidRows(t *testing.T) {
	rows := []Row{
		{"x": 1.0, "y": 1.0},
		{"x": "bad", "y": 1.0},
		{"x": 3.0, "y": 3.0},
	}

	stats := Describe(rows, "x", "y")
	require.Equal(t, 2, stats.N)
	require.InDelta(t, 2.0, stats.MeanX, 1e-12)
}

func TestDescribeNoValidRows(t *testing.T) {
	stats := Describe([]Row{{"x": "a", "y": "b"}}, "x", "y")
	require.Equal(t, Stats{}, stats)
}

func TestDatasetID(t *testing.T) {
	a := Dataset{Name: "series-a"}
	b := Dataset{Name: "series-b"}

	require.Equal(t, a.ID(), (&Dataset{Name: "series-a"}).ID())
	require.NotEqual(t, a.ID(), b.ID())
}

func TestBoundsOf(t *testing.T) {
	sets := []Dataset{
		{
			Name: "visible", Kind: format.KindPoints, Visible: true,
			XKey: "x", YKey: "y",
			Rows: []Row{{"x": -1.0, "y": 2.0}, {"x": 4.0, "y": -3.0}},
		},
		{
			Name: "hidden", Kind: format.KindPoints, Visible: false,
			XKey: "x", YKey: "y",
			Rows: []Row{{"x": 100.0, "y": 100.0}},
		},
		{
			Name: "fn", Kind: format.KindFunction, Visible: true,
			Equation: "sin(x)",
		},
	}

	xMin, xMax, yMin, yMax, ok := BoundsOf(sets)
	require.True(t, ok)
	require.Equal(t, -1.0, xMin)
	require.Equal(t, 4.0, xMax)
	require.Equal(t, -3.0, yMin)
	require.Equal(t, 2.0, yMax)
}

func TestBoundsOfNoVisibleData(t *testing.T) {
	_, _, _, _, ok := BoundsOf([]Dataset{{Name: "fn", Kind: format.KindFunction, Visible: true}})
	require.False(t, ok)
}
