package graphly_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	graphly "github.com/Tajwarbot/Graphly"
	"github.com/Tajwarbot/Graphly/dataset"
	"github.com/Tajwarbot/Graphly/format"
	"github.com/Tajwarbot/Graphly/viewport"
)

// TestChartingWorkflow walks the full core path: import rows, describe them,
// fit a trendline, sample it across a viewport, format the axis labels and
// round-trip everything through a snapshot.
func TestChartingWorkflow(t *testing.T) {
	rows := []dataset.Row{
		{"x": 1.0, "y": 3.1},
		{"x": 2.0, "y": 4.9},
		{"x": 3.0, "y": 7.2},
		{"x": 4.0, "y": 8.8},
		{"x": 5.0, "y": 11.1},
	}
	sets := []dataset.Dataset{
		{Name: "imported", Kind: format.KindPoints, Rows: rows, XKey: "x", YKey: "y", Visible: true},
		{Name: "overlay", Kind: format.KindFunction, Equation: "2x + 1", Visible: true},
	}

	stats := graphly.Describe(rows, "x", "y")
	require.Equal(t, 5, stats.N)
	require.InDelta(t, 3.0, stats.MeanX, 1e-9)

	points := sets[0].Points()
	result := graphly.Fit(points, graphly.Linear)
	require.NotNil(t, result)
	require.Greater(t, result.R2, 0.99)

	vp := viewport.New(viewport.WithContainerSize(800, 600))
	xMin, xMax, yMin, yMax, ok := dataset.BoundsOf(sets)
	require.True(t, ok)
	vp.SetDataBounds(xMin, xMax, yMin, yMax)

	d := vp.CurrentDomain()
	curve := graphly.SampleCurve(result, d.XMin, d.XMax, d.YMin, d.YMax)
	require.NotEmpty(t, curve)

	overlay := graphly.SampleEquation(sets[1].Equation, d.XMin, d.XMax, 200)
	require.Len(t, overlay, 201)

	ticks := graphly.NiceTicks(d.XMin, d.XMax, 8)
	require.NotEmpty(t, ticks)
	for _, tick := range ticks {
		require.NotEmpty(t, graphly.FormatNumber(tick))
	}

	data, err := graphly.EncodeSnapshot(sets)
	require.NoError(t, err)
	restored, err := graphly.DecodeSnapshot(data)
	require.NoError(t, err)
	require.Equal(t, sets, restored)

	require.Equal(t, graphly.SeriesID("imported"), restored[0].ID())
}

func TestCompileEquationErrorSurface(t *testing.T) {
	f, err := graphly.CompileEquation("sin(x) + 1")
	require.NoError(t, err)
	require.InDelta(t, 1.0, f(0), 1e-12)

	_, err = graphly.CompileEquation("2 +")
	require.Error(t, err)
}
