package viewport

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireDomain(t *testing.T, d Domain, xMin, xMax, yMin, yMax float64) {
	t.Helper()

	require.InDelta(t, xMin, d.XMin, 1e-9)
	require.InDelta(t, xMax, d.XMax, 1e-9)
	require.InDelta(t, yMin, d.YMin, 1e-9)
	require.InDelta(t, yMax, d.YMax, 1e-9)
}

func TestAutoDomainPadsDataBounds(t *testing.T) {
	v := New(WithContainerSize(800, 600))
	v.SetDataBounds(0, 10, 0, 100)

	require.True(t, v.IsAuto())
	requireDomain(t, v.CurrentDomain(), -1, 11, -10, 110)
}

func TestAutoDomainFallsBackToDefaultWindow(t *testing.T) {
	v := New()

	requireDomain(t, v.CurrentDomain(), -10, 10, -10, 10)

	v.SetDataBounds(0, 4, 0, 4)
	v.ClearDataBounds()
	requireDomain(t, v.CurrentDomain(), -10, 10, -10, 10)
}

func TestPanShiftsBothAxesAgainstDelta(t *testing.T) {
	v := New(WithContainerSize(100, 100))
	v.SetDataBounds(-10, 10, -10, 10)
	start := v.CurrentDomain()

	// Drag 10px right, 10px down: both axes shift by -10% of their range.
	v.PanBy(10, 10)
	d := v.CurrentDomain()

	require.False(t, v.IsAuto())
	require.InDelta(t, start.XMin-0.1*start.XRange(), d.XMin, 1e-9)
	require.InDelta(t, start.YMin-0.1*start.YRange(), d.YMin, 1e-9)
	require.InDelta(t, start.XRange(), d.XRange(), 1e-9)
	require.InDelta(t, start.YRange(), d.YRange(), 1e-9)
}

func TestPanIgnoredWithoutContainerSize(t *testing.T) {
	v := New()
	v.PanBy(50, 50)

	require.True(t, v.IsAuto())
}

func TestZoomButtonsCompose(t *testing.T) {
	v := New(WithContainerSize(400, 400))
	start := v.CurrentDomain()

	v.ZoomIn()
	d := v.CurrentDomain()
	require.InDelta(t, start.XRange()*0.8, d.XRange(), 1e-9)
	require.InDelta(t, start.YRange()*0.8, d.YRange(), 1e-9)

	cx, cy := start.Center()
	gotX, gotY := d.Center()
	require.InDelta(t, cx, gotX, 1e-9)
	require.InDelta(t, cy, gotY, 1e-9)

	// 0.8 * 1.25 = 1: zoom out restores the original window.
	v.ZoomOut()
	requireDomain(t, v.CurrentDomain(), start.XMin, start.XMax, start.YMin, start.YMax)
}

func TestWheelZoomGranularity(t *testing.T) {
	cases := []struct {
		name        string
		delta       float64
		pixelDeltas bool
		wantFactor  float64
	}{
		{"coarse out", 120, false, 1.10},
		{"coarse in", -120, false, 0.90},
		{"fine small", 20, true, 1.02},
		{"fine large", 80, true, 1.05},
		{"fine large in", -80, true, 0.95},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := New(WithContainerSize(400, 400))
			start := v.CurrentDomain()

			v.WheelZoom(tc.delta, tc.pixelDeltas, AxisBoth)
			d := v.CurrentDomain()

			require.InDelta(t, start.XRange()*tc.wantFactor, d.XRange(), 1e-9)
			require.InDelta(t, start.YRange()*tc.wantFactor, d.YRange(), 1e-9)
		})
	}
}

func TestWheelZoomSingleAxis(t *testing.T) {
	v := New(WithContainerSize(400, 400))
	start := v.CurrentDomain()

	v.WheelZoom(-120, false, AxisX)
	d := v.CurrentDomain()

	require.InDelta(t, start.XRange()*0.9, d.XRange(), 1e-9)
	require.InDelta(t, start.YRange(), d.YRange(), 1e-9)

	v.WheelZoom(-120, false, AxisY)
	d = v.CurrentDomain()
	require.InDelta(t, start.YRange()*0.9, d.YRange(), 1e-9)
}

func TestWheelZoomZeroDeltaNoOp(t *testing.T) {
	v := New(WithContainerSize(400, 400))
	v.WheelZoom(0, false, AxisBoth)

	require.True(t, v.IsAuto())
}

func TestPinchIncrementalZoom(t *testing.T) {
	v := New(WithContainerSize(400, 400))
	start := v.CurrentDomain()

	// First touch only records the distance.
	v.Pinch(100)
	require.True(t, v.IsAuto())

	// Fingers spreading: zoom in by 0.95 per move.
	v.Pinch(120)
	v.Pinch(140)
	d := v.CurrentDomain()
	require.InDelta(t, start.XRange()*0.95*0.95, d.XRange(), 1e-9)

	// Fingers closing: zoom out by 1.05.
	v.Pinch(130)
	d = v.CurrentDomain()
	require.InDelta(t, start.XRange()*0.95*0.95*1.05, d.XRange(), 1e-9)

	// A new gesture starts fresh.
	v.PinchEnd()
	v.Pinch(50)
	require.InDelta(t, d.XRange(), v.CurrentDomain().XRange(), 1e-9)
}

func TestSquareAspectLock(t *testing.T) {
	v := New(WithContainerSize(800, 400), WithSquareAspect(true))
	v.SetDataBounds(-10, 10, -10, 10)

	d := v.CurrentDomain()

	// y range = x range * height/width, recentered on the y midpoint.
	require.InDelta(t, d.XRange()*400/800, d.YRange(), 1e-9)
	_, cy := d.Center()
	require.InDelta(t, 0.0, cy, 1e-9)

	// The lock holds after explicit navigation too.
	v.ZoomIn()
	d = v.CurrentDomain()
	require.InDelta(t, d.XRange()*400/800, d.YRange(), 1e-9)
}

func TestSquareAspectWithoutSizeIsNoOp(t *testing.T) {
	v := New(WithSquareAspect(true))
	requireDomain(t, v.CurrentDomain(), -10, 10, -10, 10)
}

func TestResetToAuto(t *testing.T) {
	v := New(WithContainerSize(400, 400))
	v.SetDataBounds(0, 10, 0, 10)

	v.ZoomIn()
	v.PanBy(30, -15)
	require.False(t, v.IsAuto())

	v.ResetToAuto()
	require.True(t, v.IsAuto())
	requireDomain(t, v.CurrentDomain(), -1, 11, -1, 11)
}

func TestTicksFollowDomain(t *testing.T) {
	v := New(WithDefaultWindow(Domain{XMin: 0, XMax: 100, YMin: 0, YMax: 1}))

	xTicks := v.XTicks(8)
	require.NotEmpty(t, xTicks)
	require.InDelta(t, 0.0, xTicks[0], 1e-9)

	yTicks := v.YTicksAt(0.25)
	require.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, roundSlice(yTicks))
}

func roundSlice(vals []float64) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = math.Round(v*1e9) / 1e9
	}

	return out
}
