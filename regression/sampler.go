package regression

import (
	"math"

	"github.com/Tajwarbot/Graphly/dataset"
)

// CurvePoints is the fixed resolution of a sampled trendline curve.
const CurvePoints = 150

// defaultClampRange substitutes for the clamp band when the data's y extent
// is zero (a horizontal point set).
const defaultClampRange = 10.0

// SampleCurve evaluates a fitted model across [xMin, xMax] and returns
// CurvePoints evenly spaced samples for display.
//
// Generated y values are clamped into a safety band five data-ranges beyond
// [yDataMin, yDataMax] so that runaway values (an exponential fit sampled far
// outside its data, for example) cannot distort the chart's scale.
// Logarithmic models skip samples at x <= 0.
//
// An empty sequence is returned when result is nil or when any bound is
// unset (NaN, the viewport's auto sentinel); a NaN y bound would otherwise
// poison the clamp and leak non-finite samples.
func SampleCurve(result *Result, xMin, xMax, yDataMin, yDataMax float64) []dataset.Point {
	if result == nil || math.IsNaN(xMin) || math.IsNaN(xMax) ||
		math.IsNaN(yDataMin) || math.IsNaN(yDataMax) {
		return nil
	}

	band := math.Abs(yDataMax - yDataMin)
	if band == 0 {
		band = defaultClampRange
	}
	yLo := yDataMin - 5*band
	yHi := yDataMax + 5*band

	dx := (xMax - xMin) / float64(CurvePoints-1)
	points := make([]dataset.Point, 0, CurvePoints)

	for i := 0; i < CurvePoints; i++ {
		x := xMin + float64(i)*dx
		if result.Kind == Logarithmic && x <= 0 {
			continue
		}

		y := result.Eval(x)
		if math.IsNaN(y) {
			continue
		}
		y = math.Min(math.Max(y, yLo), yHi)

		points = append(points, dataset.Point{X: x, Y: y})
	}

	return points
}
