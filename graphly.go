// Package graphly is the math core of an interactive charting application:
// equation plotting, least-squares trendlines, descriptive statistics, axis
// tick generation and viewport navigation, plus a compact binary snapshot
// format for dataset collections.
//
// The core is UI-agnostic. A rendering layer feeds it pixel-space events and
// raw rows; it answers with data-space geometry (points, domains, ticks) and
// ready-to-display strings.
//
// # Basic Usage
//
// Plotting an equation and fitting a trendline:
//
//	import "github.com/Tajwarbot/Graphly"
//
//	// Sample y = 2x² + 3 across the visible x range.
//	curve := graphly.SampleEquation("2x^2 + 3", -10, 10, 200)
//
//	// Fit a quadratic trendline to imported points.
//	result := graphly.Fit(points, graphly.Quadratic)
//	if result != nil {
//	    fmt.Println(result.Equation, result.R2)
//	}
//
// Driving a viewport from UI events:
//
//	vp := viewport.New(viewport.WithContainerSize(800, 600))
//	if xMin, xMax, yMin, yMax, ok := dataset.BoundsOf(sets); ok {
//	    vp.SetDataBounds(xMin, xMax, yMin, yMax)
//	}
//	vp.PanBy(dx, dy)
//	ticks := vp.XTicks(axis.DefaultMaxTicks)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the concern
// packages (expr, regression, dataset, axis, viewport, numfmt, snapshot).
// For fine-grained control, use those packages directly.
package graphly

import (
	"github.com/Tajwarbot/Graphly/axis"
	"github.com/Tajwarbot/Graphly/dataset"
	"github.com/Tajwarbot/Graphly/expr"
	"github.com/Tajwarbot/Graphly/internal/hash"
	"github.com/Tajwarbot/Graphly/numfmt"
	"github.com/Tajwarbot/Graphly/regression"
	"github.com/Tajwarbot/Graphly/snapshot"
)

// Trendline families, re-exported for callers that only import the root
// package.
const (
	Linear      = regression.Linear
	Quadratic   = regression.Quadratic
	Exponential = regression.Exponential
	Power       = regression.Power
	Logarithmic = regression.Logarithmic
)

// SeriesID returns the stable 64-bit identifier for a series name.
func SeriesID(name string) uint64 {
	return hash.ID(name)
}

// CompileEquation compiles an equation string into a callable function of x.
func CompileEquation(equation string) (expr.Func, error) {
	return expr.Compile(equation)
}

// SampleEquation samples an equation across [xMin, xMax] in steps increments,
// dropping non-finite values. A malformed equation yields an empty result.
func SampleEquation(equation string, xMin, xMax float64, steps int) []dataset.Point {
	return expr.Sample(equation, xMin, xMax, steps)
}

// Fit computes the least-squares trendline of the given family, or nil when
// the data cannot support one.
func Fit(points []dataset.Point, kind regression.Kind) *regression.Result {
	return regression.Fit(points, kind)
}

// SampleCurve renders a fitted trendline into plottable points across the
// visible x range, clamped to a band around the visible y range.
func SampleCurve(result *regression.Result, xMin, xMax, yMin, yMax float64) []dataset.Point {
	return regression.SampleCurve(result, xMin, xMax, yMin, yMax)
}

// Describe computes descriptive statistics over rows projected through the
// given key pair.
func Describe(rows []dataset.Row, xKey, yKey string) dataset.Stats {
	return dataset.Describe(rows, xKey, yKey)
}

// NiceTicks returns at most maxTicks round tick values covering [min, max].
func NiceTicks(min, max float64, maxTicks int) []float64 {
	return axis.NiceTicks(min, max, maxTicks)
}

// FormatNumber renders a value for display: "0" for zero, exponential
// notation for very large or very small magnitudes, fixed 3 decimals
// otherwise.
func FormatNumber(v float64) string {
	return numfmt.Format(v)
}

// EncodeSnapshot serializes a dataset collection with default (Zstd)
// compression.
func EncodeSnapshot(sets []dataset.Dataset) ([]byte, error) {
	enc, err := snapshot.NewEncoder()
	if err != nil {
		return nil, err
	}

	return enc.Encode(sets)
}

// DecodeSnapshot restores a dataset collection from snapshot bytes.
func DecodeSnapshot(data []byte) ([]dataset.Dataset, error) {
	return snapshot.Decode(data)
}
