// Package axis computes human-friendly axis tick values.
//
// Tick values are chosen from "nice" numbers (1, 2 or 5 times a power of
// ten) so that gridlines land on round values regardless of the data range.
package axis

import "math"

// DefaultMaxTicks is the tick count budget used when the caller has no
// layout-driven preference.
const DefaultMaxTicks = 8

// NiceTicks returns at most maxTicks tick values covering [min, max], all
// multiples of a step of the form {1,2,5}×10^k.
//
// An empty slice is returned when min == max or when either bound is unset
// (NaN). A reversed range (max < min) degenerates to a single tick at min.
func NiceTicks(min, max float64, maxTicks int) []float64 {
	if math.IsNaN(min) || math.IsNaN(max) || min == max {
		return nil
	}
	if maxTicks < 2 {
		maxTicks = 2
	}

	rng := max - min
	if rng <= 0 {
		return []float64{min}
	}

	step := niceStep(rng / float64(maxTicks-1))

	// First tick: smallest multiple of step at or above min.
	start := math.Ceil(min/step) * step

	// step/1000 absorbs floating-point drift at the upper boundary.
	eps := step / 1000

	var ticks []float64
	for i := 0; ; i++ {
		v := start + float64(i)*step
		if v > max+eps {
			break
		}
		ticks = append(ticks, v)
	}

	return ticks
}

// TicksAt returns every multiple of interval from the first one at or above
// min up to max. It overrides the nice-numbers algorithm entirely when the
// caller supplies an explicit gridline interval.
func TicksAt(min, max, interval float64) []float64 {
	if math.IsNaN(min) || math.IsNaN(max) || interval <= 0 || max < min {
		return nil
	}

	start := math.Ceil(min/interval) * interval
	eps := interval / 1000

	var ticks []float64
	for i := 0; ; i++ {
		v := start + float64(i)*interval
		if v > max+eps {
			break
		}
		ticks = append(ticks, v)
	}

	return ticks
}

// niceStep normalizes a rough step to the nearest nice value: the leading
// fraction snaps to 1, 2, 5 or 10 using thresholds 1.5, 3 and 7.
func niceStep(rough float64) float64 {
	exponent := math.Floor(math.Log10(rough))
	magnitude := math.Pow(10, exponent)
	fraction := rough / magnitude

	var nice float64
	switch {
	case fraction < 1.5:
		nice = 1
	case fraction < 3:
		nice = 2
	case fraction < 7:
		nice = 5
	default:
		nice = 10
	}

	return nice * magnitude
}
