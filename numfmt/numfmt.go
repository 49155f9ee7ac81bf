// Package numfmt renders numeric values for display.
//
// The same thresholds drive every user-visible number in Graphly, including
// the coefficients embedded in regression equation strings, so the chart
// legend, stat readouts and fitted formulas always agree.
package numfmt

import (
	"math"
	"strconv"
)

const (
	// expUpper is the magnitude at or above which values switch to
	// exponential notation.
	expUpper = 10000
	// expLower is the magnitude below which nonzero values switch to
	// exponential notation.
	expLower = 0.001
)

// Format renders v for display.
//
// Rules:
//   - exact zero renders as "0"
//   - |v| >= 10000 or 0 < |v| < 0.001 renders in exponential notation with
//     2 decimal digits (e.g. "1.23e+04")
//   - anything else renders fixed with 3 decimal digits (e.g. "3.142")
//
// Non-finite values pass through as their standard spellings ("NaN", "+Inf").
func Format(v float64) string {
	if v == 0 {
		return "0"
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	abs := math.Abs(v)
	if abs >= expUpper || abs < expLower {
		return strconv.FormatFloat(v, 'e', 2, 64)
	}

	return strconv.FormatFloat(v, 'f', 3, 64)
}
