// Package regression fits trendline models to (x,y) point sets.
//
// Five model families are supported:
//
//   - Linear: y = m*x + b
//   - Quadratic: y = a*x² + b*x + c
//   - Exponential: y = a * e^(b*x)
//   - Power: y = a * x^b
//   - Logarithmic: y = a + b * ln(x)
//
// Each family has a closed-form least-squares solution: the linear fit uses
// the standard sums, the quadratic fit solves its 3×3 normal equations with
// Cramer's rule, and the remaining families linearize through logarithms and
// reuse the linear solution. Every fit reports R² (coefficient of
// determination) and a display-ready equation string.
//
// # Data Handling
//
// Fit filters non-finite points, sorts by x, and additionally excludes points
// outside the family's domain (y≤0 for exponential, x≤0 or y≤0 for power,
// x≤0 for logarithmic). Fewer than two surviving points, or a degenerate
// system, yields a nil result — "no trendline" is an expected outcome, never
// an error.
//
// # Usage
//
//	result := regression.Fit(points, regression.Linear)
//	if result != nil {
//	    fmt.Println(result.Equation, result.R2)
//	    curve := regression.SampleCurve(result, xMin, xMax, yMin, yMax)
//	}
package regression
