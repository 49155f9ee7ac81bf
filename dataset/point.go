package dataset

import (
	"math"
	"strconv"
)

// Point is a single plottable sample in data space.
type Point struct {
	X float64
	Y float64
}

// Row is one imported or hand-entered record: a mapping from field name to a
// numeric or textual cell value.
type Row map[string]any

// coerce converts a cell value to a finite float64.
//
// Accepted inputs are Go numeric types and strings that parse as floats.
// Everything else, including non-finite values, reports ok=false.
func coerce(v any) (float64, bool) {
	var f float64

	switch val := v.(type) {
	case float64:
		f = val
	case float32:
		f = float64(val)
	case int:
		f = float64(val)
	case int64:
		f = float64(val)
	case int32:
		f = float64(val)
	case uint:
		f = float64(val)
	case uint64:
		f = float64(val)
	case string:
		parsed, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	return f, true
}

// Points projects rows onto (x,y) points using the given field names.
//
// Rows whose x or y cell is missing or fails numeric coercion are excluded.
// The result preserves row order.
func Points(rows []Row, xKey, yKey string) []Point {
	points := make([]Point, 0, len(rows))

	for _, row := range rows {
		x, okX := coerce(row[xKey])
		y, okY := coerce(row[yKey])
		if !okX || !okY {
			continue
		}
		points = append(points, Point{X: x, Y: y})
	}

	return points
}
