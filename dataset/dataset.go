package dataset

import (
	"gonum.org/v1/gonum/floats"

	"github.com/Tajwarbot/Graphly/format"
	"github.com/Tajwarbot/Graphly/internal/hash"
)

// Dataset is one chartable series: either a table of imported rows projected
// through a key pair, or an equation-driven function series.
type Dataset struct {
	// Name is the user-visible series name. It also determines ID.
	Name string
	// Kind selects between tabular points and an equation-driven function.
	Kind format.SeriesKind
	// Rows holds the raw records for point-kind datasets.
	Rows []Row
	// XKey and YKey select which fields project into points.
	XKey string
	YKey string
	// Equation holds the function text for function-kind datasets.
	Equation string
	// Visible controls whether the series participates in rendering and in
	// auto-domain bounds.
	Visible bool
}

// ID returns the stable 64-bit identifier for the dataset, the xxHash64 of
// its name.
func (d *Dataset) ID() uint64 {
	return hash.ID(d.Name)
}

// Points projects the dataset's rows into plottable points.
func (d *Dataset) Points() []Point {
	return Points(d.Rows, d.XKey, d.YKey)
}

// Describe computes descriptive statistics over the dataset's rows.
func (d *Dataset) Describe() Stats {
	return Describe(d.Rows, d.XKey, d.YKey)
}

// BoundsOf computes the bounding box of all valid points across the visible
// point-kind datasets. Function-kind datasets are excluded: their samples are
// derived from the viewport, so including them would feed the viewport back
// into itself.
//
// ok is false when no visible dataset contributes a valid point.
func BoundsOf(sets []Dataset) (xMin, xMax, yMin, yMax float64, ok bool) {
	var xs, ys []float64

	for i := range sets {
		d := &sets[i]
		if !d.Visible || d.Kind != format.KindPoints {
			continue
		}
		for _, p := range d.Points() {
			xs = append(xs, p.X)
			ys = append(ys, p.Y)
		}
	}

	if len(xs) == 0 {
		return 0, 0, 0, 0, false
	}

	return floats.Min(xs), floats.Max(xs), floats.Min(ys), floats.Max(ys), true
}
