package dataset

import "gonum.org/v1/gonum/stat"

// Stats holds descriptive statistics for a projected column pair.
//
// StdDev fields are population standard deviations (divide by n, not n-1).
type Stats struct {
	MeanX   float64
	MeanY   float64
	StdDevX float64
	StdDevY float64
	N       int
}

// Describe computes mean and population standard deviation over the rows
// whose x and y cells both coerce to finite numbers.
//
// When no row survives coercion the zero Stats value is returned (N=0);
// missing data is an expected condition, not an error.
func Describe(rows []Row, xKey, yKey string) Stats {
	var xs, ys []float64

	for _, row := range rows {
		x, okX := coerce(row[xKey])
		y, okY := coerce(row[yKey])
		if !okX || !okY {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}

	if len(xs) == 0 {
		return Stats{}
	}

	return Stats{
		MeanX:   stat.Mean(xs, nil),
		MeanY:   stat.Mean(ys, nil),
		StdDevX: stat.PopStdDev(xs, nil),
		StdDevY: stat.PopStdDev(ys, nil),
		N:       len(xs),
	}
}
