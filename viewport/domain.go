package viewport

import "math"

// Auto is the sentinel for an unset domain bound. Any bound equal to Auto
// means "recompute from data". NaN is used so that downstream consumers
// (tick generation, trendline sampling) can detect an unset bound without
// importing this package.
var Auto = math.NaN()

// IsAuto reports whether a single bound is the auto sentinel.
func IsAuto(v float64) bool {
	return math.IsNaN(v)
}

// Domain is a visible rectangle in data space.
type Domain struct {
	XMin float64
	XMax float64
	YMin float64
	YMax float64
}

// AutoDomain returns a Domain with every bound unset.
func AutoDomain() Domain {
	return Domain{XMin: Auto, XMax: Auto, YMin: Auto, YMax: Auto}
}

// IsAuto reports whether any bound of the domain is unset.
func (d Domain) IsAuto() bool {
	return IsAuto(d.XMin) || IsAuto(d.XMax) || IsAuto(d.YMin) || IsAuto(d.YMax)
}

// XRange returns the domain's x extent.
func (d Domain) XRange() float64 {
	return d.XMax - d.XMin
}

// YRange returns the domain's y extent.
func (d Domain) YRange() float64 {
	return d.YMax - d.YMin
}

// Center returns the midpoint of the domain.
func (d Domain) Center() (x, y float64) {
	return (d.XMin + d.XMax) / 2, (d.YMin + d.YMax) / 2
}

// translated returns the domain shifted by (dx, dy) in data space.
func (d Domain) translated(dx, dy float64) Domain {
	return Domain{
		XMin: d.XMin + dx,
		XMax: d.XMax + dx,
		YMin: d.YMin + dy,
		YMax: d.YMax + dy,
	}
}

// scaled returns the domain with the selected axis ranges multiplied by
// factor, keeping the center fixed.
func (d Domain) scaled(factor float64, axes Axes) Domain {
	cx, cy := d.Center()
	out := d

	if axes&AxisX != 0 {
		half := d.XRange() / 2 * factor
		out.XMin, out.XMax = cx-half, cx+half
	}
	if axes&AxisY != 0 {
		half := d.YRange() / 2 * factor
		out.YMin, out.YMax = cy-half, cy+half
	}

	return out
}
