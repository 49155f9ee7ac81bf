package viewport

import (
	"math"

	"github.com/Tajwarbot/Graphly/axis"
	"github.com/Tajwarbot/Graphly/internal/options"
)

const (
	// autoPadFraction pads the data bounding box on each side when the
	// domain is derived automatically.
	autoPadFraction = 0.10

	// Discrete zoom button factors.
	zoomInFactor  = 0.8
	zoomOutFactor = 1.25

	// Wheel zoom steps: coarse devices jump 10% per event; pixel-granularity
	// devices (trackpads) are dampened to avoid jarring jumps.
	wheelCoarseStep    = 0.10
	wheelFineSmallStep = 0.02
	wheelFineLargeStep = 0.05
	wheelFineThreshold = 50.0

	// Pinch zoom factors per touch-move event.
	pinchInFactor  = 0.95
	pinchOutFactor = 1.05
)

// Axes selects which axes a zoom applies to, derived from modifier keys.
type Axes uint8

const (
	AxisX Axes = 1 << iota
	AxisY

	AxisBoth = AxisX | AxisY
)

// Viewport tracks the visible domain of a chart across a session.
//
// Viewport is not safe for concurrent use; like the rest of the core it is
// driven synchronously from UI events.
type Viewport struct {
	// domain is the explicit domain from pan/zoom; AutoDomain() until the
	// user navigates.
	domain Domain

	// bounds is the data bounding box feeding auto-domain computation.
	bounds    Domain
	hasBounds bool

	// defaultWindow is shown when the domain is auto and no data is visible.
	defaultWindow Domain

	// Container size in pixels, supplied by the rendering layer.
	width, height float64

	// squareAspect forces a 1:1 data-to-pixel aspect ratio.
	squareAspect bool

	// pinchDist is the last inter-finger distance; 0 means no active pinch.
	pinchDist float64
}

// Option is a functional option for configuring a Viewport.
type Option = options.Option[*Viewport]

// WithContainerSize sets the chart container's pixel dimensions.
func WithContainerSize(width, height float64) Option {
	return options.NoError(func(v *Viewport) {
		v.width, v.height = width, height
	})
}

// WithDefaultWindow overrides the fallback window shown when no data is
// visible.
func WithDefaultWindow(d Domain) Option {
	return options.NoError(func(v *Viewport) {
		v.defaultWindow = d
	})
}

// WithSquareAspect enables 1:1 aspect locking from the start.
func WithSquareAspect(enabled bool) Option {
	return options.NoError(func(v *Viewport) {
		v.squareAspect = enabled
	})
}

// New creates a Viewport with an automatic domain.
func New(opts ...Option) *Viewport {
	v := &Viewport{
		domain:        AutoDomain(),
		defaultWindow: Domain{XMin: -10, XMax: 10, YMin: -10, YMax: 10},
	}
	_ = options.Apply(v, opts...)

	return v
}

// SetContainerSize updates the container's pixel dimensions. The aspect lock,
// when enabled, is recomputed from the new size on the next CurrentDomain.
func (v *Viewport) SetContainerSize(width, height float64) {
	v.width, v.height = width, height
}

// SetDataBounds supplies the bounding box of the visible data, which drives
// the auto domain.
func (v *Viewport) SetDataBounds(xMin, xMax, yMin, yMax float64) {
	v.bounds = Domain{XMin: xMin, XMax: xMax, YMin: yMin, YMax: yMax}
	v.hasBounds = true
}

// ClearDataBounds marks that no visible data exists; the auto domain falls
// back to the default window.
func (v *Viewport) ClearDataBounds() {
	v.hasBounds = false
}

// SetSquareAspect toggles 1:1 aspect locking.
func (v *Viewport) SetSquareAspect(enabled bool) {
	v.squareAspect = enabled
}

// ResetToAuto discards any explicit pan/zoom state. The next CurrentDomain
// recomputes from the current data bounds.
func (v *Viewport) ResetToAuto() {
	v.domain = AutoDomain()
}

// IsAuto reports whether the viewport is still in automatic-domain mode.
func (v *Viewport) IsAuto() bool {
	return v.domain.IsAuto()
}

// CurrentDomain returns the concrete visible rectangle: the explicit domain
// if the user has navigated, otherwise the padded data bounds or the default
// window. Aspect locking applies to the result whatever its source.
func (v *Viewport) CurrentDomain() Domain {
	d := v.resolve()
	if v.squareAspect {
		d = v.lockAspect(d)
	}

	return d
}

func (v *Viewport) resolve() Domain {
	if !v.domain.IsAuto() {
		return v.domain
	}
	if !v.hasBounds {
		return v.defaultWindow
	}

	padX := v.bounds.XRange() * autoPadFraction
	padY := v.bounds.YRange() * autoPadFraction

	return Domain{
		XMin: v.bounds.XMin - padX,
		XMax: v.bounds.XMax + padX,
		YMin: v.bounds.YMin - padY,
		YMax: v.bounds.YMax + padY,
	}
}

// lockAspect recomputes the y half-range from the x range and the container's
// pixel aspect ratio, recentered on the existing y center, so one data unit
// spans the same number of pixels on both axes.
func (v *Viewport) lockAspect(d Domain) Domain {
	if v.width <= 0 || v.height <= 0 {
		return d
	}

	yHalf := d.XRange() * (v.height / v.width) / 2
	_, cy := d.Center()
	d.YMin, d.YMax = cy-yHalf, cy+yHalf

	return d
}

// PanBy translates the domain by a drag of (dxPixels, dyPixels).
//
// The shift is the pixel displacement as a fraction of the container size,
// scaled by the current range. The x axis pans against the pointer while the
// y axis pans with it in data space; both reduce to subtracting the scaled
// delta. Screen and data orientation disagree only on y, so the two axes
// behave asymmetrically on screen. This mirrors the app's established drag
// feel and must not be "corrected" to symmetric panning.
func (v *Viewport) PanBy(dxPixels, dyPixels float64) {
	if v.width <= 0 || v.height <= 0 {
		return
	}

	d := v.CurrentDomain()
	dx := -dxPixels / v.width * d.XRange()
	dy := -dyPixels / v.height * d.YRange()

	v.domain = d.translated(dx, dy)
}

// WheelZoom applies one wheel event. pixelDeltas reports whether the device
// delivers fine-grained pixel deltas (trackpads) rather than coarse line/page
// ticks. axes selects the affected axes from the event's modifier keys.
// Zoom is centered on the domain midpoint, not the cursor.
func (v *Viewport) WheelZoom(delta float64, pixelDeltas bool, axes Axes) {
	if delta == 0 || axes == 0 {
		return
	}

	step := wheelCoarseStep
	if pixelDeltas {
		if math.Abs(delta) < wheelFineThreshold {
			step = wheelFineSmallStep
		} else {
			step = wheelFineLargeStep
		}
	}

	factor := 1 - step
	if delta > 0 {
		factor = 1 + step
	}

	v.zoomBy(factor, axes)
}

// ZoomIn applies the discrete zoom-in button factor to both axes.
func (v *Viewport) ZoomIn() {
	v.zoomBy(zoomInFactor, AxisBoth)
}

// ZoomOut applies the discrete zoom-out button factor to both axes.
func (v *Viewport) ZoomOut() {
	v.zoomBy(zoomOutFactor, AxisBoth)
}

// Pinch processes one two-finger touch-move event with the current
// inter-finger distance. The zoom direction follows the change since the
// previous event; the first event of a gesture only records the distance.
func (v *Viewport) Pinch(distance float64) {
	last := v.pinchDist
	v.pinchDist = distance

	if last <= 0 || distance == last {
		return
	}
	if distance > last {
		v.zoomBy(pinchInFactor, AxisBoth)
	} else {
		v.zoomBy(pinchOutFactor, AxisBoth)
	}
}

// PinchEnd closes the active pinch gesture.
func (v *Viewport) PinchEnd() {
	v.pinchDist = 0
}

func (v *Viewport) zoomBy(factor float64, axes Axes) {
	v.domain = v.CurrentDomain().scaled(factor, axes)
}

// XTicks returns nice tick values for the current x range.
func (v *Viewport) XTicks(maxTicks int) []float64 {
	d := v.CurrentDomain()
	return axis.NiceTicks(d.XMin, d.XMax, maxTicks)
}

// YTicks returns nice tick values for the current y range.
func (v *Viewport) YTicks(maxTicks int) []float64 {
	d := v.CurrentDomain()
	return axis.NiceTicks(d.YMin, d.YMax, maxTicks)
}

// XTicksAt returns x ticks at an explicit caller-supplied interval,
// overriding the nice-numbers algorithm.
func (v *Viewport) XTicksAt(interval float64) []float64 {
	d := v.CurrentDomain()
	return axis.TicksAt(d.XMin, d.XMax, interval)
}

// YTicksAt returns y ticks at an explicit caller-supplied interval.
func (v *Viewport) YTicksAt(interval float64) []float64 {
	d := v.CurrentDomain()
	return axis.TicksAt(d.YMin, d.YMax, interval)
}
