// Package viewport owns the visible (x,y) rectangle of a chart and the math
// that moves it: pan, wheel/pinch/button zoom, aspect locking and
// reset-to-auto.
//
// The Viewport is the single source of truth for the visible domain. It
// consumes pixel-space events from the rendering layer (drag deltas, wheel
// ticks, touch distances, container dimensions) and produces a concrete
// Domain plus axis ticks each frame. Until the user pans or zooms, the
// domain is "auto": recomputed from the data's bounding box with 10% padding,
// falling back to a fixed default window when no data is visible.
package viewport
