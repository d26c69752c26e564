package folio

import "math"

// Viewport holds the display transform of the page: zoom (percent), rotation
// (degrees), and pan offset. It never affects the page index. All mutations
// clamp rather than reject.
type Viewport struct {
	zoom     float64
	rotation float64
	pan      Vec2

	minZoom float64
	maxZoom float64
	step    float64

	onChange func()
}

// newViewport creates a Viewport at 100% zoom with limits from cfg.
func newViewport(cfg Config) *Viewport {
	return &Viewport{
		zoom:    baseZoom,
		minZoom: cfg.ZoomMin,
		maxZoom: cfg.ZoomMax,
		step:    cfg.ZoomStep,
	}
}

// Zoom returns the zoom level in percent.
func (v *Viewport) Zoom() float64 { return v.zoom }

// Rotation returns the rotation in degrees, in [0, 360).
func (v *Viewport) Rotation() float64 { return v.rotation }

// Pan returns the pan offset.
func (v *Viewport) Pan() Vec2 { return v.pan }

// ZoomIn raises zoom by one step.
func (v *Viewport) ZoomIn() {
	v.SetZoom(v.zoom + v.step)
}

// ZoomOut lowers zoom by one step.
func (v *Viewport) ZoomOut() {
	v.SetZoom(v.zoom - v.step)
}

// SetZoom clamps level to the zoom range. At or below 100% the pan offset
// returns to the origin.
func (v *Viewport) SetZoom(level float64) {
	if math.IsNaN(level) {
		return
	}
	prevZoom, prevPan := v.zoom, v.pan
	v.zoom = v.clampZoom(level)
	if v.zoom <= baseZoom {
		v.pan = Vec2{}
	}
	if v.zoom != prevZoom || v.pan != prevPan {
		v.changed()
	}
}

// ResetZoom restores 100% zoom and a centered page.
func (v *Viewport) ResetZoom() {
	v.SetZoom(baseZoom)
}

// ApplyPinch scales referenceZoom by currentDistance/referenceDistance.
// A non-positive reference distance leaves zoom unchanged.
func (v *Viewport) ApplyPinch(currentDistance, referenceDistance, referenceZoom float64) {
	if !(referenceDistance > 0) || math.IsNaN(currentDistance) {
		return
	}
	v.SetZoom(referenceZoom * currentDistance / referenceDistance)
}

// ApplyPan sets the pan offset to (dx, dy), the absolute travel since the
// gesture started. Ignored unless zoomed in past 100%.
func (v *Viewport) ApplyPan(dx, dy float64) {
	if v.zoom <= baseZoom {
		return
	}
	p := Vec2{X: dx, Y: dy}
	if p == v.pan {
		return
	}
	v.pan = p
	v.changed()
}

// SetRotation sets the rotation in degrees, normalised to [0, 360).
func (v *Viewport) SetRotation(deg float64) {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return
	}
	r := math.Mod(deg, 360)
	if r < 0 {
		r += 360
	}
	if r == v.rotation {
		return
	}
	v.rotation = r
	v.changed()
}

// Rotate adds deg to the rotation.
func (v *Viewport) Rotate(deg float64) {
	v.SetRotation(v.rotation + deg)
}

// Matrix returns the display transform as an affine matrix
// [a, b, c, d, tx, ty]: Translate(pan) * Rotate(rotation) * Scale(zoom/100).
func (v *Viewport) Matrix() [6]float64 {
	s := v.zoom / baseZoom
	rad := v.rotation * math.Pi / 180
	cos := math.Cos(rad)
	sin := math.Sin(rad)
	return [6]float64{s * cos, s * sin, -s * sin, s * cos, v.pan.X, v.pan.Y}
}

func (v *Viewport) clampZoom(z float64) float64 {
	return math.Max(v.minZoom, math.Min(z, v.maxZoom))
}

func (v *Viewport) changed() {
	if v.onChange != nil {
		v.onChange()
	}
}
