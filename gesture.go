package folio

import "math"

// pager is the navigation surface a swipe drives.
type pager interface {
	GoToNext() bool
	GoToPrevious() bool
}

// activityRecorder is notified once per physical input event.
type activityRecorder interface {
	RecordActivity()
}

type gestureKind uint8

// inputChannel is the event family that opened a track. Only events from the
// same family may move or end it.
type inputChannel uint8

const (
	channelPointer inputChannel = iota + 1
	channelTouch
)

const (
	gestureSingle gestureKind = iota + 1 // pan or swipe
	gesturePinch                         // two-finger zoom
)

// gestureTrack lives from pointer-down to pointer-up and is then discarded.
// A track never changes kind except for the single-to-pinch upgrade when a
// second finger lands.
type gestureTrack struct {
	kind    gestureKind
	channel inputChannel

	// single pointer
	startX, startY float64

	// pinch
	center          Vec2
	initialDistance float64
	zoomAtStart     float64
}

// GestureProcessor classifies raw pointer, touch, and wheel events into pans,
// pinches, swipes, and wheel zoom steps.
type GestureProcessor struct {
	viewport *Viewport
	pager    pager
	activity activityRecorder

	swipeThreshold float64

	track *gestureTrack
}

func newGestureProcessor(v *Viewport, p pager, a activityRecorder, cfg Config) *GestureProcessor {
	return &GestureProcessor{
		viewport:       v,
		pager:          p,
		activity:       a,
		swipeThreshold: cfg.SwipeThreshold,
	}
}

// Tracking reports whether a gesture is in progress.
func (g *GestureProcessor) Tracking() bool {
	return g.track != nil
}

// Pinching reports whether the current gesture is a pinch.
func (g *GestureProcessor) Pinching() bool {
	return g.track != nil && g.track.kind == gesturePinch
}

// PinchCenter returns the midpoint between the two fingers of the current
// pinch, for hosts that anchor zoom on it. ok is false when not pinching.
func (g *GestureProcessor) PinchCenter() (center Vec2, ok bool) {
	if !g.Pinching() {
		return Vec2{}, false
	}
	return g.track.center, true
}

// Handle runs the gesture state machine for one input event.
// Pointer and touch events are separate channels: a track opened by one
// channel ignores moves and releases from the other, and a pinch is never
// replaced by a new single-pointer track.
func (g *GestureProcessor) Handle(ev InputEvent) {
	switch ev.Kind {
	case InputPointerDown:
		g.beginSingle(channelPointer, ev.X, ev.Y)
	case InputPointerMove:
		g.activity.RecordActivity()
		g.moveSingle(channelPointer, ev.X, ev.Y)
	case InputPointerUp:
		g.end(channelPointer, ev.X, ev.Y)
	case InputTouchStart:
		g.activity.RecordActivity()
		switch {
		case len(ev.Touches) >= 2:
			g.beginPinch(ev.Touches[0], ev.Touches[1])
		case len(ev.Touches) == 1 && g.track == nil:
			g.beginSingle(channelTouch, ev.Touches[0].X, ev.Touches[0].Y)
		}
	case InputTouchMove:
		if g.track == nil || g.track.channel != channelTouch {
			return
		}
		if g.track.kind == gesturePinch {
			if len(ev.Touches) >= 2 {
				g.movePinch(ev.Touches[0], ev.Touches[1])
			}
			return
		}
		if len(ev.Touches) == 1 {
			g.moveSingle(channelTouch, ev.Touches[0].X, ev.Touches[0].Y)
		}
	case InputTouchEnd:
		g.end(channelTouch, ev.X, ev.Y)
	case InputWheel:
		g.activity.RecordActivity()
		g.wheel(ev)
	}
}

// beginSingle opens a single-pointer track. A press on a channel that already
// owns the track restarts it (its release was lost); any other live track wins.
func (g *GestureProcessor) beginSingle(ch inputChannel, x, y float64) {
	if g.track != nil && (g.track.kind != gestureSingle || g.track.channel != ch) {
		return
	}
	g.track = &gestureTrack{kind: gestureSingle, channel: ch, startX: x, startY: y}
}

// moveSingle pans by the absolute travel from the gesture start. Only
// meaningful while zoomed in.
func (g *GestureProcessor) moveSingle(ch inputChannel, x, y float64) {
	if g.track == nil || g.track.kind != gestureSingle || g.track.channel != ch {
		return
	}
	if g.viewport.Zoom() <= baseZoom {
		return
	}
	g.viewport.ApplyPan(x-g.track.startX, y-g.track.startY)
}

func (g *GestureProcessor) beginPinch(a, b Vec2) {
	g.track = &gestureTrack{
		kind:            gesturePinch,
		channel:         channelTouch,
		center:          midpoint(a, b),
		initialDistance: distance(a, b),
		zoomAtStart:     g.viewport.Zoom(),
	}
}

func (g *GestureProcessor) movePinch(a, b Vec2) {
	g.track.center = midpoint(a, b)
	// ApplyPinch ignores a zero reference distance.
	g.viewport.ApplyPinch(distance(a, b), g.track.initialDistance, g.track.zoomAtStart)
}

// end classifies a finished single-pointer gesture as a swipe or discards it,
// then clears the track. Releases from the other channel are ignored.
func (g *GestureProcessor) end(ch inputChannel, x, y float64) {
	t := g.track
	if t == nil || t.channel != ch {
		return
	}
	g.track = nil
	if t.kind != gestureSingle {
		return
	}
	dx := x - t.startX
	dy := y - t.startY
	if math.Abs(dx) <= g.swipeThreshold || math.Abs(dx) <= math.Abs(dy) {
		return
	}
	if dx > 0 {
		g.pager.GoToPrevious()
	} else {
		g.pager.GoToNext()
	}
}

// wheel zooms one step when Ctrl or Meta is held. Scrolling up zooms in.
func (g *GestureProcessor) wheel(ev InputEvent) {
	if !ev.Modifiers.zoomModifier() {
		return
	}
	switch {
	case ev.DeltaY < 0:
		g.viewport.ZoomIn()
	case ev.DeltaY > 0:
		g.viewport.ZoomOut()
	}
}

func midpoint(a, b Vec2) Vec2 {
	return Vec2{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

func distance(a, b Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
