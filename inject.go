package folio

// syntheticInput is one queued event: either an input event or a key-down.
type syntheticInput struct {
	input *InputEvent
	key   *KeyEvent
}

func (s *Session) injectInput(ev InputEvent) {
	s.injectQueue = append(s.injectQueue, syntheticInput{input: &ev})
}

// InjectKey queues a key-down. Queued events are consumed one per Update.
func (s *Session) InjectKey(ev KeyEvent) {
	s.injectQueue = append(s.injectQueue, syntheticInput{key: &ev})
}

// InjectTap queues a one-finger touch and release at (x, y). Consumes two frames.
func (s *Session) InjectTap(x, y float64) {
	s.injectInput(InputEvent{Kind: InputTouchStart, X: x, Y: y, Touches: []Vec2{{x, y}}})
	s.injectInput(InputEvent{Kind: InputTouchEnd, X: x, Y: y})
}

// InjectSwipe queues a one-finger swipe: touch at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). Minimum frames is 2.
func (s *Session) InjectSwipe(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.injectInput(InputEvent{Kind: InputTouchStart, X: fromX, Y: fromY, Touches: []Vec2{{fromX, fromY}}})
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		s.injectInput(InputEvent{Kind: InputTouchMove, X: x, Y: y, Touches: []Vec2{{x, y}}})
	}
	s.injectInput(InputEvent{Kind: InputTouchEnd, X: toX, Y: toY})
}

// InjectPinch queues a horizontal two-finger pinch centred on (cx, cy), the
// fingers moving from fromDist to toDist apart over frames frames. Minimum
// frames is 3 (start, one move, end).
func (s *Session) InjectPinch(cx, cy, fromDist, toDist float64, frames int) {
	if frames < 3 {
		frames = 3
	}
	pair := func(d float64) []Vec2 {
		return []Vec2{{cx - d/2, cy}, {cx + d/2, cy}}
	}
	first := pair(fromDist)
	s.injectInput(InputEvent{Kind: InputTouchStart, X: first[1].X, Y: cy, Touches: first})
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		d := fromDist + (toDist-fromDist)*t
		s.injectInput(InputEvent{Kind: InputTouchMove, X: cx, Y: cy, Touches: pair(d)})
	}
	last := pair(toDist)
	s.injectInput(InputEvent{Kind: InputTouchEnd, X: last[1].X, Y: cy, Touches: last[:1]})
}

// InjectWheel queues a wheel event with the given vertical delta.
func (s *Session) InjectWheel(deltaY float64, mods KeyModifiers) {
	s.injectInput(InputEvent{Kind: InputWheel, DeltaY: deltaY, Modifiers: mods})
}

// processInjectedInput pops one queued event and dispatches it. Returns true
// if an event was consumed, in which case host input is skipped this frame.
func (s *Session) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	switch {
	case evt.input != nil:
		s.HandleInput(*evt.input)
	case evt.key != nil:
		s.HandleKey(*evt.key)
	}
	return true
}
