package folio

// InputKind identifies a host input event.
type InputKind uint8

const (
	InputPointerDown InputKind = iota // mouse/pen pressed
	InputPointerMove                  // mouse/pen moved, pressed or not
	InputPointerUp                    // mouse/pen released
	InputTouchStart                   // a finger touched down
	InputTouchMove                    // one or more fingers moved
	InputTouchEnd                     // a finger lifted
	InputWheel                        // scroll wheel or trackpad scroll
)

func (k InputKind) String() string {
	switch k {
	case InputPointerDown:
		return "pointerdown"
	case InputPointerMove:
		return "pointermove"
	case InputPointerUp:
		return "pointerup"
	case InputTouchStart:
		return "touchstart"
	case InputTouchMove:
		return "touchmove"
	case InputTouchEnd:
		return "touchend"
	case InputWheel:
		return "wheel"
	default:
		return "unknown"
	}
}

// InputEvent is one raw pointer, touch, or wheel event from the host.
type InputEvent struct {
	Kind InputKind
	// X and Y are the pointer position. For InputTouchEnd they are the
	// position of the finger that lifted.
	X, Y float64
	// Touches lists the fingers still on the surface after the event,
	// in a stable order.
	Touches []Vec2
	// DeltaX and DeltaY are wheel deltas. Negative DeltaY scrolls up.
	DeltaX, DeltaY float64
	Modifiers      KeyModifiers
}

// Key identifies a keyboard key the router understands.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyEscape
	KeyCharacter // Rune holds the character
)

// KeyEvent is a key-down from the host.
type KeyEvent struct {
	Key       Key
	Rune      rune
	Modifiers KeyModifiers
}

// InputSource polls a host for input once per Session.Update.
type InputSource interface {
	Poll(s *Session)
}

// --- Change callbacks ---

type changeHandler struct {
	id uint32
	fn func(Snapshot)
}

type closeHandler struct {
	id uint32
	fn func()
}

type handlerRegistry struct {
	change []changeHandler
	close  []closeHandler
	nextID uint32
}

type handlerKind uint8

const (
	handlerChange handlerKind = iota
	handlerClose
)

// CallbackHandle allows removing a registered session callback.
type CallbackHandle struct {
	id   uint32
	reg  *handlerRegistry
	kind handlerKind
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.kind {
	case handlerChange:
		for i := range h.reg.change {
			if h.reg.change[i].id == h.id {
				h.reg.change = append(h.reg.change[:i], h.reg.change[i+1:]...)
				return
			}
		}
	case handlerClose:
		for i := range h.reg.close {
			if h.reg.close[i].id == h.id {
				h.reg.close = append(h.reg.close[:i], h.reg.close[i+1:]...)
				return
			}
		}
	}
}

// OnChange registers a callback fired with a fresh Snapshot after every state
// change: page index, transition phase, zoom, pan, controls visibility,
// bookmarks, or overlays.
func (s *Session) OnChange(fn func(Snapshot)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.change = append(s.handlers.change, changeHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, kind: handlerChange}
}

// OnClose registers a callback fired once when the viewer closes.
func (s *Session) OnClose(fn func()) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.close = append(s.handlers.close, closeHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, kind: handlerClose}
}
