package folio

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenInput polls Ebitengine for mouse, touch, wheel, and keyboard input
// and feeds it to a Session. Call Poll once per tick, or attach it with
// WithInputSource.
type EbitenInput struct {
	mouseX, mouseY int
	mouseDown      bool

	touchIDs  []ebiten.TouchID
	justIDs   []ebiten.TouchID
	lastTouch map[ebiten.TouchID]Vec2
	keys      []ebiten.Key
}

// NewEbitenInput creates an input source for the running Ebitengine game.
func NewEbitenInput() *EbitenInput {
	return &EbitenInput{lastTouch: make(map[ebiten.TouchID]Vec2)}
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

// Poll reads this tick's input and dispatches it to s.
func (e *EbitenInput) Poll(s *Session) {
	mods := readModifiers()
	e.pollMouse(s, mods)
	e.pollTouches(s, mods)

	if _, wy := ebiten.Wheel(); wy != 0 {
		// Ebitengine reports scrolling up as positive; InputEvent follows the
		// DOM convention where up is negative.
		s.HandleInput(InputEvent{Kind: InputWheel, DeltaY: -wy, Modifiers: mods})
	}

	e.keys = inpututil.AppendJustPressedKeys(e.keys[:0])
	for _, k := range e.keys {
		if ev, ok := translateKey(k, mods); ok {
			s.HandleKey(ev)
		}
	}
}

func (e *EbitenInput) pollMouse(s *Session, mods KeyModifiers) {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		e.mouseDown = true
		s.HandleInput(InputEvent{Kind: InputPointerDown, X: x, Y: y, Modifiers: mods})
	}
	if mx != e.mouseX || my != e.mouseY {
		s.HandleInput(InputEvent{Kind: InputPointerMove, X: x, Y: y, Modifiers: mods})
	}
	if e.mouseDown && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		e.mouseDown = false
		s.HandleInput(InputEvent{Kind: InputPointerUp, X: x, Y: y, Modifiers: mods})
	}
	e.mouseX, e.mouseY = mx, my
}

func (e *EbitenInput) pollTouches(s *Session, mods KeyModifiers) {
	e.touchIDs = ebiten.AppendTouchIDs(e.touchIDs[:0])
	slices.Sort(e.touchIDs)
	touches := make([]Vec2, 0, len(e.touchIDs))
	moved := false
	for _, id := range e.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		p := Vec2{X: float64(tx), Y: float64(ty)}
		touches = append(touches, p)
		if last, ok := e.lastTouch[id]; ok && last != p {
			moved = true
		}
	}

	// Releases first so a lift-and-land in one tick ends the old gesture.
	e.justIDs = inpututil.AppendJustReleasedTouchIDs(e.justIDs[:0])
	for _, id := range e.justIDs {
		tx, ty := inpututil.TouchPositionInPreviousTick(id)
		delete(e.lastTouch, id)
		s.HandleInput(InputEvent{Kind: InputTouchEnd, X: float64(tx), Y: float64(ty), Touches: touches, Modifiers: mods})
	}

	e.justIDs = inpututil.AppendJustPressedTouchIDs(e.justIDs[:0])
	for _, id := range e.justIDs {
		tx, ty := ebiten.TouchPosition(id)
		e.lastTouch[id] = Vec2{X: float64(tx), Y: float64(ty)}
		s.HandleInput(InputEvent{Kind: InputTouchStart, X: float64(tx), Y: float64(ty), Touches: touches, Modifiers: mods})
	}

	if moved {
		s.HandleInput(InputEvent{Kind: InputTouchMove, Touches: touches, Modifiers: mods})
	}
	for i, id := range e.touchIDs {
		e.lastTouch[id] = touches[i]
	}
}

// translateKey maps an Ebitengine key to a router KeyEvent.
func translateKey(k ebiten.Key, mods KeyModifiers) (KeyEvent, bool) {
	switch k {
	case ebiten.KeyArrowLeft:
		return KeyEvent{Key: KeyArrowLeft, Modifiers: mods}, true
	case ebiten.KeyArrowRight:
		return KeyEvent{Key: KeyArrowRight, Modifiers: mods}, true
	case ebiten.KeyHome:
		return KeyEvent{Key: KeyHome, Modifiers: mods}, true
	case ebiten.KeyEnd:
		return KeyEvent{Key: KeyEnd, Modifiers: mods}, true
	case ebiten.KeyEscape:
		return KeyEvent{Key: KeyEscape, Modifiers: mods}, true
	}

	var r rune
	switch k {
	case ebiten.KeyI:
		r = 'i'
	case ebiten.KeyB:
		r = 'b'
	case ebiten.KeyT:
		r = 't'
	case ebiten.KeyEqual, ebiten.KeyNumpadAdd:
		r = '+'
	case ebiten.KeyMinus, ebiten.KeyNumpadSubtract:
		r = '-'
	case ebiten.KeyDigit0, ebiten.KeyNumpad0:
		r = '0'
	default:
		return KeyEvent{}, false
	}
	if mods&ModShift != 0 && r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	return KeyEvent{Key: KeyCharacter, Rune: r, Modifiers: mods}, true
}
