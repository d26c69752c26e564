package folio

import (
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf8"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action   string  `json:"action"`
	Label    string  `json:"label,omitempty"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	FromX    float64 `json:"fromX,omitempty"`
	FromY    float64 `json:"fromY,omitempty"`
	ToX      float64 `json:"toX,omitempty"`
	ToY      float64 `json:"toY,omitempty"`
	FromDist float64 `json:"fromDist,omitempty"`
	ToDist   float64 `json:"toDist,omitempty"`
	DeltaY   float64 `json:"deltaY,omitempty"`
	Ctrl     bool    `json:"ctrl,omitempty"`
	Key      string  `json:"key,omitempty"`
	Page     int     `json:"page,omitempty"`
	Frames   int     `json:"frames,omitempty"`
	Millis   int     `json:"ms,omitempty"`
}

// inputScript is the top-level JSON structure for an input script.
type inputScript struct {
	Steps []scriptStep `json:"steps"`
}

// LabeledSnapshot is a snapshot captured by a "snapshot" script step.
type LabeledSnapshot struct {
	Label string
	Snapshot
}

// ScriptRunner sequences injected input, waits, and snapshots across frames.
// Attach to a Session via SetScriptRunner.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitLeft  time.Duration
	done      bool
	snapshots []LabeledSnapshot
}

// LoadScript parses a JSON input script and returns a ScriptRunner ready to
// be attached to a Session.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script inputScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	for i, st := range script.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("parse input script: step %d: %w", i, err)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

func (st scriptStep) validate() error {
	switch st.Action {
	case "tap", "swipe", "pinch", "wheel", "snapshot", "goto", "bookmark", "wait":
		return nil
	case "key":
		_, err := ParseKey(st.Key)
		return err
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
}

// SetScriptRunner attaches a runner. Its steps run from Session.Update,
// before injected input is consumed.
func (s *Session) SetScriptRunner(r *ScriptRunner) {
	s.runner = r
}

// Done reports whether every step has run and all injected input drained.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Snapshots returns the snapshots captured so far.
func (r *ScriptRunner) Snapshots() []LabeledSnapshot {
	return r.snapshots
}

// step advances the runner by one frame of length dt.
func (r *ScriptRunner) step(s *Session, dt time.Duration) {
	if r.done {
		return
	}
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitLeft > 0 {
		r.waitLeft -= dt
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "snapshot":
		r.snapshots = append(r.snapshots, LabeledSnapshot{Label: st.Label, Snapshot: s.Snapshot()})
	case "tap":
		s.InjectTap(st.X, st.Y)
	case "swipe":
		s.InjectSwipe(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "pinch":
		s.InjectPinch(st.X, st.Y, st.FromDist, st.ToDist, st.Frames)
	case "wheel":
		var mods KeyModifiers
		if st.Ctrl {
			mods = ModCtrl
		}
		s.InjectWheel(st.DeltaY, mods)
	case "key":
		if ev, err := ParseKey(st.Key); err == nil {
			s.InjectKey(ev)
		}
	case "goto":
		s.nav.GoToPage(st.Page)
	case "bookmark":
		page := st.Page
		if page == 0 {
			page = s.nav.CurrentPage()
		}
		s.nav.ToggleBookmark(page)
	case "wait":
		r.waitLeft = millis(st.Millis) - dt
	}

	if r.cursor >= len(r.steps) && r.waitLeft <= 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}

// ParseKey converts a key name (ArrowLeft, ArrowRight, Home, End, Escape, or
// a single character) to a KeyEvent.
func ParseKey(name string) (KeyEvent, error) {
	switch name {
	case "ArrowLeft", "Left":
		return KeyEvent{Key: KeyArrowLeft}, nil
	case "ArrowRight", "Right":
		return KeyEvent{Key: KeyArrowRight}, nil
	case "Home":
		return KeyEvent{Key: KeyHome}, nil
	case "End":
		return KeyEvent{Key: KeyEnd}, nil
	case "Escape", "Esc":
		return KeyEvent{Key: KeyEscape}, nil
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return KeyEvent{Key: KeyCharacter, Rune: r}, nil
	}
	return KeyEvent{}, fmt.Errorf("unknown key %q", name)
}
