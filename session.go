package folio

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNilContent is returned when a Document has no ContentProvider.
	ErrNilContent = errors.New("folio: document has no content provider")
	// ErrNoPages is returned when the content provider reports no pages.
	ErrNoPages = errors.New("folio: document has no pages")
)

// Snapshot is an immutable copy of everything a rendering surface needs to
// draw one frame.
type Snapshot struct {
	SessionID string
	Title     string

	CurrentPage int
	TotalPages  int
	Transition  TransitionState
	// FlipProgress runs from 0 to 1 across a page turn and is 0 when idle.
	FlipProgress float64

	Zoom     float64
	Rotation float64
	Pan      Vec2

	ControlsVisible bool
	ControlsAlpha   float64

	Bookmarks       []int
	TOCOpen         bool
	InteractiveMode bool
	Open            bool

	Elapsed time.Duration
}

// Session is one open document: page index, bookmarks, viewport, gesture and
// keyboard handling, chrome visibility, and page-turn audio. It is not safe
// for concurrent use; drive it from a single loop via Update and the Handle
// methods.
type Session struct {
	id  uuid.UUID
	doc Document
	cfg Config

	sched    *scheduler
	viewport *Viewport
	turner   *pageTurner
	nav      *Navigator
	gestures *GestureProcessor
	controls *ControlsTimer
	keys     *KeyRouter
	synth    *Synth
	tracker  Tracker

	tocOpen     bool
	interactive bool
	closed      bool

	pageEnteredAt time.Duration

	handlers    handlerRegistry
	input       InputSource
	injectQueue []syntheticInput
	runner      *ScriptRunner

	debug  bool
	logger func(format string, args ...any)
}

// SessionOption customises a Session at open.
type SessionOption func(*Session)

// WithTracker reports page views and bookmark toggles to t.
func WithTracker(t Tracker) SessionOption {
	return func(s *Session) { s.tracker = t }
}

// WithAudioOpener replaces the default audio output. A nil opener disables sound.
func WithAudioOpener(open AudioOpener) SessionOption {
	return func(s *Session) { s.synth.open = open }
}

// WithInputSource polls src for host input on every Update.
func WithInputSource(src InputSource) SessionOption {
	return func(s *Session) { s.input = src }
}

// NewSession opens doc. The page count is read once and fixed for the
// session's lifetime. The viewer opens on page 1 with controls visible.
func NewSession(doc Document, cfg Config, opts ...SessionOption) (*Session, error) {
	if doc.Content == nil {
		return nil, ErrNilContent
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("folio: invalid config: %w", err)
	}
	total := doc.Content.PageCount()
	if total < 1 {
		return nil, ErrNoPages
	}

	s := &Session{
		id:    uuid.New(),
		doc:   doc,
		cfg:   cfg,
		sched: &scheduler{},
	}
	s.viewport = newViewport(cfg)
	s.turner = newPageTurner(total, s.sched, cfg)
	s.nav = newNavigator(s.turner)
	s.controls = newControlsTimer(s.sched, cfg)
	s.gestures = newGestureProcessor(s.viewport, s.nav, s.controls, cfg)
	s.keys = newKeyRouter(s.nav, s, s.viewport, s.controls, doc.Multimedia)

	var open AudioOpener
	if cfg.Sound {
		open = OpenDefaultAudio
	}
	s.synth = newSynth(cfg.SampleRate, open, s.debugf)

	s.viewport.onChange = s.notify
	s.turner.onChange = s.notify
	s.turner.sound = s.synth.PageTurn
	s.turner.onBegin = s.pageLeft
	s.turner.onSwap = func() { s.pageEnteredAt = s.sched.Now() }
	s.nav.onChange = s.notify
	s.nav.onBookmark = s.bookmarkToggled
	s.controls.onChange = s.notify

	for _, opt := range opts {
		opt(s)
	}

	s.controls.RecordActivity()
	s.debugf("opened %q (%d pages) as %s", doc.Title, total, s.id)
	return s, nil
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id.String() }

// Config returns the tunables the session was opened with.
func (s *Session) Config() Config { return s.cfg }

// Navigator returns the page navigation façade.
func (s *Session) Navigator() *Navigator { return s.nav }

// Viewport returns the zoom/rotation/pan state.
func (s *Session) Viewport() *Viewport { return s.viewport }

// Controls returns the chrome visibility timer.
func (s *Session) Controls() *ControlsTimer { return s.controls }

// Gestures returns the gesture processor.
func (s *Session) Gestures() *GestureProcessor { return s.gestures }

// Chapters returns the table of contents, or nil if the document has none.
func (s *Session) Chapters() []Chapter {
	if s.doc.TOC == nil {
		return nil
	}
	return s.doc.TOC.Chapters()
}

// CurrentPayload asks the content provider for the current page.
func (s *Session) CurrentPayload() (Payload, error) {
	p, err := s.doc.Content.Page(s.nav.CurrentPage())
	if err != nil {
		return Payload{}, fmt.Errorf("load page %d: %w", s.nav.CurrentPage(), err)
	}
	return p, nil
}

// Closed reports whether the viewer has been closed.
func (s *Session) Closed() bool { return s.closed }

// Update advances the session by dt: script steps, one injected event or a
// host poll, animations, and any deferred callbacks that fall due.
func (s *Session) Update(dt time.Duration) {
	if s.closed {
		return
	}
	if s.runner != nil {
		s.runner.step(s, dt)
	}
	if !s.processInjectedInput() && s.input != nil {
		s.input.Poll(s)
	}
	if s.closed {
		return
	}
	s.turner.update(dt)
	s.controls.update(dt)
	s.sched.Advance(dt)
}

// HandleInput feeds one pointer, touch, or wheel event to the gesture processor.
func (s *Session) HandleInput(ev InputEvent) {
	if s.closed {
		return
	}
	s.gestures.Handle(ev)
}

// HandleKey feeds one key-down to the keyboard router and reports whether a
// binding matched.
func (s *Session) HandleKey(ev KeyEvent) bool {
	if s.closed {
		return false
	}
	return s.keys.HandleKey(ev)
}

// --- Overlays ---

// TOCOpen reports whether the table of contents overlay is shown.
func (s *Session) TOCOpen() bool { return s.tocOpen }

// ToggleTOC shows or hides the table of contents.
func (s *Session) ToggleTOC() {
	if s.closed {
		return
	}
	s.tocOpen = !s.tocOpen
	s.notify()
}

// CloseTOC hides the table of contents.
func (s *Session) CloseTOC() {
	if s.closed || !s.tocOpen {
		return
	}
	s.tocOpen = false
	s.notify()
}

// InteractiveMode reports whether interactive mode is on.
func (s *Session) InteractiveMode() bool { return s.interactive }

// SetInteractiveMode turns interactive mode on or off. Only multimedia
// documents can turn it on.
func (s *Session) SetInteractiveMode(on bool) {
	if s.closed || (on && !s.doc.Multimedia) || on == s.interactive {
		return
	}
	s.interactive = on
	s.notify()
}

// Close tears the session down: pending timers are cancelled, the audio
// output is released, close callbacks fire, and every later call is a no-op.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.sched.CancelAll()
	s.turner.abort()
	if err := s.synth.Close(); err != nil {
		s.debugf("%v", err)
	}
	s.notify()
	for _, h := range s.handlers.close {
		h.fn()
	}
	s.debugf("closed %s", s.id)
}

// Snapshot returns the current state for rendering.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		SessionID:       s.id.String(),
		Title:           s.doc.Title,
		CurrentPage:     s.nav.CurrentPage(),
		TotalPages:      s.nav.TotalPages(),
		Transition:      s.nav.Transition(),
		FlipProgress:    s.turner.flipProgress,
		Zoom:            s.viewport.Zoom(),
		Rotation:        s.viewport.Rotation(),
		Pan:             s.viewport.Pan(),
		ControlsVisible: s.controls.Visible(),
		ControlsAlpha:   s.controls.Alpha(),
		Bookmarks:       s.nav.Bookmarks(),
		TOCOpen:         s.tocOpen,
		InteractiveMode: s.interactive,
		Open:            !s.closed,
		Elapsed:         s.sched.Now(),
	}
}

func (s *Session) notify() {
	if len(s.handlers.change) == 0 {
		return
	}
	snap := s.Snapshot()
	for _, h := range s.handlers.change {
		h.fn(snap)
	}
}

// --- Tracking ---

func (s *Session) pageLeft(from int) {
	dwell := (s.sched.Now() - s.pageEnteredAt).Milliseconds()
	s.track("page view", func(t Tracker) error {
		return t.TrackPageView(PageView{Page: from, DwellMillis: dwell})
	})
}

func (s *Session) bookmarkToggled(ev BookmarkEvent) {
	s.track("bookmark", func(t Tracker) error {
		return t.TrackBookmark(ev)
	})
}

// track delivers one event to the tracker. Failures never reach the caller.
func (s *Session) track(what string, send func(Tracker) error) {
	if s.tracker == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			s.debugf("tracker panic on %s: %v", what, r)
		}
	}()
	if err := send(s.tracker); err != nil {
		s.debugf("tracker %s: %v", what, err)
	}
}
