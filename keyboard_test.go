package folio

import (
	"testing"
)

func TestKeyNavigation(t *testing.T) {
	tests := []struct {
		name  string
		start int
		key   KeyEvent
		want  int
	}{
		{"right", 3, KeyEvent{Key: KeyArrowRight}, 4},
		{"left", 3, KeyEvent{Key: KeyArrowLeft}, 2},
		{"home", 3, KeyEvent{Key: KeyHome}, 1},
		{"end", 3, KeyEvent{Key: KeyEnd}, 8},
		{"left on first page", 1, KeyEvent{Key: KeyArrowLeft}, 1},
		{"right on last page", 8, KeyEvent{Key: KeyArrowRight}, 8},
		{"home on first page", 1, KeyEvent{Key: KeyHome}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSession(t, 8)
			s.Navigator().GoToPage(tt.start)
			settle(s)
			s.HandleKey(tt.key)
			settle(s)
			if got := s.Navigator().CurrentPage(); got != tt.want {
				t.Errorf("CurrentPage = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestKeyZoomBindings(t *testing.T) {
	s, _ := newTestSession(t, 2)
	for _, r := range "++=" {
		s.HandleKey(KeyEvent{Key: KeyCharacter, Rune: r})
	}
	if z := s.Viewport().Zoom(); z != 175 {
		t.Errorf("Zoom = %v, want 175", z)
	}
	s.HandleKey(KeyEvent{Key: KeyCharacter, Rune: '-'})
	if z := s.Viewport().Zoom(); z != 150 {
		t.Errorf("Zoom = %v, want 150", z)
	}
	s.HandleKey(KeyEvent{Key: KeyCharacter, Rune: '0'})
	if z := s.Viewport().Zoom(); z != 100 {
		t.Errorf("Zoom = %v, want 100", z)
	}
}

func TestKeyBookmarkAndTOC(t *testing.T) {
	s, _ := newTestSession(t, 4)
	s.HandleKey(KeyEvent{Key: KeyCharacter, Rune: 'b'})
	if !s.Navigator().IsBookmarked(1) {
		t.Error("b did not bookmark the current page")
	}
	s.HandleKey(KeyEvent{Key: KeyCharacter, Rune: 'B'})
	if s.Navigator().IsBookmarked(1) {
		t.Error("B did not toggle the bookmark off")
	}
	s.HandleKey(KeyEvent{Key: KeyCharacter, Rune: 't'})
	if !s.TOCOpen() {
		t.Error("t did not open the table of contents")
	}
}

func TestKeyInteractiveModeNeedsMultimedia(t *testing.T) {
	s, _ := newTestSession(t, 2)
	if s.HandleKey(KeyEvent{Key: KeyCharacter, Rune: 'i'}) {
		t.Error("i matched on a non-multimedia document")
	}
	if s.InteractiveMode() {
		t.Error("interactive mode on for a non-multimedia document")
	}

	mm, err := NewSession(Document{Content: fakeBook{pages: 2}, Multimedia: true}, DefaultConfig(), WithAudioOpener(nil))
	if err != nil {
		t.Fatal(err)
	}
	mm.HandleKey(KeyEvent{Key: KeyCharacter, Rune: 'I'})
	if !mm.InteractiveMode() {
		t.Error("I did not enable interactive mode")
	}
	mm.HandleKey(KeyEvent{Key: KeyCharacter, Rune: 'i'})
	if mm.InteractiveMode() {
		t.Error("i did not disable interactive mode")
	}
}

func TestKeyEscapePriority(t *testing.T) {
	s, err := NewSession(Document{Content: fakeBook{pages: 2}, Multimedia: true}, DefaultConfig(), WithAudioOpener(nil))
	if err != nil {
		t.Fatal(err)
	}
	s.ToggleTOC()
	s.SetInteractiveMode(true)
	esc := KeyEvent{Key: KeyEscape}

	s.HandleKey(esc)
	if s.TOCOpen() || !s.InteractiveMode() || s.Closed() {
		t.Fatalf("first Escape: toc=%v interactive=%v closed=%v, want only toc closed",
			s.TOCOpen(), s.InteractiveMode(), s.Closed())
	}
	s.HandleKey(esc)
	if s.InteractiveMode() || s.Closed() {
		t.Fatalf("second Escape: interactive=%v closed=%v, want only interactive off",
			s.InteractiveMode(), s.Closed())
	}
	s.HandleKey(esc)
	if !s.Closed() {
		t.Error("third Escape did not close the viewer")
	}
}

func TestKeyUnbound(t *testing.T) {
	s, _ := newTestSession(t, 2)
	for _, ev := range []KeyEvent{
		{Key: KeyUnknown},
		{Key: KeyCharacter, Rune: 'q'},
	} {
		if s.HandleKey(ev) {
			t.Errorf("HandleKey(%+v) matched", ev)
		}
	}
	if s.Navigator().CurrentPage() != 1 || s.Viewport().Zoom() != 100 {
		t.Error("unbound key changed state")
	}
}
