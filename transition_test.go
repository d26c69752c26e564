package folio

import (
	"math"
	"testing"
	"time"
)

func TestTransitionTiming(t *testing.T) {
	s, _ := newTestSession(t, 10)
	nav := s.Navigator()
	nav.GoToPage(3)
	settle(s)
	if nav.CurrentPage() != 3 {
		t.Fatalf("CurrentPage = %d, want 3", nav.CurrentPage())
	}

	start := s.sched.Now()
	if !nav.GoToNext() {
		t.Fatal("GoToNext rejected while idle")
	}
	want := TransitionState{Turning: true, Direction: DirectionNext, Target: 4}
	if got := nav.Transition(); got != want {
		t.Errorf("Transition = %+v, want %+v", got, want)
	}
	if nav.CurrentPage() != 3 {
		t.Errorf("CurrentPage = %d at t=0, want 3", nav.CurrentPage())
	}

	stepTo(s, start+174*time.Millisecond)
	if nav.CurrentPage() != 3 {
		t.Errorf("CurrentPage = %d at 174ms, want 3", nav.CurrentPage())
	}

	stepTo(s, start+175*time.Millisecond)
	if nav.CurrentPage() != 4 {
		t.Errorf("CurrentPage = %d at 175ms, want 4", nav.CurrentPage())
	}
	if !nav.Turning() {
		t.Error("turn ended early at 175ms")
	}

	stepTo(s, start+349*time.Millisecond)
	if !nav.Turning() {
		t.Error("turn ended early at 349ms")
	}

	stepTo(s, start+350*time.Millisecond)
	if nav.Turning() {
		t.Errorf("Transition = %+v at 350ms, want idle", nav.Transition())
	}
	if nav.CurrentPage() != 4 {
		t.Errorf("CurrentPage = %d, want 4", nav.CurrentPage())
	}
}

func TestTransitionPreviousDirection(t *testing.T) {
	s, _ := newTestSession(t, 5)
	nav := s.Navigator()
	nav.GoToPage(5)
	settle(s)
	nav.GoToPrevious()
	if got := nav.Transition(); got.Direction != DirectionPrev || got.Target != 4 {
		t.Errorf("Transition = %+v, want prev to 4", got)
	}
}

func TestTransitionRejectsWhileTurning(t *testing.T) {
	s, rec := newTestSession(t, 10)
	nav := s.Navigator()
	if !nav.GoToNext() {
		t.Fatal("first GoToNext rejected")
	}
	s.Update(50 * time.Millisecond)
	if nav.GoToNext() {
		t.Error("second GoToNext accepted mid-turn")
	}
	if nav.GoToPage(7) {
		t.Error("GoToPage accepted mid-turn")
	}
	settle(s)
	if nav.CurrentPage() != 2 {
		t.Errorf("CurrentPage = %d, want 2 (dropped, not queued)", nav.CurrentPage())
	}
	if len(rec.out.delays) != len(pageTurnLayers) {
		t.Errorf("scheduled %d voices, want one turn's worth (%d)", len(rec.out.delays), len(pageTurnLayers))
	}
}

func TestTransitionNoOpRequests(t *testing.T) {
	tests := []struct {
		name   string
		target int
	}{
		{"current page", 1},
		{"zero", 0},
		{"negative", -3},
		{"past end", 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, rec := newTestSession(t, 5)
			changes := 0
			s.OnChange(func(Snapshot) { changes++ })
			if s.Navigator().GoToPage(tt.target) {
				t.Errorf("GoToPage(%d) accepted", tt.target)
			}
			if s.Navigator().Turning() {
				t.Error("rejected request started a turn")
			}
			if changes != 0 {
				t.Errorf("rejected request fired %d change callbacks", changes)
			}
			if rec.opens != 0 {
				t.Error("rejected request played a sound")
			}
		})
	}
}

func TestTransitionFlipProgress(t *testing.T) {
	s, _ := newTestSession(t, 3)
	s.Navigator().GoToNext()
	if p := s.Snapshot().FlipProgress; p != 0 {
		t.Errorf("FlipProgress = %v at start, want 0", p)
	}
	s.Update(175 * time.Millisecond)
	if p := s.Snapshot().FlipProgress; math.Abs(p-0.5) > 0.01 {
		t.Errorf("FlipProgress = %v at half time, want ~0.5", p)
	}
	s.Update(175 * time.Millisecond)
	if p := s.Snapshot().FlipProgress; p != 0 {
		t.Errorf("FlipProgress = %v after turn, want 0", p)
	}
}

func TestTransitionChangeNotifications(t *testing.T) {
	s, _ := newTestSession(t, 3)
	var snaps []Snapshot
	s.OnChange(func(snap Snapshot) { snaps = append(snaps, snap) })
	s.Navigator().GoToNext()
	settle(s)

	var phases []TransitionState
	var pages []int
	for _, snap := range snaps {
		phases = append(phases, snap.Transition)
		pages = append(pages, snap.CurrentPage)
	}
	if len(snaps) < 3 {
		t.Fatalf("got %d snapshots, want begin, swap and end", len(snaps))
	}
	if !phases[0].Turning || pages[0] != 1 {
		t.Errorf("first snapshot = %+v page %d, want turning on page 1", phases[0], pages[0])
	}
	last := snaps[len(snaps)-1]
	if last.Transition.Turning || last.CurrentPage != 2 {
		t.Errorf("last snapshot = %+v page %d, want idle on page 2", last.Transition, last.CurrentPage)
	}
}
