// Package folio is the interaction core of a paged document viewer.
//
// Folio turns a sequence of pages into a navigable reading surface: a bounded
// page index with animated two-phase page turns, zoom/rotation/pan, touch and
// mouse gestures (pan, pinch, swipe, wheel zoom), keyboard shortcuts,
// auto-hiding chrome, and a procedurally synthesized page-turn sound. It does
// not render anything itself; a rendering surface reads [Snapshot]s.
//
// # Quick start
//
//	book, _ := content.NewMarkdownBook(src)
//	s, err := folio.NewSession(folio.Document{
//		Title:   "Handbook",
//		Content: book,
//		TOC:     book,
//	}, folio.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	defer s.Close()
//
// Drive the session from your game loop, feeding it input and elapsed time:
//
//	func (g *Game) Update() error {
//		g.input.Poll(g.session) // or folio.WithInputSource at open
//		g.session.Update(time.Second / time.Duration(ebiten.TPS()))
//		return nil
//	}
//
// # Timing
//
// Everything runs on the caller's goroutine. Deferred work (the page swap
// 175 ms into a turn, the end of the turn at 350 ms, hiding the controls
// after 3 s of inactivity) is scheduled on a virtual clock that only moves
// when [Session.Update] is called. Tests advance it explicitly.
//
// # Navigation
//
// All page changes go through the [Navigator]. At most one turn is in flight;
// requests made while turning are dropped rather than queued, and out-of-range
// requests are ignored, so the current page is always valid.
//
// # Sound
//
// Each turn schedules three overlapping sawtooth layers with falling pitch,
// high-passed and enveloped to sound like paper. Output goes through
// [Ebitengine oto] unless built with the headless tag. Audio failures are
// logged in debug mode and otherwise ignored.
//
// [Ebitengine oto]: https://github.com/ebitengine/oto
package folio
