package folio

// navigation is what the keyboard router drives.
type navigation interface {
	GoToNext() bool
	GoToPrevious() bool
	GoToPage(page int) bool
	ToggleBookmark(page int) bool
	CurrentPage() int
	TotalPages() int
}

// overlays is the stack of dismissable views above the page.
type overlays interface {
	TOCOpen() bool
	ToggleTOC()
	CloseTOC()
	InteractiveMode() bool
	SetInteractiveMode(on bool)
	Close()
}

// zoomer is the part of the viewport reachable from the keyboard.
type zoomer interface {
	ZoomIn()
	ZoomOut()
	ResetZoom()
}

// KeyRouter maps key-downs to navigation, zoom, and overlay commands.
type KeyRouter struct {
	nav        navigation
	overlays   overlays
	zoom       zoomer
	activity   activityRecorder
	multimedia bool
}

func newKeyRouter(nav navigation, ov overlays, z zoomer, a activityRecorder, multimedia bool) *KeyRouter {
	return &KeyRouter{nav: nav, overlays: ov, zoom: z, activity: a, multimedia: multimedia}
}

// HandleKey runs the binding for ev and reports whether one matched.
// Every key-down counts as activity, bound or not.
func (r *KeyRouter) HandleKey(ev KeyEvent) bool {
	r.activity.RecordActivity()

	switch ev.Key {
	case KeyArrowLeft:
		r.nav.GoToPrevious()
	case KeyArrowRight:
		r.nav.GoToNext()
	case KeyHome:
		r.nav.GoToPage(1)
	case KeyEnd:
		r.nav.GoToPage(r.nav.TotalPages())
	case KeyEscape:
		r.escape()
	case KeyCharacter:
		return r.character(ev.Rune)
	default:
		return false
	}
	return true
}

// escape closes exactly one overlay: the table of contents, then interactive
// mode, then the viewer itself.
func (r *KeyRouter) escape() {
	switch {
	case r.overlays.TOCOpen():
		r.overlays.CloseTOC()
	case r.overlays.InteractiveMode():
		r.overlays.SetInteractiveMode(false)
	default:
		r.overlays.Close()
	}
}

func (r *KeyRouter) character(c rune) bool {
	switch c {
	case 'i', 'I':
		if !r.multimedia {
			return false
		}
		r.overlays.SetInteractiveMode(!r.overlays.InteractiveMode())
	case '+', '=':
		r.zoom.ZoomIn()
	case '-':
		r.zoom.ZoomOut()
	case '0':
		r.zoom.ResetZoom()
	case 'b', 'B':
		r.nav.ToggleBookmark(r.nav.CurrentPage())
	case 't', 'T':
		r.overlays.ToggleTOC()
	default:
		return false
	}
	return true
}
