package folio

// Vec2 is a 2D vector used for pointer positions and pan offsets.
type Vec2 struct {
	X, Y float64
}

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// zoomModifier reports whether the modifiers turn a wheel event into a zoom step.
func (m KeyModifiers) zoomModifier() bool {
	return m&(ModCtrl|ModMeta) != 0
}

// Direction is the direction of a page turn.
type Direction uint8

const (
	DirectionNext Direction = iota // towards higher page numbers
	DirectionPrev                  // towards lower page numbers
)

func (d Direction) String() string {
	if d == DirectionPrev {
		return "prev"
	}
	return "next"
}

// TransitionState is either idle (Turning false) or an in-flight page turn
// towards Target.
type TransitionState struct {
	Turning   bool
	Direction Direction
	Target    int
}

// PayloadKind discriminates how a page payload should be rendered.
type PayloadKind uint8

const (
	PayloadImage  PayloadKind = iota // Ref is an image reference
	PayloadMarkup                    // Markup holds inline markup
	PayloadFrame                     // Ref is an embedded-frame reference
)

func (k PayloadKind) String() string {
	switch k {
	case PayloadMarkup:
		return "markup"
	case PayloadFrame:
		return "frame"
	default:
		return "image"
	}
}

// Payload is the renderable content of one page. The engine only looks at Kind.
type Payload struct {
	Kind   PayloadKind
	Ref    string
	Markup string
}

// ContentProvider supplies page payloads and the page count fixed at open.
type ContentProvider interface {
	PageCount() int
	Page(n int) (Payload, error)
}

// Topic is a titled entry inside a chapter.
type Topic struct {
	Title string
	Page  int
}

// Chapter is one table-of-contents entry.
type Chapter struct {
	Label     string
	Title     string
	StartPage int
	Topics    []Topic
}

// TOCProvider supplies the ordered table of contents. The engine never mutates it.
type TOCProvider interface {
	Chapters() []Chapter
}

// PageView is reported when a transition leaves Page after DwellMillis on it.
type PageView struct {
	Page        int
	DwellMillis int64
}

// BookmarkAction says whether a bookmark toggle added or removed a page.
type BookmarkAction uint8

const (
	BookmarkAdded BookmarkAction = iota
	BookmarkRemoved
)

func (a BookmarkAction) String() string {
	if a == BookmarkRemoved {
		return "removed"
	}
	return "added"
}

// BookmarkEvent is reported whenever a bookmark is toggled.
type BookmarkEvent struct {
	Action BookmarkAction
	Page   int
}

// Tracker receives best-effort analytics. Errors and panics are logged and
// otherwise ignored; they never affect navigation.
type Tracker interface {
	TrackPageView(PageView) error
	TrackBookmark(BookmarkEvent) error
}

// Document describes what a Session opens.
type Document struct {
	Title   string
	Content ContentProvider
	// TOC is optional.
	TOC TOCProvider
	// Multimedia enables the interactive-mode toggle.
	Multimedia bool
}
