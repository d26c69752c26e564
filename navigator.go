package folio

import "slices"

// Navigator is the single entry point for changing pages and bookmarks.
// Moves are bounded and rejected, never queued, while a turn is in flight.
type Navigator struct {
	turner    *pageTurner
	bookmarks map[int]struct{}

	onBookmark func(BookmarkEvent)
	onChange   func()
}

func newNavigator(turner *pageTurner) *Navigator {
	return &Navigator{
		turner:    turner,
		bookmarks: make(map[int]struct{}),
	}
}

// CurrentPage returns the 1-based page index.
func (n *Navigator) CurrentPage() int { return n.turner.current }

// TotalPages returns the page count fixed at open.
func (n *Navigator) TotalPages() int { return n.turner.total }

// Transition returns the current transition state.
func (n *Navigator) Transition() TransitionState { return n.turner.state }

// Turning reports whether a page turn is in flight.
func (n *Navigator) Turning() bool { return n.turner.state.Turning }

// GoToNext turns forward one page. It reports whether a turn started.
func (n *Navigator) GoToNext() bool {
	return n.turner.Request(n.turner.current + 1)
}

// GoToPrevious turns back one page. It reports whether a turn started.
func (n *Navigator) GoToPrevious() bool {
	return n.turner.Request(n.turner.current - 1)
}

// GoToPage turns directly to page. Out-of-range pages, the current page, and
// requests during a turn are ignored.
func (n *Navigator) GoToPage(page int) bool {
	return n.turner.Request(page)
}

// JumpToChapter turns to a chapter's start page.
func (n *Navigator) JumpToChapter(startPage int) bool {
	return n.GoToPage(startPage)
}

// ToggleBookmark adds page to the bookmarks if absent, removes it otherwise,
// and reports whether it is now bookmarked. It works during turns too. Pages
// outside [1, TotalPages] are ignored and report false.
func (n *Navigator) ToggleBookmark(page int) bool {
	if page < 1 || page > n.turner.total {
		return false
	}
	ev := BookmarkEvent{Action: BookmarkAdded, Page: page}
	if _, ok := n.bookmarks[page]; ok {
		delete(n.bookmarks, page)
		ev.Action = BookmarkRemoved
	} else {
		n.bookmarks[page] = struct{}{}
	}
	if n.onBookmark != nil {
		n.onBookmark(ev)
	}
	if n.onChange != nil {
		n.onChange()
	}
	return ev.Action == BookmarkAdded
}

// IsBookmarked reports whether page is bookmarked.
func (n *Navigator) IsBookmarked(page int) bool {
	_, ok := n.bookmarks[page]
	return ok
}

// Bookmarks returns the bookmarked pages in ascending order.
func (n *Navigator) Bookmarks() []int {
	pages := make([]int, 0, len(n.bookmarks))
	for p := range n.bookmarks {
		pages = append(pages, p)
	}
	slices.Sort(pages)
	return pages
}
