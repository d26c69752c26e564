package folio

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

// fakeBook is a ContentProvider with n markup pages.
type fakeBook struct {
	pages int
	fail  bool
}

func (b fakeBook) PageCount() int { return b.pages }

func (b fakeBook) Page(n int) (Payload, error) {
	if b.fail {
		return Payload{}, errors.New("backend down")
	}
	if n < 1 || n > b.pages {
		return Payload{}, fmt.Errorf("page %d out of range", n)
	}
	return Payload{Kind: PayloadMarkup, Markup: fmt.Sprintf("<p>page %d</p>", n)}, nil
}

// recordingTracker captures tracked events and can fail or panic on demand.
type recordingTracker struct {
	views     []PageView
	bookmarks []BookmarkEvent
	err       error
	panicky   bool
}

func (r *recordingTracker) TrackPageView(v PageView) error {
	if r.panicky {
		panic("tracker exploded")
	}
	r.views = append(r.views, v)
	return r.err
}

func (r *recordingTracker) TrackBookmark(e BookmarkEvent) error {
	if r.panicky {
		panic("tracker exploded")
	}
	r.bookmarks = append(r.bookmarks, e)
	return r.err
}

// recordingOutput counts scheduled voices instead of playing them.
type recordingOutput struct {
	delays []int
	closed bool
}

func (o *recordingOutput) Schedule(v Voice, delay int) {
	o.delays = append(o.delays, delay)
}

func (o *recordingOutput) Close() error {
	o.closed = true
	return nil
}

// audioRecorder hands out one recordingOutput and counts opens.
type audioRecorder struct {
	out   recordingOutput
	opens int
	err   error
}

func (a *audioRecorder) open(sampleRate int) (AudioOutput, error) {
	a.opens++
	if a.err != nil {
		return nil, a.err
	}
	return &a.out, nil
}

// newTestSession opens a session over a fakeBook with recorded audio.
func newTestSession(t *testing.T, pages int, opts ...SessionOption) (*Session, *audioRecorder) {
	t.Helper()
	rec := &audioRecorder{}
	opts = append([]SessionOption{WithAudioOpener(rec.open)}, opts...)
	s, err := NewSession(Document{Title: "test", Content: fakeBook{pages: pages}}, DefaultConfig(), opts...)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s, rec
}

// settle advances the session past any in-flight turn.
func settle(s *Session) {
	s.Update(400 * time.Millisecond)
}

// stepTo advances the session clock to exactly at.
func stepTo(s *Session, at time.Duration) {
	s.Update(at - s.sched.Now())
}
