// Package ecs provides ECS adapters for folio.
package ecs

import (
	"github.com/phanxgames/folio"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// PageViewEventType is the Donburi event type for page views. One is
// published each time a page turn leaves a page.
var PageViewEventType = events.NewEventType[folio.PageView]()

// BookmarkEventType is the Donburi event type for bookmark toggles.
var BookmarkEventType = events.NewEventType[folio.BookmarkEvent]()

// SnapshotEventType carries session snapshots published by PublishChanges.
var SnapshotEventType = events.NewEventType[folio.Snapshot]()

type donburiTracker struct {
	world donburi.World
}

// NewDonburiTracker creates a Tracker backed by a Donburi world. Events are
// queued on PageViewEventType and BookmarkEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiTracker(world donburi.World) folio.Tracker {
	return &donburiTracker{world: world}
}

func (t *donburiTracker) TrackPageView(v folio.PageView) error {
	PageViewEventType.Publish(t.world, v)
	return nil
}

func (t *donburiTracker) TrackBookmark(e folio.BookmarkEvent) error {
	BookmarkEventType.Publish(t.world, e)
	return nil
}

// PublishChanges queues every snapshot s reports on SnapshotEventType.
// Remove the returned handle to stop.
func PublishChanges(world donburi.World, s *folio.Session) folio.CallbackHandle {
	return s.OnChange(func(snap folio.Snapshot) {
		SnapshotEventType.Publish(world, snap)
	})
}
