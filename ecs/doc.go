// Package ecs provides ECS adapters for folio sessions.
//
// The primary adapter is [NewDonburiTracker], which bridges folio's reading
// analytics (page views with dwell time, bookmark toggles) into a [Donburi]
// world as typed events. Subscribe to [PageViewEventType] and
// [BookmarkEventType] in your ECS systems to receive them. [PublishChanges]
// does the same for session snapshots.
//
// Usage:
//
//	s, err := folio.NewSession(doc, cfg, folio.WithTracker(ecs.NewDonburiTracker(world)))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
