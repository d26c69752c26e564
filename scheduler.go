package folio

import "time"

// scheduledTask is a deferred callback on the virtual clock.
type scheduledTask struct {
	id        uint64
	at        time.Duration
	fn        func()
	cancelled bool
}

// timerHandle cancels a scheduled task. The zero value is a no-op handle.
type timerHandle struct {
	task *scheduledTask
}

// Cancel prevents the task from firing. Safe to call more than once and
// after the task has fired.
func (h timerHandle) Cancel() {
	if h.task != nil {
		h.task.cancelled = true
	}
}

// phase is one step of a timed sequence, run at offset from the moment the
// sequence is scheduled.
type phase struct {
	offset time.Duration
	effect func()
}

// scheduler is a single-threaded virtual clock. Nothing runs until Advance is
// called; due tasks then run in deadline order, ties in scheduling order.
type scheduler struct {
	now    time.Duration
	tasks  []*scheduledTask
	nextID uint64
}

// Now returns the time elapsed on the virtual clock.
func (s *scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once d from now.
func (s *scheduler) After(d time.Duration, fn func()) timerHandle {
	if d < 0 {
		d = 0
	}
	s.nextID++
	t := &scheduledTask{id: s.nextID, at: s.now + d, fn: fn}
	s.tasks = append(s.tasks, t)
	return timerHandle{task: t}
}

// Sequence schedules every phase relative to now. Phases fire in offset order
// and each fires exactly once.
func (s *scheduler) Sequence(phases []phase) {
	for _, p := range phases {
		s.After(p.offset, p.effect)
	}
}

// Advance moves the clock forward by dt, running every task that falls due.
// Tasks scheduled by a running task also run if they fall due within dt.
func (s *scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	target := s.now + dt
	for {
		t := s.popDue(target)
		if t == nil {
			break
		}
		s.now = t.at
		t.fn()
	}
	s.now = target
}

// popDue removes and returns the earliest live task due at or before target.
// Cancelled tasks are dropped along the way.
func (s *scheduler) popDue(target time.Duration) *scheduledTask {
	best := -1
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if t.cancelled {
			continue
		}
		live = append(live, t)
	}
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live

	for i, t := range s.tasks {
		if t.at > target {
			continue
		}
		if best < 0 || t.at < s.tasks[best].at || (t.at == s.tasks[best].at && t.id < s.tasks[best].id) {
			best = i
		}
	}
	if best < 0 {
		return nil
	}
	t := s.tasks[best]
	copy(s.tasks[best:], s.tasks[best+1:])
	s.tasks[len(s.tasks)-1] = nil
	s.tasks = s.tasks[:len(s.tasks)-1]
	return t
}

// Pending returns the number of live tasks.
func (s *scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// CancelAll drops every pending task.
func (s *scheduler) CancelAll() {
	for i, t := range s.tasks {
		t.cancelled = true
		s.tasks[i] = nil
	}
	s.tasks = s.tasks[:0]
}
