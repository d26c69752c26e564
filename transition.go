package folio

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// pageTurner owns the page index and the turn lifecycle
// Idle -> Turning(direction, target) -> Idle. At most one turn is in flight;
// requests made while turning are rejected, not queued.
type pageTurner struct {
	current int
	total   int
	state   TransitionState

	sched  *scheduler
	swapAt time.Duration
	endAt  time.Duration

	// flip drives FlipProgress from 0 to 1 across the whole turn.
	flip         *gween.Tween
	flipProgress float64

	// sound is fired on entering Turning; it must not block.
	sound func()
	// onBegin receives the page being left.
	onBegin func(from int)
	// onSwap runs after the page index changes.
	onSwap   func()
	onChange func()
}

func newPageTurner(total int, sched *scheduler, cfg Config) *pageTurner {
	return &pageTurner{
		current: 1,
		total:   total,
		sched:   sched,
		swapAt:  millis(cfg.TurnSwapMillis),
		endAt:   millis(cfg.TurnEndMillis),
	}
}

// Request starts a turn to target. It returns false, changing nothing, if
// target is the current page, out of range, or a turn is already in flight.
func (p *pageTurner) Request(target int) bool {
	if target == p.current {
		return false
	}
	if p.state.Turning {
		return false
	}
	if target < 1 || target > p.total {
		return false
	}

	dir := DirectionPrev
	if target > p.current {
		dir = DirectionNext
	}
	from := p.current
	p.state = TransitionState{Turning: true, Direction: dir, Target: target}
	p.flip = gween.New(0, 1, float32(p.endAt.Seconds()), ease.InOutQuad)
	p.flipProgress = 0

	if p.sound != nil {
		p.sound()
	}
	if p.onBegin != nil {
		p.onBegin(from)
	}

	// The new page becomes visible halfway through so the first half of the
	// flip animates over the old page and the second half over the new one.
	p.sched.Sequence([]phase{
		{offset: p.swapAt, effect: p.swap},
		{offset: p.endAt, effect: p.finish},
	})
	p.changed()
	return true
}

func (p *pageTurner) swap() {
	p.current = p.state.Target
	if p.onSwap != nil {
		p.onSwap()
	}
	p.changed()
}

func (p *pageTurner) finish() {
	p.state = TransitionState{}
	p.flip = nil
	p.flipProgress = 0
	p.changed()
}

// abort settles an in-flight turn without running its remaining phases. The
// page index stays wherever the turn had got to. Callers cancel the phases.
func (p *pageTurner) abort() {
	if !p.state.Turning {
		return
	}
	p.state = TransitionState{}
	p.flip = nil
	p.flipProgress = 0
}

// update advances the flip animation by dt.
func (p *pageTurner) update(dt time.Duration) {
	if p.flip == nil {
		return
	}
	val, _ := p.flip.Update(float32(dt.Seconds()))
	p.flipProgress = float64(val)
}

func (p *pageTurner) changed() {
	if p.onChange != nil {
		p.onChange()
	}
}
