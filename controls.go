package folio

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ControlsTimer drives the show/hide flag for the viewer chrome. Any tracked
// input shows the controls at once and restarts a single hide timer.
type ControlsTimer struct {
	sched *scheduler
	delay time.Duration

	visible        bool
	lastActivityAt time.Duration
	pending        timerHandle

	fadeDuration time.Duration
	fade         *gween.Tween
	alpha        float64

	onChange func()
}

func newControlsTimer(sched *scheduler, cfg Config) *ControlsTimer {
	return &ControlsTimer{
		sched:        sched,
		delay:        millis(cfg.HideControlsMillis),
		fadeDuration: millis(cfg.FadeMillis),
		visible:      true,
		alpha:        1,
	}
}

// Visible reports whether the controls should be shown.
func (c *ControlsTimer) Visible() bool { return c.visible }

// Alpha returns the chrome opacity, easing towards 1 when visible and 0 when hidden.
func (c *ControlsTimer) Alpha() float64 { return c.alpha }

// LastActivity returns the clock time of the most recent tracked input.
func (c *ControlsTimer) LastActivity() time.Duration { return c.lastActivityAt }

// RecordActivity shows the controls and replaces any pending hide with a new
// one a full delay from now.
func (c *ControlsTimer) RecordActivity() {
	c.lastActivityAt = c.sched.Now()
	c.pending.Cancel()
	c.pending = c.sched.After(c.delay, c.hide)
	if !c.visible {
		c.visible = true
		c.startFade(1)
		c.changed()
	}
}

func (c *ControlsTimer) hide() {
	c.pending = timerHandle{}
	if !c.visible {
		return
	}
	c.visible = false
	c.startFade(0)
	c.changed()
}

func (c *ControlsTimer) startFade(to float64) {
	if c.fadeDuration <= 0 {
		c.fade = nil
		c.alpha = to
		return
	}
	c.fade = gween.New(float32(c.alpha), float32(to), float32(c.fadeDuration.Seconds()), ease.OutQuad)
}

// update advances the fade by dt.
func (c *ControlsTimer) update(dt time.Duration) {
	if c.fade == nil {
		return
	}
	val, done := c.fade.Update(float32(dt.Seconds()))
	c.alpha = float64(val)
	if done {
		c.fade = nil
	}
}

func (c *ControlsTimer) changed() {
	if c.onChange != nil {
		c.onChange()
	}
}
