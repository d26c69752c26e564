package folio

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// errAudioUnavailable is returned by audio openers on hosts without output.
var errAudioUnavailable = errors.New("folio: audio output unavailable")

// Voice generates mono samples in [-1, 1].
type Voice interface {
	// Sample returns the next sample and whether the voice has finished.
	Sample() (float64, bool)
}

// AudioOutput plays scheduled voices. delay is in samples.
type AudioOutput interface {
	Schedule(v Voice, delay int)
	Close() error
}

// AudioOpener acquires an output for the given sample rate.
type AudioOpener func(sampleRate int) (AudioOutput, error)

// rustleLayer parameterises one layer of the page-turn sound.
type rustleLayer struct {
	name     string
	offset   time.Duration
	baseHz   float64
	duration time.Duration
	peak     float64
}

// pageTurnLayers are contact, main fold, and settle. They overlap.
var pageTurnLayers = [...]rustleLayer{
	{name: "contact", offset: 0, baseHz: 1200, duration: 80 * time.Millisecond, peak: 0.02},
	{name: "fold", offset: 20 * time.Millisecond, baseHz: 600, duration: 120 * time.Millisecond, peak: 0.025},
	{name: "settle", offset: 60 * time.Millisecond, baseHz: 300, duration: 100 * time.Millisecond, peak: 0.015},
}

const (
	rustleHighPassHz   = 800.0
	rustleHighPassQ    = math.Sqrt2 / 2
	rustleFreqEnd      = 0.3   // fraction of base frequency reached at the end
	rustleAttack       = 0.005 // seconds
	rustleDecayPoint   = 0.3   // fraction of duration where the first decay ends
	rustleDecayLevel   = 0.1   // fraction of peak at the decay point
	rustleSilenceLevel = 0.001
)

// paperVoice is one rustle layer: a sawtooth with an exponential pitch drop,
// high-passed, under a fast-attack double-exponential envelope.
type paperVoice struct {
	layer      rustleLayer
	sampleRate float64
	length     int
	n          int
	phase      float64
	hp         biquad
}

func newPaperVoice(l rustleLayer, sampleRate int) *paperVoice {
	sr := float64(sampleRate)
	return &paperVoice{
		layer:      l,
		sampleRate: sr,
		length:     int(l.duration.Seconds() * sr),
		hp:         newHighPass(rustleHighPassHz, rustleHighPassQ, sr),
	}
}

func (v *paperVoice) Sample() (float64, bool) {
	if v.n >= v.length {
		return 0, true
	}
	d := v.layer.duration.Seconds()
	t := float64(v.n) / v.sampleRate
	v.n++

	freq := v.layer.baseHz * math.Pow(rustleFreqEnd, t/d)
	v.phase += freq / v.sampleRate
	v.phase -= math.Floor(v.phase)
	saw := 2*v.phase - 1

	return v.hp.process(saw) * rustleEnvelope(t, d, v.layer.peak), v.n >= v.length
}

// rustleEnvelope is a linear attack to peak, an exponential fall to 10% of
// peak by 30% of the duration, then an exponential fall to near silence.
func rustleEnvelope(t, d, peak float64) float64 {
	decayEnd := rustleDecayPoint * d
	switch {
	case t < 0:
		return 0
	case t < rustleAttack:
		return peak * t / rustleAttack
	case t < decayEnd:
		return expRamp(peak, peak*rustleDecayLevel, (t-rustleAttack)/(decayEnd-rustleAttack))
	case t <= d:
		return expRamp(peak*rustleDecayLevel, rustleSilenceLevel, (t-decayEnd)/(d-decayEnd))
	default:
		return 0
	}
}

// expRamp interpolates exponentially from a to b; both must be positive.
func expRamp(a, b, frac float64) float64 {
	return a * math.Pow(b/a, frac)
}

// biquad is a direct form I second-order filter.
type biquad struct {
	b0, b1, b2, a1, a2 float64
	x1, x2, y1, y2     float64
}

func newHighPass(cutoff, q, sampleRate float64) biquad {
	w0 := 2 * math.Pi * cutoff / sampleRate
	cos := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)
	a0 := 1 + alpha
	return biquad{
		b0: (1 + cos) / 2 / a0,
		b1: -(1 + cos) / a0,
		b2: (1 + cos) / 2 / a0,
		a1: -2 * cos / a0,
		a2: (1 - alpha) / a0,
	}
}

func (f *biquad) process(x float64) float64 {
	y := f.b0*x + f.b1*f.x1 + f.b2*f.x2 - f.a1*f.y1 - f.a2*f.y2
	f.x2, f.x1 = f.x1, x
	f.y2, f.y1 = f.y1, y
	return y
}

// schedulePageTurn queues the three rustle layers on out.
func schedulePageTurn(out AudioOutput, sampleRate int) {
	for _, l := range pageTurnLayers {
		out.Schedule(newPaperVoice(l, sampleRate), int(l.offset.Seconds()*float64(sampleRate)))
	}
}

// RenderPageTurn renders the page-turn sound offline as mono float32 samples.
func RenderPageTurn(sampleRate int) []float32 {
	m := newMixer()
	schedulePageTurn(m, sampleRate)
	var total int
	for _, l := range pageTurnLayers {
		end := int((l.offset + l.duration).Seconds() * float64(sampleRate))
		total = max(total, end)
	}
	return m.Render(total)
}

// Synth plays the page-turn sound. Its output is acquired on first use and
// kept until Close. Failures are logged and swallowed.
type Synth struct {
	sampleRate int
	open       AudioOpener
	out        AudioOutput
	failed     bool
	logf       func(format string, args ...any)
}

func newSynth(sampleRate int, open AudioOpener, logf func(string, ...any)) *Synth {
	return &Synth{sampleRate: sampleRate, open: open, logf: logf}
}

// PageTurn schedules one page-turn sound. It never blocks on playback and
// never fails from the caller's point of view.
func (s *Synth) PageTurn() {
	defer func() {
		if r := recover(); r != nil {
			s.log("synth panic: %v", r)
		}
	}()
	if s.out == nil {
		if s.failed || s.open == nil {
			return
		}
		out, err := s.open(s.sampleRate)
		if err != nil {
			s.failed = true
			s.log("audio unavailable: %v", err)
			return
		}
		s.out = out
	}
	schedulePageTurn(s.out, s.sampleRate)
}

// Close releases the audio output, if one was acquired.
func (s *Synth) Close() error {
	if s.out == nil {
		return nil
	}
	out := s.out
	s.out = nil
	if err := out.Close(); err != nil {
		return fmt.Errorf("close audio output: %w", err)
	}
	return nil
}

func (s *Synth) log(format string, args ...any) {
	if s.logf != nil {
		s.logf(format, args...)
	}
}
