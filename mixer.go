package folio

import (
	"encoding/binary"
	"io"
	"math"
	"sync"
)

type pendingVoice struct {
	v     Voice
	delay int // samples until the voice starts
}

// mixer sums scheduled voices into a mono stream. It is read from the audio
// backend's goroutine while the engine schedules from its own, so all state
// is guarded by mu.
type mixer struct {
	mu     sync.Mutex
	voices []pendingVoice
}

func newMixer() *mixer {
	return &mixer{}
}

// Schedule starts v after delay samples.
func (m *mixer) Schedule(v Voice, delay int) {
	if delay < 0 {
		delay = 0
	}
	m.mu.Lock()
	m.voices = append(m.voices, pendingVoice{v: v, delay: delay})
	m.mu.Unlock()
}

// Close drops every scheduled voice.
func (m *mixer) Close() error {
	m.mu.Lock()
	m.voices = nil
	m.mu.Unlock()
	return nil
}

// Active returns the number of voices still scheduled or sounding.
func (m *mixer) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.voices)
}

// next mixes one sample. Callers hold mu.
func (m *mixer) next() float64 {
	var sum float64
	live := m.voices[:0]
	for _, pv := range m.voices {
		if pv.delay > 0 {
			pv.delay--
			live = append(live, pv)
			continue
		}
		s, done := pv.v.Sample()
		sum += s
		if !done {
			live = append(live, pv)
		}
	}
	for i := len(live); i < len(m.voices); i++ {
		m.voices[i] = pendingVoice{}
	}
	m.voices = live
	return math.Max(-1, math.Min(1, sum))
}

// Render mixes n samples.
func (m *mixer) Render(n int) []float32 {
	out := make([]float32, n)
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range out {
		out[i] = float32(m.next())
	}
	return out
}

// Read fills p with little-endian float32 mono samples, emitting silence when
// nothing is scheduled so the player can stay open.
func (m *mixer) Read(p []byte) (int, error) {
	n := len(p) / 4
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := 0; i < n; i++ {
		var s float32
		if len(m.voices) > 0 {
			s = float32(m.next())
		}
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(s))
	}
	return n * 4, nil
}

// deferredOutput fronts a mixer for a device that becomes usable later. Voices
// scheduled before ready closes are dropped, never waited on. The first voice
// after that starts playback.
type deferredOutput struct {
	*mixer
	ready  <-chan struct{}
	start  func(r io.Reader) io.Closer
	player io.Closer
}

func newDeferredOutput(ready <-chan struct{}, start func(r io.Reader) io.Closer) *deferredOutput {
	return &deferredOutput{mixer: newMixer(), ready: ready, start: start}
}

// Ready reports whether the device has signalled it can play.
func (d *deferredOutput) Ready() bool {
	select {
	case <-d.ready:
		return true
	default:
		return false
	}
}

// Schedule mixes v in once the device is ready and drops it otherwise.
func (d *deferredOutput) Schedule(v Voice, delay int) {
	if !d.Ready() {
		return
	}
	if d.player == nil {
		d.player = d.start(d.mixer)
	}
	d.mixer.Schedule(v, delay)
}

// Close drops pending voices and stops the player if one was started.
func (d *deferredOutput) Close() error {
	_ = d.mixer.Close()
	if d.player == nil {
		return nil
	}
	return d.player.Close()
}
