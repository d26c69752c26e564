package folio

import (
	"encoding/binary"
	"io"
	"math"
	"testing"
)

// constVoice emits value for n samples.
type constVoice struct {
	value float64
	n     int
}

func (v *constVoice) Sample() (float64, bool) {
	v.n--
	return v.value, v.n <= 0
}

func TestMixerDelayAndSum(t *testing.T) {
	m := newMixer()
	m.Schedule(&constVoice{value: 0.25, n: 4}, 0)
	m.Schedule(&constVoice{value: 0.5, n: 2}, 2)
	got := m.Render(6)
	want := []float32{0.25, 0.25, 0.75, 0.75, 0, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Render = %v, want %v", got, want)
		}
	}
	if m.Active() != 0 {
		t.Errorf("Active = %d, want 0 after voices finish", m.Active())
	}
}

func TestMixerClamps(t *testing.T) {
	m := newMixer()
	m.Schedule(&constVoice{value: 0.8, n: 1}, 0)
	m.Schedule(&constVoice{value: 0.8, n: 1}, -5)
	if got := m.Render(1)[0]; got != 1 {
		t.Errorf("sample = %v, want clamped to 1", got)
	}
}

func TestMixerReadFloat32LE(t *testing.T) {
	m := newMixer()
	m.Schedule(&constVoice{value: 0.5, n: 1}, 0)
	buf := make([]byte, 10)
	n, err := m.Read(buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != 8 {
		t.Fatalf("Read = %d bytes, want 8 (whole samples only)", n)
	}
	if s := math.Float32frombits(binary.LittleEndian.Uint32(buf[0:])); s != 0.5 {
		t.Errorf("sample 0 = %v, want 0.5", s)
	}
	if s := math.Float32frombits(binary.LittleEndian.Uint32(buf[4:])); s != 0 {
		t.Errorf("sample 1 = %v, want silence", s)
	}
}

func TestMixerCloseDropsVoices(t *testing.T) {
	m := newMixer()
	m.Schedule(&constVoice{value: 0.5, n: 100}, 0)
	if err := m.Close(); err != nil {
		t.Fatal(err)
	}
	if m.Active() != 0 {
		t.Errorf("Active = %d after Close", m.Active())
	}
}

type closeCounter struct{ closed int }

func (c *closeCounter) Close() error {
	c.closed++
	return nil
}

func TestDeferredOutputDropsUntilReady(t *testing.T) {
	ready := make(chan struct{})
	starts := 0
	player := &closeCounter{}
	out := newDeferredOutput(ready, func(r io.Reader) io.Closer {
		starts++
		return player
	})

	out.Schedule(&constVoice{value: 0.5, n: 10}, 0)
	if out.Ready() || out.Active() != 0 || starts != 0 {
		t.Fatalf("before ready: ready=%v active=%d starts=%d", out.Ready(), out.Active(), starts)
	}

	close(ready)
	out.Schedule(&constVoice{value: 0.5, n: 10}, 0)
	out.Schedule(&constVoice{value: 0.5, n: 10}, 5)
	if !out.Ready() || out.Active() != 2 {
		t.Errorf("after ready: ready=%v active=%d, want true 2", out.Ready(), out.Active())
	}
	if starts != 1 {
		t.Errorf("player started %d times, want 1", starts)
	}

	if err := out.Close(); err != nil {
		t.Fatal(err)
	}
	if player.closed != 1 || out.Active() != 0 {
		t.Errorf("Close: player closed %d times, active=%d", player.closed, out.Active())
	}
}

func TestDeferredOutputCloseBeforeReady(t *testing.T) {
	out := newDeferredOutput(make(chan struct{}), func(io.Reader) io.Closer {
		t.Fatal("player started before ready")
		return nil
	})
	out.Schedule(&constVoice{value: 1, n: 1}, 0)
	if err := out.Close(); err != nil {
		t.Fatal(err)
	}
}
