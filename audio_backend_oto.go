//go:build !headless

package folio

import (
	"fmt"
	"io"
	"sync"

	"github.com/ebitengine/oto/v3"
)

// oto allows a single context per process. Sessions share it and each gets
// its own player and mixer.
var (
	otoOnce  sync.Once
	otoCtx   *oto.Context
	otoReady <-chan struct{}
	otoRate  int
	otoErr   error
)

// OpenDefaultAudio opens an oto-backed output at sampleRate. It does not wait
// for the device: page turns before the context is ready play silently.
func OpenDefaultAudio(sampleRate int) (AudioOutput, error) {
	otoOnce.Do(func() {
		ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: 1,
			Format:       oto.FormatFloat32LE,
		})
		if err != nil {
			otoErr = err
			return
		}
		otoCtx = ctx
		otoReady = ready
		otoRate = sampleRate
	})
	if otoErr != nil {
		return nil, fmt.Errorf("open audio context: %w", otoErr)
	}
	if otoRate != sampleRate {
		return nil, fmt.Errorf("open audio context: already running at %d Hz, want %d Hz", otoRate, sampleRate)
	}

	return newDeferredOutput(otoReady, func(r io.Reader) io.Closer {
		p := otoCtx.NewPlayer(r)
		p.Play()
		return p
	}), nil
}
