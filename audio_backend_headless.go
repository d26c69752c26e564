//go:build headless

package folio

// OpenDefaultAudio reports that headless builds have no audio output.
func OpenDefaultAudio(sampleRate int) (AudioOutput, error) {
	return nil, errAudioUnavailable
}
