package folio

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
)

// ---- Debug mode tests ------------------------------------------------------

func TestDebugMode_AudioFailureToStderr(t *testing.T) {
	rec := &audioRecorder{err: errors.New("no device")}
	s, err := NewSession(Document{Content: fakeBook{pages: 3}}, DefaultConfig(), WithAudioOpener(rec.open))
	if err != nil {
		t.Fatal(err)
	}
	s.SetDebugMode(true)

	// Capture stderr output.
	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	s.Navigator().GoToNext()

	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	buf.ReadFrom(r)
	output := buf.String()

	if !strings.Contains(output, "[folio] audio unavailable: no device") {
		t.Errorf("expected audio warning in stderr, got: %q", output)
	}
}

func TestReleaseMode_Silent(t *testing.T) {
	s, _ := newTestSession(t, 2)
	var logs []string
	s.SetLogger(func(format string, args ...any) { logs = append(logs, format) })
	s.Close()
	if len(logs) != 0 {
		t.Errorf("logged %d lines with debug off", len(logs))
	}
}

func TestDebugMode_Logger(t *testing.T) {
	s, _ := newTestSession(t, 2)
	var logs []string
	s.SetDebugMode(true)
	s.SetLogger(func(format string, args ...any) { logs = append(logs, format) })
	s.Close()
	if len(logs) != 1 || !strings.HasPrefix(logs[0], "closed") {
		t.Errorf("logs = %q, want one close line", logs)
	}
}
