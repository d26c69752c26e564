package folio

import (
	"fmt"
	"os"
)

// SetDebugMode enables or disables debug logging. When enabled, swallowed
// failures (audio, tracker) and lifecycle events are printed to stderr, or to
// the logger set with SetLogger.
func (s *Session) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// SetLogger redirects debug output. A nil logger restores stderr.
func (s *Session) SetLogger(fn func(format string, args ...any)) {
	s.logger = fn
}

func (s *Session) debugf(format string, args ...any) {
	if !s.debug {
		return
	}
	if s.logger != nil {
		s.logger(format, args...)
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[folio] "+format+"\n", args...)
}
