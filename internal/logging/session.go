package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Session is an append-only debug log for one sniping run. Each entry is
// prefixed with a microsecond timestamp so a failed snipe can be replayed
// against server logs afterwards.
//
// The file is named <progname>.log, or <progname>.<auction>.log when the
// run targets a single auction, and is created under dir (the current
// directory when dir is empty).
type Session struct {
	mu   sync.Mutex
	f    *os.File
	path string
}

// OpenSession opens (appending) the session log file. Failure to open is
// reported to the caller but is intended to be non-fatal: the program can
// run without a debug log.
func OpenSession(progname, auction, dir string) (*Session, error) {
	name := progname + ".log"
	if auction != "" {
		name = progname + "." + auction + ".log"
	}
	path := name
	if dir != "" {
		path = filepath.Join(dir, name)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("unable to open log file %s: %w", path, err)
	}
	return &Session{f: f, path: path}, nil
}

// Path returns the log file location.
func (s *Session) Path() string {
	return s.path
}

// Print appends one timestamped entry. Safe on a nil or closed session.
func (s *Session) Print(msg string) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.f == nil {
		return
	}

	now := time.Now()
	fmt.Fprintf(s.f, "\n\n*** %s.%06d %s", now.Format("2006-01-02 15:04:05"), now.Nanosecond()/1000, msg)
	s.f.Sync()
}

// Printf is Print with formatting.
func (s *Session) Printf(format string, args ...interface{}) {
	s.Print(fmt.Sprintf(format, args...))
}

// Close flushes and closes the log file. Idempotent.
func (s *Session) Close() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.f == nil {
		return nil
	}
	err := s.f.Close()
	s.f = nil
	return err
}
