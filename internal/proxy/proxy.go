// Package proxy parses the proxy setting from the configuration into a
// validated host/port pair.
//
// Accepted forms, matching the historical behavior:
//
//	"http://host.at.some.domain:80/"
//	"http://host.at.some.domain/"
//	"host.at.some.domain:8080"
//	"host.at.some.domain"
//	""
//
// The http:// prefix is matched case-insensitively. An unspecified port
// defaults to 80. An empty string, or an empty host segment (a bare ":"
// or "/"), disables proxy use; that is a success, not a parse failure.
// Anything outside the grammar is rejected outright — the parser never
// guesses a best-effort interpretation of malformed input.
package proxy

import (
	"strconv"
	"strings"
)

// DefaultPort applies when the proxy string carries no port.
const DefaultPort = 80

// Spec is a validated proxy destination. The zero value means "no proxy".
type Spec struct {
	Host string
	Port int
}

// ParseError reports a proxy string that does not match the grammar.
type ParseError struct {
	Value   string
	Message string
}

func (e *ParseError) Error() string {
	return "invalid proxy " + strconv.Quote(e.Value) + ": " + e.Message
}

// Enabled reports whether a proxy host is configured.
func (s *Spec) Enabled() bool {
	return s.Host != ""
}

// Clear disables proxy use, dropping any stored host and port.
func (s *Spec) Clear() {
	s.Host = ""
	s.Port = 0
}

// String renders the spec as host:port, or "" when disabled.
func (s *Spec) String() string {
	if !s.Enabled() {
		return ""
	}
	return s.Host + ":" + strconv.Itoa(s.Port)
}

// Set parses value and updates the spec. An empty string or empty host
// clears the spec and succeeds. On a parse failure the spec is left
// untouched and a *ParseError is returned; the caller decides whether
// that is fatal.
func (s *Spec) Set(value string) error {
	rest := value
	if len(rest) >= 7 && strings.EqualFold(rest[:7], "http://") {
		rest = rest[7:]
	}

	hostLen := strings.IndexAny(rest, ":/")
	if hostLen < 0 {
		hostLen = len(rest)
	}
	if hostLen == 0 {
		s.Clear()
		return nil
	}
	host := rest[:hostLen]
	rest = rest[hostLen:]

	port := DefaultPort
	switch {
	case rest == "":
		// host only
	case rest[0] == ':':
		rest = rest[1:]
		if len(rest) > 0 && isDigit(rest[0]) {
			n := 1
			for n < len(rest) && isDigit(rest[n]) {
				n++
			}
			p, err := strconv.Atoi(rest[:n])
			if err != nil {
				// Only possible failure on a pure digit run is overflow.
				return &ParseError{Value: value, Message: "port out of range"}
			}
			port = p
			rest = rest[n:]
		}
		// A colon with no digits is fine (port stays 80) as long as the
		// remainder still resolves to a lone trailing slash or nothing.
		if rest != "" && rest != "/" {
			return &ParseError{Value: value, Message: "unexpected text after port"}
		}
	case rest == "/":
		// trailing slash only
	default:
		return &ParseError{Value: value, Message: "unexpected text after host"}
	}

	s.Host = host
	s.Port = port
	return nil
}

// Parse is the stateless form of Set.
func Parse(value string) (Spec, error) {
	var s Spec
	if err := s.Set(value); err != nil {
		return Spec{}, err
	}
	return s, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
