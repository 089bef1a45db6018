package config

import (
	"fmt"
	"strings"
)

// boolWords pairs false/true spellings; the index parity carries the
// value, matching the historical table.
var boolWords = []string{
	"0", "1",
	"n", "y",
	"no", "yes",
	"off", "on",
	"false", "true",
	"disabled", "enabled",
}

// ParseBool converts a configuration string to a boolean. The accepted
// vocabulary is exactly 0/1, n/y, no/yes, off/on, false/true and
// disabled/enabled, case-insensitively; anything else — including the
// empty string — is an error. Callers that treat a bare flag as true
// must handle absence before calling.
func ParseBool(value string) (bool, error) {
	lower := strings.ToLower(value)
	for i, w := range boolWords {
		if lower == w {
			return i%2 == 1, nil
		}
	}
	return false, fmt.Errorf("invalid boolean value %q", value)
}
