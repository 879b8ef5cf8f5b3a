package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Duration is a time.Duration written in config as "250ms", "1s" and so on.
// A bare integer is read as milliseconds, so `debounce = 300` works too.
type Duration time.Duration

// UnmarshalText parses a duration string or an integer millisecond count.
func (d *Duration) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))

	var parsed time.Duration
	if ms, err := strconv.Atoi(s); err == nil {
		parsed = time.Duration(ms) * time.Millisecond
	} else if parsed, err = time.ParseDuration(s); err != nil {
		return fmt.Errorf("duration %q: want e.g. 250ms, 1s or a millisecond count", s)
	}

	*d = Duration(parsed)
	return nil
}

// MarshalText writes the duration in time.Duration notation.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration().String()), nil
}

// Duration returns d as a time.Duration.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}
