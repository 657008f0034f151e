package types

import (
	"encoding/json"
	"fmt"
	"time"
)

// Duration is a time.Duration that reads and writes the "1m30s" text form, so that it can be
// set from environment variables and JSON alike.
type Duration struct {
	time.Duration
}

func NewDuration(d time.Duration) Duration {
	return Duration{Duration: d}
}

// ParseDuration accepts time.ParseDuration syntax. A bare integer is read as whole seconds,
// e.g. "30" for a 30s transaction timeout.
func ParseDuration(s string) (Duration, error) {
	var d Duration
	if err := d.UnmarshalText([]byte(s)); err != nil {
		return Duration{}, err
	}

	return d, nil
}

// MustParseDuration panics on invalid input. Intended for tests and constants.
func MustParseDuration(s string) Duration {
	d, err := ParseDuration(s)
	if err != nil {
		panic(err)
	}

	return d
}

func (d Duration) String() string {
	return d.Duration.String()
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	s := string(text)
	if s == "" {
		return fmt.Errorf("empty duration")
	}
	if isDigits(s) {
		var secs int64
		if _, err := fmt.Sscan(s, &secs); err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		d.Duration = time.Duration(secs) * time.Second

		return nil
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	d.Duration = parsed

	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("invalid duration %s: expected a string", b)
	}

	return d.UnmarshalText([]byte(s))
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
