// Package milestone models the five fixed pipeline stages of a project and the
// four-state cycle each stage moves through.
package milestone

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

type Status string

const (
	NotStarted Status = "not_started"
	Started    Status = "started"
	Stuck      Status = "stuck"
	Completed  Status = "completed"
)

var ErrUnknownStage = errors.New("unknown milestone stage")

// cycle is the only legal transition order.
var cycle = []Status{NotStarted, Started, Stuck, Completed}

// Next returns the state that follows s in the cycle. Unknown values are
// treated as not started.
func (s Status) Next() Status {
	for i, c := range cycle {
		if c == s {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return Started
}

func (s Status) Label() string {
	switch s {
	case Started:
		return "Started"
	case Stuck:
		return "Stuck"
	case Completed:
		return "Completed"
	default:
		return "Not Started"
	}
}

// Normalized maps unknown or empty values to NotStarted.
func (s Status) Normalized() Status {
	if s.Valid() {
		return s
	}
	return NotStarted
}

func (s Status) Valid() bool {
	for _, c := range cycle {
		if c == s {
			return true
		}
	}
	return false
}

// FromLegacy maps the boolean representation used by older rows.
func FromLegacy(done bool) Status {
	if done {
		return Completed
	}
	return NotStarted
}

// UnmarshalJSON is the normalization point for stored milestone values: it
// accepts booleans, the four status strings, and null.
func (s *Status) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch string(b) {
	case "true":
		*s = Completed
		return nil
	case "false", "null", "":
		*s = NotStarted
		return nil
	}

	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("milestone status: %w", err)
	}
	parsed, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseStatus reads a status string; "true"/"false" are accepted for rows that
// were stringified from the boolean era.
func ParseStatus(raw string) (Status, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	switch v {
	case "", "false":
		return NotStarted, nil
	case "true":
		return Completed, nil
	}
	s := Status(v)
	if !s.Valid() {
		return "", fmt.Errorf("invalid milestone status %q", raw)
	}
	return s, nil
}
