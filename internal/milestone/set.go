package milestone

import (
	"encoding/json"
	"fmt"
	"strings"
)

type Stage string

const (
	Design      Stage = "design"
	Material    Stage = "mat"
	Fabrication Stage = "fab"
	FAT         Stage = "fat"
	Ship        Stage = "ship"
)

// Stages lists every stage in pipeline order.
var Stages = []Stage{Design, Material, Fabrication, FAT, Ship}

func ParseStage(raw string) (Stage, error) {
	s := Stage(strings.ToLower(strings.TrimSpace(raw)))
	for _, st := range Stages {
		if st == s {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStage, raw)
}

// Set holds one status per stage. The struct shape is what keeps the key set
// fixed at exactly five.
type Set struct {
	Design      Status `json:"design"`
	Material    Status `json:"mat"`
	Fabrication Status `json:"fab"`
	FAT         Status `json:"fat"`
	Ship        Status `json:"ship"`
}

// NewSet returns a set with every stage not started.
func NewSet() Set {
	return Set{
		Design:      NotStarted,
		Material:    NotStarted,
		Fabrication: NotStarted,
		FAT:         NotStarted,
		Ship:        NotStarted,
	}
}

func (m Set) Status(stage Stage) Status {
	switch stage {
	case Design:
		return m.Design
	case Material:
		return m.Material
	case Fabrication:
		return m.Fabrication
	case FAT:
		return m.FAT
	case Ship:
		return m.Ship
	}
	return NotStarted
}

// With returns a copy of m with stage set to s.
func (m Set) With(stage Stage, s Status) (Set, error) {
	switch stage {
	case Design:
		m.Design = s
	case Material:
		m.Material = s
	case Fabrication:
		m.Fabrication = s
	case FAT:
		m.FAT = s
	case Ship:
		m.Ship = s
	default:
		return m, fmt.Errorf("%w: %q", ErrUnknownStage, stage)
	}
	return m, nil
}

// Advance moves one stage a single step forward in its cycle.
func (m Set) Advance(stage Stage) (Set, error) {
	return m.With(stage, m.Status(stage).Next())
}

// Normalized returns m with every empty or unknown status set to NotStarted.
func (m Set) Normalized() Set {
	return Set{
		Design:      m.Design.Normalized(),
		Material:    m.Material.Normalized(),
		Fabrication: m.Fabrication.Normalized(),
		FAT:         m.FAT.Normalized(),
		Ship:        m.Ship.Normalized(),
	}
}

// PunchListUnlocked reports whether FAT is completed, the only condition that
// allows punch-list editing.
func (m Set) PunchListUnlocked() bool {
	return m.FAT == Completed
}

// UnmarshalJSON normalizes legacy boolean sets and fills stages missing from
// the stored object. Keys outside the fixed five are dropped.
func (m *Set) UnmarshalJSON(b []byte) error {
	out := NewSet()
	if string(b) == "null" {
		*m = out
		return nil
	}

	var raw map[string]Status
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("milestones: %w", err)
	}
	for _, st := range Stages {
		if v, ok := raw[string(st)]; ok {
			out, _ = out.With(st, v)
		}
	}
	*m = out
	return nil
}
