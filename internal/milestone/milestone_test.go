package milestone

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestAdvanceCycleCloses(t *testing.T) {
	for _, s := range []Status{NotStarted, Started, Stuck, Completed} {
		got := s.Next().Next().Next().Next()
		if got != s {
			t.Fatalf("four advances from %s returned %s", s, got)
		}
	}
}

func TestAdvanceOrder(t *testing.T) {
	want := []Status{Started, Stuck, Completed, NotStarted}
	s := NotStarted
	for i, w := range want {
		s = s.Next()
		if s != w {
			t.Fatalf("step %d: expected %s got %s", i, w, s)
		}
	}
}

func TestSetAdvanceOnlyTouchesStage(t *testing.T) {
	m := NewSet()
	m, err := m.Advance(FAT)
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if m.FAT != Started {
		t.Fatalf("expected fat started, got %s", m.FAT)
	}
	for _, st := range []Stage{Design, Material, Fabrication, Ship} {
		if m.Status(st) != NotStarted {
			t.Fatalf("stage %s changed to %s", st, m.Status(st))
		}
	}
}

func TestSetAdvanceUnknownStage(t *testing.T) {
	_, err := NewSet().Advance(Stage("paint"))
	if !errors.Is(err, ErrUnknownStage) {
		t.Fatalf("expected ErrUnknownStage, got %v", err)
	}
}

func TestPunchListUnlockedOnlyWhenFATCompleted(t *testing.T) {
	m := NewSet()
	for i := 0; i < 3; i++ {
		if m.PunchListUnlocked() {
			t.Fatalf("unlocked at fat=%s", m.FAT)
		}
		m, _ = m.Advance(FAT)
	}
	if !m.PunchListUnlocked() {
		t.Fatalf("expected unlocked at fat=%s", m.FAT)
	}
}

func TestUnmarshalLegacyBooleans(t *testing.T) {
	var m Set
	if err := json.Unmarshal([]byte(`{"design":true,"mat":true,"fab":false,"fat":false,"ship":false}`), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m.Design != Completed || m.Material != Completed {
		t.Fatalf("expected completed for true values, got %+v", m)
	}
	if m.Fabrication != NotStarted || m.Ship != NotStarted {
		t.Fatalf("expected not_started for false values, got %+v", m)
	}
}

func TestUnmarshalFillsMissingAndDropsUnknownKeys(t *testing.T) {
	var m Set
	if err := json.Unmarshal([]byte(`{"fat":"stuck","paint":"completed"}`), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m.FAT != Stuck {
		t.Fatalf("expected fat stuck got %s", m.FAT)
	}
	if m.Design != NotStarted || m.Ship != NotStarted {
		t.Fatalf("expected missing stages not started, got %+v", m)
	}

	b, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var keys map[string]any
	_ = json.Unmarshal(b, &keys)
	if len(keys) != 5 {
		t.Fatalf("expected exactly five keys, got %v", keys)
	}
	for _, st := range Stages {
		if _, ok := keys[string(st)]; !ok {
			t.Fatalf("missing key %s in %s", st, b)
		}
	}
}

func TestUnmarshalNull(t *testing.T) {
	var m Set
	if err := json.Unmarshal([]byte(`null`), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m != NewSet() {
		t.Fatalf("expected all not started, got %+v", m)
	}
}

func TestUnmarshalRejectsUnknownStatus(t *testing.T) {
	var m Set
	if err := json.Unmarshal([]byte(`{"fat":"shipped"}`), &m); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}

func TestParseStage(t *testing.T) {
	st, err := ParseStage(" FAT ")
	if err != nil || st != FAT {
		t.Fatalf("expected fat, got %q (%v)", st, err)
	}
	if _, err := ParseStage("material"); !errors.Is(err, ErrUnknownStage) {
		t.Fatalf("expected ErrUnknownStage, got %v", err)
	}
}

func TestLabels(t *testing.T) {
	cases := map[Status]string{
		NotStarted: "Not Started",
		Started:    "Started",
		Stuck:      "Stuck",
		Completed:  "Completed",
		"":         "Not Started",
	}
	for s, want := range cases {
		if got := s.Label(); got != want {
			t.Fatalf("label(%q): expected %q got %q", s, want, got)
		}
	}
}
