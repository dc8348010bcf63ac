package audit

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"projectcenter/internal/models"
)

type memoryChangeLog struct {
	rows []models.ChangeLogEntry
	err  error
}

func (m *memoryChangeLog) List(ctx context.Context) ([]models.ChangeLogEntry, error) {
	return append([]models.ChangeLogEntry(nil), m.rows...), nil
}

func (m *memoryChangeLog) Create(ctx context.Context, entry *models.ChangeLogEntry) error {
	if m.err != nil {
		return m.err
	}
	m.rows = append([]models.ChangeLogEntry{*entry}, m.rows...)
	return nil
}

func newTestLog(repo *memoryChangeLog) *Log {
	l := NewLog(repo)
	n := 0
	l.Now = func() time.Time { return time.Date(2025, 3, 4, 15, 6, 7, 0, time.UTC) }
	l.NewID = func() string {
		n++
		return "log-" + string(rune('0'+n))
	}
	return l
}

func TestAppendEmptyChangesIsNoop(t *testing.T) {
	repo := &memoryChangeLog{}
	l := newTestLog(repo)

	entry, err := l.Append(context.Background(), Record{Action: models.ActionUpdated, ProjectID: 1})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if entry != nil {
		t.Fatalf("expected no entry, got %+v", entry)
	}
	if len(repo.rows) != 0 || len(l.Entries()) != 0 {
		t.Fatalf("expected nothing written")
	}
}

func TestAppendSingleFragment(t *testing.T) {
	repo := &memoryChangeLog{}
	l := newTestLog(repo)

	entry, err := l.Append(context.Background(), Record{
		Action:      models.ActionUpdated,
		UserEmail:   "pm@macproducts.net",
		ProjectID:   3,
		ProjectInfo: "Duke - North",
		Changes:     `Lead: "TBD" -> "Sam"`,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if entry == nil || len(repo.rows) != 1 {
		t.Fatalf("expected exactly one entry written")
	}
	if strings.Contains(entry.Changes, " | ") {
		t.Fatalf("expected a single fragment, got %q", entry.Changes)
	}
	if entry.Timestamp != "3/4/2025, 3:06:07 PM" {
		t.Fatalf("unexpected timestamp %q", entry.Timestamp)
	}
}

func TestAppendPrependsNewestFirst(t *testing.T) {
	l := newTestLog(&memoryChangeLog{})
	ctx := context.Background()

	_, _ = l.Append(ctx, Record{Action: "a", ProjectID: 1, Changes: "first"})
	_, _ = l.Append(ctx, Record{Action: "b", ProjectID: 2, Changes: "second"})

	got := l.Entries()
	if len(got) != 2 || got[0].Changes != "second" || got[1].Changes != "first" {
		t.Fatalf("expected newest first, got %+v", got)
	}
	if got := l.ForProject(1); len(got) != 1 || got[0].Changes != "first" {
		t.Fatalf("unexpected project filter result %+v", got)
	}
}

func TestAppendDefaultsUnknownUser(t *testing.T) {
	l := newTestLog(&memoryChangeLog{})
	entry, _ := l.Append(context.Background(), Record{Action: "a", Changes: "x"})
	if entry.UserEmail != "Unknown" {
		t.Fatalf("expected Unknown, got %q", entry.UserEmail)
	}
}

func TestAppendBackendFailureLeavesLogUntouched(t *testing.T) {
	repo := &memoryChangeLog{err: errors.New("connection refused")}
	l := newTestLog(repo)

	if _, err := l.Append(context.Background(), Record{Action: "a", Changes: "x"}); err == nil {
		t.Fatalf("expected error")
	}
	if len(l.Entries()) != 0 {
		t.Fatalf("expected empty in-memory log")
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	l := newTestLog(&memoryChangeLog{})
	_, _ = l.Append(context.Background(), Record{Action: "a", Changes: "x"})

	got := l.Entries()
	got[0].Changes = "tampered"
	if l.Entries()[0].Changes != "x" {
		t.Fatalf("log entry was mutated through Entries")
	}
}

func TestLoad(t *testing.T) {
	repo := &memoryChangeLog{rows: []models.ChangeLogEntry{{ID: "b"}, {ID: "a"}}}
	l := newTestLog(repo)
	if err := l.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := l.Entries(); len(got) != 2 || got[0].ID != "b" {
		t.Fatalf("unexpected entries %+v", got)
	}
}
