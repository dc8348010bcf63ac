// Package audit keeps the append-only project change log.
package audit

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"projectcenter/internal/interfaces"
	"projectcenter/internal/models"
)

// TimestampLayout is the human-readable write time stored on each entry.
const TimestampLayout = "1/2/2006, 3:04:05 PM"

// Record is everything a caller supplies for one entry.
type Record struct {
	Action      string
	UserEmail   string
	ProjectID   int64
	ProjectInfo string
	Changes     string
}

// Log persists entries through the repository and keeps them newest first in
// memory.
type Log struct {
	repo interfaces.ChangeLogRepository

	mu      sync.RWMutex
	entries []models.ChangeLogEntry

	Now   func() time.Time
	NewID func() string
}

func NewLog(repo interfaces.ChangeLogRepository) *Log {
	return &Log{
		repo:  repo,
		Now:   time.Now,
		NewID: uuid.NewString,
	}
}

// Load replaces the in-memory log with the persisted one.
func (l *Log) Load(ctx context.Context) error {
	entries, err := l.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("load change log: %w", err)
	}
	l.mu.Lock()
	l.entries = entries
	l.mu.Unlock()
	return nil
}

// Append writes one entry when rec.Changes is non-empty and prepends it to the
// in-memory log. An empty change set is a no-op and returns nil, nil.
func (l *Log) Append(ctx context.Context, rec Record) (*models.ChangeLogEntry, error) {
	if rec.Changes == "" {
		return nil, nil
	}
	if rec.UserEmail == "" {
		rec.UserEmail = "Unknown"
	}

	now := l.Now()
	entry := &models.ChangeLogEntry{
		ID:          l.NewID(),
		Timestamp:   now.Format(TimestampLayout),
		UserEmail:   rec.UserEmail,
		ProjectID:   rec.ProjectID,
		ProjectInfo: rec.ProjectInfo,
		Action:      rec.Action,
		Changes:     rec.Changes,
		CreatedAt:   now.UTC(),
	}
	if err := l.repo.Create(ctx, entry); err != nil {
		log.Printf("Error logging change for project %d: %v", rec.ProjectID, err)
		return nil, fmt.Errorf("append change log: %w", err)
	}

	l.mu.Lock()
	l.entries = append([]models.ChangeLogEntry{*entry}, l.entries...)
	l.mu.Unlock()
	return entry, nil
}

// Entries returns a copy of the log, newest first.
func (l *Log) Entries() []models.ChangeLogEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]models.ChangeLogEntry(nil), l.entries...)
}

// ForProject returns the entries for one project, newest first.
func (l *Log) ForProject(projectID int64) []models.ChangeLogEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []models.ChangeLogEntry
	for _, e := range l.entries {
		if e.ProjectID == projectID {
			out = append(out, e)
		}
	}
	return out
}
