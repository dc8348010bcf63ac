package models

import "time"

// Change log actions.
const (
	ActionCreated   = "Created New Project"
	ActionUpdated   = "Updated Project Details"
	ActionPunchList = "Punch List Updated"
	ActionDeleted   = "Project Deleted"
)

// ChangeLogEntry is append-only; nothing in this module mutates one after it
// has been written.
type ChangeLogEntry struct {
	ID          string    `json:"id"`
	Timestamp   string    `json:"timestamp"`
	UserEmail   string    `json:"userEmail"`
	ProjectID   int64     `json:"projectId"`
	ProjectInfo string    `json:"projectInfo"`
	Action      string    `json:"action"`
	Changes     string    `json:"changes"`
	CreatedAt   time.Time `json:"createdAt"`
}
