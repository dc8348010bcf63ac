package interfaces

import (
	"context"

	"projectcenter/internal/models"
)

// ChangeLogRepository stores audit entries. It has no update or delete.
type ChangeLogRepository interface {
	List(ctx context.Context) ([]models.ChangeLogEntry, error)
	Create(ctx context.Context, entry *models.ChangeLogEntry) error
}
