package interfaces

import (
	"context"

	"projectcenter/internal/models"
)

// ProjectRepository is the record store for projects. List is ordered by id
// ascending and Update rewrites every column.
type ProjectRepository interface {
	List(ctx context.Context) ([]models.Project, error)
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	Create(ctx context.Context, project *models.Project) error
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}
