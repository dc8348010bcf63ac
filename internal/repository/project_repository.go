package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"projectcenter/internal/interfaces"
	"projectcenter/internal/models"
)

type projectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) interfaces.ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) List(ctx context.Context) ([]models.Project, error) {
	query := `SELECT ` + projectColumns + `
		FROM projects
		ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

func (r *projectRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	query := `SELECT ` + projectColumns + `
		FROM projects
		WHERE id = $1`

	p, err := scanProject(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

// Create inserts the project and writes the backend-assigned id back onto it.
func (r *projectRepository) Create(ctx context.Context, project *models.Project) error {
	args, err := projectArgs(project)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO projects (
			category, utility, substation, date_created, order_number,
			fat_date, landing, status, progress, lead, description, comments,
			milestones, punch_list
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&project.ID); err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

func (r *projectRepository) Update(ctx context.Context, project *models.Project) error {
	args, err := projectArgs(project)
	if err != nil {
		return err
	}

	query := `
		UPDATE projects SET
			category = $1, utility = $2, substation = $3, date_created = $4,
			order_number = $5, fat_date = $6, landing = $7, status = $8,
			progress = $9, lead = $10, description = $11, comments = $12,
			milestones = $13, punch_list = $14, updated_at = NOW()
		WHERE id = $15`

	result, err := r.db.ExecContext(ctx, query, append(args, project.ID)...)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	if n == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

func (r *projectRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if n == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

func (r *projectRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM projects").Scan(&count); err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}
	return count, nil
}
