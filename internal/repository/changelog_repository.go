package repository

import (
	"context"
	"database/sql"
	"fmt"

	"projectcenter/internal/interfaces"
	"projectcenter/internal/models"
)

type changeLogRepository struct {
	db *sql.DB
}

func NewChangeLogRepository(db *sql.DB) interfaces.ChangeLogRepository {
	return &changeLogRepository{db: db}
}

func (r *changeLogRepository) List(ctx context.Context) ([]models.ChangeLogEntry, error) {
	query := `
		SELECT id, timestamp, user_email, project_id, project_info, action, changes, created_at
		FROM changelog
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list changelog: %w", err)
	}
	defer rows.Close()

	entries := []models.ChangeLogEntry{}
	for rows.Next() {
		var e models.ChangeLogEntry
		if err := rows.Scan(
			&e.ID, &e.Timestamp, &e.UserEmail, &e.ProjectID,
			&e.ProjectInfo, &e.Action, &e.Changes, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan changelog: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *changeLogRepository) Create(ctx context.Context, entry *models.ChangeLogEntry) error {
	query := `
		INSERT INTO changelog (
			id, timestamp, user_email, project_id, project_info, action, changes, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		entry.ID, entry.Timestamp, entry.UserEmail, entry.ProjectID,
		entry.ProjectInfo, entry.Action, entry.Changes, entry.CreatedAt,
	).Scan(&entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert changelog: %w", err)
	}
	return nil
}
