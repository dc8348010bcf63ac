package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"projectcenter/internal/milestone"
	"projectcenter/internal/models"
)

// projectColumns is the full column list in scan order. Every snake_case to
// camelCase translation and every default for a missing column lives in this
// file.
const projectColumns = `id, category, utility, substation, date_created, order_number,
			fat_date, landing, status, progress, lead, description, comments,
			milestones, punch_list`

type projectRow struct {
	ID          int64
	Category    string
	Utility     string
	Substation  string
	DateCreated sql.NullString
	OrderNumber sql.NullString
	FatDate     sql.NullString
	Landing     sql.NullString
	Status      string
	Progress    sql.NullInt64
	Lead        sql.NullString
	Description sql.NullString
	Comments    sql.NullString
	Milestones  []byte
	PunchList   []byte
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProject(s scanner) (*models.Project, error) {
	var row projectRow
	if err := s.Scan(
		&row.ID, &row.Category, &row.Utility, &row.Substation, &row.DateCreated,
		&row.OrderNumber, &row.FatDate, &row.Landing, &row.Status, &row.Progress,
		&row.Lead, &row.Description, &row.Comments, &row.Milestones, &row.PunchList,
	); err != nil {
		return nil, err
	}
	return row.toProject()
}

func (r *projectRow) toProject() (*models.Project, error) {
	p := &models.Project{
		ID:          r.ID,
		Category:    models.ProjectCategory(r.Category),
		Utility:     r.Utility,
		Substation:  r.Substation,
		DateCreated: r.DateCreated.String,
		Order:       r.OrderNumber.String,
		FatDate:     orDefault(r.FatDate, models.DefaultFatDate),
		Landing:     orDefault(r.Landing, models.DefaultLanding),
		Status:      models.ProjectStatus(r.Status),
		Progress:    int(r.Progress.Int64),
		Lead:        orDefault(r.Lead, models.DefaultLead),
		Description: r.Description.String,
		Comments:    r.Comments.String,
		Milestones:  milestone.NewSet(),
	}

	if len(r.Milestones) > 0 {
		if err := json.Unmarshal(r.Milestones, &p.Milestones); err != nil {
			return nil, fmt.Errorf("unmarshal milestones for project %d: %w", r.ID, err)
		}
	}
	if len(r.PunchList) > 0 {
		if err := json.Unmarshal(r.PunchList, &p.PunchList); err != nil {
			return nil, fmt.Errorf("unmarshal punch list for project %d: %w", r.ID, err)
		}
	}
	if p.PunchList == nil {
		p.PunchList = []models.PunchListItem{}
	}
	return p, nil
}

// projectArgs returns the writable columns in the order used by insert and
// update statements.
func projectArgs(p *models.Project) ([]any, error) {
	milestonesJSON, err := json.Marshal(p.Milestones)
	if err != nil {
		return nil, fmt.Errorf("marshal milestones: %w", err)
	}
	punchList := p.PunchList
	if punchList == nil {
		punchList = []models.PunchListItem{}
	}
	punchListJSON, err := json.Marshal(punchList)
	if err != nil {
		return nil, fmt.Errorf("marshal punch list: %w", err)
	}
	return []any{
		string(p.Category), p.Utility, p.Substation, p.DateCreated, p.Order,
		p.FatDate, p.Landing, string(p.Status), p.Progress, p.Lead,
		p.Description, p.Comments, milestonesJSON, punchListJSON,
	}, nil
}

func orDefault(v sql.NullString, def string) string {
	if !v.Valid || v.String == "" {
		return def
	}
	return v.String
}
