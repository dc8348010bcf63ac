package seed

import (
	"context"
	"errors"
	"testing"

	"projectcenter/internal/milestone"
	"projectcenter/internal/models"
)

type countingRepo struct {
	count   int
	created []models.Project
	err     error
}

func (r *countingRepo) List(ctx context.Context) ([]models.Project, error) { return r.created, nil }
func (r *countingRepo) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	return nil, errors.New("not used")
}
func (r *countingRepo) Update(ctx context.Context, p *models.Project) error { return nil }
func (r *countingRepo) Delete(ctx context.Context, id int64) error          { return nil }
func (r *countingRepo) Count(ctx context.Context) (int, error)              { return r.count, r.err }
func (r *countingRepo) Create(ctx context.Context, p *models.Project) error {
	p.ID = int64(len(r.created) + 1)
	r.created = append(r.created, *p)
	return nil
}

const sample = `
projects:
  - category: Pumping
    utility: Tampa Bay Water
    substation: Morris Bridge
    order: "41903"
    milestones:
      design: true
      fab: stuck
      ship: false
  - category: EHV
    utility: TVA
    substation: East
    fat_date: Dec. 2025
    status: Late
`

func TestParse(t *testing.T) {
	projects, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects got %d", len(projects))
	}

	first := projects[0]
	if first.Milestones.Design != milestone.Completed || first.Milestones.Fabrication != milestone.Stuck {
		t.Fatalf("unexpected milestones %+v", first.Milestones)
	}
	if first.Milestones.Ship != milestone.NotStarted || first.Milestones.FAT != milestone.NotStarted {
		t.Fatalf("expected unset stages not started, got %+v", first.Milestones)
	}
	if first.FatDate != "N/A" || first.Landing != "TBD" || first.Lead != "TBD" || first.Status != models.StatusActive {
		t.Fatalf("expected defaults, got %+v", first)
	}
	if projects[1].FatDate != "Dec. 2025" || projects[1].Status != models.StatusLate {
		t.Fatalf("unexpected second project %+v", projects[1])
	}
}

func TestParseRejectsUnknownStage(t *testing.T) {
	_, err := Parse([]byte(`
projects:
  - utility: A
    substation: B
    milestones:
      paint: completed
`))
	if !errors.Is(err, milestone.ErrUnknownStage) {
		t.Fatalf("expected unknown stage error got %v", err)
	}
}

func TestParseRequiresNames(t *testing.T) {
	if _, err := Parse([]byte("projects:\n  - utility: A\n")); err == nil {
		t.Fatalf("expected error for missing substation")
	}
}

func TestApplyOnlyWhenEmpty(t *testing.T) {
	projects, _ := Parse([]byte(sample))

	full := &countingRepo{count: 3}
	n, err := Apply(context.Background(), full, projects)
	if err != nil || n != 0 || len(full.created) != 0 {
		t.Fatalf("expected no inserts into a populated store, got n=%d err=%v", n, err)
	}

	empty := &countingRepo{}
	n, err = Apply(context.Background(), empty, projects)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if n != 2 || empty.created[1].ID != 2 {
		t.Fatalf("expected 2 inserts, got %d %+v", n, empty.created)
	}
}
