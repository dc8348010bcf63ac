// Package seed loads starter projects from a YAML file into an empty store.
package seed

import (
	"context"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
	"projectcenter/internal/interfaces"
	"projectcenter/internal/milestone"
	"projectcenter/internal/models"
)

type file struct {
	Projects []record `yaml:"projects"`
}

type record struct {
	Category    string         `yaml:"category"`
	Utility     string         `yaml:"utility"`
	Substation  string         `yaml:"substation"`
	DateCreated string         `yaml:"date_created"`
	Order       string         `yaml:"order"`
	FatDate     string         `yaml:"fat_date"`
	Landing     string         `yaml:"landing"`
	Status      string         `yaml:"status"`
	Progress    int            `yaml:"progress"`
	Lead        string         `yaml:"lead"`
	Description string         `yaml:"description"`
	Comments    string         `yaml:"comments"`
	Milestones  map[string]any `yaml:"milestones"`
}

// Load reads and parses a seed file.
func Load(path string) ([]models.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}

// Parse turns seed YAML into projects. Milestone values may be legacy
// booleans or status names.
func Parse(data []byte) ([]models.Project, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	projects := make([]models.Project, 0, len(f.Projects))
	for i, r := range f.Projects {
		p, err := r.project()
		if err != nil {
			return nil, fmt.Errorf("seed project %d: %w", i+1, err)
		}
		projects = append(projects, p)
	}
	return projects, nil
}

func (r record) project() (models.Project, error) {
	if r.Utility == "" || r.Substation == "" {
		return models.Project{}, fmt.Errorf("utility and substation are required")
	}

	p := models.Project{
		Category:    models.ProjectCategory(r.Category),
		Utility:     r.Utility,
		Substation:  r.Substation,
		DateCreated: r.DateCreated,
		Order:       r.Order,
		FatDate:     or(r.FatDate, models.DefaultFatDate),
		Landing:     or(r.Landing, models.DefaultLanding),
		Status:      models.ProjectStatus(or(r.Status, string(models.StatusActive))),
		Progress:    r.Progress,
		Lead:        or(r.Lead, models.DefaultLead),
		Description: r.Description,
		Comments:    r.Comments,
		Milestones:  milestone.NewSet(),
		PunchList:   []models.PunchListItem{},
	}

	for key, raw := range r.Milestones {
		stage, err := milestone.ParseStage(key)
		if err != nil {
			return models.Project{}, err
		}
		if raw == nil {
			continue
		}
		status, err := milestone.ParseStatus(fmt.Sprint(raw))
		if err != nil {
			return models.Project{}, err
		}
		if p.Milestones, err = p.Milestones.With(stage, status); err != nil {
			return models.Project{}, err
		}
	}
	return p, nil
}

// Apply inserts projects only when the store holds none. It returns how many
// were inserted.
func Apply(ctx context.Context, repo interfaces.ProjectRepository, projects []models.Project) (int, error) {
	n, err := repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	for i := range projects {
		if err := repo.Create(ctx, &projects[i]); err != nil {
			return i, fmt.Errorf("seed %s: %w", projects[i].Info(), err)
		}
	}
	log.Printf("Seeded %d projects", len(projects))
	return len(projects), nil
}

func or(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
