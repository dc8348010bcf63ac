// Package tracker owns the live project collection and every operation that
// changes it. Each write goes to the persistence backend first; memory and the
// change log follow only once the backend has accepted it.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"projectcenter/internal/audit"
	"projectcenter/internal/calendar"
	"projectcenter/internal/changes"
	"projectcenter/internal/interfaces"
	"projectcenter/internal/milestone"
	"projectcenter/internal/models"
)

// DefaultMaxAttachments is the per-item attachment cap when none is configured.
const DefaultMaxAttachments = 5

type Tracker struct {
	repo           interfaces.ProjectRepository
	log            *audit.Log
	blobs          interfaces.BlobStore
	maxAttachments int

	mu       sync.RWMutex
	projects []models.Project
	drafts   map[string]*Draft

	Now   func() time.Time
	NewID func() string
}

func New(repo interfaces.ProjectRepository, changeLog *audit.Log, blobs interfaces.BlobStore, maxAttachments int) *Tracker {
	if maxAttachments <= 0 {
		maxAttachments = DefaultMaxAttachments
	}
	return &Tracker{
		repo:           repo,
		log:            changeLog,
		blobs:          blobs,
		maxAttachments: maxAttachments,
		drafts:         make(map[string]*Draft),
		Now:            time.Now,
		NewID:          uuid.NewString,
	}
}

// Load replaces the in-memory state with what the backend holds.
func (t *Tracker) Load(ctx context.Context) error {
	projects, err := t.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("load projects: %w", err)
	}
	if err := t.log.Load(ctx); err != nil {
		return err
	}

	t.mu.Lock()
	t.projects = projects
	t.drafts = make(map[string]*Draft)
	t.mu.Unlock()

	log.Printf("Loaded %d projects and %d change log entries", len(projects), len(t.log.Entries()))
	return nil
}

// Projects returns deep copies of the projects matching filter, ordered by id.
func (t *Tracker) Projects(filter models.ProjectFilter) []models.Project {
	t.mu.RLock()
	defer t.mu.RUnlock()

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	out := []models.Project{}
	for i := range t.projects {
		p := &t.projects[i]
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Utility), search) &&
			!strings.Contains(strings.ToLower(p.Substation), search) &&
			!strings.Contains(p.Order, strings.TrimSpace(filter.Search)) {
			continue
		}
		out = append(out, p.Clone())
	}
	return out
}

func (t *Tracker) Project(id int64) (models.Project, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	i := t.indexOf(id)
	if i < 0 {
		return models.Project{}, ErrProjectNotFound
	}
	return t.projects[i].Clone(), nil
}

// Create inserts a new project with defaults filled in and logs its creation.
func (t *Tracker) Create(ctx context.Context, actor string, req models.CreateProjectRequest) (*models.Project, error) {
	if strings.TrimSpace(req.Utility) == "" {
		return nil, invalid("utility", "is required")
	}
	if strings.TrimSpace(req.Substation) == "" {
		return nil, invalid("substation", "is required")
	}
	if req.Progress < 0 || req.Progress > 100 {
		return nil, invalid("progress", "must be between 0 and 100")
	}

	p := models.Project{
		Category:    req.Category,
		Utility:     req.Utility,
		Substation:  req.Substation,
		DateCreated: t.Now().Format(models.DateCreatedLayout),
		Order:       req.Order,
		FatDate:     orDefault(req.FatDate, models.DefaultFatDate),
		Landing:     orDefault(req.Landing, models.DefaultLanding),
		Status:      req.Status,
		Progress:    req.Progress,
		Lead:        orDefault(req.Lead, models.DefaultLead),
		Description: req.Description,
		Comments:    req.Comments,
		Milestones:  milestone.NewSet(),
		PunchList:   []models.PunchListItem{},
	}
	if p.Status == "" {
		p.Status = models.StatusActive
	}
	if req.Milestones != nil {
		p.Milestones = req.Milestones.Normalized()
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.repo.Create(ctx, &p); err != nil {
		log.Printf("Error creating project %q: %v", p.Info(), err)
		return nil, &BackendError{Op: "create project", Err: err}
	}
	t.projects = append(t.projects, p)

	summary := fmt.Sprintf("Order: %s | Category: %s | Status: %s", p.Order, p.Category, p.Status)
	t.appendLog(ctx, models.ActionCreated, actor, &p, summary)

	created := p.Clone()
	return &created, nil
}

// Save diffs updated against the stored project and writes it. An empty diff
// still rewrites the record but logs nothing. New punch list items are only
// accepted once FAT is completed.
func (t *Tracker) Save(ctx context.Context, actor string, updated models.Project) (*models.Project, error) {
	if err := validateProject(&updated); err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexOf(updated.ID)
	if i < 0 {
		return nil, ErrProjectNotFound
	}
	original := t.projects[i]

	updated.Milestones = updated.Milestones.Normalized()
	updated.DateCreated = original.DateCreated
	if err := t.guardNewPunchItems(&original, &updated); err != nil {
		return nil, err
	}
	return t.save(ctx, actor, original, updated)
}

// guardNewPunchItems rejects items that are not yet stored unless FAT is
// completed in the version being saved, and gives them ids. Both the full
// replace and the draft save go through here.
func (t *Tracker) guardNewPunchItems(stored, updated *models.Project) error {
	for j := range updated.PunchList {
		item := &updated.PunchList[j]
		if item.ID != "" && stored.PunchItem(item.ID) >= 0 {
			continue
		}
		if !updated.Milestones.Normalized().PunchListUnlocked() {
			return ErrPunchListLocked
		}
		if item.ID == "" {
			item.ID = t.NewID()
		}
	}
	return nil
}

// Update applies a field patch to the stored project and saves it.
func (t *Tracker) Update(ctx context.Context, actor string, id int64, patch models.UpdateProjectRequest) (*models.Project, error) {
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexOf(id)
	if i < 0 {
		return nil, ErrProjectNotFound
	}
	updated := t.projects[i].Clone()
	patch.Apply(&updated)
	return t.save(ctx, actor, t.projects[i], updated)
}

// save must be called with t.mu held. original is the snapshot the caller
// started editing from, which may be older than what is stored now.
func (t *Tracker) save(ctx context.Context, actor string, original, updated models.Project) (*models.Project, error) {
	i := t.indexOf(updated.ID)
	if i < 0 {
		return nil, ErrProjectNotFound
	}
	if updated.PunchList == nil {
		updated.PunchList = []models.PunchListItem{}
	}
	updated.Milestones = updated.Milestones.Normalized()

	diffs := changes.Project(original, updated)

	if err := t.repo.Update(ctx, &updated); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		log.Printf("Error updating project %d: %v", updated.ID, err)
		return nil, &BackendError{Op: "update project", Err: err}
	}
	t.projects[i] = updated.Clone()

	t.appendLog(ctx, models.ActionUpdated, actor, &updated, changes.Join(diffs))

	saved := updated.Clone()
	return &saved, nil
}

// Delete removes the project from the backend, logs a frozen summary, and only
// then drops it from the collection along with any open drafts of it.
func (t *Tracker) Delete(ctx context.Context, actor string, id int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexOf(id)
	if i < 0 {
		return ErrProjectNotFound
	}
	p := t.projects[i]

	if err := t.repo.Delete(ctx, id); err != nil && !errors.Is(err, interfaces.ErrNotFound) {
		log.Printf("Error deleting project %d: %v", id, err)
		return &BackendError{Op: "delete project", Err: err}
	}

	summary := fmt.Sprintf(`Deleted "%s" (Order: %s)`, p.Info(), p.Order)
	t.appendLog(ctx, models.ActionDeleted, actor, &p, summary)

	t.projects = append(t.projects[:i], t.projects[i+1:]...)
	for draftID, d := range t.drafts {
		if d.Project.ID == p.ID {
			delete(t.drafts, draftID)
		}
	}
	return nil
}

// TogglePunchItem flips one item outside of any draft and logs it on its own.
func (t *Tracker) TogglePunchItem(ctx context.Context, actor string, projectID int64, itemID string) (*models.Project, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexOf(projectID)
	if i < 0 {
		return nil, ErrProjectNotFound
	}
	updated := t.projects[i].Clone()
	j := updated.PunchItem(itemID)
	if j < 0 {
		return nil, ErrPunchItemNotFound
	}
	updated.PunchList[j].Completed = !updated.PunchList[j].Completed

	if err := t.repo.Update(ctx, &updated); err != nil {
		log.Printf("Error toggling punch item %s on project %d: %v", itemID, projectID, err)
		return nil, &BackendError{Op: "update punch list", Err: err}
	}
	t.projects[i] = updated.Clone()

	t.appendLog(ctx, models.ActionPunchList, actor, &updated, changes.Toggled(updated.PunchList[j]))

	out := updated.Clone()
	return &out, nil
}

// NeedsPunchList returns the projects with FAT completed and open punch items.
func (t *Tracker) NeedsPunchList() []models.Project {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := []models.Project{}
	for _, p := range changes.NeedsPunchList(t.projects) {
		out = append(out, p.Clone())
	}
	return out
}

func (t *Tracker) Stats() models.DashboardStats {
	t.mu.RLock()
	defer t.mu.RUnlock()

	stats := models.DashboardStats{Total: len(t.projects)}
	for i := range t.projects {
		p := &t.projects[i]
		m := p.Milestones
		switch p.Status {
		case models.StatusCritical:
			stats.Critical++
		case models.StatusDone:
			stats.Done++
		}
		if m.Fabrication.Normalized() == milestone.Completed && m.FAT.Normalized() != milestone.Completed {
			stats.FATReady++
		}
		if m.FAT.Normalized() == milestone.Completed && m.Ship.Normalized() != milestone.Completed {
			stats.ShipReady++
		}
		if p.HasOpenPunchList() {
			stats.PunchList++
		}
	}
	return stats
}

// ChangeLog returns every entry, newest first. A positive projectID narrows it
// to one project.
func (t *Tracker) ChangeLog(projectID int64) []models.ChangeLogEntry {
	if projectID > 0 {
		return t.log.ForProject(projectID)
	}
	return t.log.Entries()
}

func (t *Tracker) Year(year int) calendar.YearView {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return calendar.Year(t.projects, year)
}

func (t *Tracker) Month(year, month int) calendar.MonthView {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return calendar.Month(t.projects, year, month)
}

func (t *Tracker) indexOf(id int64) int {
	for i := range t.projects {
		if t.projects[i].ID == id {
			return i
		}
	}
	return -1
}

// appendLog writes a change log entry. A failure here is reported on the
// diagnostic log only; the project write it describes already succeeded.
func (t *Tracker) appendLog(ctx context.Context, action, actor string, p *models.Project, summary string) {
	_, _ = t.log.Append(ctx, audit.Record{
		Action:      action,
		UserEmail:   actor,
		ProjectID:   p.ID,
		ProjectInfo: p.Info(),
		Changes:     summary,
	})
}

func validateProject(p *models.Project) error {
	if strings.TrimSpace(p.Utility) == "" {
		return invalid("utility", "is required")
	}
	if strings.TrimSpace(p.Substation) == "" {
		return invalid("substation", "is required")
	}
	if p.Progress < 0 || p.Progress > 100 {
		return invalid("progress", "must be between 0 and 100")
	}
	for _, item := range p.PunchList {
		if strings.TrimSpace(item.Description) == "" {
			return invalid("punchList", "item description is required")
		}
	}
	return nil
}

func validatePatch(patch models.UpdateProjectRequest) error {
	if patch.Progress != nil && (*patch.Progress < 0 || *patch.Progress > 100) {
		return invalid("progress", "must be between 0 and 100")
	}
	if patch.Utility != nil && strings.TrimSpace(*patch.Utility) == "" {
		return invalid("utility", "cannot be empty")
	}
	if patch.Substation != nil && strings.TrimSpace(*patch.Substation) == "" {
		return invalid("substation", "cannot be empty")
	}
	return nil
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
