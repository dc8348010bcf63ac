package tracker

import (
	"context"
	"strings"
	"time"

	"projectcenter/internal/milestone"
	"projectcenter/internal/models"
)

// Draft is an open edit session on one project. Original is frozen when the
// draft opens so that saving logs only the net change, however many steps the
// editor took to get there.
type Draft struct {
	ID       string         `json:"id"`
	Owner    string         `json:"owner"`
	OpenedAt time.Time      `json:"openedAt"`
	Original models.Project `json:"original"`
	Project  models.Project `json:"project"`
}

func (d *Draft) clone() *Draft {
	c := *d
	c.Original = d.Original.Clone()
	c.Project = d.Project.Clone()
	return &c
}

// PunchListUnlocked reports whether the draft may add punch list items.
func (d *Draft) PunchListUnlocked() bool {
	return d.Project.Milestones.PunchListUnlocked()
}

func (t *Tracker) OpenDraft(actor string, projectID int64) (*Draft, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexOf(projectID)
	if i < 0 {
		return nil, ErrProjectNotFound
	}
	d := &Draft{
		ID:       t.NewID(),
		Owner:    actor,
		OpenedAt: t.Now().UTC(),
		Original: t.projects[i].Clone(),
		Project:  t.projects[i].Clone(),
	}
	if d.Project.PunchList == nil {
		d.Project.PunchList = []models.PunchListItem{}
	}
	t.drafts[d.ID] = d
	return d.clone(), nil
}

func (t *Tracker) Draft(actor, draftID string) (*Draft, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	d, err := t.draft(actor, draftID)
	if err != nil {
		return nil, err
	}
	return d.clone(), nil
}

// UpdateDraft applies a field patch to the draft only.
func (t *Tracker) UpdateDraft(actor, draftID string, patch models.UpdateProjectRequest) (*Draft, error) {
	if err := validatePatch(patch); err != nil {
		return nil, err
	}
	return t.editDraft(actor, draftID, func(d *Draft) error {
		patch.Apply(&d.Project)
		return nil
	})
}

// AdvanceMilestone moves one stage a single step around its cycle.
func (t *Tracker) AdvanceMilestone(actor, draftID string, stage milestone.Stage) (*Draft, error) {
	return t.editDraft(actor, draftID, func(d *Draft) error {
		next, err := d.Project.Milestones.Advance(stage)
		if err != nil {
			return invalid("stage", err.Error())
		}
		d.Project.Milestones = next
		return nil
	})
}

func (t *Tracker) AddPunchItem(actor, draftID, description string) (*Draft, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, invalid("description", "is required")
	}
	return t.editDraft(actor, draftID, func(d *Draft) error {
		if !d.PunchListUnlocked() {
			return ErrPunchListLocked
		}
		d.Project.PunchList = append(d.Project.PunchList, models.PunchListItem{
			ID:          t.NewID(),
			Description: description,
		})
		return nil
	})
}

func (t *Tracker) RemovePunchItem(actor, draftID, itemID string) (*Draft, error) {
	return t.editDraft(actor, draftID, func(d *Draft) error {
		j := d.Project.PunchItem(itemID)
		if j < 0 {
			return ErrPunchItemNotFound
		}
		d.Project.PunchList = append(d.Project.PunchList[:j], d.Project.PunchList[j+1:]...)
		return nil
	})
}

func (t *Tracker) ToggleDraftPunchItem(actor, draftID, itemID string) (*Draft, error) {
	return t.editDraft(actor, draftID, func(d *Draft) error {
		j := d.Project.PunchItem(itemID)
		if j < 0 {
			return ErrPunchItemNotFound
		}
		d.Project.PunchList[j].Completed = !d.Project.PunchList[j].Completed
		return nil
	})
}

// SaveDraft writes the draft and logs the diff against the snapshot taken when
// it was opened. The draft is closed only when the write succeeds.
func (t *Tracker) SaveDraft(ctx context.Context, actor, draftID string) (*models.Project, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	d, err := t.draft(actor, draftID)
	if err != nil {
		return nil, err
	}
	i := t.indexOf(d.Project.ID)
	if i < 0 {
		return nil, ErrProjectNotFound
	}
	updated := d.Project.Clone()
	if err := t.guardNewPunchItems(&t.projects[i], &updated); err != nil {
		return nil, err
	}
	saved, err := t.save(ctx, actor, d.Original, updated)
	if err != nil {
		return nil, err
	}
	delete(t.drafts, draftID)
	return saved, nil
}

func (t *Tracker) DiscardDraft(actor, draftID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, err := t.draft(actor, draftID); err != nil {
		return err
	}
	delete(t.drafts, draftID)
	return nil
}

// editDraft runs fn on a scratch copy and keeps the result only if fn succeeds.
func (t *Tracker) editDraft(actor, draftID string, fn func(*Draft) error) (*Draft, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	d, err := t.draft(actor, draftID)
	if err != nil {
		return nil, err
	}
	scratch := d.clone()
	if err := fn(scratch); err != nil {
		return nil, err
	}
	t.drafts[draftID] = scratch
	return scratch.clone(), nil
}

// draft must be called with t.mu held. Drafts belonging to someone else are
// reported as missing.
func (t *Tracker) draft(actor, draftID string) (*Draft, error) {
	d, ok := t.drafts[draftID]
	if !ok || d.Owner != actor {
		return nil, ErrDraftNotFound
	}
	return d, nil
}
