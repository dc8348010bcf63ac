package models

import (
	"time"

	"projectcenter/internal/milestone"
)

type ProjectCategory string

const (
	CategoryPumping      ProjectCategory = "Pumping"
	CategoryFieldService ProjectCategory = "Field Service"
	CategoryEHV          ProjectCategory = "EHV"
)

type ProjectStatus string

const (
	StatusActive   ProjectStatus = "Active"
	StatusCritical ProjectStatus = "Critical"
	StatusLate     ProjectStatus = "Late"
	StatusDone     ProjectStatus = "Done"

	// StatusFAT only appears on rows written before FAT became a milestone.
	StatusFAT ProjectStatus = "FAT"
)

const (
	DefaultFatDate = "N/A"
	DefaultLanding = "TBD"
	DefaultLead    = "TBD"

	// DateCreatedLayout matches the short US date the dashboard has always stored.
	DateCreatedLayout = "1/2/2006"
)

type Project struct {
	ID          int64           `json:"id"`
	Category    ProjectCategory `json:"category"`
	Utility     string          `json:"utility"`
	Substation  string          `json:"substation"`
	DateCreated string          `json:"dateCreated"`
	Order       string          `json:"order"`
	FatDate     string          `json:"fatDate"`
	Landing     string          `json:"landing"`
	Status      ProjectStatus   `json:"status"`
	Progress    int             `json:"progress"`
	Lead        string          `json:"lead"`
	Description string          `json:"description"`
	Comments    string          `json:"comments"`
	Milestones  milestone.Set   `json:"milestones"`
	PunchList   []PunchListItem `json:"punchList,omitempty"`
}

// Info is the "utility - substation" label frozen into change log entries.
func (p *Project) Info() string {
	return p.Utility + " - " + p.Substation
}

// HasOpenPunchList reports whether FAT is completed and at least one punch
// list item exists.
func (p *Project) HasOpenPunchList() bool {
	return p.Milestones.FAT.Normalized() == milestone.Completed && len(p.PunchList) > 0
}

// PunchItem returns the index of the item with the given id, or -1.
func (p *Project) PunchItem(id string) int {
	for i := range p.PunchList {
		if p.PunchList[i].ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy so snapshots never share punch list storage.
func (p Project) Clone() Project {
	if p.PunchList != nil {
		items := make([]PunchListItem, len(p.PunchList))
		for i, item := range p.PunchList {
			items[i] = item.Clone()
		}
		p.PunchList = items
	}
	return p
}

type PunchListItem struct {
	ID          string                `json:"id"`
	Description string                `json:"description"`
	Completed   bool                  `json:"completed"`
	Attachments []PunchListAttachment `json:"attachments,omitempty"`
}

func (i PunchListItem) Clone() PunchListItem {
	if i.Attachments != nil {
		i.Attachments = append([]PunchListAttachment(nil), i.Attachments...)
	}
	return i
}

type AttachmentType string

const (
	AttachmentImage AttachmentType = "image"
	AttachmentVideo AttachmentType = "video"
)

type PunchListAttachment struct {
	ID         string         `json:"id"`
	URL        string         `json:"url"`
	Path       string         `json:"path"`
	Type       AttachmentType `json:"type"`
	FileName   string         `json:"fileName"`
	FileSize   int64          `json:"fileSize"`
	UploadedAt time.Time      `json:"uploadedAt"`
	UploadedBy string         `json:"uploadedBy"`
}

type CreateProjectRequest struct {
	Category    ProjectCategory `json:"category" validate:"required,oneof=Pumping 'Field Service' EHV"`
	Utility     string          `json:"utility" validate:"required"`
	Substation  string          `json:"substation" validate:"required"`
	Order       string          `json:"order"`
	FatDate     string          `json:"fatDate"`
	Landing     string          `json:"landing"`
	Status      ProjectStatus   `json:"status" validate:"omitempty,oneof=Active Critical Late Done"`
	Progress    int             `json:"progress" validate:"min=0,max=100"`
	Lead        string          `json:"lead"`
	Description string          `json:"description"`
	Comments    string          `json:"comments"`
	Milestones  *milestone.Set  `json:"milestones,omitempty"`
}

// UpdateProjectRequest carries the editable fields of a draft. Nil fields are
// left unchanged.
type UpdateProjectRequest struct {
	Category    *ProjectCategory `json:"category,omitempty" validate:"omitempty,oneof=Pumping 'Field Service' EHV"`
	Utility     *string          `json:"utility,omitempty"`
	Substation  *string          `json:"substation,omitempty"`
	Order       *string          `json:"order,omitempty"`
	FatDate     *string          `json:"fatDate,omitempty"`
	Landing     *string          `json:"landing,omitempty"`
	Status      *ProjectStatus   `json:"status,omitempty" validate:"omitempty,oneof=Active Critical Late FAT Done"`
	Progress    *int             `json:"progress,omitempty" validate:"omitempty,min=0,max=100"`
	Lead        *string          `json:"lead,omitempty"`
	Description *string          `json:"description,omitempty"`
	Comments    *string          `json:"comments,omitempty"`
}

// Apply copies every non-nil field onto p.
func (r *UpdateProjectRequest) Apply(p *Project) {
	if r.Category != nil {
		p.Category = *r.Category
	}
	if r.Utility != nil {
		p.Utility = *r.Utility
	}
	if r.Substation != nil {
		p.Substation = *r.Substation
	}
	if r.Order != nil {
		p.Order = *r.Order
	}
	if r.FatDate != nil {
		p.FatDate = *r.FatDate
	}
	if r.Landing != nil {
		p.Landing = *r.Landing
	}
	if r.Status != nil {
		p.Status = *r.Status
	}
	if r.Progress != nil {
		p.Progress = *r.Progress
	}
	if r.Lead != nil {
		p.Lead = *r.Lead
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	if r.Comments != nil {
		p.Comments = *r.Comments
	}
}

type AddPunchItemRequest struct {
	Description string `json:"description" validate:"required"`
}

type ProjectFilter struct {
	Category ProjectCategory
	Status   ProjectStatus
	Search   string
}

type DashboardStats struct {
	Total     int `json:"total"`
	Critical  int `json:"critical"`
	FATReady  int `json:"fatReady"`
	ShipReady int `json:"shipReady"`
	Done      int `json:"done"`
	PunchList int `json:"punchList"`
}
