package changes

import (
	"fmt"

	"projectcenter/internal/models"
)

// PunchList compares two punch lists by item id. All additions come first (in
// updated order), then removals (in original order), then completion toggles
// for items present in both lists.
func PunchList(original, updated []models.PunchListItem) []string {
	before := index(original)
	after := index(updated)

	var diffs []string
	for _, item := range updated {
		if _, ok := before[item.ID]; !ok {
			diffs = append(diffs, added(item))
		}
	}
	for _, item := range original {
		if _, ok := after[item.ID]; !ok {
			diffs = append(diffs, fmt.Sprintf(`Punch List: Removed "%s"`, item.Description))
		}
	}
	for _, item := range updated {
		prev, ok := before[item.ID]
		if !ok || prev.Completed == item.Completed {
			continue
		}
		diffs = append(diffs, Toggled(item))
	}
	return diffs
}

func added(item models.PunchListItem) string {
	return fmt.Sprintf(`Punch List: Added "%s"`, item.Description)
}

// Toggled describes item using its current description and completed flag.
func Toggled(item models.PunchListItem) string {
	state := "PENDING"
	if item.Completed {
		state = "COMPLETED"
	}
	return fmt.Sprintf(`Punch List: "%s" marked as %s`, item.Description, state)
}

// NeedsPunchList returns the projects whose FAT milestone is completed and
// that have at least one punch list item, preserving input order.
func NeedsPunchList(projects []models.Project) []models.Project {
	var out []models.Project
	for i := range projects {
		if projects[i].HasOpenPunchList() {
			out = append(out, projects[i])
		}
	}
	return out
}

func index(items []models.PunchListItem) map[string]models.PunchListItem {
	m := make(map[string]models.PunchListItem, len(items))
	for _, item := range items {
		m[item.ID] = item
	}
	return m
}
