// Package changes computes the human-readable descriptions recorded in the
// change log when a project is saved. Every function here is pure.
package changes

import (
	"strings"

	"projectcenter/internal/models"
)

// Separator joins fragments into the single changes string of a log entry.
const Separator = " | "

// Project returns every fragment for a save: tracked fields first, then
// milestones, then punch list additions, removals and toggles.
func Project(original, updated models.Project) []string {
	diffs := Fields(original, updated)
	diffs = append(diffs, Milestones(original.Milestones, updated.Milestones)...)
	diffs = append(diffs, PunchList(original.PunchList, updated.PunchList)...)
	return diffs
}

func Join(diffs []string) string {
	return strings.Join(diffs, Separator)
}

// Split breaks a stored changes string back into its fragments without
// rewriting them.
func Split(changes string) []string {
	if changes == "" {
		return nil
	}
	return strings.Split(changes, Separator)
}
