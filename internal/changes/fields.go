package changes

import (
	"fmt"
	"strconv"
	"strings"

	"projectcenter/internal/milestone"
	"projectcenter/internal/models"
)

type field struct {
	name  string
	value func(p *models.Project) string
}

// tracked is the allow-list, in output order. Category, utility, substation,
// dateCreated and order are written on update but never diffed.
var tracked = []field{
	{"status", func(p *models.Project) string { return string(p.Status) }},
	{"progress", func(p *models.Project) string { return strconv.Itoa(p.Progress) }},
	{"lead", func(p *models.Project) string { return p.Lead }},
	{"fatDate", func(p *models.Project) string { return p.FatDate }},
	{"landing", func(p *models.Project) string { return p.Landing }},
	{"description", func(p *models.Project) string { return p.Description }},
	{"comments", func(p *models.Project) string { return p.Comments }},
}

// Fields diffs the tracked top-level fields.
func Fields(original, updated models.Project) []string {
	var diffs []string
	for _, f := range tracked {
		before, after := f.value(&original), f.value(&updated)
		if before == after {
			continue
		}
		diffs = append(diffs, fmt.Sprintf(`%s: "%s" -> "%s"`, label(f.name), before, after))
	}
	return diffs
}

// Milestones diffs each stage by normalized status, in pipeline order.
func Milestones(original, updated milestone.Set) []string {
	var diffs []string
	for _, st := range milestone.Stages {
		before := original.Status(st).Normalized()
		after := updated.Status(st).Normalized()
		if before == after {
			continue
		}
		diffs = append(diffs, fmt.Sprintf("%s: %s -> %s", strings.ToUpper(string(st)), before.Label(), after.Label()))
	}
	return diffs
}

func label(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
