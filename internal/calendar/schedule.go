package calendar

import (
	"sort"

	"projectcenter/internal/models"
)

type EventKind string

const (
	EventLanding EventKind = "landing"
	EventFAT     EventKind = "fat"
)

type Event struct {
	ProjectID   int64     `json:"projectId"`
	ProjectInfo string    `json:"projectInfo"`
	Category    string    `json:"category"`
	Kind        EventKind `json:"kind"`
	Raw         string    `json:"raw"`
	Date        *Date     `json:"date,omitempty"`
}

type MonthBucket struct {
	Month  int     `json:"month"`
	Events []Event `json:"events"`
}

// YearView holds twelve month buckets plus the events whose dates could not
// be parsed.
type YearView struct {
	Year   int           `json:"year"`
	Months []MonthBucket `json:"months"`
	Other  []Event       `json:"other"`
}

type MonthView struct {
	Year   int     `json:"year"`
	Month  int     `json:"month"`
	Events []Event `json:"events"`
}

// Year builds the yearly schedule. Placeholder dates are skipped entirely;
// unparseable ones land in Other regardless of year.
func Year(projects []models.Project, year int) YearView {
	v := YearView{Year: year, Months: make([]MonthBucket, 12), Other: []Event{}}
	for m := range v.Months {
		v.Months[m] = MonthBucket{Month: m, Events: []Event{}}
	}
	for _, ev := range events(projects) {
		switch {
		case ev.Date == nil:
			v.Other = append(v.Other, ev)
		case ev.Date.Year == year:
			v.Months[ev.Date.Month].Events = append(v.Months[ev.Date.Month].Events, ev)
		}
	}
	return v
}

// Month returns the events that fall in one month, ordered by day.
func Month(projects []models.Project, year, month int) MonthView {
	v := MonthView{Year: year, Month: month, Events: []Event{}}
	for _, ev := range events(projects) {
		if ev.Date != nil && ev.Date.Year == year && ev.Date.Month == month {
			v.Events = append(v.Events, ev)
		}
	}
	sortByDay(v.Events)
	return v
}

func events(projects []models.Project) []Event {
	var out []Event
	for i := range projects {
		p := &projects[i]
		for _, src := range []struct {
			kind EventKind
			raw  string
		}{{EventLanding, p.Landing}, {EventFAT, p.FatDate}} {
			if IsPlaceholder(src.raw) {
				continue
			}
			ev := Event{
				ProjectID:   p.ID,
				ProjectInfo: p.Info(),
				Category:    string(p.Category),
				Kind:        src.kind,
				Raw:         src.raw,
			}
			if d, ok := Classify(src.raw); ok {
				d := d
				ev.Date = &d
			}
			out = append(out, ev)
		}
	}
	return out
}

func sortByDay(evs []Event) {
	sort.SliceStable(evs, func(i, j int) bool { return evs[i].Date.Day < evs[j].Date.Day })
}
