// Package calendar places loosely formatted landing and FAT dates into
// month buckets for the schedule views.
package calendar

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Date is a parsed schedule date. Month is zero based (0 = January). Day is
// 15 when the source only named a month.
type Date struct {
	Month int `json:"month"`
	Year  int `json:"year"`
	Day   int `json:"day"`
}

const midMonth = 15

var months = []string{"jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "sep", "oct", "nov", "dec"}

// Matcher tries one input shape. ok is false when the shape does not apply.
type Matcher struct {
	Name  string
	Match func(s string) (d Date, ok bool)
}

// Matchers are tried in order and the first match wins.
var Matchers = []Matcher{
	{"month-year", matchMonthYear},
	{"month-short-year", matchMonthShortYear},
	{"numeric", matchNumeric},
	{"fallback", matchFallback},
}

// IsPlaceholder reports whether s means "no date" rather than a bad date.
func IsPlaceholder(s string) bool {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "N/A", "TBD":
		return true
	}
	return false
}

// Classify resolves s to a date. Placeholders and garbage both return false.
func Classify(s string) (Date, bool) {
	if IsPlaceholder(s) {
		return Date{}, false
	}
	s = strings.TrimSpace(s)
	for _, m := range Matchers {
		if d, ok := m.Match(s); ok {
			return d, true
		}
	}
	return Date{}, false
}

var (
	monthYearRe      = regexp.MustCompile(`^([A-Za-z]{3})\.?\s*(\d{4})$`)
	monthShortYearRe = regexp.MustCompile(`^([A-Za-z]{3})-(\d{2})$`)
	numericRe        = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4}|\d{2})$`)

	fallbackYearRe      = regexp.MustCompile(`(?:^|\D)(202[3-9])(?:\D|$)`)
	fallbackShortYearRe = regexp.MustCompile(`(?:^|\D)(2[3-9])(?:\D|$)`)
	fallbackMonthDayRe  = regexp.MustCompile(`(?:^|\D)(\d{1,2})/(\d{1,2})(?:\D|$)`)
)

func matchMonthYear(s string) (Date, bool) {
	m := monthYearRe.FindStringSubmatch(s)
	if m == nil {
		return Date{}, false
	}
	month, ok := monthIndex(m[1])
	if !ok {
		return Date{}, false
	}
	year, _ := strconv.Atoi(m[2])
	return Date{Month: month, Year: year, Day: midMonth}, true
}

func matchMonthShortYear(s string) (Date, bool) {
	m := monthShortYearRe.FindStringSubmatch(s)
	if m == nil {
		return Date{}, false
	}
	month, ok := monthIndex(m[1])
	if !ok {
		return Date{}, false
	}
	yy, _ := strconv.Atoi(m[2])
	return Date{Month: month, Year: 2000 + yy, Day: midMonth}, true
}

func matchNumeric(s string) (Date, bool) {
	m := numericRe.FindStringSubmatch(s)
	if m == nil {
		return Date{}, false
	}
	mm, _ := strconv.Atoi(m[1])
	dd, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	if mm < 1 || mm > 12 || dd < 1 || dd > 31 {
		return Date{}, false
	}
	if year < 100 {
		year += 2000
	}
	return dateOf(year, mm-1, dd), true
}

// matchFallback looks for a year between 2023 and 2029 anywhere in s, then a
// month from an MM/DD pair or a month name abbreviation.
func matchFallback(s string) (Date, bool) {
	month, day, rest := -1, midMonth, s
	if m := fallbackMonthDayRe.FindStringSubmatchIndex(s); m != nil {
		mm, _ := strconv.Atoi(s[m[2]:m[3]])
		dd, _ := strconv.Atoi(s[m[4]:m[5]])
		if mm >= 1 && mm <= 12 {
			month = mm - 1
			if dd >= 1 && dd <= 31 {
				day = dd
			}
			// keep the day out of the two-digit year search below
			rest = s[:m[2]] + " " + s[m[5]:]
		}
	}
	if month < 0 {
		month = monthByName(s)
	}
	if month < 0 {
		return Date{}, false
	}

	var year int
	if m := fallbackYearRe.FindStringSubmatch(rest); m != nil {
		year, _ = strconv.Atoi(m[1])
	} else if m := fallbackShortYearRe.FindStringSubmatch(rest); m != nil {
		yy, _ := strconv.Atoi(m[1])
		year = 2000 + yy
	} else {
		return Date{}, false
	}
	return dateOf(year, month, day), true
}

// dateOf rolls an out-of-range day into the following month, so 2/30/2025
// lands on March 2.
func dateOf(year, month, day int) Date {
	t := time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, time.UTC)
	return Date{Month: int(t.Month()) - 1, Year: t.Year(), Day: t.Day()}
}

func monthIndex(abbr string) (int, bool) {
	abbr = strings.ToLower(abbr)
	for i, m := range months {
		if m == abbr {
			return i, true
		}
	}
	return 0, false
}

// monthByName returns the month whose abbreviation appears earliest in s.
func monthByName(s string) int {
	lower := strings.ToLower(s)
	best, bestPos := -1, len(lower)
	for i, m := range months {
		if pos := strings.Index(lower, m); pos >= 0 && pos < bestPos {
			best, bestPos = i, pos
		}
	}
	return best
}
