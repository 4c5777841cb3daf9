package portfolio

import (
	"fmt"

	"github.com/khoahotran/portfolio/pkg/datefmt"
)

type TimelineKind string

const (
	TimelineWork      TimelineKind = "work"
	TimelineEducation TimelineKind = "education"
)

// TimelineEntry is one item of the career timeline, already formatted for
// display.
type TimelineEntry struct {
	Kind         TimelineKind `json:"kind"`
	Title        string       `json:"title"`
	Organization string       `json:"organization"`
	Location     string       `json:"location,omitempty"`
	Start        string       `json:"start"`
	End          string       `json:"end"`
	YearBadge    string       `json:"year_badge"`
	Ongoing      bool         `json:"ongoing"`
	Side         string       `json:"side"`
	Projects     []Project    `json:"projects,omitempty"`
}

type timelineItem struct {
	entry TimelineEntry
	end   *string
}

// BuildTimeline merges work experience and education into one list, most
// recent end first. On equal ends work comes before education. Experience
// pointing at an unknown company is dropped.
func BuildTimeline(d *Dataset) []TimelineEntry {
	items := make([]timelineItem, 0, len(d.Professional.Experience)+len(d.Education))

	for _, exp := range d.Professional.Experience {
		company, ok := d.Company(exp.CompanyID)
		if !ok {
			continue
		}
		ongoing := exp.EndDate == nil || datefmt.IsOngoing(*exp.EndDate)
		items = append(items, timelineItem{end: exp.EndDate, entry: TimelineEntry{
			Kind:         TimelineWork,
			Title:        exp.Designation,
			Organization: company.Name,
			Location:     company.Location,
			Start:        datefmt.Format(exp.StartDate),
			End:          datefmt.FormatEnd(exp.EndDate),
			YearBadge:    yearBadge(exp.StartDate, exp.EndDate),
			Ongoing:      ongoing,
			Projects:     company.Projects,
		}})
	}

	for _, edu := range d.Education {
		end := edu.EndYear
		entry := TimelineEntry{
			Kind:         TimelineEducation,
			Title:        edu.Degree,
			Organization: edu.Institution,
			Start:        datefmt.Format(edu.StartYear),
			End:          datefmt.FormatEnd(&end),
			YearBadge:    yearBadge(edu.StartYear, &end),
			Ongoing:      datefmt.IsOngoing(end),
		}
		if edu.Location != nil {
			entry.Location = *edu.Location
		}
		items = append(items, timelineItem{end: &end, entry: entry})
	}

	sorted := SortByEndDesc(items, func(it timelineItem) *string { return it.end })

	entries := make([]TimelineEntry, len(sorted))
	for i, it := range sorted {
		entries[i] = it.entry
		entries[i].Side = "left"
		if i%2 == 1 {
			entries[i].Side = "right"
		}
	}
	return entries
}

func yearBadge(start string, end *string) string {
	return fmt.Sprintf("%s–%s", datefmt.Year(start), datefmt.YearEnd(end))
}
