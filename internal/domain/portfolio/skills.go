package portfolio

import (
	"regexp"
	"strings"
)

// MaxRating is the top of the skill rating scale.
const MaxRating = 5

var whitespaceRun = regexp.MustCompile(`\s+`)

// CategoryID derives the filter token for a skill category name:
// "Cloud Platforms" -> "cloud-platforms".
func CategoryID(name string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}

// ProjectBadge is a reference to a project as shown on skill and certification
// cards. Resolved is false when the id matches no project; such badges are
// shown but open nothing.
type ProjectBadge struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Resolved bool   `json:"resolved"`
}

type SkillCard struct {
	Skill
	CategoryID   string         `json:"category_id"`
	CategoryName string         `json:"category_name"`
	Projects     []ProjectBadge `json:"projects"`
}

type CategoryOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type RadarPoint struct {
	Name     string `json:"name"`
	Value    int    `json:"value"`
	FullMark int    `json:"full_mark"`
}

// SkillCategories lists the filter options in stored order.
func (d *Dataset) SkillCategories() []CategoryOption {
	opts := make([]CategoryOption, 0, len(d.Skillset.Categories))
	for _, c := range d.Skillset.Categories {
		opts = append(opts, CategoryOption{ID: CategoryID(c.Name), Name: c.Name})
	}
	return opts
}

// SkillCards flattens every category into cards, keeping category and skill
// order.
func (d *Dataset) SkillCards() []SkillCard {
	var cards []SkillCard
	for _, c := range d.Skillset.Categories {
		id := CategoryID(c.Name)
		for _, s := range c.Skills {
			cards = append(cards, SkillCard{
				Skill:        s,
				CategoryID:   id,
				CategoryName: c.Name,
				Projects:     d.badges(s.UsedInProjects),
			})
		}
	}
	return cards
}

// FilterSkills applies a category token to the skill cards.
func (d *Dataset) FilterSkills(token string) []SkillCard {
	return Filter(d.SkillCards(), token, func(c SkillCard) string { return c.CategoryID })
}

// Radar turns skill cards into chart points on the 0..MaxRating scale.
func Radar(cards []SkillCard) []RadarPoint {
	points := make([]RadarPoint, 0, len(cards))
	for _, c := range cards {
		points = append(points, RadarPoint{Name: c.Name, Value: c.Rating, FullMark: MaxRating})
	}
	return points
}

func (d *Dataset) badges(refs []ProjectReference) []ProjectBadge {
	badges := make([]ProjectBadge, 0, len(refs))
	for _, ref := range refs {
		_, ok := d.FindProject(ref.ID)
		badges = append(badges, ProjectBadge{ID: ref.ID, Title: ref.Title, Resolved: ok})
	}
	return badges
}
