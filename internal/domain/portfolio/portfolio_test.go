package portfolio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindProject(t *testing.T) {
	d := newFixture()

	rp, ok := d.FindProject("harbor")
	require.True(t, ok)
	assert.Equal(t, "Harbor", rp.Project.Title)
	assert.Equal(t, "Bluepeak", rp.CompanyName)
	assert.Equal(t, "bluepeak", rp.CompanyID)

	_, ok = d.FindProject("ghost")
	assert.False(t, ok)

	_, ok = FindProject(nil, "harbor")
	assert.False(t, ok)
}

func TestFindProject_DuplicateIDResolvesToFirstCompany(t *testing.T) {
	d := newFixture()
	d.Professional.Companies[1].Projects = append(d.Professional.Companies[1].Projects,
		Project{ID: "ledger", Title: "Ledger Copy"})

	rp, ok := d.FindProject("ledger")
	require.True(t, ok)
	assert.Equal(t, "Northwind Labs", rp.CompanyName)
	assert.Equal(t, "Ledger Sync", rp.Project.Title)
	assert.Equal(t, []string{"ledger"}, d.DuplicateProjectIDs())
}

func TestDuplicateProjectIDs_NoneInFixture(t *testing.T) {
	assert.Empty(t, newFixture().DuplicateProjectIDs())
}

func TestValidate(t *testing.T) {
	d := newFixture()
	require.NoError(t, d.Validate())

	d.Skillset.Categories[0].Skills[0].Rating = 7
	err := d.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDatasetInvalid)
}

func TestValidate_MissingCompanyName(t *testing.T) {
	d := newFixture()
	d.Professional.Companies[0].Name = ""
	assert.ErrorIs(t, d.Validate(), ErrDatasetInvalid)
}

func TestVersion_ChangesWithContent(t *testing.T) {
	a, b := newFixture(), newFixture()
	assert.Equal(t, a.Version(), b.Version())

	b.Personal.BasicInfo.Tagline = "Platform engineer"
	assert.NotEqual(t, a.Version(), b.Version())
}

func TestTimeline_OngoingFirstThenPastThenEducation(t *testing.T) {
	entries := BuildTimeline(newFixture())
	require.Len(t, entries, 4)

	assert.Equal(t, TimelineWork, entries[0].Kind)
	assert.Equal(t, "Northwind Labs", entries[0].Organization)
	assert.True(t, entries[0].Ongoing)
	assert.Equal(t, "Present", entries[0].End)
	assert.Equal(t, "2022–Present", entries[0].YearBadge)
	assert.Len(t, entries[0].Projects, 2)

	assert.Equal(t, "Bluepeak", entries[1].Organization)
	assert.Equal(t, "February 2019", entries[1].Start)
	assert.Equal(t, "June 2022", entries[1].End)
	assert.Equal(t, "2019–2022", entries[1].YearBadge)

	assert.Equal(t, TimelineEducation, entries[2].Kind)
	assert.Equal(t, "MSc Distributed Systems", entries[2].Title)
	assert.Equal(t, "Berlin", entries[2].Location)
	assert.Equal(t, "BSc Computer Science", entries[3].Title)
	assert.Equal(t, "2015", entries[3].End)

	sides := []string{entries[0].Side, entries[1].Side, entries[2].Side, entries[3].Side}
	assert.Equal(t, []string{"left", "right", "left", "right"}, sides)
}

func TestTimeline_InterleavesEducationByEndDate(t *testing.T) {
	d := newFixture()
	d.Professional.Experience = []Experience{
		{CompanyID: "bluepeak", Designation: "Intern", StartDate: "2012-01", EndDate: strPtr("2012-06")},
	}
	d.Education = []Education{
		{Institution: "Tech Institute", Degree: "PhD", StartYear: "2013", EndYear: "2018"},
		{Institution: "State University", Degree: "BSc", StartYear: "2008", EndYear: "2011"},
	}

	var titles []string
	for _, e := range BuildTimeline(d) {
		titles = append(titles, e.Title)
	}
	assert.Equal(t, []string{"PhD", "Intern", "BSc"}, titles)
}

func TestTimeline_WorkBeforeEducationOnSameEnd(t *testing.T) {
	d := newFixture()
	d.Professional.Experience = []Experience{
		{CompanyID: "bluepeak", Designation: "Research Assistant", StartDate: "2016", EndDate: strPtr("2017")},
	}
	d.Education = []Education{
		{Institution: "Tech Institute", Degree: "MSc", StartYear: "2015", EndYear: "2017"},
	}

	entries := BuildTimeline(d)
	require.Len(t, entries, 2)
	assert.Equal(t, TimelineWork, entries[0].Kind)
	assert.Equal(t, TimelineEducation, entries[1].Kind)
	assert.Equal(t, "right", entries[1].Side)
}

func TestTimeline_DropsUnknownCompany(t *testing.T) {
	d := newFixture()
	d.Professional.Experience = append(d.Professional.Experience,
		Experience{CompanyID: "vanished", Designation: "Intern", StartDate: "2018-01", EndDate: strPtr("2018-06")})

	for _, e := range BuildTimeline(d) {
		assert.NotEqual(t, "Intern", e.Title)
	}
}

func TestTimeline_EmptyDataset(t *testing.T) {
	assert.Empty(t, BuildTimeline(&Dataset{}))
}

func TestSkillFilter(t *testing.T) {
	d := newFixture()

	assert.Len(t, d.FilterSkills(AllToken), 3)
	assert.Len(t, d.FilterSkills(""), 3)
	assert.Len(t, d.FilterSkills("programming-languages"), 2)

	cloud := d.FilterSkills("cloud-platforms")
	require.Len(t, cloud, 1)
	assert.Equal(t, "GCP", cloud[0].Name)

	unknown := d.FilterSkills("databases")
	assert.NotNil(t, unknown)
	assert.Empty(t, unknown)
}

func TestSkillCategories(t *testing.T) {
	opts := newFixture().SkillCategories()
	assert.Equal(t, []CategoryOption{
		{ID: "programming-languages", Name: "Programming Languages"},
		{ID: "cloud-platforms", Name: "Cloud  Platforms"},
	}, opts)
}

func TestSkillCards_ProjectBadgesResolve(t *testing.T) {
	cards := newFixture().SkillCards()
	require.NotEmpty(t, cards)

	goCard := cards[0]
	require.Len(t, goCard.Projects, 2)
	assert.Equal(t, ProjectBadge{ID: "ledger", Title: "Ledger Sync", Resolved: true}, goCard.Projects[0])
	assert.Equal(t, ProjectBadge{ID: "ghost", Title: "Ghost", Resolved: false}, goCard.Projects[1])
}

func TestRadar(t *testing.T) {
	points := Radar(newFixture().FilterSkills("programming-languages"))
	assert.Equal(t, []RadarPoint{
		{Name: "Go", Value: 5, FullMark: MaxRating},
		{Name: "Python", Value: 3, FullMark: MaxRating},
	}, points)
}

func TestProjectFilter(t *testing.T) {
	d := newFixture()

	assert.Len(t, d.FilterProjects(AllToken), 4)
	bluepeak := d.FilterProjects("bluepeak")
	require.Len(t, bluepeak, 2)
	for _, c := range bluepeak {
		assert.Equal(t, "Bluepeak", c.CompanyName)
	}
	assert.Empty(t, d.FilterProjects("initech"))
}

func TestCertificationCards(t *testing.T) {
	now := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	cards := newFixture().CertificationCards(now)
	require.Len(t, cards, 3)

	assert.Equal(t, "OCP", cards[0].Name)
	assert.Equal(t, StatusLifetime, cards[0].Status)
	assert.Equal(t, "No expiry", cards[0].Expires)
	assert.True(t, cards[0].Projects[0].Resolved)

	assert.Equal(t, "AWS SAA", cards[1].Name)
	assert.Equal(t, StatusActive, cards[1].Status)

	assert.Equal(t, "CKA", cards[2].Name)
	assert.Equal(t, StatusExpired, cards[2].Status)
	assert.Equal(t, "March 2024", cards[2].Expires)
	assert.Equal(t, "March 2021", cards[2].Issued)
}

func TestOpenProject(t *testing.T) {
	d := newFixture()

	m, ok := d.OpenProject("atlas")
	require.True(t, ok)
	assert.Equal(t, "Atlas Search", m.Title)
	assert.Equal(t, "Northwind Labs", m.CompanyName)
	assert.Equal(t, []Facet{
		{Label: "Languages", Items: []string{"Go"}},
		{Label: "Cloud Platforms", Items: []string{"GCP"}},
	}, m.Facets)

	m, ok = d.OpenProject("lumen")
	require.True(t, ok)
	assert.Empty(t, m.Facets)

	_, ok = d.OpenProject("ghost")
	assert.False(t, ok)
	_, ok = d.OpenProject("")
	assert.False(t, ok)
}

func TestContactGroups(t *testing.T) {
	groups := newFixture().Personal.ContactGroups()
	require.Len(t, groups, 2)

	assert.Equal(t, "Social", groups[0].Title)
	assert.Equal(t, "Twitter", groups[0].Links[0].DisplayName)
	assert.Equal(t, "Personal", groups[1].Title)
	assert.Equal(t, "Personal Blog", groups[1].Links[0].DisplayName)
}

func TestPlatformName(t *testing.T) {
	assert.Equal(t, "Personal Blog", PlatformName("personal_blog"))
	assert.Equal(t, "Github", PlatformName("github"))
	assert.Equal(t, "Stack Overflow", PlatformName("stack_overflow"))
}
