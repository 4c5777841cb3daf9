package resume

import (
	"bytes"
	"embed"
	"html/template"
	"regexp"
	"strings"
	"time"

	domain "github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/pkg/datefmt"
)

//go:embed templates/resume.html.tmpl
var templateFS embed.FS

var resumeTemplate = template.Must(
	template.New("resume.html.tmpl").
		Funcs(template.FuncMap{"join": strings.Join}).
		ParseFS(templateFS, "templates/resume.html.tmpl"),
)

// TemplateData is the view passed to the resume template.
type TemplateData struct {
	Name           string
	Tagline        string
	Contact        []string
	Summary        string
	Experience     []ExperienceSection
	Education      []EducationSection
	Skills         []SkillGroup
	Certifications []CertificationSection
	GeneratedOn    string
}

type ExperienceSection struct {
	Designation string
	Company     string
	Location    string
	Start       string
	End         string
	Projects    []domain.Project
}

type EducationSection struct {
	Degree      string
	Institution string
	Location    string
	Start       string
	End         string
}

type SkillGroup struct {
	Name   string
	Skills []string
}

type CertificationSection struct {
	Name          string
	Issuer        string
	Issued        string
	Expires       string
	Description   string
	CredentialURL string
}

var whitespace = regexp.MustCompile(`\s+`)

// Filename is the download name for a resume: "Linh Tran" -> "Linh_Tran_Resume.html".
func Filename(fullName string) string {
	name := whitespace.ReplaceAllString(strings.TrimSpace(fullName), "_")
	if name == "" {
		name = "Portfolio"
	}
	return name + "_Resume.html"
}

// BuildTemplateData orders experience, education and certifications most
// recent first and drops experience whose company is unknown.
func BuildTemplateData(d *domain.Dataset, now time.Time) *TemplateData {
	info := d.Personal.BasicInfo
	data := &TemplateData{
		Name:        info.FullName,
		Tagline:     info.Tagline,
		Summary:     info.LongSummary,
		GeneratedOn: now.Format("January 2, 2006"),
	}

	data.Contact = append(data.Contact, info.Email)
	if info.PlaceOfBirth != nil && *info.PlaceOfBirth != "" {
		data.Contact = append(data.Contact, *info.PlaceOfBirth)
	}
	if info.TotalExperience != nil && *info.TotalExperience != "" {
		data.Contact = append(data.Contact, *info.TotalExperience+" Experience")
	}

	for _, exp := range d.SortedExperience() {
		company, ok := d.Company(exp.CompanyID)
		if !ok {
			continue
		}
		data.Experience = append(data.Experience, ExperienceSection{
			Designation: exp.Designation,
			Company:     company.Name,
			Location:    company.Location,
			Start:       datefmt.Format(exp.StartDate),
			End:         datefmt.FormatEnd(exp.EndDate),
			Projects:    company.Projects,
		})
	}

	for _, edu := range d.SortedEducation() {
		sec := EducationSection{
			Degree:      edu.Degree,
			Institution: edu.Institution,
			Start:       edu.StartYear,
			End:         edu.EndYear,
		}
		if edu.Location != nil {
			sec.Location = *edu.Location
		}
		data.Education = append(data.Education, sec)
	}

	for _, cat := range d.Skillset.Categories {
		g := SkillGroup{Name: cat.Name}
		for _, s := range cat.Skills {
			g.Skills = append(g.Skills, s.Name)
		}
		data.Skills = append(data.Skills, g)
	}

	for _, c := range d.SortedCertifications() {
		sec := CertificationSection{
			Name:          c.Name,
			Issuer:        c.Issuer,
			Issued:        datefmt.Format(c.IssueDate),
			Description:   c.Description,
			CredentialURL: c.CredentialURL,
		}
		if c.ExpiryDate != nil && !datefmt.IsOngoing(*c.ExpiryDate) {
			sec.Expires = datefmt.Format(*c.ExpiryDate)
		}
		data.Certifications = append(data.Certifications, sec)
	}
	return data
}

// Render produces the standalone HTML resume document.
func Render(d *domain.Dataset, now time.Time) ([]byte, error) {
	var buf bytes.Buffer
	if err := resumeTemplate.Execute(&buf, BuildTemplateData(d, now)); err != nil {
		return nil, &TemplateError{Message: "failed to execute resume template", Cause: err}
	}
	return buf.Bytes(), nil
}
