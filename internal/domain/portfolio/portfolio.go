package portfolio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/go-playground/validator/v10"
)

type SocialProfile struct {
	URL    string `json:"url" validate:"required"`
	Handle string `json:"handler"`
}

// SocialProfiles maps a platform name to its link. Map keys make platform
// names unique within one group.
type SocialProfiles map[string]SocialProfile

// Platforms returns the platform names in sorted order.
func (p SocialProfiles) Platforms() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type BasicInfo struct {
	FullName        string  `json:"full_name" validate:"required"`
	DateOfBirth     *string `json:"dob,omitempty"`
	PlaceOfBirth    *string `json:"place_of_birth,omitempty"`
	Email           string  `json:"email" validate:"required,email"`
	Address         *string `json:"address,omitempty"`
	TotalExperience *string `json:"total_years_of_experience,omitempty"`
	Tagline         string  `json:"tagline"`
	Designation     *string `json:"designation,omitempty"`
	ShortSummary    string  `json:"short_summary"`
	LongSummary     string  `json:"long_descriptive_summary"`
	ProfileImage    *string `json:"profile_image,omitempty"`
}

type PersonalData struct {
	BasicInfo            BasicInfo      `json:"basic_info"`
	Hobbies              []string       `json:"hobbies"`
	SocialProfiles       SocialProfiles `json:"social_profiles" validate:"dive"`
	ProfessionalProfiles SocialProfiles `json:"professional_profiles" validate:"dive"`
	CodingProfiles       SocialProfiles `json:"coding_profiles" validate:"dive"`
	PersonalProfiles     SocialProfiles `json:"personal_profiles" validate:"dive"`
}

// TechStack classifies the technology behind a project in six fixed facets.
type TechStack struct {
	Languages           []string `json:"languages"`
	LibrariesFrameworks []string `json:"libraries_frameworks"`
	Tools               []string `json:"tools"`
	Deployment          []string `json:"deployment"`
	CloudPlatforms      []string `json:"cloud_platforms"`
	MLModels            []string `json:"ml_models"`
}

type Project struct {
	ID          string    `json:"id" validate:"required"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	TechStack   TechStack `json:"tech_stack"`
}

type Company struct {
	ID       string    `json:"id" validate:"required"`
	Name     string    `json:"name" validate:"required"`
	Location string    `json:"location"`
	Projects []Project `json:"projects" validate:"dive"`
}

// Experience points at a Company by id. A nil EndDate means the role is ongoing.
type Experience struct {
	CompanyID   string  `json:"company_id" validate:"required"`
	Designation string  `json:"designation" validate:"required"`
	StartDate   string  `json:"start_date" validate:"required"`
	EndDate     *string `json:"end_date"`
}

type Professional struct {
	Companies  []Company    `json:"companies" validate:"dive"`
	Experience []Experience `json:"professional_experience" validate:"dive"`
}

type Education struct {
	Institution string  `json:"institution" validate:"required"`
	Degree      string  `json:"degree" validate:"required"`
	Location    *string `json:"location,omitempty"`
	StartYear   string  `json:"start_year"`
	EndYear     string  `json:"end_year"`
}

// ProjectReference is a denormalized back-reference into Company.Projects.
// It is never checked against the company tree; see FindProject.
type ProjectReference struct {
	ID    string `json:"id" validate:"required"`
	Title string `json:"title"`
}

type Skill struct {
	ID             string             `json:"id" validate:"required"`
	Name           string             `json:"name" validate:"required"`
	Rating         int                `json:"rating" validate:"min=0,max=5"`
	UsedInProjects []ProjectReference `json:"used_in_projects" validate:"dive"`
}

type SkillCategory struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Skills      []Skill `json:"skills" validate:"dive"`
}

type Skillset struct {
	ID         string          `json:"id"`
	Categories []SkillCategory `json:"categories" validate:"dive"`
}

// Certification is a credential record. A nil ExpiryDate means lifetime.
type Certification struct {
	ID              string             `json:"id" validate:"required"`
	Name            string             `json:"name" validate:"required"`
	Issuer          string             `json:"issuer"`
	IssueDate       string             `json:"issue_date"`
	ExpiryDate      *string            `json:"expiry_date"`
	CredentialID    string             `json:"credential_id"`
	CredentialURL   string             `json:"credential_url"`
	Description     string             `json:"description"`
	SkillsValidated []string           `json:"skills_validated"`
	RelatedProjects []ProjectReference `json:"related_projects" validate:"dive"`
}

// Dataset is the whole portfolio. It is built once at startup and treated as
// read-only afterwards.
type Dataset struct {
	Personal       PersonalData    `json:"personal"`
	Professional   Professional    `json:"professional"`
	Education      []Education     `json:"education" validate:"dive"`
	Skillset       Skillset        `json:"skillset"`
	Certifications []Certification `json:"certifications" validate:"dive"`
}

// Repository loads the dataset from wherever it is kept.
type Repository interface {
	Load(ctx context.Context) (*Dataset, error)
}

var (
	ErrDatasetInvalid = errors.New("portfolio dataset is invalid")

	validate = validator.New()
)

// Validate checks required fields and rating bounds. Cross references are not
// checked: unresolved references are tolerated at render time.
func (d *Dataset) Validate() error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("%w: %v", ErrDatasetInvalid, err)
	}
	return nil
}

// Version fingerprints the dataset content for cache keys.
func (d *Dataset) Version() string {
	b, err := json.Marshal(d)
	if err != nil {
		return "unversioned"
	}
	return strconv.FormatUint(xxhash.Sum64(b), 16)
}

// Company returns the company with the given id.
func (d *Dataset) Company(id string) (Company, bool) {
	for _, c := range d.Professional.Companies {
		if c.ID == id {
			return c, true
		}
	}
	return Company{}, false
}

// DuplicateProjectIDs lists project ids used by more than one project, in
// first-seen order. FindProject resolves such ids to the first match only.
func (d *Dataset) DuplicateProjectIDs() []string {
	seen := make(map[string]int)
	var dups []string
	for _, c := range d.Professional.Companies {
		for _, p := range c.Projects {
			seen[p.ID]++
			if seen[p.ID] == 2 {
				dups = append(dups, p.ID)
			}
		}
	}
	return dups
}
