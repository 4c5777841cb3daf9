package portfolio

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/khoahotran/portfolio/internal/application/service"
	domain "github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/internal/domain/navigation"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

const profileImageSize = 320

type Hero struct {
	FullName     string
	Tagline      string
	ShortSummary string
	Experience   string
	Designation  string
	ImageURL     string
}

type About struct {
	LongSummary string
	Hobbies     []string
}

type SkillsSection struct {
	Active  string
	Options []domain.CategoryOption
	Cards   []domain.SkillCard
}

type ProjectsSection struct {
	Active  string
	Options []domain.CategoryOption
	Cards   []domain.ProjectCard
}

type Navigation struct {
	Sections     []navigation.Section
	Active       string
	HeaderOffset float64
}

// Page is everything the single page template needs for one request.
type Page struct {
	Hero             Hero
	About            About
	Timeline         []domain.TimelineEntry
	Skills           SkillsSection
	Projects         ProjectsSection
	Certifications   []domain.CertificationCard
	Contact          []domain.ContactGroup
	Modal            *domain.ProjectModal
	Nav              Navigation
	Email            string
	PlaceholderImage string
}

// PageInput carries the transient UI state taken from the query string.
type PageInput struct {
	SkillFilter   string
	ProjectFilter string
	ProjectID     string
	Section       string
}

type PageUseCase struct {
	data         *DataContext
	media        service.Uploader
	sections     []navigation.Section
	headerOffset float64
	placeholder  string
	logger       logger.Logger
	now          func() time.Time
}

func NewPageUseCase(data *DataContext, media service.Uploader, sections []navigation.Section, headerOffset float64, placeholder string, log logger.Logger) *PageUseCase {
	return &PageUseCase{
		data:         data,
		media:        media,
		sections:     sections,
		headerOffset: headerOffset,
		placeholder:  placeholder,
		logger:       log,
		now:          time.Now,
	}
}

// LoadDataset waits for the data context and maps its outcome to an app error.
func LoadDataset(ctx context.Context, data *DataContext) (*domain.Dataset, error) {
	snap, err := data.Wait(ctx)
	if err != nil {
		return nil, apperror.NewUnavailable("portfolio data is still loading", err)
	}
	if snap.Status == StatusFailed {
		return nil, apperror.NewInternal("portfolio data failed to load", snap.Err)
	}
	return snap.Dataset, nil
}

func (uc *PageUseCase) Execute(ctx context.Context, input PageInput) (*Page, error) {
	ctx, span := tracer.Start(ctx, "BuildPage")
	defer span.End()
	span.SetAttributes(
		attribute.String("skills", input.SkillFilter),
		attribute.String("projects", input.ProjectFilter),
		attribute.String("project", input.ProjectID),
	)

	d, err := LoadDataset(ctx, uc.data)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	tracker, err := navigation.NewTracker(uc.sections, uc.headerOffset)
	if err != nil {
		return nil, apperror.NewInternal("navigation is misconfigured", err)
	}
	active := tracker.Active()
	if id, ok := tracker.ResolveSection(input.Section); ok {
		active = id
	}

	info := d.Personal.BasicInfo
	page := &Page{
		Hero: Hero{
			FullName:     info.FullName,
			Tagline:      info.Tagline,
			ShortSummary: info.ShortSummary,
			Experience:   deref(info.TotalExperience),
			Designation:  deref(info.Designation),
			ImageURL:     uc.media.ImageURL(deref(info.ProfileImage), profileImageSize, profileImageSize),
		},
		About: About{
			LongSummary: info.LongSummary,
			Hobbies:     d.Personal.Hobbies,
		},
		Timeline: domain.BuildTimeline(d),
		Skills: SkillsSection{
			Active:  tokenOrAll(input.SkillFilter),
			Options: d.SkillCategories(),
			Cards:   d.FilterSkills(input.SkillFilter),
		},
		Projects: ProjectsSection{
			Active:  tokenOrAll(input.ProjectFilter),
			Options: d.CompanyOptions(),
			Cards:   d.FilterProjects(input.ProjectFilter),
		},
		Certifications: d.CertificationCards(uc.now()),
		Contact:        d.Personal.ContactGroups(),
		Nav: Navigation{
			Sections:     tracker.Sections(),
			Active:       active,
			HeaderOffset: tracker.HeaderOffset(),
		},
		Email:            info.Email,
		PlaceholderImage: uc.placeholder,
	}
	if page.Hero.ImageURL == "" {
		page.Hero.ImageURL = uc.placeholder
	}

	if m, ok := d.OpenProject(input.ProjectID); ok {
		page.Modal = &m
	}
	return page, nil
}

func tokenOrAll(token string) string {
	if token == "" {
		return domain.AllToken
	}
	return token
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
