package portfolio

import (
	"context"
	"time"

	domain "github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/pkg/apperror"
)

// QueryUseCase serves the read-only views of the dataset to the JSON API.
type QueryUseCase struct {
	data *DataContext
	now  func() time.Time
}

func NewQueryUseCase(data *DataContext) *QueryUseCase {
	return &QueryUseCase{data: data, now: time.Now}
}

type SkillsOutput struct {
	Category   string                  `json:"category"`
	Categories []domain.CategoryOption `json:"categories"`
	Skills     []domain.SkillCard      `json:"skills"`
	Radar      []domain.RadarPoint     `json:"radar"`
}

type ProjectsOutput struct {
	Company   string                  `json:"company"`
	Companies []domain.CategoryOption `json:"companies"`
	Projects  []domain.ProjectCard    `json:"projects"`
}

func (uc *QueryUseCase) Dataset(ctx context.Context) (*domain.Dataset, error) {
	return LoadDataset(ctx, uc.data)
}

func (uc *QueryUseCase) Timeline(ctx context.Context) ([]domain.TimelineEntry, error) {
	d, err := LoadDataset(ctx, uc.data)
	if err != nil {
		return nil, err
	}
	return domain.BuildTimeline(d), nil
}

func (uc *QueryUseCase) Skills(ctx context.Context, category string) (*SkillsOutput, error) {
	d, err := LoadDataset(ctx, uc.data)
	if err != nil {
		return nil, err
	}
	cards := d.FilterSkills(category)
	return &SkillsOutput{
		Category:   tokenOrAll(category),
		Categories: d.SkillCategories(),
		Skills:     cards,
		Radar:      domain.Radar(cards),
	}, nil
}

func (uc *QueryUseCase) Projects(ctx context.Context, company string) (*ProjectsOutput, error) {
	d, err := LoadDataset(ctx, uc.data)
	if err != nil {
		return nil, err
	}
	return &ProjectsOutput{
		Company:   tokenOrAll(company),
		Companies: d.CompanyOptions(),
		Projects:  d.FilterProjects(company),
	}, nil
}

// Project looks a project up without recording an open.
func (uc *QueryUseCase) Project(ctx context.Context, id string) (*domain.ProjectModal, error) {
	d, err := LoadDataset(ctx, uc.data)
	if err != nil {
		return nil, err
	}
	m, ok := d.OpenProject(id)
	if !ok {
		return nil, apperror.NewNotFound("project", id)
	}
	return &m, nil
}

func (uc *QueryUseCase) Certifications(ctx context.Context) ([]domain.CertificationCard, error) {
	d, err := LoadDataset(ctx, uc.data)
	if err != nil {
		return nil, err
	}
	return d.CertificationCards(uc.now()), nil
}
