package portfolio

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	analyticsUC "github.com/khoahotran/portfolio/internal/application/usecase/analytics"
	"github.com/khoahotran/portfolio/internal/domain/analytics"
	domain "github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/pkg/apperror"
)

// OpenProjectUseCase resolves a project id to its detail overlay and records
// the open.
type OpenProjectUseCase struct {
	data       *DataContext
	recordView *analyticsUC.RecordViewUseCase
}

func NewOpenProjectUseCase(data *DataContext, recordView *analyticsUC.RecordViewUseCase) *OpenProjectUseCase {
	return &OpenProjectUseCase{data: data, recordView: recordView}
}

func (uc *OpenProjectUseCase) Execute(ctx context.Context, projectID string) (*domain.ProjectModal, error) {
	ctx, span := tracer.Start(ctx, "OpenProject")
	defer span.End()
	span.SetAttributes(attribute.String("project_id", projectID))

	d, err := LoadDataset(ctx, uc.data)
	if err != nil {
		return nil, err
	}

	m, ok := d.OpenProject(projectID)
	if !ok {
		return nil, apperror.NewNotFound("project", projectID)
	}

	if err := uc.recordView.Execute(ctx, analyticsUC.RecordViewInput{Kind: analytics.KindProjectOpen, Target: m.ID}); err != nil {
		span.RecordError(err)
	}
	return &m, nil
}
