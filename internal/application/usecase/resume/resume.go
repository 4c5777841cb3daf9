package resume

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/application/service"
	portfolioUC "github.com/khoahotran/portfolio/internal/application/usecase/portfolio"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

var tracer = otel.Tracer("resume_usecase")

// Document is a rendered resume ready to be served as a download.
type Document struct {
	Filename string
	Content  []byte
	Version  string
	Cached   bool
}

type GenerateResumeUseCase struct {
	data   *portfolioUC.DataContext
	cache  service.DocumentCache
	ttl    time.Duration
	logger logger.Logger
	now    func() time.Time
}

func NewGenerateResumeUseCase(data *portfolioUC.DataContext, cache service.DocumentCache, ttl time.Duration, log logger.Logger) *GenerateResumeUseCase {
	return &GenerateResumeUseCase{data: data, cache: cache, ttl: ttl, logger: log, now: time.Now}
}

// Execute renders the resume for the loaded dataset. Documents are cached per
// dataset version and day so the footer date stays correct.
func (uc *GenerateResumeUseCase) Execute(ctx context.Context) (*Document, error) {
	ctx, span := tracer.Start(ctx, "GenerateResume")
	defer span.End()

	d, err := portfolioUC.LoadDataset(ctx, uc.data)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	now := uc.now()
	version := d.Version()
	key := fmt.Sprintf("resume:%s:%s", version, now.Format("2006-01-02"))
	doc := &Document{Filename: Filename(d.Personal.BasicInfo.FullName), Version: version}
	span.SetAttributes(attribute.String("cache_key", key))

	cached, ok, err := uc.cache.Get(ctx, key)
	if err != nil {
		uc.logger.Warn("Resume cache read failed, rendering", zap.Error(err))
	}
	if ok {
		doc.Content = cached
		doc.Cached = true
		return doc, nil
	}

	content, err := Render(d, now)
	if err != nil {
		span.RecordError(err)
		return nil, apperror.NewInternal("failed to render resume", err)
	}
	doc.Content = content

	if err := uc.cache.Set(ctx, key, content, uc.ttl); err != nil {
		uc.logger.Warn("Resume cache write failed", zap.Error(err))
	}
	return doc, nil
}

type PublishResumeUseCase struct {
	generate *GenerateResumeUseCase
	uploader service.Uploader
	logger   logger.Logger
}

func NewPublishResumeUseCase(generate *GenerateResumeUseCase, uploader service.Uploader, log logger.Logger) *PublishResumeUseCase {
	return &PublishResumeUseCase{generate: generate, uploader: uploader, logger: log}
}

type PublishResumeOutput struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
	Version  string `json:"version"`
}

// Execute uploads the current resume to media storage under a version-stable
// public id and returns its URL.
func (uc *PublishResumeUseCase) Execute(ctx context.Context) (*PublishResumeOutput, error) {
	ctx, span := tracer.Start(ctx, "PublishResume")
	defer span.End()

	doc, err := uc.generate.Execute(ctx)
	if err != nil {
		return nil, err
	}

	publicID := "resume-" + doc.Version
	url, err := uc.uploader.Upload(ctx, bytes.NewReader(doc.Content), publicID)
	if err != nil {
		span.RecordError(err)
		uc.logger.Error("Failed to publish resume", err, zap.String("public_id", publicID))
		return nil, err
	}

	uc.logger.Info("Published resume", zap.String("public_id", publicID), zap.String("url", url))
	return &PublishResumeOutput{URL: url, PublicID: publicID, Version: doc.Version}, nil
}
