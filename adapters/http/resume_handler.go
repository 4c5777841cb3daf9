package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	analyticsUC "github.com/khoahotran/portfolio/internal/application/usecase/analytics"
	resumeUC "github.com/khoahotran/portfolio/internal/application/usecase/resume"
	"github.com/khoahotran/portfolio/internal/domain/analytics"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type ResumeHandler struct {
	generateUseCase *resumeUC.GenerateResumeUseCase
	publishUseCase  *resumeUC.PublishResumeUseCase
	recordView      *analyticsUC.RecordViewUseCase
	logger          logger.Logger
}

func NewResumeHandler(
	generateUC *resumeUC.GenerateResumeUseCase,
	publishUC *resumeUC.PublishResumeUseCase,
	recordView *analyticsUC.RecordViewUseCase,
	log logger.Logger,
) *ResumeHandler {
	return &ResumeHandler{
		generateUseCase: generateUC,
		publishUseCase:  publishUC,
		recordView:      recordView,
		logger:          log,
	}
}

// Download serves the resume as an HTML attachment.
func (h *ResumeHandler) Download(c *gin.Context) {
	doc, err := h.generateUseCase.Execute(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to generate resume", err)
		renderErrorPage(c, apperror.ToHTTPStatus(err))
		return
	}

	input := analyticsUC.RecordViewInput{Kind: analytics.KindResumeDownload, Target: doc.Filename}
	if err := h.recordView.Execute(c.Request.Context(), input); err != nil {
		h.logger.Warn("Failed to record resume download", zap.Error(err))
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Header("X-Resume-Version", doc.Version)
	c.Data(http.StatusOK, "text/html; charset=utf-8", doc.Content)
}

func (h *ResumeHandler) Publish(c *gin.Context) {
	out, err := h.publishUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, out)
}
