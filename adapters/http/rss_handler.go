package http

import (
	"github.com/gin-gonic/gin"

	feedUC "github.com/khoahotran/portfolio/internal/application/usecase/feed"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type RSSHandler struct {
	feedUseCase *feedUC.TimelineFeedUseCase
	logger      logger.Logger
}

func NewRSSHandler(uc *feedUC.TimelineFeedUseCase, log logger.Logger) *RSSHandler {
	return &RSSHandler{
		feedUseCase: uc,
		logger:      log,
	}
}

func (h *RSSHandler) GenerateRSS(c *gin.Context) {
	feed, err := h.feedUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Type", "application/rss+xml; charset=utf-8")

	if err := feed.WriteRss(c.Writer); err != nil {
		h.logger.Error("Failed to write RSS feed to response", err)
	}
}
