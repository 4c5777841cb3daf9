package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	analyticsUC "github.com/khoahotran/portfolio/internal/application/usecase/analytics"
	portfolioUC "github.com/khoahotran/portfolio/internal/application/usecase/portfolio"
	"github.com/khoahotran/portfolio/internal/domain/navigation"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type APIHandler struct {
	queryUseCase       *portfolioUC.QueryUseCase
	openProjectUseCase *portfolioUC.OpenProjectUseCase
	dataContext        *portfolioUC.DataContext
	sections           []navigation.Section
	headerOffset       float64
	logger             logger.Logger
}

func NewAPIHandler(
	queryUC *portfolioUC.QueryUseCase,
	openProjectUC *portfolioUC.OpenProjectUseCase,
	data *portfolioUC.DataContext,
	sections []navigation.Section,
	headerOffset float64,
	log logger.Logger,
) *APIHandler {
	return &APIHandler{
		queryUseCase:       queryUC,
		openProjectUseCase: openProjectUC,
		dataContext:        data,
		sections:           sections,
		headerOffset:       headerOffset,
		logger:             log,
	}
}

func (h *APIHandler) Health(c *gin.Context) {
	snap := h.dataContext.Snapshot()
	status := http.StatusOK
	if snap.Status == portfolioUC.StatusFailed {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, HealthResponse{Status: "UP", Data: string(snap.Status)})
}

func (h *APIHandler) GetPortfolio(c *gin.Context) {
	d, err := h.queryUseCase.Dataset(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *APIHandler) GetTimeline(c *gin.Context) {
	entries, err := h.queryUseCase.Timeline(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"timeline": entries})
}

func (h *APIHandler) ListProjects(c *gin.Context) {
	out, err := h.queryUseCase.Projects(c.Request.Context(), c.Query("company"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetProject returns the detail overlay for a project and counts it as an open.
func (h *APIHandler) GetProject(c *gin.Context) {
	m, err := h.openProjectUseCase.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *APIHandler) ListSkills(c *gin.Context) {
	out, err := h.queryUseCase.Skills(c.Request.Context(), c.Query("category"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *APIHandler) ListCertifications(c *gin.Context) {
	certs, err := h.queryUseCase.Certifications(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"certifications": certs})
}

func (h *APIHandler) GetNavigation(c *gin.Context) {
	c.JSON(http.StatusOK, NavigationResponse{Sections: h.sections, HeaderOffset: h.headerOffset})
}

// ActiveSection evaluates the scroll tracking rule for a reported layout.
func (h *APIHandler) ActiveSection(c *gin.Context) {
	var req ActiveSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid navigation payload", err))
		return
	}

	tracker, err := navigation.NewTracker(h.sections, h.headerOffset)
	if err != nil {
		c.Error(apperror.NewInternal("navigation is misconfigured", err))
		return
	}
	active := tracker.Active()
	if id, ok := tracker.ResolveSection(req.Current); ok {
		active = id
	}

	id, changed := navigation.ActiveAt(tracker.Sections(), tracker.HeaderOffset(), req.ScrollY, req.Tops)
	if changed {
		active = id
	}
	c.JSON(http.StatusOK, ActiveSectionResponse{Active: active, Changed: changed})
}

type AdminHandler struct {
	statsUseCase *analyticsUC.StatsUseCase
	logger       logger.Logger
}

func NewAdminHandler(statsUC *analyticsUC.StatsUseCase, log logger.Logger) *AdminHandler {
	return &AdminHandler{statsUseCase: statsUC, logger: log}
}

func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.statsUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(apperror.NewUnavailable("view counters are unavailable", err))
		return
	}
	c.JSON(http.StatusOK, stats)
}
