package http

import (
	"embed"
	"html/template"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	analyticsUC "github.com/khoahotran/portfolio/internal/application/usecase/analytics"
	portfolioUC "github.com/khoahotran/portfolio/internal/application/usecase/portfolio"
	"github.com/khoahotran/portfolio/internal/domain/analytics"
	domain "github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const (
	pageTemplate  = "page.html"
	errorTemplate = "error.html"
)

// Query parameters carrying the transient UI state of the page.
const (
	paramSkills   = "skills"
	paramProjects = "projects"
	paramProject  = "project"
	paramSection  = "section"
)

func loadTemplates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"percent": func(rating int) int { return rating * 100 / domain.MaxRating },
	}).ParseFS(templateFS, "templates/*.html"))
}

// pageView wraps a built page with the request query so templates can link to
// the same page with one piece of state changed.
type pageView struct {
	*portfolioUC.Page
	query url.Values
}

func (v pageView) with(key, value string, anchor string) string {
	q := url.Values{}
	for k, vals := range v.query {
		q[k] = append([]string(nil), vals...)
	}
	if value == "" || (value == domain.AllToken && key != paramProject) {
		q.Del(key)
	} else {
		q.Set(key, value)
	}
	u := "/"
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}
	if anchor != "" {
		u += "#" + anchor
	}
	return u
}

func (v pageView) SkillsURL(id string) string   { return v.with(paramSkills, id, "skills") }
func (v pageView) ProjectsURL(id string) string { return v.with(paramProjects, id, "projects") }
func (v pageView) ProjectURL(id string) string  { return v.with(paramProject, id, "") }
func (v pageView) CloseModalURL() string        { return v.with(paramProject, "", "") }

func (v pageView) SectionIDs() []string {
	ids := make([]string, 0, len(v.Nav.Sections))
	for _, s := range v.Nav.Sections {
		ids = append(ids, s.ID)
	}
	return ids
}

type errorView struct {
	Message  string
	RetryURL string
}

type PageHandler struct {
	pageUseCase *portfolioUC.PageUseCase
	recordView  *analyticsUC.RecordViewUseCase
	logger      logger.Logger
}

func NewPageHandler(pageUC *portfolioUC.PageUseCase, recordView *analyticsUC.RecordViewUseCase, log logger.Logger) *PageHandler {
	return &PageHandler{
		pageUseCase: pageUC,
		recordView:  recordView,
		logger:      log,
	}
}

func (h *PageHandler) Index(c *gin.Context) {
	ctx := c.Request.Context()
	input := portfolioUC.PageInput{
		SkillFilter:   c.Query(paramSkills),
		ProjectFilter: c.Query(paramProjects),
		ProjectID:     c.Query(paramProject),
		Section:       c.Query(paramSection),
	}

	page, err := h.pageUseCase.Execute(ctx, input)
	if err != nil {
		h.logger.Error("Failed to build page", err)
		renderErrorPage(c, apperror.ToHTTPStatus(err))
		return
	}

	h.record(c, analytics.KindPageView, c.Request.URL.Path)
	if page.Modal != nil {
		h.record(c, analytics.KindProjectOpen, page.Modal.ID)
	}

	c.HTML(http.StatusOK, pageTemplate, pageView{Page: page, query: c.Request.URL.Query()})
}

func (h *PageHandler) record(c *gin.Context, kind analytics.Kind, target string) {
	err := h.recordView.Execute(c.Request.Context(), analyticsUC.RecordViewInput{Kind: kind, Target: target})
	if err != nil {
		h.logger.Warn("Failed to record view", zap.String("kind", string(kind)), zap.Error(err))
	}
}

func renderErrorPage(c *gin.Context, status int) {
	retry := "/"
	if c.Request != nil && c.Request.URL != nil {
		retry = c.Request.URL.RequestURI()
	}
	c.HTML(status, errorTemplate, errorView{
		Message:  "The page could not be displayed. Please try again.",
		RetryURL: retry,
	})
}
