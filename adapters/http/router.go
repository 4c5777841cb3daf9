package http

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/khoahotran/portfolio/pkg/auth"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type Handlers struct {
	Page   *PageHandler
	API    *APIHandler
	Resume *ResumeHandler
	RSS    *RSSHandler
	Auth   *AuthHandler
	Admin  *AdminHandler
}

type RouterOptions struct {
	AllowOrigins []string
	RequestLog   bool
	// LoginRate limits admin login attempts. Zero disables the limit.
	LoginRate  rate.Limit
	LoginBurst int
}

// NewRouter registers the page, the resume download, the feed, the public
// JSON API and the admin API.
func NewRouter(h Handlers, jwtSvc *auth.JWTService, log logger.Logger, opts RouterOptions) *gin.Engine {
	router := gin.New()
	router.SetHTMLTemplate(loadTemplates())
	router.Use(RecoveryMiddleware(log))
	if opts.RequestLog {
		router.Use(RequestLogger(log))
	}
	router.Use(ErrorMiddleware(log))

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	router.StaticFS("/static", http.FS(static))

	router.GET("/", h.Page.Index)
	router.GET("/resume.html", h.Resume.Download)
	router.GET("/feed.xml", h.RSS.GenerateRSS)

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	corsCfg.MaxAge = 12 * time.Hour
	if len(opts.AllowOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = opts.AllowOrigins
	}

	// Preflight requests never match a route, so CORS has to run on the engine.
	router.Use(cors.New(corsCfg))

	api := router.Group("/api")
	{
		admin := api.Group("/admin")
		{
			if opts.LoginRate > 0 {
				limiter := rate.NewLimiter(opts.LoginRate, opts.LoginBurst)
				admin.POST("/auth/login", RateLimitMiddleware(limiter, log), h.Auth.Login)
			} else {
				admin.POST("/auth/login", h.Auth.Login)
			}

			adminPrivate := admin.Group("/")
			adminPrivate.Use(AuthMiddleware(jwtSvc, log))
			{
				adminPrivate.GET("/health-auth", func(c *gin.Context) {
					ownerID, _ := GetOwnerIDFromGinContext(c)
					c.JSON(http.StatusOK, gin.H{"status": "OK", "owner_id": ownerID})
				})
				adminPrivate.GET("/stats", h.Admin.Stats)
				adminPrivate.POST("/resume/publish", h.Resume.Publish)
			}
		}

		api.GET("/health", h.API.Health)
		api.GET("/portfolio", h.API.GetPortfolio)
		api.GET("/timeline", h.API.GetTimeline)
		api.GET("/projects", h.API.ListProjects)
		api.GET("/projects/:id", h.API.GetProject)
		api.GET("/skills", h.API.ListSkills)
		api.GET("/certifications", h.API.ListCertifications)
		api.GET("/navigation", h.API.GetNavigation)
		api.POST("/navigation/active", h.API.ActiveSection)
	}

	return router
}
