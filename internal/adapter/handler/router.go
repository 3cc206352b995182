package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/infrastructure/http/middleware"
	"github.com/jayantelango/ai-driven-meeting-summarizer/pkg/config"
)

// Router holds all handlers and route level middleware
type Router struct {
	cfg         *config.Config
	auth        *AuthHandler
	meetings    *MeetingHandler
	projects    *ProjectHandler
	tasks       *TaskHandler
	teamMembers *TeamMemberHandler
	templates   *TemplateHandler
	exports     *ExportHandler
	analytics   *AnalyticsHandler
	authGuard   *middleware.AuthMiddleware
	rateLimiter *middleware.RateLimiter
	modelReady  bool
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	auth *AuthHandler,
	meetings *MeetingHandler,
	projects *ProjectHandler,
	tasks *TaskHandler,
	teamMembers *TeamMemberHandler,
	templates *TemplateHandler,
	exports *ExportHandler,
	analytics *AnalyticsHandler,
	authGuard *middleware.AuthMiddleware,
	rateLimiter *middleware.RateLimiter,
	modelReady bool,
) *Router {
	return &Router{
		cfg:         cfg,
		auth:        auth,
		meetings:    meetings,
		projects:    projects,
		tasks:       tasks,
		teamMembers: teamMembers,
		templates:   templates,
		exports:     exports,
		analytics:   analytics,
		authGuard:   authGuard,
		rateLimiter: rateLimiter,
		modelReady:  modelReady,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)

	v1 := e.Group("/v1")

	authGroup := v1.Group("/auth")
	authGroup.POST("/register", rt.auth.Register)
	authGroup.POST("/login", rt.auth.Login)
	authGroup.POST("/refresh", rt.auth.Refresh)

	protected := v1.Group("", rt.authGuard.Authenticate)

	// Analysis endpoints are rate limited per client IP, they fan out
	// to the model provider.
	meetingGroup := protected.Group("/meetings", rt.rateLimiter.Limit)
	meetingGroup.POST("/summarize", rt.meetings.Summarize)
	meetingGroup.POST("/upload", rt.meetings.Upload)
	meetingGroup.GET("", rt.meetings.List)
	meetingGroup.GET("/:id", rt.meetings.Get)
	meetingGroup.DELETE("/:id", rt.meetings.Delete)
	meetingGroup.GET("/:id/export/pdf", rt.exports.PDF)
	meetingGroup.GET("/:id/export/excel", rt.exports.Excel)

	protected.POST("/assistant", rt.meetings.Assistant)

	projectGroup := protected.Group("/projects")
	projectGroup.POST("", rt.projects.Create)
	projectGroup.GET("", rt.projects.List)
	projectGroup.GET("/:id", rt.projects.Get)
	projectGroup.PUT("/:id", rt.projects.Update)
	projectGroup.DELETE("/:id", rt.projects.Delete)

	taskGroup := protected.Group("/tasks")
	taskGroup.POST("", rt.tasks.Create)
	taskGroup.GET("", rt.tasks.List)
	taskGroup.PUT("/:id", rt.tasks.Update)
	taskGroup.DELETE("/:id", rt.tasks.Delete)

	memberGroup := protected.Group("/team-members")
	memberGroup.POST("", rt.teamMembers.Create)
	memberGroup.GET("", rt.teamMembers.List)
	memberGroup.PUT("/:id", rt.teamMembers.Update)
	memberGroup.DELETE("/:id", rt.teamMembers.Delete)

	templateGroup := protected.Group("/templates")
	templateGroup.POST("", rt.templates.Create)
	templateGroup.GET("", rt.templates.List)
	templateGroup.GET("/:id", rt.templates.Get)
	templateGroup.PUT("/:id", rt.templates.Update)
	templateGroup.DELETE("/:id", rt.templates.Delete)

	protected.GET("/analytics", rt.analytics.Overview)
}

// healthCheck reports service status and whether the model is wired
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":          "ok",
		"environment":     rt.cfg.Server.Environment,
		"model_available": rt.modelReady,
	})
}
