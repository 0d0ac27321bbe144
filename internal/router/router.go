package router // package router wires HTTP routes onto the Echo instance

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/aabiskar/portfolio-backend/internal/config"
	"github.com/aabiskar/portfolio-backend/internal/handler"
	"github.com/aabiskar/portfolio-backend/internal/middleware"
)

// Handlers bundles every entity handler the router mounts. Built once in
// main and passed here so route registration stays in one place.
type Handlers struct {
	Users    *handler.UserHandler
	Projects *handler.ProjectHandler
	Skills   *handler.SkillHandler
	Apps     *handler.SoftwareApplicationHandler
	Timeline *handler.TimelineHandler
	Messages *handler.MessageHandler
}

// RegisterRoutes mounts the full API surface under /api/v1 together with
// the health check. Public read endpoints are served through the redis
// response cache when a client is available, and the contact form is
// rate limited. Dashboard mutations sit behind the session middleware.
func RegisterRoutes(e *echo.Echo, cfg *config.Config, h Handlers, rdb *redis.Client) {
	// Browser clients are the portfolio site and the dashboard, both on
	// other origins and both sending the session cookie.
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{cfg.PortfolioURL, cfg.DashboardURL, "http://localhost:5173"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowCredentials: true,
	}))

	// Load balancers and uptime checks hit this.
	e.GET("/healthz", handler.Health)

	api := e.Group("/api/v1")

	var cache echo.MiddlewareFunc
	var ratelimit echo.MiddlewareFunc
	if rdb != nil {
		cache = middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
		ratelimit = middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	}
	// withCache serves a public GET through the response cache when redis
	// is up and plain otherwise.
	withCache := func(g *echo.Group, path string, fn echo.HandlerFunc) {
		if cache != nil {
			g.GET(path, fn, cache)
			return
		}
		g.GET(path, fn)
	}

	auth := middleware.Auth(cfg.JWTSecret)

	msg := api.Group("/message")
	if ratelimit != nil {
		msg.POST("/send", h.Messages.SendMessage, ratelimit)
	} else {
		msg.POST("/send", h.Messages.SendMessage)
	}
	msg.GET("/getall", h.Messages.GetAllMessages, auth)
	msg.DELETE("/delete/:id", h.Messages.DeleteMessage, auth)

	tl := api.Group("/timeline")
	tl.POST("/add", h.Timeline.PostTimeline, auth)
	tl.DELETE("/delete/:id", h.Timeline.DeleteTimeline, auth)
	withCache(tl, "/getall", h.Timeline.GetAllTimelines)

	app := api.Group("/softwareapplication")
	app.POST("/add", h.Apps.AddNewApplication, auth)
	app.DELETE("/delete/:id", h.Apps.DeleteApplication, auth)
	withCache(app, "/getall", h.Apps.GetAllApplications)
	withCache(app, "/get/:id", h.Apps.GetApplication)

	skill := api.Group("/skill")
	skill.POST("/add", h.Skills.AddNewSkill, auth)
	skill.PUT("/update/:id", h.Skills.UpdateSkill, auth)
	skill.DELETE("/delete/:id", h.Skills.DeleteSkill, auth)
	withCache(skill, "/getall", h.Skills.GetAllSkills)

	project := api.Group("/project")
	project.POST("/add", h.Projects.AddNewProject, auth)
	project.PUT("/update/:id", h.Projects.UpdateProject, auth)
	project.DELETE("/delete/:id", h.Projects.DeleteProject, auth)
	withCache(project, "/getall", h.Projects.GetAllProjects)
	withCache(project, "/get/:id", h.Projects.GetSingleProject)

	user := api.Group("/user")
	user.POST("/register", h.Users.Register)
	user.POST("/login", h.Users.Login)
	user.GET("/logout", h.Users.Logout, auth)
	user.GET("/me", h.Users.GetUser, auth)
	user.PUT("/update/me", h.Users.UpdateProfile, auth)
	user.PUT("/update/password", h.Users.UpdatePassword, auth)
	withCache(user, "/portfolio/:id", h.Users.GetUserForPortfolio)
	user.POST("/password/forgot", h.Users.ForgotPassword)
	user.PUT("/password/reset/:token", h.Users.ResetPassword)
}
