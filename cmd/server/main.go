package main // Entry point package

import (
	"github.com/labstack/echo/v4"

	"github.com/aabiskar/portfolio-backend/internal/config"
	"github.com/aabiskar/portfolio-backend/internal/database"
	"github.com/aabiskar/portfolio-backend/internal/handler"
	"github.com/aabiskar/portfolio-backend/internal/logger"
	"github.com/aabiskar/portfolio-backend/internal/mailer"
	"github.com/aabiskar/portfolio-backend/internal/queue"
	"github.com/aabiskar/portfolio-backend/internal/repository"
	"github.com/aabiskar/portfolio-backend/internal/router"
	"github.com/aabiskar/portfolio-backend/internal/storage"
)

func main() {
	cfg := config.Load()

	if err := logger.Initialize(cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Log.Sync()

	db, err := database.Open(cfg)
	if err != nil {
		logger.Log.Fatalf("open database: %v", err)
	}
	defer db.Close()
	if err := database.Migrate(db); err != nil {
		logger.Log.Fatalf("run migrations: %v", err)
	}

	// Optional: caching and rate limiting degrade gracefully when redis
	// is unreachable.
	rdb := config.NewRedisClient()

	store, err := storage.New(cfg)
	if err != nil {
		logger.Log.Fatalf("init object storage: %v", err)
	}
	mail := mailer.New(cfg)

	users := repository.NewUserRepo(db)
	projects := repository.NewProjectRepo(db)
	skills := repository.NewSkillRepo(db)
	apps := repository.NewSoftwareApplicationRepo(db)
	timelines := repository.NewTimelineRepo(db)
	messages := repository.NewMessageRepo(db)

	h := router.Handlers{
		Users:    handler.NewUserHandler(cfg, users, store, mail),
		Projects: handler.NewProjectHandler(projects, store),
		Skills:   handler.NewSkillHandler(skills, store),
		Apps:     handler.NewSoftwareApplicationHandler(apps, store),
		Timeline: handler.NewTimelineHandler(timelines),
		Messages: handler.NewMessageHandler(messages),
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handler.JSONErrorHandler
	router.RegisterRoutes(e, cfg, h, rdb)

	// Mails the owner for every contact-form submission published to the
	// queue. Runs its own reconnect loop.
	go func() {
		if err := queue.StartMessageConsumer(mail, cfg.NotifyEmail); err != nil {
			logger.Log.Errorf("message consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	logger.Log.Infof("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		logger.Log.Fatalf("server stopped: %v", err)
	}
}
