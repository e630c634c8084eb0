package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"talent-sync/internal/config"
	"talent-sync/internal/delivery/http/handler"
	"talent-sync/internal/delivery/http/middleware"
	"talent-sync/internal/delivery/http/routes"
	v1 "talent-sync/internal/delivery/http/routes/v1"
	"talent-sync/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

// Deps is what the HTTP layer needs. DB and Cache are optional and only feed
// the health check.
type Deps struct {
	Search   usecase.SearchUsecase
	Matching usecase.MatchingUsecase
	DB       handler.Pinger
	Cache    handler.Pinger
	Logger   *log.Logger
}

func New(cfg config.Config, deps Deps) *App {
	f := fiber.New(fiber.Config{
		AppName:      cfg.App.AppName,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	registerGlobalMiddleware(f, deps.Logger)
	registerRoutes(f, deps)

	return &App{Fiber: f}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	if cfg.App.RunMigrations {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		n, err := c.Migrate(ctx)
		cancel()
		if err != nil {
			_ = c.Close()
			return nil, nil, fmt.Errorf("run migrations: %w", err)
		}
		c.Logger.Printf("[Migration] %d migration(s) applied", n)
	}

	app := New(cfg, Deps{
		Search:   c.Search,
		Matching: c.Matching,
		DB:       c.DB,
		Cache:    c.Cache,
		Logger:   c.Logger,
	})
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	accessLog := middleware.NewAccessLogMiddleware(logger)
	app.Use(accessLog.Middleware())

	errMw := middleware.NewErrorMiddleware(logger)
	app.Use(errMw.Middleware())
}

func registerRoutes(app *fiber.App, deps Deps) {
	if app == nil {
		return
	}

	handlers := v1.Handlers{}
	if deps.Search != nil {
		handlers.Opportunity = handler.NewOpportunityHandler(deps.Search)
	}
	if deps.Matching != nil {
		handlers.Match = handler.NewMatchHandler(deps.Matching)
		handlers.Evaluate = handler.NewEvaluateHandler(deps.Matching)
	}

	routes.NewRegistry(handler.NewHealthHandler(deps.DB, deps.Cache), handlers).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
