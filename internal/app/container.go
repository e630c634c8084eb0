package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"talent-sync/internal/config"
	"talent-sync/internal/database"
	"talent-sync/internal/database/migration"
	dbpostgres "talent-sync/internal/database/postgres"
	"talent-sync/internal/domain/matching"
	"talent-sync/internal/infrastructure/cache"
	"talent-sync/internal/repository"
	"talent-sync/internal/usecase"
)

var errDatabaseNotConfigured = errors.New("database not configured: set DB_HOST and DB_NAME")

type Container struct {
	Config config.Config
	Logger *log.Logger
	DB     database.DB
	Cache  *cache.Redis
	Engine *matching.Engine

	Skills        repository.SkillRepository
	Opportunities repository.OpportunityRepository
	Candidates    repository.CandidateRepository

	Search   *usecase.Search
	Matching *usecase.Matching
}

func NewLogger(cfg config.Config) *log.Logger {
	prefix := ""
	if cfg.App.AppName != "" {
		prefix = cfg.App.AppName + " "
	}
	return log.New(os.Stdout, prefix, log.LstdFlags|log.Lmsgprefix)
}

func NewContainer(cfg config.Config) (*Container, error) {
	if !cfg.Database.Enabled() {
		return nil, errDatabaseNotConfigured
	}

	logger := NewLogger(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)
	engine := matching.NewEngine(cfg.Matching.Weights)

	c := &Container{
		Config:        cfg,
		Logger:        logger,
		DB:            db,
		Cache:         redisCache,
		Engine:        engine,
		Skills:        repository.NewPostgresSkillRepository(db),
		Opportunities: repository.NewPostgresOpportunityRepository(db),
		Candidates:    repository.NewPostgresCandidateRepository(db),
	}
	c.Search = usecase.NewSearchUsecase(c.Opportunities, redisCache, logger)
	c.Matching = usecase.NewMatchingUsecase(c.Candidates, c.Opportunities, engine, logger)

	return c, nil
}

func (c *Container) Migrate(ctx context.Context) (int, error) {
	r := migration.Runner{Dir: c.Config.App.MigrationsDir, Logger: c.Logger}
	return r.Run(ctx, c.DB.SQLDB())
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var firstErr error
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			firstErr = err
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
