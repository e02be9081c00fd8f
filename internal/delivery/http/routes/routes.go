package routes

import (
	"log"

	"comptrack/internal/config"
	"comptrack/internal/database"
	"comptrack/internal/delivery/http/handler"
	"comptrack/internal/infrastructure/cache"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	cfg    config.Config
	db     database.DB
	cache  *cache.Redis
	logger *log.Logger

	health *handler.HealthHandler
}

func NewRegistry(cfg config.Config, db database.DB, cacheRedis *cache.Redis, logger *log.Logger) *Registry {
	return &Registry{
		cfg:    cfg,
		db:     db,
		cache:  cacheRedis,
		logger: logger,
		health: handler.NewHealthHandler(db, cacheRedis),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.cfg, r.db, r.cache, r.logger)
}
