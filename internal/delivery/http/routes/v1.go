package routes

import (
	"log"

	"comptrack/internal/config"
	"comptrack/internal/database"
	v1 "comptrack/internal/delivery/http/routes/v1"
	"comptrack/internal/infrastructure/cache"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, cfg config.Config, db database.DB, cacheRedis *cache.Redis, logger *log.Logger) {
	if r == nil {
		return
	}
	v1.Register(r, cfg, db, cacheRedis, logger)
}
