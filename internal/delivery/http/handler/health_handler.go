package handler

import (
	"context"
	"time"

	"comptrack/internal/database"
	"comptrack/internal/infrastructure/cache"
	"comptrack/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	db    database.DB
	cache *cache.Redis
}

func NewHealthHandler(db database.DB, cacheRedis *cache.Redis) *HealthHandler {
	return &HealthHandler{db: db, cache: cacheRedis}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/healthz", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "ok"
	if h.db == nil || h.db.Ping(ctx) != nil {
		dbStatus = "down"
	}

	// A down cache degrades to bypass, so it never fails the check.
	cacheStatus := "ok"
	if h.cache == nil || h.cache.Ping(ctx) != nil {
		cacheStatus = "bypassed"
	}

	status := fiber.StatusOK
	if dbStatus != "ok" {
		status = fiber.StatusServiceUnavailable
	}

	return response.Success(c, status, "", map[string]string{
		"database": dbStatus,
		"cache":    cacheStatus,
	})
}
