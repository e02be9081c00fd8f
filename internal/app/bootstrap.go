package app

import (
	"fmt"
	"log"
	"strings"

	"comptrack/internal/config"
	"comptrack/internal/delivery/http/middleware"
	"comptrack/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	if logger == nil {
		logger = log.Default()
	}

	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})

	f.Use(middleware.NewErrorMiddleware().Middleware())
	f.Use(middleware.NewAccessLogMiddleware(logger).Middleware())

	routes.NewRegistry(cfg, c.DB, c.Cache, logger).Register(f)

	return &App{Fiber: f, Container: c}, c.Close, nil
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
