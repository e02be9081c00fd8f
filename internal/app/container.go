package app

import (
	"context"
	"log"
	"time"

	"comptrack/internal/config"
	"comptrack/internal/database"
	"comptrack/internal/database/migration"
	dbpostgres "comptrack/internal/database/postgres"
	"comptrack/internal/database/seeder"
	"comptrack/internal/infrastructure/cache"
)

type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := migration.Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	if cfg.App.Environment != "production" {
		runner := seeder.Runner{Seeders: []seeder.Seeder{
			seeder.UsersSeeder{},
			seeder.CompetenciesSeeder{},
			seeder.TrainingsSeeder{},
		}}
		if err := runner.Run(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return &Container{
		Config: cfg,
		DB:     db,
		Cache:  cache.NewRedis(cfg.Redis, logger),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
