package container

import (
	"context"
	"fmt"

	"marvel/catalog/internal/client"
	"marvel/catalog/internal/config"
	"marvel/catalog/internal/repository"
	"marvel/catalog/internal/service"
	"marvel/catalog/internal/state"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"resty.dev/v3"
)

// Container holds all initialized components
type Container struct {
	Config       *config.Config
	Client       client.CatalogClient
	StateManager state.StateManager
	Repository   repository.CatalogRepository

	Service *service.Service

	httpClient *resty.Client
	db         *pgxpool.Pool
	redis      *redis.Client
}

// New creates a new container with all dependencies initialized
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	container := &Container{
		Config: cfg,
	}

	container.httpClient = client.NewRestyClient(cfg.Marvel)
	container.Client = client.NewCatalogClientWithResty(cfg.Marvel, container.httpClient)

	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.Database,
		})

		if err := rdb.Ping(ctx).Err(); err != nil {
			container.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}

		log.Info("✅ Connected to Redis successfully")
		container.redis = rdb
		container.StateManager = state.NewRedisStateManager(rdb)
	} else {
		container.StateManager = state.NewMemoryStateManager()
	}

	if cfg.Database.Enabled {
		db, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			container.Close()
			return nil, fmt.Errorf("failed to create database pool: %w", err)
		}
		container.db = db

		if err := db.Ping(ctx); err != nil {
			container.Close()
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		log.Info("✅ Connected to database successfully")
		container.Repository = repository.NewCatalogRepository(db)
	}

	container.Service = service.NewService(container.Client, container.StateManager, container.Repository)

	return container, nil
}

// Close performs cleanup when shutting down
func (c *Container) Close() {
	log.Debug("Shutting down container...")

	if c.db != nil {
		c.db.Close()
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			log.Warnf("Failed to close Redis client: %v", err)
		}
	}
	if c.httpClient != nil {
		if err := c.httpClient.Close(); err != nil {
			log.Warnf("Failed to close HTTP client: %v", err)
		}
	}
}
