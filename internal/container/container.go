package container

import (
	"mergington-api/internal/config"
	"mergington-api/internal/domain"
	"mergington-api/internal/service"
	"mergington-api/pkg/logger"
	"mergington-api/pkg/redis"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *logger.Logger
	RedisClient *redis.Client
	Services    *service.Services
}

// New creates a new dependency injection container seeded with the
// school's activity catalog
func New(cfg *config.Config, logger *logger.Logger) (*Container, error) {
	return NewWithCatalog(cfg, logger, domain.SeedActivities())
}

// NewWithCatalog creates a container over the given seed catalog
func NewWithCatalog(cfg *config.Config, logger *logger.Logger, seed domain.Catalog) (*Container, error) {
	// Redis is optional; without it signup rate limiting is off
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		client, err := redis.NewClient(cfg.RedisURL, cfg.Environment, logger.Logger)
		if err != nil {
			logger.WithError(err).Warn("Failed to initialize Redis client, proceeding without rate limiting")
		} else {
			redisClient = client
			logger.Info("Redis client initialized successfully")
		}
	} else {
		logger.Info("Redis URL not configured, proceeding without rate limiting")
	}

	services := &service.Services{
		Catalog: service.NewCatalogService(seed, logger),
	}

	return &Container{
		Config:      cfg,
		Logger:      logger,
		RedisClient: redisClient,
		Services:    services,
	}, nil
}

// GetCatalogService returns the catalog service
func (c *Container) GetCatalogService() service.CatalogService {
	return c.Services.Catalog
}

// GetLogger returns the logger
func (c *Container) GetLogger() *logger.Logger {
	return c.Logger
}

// GetConfig returns the configuration
func (c *Container) GetConfig() *config.Config {
	return c.Config
}

// GetRedisClient returns the Redis client (may be nil if not configured)
func (c *Container) GetRedisClient() *redis.Client {
	return c.RedisClient
}

// HasRedis returns true if Redis client is available
func (c *Container) HasRedis() bool {
	return c.RedisClient != nil
}

// Close releases external connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		return c.RedisClient.Close()
	}
	return nil
}
