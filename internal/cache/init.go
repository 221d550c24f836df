package cache

import (
	"github.com/omnistore/backoffice/internal/config"
	"github.com/omnistore/backoffice/internal/logger"
)

// Initialize initializes the cache system
func Initialize(cfg *config.Configuration, log *logger.Logger) *InMemoryCache {
	log.Info("Initializing cache system")

	InitializeInMemoryCache(cfg)

	return GetInMemoryCache()
}
