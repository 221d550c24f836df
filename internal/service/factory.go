package service

import (
	"github.com/omnistore/backoffice/internal/cache"
	"github.com/omnistore/backoffice/internal/config"
	"github.com/omnistore/backoffice/internal/domain/customerreturn"
	"github.com/omnistore/backoffice/internal/domain/vendor"
	"github.com/omnistore/backoffice/internal/domain/vendorreturn"
	"github.com/omnistore/backoffice/internal/logger"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	Cache  cache.Cache

	// Repositories
	VendorRepo         vendor.Repository
	CustomerReturnRepo customerreturn.Repository
	VendorReturnRepo   vendorreturn.Repository
}

// NewServiceParams builds the common dependency bundle for services
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	cache cache.Cache,
	vendorRepo vendor.Repository,
	customerReturnRepo customerreturn.Repository,
	vendorReturnRepo vendorreturn.Repository,
) ServiceParams {
	return ServiceParams{
		Logger:             logger,
		Config:             config,
		Cache:              cache,
		VendorRepo:         vendorRepo,
		CustomerReturnRepo: customerReturnRepo,
		VendorReturnRepo:   vendorReturnRepo,
	}
}
