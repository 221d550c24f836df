package testutil

import (
	"context"
	"time"

	"github.com/omnistore/backoffice/internal/cache"
	"github.com/omnistore/backoffice/internal/config"
	"github.com/omnistore/backoffice/internal/domain/customerreturn"
	"github.com/omnistore/backoffice/internal/domain/vendor"
	"github.com/omnistore/backoffice/internal/domain/vendorreturn"
	"github.com/omnistore/backoffice/internal/logger"
	"github.com/omnistore/backoffice/internal/repository/memory"
	"github.com/omnistore/backoffice/internal/types"
	"github.com/omnistore/backoffice/internal/validator"
	"github.com/stretchr/testify/suite"
)

// Stores holds all the repository interfaces for testing
type Stores struct {
	VendorRepo         vendor.Repository
	CustomerReturnRepo customerreturn.Repository
	VendorReturnRepo   vendorreturn.Repository
}

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	stores Stores
	cache  cache.Cache
	logger *logger.Logger
	config *config.Configuration
	now    time.Time
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	// Initialize validator
	validator.NewValidator()

	cfg := &config.Configuration{
		Deployment: config.DeploymentConfig{Mode: types.ModeLocal},
		Logging: config.LoggingConfig{
			Level: types.LogLevelInfo,
		},
		Cache: config.CacheConfig{Enabled: true},
	}
	var err error
	s.config = cfg
	s.logger, err = logger.NewLogger(cfg)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}

	s.cache = cache.Initialize(cfg, s.logger)
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.setupContext()
	s.setupStores()
	s.cache.Flush(s.ctx)
	s.now = time.Now().UTC()
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.cache.Flush(s.ctx)
}

func (s *BaseServiceTestSuite) setupContext() {
	ctx := types.WithRequestID(context.Background())
	ctx = context.WithValue(ctx, types.CtxActorID, "Admin")
	s.ctx = ctx
}

func (s *BaseServiceTestSuite) setupStores() {
	s.stores = Stores{
		VendorRepo:         memory.NewVendorStore(),
		CustomerReturnRepo: memory.NewCustomerReturnStore(),
		VendorReturnRepo:   memory.NewVendorReturnStore(),
	}
}

func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

func (s *BaseServiceTestSuite) GetCache() cache.Cache {
	return s.cache
}

func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now
}
