package testutil

import (
	"github.com/stretchr/testify/suite"

	"github.com/tourhive/tourhive/internal/config"
	"github.com/tourhive/tourhive/internal/logger"
)

// Stores groups the in-memory repositories used by service tests.
type Stores struct {
	BookingRepo *InMemoryBookingStore
	PackageRepo *InMemoryPackageStore
}

// BaseServiceTestSuite provides the shared fixture for service-level tests:
// a debug logger, the default config and fresh in-memory stores per test.
type BaseServiceTestSuite struct {
	suite.Suite
	logger *logger.Logger
	config *config.Configuration
	stores Stores
}

func (s *BaseServiceTestSuite) SetupTest() {
	s.config = config.GetDefaultConfig()

	log, err := logger.NewLogger(s.config)
	s.Require().NoError(err)
	s.logger = log

	s.stores = Stores{
		BookingRepo: NewInMemoryBookingStore(),
		PackageRepo: NewInMemoryPackageStore(),
	}
}

func (s *BaseServiceTestSuite) TearDownTest() {
	s.stores.BookingRepo.Clear()
	s.stores.PackageRepo.Clear()
}

func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}
