package service

import (
	"github.com/tourhive/tourhive/internal/config"
	"github.com/tourhive/tourhive/internal/domain/booking"
	"github.com/tourhive/tourhive/internal/domain/packages"
	"github.com/tourhive/tourhive/internal/logger"
)

// ServiceParams holds the shared dependencies injected into every service.
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration

	BookingRepo booking.Repository
	PackageRepo packages.Repository
}
