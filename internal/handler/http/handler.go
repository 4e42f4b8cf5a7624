package http

import (
	"github.com/MKhiriev/go-account-sync/internal/config"
	"github.com/MKhiriev/go-account-sync/internal/logger"
	"github.com/MKhiriev/go-account-sync/internal/service"
	"github.com/MKhiriev/go-account-sync/internal/utils"
)

type Handler struct {
	services *service.Services

	hashKey string
	limiter *ipRateLimiter

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. A non-empty cfg.App.HashKey turns on
// integrity checking of /save-data bodies.
func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	if cfg.App.HashKey != "" {
		utils.InitHasherPool(cfg.App.HashKey)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		hashKey:  cfg.App.HashKey,
		limiter:  newIPRateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst),
		logger:   logger,
	}
}
