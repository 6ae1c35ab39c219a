package http

import (
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/metrics"
	"github.com/MKhiriev/go-blog/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	cookies          cookieSettings
	defaultPageLimit int
	requestTimeout   time.Duration

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. A nil m gets a private registry.
func NewHandler(services *service.Services, cfg config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) *Handler {
	if m == nil {
		m = metrics.New()
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  m,
		cookies: cookieSettings{
			secure: cfg.App.IsProduction(),
			maxAge: cfg.App.TokenDuration,
		},
		defaultPageLimit: cfg.App.DefaultPageLimit,
		requestTimeout:   cfg.Server.RequestTimeout,
		logger:           logger,
	}
}
