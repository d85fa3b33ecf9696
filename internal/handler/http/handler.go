package http

import (
	"github.com/MKhiriev/monnify-relay/internal/config"
	"github.com/MKhiriev/monnify-relay/internal/logger"
	"github.com/MKhiriev/monnify-relay/internal/service"
	"github.com/MKhiriev/monnify-relay/internal/utils"
)

type Handler struct {
	services *service.Services

	corsAllowedOrigins []string
	traceIDs           *utils.TraceIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:           services,
		corsAllowedOrigins: cfg.CORSAllowedOrigins,
		traceIDs:           utils.NewTraceIDGenerator(),
		logger:             logger,
	}
}
