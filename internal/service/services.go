package service

import (
	"github.com/MKhiriev/monnify-relay/internal/adapter"
	"github.com/MKhiriev/monnify-relay/internal/config"
	"github.com/MKhiriev/monnify-relay/internal/logger"
	"github.com/MKhiriev/monnify-relay/models"
)

type Services struct {
	IdentityService IdentityService
	DemoService     DemoService
	AppInfoService  AppInfoService
}

// Clients groups the upstream request clients the services talk through.
type Clients struct {
	Provider adapter.Requester
	Demo     adapter.Requester
}

func NewServices(clients Clients, cfg config.Provider, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	return &Services{
		IdentityService: NewIdentityService(clients.Provider, cfg, logger),
		DemoService:     NewDemoService(clients.Demo, logger),
		AppInfoService:  NewAppInfoService(buildInfo, logger),
	}
}
