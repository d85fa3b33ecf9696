package service

import (
	"context"

	"github.com/MKhiriev/monnify-relay/models"
)

// IdentityService logs in to the payment provider and optionally looks up
// a National Identification Number with the issued token.
type IdentityService interface {
	// NINDetails authenticates with the provider and, when nin is non-empty,
	// fetches its details. Returns ErrAuthenticationFailed when the provider
	// issues no access token.
	NINDetails(ctx context.Context, nin string) (models.IdentityDetails, error)
}

// DemoService probes the demo upstream.
type DemoService interface {
	// Ping returns the HTTP status of the demo upstream root. Returns
	// ErrDemoUnreachable when no response arrives or the status is not 2xx.
	Ping(ctx context.Context) (int, error)
}

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
