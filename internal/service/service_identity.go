package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/monnify-relay/internal/adapter"
	"github.com/MKhiriev/monnify-relay/internal/config"
	"github.com/MKhiriev/monnify-relay/internal/logger"
	"github.com/MKhiriev/monnify-relay/models"
	"github.com/tidwall/gjson"
)

const (
	providerLoginPath      = "/auth/login"
	providerNINDetailsPath = "/vas/nin-details"

	accessTokenPath = "responseBody.accessToken"
	expiresInPath   = "responseBody.expiresIn"
)

type identityService struct {
	provider adapter.Requester

	apiKey    string
	secretKey string

	logger *logger.Logger
}

// NewIdentityService constructs an [IdentityService] that authenticates with
// the provider using the API key and secret from cfg.
func NewIdentityService(provider adapter.Requester, cfg config.Provider, logger *logger.Logger) IdentityService {
	return &identityService{
		provider:  provider,
		apiKey:    cfg.APIKey,
		secretKey: cfg.SecretKey,
		logger:    logger,
	}
}

func (s *identityService) NINDetails(ctx context.Context, nin string) (models.IdentityDetails, error) {
	log := logger.FromContextOr(ctx, s.logger)

	login := s.provider.Post(ctx, providerLoginPath, struct{}{},
		adapter.WithBasicAuth(s.apiKey, s.secretKey),
	)

	token := login.Get(accessTokenPath)
	if token.Type != gjson.String || token.Str == "" {
		log.Warn().
			Str("outcome", login.Outcome.String()).
			Int("status", login.StatusCode).
			Msg("provider login returned no access token")
		return models.IdentityDetails{}, ErrAuthenticationFailed
	}

	details := models.IdentityDetails{
		AccessToken: token.Str,
		ExpiresIn:   rawValue(login.Get(expiresInPath)),
	}

	if nin == "" {
		return details, nil
	}

	lookup := s.provider.Post(ctx, providerNINDetailsPath, models.NINLookupRequest{NIN: nin},
		adapter.WithBearerToken(token.Str),
	)
	details.NINDetails = lookup.Body

	log.Debug().
		Str("outcome", lookup.Outcome.String()).
		Int("status", lookup.StatusCode).
		Msg("nin lookup finished")

	return details, nil
}

// rawValue returns the JSON text of r, or nil when the path did not resolve.
func rawValue(r gjson.Result) json.RawMessage {
	if !r.Exists() {
		return nil
	}
	return json.RawMessage(r.Raw)
}
