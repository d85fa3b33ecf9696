package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://sandbox.monnify.com/api/v1")
//	resp, err := client.R().Get("/auth/login")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient bound to baseURL.
//
// The client asks for JSON responses by default, never retries, and does
// not parse response bodies on its own; decoding is left to the caller.
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetRetryCount(0).
		SetDoNotParseResponse(false)

	return &HTTPClient{Client: client}
}
