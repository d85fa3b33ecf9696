// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/monnify-relay/internal/logger"
	"github.com/MKhiriev/monnify-relay/internal/utils"
)

// APIClient is the generic request client bound to one upstream base URL.
// Its state is fixed after construction, so one instance may serve any
// number of goroutines.
type APIClient struct {
	client  *utils.HTTPClient
	baseURL string
	timeout time.Duration

	logger *logger.Logger
}

var _ Requester = (*APIClient)(nil)

// NewAPIClient constructs an [APIClient]. It normalises and validates
// baseURL (a scheme and host are required; "http://" is assumed when the
// scheme is missing; trailing slashes are trimmed) and binds a resty client
// to the result. log receives entries for calls whose context carries no
// request-scoped logger.
func NewAPIClient(baseURL string, log *logger.Logger, opts ...ClientOption) (*APIClient, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if log == nil {
		log = logger.Nop()
	}

	client := utils.NewHTTPClient(normalized)
	client.SetLogger(newRestyLogger(log))

	c := &APIClient{client: client, baseURL: normalized, logger: log}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	return c, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// BaseURL returns the normalised base URL the client is bound to.
func (c *APIClient) BaseURL() string {
	return c.baseURL
}

// Request implements [Requester].
//
// It never returns an error: a transport fault yields an Empty result with
// StatusCode 0, a non-2xx JSON response yields ProviderError, and a body
// that is empty or not JSON yields Empty with the received status. Each of
// these is logged through the logger carried by ctx, falling back to the
// client's own logger. Methods other than GET, POST, PUT, PATCH and DELETE
// produce an Empty result without touching the network.
func (c *APIClient) Request(ctx context.Context, method, path string, body any, opts ...RequestOption) Result {
	log := logger.FromContextOr(ctx, c.logger)
	method = strings.ToUpper(strings.TrimSpace(method))

	if !isSupportedMethod(method) {
		log.Error().Err(ErrUnsupportedMethod).
			Str("method", method).
			Str("path", path).
			Msg("request skipped")
		return emptyResult(0)
	}
	if isAbsoluteURL(path) {
		log.Error().Err(ErrAbsoluteRequestURL).
			Str("method", method).
			Str("path", path).
			Msg("request skipped")
		return emptyResult(0)
	}

	cfg := newRequestConfig(c.timeout, opts)
	if cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}

	req := c.client.R().
		SetContext(ctx).
		SetQueryParams(cfg.query)

	if body != nil && methodSendsBody(method) {
		payload, err := json.Marshal(body)
		if err != nil {
			log.Error().Err(fmt.Errorf("%w: %w", ErrEncodeBody, err)).
				Str("method", method).
				Str("path", path).
				Msg("request skipped")
			return emptyResult(0)
		}
		req.SetHeader("Content-Type", "application/json").SetBody(payload)
	}

	// per-call headers go last so they win over the JSON content type
	req.SetHeaders(cfg.headers)

	if cfg.auth != nil {
		if cfg.auth.bearer {
			req.SetAuthToken(cfg.auth.token)
		} else {
			req.SetBasicAuth(cfg.auth.user, cfg.auth.secret)
		}
	}

	start := time.Now()
	resp, err := req.Execute(method, path)
	if err != nil {
		log.Error().Err(err).
			Str("method", method).
			Str("path", path).
			Dur("duration", time.Since(start)).
			Msg("upstream request failed")
		return emptyResult(0)
	}

	result := newResult(resp.StatusCode(), resp.Body())

	switch {
	case result.IsProviderError():
		log.Error().
			Str("method", method).
			Str("path", path).
			Int("status", result.StatusCode).
			RawJSON("body", result.Body).
			Dur("duration", resp.Time()).
			Msg("upstream returned an error response")
	case result.IsEmpty():
		log.Warn().
			Str("method", method).
			Str("path", path).
			Int("status", result.StatusCode).
			Int("size", len(resp.Body())).
			Dur("duration", resp.Time()).
			Msg("upstream response has no JSON payload")
	default:
		log.Debug().
			Str("method", method).
			Str("path", path).
			Int("status", result.StatusCode).
			Dur("duration", resp.Time()).
			Msg("upstream request completed")
	}

	return result
}

func (c *APIClient) Get(ctx context.Context, path string, opts ...RequestOption) Result {
	return c.Request(ctx, http.MethodGet, path, nil, opts...)
}

func (c *APIClient) Post(ctx context.Context, path string, body any, opts ...RequestOption) Result {
	return c.Request(ctx, http.MethodPost, path, body, opts...)
}

func (c *APIClient) Put(ctx context.Context, path string, body any, opts ...RequestOption) Result {
	return c.Request(ctx, http.MethodPut, path, body, opts...)
}

func (c *APIClient) Patch(ctx context.Context, path string, body any, opts ...RequestOption) Result {
	return c.Request(ctx, http.MethodPatch, path, body, opts...)
}

func (c *APIClient) Delete(ctx context.Context, path string, opts ...RequestOption) Result {
	return c.Request(ctx, http.MethodDelete, path, nil, opts...)
}

func isSupportedMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

func methodSendsBody(method string) bool {
	return method == http.MethodPost || method == http.MethodPut || method == http.MethodPatch
}

func isAbsoluteURL(path string) bool {
	u, err := url.Parse(path)
	return err == nil && u.IsAbs()
}
