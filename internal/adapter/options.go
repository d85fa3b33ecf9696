package adapter

import (
	"net/http"
	"strings"
	"time"
)

// RequestOption adjusts a single call made through [APIClient.Request].
// Values set here take precedence over the client's defaults.
type RequestOption func(*requestConfig)

type requestConfig struct {
	headers map[string]string
	query   map[string]string
	timeout time.Duration
	auth    *credentials
}

// credentials are applied through resty's auth setters.
type credentials struct {
	bearer       bool
	token        string
	user, secret string
}

const authorizationHeader = "Authorization"

func newRequestConfig(defaultTimeout time.Duration, opts []RequestOption) *requestConfig {
	cfg := &requestConfig{
		headers: make(map[string]string),
		query:   make(map[string]string),
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// WithHeader sets one request header, replacing a client default of the
// same name.
func WithHeader(key, value string) RequestOption {
	return func(c *requestConfig) {
		c.setHeader(key, value)
	}
}

func WithHeaders(headers map[string]string) RequestOption {
	return func(c *requestConfig) {
		for k, v := range headers {
			c.setHeader(k, v)
		}
	}
}

// setHeader stores a canonical header. An explicit Authorization header
// replaces credentials set by an earlier auth option.
func (c *requestConfig) setHeader(key, value string) {
	key = http.CanonicalHeaderKey(key)
	if key == authorizationHeader {
		c.auth = nil
	}
	c.headers[key] = value
}

func (c *requestConfig) setAuth(cred *credentials) {
	delete(c.headers, authorizationHeader)
	c.auth = cred
}

func WithQueryParam(key, value string) RequestOption {
	return func(c *requestConfig) {
		c.query[key] = value
	}
}

func WithQueryParams(params map[string]string) RequestOption {
	return func(c *requestConfig) {
		for k, v := range params {
			c.query[k] = v
		}
	}
}

// WithBearerToken sends "Authorization: Bearer <token>". Surrounding
// whitespace of token is trimmed.
func WithBearerToken(token string) RequestOption {
	return func(c *requestConfig) {
		c.setAuth(&credentials{bearer: true, token: strings.TrimSpace(token)})
	}
}

// WithBasicAuth sends HTTP Basic credentials.
func WithBasicAuth(user, secret string) RequestOption {
	return func(c *requestConfig) {
		c.setAuth(&credentials{user: user, secret: secret})
	}
}

// WithTimeout bounds the call by d. Zero or negative disables the bound,
// including a default set with [WithRequestTimeout].
func WithTimeout(d time.Duration) RequestOption {
	return func(c *requestConfig) {
		c.timeout = d
	}
}

// ClientOption configures an [APIClient] at construction.
type ClientOption func(*APIClient)

// WithDefaultHeader adds a header sent on every call of the client.
func WithDefaultHeader(key, value string) ClientOption {
	return func(c *APIClient) {
		c.client.SetHeader(key, value)
	}
}

// WithRequestTimeout sets a default per-call timeout. Zero means none.
func WithRequestTimeout(d time.Duration) ClientOption {
	return func(c *APIClient) {
		c.timeout = d
	}
}

// WithTransport replaces the underlying round tripper.
func WithTransport(rt http.RoundTripper) ClientOption {
	return func(c *APIClient) {
		c.client.SetTransport(rt)
	}
}
