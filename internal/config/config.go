// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"strconv"
	"time"
)

// StructuredConfig is the top-level configuration container for the relay.
// It aggregates all sub-configurations and is populated by merging defaults,
// a `.env` file, environment variables, command-line flags and an optional
// JSON or YAML file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application identity settings.
	App App `envPrefix:"APP_"`

	// Server holds the listening address and timeouts of the inbound HTTP
	// server, as well as its public base URL.
	Server Server

	// Provider holds the payment provider endpoint and credentials.
	Provider Provider `envPrefix:"MONNIFY_"`

	// Demo holds the endpoint of the demo upstream queried by GET /api.
	Demo Demo `envPrefix:"DEMO_"`

	// Log holds logger level and output settings.
	Log Log `envPrefix:"LOG_"`

	// ConfigFilePath is the optional path to a JSON or YAML configuration
	// file. When non-empty, the file is parsed and merged on top of the
	// values already loaded from the other sources.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds application identity values.
type App struct {
	// Name is the service name used as the logger role.
	// Env: APP_NAME
	Name string `env:"NAME"`

	// Environment is the deployment environment ("development", "production").
	// Env: APP_ENV
	Environment string `env:"ENV"`
}

// Server holds network and timeout settings for the inbound transport layer.
// Its env names are not prefixed to stay compatible with PORT/BASE_URL
// conventions of PaaS hosts.
type Server struct {
	// Host is the interface the HTTP server binds to. Empty means all
	// interfaces.
	// Env: HOST
	Host string `env:"HOST"`

	// Port is the TCP port the HTTP server listens on.
	// Env: PORT
	Port int `env:"PORT"`

	// BaseURL is the public URL of this relay. It is advertised by the
	// Swagger documentation.
	// Env: BASE_URL
	BaseURL string `env:"BASE_URL"`

	// ReadTimeout bounds reading an entire inbound request. Zero disables it.
	// Env: SERVER_READ_TIMEOUT
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT"`

	// WriteTimeout bounds writing a response. Zero disables it.
	// Env: SERVER_WRITE_TIMEOUT
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown after a stop signal.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT"`

	// CORSAllowedOrigins lists origins allowed by the CORS middleware.
	// Env: CORS_ALLOWED_ORIGINS (comma separated)
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	// KeepAliveInterval makes the relay ping its own BaseURL periodically so
	// that idling PaaS hosts do not put it to sleep. Zero disables it.
	// Env: KEEPALIVE_INTERVAL
	KeepAliveInterval time.Duration `env:"KEEPALIVE_INTERVAL"`
}

// Provider holds the settings of the payment provider API.
type Provider struct {
	// BaseURL is the address all provider paths are resolved against.
	// Env: MONNIFY_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// APIKey is the provider API key used for Basic authentication.
	// Env: MONNIFY_API_KEY
	APIKey string `env:"API_KEY"`

	// SecretKey is the provider client secret used for Basic authentication.
	// Env: MONNIFY_SECRET_KEY
	SecretKey string `env:"SECRET_KEY"`

	// RequestTimeout bounds every provider call. Zero means no timeout.
	// Env: MONNIFY_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Demo holds the settings of the demo upstream.
type Demo struct {
	// URL is the base address of the demo upstream.
	// Env: DEMO_API_URL
	URL string `env:"API_URL"`
}

// Log holds logger settings.
type Log struct {
	// Level is one of debug, info, warn, error.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// Pretty switches from JSON lines to human-readable console output.
	// Env: LOG_PRETTY
	Pretty bool `env:"PRETTY"`

	// File is an optional path of a rotated log file written in addition to
	// stdout.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// Address returns the host:port pair the HTTP server listens on.
func (s Server) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// GetStructuredConfig loads, merges, and validates the relay configuration
// from all available sources in the following priority order (later sources
// override non-zero fields of earlier ones):
//  1. Built-in defaults
//  2. Environment variables (after loading ./.env if present)
//  3. Command-line flags
//  4. JSON/YAML file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(defaultDotEnvPath).
		withEnv().
		withFlags(args).
		withFile().
		build()
}
