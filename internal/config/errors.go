package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid inbound server settings
	// (for example, a port outside 1-65535).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidProviderConfigs indicates invalid payment provider settings
	// (for example, a malformed base URL or empty credentials).
	ErrInvalidProviderConfigs = errors.New("invalid provider configuration")
	// ErrInvalidDemoConfigs indicates an invalid demo upstream URL.
	ErrInvalidDemoConfigs = errors.New("invalid demo configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
