// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// sentinel errors from errors.go otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("%w: port %d", ErrInvalidServerConfigs, cfg.Server.Port)
	}
	if cfg.Server.ShutdownTimeout < 0 || cfg.Server.ReadTimeout < 0 || cfg.Server.WriteTimeout < 0 ||
		cfg.Server.KeepAliveInterval < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidServerConfigs)
	}

	if err := validateURL(cfg.Provider.BaseURL); err != nil {
		return fmt.Errorf("%w: base url: %w", ErrInvalidProviderConfigs, err)
	}
	if strings.TrimSpace(cfg.Provider.APIKey) == "" || strings.TrimSpace(cfg.Provider.SecretKey) == "" {
		return fmt.Errorf("%w: empty credentials", ErrInvalidProviderConfigs)
	}
	if cfg.Provider.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidProviderConfigs)
	}

	if err := validateURL(cfg.Demo.URL); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDemoConfigs, err)
	}

	switch cfg.Log.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: unknown level %q", ErrInvalidLogConfigs, cfg.Log.Level)
	}

	return nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%q must include scheme and host", raw)
	}

	return nil
}
