package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── -a/--address value ──

func TestNetAddress(t *testing.T) {
	t.Run("zero value renders empty", func(t *testing.T) {
		assert.Empty(t, (&NetAddress{}).String())
	})

	tests := []struct {
		in       string
		want     NetAddress
		wantText string
		errPart  string
	}{
		{in: "localhost:5000", want: NetAddress{Host: "localhost", Port: 5000}, wantText: "localhost:5000"},
		{in: "0.0.0.0:8080", want: NetAddress{Host: "0.0.0.0", Port: 8080}, wantText: "0.0.0.0:8080"},
		{in: ":5000", want: NetAddress{Port: 5000}, wantText: ":5000"},
		{in: "5000", errPart: "need address in a form `host:port`"},
		{in: ":port", errPart: "invalid syntax"},
		{in: ":0", errPart: "port number must be in range"},
		{in: ":65536", errPart: "port number must be in range"},
		{in: "relay.local:5000", errPart: "incorrect IP-address provided"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.in)

			if tt.errPart != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errPart)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
			assert.Equal(t, tt.wantText, addr.String())
		})
	}
}

// ── flag set ──

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "all flags set",
			args: []string{
				"-a", "127.0.0.1:8080",
				"--base-url", "https://relay.example.com",
				"--read-timeout", "5s",
				"--write-timeout", "6s",
				"--shutdown-timeout", "7s",
				"--keepalive", "10m",
				"--cors-origins", "https://a.example.com,https://b.example.com",
				"--provider-url", "https://api.monnify.com/api/v1",
				"--api-key", "key",
				"--secret-key", "secret",
				"--provider-timeout", "30s",
				"--demo-url", "https://demo.example.com",
				"--log-level", "warn",
				"--log-pretty",
				"--log-file", "/tmp/relay.log",
				"-c", "/path/to/config.yaml",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, "https://relay.example.com", cfg.Server.BaseURL)
				assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 6*time.Second, cfg.Server.WriteTimeout)
				assert.Equal(t, 7*time.Second, cfg.Server.ShutdownTimeout)
				assert.Equal(t, 10*time.Minute, cfg.Server.KeepAliveInterval)
				assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.CORSAllowedOrigins)
				assert.Equal(t, "https://api.monnify.com/api/v1", cfg.Provider.BaseURL)
				assert.Equal(t, "key", cfg.Provider.APIKey)
				assert.Equal(t, "secret", cfg.Provider.SecretKey)
				assert.Equal(t, 30*time.Second, cfg.Provider.RequestTimeout)
				assert.Equal(t, "https://demo.example.com", cfg.Demo.URL)
				assert.Equal(t, "warn", cfg.Log.Level)
				assert.True(t, cfg.Log.Pretty)
				assert.Equal(t, "/tmp/relay.log", cfg.Log.File)
				assert.Equal(t, "/path/to/config.yaml", cfg.ConfigFilePath)
			},
		},
		{
			name: "long config flag",
			args: []string{"--config", "/path/to/config.json"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/path/to/config.json", cfg.ConfigFilePath)
			},
		},
		{
			name: "no flags",
			args: nil,
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Zero(t, cfg.Server.Port)
				assert.Empty(t, cfg.Provider.APIKey)
				assert.Nil(t, cfg.Server.CORSAllowedOrigins)
				assert.Empty(t, cfg.ConfigFilePath)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := parseFlags([]string{"-a", "nowhere"})

	require.Error(t, err)
}
