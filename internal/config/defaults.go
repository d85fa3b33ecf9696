package config

import "time"

const (
	DefaultAppName         = "monnify-relay"
	DefaultEnvironment     = "development"
	DefaultPort            = 5000
	DefaultShutdownTimeout = 15 * time.Second
	DefaultProviderBaseURL = "https://sandbox.monnify.com/api/v1"
	DefaultDemoURL         = "https://httpbin.org"
	DefaultLogLevel        = "debug"

	// placeholderCredential matches the sandbox placeholder used when no
	// credentials are configured. Authentication against the provider fails
	// with it, which is surfaced to callers as a 401.
	placeholderCredential = "xxxx"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:        DefaultAppName,
			Environment: DefaultEnvironment,
		},
		Server: Server{
			Port:               DefaultPort,
			ShutdownTimeout:    DefaultShutdownTimeout,
			CORSAllowedOrigins: []string{"*"},
		},
		Provider: Provider{
			BaseURL:   DefaultProviderBaseURL,
			APIKey:    placeholderCredential,
			SecretKey: placeholderCredential,
		},
		Demo: Demo{
			URL: DefaultDemoURL,
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
	}
}
