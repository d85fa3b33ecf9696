package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args (without the program
// name).
//
// Flags:
//
//	-a, --address          server address in format [host]:port
//	    --base-url         public base URL of the relay
//	    --read-timeout     inbound request read timeout (e.g. "10s")
//	    --write-timeout    response write timeout (e.g. "10s")
//	    --shutdown-timeout graceful shutdown timeout (e.g. "15s")
//	    --keepalive        self-ping interval, 0 disables (e.g. "10m")
//	    --cors-origins     comma separated allowed CORS origins
//	    --provider-url     payment provider base URL
//	    --api-key          payment provider API key
//	    --secret-key       payment provider secret key
//	    --provider-timeout payment provider request timeout (e.g. "30s")
//	    --demo-url         demo upstream base URL
//	    --log-level        debug, info, warn or error
//	    --log-pretty       human-readable console logs
//	    --log-file         rotated log file path
//	-c, --config           JSON or YAML config file path
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		address         NetAddress
		baseURL         string
		readTimeout     time.Duration
		writeTimeout    time.Duration
		shutdownTimeout time.Duration
		keepAlive       time.Duration
		corsOrigins     []string
		providerURL     string
		apiKey          string
		secretKey       string
		providerTimeout time.Duration
		demoURL         string
		logLevel        string
		logPretty       bool
		logFile         string
		configPath      string
	)

	fs := pflag.NewFlagSet(DefaultAppName, pflag.ContinueOnError)
	fs.VarP(&address, "address", "a", "Net address [host]:port")
	fs.StringVar(&baseURL, "base-url", "", "Public base URL of the relay")
	fs.DurationVar(&readTimeout, "read-timeout", 0, "Inbound request read timeout (e.g., 10s)")
	fs.DurationVar(&writeTimeout, "write-timeout", 0, "Response write timeout (e.g., 10s)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 15s)")
	fs.DurationVar(&keepAlive, "keepalive", 0, "Self-ping interval, 0 disables (e.g., 10m)")
	fs.StringSliceVar(&corsOrigins, "cors-origins", nil, "Allowed CORS origins")
	fs.StringVar(&providerURL, "provider-url", "", "Payment provider base URL")
	fs.StringVar(&apiKey, "api-key", "", "Payment provider API key")
	fs.StringVar(&secretKey, "secret-key", "", "Payment provider secret key")
	fs.DurationVar(&providerTimeout, "provider-timeout", 0, "Payment provider request timeout (e.g., 30s)")
	fs.StringVar(&demoURL, "demo-url", "", "Demo upstream base URL")
	fs.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.BoolVar(&logPretty, "log-pretty", false, "Human-readable console logs")
	fs.StringVar(&logFile, "log-file", "", "Rotated log file path")
	fs.StringVarP(&configPath, "config", "c", "", "JSON or YAML config file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Server: Server{
			Host:               address.Host,
			Port:               address.Port,
			BaseURL:            baseURL,
			ReadTimeout:        readTimeout,
			WriteTimeout:       writeTimeout,
			ShutdownTimeout:    shutdownTimeout,
			KeepAliveInterval:  keepAlive,
			CORSAllowedOrigins: corsOrigins,
		},
		Provider: Provider{
			BaseURL:        providerURL,
			APIKey:         apiKey,
			SecretKey:      secretKey,
			RequestTimeout: providerTimeout,
		},
		Demo: Demo{
			URL: demoURL,
		},
		Log: Log{
			Level:  logLevel,
			Pretty: logPretty,
			File:   logFile,
		},
		ConfigFilePath: configPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form [host]:port and populates the
// NetAddress. It validates the port range and checks IP correctness unless
// host is empty or "localhost".
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "address"
}
