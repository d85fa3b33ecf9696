package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig mirrors [StructuredConfig] for JSON and YAML config
// files. Durations are written as strings such as "30s" or "1m".
type StructuredFileConfig struct {
	App struct {
		Name        string `json:"name" yaml:"name"`
		Environment string `json:"env" yaml:"env"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Server struct {
		Host               string   `json:"host" yaml:"host"`
		Port               int      `json:"port" yaml:"port"`
		BaseURL            string   `json:"base_url" yaml:"base_url"`
		ReadTimeout        Duration `json:"read_timeout" yaml:"read_timeout"`
		WriteTimeout       Duration `json:"write_timeout" yaml:"write_timeout"`
		ShutdownTimeout    Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
		CORSAllowedOrigins []string `json:"cors_allowed_origins" yaml:"cors_allowed_origins"`
		KeepAliveInterval  Duration `json:"keepalive_interval" yaml:"keepalive_interval"`
	} `json:"server,omitempty" yaml:"server,omitempty"`

	Provider struct {
		BaseURL        string   `json:"base_url" yaml:"base_url"`
		APIKey         string   `json:"api_key" yaml:"api_key"`
		SecretKey      string   `json:"secret_key" yaml:"secret_key"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"provider,omitempty" yaml:"provider,omitempty"`

	Demo struct {
		URL string `json:"url" yaml:"url"`
	} `json:"demo,omitempty" yaml:"demo,omitempty"`

	Log struct {
		Level  string `json:"level" yaml:"level"`
		Pretty bool   `json:"pretty" yaml:"pretty"`
		File   string `json:"file" yaml:"file"`
	} `json:"log,omitempty" yaml:"log,omitempty"`
}

// parseFile reads a config file. Files ending in .yaml or .yml are decoded
// as YAML, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(raw, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err = json.Unmarshal(raw, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return &StructuredConfig{
		App: App{
			Name:        fileCfg.App.Name,
			Environment: fileCfg.App.Environment,
		},
		Server: Server{
			Host:               fileCfg.Server.Host,
			Port:               fileCfg.Server.Port,
			BaseURL:            fileCfg.Server.BaseURL,
			ReadTimeout:        time.Duration(fileCfg.Server.ReadTimeout),
			WriteTimeout:       time.Duration(fileCfg.Server.WriteTimeout),
			ShutdownTimeout:    time.Duration(fileCfg.Server.ShutdownTimeout),
			KeepAliveInterval:  time.Duration(fileCfg.Server.KeepAliveInterval),
			CORSAllowedOrigins: fileCfg.Server.CORSAllowedOrigins,
		},
		Provider: Provider{
			BaseURL:        fileCfg.Provider.BaseURL,
			APIKey:         fileCfg.Provider.APIKey,
			SecretKey:      fileCfg.Provider.SecretKey,
			RequestTimeout: time.Duration(fileCfg.Provider.RequestTimeout),
		},
		Demo: Demo{
			URL: fileCfg.Demo.URL,
		},
		Log: Log{
			Level:  fileCfg.Log.Level,
			Pretty: fileCfg.Log.Pretty,
			File:   fileCfg.Log.File,
		},
	}, nil
}

// Duration is a wrapper around time.Duration that supports unmarshaling from
// strings like "1h", "30s" in both JSON and YAML.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	tmp, err := time.ParseDuration(node.Value)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
