package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the TemplateHub CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - SessionDir: directory holding the saved login; empty means ~/.templatehub.
//   - RequestTimeout: deadline applied to every command's server calls.
type Config struct {
	ServerEndpointAddr string
	SessionDir         string
	RequestTimeout     time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.SessionDir = ""
	c.RequestTimeout = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the JSON file at configFile (if given) and the environment. Command-line
// flags are applied afterwards by the cobra commands.
func LoadConfig(configFile string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, configFile); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}
