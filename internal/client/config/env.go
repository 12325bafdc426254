package config

import (
	"fmt"
	"time"
)

const envPrefix = "TEMPLATEHUB_"

func parseEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(envPrefix + "SERVER_ADDR"); ok && v != "" {
		cfg.ServerEndpointAddr = v
	}
	if v, ok := lookup(envPrefix + "SESSION_DIR"); ok && v != "" {
		cfg.SessionDir = v
	}
	if v, ok := lookup(envPrefix + "REQUEST_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sREQUEST_TIMEOUT: %w", envPrefix, err)
		}
		cfg.RequestTimeout = d
	}
	return nil
}
