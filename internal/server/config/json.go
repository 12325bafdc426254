package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/gerich15/TemplateHub/internal/flagx"
)

// Duration accepts either a Go duration string ("15m") or an integer
// number of nanoseconds in JSON.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(parsed)
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
	return nil
}

// JsonConfig is the on-disk shape of the server config file. Absent fields
// leave the current value untouched.
type JsonConfig struct {
	EndpointAddrGRPC             string   `json:"endpoint_addr_grpc"`
	EndpointAddrHTTP             string   `json:"endpoint_addr_http"`
	Storage                      string   `json:"storage"`
	DatabaseDSN                  string   `json:"database_dsn"`
	BoltPath                     string   `json:"bolt_path"`
	SecretKey                    string   `json:"secret_key"`
	AccessTokenValidityDuration  Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration Duration `json:"refresh_token_validity_duration"`
	GrantTokenValidityDuration   Duration `json:"grant_token_validity_duration"`
	S3RootUser                   string   `json:"s3_root_user"`
	S3RootPassword               string   `json:"s3_root_password"`
	S3Bucket                     string   `json:"s3_bucket"`
	S3Region                     string   `json:"s3_region"`
	S3BaseEndpoint               string   `json:"s3_base_endpoint"`
	LogLevel                     string   `json:"log_level"`
	Seed                         *bool    `json:"seed"`
}

// parseJson overlays values from the file named by -c/-config onto config.
// It panics if the file cannot be read or parsed.
func parseJson(config *Config, args []string) {
	path := flagx.ConfigFile(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(data, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.Storage, c.Storage)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.BoltPath, c.BoltPath)
	setString(&config.SecretKey, c.SecretKey)
	setDuration(&config.AccessTokenValidityDuration, time.Duration(c.AccessTokenValidityDuration))
	setDuration(&config.RefreshTokenValidityDuration, time.Duration(c.RefreshTokenValidityDuration))
	setDuration(&config.GrantTokenValidityDuration, time.Duration(c.GrantTokenValidityDuration))
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.LogLevel, c.LogLevel)
	if c.Seed != nil {
		config.Seed = *c.Seed
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v time.Duration) {
	if v != 0 {
		*dst = v
	}
}
