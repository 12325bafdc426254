package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
	assert.Empty(t, c.SessionDir)
}

func TestParseJson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server_endpoint_addr":"hub:50051","request_timeout":"5s"}`), 0o600))

	var c Config
	c.LoadDefaults()
	require.NoError(t, parseJson(&c, path))

	assert.Equal(t, "hub:50051", c.ServerEndpointAddr)
	assert.Equal(t, 5*time.Second, c.RequestTimeout)
	assert.Empty(t, c.SessionDir)
}

func TestParseJson_Errors(t *testing.T) {
	dir := t.TempDir()
	var c Config

	assert.NoError(t, parseJson(&c, ""))
	assert.Error(t, parseJson(&c, filepath.Join(dir, "missing.json")))

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"request_timeout":"soon"}`), 0o600))
	assert.Error(t, parseJson(&c, bad))
}

func TestParseEnv(t *testing.T) {
	env := map[string]string{
		"TEMPLATEHUB_SERVER_ADDR":     "10.0.0.5:50051",
		"TEMPLATEHUB_SESSION_DIR":     "/tmp/th",
		"TEMPLATEHUB_REQUEST_TIMEOUT": "1m",
	}
	lookup := func(k string) (string, bool) { v, ok := env[k]; return v, ok }

	var c Config
	c.LoadDefaults()
	require.NoError(t, parseEnv(&c, lookup))

	assert.Equal(t, Config{ServerEndpointAddr: "10.0.0.5:50051", SessionDir: "/tmp/th", RequestTimeout: time.Minute}, c)

	env["TEMPLATEHUB_REQUEST_TIMEOUT"] = "never"
	assert.Error(t, parseEnv(&c, lookup))
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server_endpoint_addr":"from-file:1"}`), 0o600))
	t.Setenv("TEMPLATEHUB_SERVER_ADDR", "from-env:2")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env:2", cfg.ServerEndpointAddr)
}
