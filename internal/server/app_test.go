package server

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/gerich15/TemplateHub/internal/logging"
	"github.com/gerich15/TemplateHub/internal/server/config"
	"github.com/gerich15/TemplateHub/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boltConfig(t *testing.T) *config.Config {
	t.Helper()
	c := &config.Config{}
	c.LoadDefaults()
	c.Storage = config.StorageBolt
	c.BoltPath = filepath.Join(t.TempDir(), "app.db")
	c.EndpointAddrGRPC = "127.0.0.1:0"
	c.EndpointAddrHTTP = "127.0.0.1:0"
	return c
}

func TestNewApp_SeedsBoltStore(t *testing.T) {
	ctx := context.Background()
	app, err := NewApp(ctx, boltConfig(t), logging.Nop{})
	require.NoError(t, err)
	defer app.repomanager.Close()

	n, err := app.repomanager.Templates().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(6), n)

	_, err = app.repomanager.Users().GetByLogin(ctx, "testuser")
	assert.NoError(t, err)
}

func TestNewApp_InvalidConfig(t *testing.T) {
	c := boltConfig(t)
	c.Storage = "mysql"
	_, err := NewApp(context.Background(), c, logging.Nop{})
	assert.Error(t, err)
}

func TestNewApp_StorageError(t *testing.T) {
	orig := openRepositoryManager
	t.Cleanup(func() { openRepositoryManager = orig })
	openRepositoryManager = func(context.Context, *config.Config) (repomanager.RepositoryManager, error) {
		return nil, errors.New("dial tcp: refused")
	}

	_, err := NewApp(context.Background(), boltConfig(t), logging.Nop{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db init error")
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	c := boltConfig(t)
	c.Seed = false
	app, err := NewApp(context.Background(), c, logging.Nop{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(150 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}
}
