// Package server wires the storage backend, the services and both transports
// into one application and runs it until it is told to stop.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gerich15/TemplateHub/internal/logging"
	"github.com/gerich15/TemplateHub/internal/server/config"
	"github.com/gerich15/TemplateHub/internal/server/httpapi"
	"github.com/gerich15/TemplateHub/internal/server/repositories/repomanager"
	"github.com/gerich15/TemplateHub/internal/server/seed"
	"github.com/gerich15/TemplateHub/internal/server/services"

	gs "github.com/gerich15/TemplateHub/internal/server/grpc"
)

type App struct {
	config          *config.Config
	logger          logging.Logger
	repomanager     repomanager.RepositoryManager
	userService     *services.UserService
	catalogService  *services.CatalogService
	purchaseService *services.PurchaseService
}

// openRepositoryManager picks the backend named by cfg.Storage.
var openRepositoryManager = func(ctx context.Context, cfg *config.Config) (repomanager.RepositoryManager, error) {
	switch cfg.Storage {
	case config.StorageBolt:
		return repomanager.NewBoltRepositoryManager(cfg.BoltPath)
	default:
		return repomanager.NewPostgresRepositoryManager(ctx, cfg.DatabaseDSN)
	}
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	m, err := openRepositoryManager(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := m.RunMigrations(ctx); err != nil {
		m.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if c.Seed {
		catalog, err := seed.Default()
		if err == nil {
			err = seed.Apply(ctx, m, catalog, logger.With("module", "seed"))
		}
		if err != nil {
			m.Close()
			return nil, fmt.Errorf("seed: %w", err)
		}
	}

	ledger := services.NewLedger(m, logger)

	return &App{
		config:          c,
		logger:          logger,
		repomanager:     m,
		userService:     services.NewUserService(m, c, logger),
		catalogService:  services.NewCatalogService(m),
		purchaseService: services.NewPurchaseService(m, ledger, services.NewS3FileStore(c), c, logger),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService, app.catalogService, app.purchaseService)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "grpc server", "error", err)
		cancelFunc()
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewServer(app.config.EndpointAddrHTTP, app.logger, app.userService, app.catalogService, app.purchaseService)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "http server", "error", err)
		cancelFunc()
	}
}

// Run serves gRPC and HTTP until ctx is cancelled, a signal arrives or one of
// the servers fails, then closes the storage.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "storage", app.config.Storage)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.logger.Info(ctx, "Stopped, closing storage")
	return app.repomanager.Close()
}
