// Package server initializes and runs the registry server.
// It configures logging and the ledger store, wires the services and runs the
// gRPC endpoint until a shutdown signal arrives.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/carregistry/internal/logging"
	"github.com/dmitrijs2005/carregistry/internal/server/config"
	"github.com/dmitrijs2005/carregistry/internal/server/services"
	"github.com/dmitrijs2005/carregistry/internal/server/storage"

	gs "github.com/dmitrijs2005/carregistry/internal/server/grpc"
)

type App struct {
	config    *config.Config
	logger    logging.Logger
	store     storage.Store
	rentals   *services.RentalService
	snapshots *services.SnapshotService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger, err := logging.New(c.LogFormat, os.Stdout)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	store, err := storage.Open(ctx, c.StorageDriver, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rs := services.NewRentalService(store, logger)
	ss := services.NewSnapshotService(store, c, logger)

	return &App{config: c, logger: logger, store: store, rentals: rs, snapshots: ss}, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case <-sigs:
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.rentals, app.snapshots, app.config.SecretKey)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	} else {

		if err := s.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// releases the store.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "storage", app.config.StorageDriver)

	app.initSignalHandler(ctx, cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.store.Close(); err != nil {
		app.logger.Error(ctx, "store close error", "error", err)
	}
	if z, ok := app.logger.(*logging.ZapLogger); ok {
		_ = z.Sync()
	}
}
