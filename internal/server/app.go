// Package server wires configuration, logging, the in-memory repositories,
// the services and both network front ends into one runnable App.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/itemkeeper/internal/logging"
	"github.com/dmitrijs2005/itemkeeper/internal/server/config"
	"github.com/dmitrijs2005/itemkeeper/internal/server/httpapi"
	"github.com/dmitrijs2005/itemkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/itemkeeper/internal/server/services"
	"github.com/dmitrijs2005/itemkeeper/internal/server/validation"

	gs "github.com/dmitrijs2005/itemkeeper/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	repomanager repomanager.RepositoryManager
	userService *services.UserService
	itemService *services.ItemService
}

// NewApp builds an App logging JSON to stdout.
func NewApp(c *config.Config) (*App, error) {
	return newApp(c, logging.NewJSONLogger(os.Stdout, c.LogLevel))
}

func newApp(c *config.Config, logger logging.Logger) (*App, error) {
	m := repomanager.NewInMemoryRepositoryManager()

	if c.SeedDemoData {
		if err := repomanager.SeedDemoData(context.Background(), m, c.BcryptCost); err != nil {
			return nil, fmt.Errorf("seed demo data: %w", err)
		}
		logger.Info(context.Background(), "Demo data loaded", "users", "admin,testuser", "items", 3)
	}

	us, err := services.NewUserService(m, c)
	if err != nil {
		return nil, fmt.Errorf("user service: %w", err)
	}

	return &App{
		config:      c,
		logger:      logger,
		repomanager: m,
		userService: us,
		itemService: services.NewItemService(m),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		app.logger.Info(context.Background(), "Shutdown signal received")
		cancelFunc()
	}()
}

// Run serves HTTP, and gRPC health when configured, until ctx is cancelled,
// a shutdown signal arrives or either server fails.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "environment", app.config.Environment)

	app.initSignalHandler(cancelFunc)

	g, gctx := errgroup.WithContext(ctx)

	httpServer := httpapi.NewHTTPServer(app.config, app.logger, app.userService, app.itemService, validation.New())
	g.Go(func() error {
		if err := httpServer.Run(gctx); err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	if app.config.EndpointAddrGRPC != "" {
		grpcServer := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger)
		g.Go(func() error {
			if err := grpcServer.Run(gctx); err != nil {
				return fmt.Errorf("grpc server: %w", err)
			}
			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		app.logger.Error(ctx, "App stopped with error", "error", err)
		return err
	}

	app.logger.Info(ctx, "App stopped")
	return nil
}
