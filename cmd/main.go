package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lukhatek/Fsociety/internal/config"
	"github.com/lukhatek/Fsociety/internal/handlers"
	"github.com/lukhatek/Fsociety/internal/logger"
	"github.com/lukhatek/Fsociety/internal/repository"
	"github.com/lukhatek/Fsociety/internal/repository/db"
	"github.com/lukhatek/Fsociety/internal/repository/mongodb"
	"github.com/lukhatek/Fsociety/internal/server"
	"github.com/lukhatek/Fsociety/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title                       Fsociety API
// @version                     1.0
// @description                 Forum backend: accounts, bearer tokens, posts and comments.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	// load configs/config.yml + FORUM_* env
	cfg, err := config.Load("configs")
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(cfg.Log.Level)
	defer func() { _ = log.Sync() }()

	// open store
	repos, closeStore, err := openStore(cfg, log)
	if err != nil {
		log.Fatalw("failed to open store", "driver", cfg.Store.Driver, "err", err)
	}
	defer closeStore()

	// wire dependencies
	services := service.NewService(repos, service.Config{
		Token: service.TokenConfig{
			SigningKey: []byte(cfg.Auth.SigningKey),
			TTL:        cfg.Auth.TokenTTL,
		},
		Identity: service.IdentityConfig{
			BootstrapAdmin: cfg.Auth.BootstrapAdmin,
			DefaultAvatar:  cfg.Users.DefaultAvatar,
		},
		BcryptCost: cfg.Auth.BcryptCost,
	})
	apiHandler := handlers.NewHandler(services, log)

	// start HTTP server
	srv := server.New(cfg.Port, apiHandler.InitRoutes())
	go func() {
		log.Infow("http server listening", "addr", srv.Addr(), "store", cfg.Store.Driver)
		if err := srv.Run(); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()

	waitForShutdown(srv, log)
}

// openStore builds the repositories for the configured driver. The returned
// func releases the underlying connection.
func openStore(cfg *config.Config, log *logger.Logger) (*repository.Repository, func(), error) {
	switch cfg.Store.Driver {
	case config.DriverMongo:
		client, database, err := mongodb.Connect(context.Background(), cfg.Store.Mongo.URI, cfg.Store.Mongo.Database)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := client.Disconnect(ctx); err != nil {
				log.Errorw("failed to disconnect mongo", "err", err)
			}
		}
		return mongodb.NewRepository(database), closeFn, nil
	default:
		conn, err := db.InitDB(cfg.Store.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := conn.Close(); err != nil {
				log.Errorw("failed to close sqlite", "err", err)
			}
		}
		return repository.NewRepository(conn), closeFn, nil
	}
}

// waitForShutdown blocks until SIGINT/SIGTERM, then lets in-flight requests finish.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
