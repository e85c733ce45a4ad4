package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mnyiz/lockdin/internal/api"
	"github.com/mnyiz/lockdin/internal/api/handlers"
	"github.com/mnyiz/lockdin/internal/config"
	"github.com/mnyiz/lockdin/internal/friends"
	"github.com/mnyiz/lockdin/internal/identity"
	"github.com/mnyiz/lockdin/internal/logging"
	"github.com/mnyiz/lockdin/internal/repositories"
	"golang.org/x/sync/errgroup"
)

// @title lockdin API
// @version 1.0
// @description Login, signup and friend requests backed by a hosted identity and data service.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	log := logging.New(os.Stderr, cfg.LogLevel)
	log.Info("configuration loaded", "config", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
	log.Info("shutdown complete")
}

// store is everything the service needs from the storage gateway.
type store interface {
	friends.Store
	handlers.ProfileStore
	identity.AccountStore
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	st, err := openStore(cfg, logging.Component(log, "repositories"))
	if err != nil {
		return err
	}

	var provider identity.Provider
	switch cfg.IdentityProvider {
	case config.IdentityLocal:
		provider = identity.NewLocalProvider(st, identity.NewTokenIssuer([]byte(cfg.JWTSecret), cfg.TokenTTL))
	default:
		provider = identity.NewSupabaseProvider(cfg.Supabase.URL, cfg.Supabase.ServiceRoleKey, cfg.GatewayTimeout)
	}

	friendService := friends.NewService(st, logging.Component(log, "friends"))
	h := handlers.New(provider, st, friendService, logging.Component(log, "handlers"))
	httpLog := logging.Component(log, "http")

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: api.SetupRouter(cfg, h, provider, httpLog),
		// Timeouts prevent resource exhaustion from slow clients
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.GatewayTimeout + 10*time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     logging.StdLogger(httpLog, slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("Server is running", "addr", "http://localhost:"+cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen on port %s: %w", cfg.Port, err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func openStore(cfg config.Config, log *slog.Logger) (store, error) {
	if cfg.StoreDriver == config.StoreMemory {
		log.Warn("using in-memory store, data is lost on restart")
		return repositories.NewMemoryStore(), nil
	}

	db, err := repositories.ConnectDatabase(cfg.DB_URL, log)
	if err != nil {
		return nil, err
	}
	if cfg.DBAutoMigrate {
		if err := repositories.Migrate(db, cfg.IdentityProvider == config.IdentityLocal); err != nil {
			return nil, err
		}
	}
	return repositories.NewStore(db), nil
}
