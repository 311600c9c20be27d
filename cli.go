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

	"libraryapi/app/echoServer"
	authctrl "libraryapi/app/echoServer/controller/auth"
	bookctrl "libraryapi/app/echoServer/controller/book"
	memberctrl "libraryapi/app/echoServer/controller/member"
	"libraryapi/config"
	_ "libraryapi/docs"
	bookrepo "libraryapi/repository/book"
	memberrepo "libraryapi/repository/member"
	tokenrepo "libraryapi/repository/token"
	authsvc "libraryapi/service/auth"
	booksvc "libraryapi/service/book"
	membersvc "libraryapi/service/member"
	"libraryapi/util/database"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var cfgPath string

	root := &cobra.Command{
		Use:           "library-api",
		Short:         "Library management HTTP API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), cfgPath)
		},
	}
	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "config file (yaml, toml or json)")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), cfgPath)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create database tables and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd.Context(), cfgPath)
		},
	})
	return root
}

func setup(cfgPath string) (config.App, *slog.Logger, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		slog.Error("config load failed", "err", err)
		return cfg, nil, err
	}

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(log)
	return cfg, log, nil
}

func runMigrate(ctx context.Context, cfgPath string) error {
	cfg, log, err := setup(cfgPath)
	if err != nil {
		return err
	}
	db, err := database.New(ctx, cfg.Database.Driver, cfg.Database.URL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		return err
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		log.Error("migrate failed", "err", err)
		return err
	}
	log.Info("migrated", "driver", cfg.Database.Driver)
	return nil
}

func runServe(ctx context.Context, cfgPath string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, log, err := setup(cfgPath)
	if err != nil {
		return err
	}

	// DB
	db, err := database.New(ctx, cfg.Database.Driver, cfg.Database.URL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		return err
	}
	defer db.Close()
	if err := db.Migrate(ctx); err != nil {
		log.Error("migrate failed", "err", err)
		return err
	}

	e, sweeper, err := buildServer(cfg, db, log)
	if err != nil {
		return err
	}
	if cfg.Auth.TokenTTL > 0 {
		go authsvc.NewCleaner(sweeper, log).Run(ctx, cfg.Auth.SweepInterval)
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", "port", cfg.Port, "env", cfg.Env, "driver", cfg.Database.Driver)
		errCh <- e.Start(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", "err", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(sctx)
}

// buildServer wires repositories, services and controllers onto Echo. The
// returned Sweeper is the token store, for the expiry cleaner.
func buildServer(cfg config.App, db *database.DB, log *slog.Logger) (*echo.Echo, authsvc.Sweeper, error) {
	// repos
	br := bookrepo.New(db)
	mr := memberrepo.New(db)

	var tokens interface {
		authsvc.TokenStore
		authsvc.Sweeper
	}
	switch cfg.Auth.TokenStore {
	case "database":
		tokens = tokenrepo.New(db)
	default:
		tokens = authsvc.NewMemoryTokenStore()
	}

	verifier, err := authsvc.NewStaticVerifier(cfg.Auth.Username, cfg.Auth.Password)
	if err != nil {
		return nil, nil, fmt.Errorf("credential verifier: %w", err)
	}

	// services
	as := authsvc.New(verifier, tokens, authsvc.Options{Secret: cfg.Auth.Secret, TTL: cfg.Auth.TokenTTL})
	bs := booksvc.New(br)
	ms := membersvc.New(mr)

	// controllers
	e := echoServer.New(echoServer.C{
		Auth:    &authctrl.Controller{Svc: as, Log: log},
		Book:    &bookctrl.Controller{Svc: bs, Log: log},
		Member:  &memberctrl.Controller{Svc: ms, Log: log},
		AuthSvc: as,
		DB:      db,
		Log:     log,
	})
	return e, tokens, nil
}
