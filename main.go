package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"deeprealties/backend/config"
	"deeprealties/backend/database"
	"deeprealties/backend/logger"
	"deeprealties/backend/middlewares"
	"deeprealties/backend/routes"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownGrace = 10 * time.Second

func main() {
	rootCmd := &cobra.Command{
		Use:   "deeprealties",
		Short: "DeepRealties marketplace API",
		RunE:  func(cmd *cobra.Command, args []string) error { return serve(cmd.Context()) },
	}
	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default)",
		RunE:  func(cmd *cobra.Command, args []string) error { return serve(cmd.Context()) },
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create missing tables and indexes, then exit",
		RunE:  func(cmd *cobra.Command, args []string) error { return migrate(cmd.Context()) },
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads config, starts logging and connects the schema-ready pool.
func setup(ctx context.Context) (config.Config, *zap.Logger, error) {
	cfg := config.Load()
	log, err := logger.Init(cfg.IsDevelopment(), cfg.LogLevel)
	if err != nil {
		return cfg, nil, fmt.Errorf("logger: %w", err)
	}
	if err := database.Connect(ctx, cfg.DatabaseURL); err != nil {
		return cfg, log, err
	}
	if err := database.EnsureSchema(ctx); err != nil {
		database.Close()
		return cfg, log, err
	}
	return cfg, log, nil
}

func migrate(ctx context.Context) error {
	_, log, err := setup(ctx)
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer database.Close()
	log.Info("schema ensured")
	return nil
}

func serve(ctx context.Context) error {
	cfg, log, err := setup(ctx)
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer database.Close()

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger(log), middlewares.CORS(cfg.AllowedOrigins))
	routes.Register(r, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
