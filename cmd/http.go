package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/spf13/cobra"

	"github.com/chapterly/api/internal/catalog"
	"github.com/chapterly/api/internal/config"
	"github.com/chapterly/api/internal/identity"
	"github.com/chapterly/api/internal/logger"
	"github.com/chapterly/api/internal/routes"
	"github.com/chapterly/api/internal/shared"
	"github.com/chapterly/api/internal/store"
)

type Server struct {
	*shared.Server
}

func NewServer(
	logger logger.Logger,
	store store.Store,
	verifier identity.Verifier,
	catalog catalog.Client,
	cfg *config.Config,
) *Server {
	return &Server{
		Server: &shared.Server{
			Logger:   logger,
			Store:    store,
			Verifier: verifier,
			Catalog:  catalog,
			Config:   cfg,
		},
	}
}

func (s *Server) Mount() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: strings.Split(s.Config.Cors_origins, ","),
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         86400,
	}))
	r.Use(httprate.LimitByIP(s.Config.Rate_limit, time.Minute))

	s.Server.Router = r

	server := routes.NewServer(s.Server)

	server.RegisterRoutes()

	return r
}

func HTTPCommand(ctx context.Context) *cobra.Command {
	var addr int
	var env string
	var envFile string

	cmd := &cobra.Command{
		Use:   "http",
		Short: "run the chapterly http server",
		RunE: func(cmd *cobra.Command, args []string) error {
			sig := make(chan os.Signal, 1)
			signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

			var handler slog.Handler

			switch env {
			case "dev":
				handler = slog.Handler(slog.NewTextHandler(os.Stderr, nil))
			case "prod":
				handler = slog.Handler(slog.NewJSONHandler(os.Stderr, nil))
			default:
				return fmt.Errorf("environment can only be dev or prod")
			}

			baseLogger := slog.New(handler).With(
				slog.String("app", "chapterly"),
				slog.String("runtime", runtime.Version()),
				slog.String("os", runtime.GOOS),
				slog.String("architecture", runtime.GOARCH),
				slog.String("version", "1.0"),
			)

			cfg, err := config.Load(envFile)

			if err != nil {
				return err
			}

			logger := logger.NewSlogLogger(baseLogger)

			logger.Info("connecting to db...", "path", cfg.Db_path)
			db, err := store.NewSQLiteStore(cfg.Db_path)

			if err != nil {
				return err
			}

			logger.Info("db connected")

			verifier, err := identity.NewFirebaseVerifier(cfg.Firebase_credentials)

			if err != nil {
				return err
			}

			openLibrary := catalog.NewOpenLibraryClient(cfg.Openlibrary_url, cfg.Covers_url)

			baseServer := NewServer(logger, db, verifier, openLibrary, cfg)

			httpServer := &http.Server{
				Addr:        fmt.Sprintf(":%d", addr),
				Handler:     baseServer.Mount(),
				IdleTimeout: 15 * time.Minute,
			}
			errCh := make(chan error, 1)

			logger.Info("server startup", "status", fmt.Sprintf("server starting on port: %d", addr))
			go func() {
				if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()

			select {
			case err := <-errCh:
				return err

			case <-sig:
				logger.Info("server shutdown", "status", "kill signal recieved")
				ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return fmt.Errorf("error shutting down server: %v", err)
				}

				logger.Info("server shutdown", "status", "shutdown complete...")
				return nil
			}
		},
	}

	cmd.Flags().IntVarP(&addr, "addr", "a", 3000, "server address")
	cmd.Flags().StringVarP(&env, "env", "e", "dev", "current working environment")
	cmd.Flags().StringVarP(&envFile, "config", "c", ".env", "path to .env file")

	return cmd
}
