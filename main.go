package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/blogem/rank-activity/config"
	"github.com/blogem/rank-activity/controllers"
	"github.com/blogem/rank-activity/database"
	"github.com/blogem/rank-activity/metrics"
	"github.com/blogem/rank-activity/repositories"
	"github.com/blogem/rank-activity/roblox"
	"github.com/blogem/rank-activity/services"
)

const version = "v0.1.0"

var envFile string

var rootCmd = &cobra.Command{
	Use:   "rank-activity",
	Short: "Rank Activity - live log of group rank changes",
	Long:  `A dashboard that promotes group members through the Roblox API and streams the resulting activity log to browsers`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "env file to load before reading the environment")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(serveCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("rank-activity %s\n", version)
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the activity log schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(envFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := database.InitializeDatabase(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		return database.CloseDB()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(envFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Initialize database
		if err := database.InitializeDatabase(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer database.CloseDB()

		db := database.GetDB()
		repos := repositories.NewRepositories(db, database.GetDialect())

		group := roblox.NewClient(roblox.Config{
			Cookie:       cfg.Roblox.Cookie,
			UsersAPIURL:  cfg.Roblox.UsersAPIURL,
			GroupsAPIURL: cfg.Roblox.GroupsAPIURL,
			Timeout:      cfg.Roblox.Timeout,
		})
		if !cfg.HasCredential() {
			log.Printf("⚠️  ROBLOX_COOKIE is not set, rank changes will be refused")
		}

		srvs := services.NewServices(repos, group, cfg)
		ctrl := controllers.NewControllers(srvs)
		r := setupRouter(ctrl, db)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return serve(ctx, ":"+cfg.Port, r)
	},
}

// serve runs the server until ctx is done. Open streams share a base context
// that is cancelled when shutdown starts, so they end instead of holding
// Shutdown open.
func serve(ctx context.Context, addr string, handler http.Handler) error {
	baseCtx, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
	}
	srv.RegisterOnShutdown(cancelBase)

	errCh := make(chan error, 1)
	go func() {
		fmt.Printf("🚀 Rank Activity starting on %s\n", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	fmt.Println("🛑 Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// setupRouter configures all routes
func setupRouter(ctrl *controllers.Controllers, db *sql.DB) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Streams stay open indefinitely and must not be buffered, so they sit
	// outside the timeout and compression middleware.
	r.Get("/activity-log/stream", ctrl.Activity.Stream)
	r.Handle("/metrics", metrics.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))
		r.Use(middleware.Compress(5))

		r.Get("/", ctrl.Dashboard.Index)
		r.Get("/activity-log", ctrl.Activity.Snapshot)
		r.Get("/rank", ctrl.Rank.Update)
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			if err := db.PingContext(r.Context()); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				fmt.Fprintf(w, `{"status": "unhealthy", "service": "rank-activity"}`)
				return
			}
			w.WriteHeader(http.StatusOK)
			fmt.Fprintf(w, `{"status": "healthy", "service": "rank-activity"}`)
		})
	})

	return r
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
