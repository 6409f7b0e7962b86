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

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/yukikurage/demodb/internal/config"
	"github.com/yukikurage/demodb/internal/constants"
	"github.com/yukikurage/demodb/internal/database"
	blogHandlers "github.com/yukikurage/demodb/internal/handlers/blog"
	jiraKillerHandlers "github.com/yukikurage/demodb/internal/handlers/jirakiller"
	test5Handlers "github.com/yukikurage/demodb/internal/handlers/test5"
	"github.com/yukikurage/demodb/internal/logger"
	"github.com/yukikurage/demodb/internal/middleware"
	"github.com/yukikurage/demodb/internal/schema"
	blogRepo "github.com/yukikurage/demodb/internal/repository/blog"
	jiraKillerRepo "github.com/yukikurage/demodb/internal/repository/jirakiller"
	test5Repo "github.com/yukikurage/demodb/internal/repository/test5"
	blogService "github.com/yukikurage/demodb/internal/services/blog"
	jiraKillerService "github.com/yukikurage/demodb/internal/services/jirakiller"
	test5Service "github.com/yukikurage/demodb/internal/services/test5"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Serve the demo schemas over HTTP",
		Long: `server migrates the jirakiller, test5 and blog stores and serves their
CRUD API under /api/<schema>.

Settings come from configs/config.yaml, .env and DEMODB_* variables.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file")

	return cmd
}

func run(ctx context.Context, configPath string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger.Init(cfg.Logger, os.Stderr)
	log := logger.WithComponent("server")

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Connect to one database per schema and migrate it
	jiraKillerDB, err := connect(log, constants.VariantJiraKiller, cfg.Databases.JiraKiller)
	if err != nil {
		return err
	}
	defer closeDB(log, jiraKillerDB)

	test5DB, err := connect(log, constants.VariantTest5, cfg.Databases.Test5)
	if err != nil {
		return err
	}
	defer closeDB(log, test5DB)

	blogDB, err := connect(log, constants.VariantBlog, cfg.Databases.Blog)
	if err != nil {
		return err
	}
	defer closeDB(log, blogDB)

	jk := jiraKillerRepo.New(jiraKillerDB)
	t5 := test5Repo.New(test5DB)
	bl := blogRepo.New(blogDB)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger.WithComponent("http")))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "demodb API is running",
		})
	})

	api := r.Group("/api")
	jiraKillerHandlers.NewHandler(jiraKillerService.NewService(jk)).Register(api.Group("/" + constants.VariantJiraKiller))
	test5Handlers.NewHandler(test5Service.NewService(t5)).Register(api.Group("/" + constants.VariantTest5))
	blogHandlers.NewHandler(blogService.NewService(bl)).Register(api.Group("/" + constants.VariantBlog))

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// connect opens the store of one schema and migrates it.
func connect(log *slog.Logger, name string, cfg config.DatabaseConfig) (*gorm.DB, error) {
	variant, err := schema.Lookup(name)
	if err != nil {
		return nil, err
	}
	provider, err := database.ParseProvider(cfg.Provider)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	db, err := database.Open(provider, cfg.DSN, database.Options{
		Verbose: cfg.Verbose,
		Logger:  logger.WithComponent("db." + name),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	empty := !database.HasAnyTable(db, variant.Models...)
	if err := database.Migrate(db, variant.Models...); err != nil {
		closeDB(log, db)
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if empty {
		log.Warn("schema created empty; run dbgen to seed it", "schema", name, "provider", provider)
	}
	return db, nil
}

func closeDB(log *slog.Logger, db *gorm.DB) {
	if err := database.Close(db); err != nil {
		log.Warn("failed to close database", "error", err)
	}
}
