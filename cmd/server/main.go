package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/yukikurage/task-invoice-manager/internal/config"
	"github.com/yukikurage/task-invoice-manager/internal/database"
	"github.com/yukikurage/task-invoice-manager/internal/logger"
	"github.com/yukikurage/task-invoice-manager/internal/server"
)

var rootCmd = &cobra.Command{
	Use:   "task-invoice-manager",
	Short: "Task and invoice management API",
	Long:  `Tracks companies, projects, tasks and time entries, and bills them as PDF invoices.`,
	// Serving is the default action
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run migrations and start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, log, db, err := bootstrap()
		if err != nil {
			return err
		}
		defer closeDB(db, log)
		defer log.Sync()

		return database.Migrate(db, log)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func serve(ctx context.Context) error {
	cfg, log, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer closeDB(db, log)
	defer log.Sync()

	if err := database.Migrate(db, log); err != nil {
		return err
	}

	gin.SetMode(cfg.GinMode)
	router := server.NewRouter(db, cfg, log)

	return server.Run(ctx, cfg, router, log)
}

// bootstrap loads configuration, builds the logger and opens the database
func bootstrap() (*config.Config, *logger.Logger, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	log, err := logger.NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	if cfg.DBDriver == config.DriverSQLite {
		if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
			return nil, nil, nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := database.Connect(cfg, log)
	if err != nil {
		return nil, nil, nil, err
	}

	return cfg, log, db, nil
}

func closeDB(db *gorm.DB, log *logger.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Warnw("failed to close database", "error", err)
	}
}
