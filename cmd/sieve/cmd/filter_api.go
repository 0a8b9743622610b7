package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/solatis/sieve/internal/core/api"
	"github.com/solatis/sieve/internal/core/auth"
	"github.com/solatis/sieve/internal/core/config"
	"github.com/solatis/sieve/internal/core/db"
	"github.com/solatis/sieve/internal/core/server"
	"github.com/spf13/cobra"
)

const Version = "0.1.0"

// requiredMigration is the newest migration this build depends on.
const requiredMigration = "002_hmac_api_keys.sql"

var filterAPICmd = &cobra.Command{
	Use:   "filter-api",
	Short: "Start gRPC filter API service",
	RunE:  runFilterAPI,
}

func init() {
	rootCmd.AddCommand(filterAPICmd)
	filterAPICmd.Flags().String("host", "0.0.0.0", "gRPC server host")
	filterAPICmd.Flags().Int("port", 50051, "gRPC server port")
}

func runFilterAPI(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("host") {
		host, _ := cmd.Flags().GetString("host")
		cfg.Host = host
	}
	if cmd.Flags().Changed("port") {
		port, _ := cmd.Flags().GetInt("port")
		cfg.Port = port
	}

	if dbURL == "" {
		return fmt.Errorf("--db-url required")
	}
	database, err := db.Open(dbURL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	applied, err := db.MigrationApplied(database, requiredMigration)
	if err != nil {
		return fmt.Errorf("failed to check migrations: %w", err)
	}
	if !applied {
		return fmt.Errorf("migration %s not applied - run 'sieve migrate' first", requiredMigration)
	}

	queries, err := db.LoadQueries(database)
	if err != nil {
		return fmt.Errorf("failed to load queries: %w", err)
	}

	secrets, err := config.HMACSecrets()
	if err != nil {
		return fmt.Errorf("failed to load HMAC secrets: %w", err)
	}
	if len(secrets) == 0 {
		return fmt.Errorf("no HMAC secrets configured (set SIEVE_HMAC_SECRET environment variable)")
	}

	authenticator := auth.NewAuthenticator(secrets, queries)

	service, err := api.NewFilterAPIService(ctx, database, queries, cfg, slog.Default())
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}

	grpcServer, err := server.NewGRPCServer(cfg, service, authenticator)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	slog.Info("starting sieve filter API",
		"version", Version, "host", cfg.Host, "port", cfg.Port,
		"schema_fields", len(cfg.SchemaFields))
	errChan := make(chan error, 1)
	go func() {
		errChan <- grpcServer.Start(ctx)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-sigChan:
		slog.Info("shutting down gracefully", "signal", sig.String())
		return grpcServer.Shutdown(ctx)
	}
}
