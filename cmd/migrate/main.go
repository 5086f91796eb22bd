package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"socialgraph/internal/graph"
	"socialgraph/pkg/config"
	"socialgraph/pkg/logger"
)

const schemaVersion = "social-graph-v1"

func main() {
	force := flag.Bool("force", false, "Force migration even if already applied")
	flag.Parse()

	// Initialize logger
	if err := logger.Init("development"); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Starting Neo4j schema migration...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Initialize Neo4j driver
	driver, err := neo4j.NewDriverWithContext(
		cfg.Neo4jURI,
		neo4j.BasicAuth(cfg.Neo4jUser, cfg.Neo4jPassword, ""),
	)
	if err != nil {
		log.Fatal("Failed to create Neo4j driver", zap.Error(err))
	}
	defer driver.Close(context.Background())

	// Verify connection
	ctx := context.Background()
	if err := driver.VerifyConnectivity(ctx); err != nil {
		log.Fatal("Failed to verify Neo4j connectivity", zap.Error(err))
	}

	store := graph.NewStore(driver)

	// Check if migration already applied
	if !*force {
		applied, err := checkMigrationApplied(ctx, store)
		if err != nil {
			log.Fatal("Failed to check migration status", zap.Error(err))
		}
		if applied {
			log.Info("Migration already applied. Use -force to reapply.")
			os.Exit(0)
		}
	}

	if err := store.EnsureConstraints(ctx); err != nil {
		log.Fatal("Migration failed", zap.Error(err))
	}

	// Mark migration as applied
	if err := markMigrationApplied(ctx, store); err != nil {
		log.Warn("Failed to mark migration as applied", zap.Error(err))
	}

	log.Info("Migration completed successfully!")
}

func checkMigrationApplied(ctx context.Context, store *graph.Store) (bool, error) {
	query := `
		MATCH (m:Migration {version: $version})
		RETURN m.version as version
	`

	records, err := store.ExecuteRead(ctx, query, map[string]any{"version": schemaVersion})
	if err != nil {
		return false, err
	}
	return len(records) > 0, nil
}

func markMigrationApplied(ctx context.Context, store *graph.Store) error {
	query := `
		MERGE (m:Migration {version: $version})
		SET m.applied_at = datetime()
	`

	_, err := store.ExecuteWrite(ctx, query, map[string]any{"version": schemaVersion})
	return err
}
