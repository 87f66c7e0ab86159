// Command migrate prepares the configured store: it applies the Postgres
// schema or creates the MongoDB indexes.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/rahmanshaon/A10-civic-clean-server/internal/adapter/mongorepo"
	"github.com/rahmanshaon/A10-civic-clean-server/internal/infra"
	"github.com/rahmanshaon/A10-civic-clean-server/internal/sqlinline"
)

func main() {
	var timeoutFlag time.Duration
	flag.DurationVar(&timeoutFlag, "timeout", 30*time.Second, "overall deadline for the migration")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		exitWithError(err)
	}
	logger := infra.NewLogger("cli").With().Str("cmd", "migrate").Logger()

	ctx, cancel := context.WithTimeout(context.Background(), timeoutFlag)
	defer cancel()

	switch cfg.StoreBackend {
	case infra.StoreBackendPostgres:
		pool, err := infra.NewDBPool(ctx, cfg)
		if err != nil {
			exitWithError(err)
		}
		defer pool.Close()

		runner := infra.NewSQLRunner(pool, logger)
		if _, err := runner.Exec(ctx, sqlinline.QCreateSchema); err != nil {
			exitWithError(fmt.Errorf("apply schema: %w", err))
		}
		logger.Info().Msg("postgres schema applied")
	case infra.StoreBackendMongo:
		client, db, err := infra.NewMongoDatabase(ctx, cfg)
		if err != nil {
			exitWithError(err)
		}
		defer func() { _ = client.Disconnect(context.Background()) }()

		names, err := mongorepo.EnsureIndexes(ctx, db)
		if err != nil {
			exitWithError(err)
		}
		logger.Info().Strs("indexes", names).Msg("mongodb indexes ensured")
	default:
		exitWithError(errors.New("nothing to migrate for STORE_BACKEND " + cfg.StoreBackend))
	}
}

func exitWithError(err error) {
	fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
	os.Exit(1)
}
