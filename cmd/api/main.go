package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/rahmanshaon/A10-civic-clean-server/internal/adapter/memrepo"
	"github.com/rahmanshaon/A10-civic-clean-server/internal/adapter/mongorepo"
	"github.com/rahmanshaon/A10-civic-clean-server/internal/adapter/repo"
	"github.com/rahmanshaon/A10-civic-clean-server/internal/http/handlers"
	"github.com/rahmanshaon/A10-civic-clean-server/internal/http/httpapi"
	"github.com/rahmanshaon/A10-civic-clean-server/internal/infra"
	"github.com/rahmanshaon/A10-civic-clean-server/internal/infra/identity"
	"github.com/rahmanshaon/A10-civic-clean-server/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	app := &handlers.App{Logger: logger, MaxUploadBytes: cfg.UploadMaxBytes, Now: time.Now}

	closeStore, err := openStore(ctx, cfg, logger, app)
	if err != nil {
		logger.Fatal().Err(err).Str("backend", cfg.StoreBackend).Msg("failed to open store")
	}
	defer closeStore()

	verifier, err := identity.NewVerifier(ctx, cfg.AuthIssuer, cfg.AuthAudience)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialise token verifier")
	}

	staticDir, err := openImageStore(ctx, cfg, app)
	if err != nil {
		logger.Fatal().Err(err).Str("backend", cfg.UploadBackend).Msg("failed to open image store")
	}

	router := httpapi.NewRouter(app, httpapi.Options{
		Verifier:        verifier,
		Logger:          logger,
		AllowedOrigins:  cfg.CORSAllowedOrigins,
		RateLimitPerMin: cfg.RateLimitPerMin,
		StaticDir:       staticDir,
	})
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Str("addr", server.Addr()).Str("store", cfg.StoreBackend).Msg("api listening")
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}

// openStore wires the configured backend into app and returns its cleanup.
func openStore(ctx context.Context, cfg *infra.Config, logger infra.Logger, app *handlers.App) (func(), error) {
	switch cfg.StoreBackend {
	case infra.StoreBackendPostgres:
		pool, err := infra.NewDBPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		runner := infra.NewSQLRunner(pool, logger)
		issues := repo.NewIssueRepository(runner)
		app.Issues = issues
		app.Contributions = repo.NewContributionRepository(runner)
		app.Store = issues
		return pool.Close, nil
	case infra.StoreBackendMongo:
		client, db, err := infra.NewMongoDatabase(ctx, cfg)
		if err != nil {
			return nil, err
		}
		issues := mongorepo.NewIssueRepository(db)
		app.Issues = issues
		app.Contributions = mongorepo.NewContributionRepository(db)
		app.Store = issues
		return func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := client.Disconnect(disconnectCtx); err != nil {
				logger.Error().Err(err).Msg("failed to disconnect mongodb")
			}
		}, nil
	default:
		logger.Warn().Msg("using in-memory store; data is lost on restart")
		store := memrepo.New()
		app.Issues = store.Issues()
		app.Contributions = store.Contributions()
		app.Store = store
		return func() {}, nil
	}
}

// openImageStore wires the upload backend into app. It returns the directory
// to serve under /static when images live on local disk.
func openImageStore(ctx context.Context, cfg *infra.Config, app *handlers.App) (string, error) {
	switch cfg.UploadBackend {
	case infra.UploadBackendFile:
		store, err := storage.NewFileStore(cfg.UploadDir, cfg.UploadBaseURL)
		if err != nil {
			return "", err
		}
		app.Images = store
		return store.BasePath(), nil
	case infra.UploadBackendMinIO:
		opts := storage.MinIOOptions{
			Endpoint:  cfg.MinIO.Endpoint,
			AccessKey: cfg.MinIO.AccessKey,
			SecretKey: cfg.MinIO.SecretKey,
			Bucket:    cfg.MinIO.Bucket,
			Region:    cfg.MinIO.Region,
			UseSSL:    cfg.MinIO.UseSSL,
			PublicURL: cfg.MinIO.PublicURL,
		}
		client, err := storage.NewMinIOClient(opts)
		if err != nil {
			return "", err
		}
		store, err := storage.NewMinIOStore(client, opts)
		if err != nil {
			return "", err
		}
		bucketCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := store.EnsureBucket(bucketCtx, opts.Region); err != nil {
			return "", err
		}
		app.Images = store
		return "", nil
	default:
		return "", nil
	}
}
