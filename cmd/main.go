package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	grpcctx "github.com/dtroode/deckhub-server/internal/api/grpc/context"
	"github.com/dtroode/deckhub-server/internal/api/grpc/router"
	grpcServer "github.com/dtroode/deckhub-server/internal/api/grpc/server"
	httpServer "github.com/dtroode/deckhub-server/internal/api/http/server"
	"github.com/dtroode/deckhub-server/internal/composer"
	"github.com/dtroode/deckhub-server/internal/config"
	"github.com/dtroode/deckhub-server/internal/deckstore"
	"github.com/dtroode/deckhub-server/internal/generator"
	"github.com/dtroode/deckhub-server/internal/logger"
	"github.com/dtroode/deckhub-server/internal/model"
	"github.com/dtroode/deckhub-server/internal/relay"
	"github.com/dtroode/deckhub-server/internal/repository/postgres"
	"github.com/dtroode/deckhub-server/internal/server"
	"github.com/dtroode/deckhub-server/internal/service"
	"github.com/dtroode/deckhub-server/internal/storage/file"
	"github.com/dtroode/deckhub-server/internal/storage/minio"
	"github.com/dtroode/deckhub-server/internal/templates"
	"github.com/dtroode/deckhub-server/internal/token"
	"github.com/dtroode/deckhub-server/internal/workspace"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer db.Close()
	logger.Info("database ready", "schemaVersion", db.SchemaVersion)

	userRepo := postgres.NewUserRepository(db)
	refreshTokenRepo := postgres.NewRefreshTokenRepository(db)
	tokenManager := token.NewJWTWithTTL(cfg.JWT.Secret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
	tokenService := service.NewTokenService(tokenManager, refreshTokenRepo, logger)

	kdf := model.KDFParams{Time: cfg.KDF.Time, MemKiB: cfg.KDF.MemKiB, Threads: cfg.KDF.Par}
	authService := service.NewAuth(userRepo, tokenService, kdf, logger)

	storage, err := newStorage(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err, "backend", cfg.Storage.Backend)
	}

	deckComposer := composer.New()
	strategy, err := generator.New(generator.Options{
		Strategy:     cfg.Generation.Mode,
		Delay:        cfg.Generation.Delay,
		RelayURL:     cfg.Generation.RelayURL,
		RelayCompose: cfg.Generation.RelayCompose,
		Timeout:      cfg.Generation.Timeout,
	}, deckComposer)
	if err != nil {
		logger.Fatal("failed to initialize generator", "error", err)
	}
	gateway := generator.NewGateway(strategy, logger)

	workspaces := workspace.NewRegistry(gateway, deckstore.New(storage, logger), logger)
	deckService := service.NewDeck(workspaces, templates.New(), logger)
	unsubscribe := authService.Subscribe(deckService.OnAuthEvent)
	defer unsubscribe()

	var sl model.SecurityLayer
	if cfg.GRPC.EnableHTTPS {
		sl = server.NewTLSListener(cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	grpcRouter := router.New(authService, deckService, tokenService, grpcctx.NewManager(), logger)
	servers := []model.Server{
		grpcServer.NewGRPCServer(grpcRouter.Register(), net.JoinHostPort("", cfg.GRPC.Port)),
	}

	if cfg.HTTP.Enabled {
		provider := relay.NewOpenAIProvider(relay.ProviderConfig{
			BaseURL: cfg.AI.BaseURL,
			APIKey:  cfg.AI.APIKey,
			Model:   cfg.AI.Model,
			Timeout: cfg.Generation.Timeout,
		})
		relayHandler := relay.NewHandler(provider, deckComposer, logger.With("component", "relay"))
		servers = append(servers, httpServer.NewHTTPServer(relayHandler.Router(), net.JoinHostPort("", cfg.HTTP.Port)))
	}

	var wg sync.WaitGroup
	for _, s := range servers {
		wg.Add(1)
		go func(s model.Server) {
			defer wg.Done()
			logger.Info("Starting server on", "address", s.Address())
			if err := s.Start(sl); err != nil {
				logger.Error("failed to start server", "error", err, "address", s.Address())
				stop()
			}
		}(s)
	}

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")
	grpcRouter.Shutdown()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	for _, s := range servers {
		if err := s.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "error", err, "address", s.Address())
		}
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func newStorage(ctx context.Context, cfg *config.Config) (model.Storage, error) {
	switch cfg.Storage.Backend {
	case config.StorageBackendFile:
		return file.New(cfg.Storage.Dir)
	default:
		return minio.Connect(ctx, minio.Config{
			Endpoint:  cfg.Minio.Endpoint,
			AccessKey: cfg.Minio.AccessKey,
			SecretKey: cfg.Minio.SecretKey,
			UseSSL:    cfg.Minio.UseSSL,
			Bucket:    cfg.Minio.Bucket,
			Prefix:    cfg.Minio.Prefix,
		})
	}
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
